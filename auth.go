package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"pfbe/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash stored on a profile.
func HashPassword(password string) ([]byte, error) {
	if len(password) < 6 { // basic password policy
		return nil, fmt.Errorf("password too short (min 6)")
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Authenticate checks email+password against the owner profile.
func Authenticate(email, password string) (models.Profile, error) {
	email = strings.TrimSpace(email)
	var profile models.Profile
	if err := db.Where("email = ?", email).First(&profile).Error; err != nil {
		return models.Profile{}, fmt.Errorf("invalid credentials")
	}
	if len(profile.HashedPassword) == 0 {
		return models.Profile{}, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(profile.HashedPassword, []byte(password)); err != nil {
		return models.Profile{}, fmt.Errorf("invalid credentials")
	}
	return profile, nil
}

// newAccessToken issues a signed HS256 access token for the given profile.
func newAccessToken(profile models.Profile, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":      profile.Email,
		"profile_id": profile.ID.String(),
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// createAndStoreRefreshToken generates a random refresh token, stores its hash with expiry and returns the raw token string
func createAndStoreRefreshToken(profile models.Profile) (string, error) {
	// generate random 32-byte token (hex)
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	// hash for storage
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	rt := models.RefreshToken{ProfileID: profile.ID, TokenHash: th, ExpiresAt: time.Now().Add(30 * 24 * time.Hour)}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}
	return token, nil
}

// findRefreshTokenByRaw looks up the stored record for a raw token string.
func findRefreshTokenByRaw(token string) (*models.RefreshToken, error) {
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	var rt models.RefreshToken
	if err := db.Where("token_hash = ?", th).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}
