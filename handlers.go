package main

import (
	"net/http"
	"time"

	"pfbe/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/", rootHandler)
	api.POST("/login", loginHandler)
	api.POST("/refresh", refreshHandler)
	api.POST("/revoke_refresh", revokeRefreshHandler)
	api.POST("/contact", contactHandler)

	// Reads stay public; the site renders for every visitor.
	api.GET("/profile", getProfileHandler)
	api.GET("/projects", listProjectsHandler)
	api.GET("/certificates", listCertificatesHandler)
	api.GET("/certificates/:slug", getCertificateBySlugHandler)
	api.GET("/experiences", listExperiencesHandler)
	api.GET("/interests", listInterestsHandler)
	api.GET("/services", listServicesHandler)

	// Profile creation is the bootstrap path for a fresh instance, before any
	// credentials exist. Duplicate emails are rejected in the handler.
	api.POST("/profile", createProfileHandler)

	// Every other mutation requires a valid access token.
	authGroup := api.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.PUT("/profile/:id", updateProfileHandler)
	authGroup.POST("/projects", createProjectHandler)
	authGroup.PUT("/projects/:id", updateProjectHandler)
	authGroup.DELETE("/projects/:id", deleteProjectHandler)
	authGroup.POST("/certificates", createCertificateHandler)
	authGroup.PUT("/certificates/:id", updateCertificateHandler)
	authGroup.DELETE("/certificates/:id", deleteCertificateHandler)
	authGroup.POST("/experiences", createExperienceHandler)
	authGroup.DELETE("/experiences/:id", deleteExperienceHandler)
	authGroup.POST("/interests", createInterestHandler)
	authGroup.DELETE("/interests/:id", deleteInterestHandler)
	authGroup.POST("/services", createServiceHandler)
	authGroup.DELETE("/services/:id", deleteServiceHandler)
	authGroup.POST("/uploads", uploadAssetHandler)
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio Backend is running"})
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		profileID, _ := claims["profile_id"].(string)
		c.Set("email", email)
		if profileID != "" {
			c.Set("profile_id", profileID)
		}
		c.Next()
	}
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	tokenString, err := newAccessToken(profile, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := createAndStoreRefreshToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": tokenString, "refresh_token": refreshToken})
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	var profile models.Profile
	if err := db.First(&profile, "id = ?", rt.ProfileID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "profile not found"})
		return
	}
	tokenString, err := newAccessToken(profile, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate refresh token: revoke existing and create new one
	db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true)
	newRT, err := createAndStoreRefreshToken(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout)
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	rt.Revoked = true
	if err := db.Save(rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}
