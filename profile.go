package main

import (
	"net/http"

	"pfbe/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// getProfileHandler returns the single owner profile with its about-page
// collections nested, the way the frontend consumes it on first load.
func getProfileHandler(c *gin.Context) {
	var profile models.Profile
	err := db.
		Preload("Experiences", sortedByInsertion).
		Preload("Interests", sortedByInsertion).
		Preload("Services", sortedByInsertion).
		Order("created_at asc").
		First(&profile).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// sortedByInsertion preserves backend insertion order as display order.
func sortedByInsertion(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at asc")
}

func createProfileHandler(c *gin.Context) {
	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.Email != "" {
		var existing models.Profile
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
	}
	if req.Password != "" {
		hashed, err := HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.HashedPassword = hashed
		req.Password = ""
	}
	if err := db.Omit("Experiences", "Interests", "Services").Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// updateProfileHandler applies a partial update. Unsent and blank fields are
// left alone; a non-blank password is re-hashed before storage.
func updateProfileHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}
	var existing models.Profile
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password != "" {
		hashed, err := HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.HashedPassword = hashed
		req.Password = ""
	}
	req.ID = id
	err = db.Model(&existing).
		Omit("id", "created_at", "Experiences", "Interests", "Services").
		Updates(req).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	var updated models.Profile
	if err := db.First(&updated, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
