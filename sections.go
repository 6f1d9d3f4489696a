package main

import (
	"net/http"

	"pfbe/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handlers for the three about-page collections. They share a shape (list is
// scoped to a profile, create binds the full record, delete is by id) but are
// kept as explicit per-resource handlers to match the routes they serve.

func listExperiencesHandler(c *gin.Context) {
	pid := c.Query("profile_id")
	if pid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id is required"})
		return
	}
	var items []models.Experience
	if err := db.Where("profile_id = ?", pid).Order("created_at asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func createExperienceHandler(c *gin.Context) {
	var req models.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProfileID == uuid.Nil {
		req.ProfileID = profileIDFromContext(c)
	}
	if err := db.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create experience"})
		return
	}
	c.JSON(http.StatusOK, req)
}

func deleteExperienceHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience id"})
		return
	}
	res := db.Delete(&models.Experience{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete experience"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Experience not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experience deleted"})
}

func listInterestsHandler(c *gin.Context) {
	pid := c.Query("profile_id")
	if pid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id is required"})
		return
	}
	var items []models.Interest
	if err := db.Where("profile_id = ?", pid).Order("created_at asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func createInterestHandler(c *gin.Context) {
	var req models.Interest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProfileID == uuid.Nil {
		req.ProfileID = profileIDFromContext(c)
	}
	if err := db.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create interest"})
		return
	}
	c.JSON(http.StatusOK, req)
}

func deleteInterestHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interest id"})
		return
	}
	res := db.Delete(&models.Interest{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete interest"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Interest not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "interest deleted"})
}

func listServicesHandler(c *gin.Context) {
	pid := c.Query("profile_id")
	if pid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id is required"})
		return
	}
	var items []models.Service
	if err := db.Where("profile_id = ?", pid).Order("created_at asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func createServiceHandler(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProfileID == uuid.Nil {
		req.ProfileID = profileIDFromContext(c)
	}
	if err := db.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusOK, req)
}

func deleteServiceHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}
	res := db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
