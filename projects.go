package main

import (
	"net/http"

	"pfbe/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func listProjectsHandler(c *gin.Context) {
	q := db.Model(&models.Project{})
	if pid := c.Query("profile_id"); pid != "" {
		q = q.Where("profile_id = ?", pid)
	}
	var projects []models.Project
	if err := q.Order("created_at asc").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func createProjectHandler(c *gin.Context) {
	var req models.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.ProjectStatusCompleted
	}
	if !models.ValidProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if req.ProfileID == uuid.Nil {
		req.ProfileID = profileIDFromContext(c)
	}
	if err := db.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusOK, req)
}

func updateProjectHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	var existing models.Project
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	var req models.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != "" && !models.ValidProjectStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	req.ID = id
	if err := db.Model(&existing).Omit("id", "created_at", "profile_id").Updates(req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	var updated models.Project
	if err := db.First(&updated, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload project"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func deleteProjectHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	res := db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

// profileIDFromContext resolves the authenticated profile id set by
// jwtAuthMiddleware; uuid.Nil when absent or malformed.
func profileIDFromContext(c *gin.Context) uuid.UUID {
	v, _ := c.Get("profile_id")
	s, _ := v.(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
