package main

import (
	"net/http"
	"regexp"
	"strings"

	"pfbe/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// deriveSlug builds a certificate slug from its title: lowercased, whitespace
// runs collapsed to single hyphens. Blank titles fall back to "untitled".
func deriveSlug(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "untitled"
	}
	return whitespaceRE.ReplaceAllString(strings.ToLower(title), "-")
}

func listCertificatesHandler(c *gin.Context) {
	q := db.Model(&models.Certificate{})
	if pid := c.Query("profile_id"); pid != "" {
		q = q.Where("profile_id = ?", pid)
	}
	var certs []models.Certificate
	if err := q.Order("created_at asc").Find(&certs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, certs)
}

func getCertificateBySlugHandler(c *gin.Context) {
	var cert models.Certificate
	if err := db.Where("slug = ?", c.Param("slug")).First(&cert).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	c.JSON(http.StatusOK, cert)
}

func createCertificateHandler(c *gin.Context) {
	var req models.Certificate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Slug == "" {
		req.Slug = deriveSlug(req.Title)
	}
	if req.ProfileID == uuid.Nil {
		req.ProfileID = profileIDFromContext(c)
	}
	// slug is unique per profile
	var existing models.Certificate
	if err := db.Where("profile_id = ? AND slug = ?", req.ProfileID, req.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "certificate slug already exists"})
		return
	}
	if err := db.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create certificate"})
		return
	}
	c.JSON(http.StatusOK, req)
}

func updateCertificateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certificate id"})
		return
	}
	var existing models.Certificate
	if err := db.First(&existing, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	var req models.Certificate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = id
	if err := db.Model(&existing).Omit("id", "created_at", "profile_id").Updates(req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update certificate"})
		return
	}
	var updated models.Certificate
	if err := db.First(&updated, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload certificate"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func deleteCertificateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certificate id"})
		return
	}
	res := db.Delete(&models.Certificate{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete certificate"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "certificate deleted"})
}
