package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// uploadAssetHandler handles multipart upload of profile assets (avatar,
// project/certificate images, resume PDF). The stored file is exposed under
// the public/ prefix; the owner commits the returned path through PUT /profile
// or the entity update, so an upload on its own never changes what the site
// shows.
func uploadAssetHandler(c *gin.Context) {
	folder := c.PostForm("folder")
	if folder == "" {
		folder = "assets"
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5MB)"})
		return
	}
	// simple content type sniff via header
	ct := file.Header.Get("Content-Type")
	baseDir := uploadBaseDir()
	name := filepath.Base(file.Filename)
	relPath := folder + "/" + name
	fullPath := filepath.Join(baseDir, folder, name)
	if err := os.MkdirAll(filepath.Join(baseDir, folder), 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	resp := gin.H{"path": relPath, "store_path": "public/" + relPath}
	if strings.HasPrefix(ct, "image/") {
		if thumbRel, err := writeThumbnail(baseDir, folder, name); err != nil {
			log.Warn().Err(err).Str("file", relPath).Msg("thumbnail generation failed")
		} else {
			resp["thumb_path"] = "public/" + thumbRel
		}
	}
	c.JSON(http.StatusOK, resp)
}

// writeThumbnail renders a 480px bounding-box JPEG next to the original and
// returns its path relative to the upload base.
func writeThumbnail(baseDir, folder, name string) (string, error) {
	src, err := imaging.Open(filepath.Join(baseDir, folder, name))
	if err != nil {
		return "", err
	}
	thumb := imaging.Fit(src, 480, 480, imaging.Lanczos)
	ext := filepath.Ext(name)
	thumbName := strings.TrimSuffix(name, ext) + "_thumb.jpg"
	if err := imaging.Save(thumb, filepath.Join(baseDir, folder, thumbName), imaging.JPEGQuality(85)); err != nil {
		return "", err
	}
	return folder + "/" + thumbName, nil
}
