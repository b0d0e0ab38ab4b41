package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joshbuilds/portfolio-api/database"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadHandlers struct {
	Files *database.FilesClient
}

func NewUploadHandlers(files *database.FilesClient) *UploadHandlers {
	return &UploadHandlers{Files: files}
}

// UploadImage accepts a single multipart "image" field, validates extension,
// declared content type and size, and stores it under a unique name in the
// uploads directory. Rejections happen before anything touches disk.
func (h *UploadHandlers) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 5MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed (jpg, png, gif, webp)"})
		return
	}

	filename := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String(), filepath.Base(file.Filename))
	dest := filepath.Join(h.Files.UploadsDir, filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		log.Printf("Error saving uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      "/api/uploads/" + filename,
		"filename": filename,
	})
}
