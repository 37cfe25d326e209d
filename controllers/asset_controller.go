package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dhnguyen/podcast-tracker/models"
	"github.com/dhnguyen/podcast-tracker/services"
	"github.com/dhnguyen/podcast-tracker/utils"
)

type AssetController struct {
	service        *services.AssetService
	uploadDir      string
	maxUploadBytes int64
}

func NewAssetController(service *services.AssetService, uploadDir string, maxUploadBytes int64) *AssetController {
	return &AssetController{
		service:        service,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}

// GET /api/assets
func (ctl *AssetController) List(c *gin.Context) {
	category := models.AssetCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category filter"})
		return
	}

	var episodeID *uuid.UUID
	if raw := c.Query("episodeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid episodeId filter"})
			return
		}
		episodeID = &parsed
	}

	page, limit := parsePagination(c)
	result, err := ctl.service.List(category, episodeID, page, limit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/assets/:id
func (ctl *AssetController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	asset, err := ctl.service.Get(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// POST /api/assets/upload (multipart: file, category, episodeId?, description?)
func (ctl *AssetController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > ctl.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if !utils.IsAllowedMime(mimeType) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error": fmt.Sprintf("File type %s not allowed", mimeType),
		})
		return
	}

	category := models.AssetCategory(c.PostForm("category"))
	if category == "" {
		category = models.CategoryOther
	}
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	// An empty episodeId means "not associated".
	var episodeID *uuid.UUID
	if raw := c.PostForm("episodeId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid episodeId"})
			return
		}
		episodeID = &parsed
	}

	description := c.PostForm("description")
	if len(description) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description too long"})
		return
	}

	storedName := utils.StoredName(file.Filename)
	dst := filepath.Join(ctl.uploadDir, utils.UploadSubdir(mimeType), storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("could not store upload %s: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	asset, err := ctl.service.Create(services.CreateAssetInput{
		Filename:    file.Filename,
		StoredName:  storedName,
		MimeType:    mimeType,
		Size:        file.Size,
		Category:    category,
		EpisodeID:   episodeID,
		Description: description,
		DurationSec: probeDuration(dst, mimeType),
	})
	if err != nil {
		// Metadata insert failed, the stored file is unreachable.
		if rmErr := os.Remove(dst); rmErr != nil {
			log.Printf("could not remove orphaned upload %s: %v", dst, rmErr)
		}
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// probeDuration decodes MP3 frames of a stored upload to measure its
// length. Failures only cost the annotation, never the upload.
func probeDuration(path, mimeType string) *float64 {
	if mimeType != "audio/mpeg" && mimeType != "audio/mp3" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		log.Printf("could not open %s for duration probe: %v", path, err)
		return nil
	}
	defer f.Close()

	dur, err := services.MP3Duration(f)
	if err != nil {
		log.Printf("could not probe duration of %s: %v", path, err)
		return nil
	}
	return &dur
}

// DELETE /api/assets/:id
func (ctl *AssetController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/assets/:id/download
func (ctl *AssetController) Download(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	asset, err := ctl.service.Get(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	path := ctl.service.FilePath(asset)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.FileAttachment(path, asset.Filename)
}
