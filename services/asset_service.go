package services

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dhnguyen/podcast-tracker/models"
)

type AssetService struct {
	db        *gorm.DB
	uploadDir string
}

func NewAssetService(db *gorm.DB, uploadDir string) *AssetService {
	return &AssetService{db: db, uploadDir: uploadDir}
}

// CreateAssetInput is the metadata for a file the upload handler has
// already validated and written to disk.
type CreateAssetInput struct {
	Filename    string
	StoredName  string
	MimeType    string
	Size        int64
	Category    models.AssetCategory
	EpisodeID   *uuid.UUID
	Description string
	DurationSec *float64
}

// List returns assets newest first, optionally filtered by category
// and/or episode, each with a minimal linked-episode summary.
func (s *AssetService) List(category models.AssetCategory, episodeID *uuid.UUID, page, limit int) (Page[models.Asset], error) {
	query := s.db.Model(&models.Asset{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if episodeID != nil {
		query = query.Where("episode_id = ?", *episodeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Page[models.Asset]{}, err
	}

	var assets []models.Asset
	if err := query.
		Preload("Episode", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, title")
		}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&assets).Error; err != nil {
		return Page[models.Asset]{}, err
	}

	return newPage(assets, total, page, limit), nil
}

func (s *AssetService) Get(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := s.db.
		Preload("Episode", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, title")
		}).
		First(&asset, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &asset, nil
}

func (s *AssetService) Create(input CreateAssetInput) (*models.Asset, error) {
	if input.EpisodeID != nil {
		if err := s.db.Select("id").First(&models.Episode{}, "id = ?", *input.EpisodeID).Error; err != nil {
			return nil, translate(err)
		}
	}

	asset := models.Asset{
		Filename:    input.Filename,
		StoredName:  input.StoredName,
		MimeType:    input.MimeType,
		Size:        input.Size,
		Category:    input.Category,
		EpisodeID:   input.EpisodeID,
		Description: input.Description,
		DurationSec: input.DurationSec,
	}
	if err := s.db.Create(&asset).Error; err != nil {
		return nil, translate(err)
	}
	return &asset, nil
}

// Delete removes the metadata record, then tries to remove the backing
// file. A file that is already gone is not an error.
func (s *AssetService) Delete(id uuid.UUID) error {
	var asset models.Asset
	if err := s.db.First(&asset, "id = ?", id).Error; err != nil {
		return translate(err)
	}

	if err := s.db.Delete(&asset).Error; err != nil {
		return translate(err)
	}

	path := s.FilePath(&asset)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("could not remove backing file %s: %v", path, err)
	}
	return nil
}

// FilePath maps an asset to its on-disk location: audio/* files live
// under audio/, everything else under images/.
func (s *AssetService) FilePath(asset *models.Asset) string {
	subdir := "images"
	if strings.HasPrefix(asset.MimeType, "audio/") {
		subdir = "audio"
	}
	return filepath.Join(s.uploadDir, subdir, asset.StoredName)
}
