package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetCategory classifies what an uploaded file is for.
type AssetCategory string

const (
	CategoryAudio          AssetCategory = "AUDIO"
	CategoryCoverArt       AssetCategory = "COVER_ART"
	CategoryGuestPhoto     AssetCategory = "GUEST_PHOTO"
	CategoryEpisodeArtwork AssetCategory = "EPISODE_ARTWORK"
	CategoryOther          AssetCategory = "OTHER"
)

func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryAudio, CategoryCoverArt, CategoryGuestPhoto, CategoryEpisodeArtwork, CategoryOther:
		return true
	}
	return false
}

// Asset is upload metadata. The file content itself lives on disk under
// the upload dir, keyed by StoredName.
type Asset struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Filename    string        `gorm:"size:255;not null" json:"filename"`
	StoredName  string        `gorm:"size:255;not null;uniqueIndex" json:"storedName"`
	MimeType    string        `gorm:"size:100;not null" json:"mimeType"`
	Size        int64         `gorm:"not null" json:"size"`
	Category    AssetCategory `gorm:"type:varchar(20);not null;default:'OTHER';index" json:"category"`
	EpisodeID   *uuid.UUID    `gorm:"type:uuid;index" json:"episodeId"`
	Episode     *Episode      `json:"episode,omitempty"`
	Description string        `gorm:"size:1000" json:"description"`
	// Probed from MP3 frames on upload, nil for non-audio files.
	DurationSec *float64  `json:"durationSec,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Category == "" {
		a.Category = CategoryOther
	}
	return nil
}
