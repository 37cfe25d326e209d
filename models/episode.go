package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EpisodeStatus is the production stage of an episode. Stages are ordered
// for the pipeline view but any transition between them is allowed.
type EpisodeStatus string

const (
	StatusIdea      EpisodeStatus = "IDEA"
	StatusPlanned   EpisodeStatus = "PLANNED"
	StatusRecording EpisodeStatus = "RECORDING"
	StatusEditing   EpisodeStatus = "EDITING"
	StatusPublished EpisodeStatus = "PUBLISHED"
)

// PipelineStatuses is the fixed group order of the pipeline view.
var PipelineStatuses = []EpisodeStatus{
	StatusIdea,
	StatusPlanned,
	StatusRecording,
	StatusEditing,
	StatusPublished,
}

func (s EpisodeStatus) Valid() bool {
	switch s {
	case StatusIdea, StatusPlanned, StatusRecording, StatusEditing, StatusPublished:
		return true
	}
	return false
}

type Episode struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"size:500;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Status      EpisodeStatus `gorm:"type:varchar(20);not null;default:'IDEA';index" json:"status"`
	EpisodeNum  *int          `json:"episodeNum"`
	ScheduledAt *time.Time    `json:"scheduledAt"`
	// Stamped the first time the status enters PUBLISHED, never cleared.
	PublishedAt *time.Time `json:"publishedAt"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Guests []EpisodeGuest `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE" json:"guests,omitempty"`
	Assets []Asset        `gorm:"foreignKey:EpisodeID" json:"assets,omitempty"`

	// Filled by list/pipeline queries, not a column.
	AssetCount int64 `gorm:"-" json:"assetCount"`
}

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = StatusIdea
	}
	return nil
}

// EpisodeGuest links one guest to one episode with a role label.
// The (episode_id, guest_id) pair is unique: assigning the same guest to
// the same episode twice is a conflict, regardless of role.
type EpisodeGuest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EpisodeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_episode_guest" json:"episodeId"`
	Episode   *Episode  `gorm:"constraint:OnDelete:CASCADE" json:"episode,omitempty"`
	GuestID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_episode_guest" json:"guestId"`
	Guest     *Guest    `gorm:"constraint:OnDelete:CASCADE" json:"guest,omitempty"`
	Role      string    `gorm:"size:50;not null;default:'guest'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (eg *EpisodeGuest) BeforeCreate(tx *gorm.DB) error {
	if eg.ID == uuid.Nil {
		eg.ID = uuid.New()
	}
	if eg.Role == "" {
		eg.Role = "guest"
	}
	return nil
}
