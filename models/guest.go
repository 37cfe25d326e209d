package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	PhotoURL  string    `gorm:"type:text" json:"photoUrl"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Website   string    `gorm:"type:text" json:"website"`
	Twitter   string    `gorm:"size:100" json:"twitter"`
	LinkedIn  string    `gorm:"size:200" json:"linkedin"`
	Instagram string    `gorm:"size:100" json:"instagram"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Appearances []EpisodeGuest `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"appearances,omitempty"`

	// Filled by the list query, not a column.
	AppearanceCount int64 `gorm:"-" json:"appearanceCount"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
