package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dhnguyen/podcast-tracker/models"
)

type GuestService struct {
	db *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db}
}

type CreateGuestInput struct {
	Name      string `json:"name" binding:"required,max=200"`
	Bio       string `json:"bio" binding:"max=5000"`
	PhotoURL  string `json:"photoUrl" binding:"omitempty,url"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=30"`
	Website   string `json:"website" binding:"omitempty,url"`
	Twitter   string `json:"twitter" binding:"max=100"`
	LinkedIn  string `json:"linkedin" binding:"max=200"`
	Instagram string `json:"instagram" binding:"max=100"`
	Notes     string `json:"notes"`
}

// UpdateGuestInput carries a partial update: nil means "leave untouched",
// a pointer to the empty string clears the field.
type UpdateGuestInput struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Bio       *string `json:"bio" binding:"omitempty,max=5000"`
	PhotoURL  *string `json:"photoUrl" binding:"omitempty,url"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Website   *string `json:"website" binding:"omitempty,url"`
	Twitter   *string `json:"twitter" binding:"omitempty,max=100"`
	LinkedIn  *string `json:"linkedin" binding:"omitempty,max=200"`
	Instagram *string `json:"instagram" binding:"omitempty,max=100"`
	Notes     *string `json:"notes"`
}

// List returns guests newest first, each annotated with how many episode
// assignments reference it. Search matches the name case-insensitively.
func (s *GuestService) List(search string, page, limit int) (Page[models.Guest], error) {
	query := s.db.Model(&models.Guest{})
	if search != "" {
		// LOWER/LIKE instead of ILIKE so the query also runs on sqlite.
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Page[models.Guest]{}, err
	}

	var guests []models.Guest
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&guests).Error; err != nil {
		return Page[models.Guest]{}, err
	}

	if err := s.attachAppearanceCounts(guests); err != nil {
		return Page[models.Guest]{}, err
	}

	return newPage(guests, total, page, limit), nil
}

func (s *GuestService) attachAppearanceCounts(guests []models.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(guests))
	for _, g := range guests {
		ids = append(ids, g.ID)
	}

	var rows []struct {
		GuestID uuid.UUID
		Count   int64
	}
	if err := s.db.Model(&models.EpisodeGuest{}).
		Select("guest_id, COUNT(*) AS count").
		Where("guest_id IN ?", ids).
		Group("guest_id").
		Scan(&rows).Error; err != nil {
		return err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.GuestID] = r.Count
	}
	for i := range guests {
		guests[i].AppearanceCount = counts[guests[i].ID]
	}
	return nil
}

// Get returns a guest with its appearances, each including the episode.
func (s *GuestService) Get(id uuid.UUID) (*models.Guest, error) {
	var guest models.Guest
	err := s.db.
		Preload("Appearances", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Appearances.Episode").
		First(&guest, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	guest.AppearanceCount = int64(len(guest.Appearances))
	return &guest, nil
}

func (s *GuestService) Create(input CreateGuestInput) (*models.Guest, error) {
	guest := models.Guest{
		Name:      input.Name,
		Bio:       input.Bio,
		PhotoURL:  input.PhotoURL,
		Email:     input.Email,
		Phone:     input.Phone,
		Website:   input.Website,
		Twitter:   input.Twitter,
		LinkedIn:  input.LinkedIn,
		Instagram: input.Instagram,
		Notes:     input.Notes,
	}
	if err := s.db.Create(&guest).Error; err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}

func (s *GuestService) Update(id uuid.UUID, input UpdateGuestInput) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.PhotoURL != nil {
		updates["photo_url"] = *input.PhotoURL
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Website != nil {
		updates["website"] = *input.Website
	}
	if input.Twitter != nil {
		updates["twitter"] = *input.Twitter
	}
	if input.LinkedIn != nil {
		updates["linked_in"] = *input.LinkedIn
	}
	if input.Instagram != nil {
		updates["instagram"] = *input.Instagram
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&guest).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}

	if err := s.db.First(&guest, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}

// Delete removes the guest and all of its assignment rows in one
// transaction so concurrent readers never see an orphaned assignment.
func (s *GuestService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id = ?", id).Delete(&models.EpisodeGuest{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Guest{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
