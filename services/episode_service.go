package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dhnguyen/podcast-tracker/models"
)

type EpisodeService struct {
	db *gorm.DB
}

func NewEpisodeService(db *gorm.DB) *EpisodeService {
	return &EpisodeService{db: db}
}

type CreateEpisodeInput struct {
	Title       string               `json:"title" binding:"required,max=500"`
	Description string               `json:"description" binding:"max=10000"`
	Status      models.EpisodeStatus `json:"status" binding:"omitempty,oneof=IDEA PLANNED RECORDING EDITING PUBLISHED"`
	EpisodeNum  *int                 `json:"episodeNum" binding:"omitempty,gt=0"`
	ScheduledAt *time.Time           `json:"scheduledAt"`
	Notes       string               `json:"notes"`
}

// UpdateEpisodeInput carries a partial update, nil fields untouched.
type UpdateEpisodeInput struct {
	Title       *string               `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string               `json:"description" binding:"omitempty,max=10000"`
	Status      *models.EpisodeStatus `json:"status" binding:"omitempty,oneof=IDEA PLANNED RECORDING EDITING PUBLISHED"`
	EpisodeNum  *int                  `json:"episodeNum" binding:"omitempty,gt=0"`
	ScheduledAt *time.Time            `json:"scheduledAt"`
	Notes       *string               `json:"notes"`
}

type AssignGuestInput struct {
	GuestID uuid.UUID `json:"guestId" binding:"required"`
	Role    string    `json:"role" binding:"max=50"`
}

// PipelineGroup is one fixed stage of the pipeline view.
type PipelineGroup struct {
	Status   models.EpisodeStatus `json:"status"`
	Episodes []models.Episode     `json:"episodes"`
	Count    int                  `json:"count"`
}

// List returns episodes newest first with their guest assignments and
// asset counts. Search matches the title case-insensitively, status is
// an exact filter.
func (s *EpisodeService) List(search string, status models.EpisodeStatus, page, limit int) (Page[models.Episode], error) {
	query := s.db.Model(&models.Episode{})
	if search != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Page[models.Episode]{}, err
	}

	var episodes []models.Episode
	if err := query.
		Preload("Guests.Guest").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&episodes).Error; err != nil {
		return Page[models.Episode]{}, err
	}

	if err := s.attachAssetCounts(episodes); err != nil {
		return Page[models.Episode]{}, err
	}

	return newPage(episodes, total, page, limit), nil
}

func (s *EpisodeService) attachAssetCounts(episodes []models.Episode) error {
	if len(episodes) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(episodes))
	for _, e := range episodes {
		ids = append(ids, e.ID)
	}

	var rows []struct {
		EpisodeID uuid.UUID
		Count     int64
	}
	if err := s.db.Model(&models.Asset{}).
		Select("episode_id, COUNT(*) AS count").
		Where("episode_id IN ?", ids).
		Group("episode_id").
		Scan(&rows).Error; err != nil {
		return err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.EpisodeID] = r.Count
	}
	for i := range episodes {
		episodes[i].AssetCount = counts[episodes[i].ID]
	}
	return nil
}

// Get returns an episode with its full assignment and asset lists.
func (s *EpisodeService) Get(id uuid.UUID) (*models.Episode, error) {
	var episode models.Episode
	err := s.db.
		Preload("Guests.Guest").
		Preload("Assets").
		First(&episode, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	episode.AssetCount = int64(len(episode.Assets))
	return &episode, nil
}

func (s *EpisodeService) Create(input CreateEpisodeInput) (*models.Episode, error) {
	episode := models.Episode{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		EpisodeNum:  input.EpisodeNum,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
	}
	if err := s.db.Create(&episode).Error; err != nil {
		return nil, translate(err)
	}
	return &episode, nil
}

// Update applies a partial update. When the status moves into PUBLISHED
// from any other stored status, publishedAt is stamped with the current
// time in the same update. It is stamped at most once: leaving PUBLISHED
// and re-entering it keeps the original timestamp.
func (s *EpisodeService) Update(id uuid.UUID, input UpdateEpisodeInput) (*models.Episode, error) {
	var episode models.Episode
	if err := s.db.First(&episode, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
		if *input.Status == models.StatusPublished &&
			episode.Status != models.StatusPublished &&
			episode.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}
	if input.EpisodeNum != nil {
		updates["episode_num"] = *input.EpisodeNum
	}
	if input.ScheduledAt != nil {
		updates["scheduled_at"] = *input.ScheduledAt
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&episode).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}

	if err := s.db.First(&episode, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &episode, nil
}

// Delete removes the episode, its assignment rows and the episode
// reference on its assets in one transaction.
func (s *EpisodeService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("episode_id = ?", id).Delete(&models.EpisodeGuest{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Asset{}).
			Where("episode_id = ?", id).
			Update("episode_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Episode{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AssignGuest links a guest to an episode. Both ids must resolve;
// a duplicate (episode, guest) pair is a conflict, surfaced by the
// composite unique index rather than a racy pre-check.
func (s *EpisodeService) AssignGuest(episodeID uuid.UUID, input AssignGuestInput) (*models.EpisodeGuest, error) {
	if err := s.db.Select("id").First(&models.Episode{}, "id = ?", episodeID).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Select("id").First(&models.Guest{}, "id = ?", input.GuestID).Error; err != nil {
		return nil, translate(err)
	}

	assignment := models.EpisodeGuest{
		EpisodeID: episodeID,
		GuestID:   input.GuestID,
		Role:      input.Role,
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, translate(err)
	}

	if err := s.db.Preload("Guest").First(&assignment, "id = ?", assignment.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &assignment, nil
}

func (s *EpisodeService) RemoveGuest(episodeID, guestID uuid.UUID) error {
	res := s.db.
		Where("episode_id = ? AND guest_id = ?", episodeID, guestID).
		Delete(&models.EpisodeGuest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Pipeline groups all episodes by status in the fixed stage order,
// most recently updated first within each group. It always returns
// exactly five groups, empty ones included.
func (s *EpisodeService) Pipeline() ([]PipelineGroup, error) {
	groups := make([]PipelineGroup, 0, len(models.PipelineStatuses))
	for _, status := range models.PipelineStatuses {
		episodes := []models.Episode{}
		if err := s.db.
			Preload("Guests.Guest").
			Where("status = ?", status).
			Order("updated_at DESC").
			Find(&episodes).Error; err != nil {
			return nil, err
		}
		if err := s.attachAssetCounts(episodes); err != nil {
			return nil, err
		}
		groups = append(groups, PipelineGroup{
			Status:   status,
			Episodes: episodes,
			Count:    len(episodes),
		})
	}
	return groups, nil
}
