package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhnguyen/podcast-tracker/models"
	"github.com/dhnguyen/podcast-tracker/services"
)

type EpisodeController struct {
	service *services.EpisodeService
}

func NewEpisodeController(service *services.EpisodeService) *EpisodeController {
	return &EpisodeController{service: service}
}

// GET /api/episodes
func (ctl *EpisodeController) List(c *gin.Context) {
	status := models.EpisodeStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}
	page, limit := parsePagination(c)
	result, err := ctl.service.List(c.Query("search"), status, page, limit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/episodes/:id
func (ctl *EpisodeController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	episode, err := ctl.service.Get(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// POST /api/episodes
func (ctl *EpisodeController) Create(c *gin.Context) {
	var input services.CreateEpisodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBindError(c, err)
		return
	}
	episode, err := ctl.service.Create(input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, episode)
}

// PATCH /api/episodes/:id
func (ctl *EpisodeController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.UpdateEpisodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBindError(c, err)
		return
	}
	// omitempty skips the min check for "", so guard the clear explicitly.
	if input.Title != nil && *input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []FieldError{{Path: "title", Message: "must not be empty"}},
		})
		return
	}
	episode, err := ctl.service.Update(id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// DELETE /api/episodes/:id
func (ctl *EpisodeController) Delete(c *gin.Context) {
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

// POST /api/episodes/:id/guests
func (ctl *EpisodeController) AssignGuest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.AssignGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBindError(c, err)
		return
	}
	assignment, err := ctl.service.AssignGuest(id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// DELETE /api/episodes/:id/guests/:guestId
func (ctl *EpisodeController) RemoveGuest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	guestID, ok := parseID(c, "guestId")
	if !ok {
		return
	}
	if err := ctl.service.RemoveGuest(id, guestID); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/episodes/pipeline
func (ctl *EpisodeController) Pipeline(c *gin.Context) {
	groups, err := ctl.service.Pipeline()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
