package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhnguyen/podcast-tracker/services"
)

type GuestController struct {
	service *services.GuestService
}

func NewGuestController(service *services.GuestService) *GuestController {
	return &GuestController{service: service}
}

// GET /api/guests
func (ctl *GuestController) List(c *gin.Context) {
	page, limit := parsePagination(c)
	result, err := ctl.service.List(c.Query("search"), page, limit)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/guests/:id
func (ctl *GuestController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	guest, err := ctl.service.Get(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// POST /api/guests
func (ctl *GuestController) Create(c *gin.Context) {
	var input services.CreateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBindError(c, err)
		return
	}
	guest, err := ctl.service.Create(input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// PATCH /api/guests/:id
func (ctl *GuestController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.UpdateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBindError(c, err)
		return
	}
	// omitempty skips the min check for "", so guard the clear explicitly.
	if input.Name != nil && *input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []FieldError{{Path: "name", Message: "must not be empty"}},
		})
		return
	}
	guest, err := ctl.service.Update(id, input)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// DELETE /api/guests/:id
func (ctl *GuestController) Delete(c *gin.Context) {
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
