package controllers

import (
	"net/http"

	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetPropertyRooms lists rooms of a property (public, property page).
func (rc *RoomController) GetPropertyRooms(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	rooms, err := rc.RoomSvc.ListByProperty(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateRoom (admin).
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}

	if err := rc.RoomSvc.CreateRoom(c.Request.Context(), &room); err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// UpdateRoom (admin) applies a partial update; capacity edits land here.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}
	delete(updates, "id")
	delete(updates, "property_id")

	room, err := rc.RoomSvc.UpdateRoom(c.Request.Context(), id, updates)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom (admin).
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.RoomSvc.DeleteRoom(c.Request.Context(), id); err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
