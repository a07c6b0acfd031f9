package controllers

import (
	"net/http"
	"strconv"

	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: svc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", "id must be numeric", nil)
		return 0, false
	}
	return uint(id), true
}

// GetProperties is the public catalog listing, filterable by city/area.
func (pc *PropertyController) GetProperties(c *gin.Context) {
	filter := services.PropertyFilter{
		City:          c.Query("city"),
		Area:          c.Query("area"),
		OnlyAvailable: c.DefaultQuery("available", "true") == "true",
	}

	list, err := pc.PropertySvc.ListProperties(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve properties")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetProperty returns one property with its rooms.
func (pc *PropertyController) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	property, err := pc.PropertySvc.GetProperty(id)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// CreateProperty (admin).
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}
	if property.OwnerPhone != "" && !utils.IsValidMobile(property.OwnerPhone) {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", "owner phone must be a 10-digit mobile number", nil)
		return
	}
	property.OwnerPhone = utils.NormalizePhoneNumber(property.OwnerPhone)

	if err := pc.PropertySvc.CreateProperty(c.Request.Context(), &property); err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

// UpdateProperty (admin) applies a partial update.
func (pc *PropertyController) UpdateProperty(c *gin.Context) {
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

	property, err := pc.PropertySvc.UpdateProperty(c.Request.Context(), id, updates)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// DeleteProperty (admin).
func (pc *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := pc.PropertySvc.DeleteProperty(c.Request.Context(), id); err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
