package controllers

import (
	"net/http"

	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileSvc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileSvc: svc}
}

type GetOrCreateProfileRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
}

// GetOrCreateProfile creates the profile lazily on first authenticated access.
func (pc *ProfileController) GetOrCreateProfile(c *gin.Context) {
	var req GetOrCreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}

	profile, err := pc.ProfileSvc.GetOrCreate(req.Email, req.FullName)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}

// UpdateProfile lets the user edit contact fields.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
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
	delete(updates, "email")

	profile, err := pc.ProfileSvc.UpdateProfile(id, updates)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, profile)
}
