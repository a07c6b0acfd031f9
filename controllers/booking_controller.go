package controllers

import (
	"net/http"
	"strconv"

	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc     *services.BookingService
	ReservationSvc *services.ReservationService
}

func NewBookingController(bookingSvc *services.BookingService, reservationSvc *services.ReservationService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, ReservationSvc: reservationSvc}
}

// BookingSummaryRequest mirrors the order request minus payment; the summary
// page shows amounts before any money moves.
type BookingSummaryRequest struct {
	PropertyID  uint   `json:"propertyId" binding:"required"`
	RoomID      *uint  `json:"roomId,omitempty"`
	SharingType string `json:"sharingType,omitempty"`
}

// GetBookingSummary resolves a selection and quotes it. No side effects.
func (bc *BookingController) GetBookingSummary(c *gin.Context) {
	var req BookingSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", messageForCode("validation_error"), nil)
		return
	}

	stay, err := bc.ReservationSvc.ResolveStay(services.ReservationIntent{
		PropertyID:  req.PropertyID,
		RoomID:      req.RoomID,
		SharingType: req.SharingType,
	})
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}

	quote, err := services.QuoteStay(stay.PricePerPerson, stay.SecurityDepositPerPerson)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"propertyName":   stay.Property.Name,
		"sharingType":    stay.SharingType,
		"pricePerPerson": stay.PricePerPerson,
		"roomId":         stay.RoomID(),
		"quote":          quote,
	})
}

// GetBooking serves the success page lookup by numeric id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", "booking id must be numeric", nil)
		return
	}

	booking, err := bc.BookingSvc.GetBooking(uint(id))
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookingByRef handles /bookings?ref=... without a path id.
func (bc *BookingController) GetBookingByRef(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", "ref query parameter is required", nil)
		return
	}
	booking, err := bc.BookingSvc.GetBookingByReference(ref)
	if err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookings lists everything for the admin screen.
func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.BookingSvc.ListBookings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// CancelBooking is the admin cancellation transition; it restores the bed.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONErrorCode(c, http.StatusBadRequest, "validation_error", "booking id must be numeric", nil)
		return
	}

	if err := bc.BookingSvc.CancelBooking(uint(id)); err != nil {
		status, code := statusForError(err)
		utils.JSONErrorCode(c, status, code, messageForCode(code), nil)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}
