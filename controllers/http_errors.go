package controllers

import (
	"errors"
	"net/http"

	"pgstay-backend/services"
)

// statusForError maps service sentinel errors onto HTTP status codes and the
// machine-readable codes the frontend switches on.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNoSelection):
		return http.StatusBadRequest, "no_selection"
	case errors.Is(err, services.ErrPropertyNotFound):
		return http.StatusNotFound, "property_not_found"
	case errors.Is(err, services.ErrPropertyUnavailable):
		return http.StatusConflict, "property_unavailable"
	case errors.Is(err, services.ErrRoomNotFound):
		return http.StatusNotFound, "room_not_found"
	case errors.Is(err, services.ErrRoomUnavailable):
		return http.StatusConflict, "room_unavailable"
	case errors.Is(err, services.ErrSharingSoldOut):
		return http.StatusConflict, "sharing_type_sold_out"
	case errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidIntent),
		errors.Is(err, services.ErrInvalidPhone):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound, "order_not_found"
	case errors.Is(err, services.ErrSignatureInvalid):
		return http.StatusBadRequest, "signature_invalid"
	case errors.Is(err, services.ErrGatewayError):
		return http.StatusBadGateway, "gateway_error"
	case errors.Is(err, services.ErrRoomNoLongerAvailable):
		return http.StatusConflict, "room_no_longer_available"
	case errors.Is(err, services.ErrBookingNotFound):
		return http.StatusNotFound, "booking_not_found"
	case errors.Is(err, services.ErrProfileNotFound):
		return http.StatusNotFound, "profile_not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// messageForCode gives the human-readable line shown next to the code.
func messageForCode(code string) string {
	switch code {
	case "no_selection":
		return "Please select a room or sharing type before continuing."
	case "property_not_found", "room_not_found":
		return "The selected listing could not be found."
	case "property_unavailable", "room_unavailable", "sharing_type_sold_out":
		return "This option is sold out. Please pick another room or sharing type."
	case "validation_error":
		return "Some details are missing or invalid. Please check and try again."
	case "order_not_found":
		return "We could not find this payment order. Please restart the booking."
	case "signature_invalid":
		return "Payment verification failed. No booking was created; if money was deducted it will be refunded."
	case "gateway_error":
		return "The payment provider is unreachable. Please try again in a moment."
	case "room_no_longer_available":
		return "Your payment was received but the last bed was just taken. Our team will contact you to reassign or refund — keep your payment id handy."
	case "booking_not_found":
		return "Booking not found."
	case "profile_not_found":
		return "Profile not found."
	default:
		return "Something went wrong. Please try again."
	}
}
