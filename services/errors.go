package services

import "errors"

// Reservation errors — bad or ambiguous selection, recoverable by re-prompt.
var (
	ErrNoSelection         = errors.New("no_selection")
	ErrPropertyNotFound    = errors.New("property_not_found")
	ErrPropertyUnavailable = errors.New("property_unavailable")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrRoomUnavailable     = errors.New("room_unavailable")
	ErrSharingSoldOut      = errors.New("sharing_type_sold_out")
)

// Validation errors — malformed input, caught before any network call.
var (
	ErrInvalidPrice  = errors.New("invalid_price")
	ErrInvalidIntent = errors.New("invalid_intent")
	ErrInvalidPhone  = errors.New("invalid_phone")
)

// Payment errors.
var (
	ErrOrderNotFound    = errors.New("order_not_found")
	ErrSignatureInvalid = errors.New("signature_invalid")
	ErrGatewayError     = errors.New("gateway_error")
)

// Booking (ledger) errors. ErrRoomNoLongerAvailable fires after the payment
// was already captured — the highest-severity class in this flow.
var (
	ErrRoomNoLongerAvailable = errors.New("room_no_longer_available")
	ErrBookingNotFound       = errors.New("booking_not_found")
	ErrProfileNotFound       = errors.New("profile_not_found")
)
