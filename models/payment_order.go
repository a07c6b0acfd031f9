package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentOrder is the server-created gateway order. The amount lives here,
// decided before the checkout widget ever opens, so the verify endpoint never
// has to trust anything the client says beyond the three gateway identifiers.
type PaymentOrder struct {
	gorm.Model

	// Gateway order id (e.g. "order_Nxxxxxxxxxxxx").
	OrderID string `gorm:"column:order_id;uniqueIndex;size:100" json:"orderId"`
	Receipt string `gorm:"size:64" json:"receipt"`

	// Advance due, integer rupees. Converted to paise only at the gateway API.
	Amount   int    `gorm:"column:amount" json:"amount"`
	Currency string `gorm:"size:10;default:INR" json:"currency"`

	Status string `gorm:"size:50;default:created;index" json:"status"`

	// Set once a verified payment consumes this order.
	PaymentID     *string `gorm:"column:payment_id;uniqueIndex;size:100" json:"paymentId,omitempty"`
	BookingID     *uint   `gorm:"column:booking_id;index" json:"bookingId,omitempty"`
	ReferenceCode string  `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`

	// Resolved stay at order-creation time.
	PropertyID               uint   `gorm:"column:property_id;index" json:"propertyId"`
	RoomID                   *uint  `gorm:"column:room_id" json:"roomId,omitempty"`
	UserID                   *uint  `gorm:"column:user_id" json:"userId,omitempty"`
	SharingType              string `gorm:"column:sharing_type;size:50" json:"sharingType"`
	PricePerPerson           int    `gorm:"column:price_per_person" json:"pricePerPerson"`
	SecurityDepositPerPerson int    `gorm:"column:security_deposit_per_person" json:"securityDepositPerPerson"`
	TotalAmount              int    `gorm:"column:total_amount" json:"totalAmount"`

	GuestName  string `gorm:"size:255" json:"guestName"`
	GuestEmail string `gorm:"size:255" json:"guestEmail"`
	GuestPhone string `gorm:"size:20" json:"guestPhone"`

	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	// Full intent as submitted, kept for audit / reconciliation.
	IntentSnapshot datatypes.JSON `gorm:"column:intent_snapshot" json:"-"`
}

// PaymentOrder status values.
const (
	OrderStatusCreated        = "created"
	OrderStatusPaid           = "paid"
	OrderStatusFailed         = "failed"
	OrderStatusReconciliation = "needs_reconciliation"
)
