package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking is the ledger entry: exactly one row per verified payment.
// PaymentID carries a unique index so a replayed gateway callback can never
// produce a second row.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	PropertyID uint  `gorm:"index;column:property_id" json:"property_id"`
	RoomID     *uint `gorm:"index;column:room_id" json:"room_id,omitempty"`
	UserID     *uint `gorm:"index;column:user_id" json:"user_id,omitempty"`

	ReferenceCode string `gorm:"column:reference_code;size:64;index" json:"reference_code"`

	GuestName  string `gorm:"size:255" json:"guest_name"`
	GuestEmail string `gorm:"size:255" json:"guest_email"`
	GuestPhone string `gorm:"size:20" json:"guest_phone"`

	SharingType              string `gorm:"column:sharing_type;size:50" json:"sharing_type"`
	PricePerPerson           int    `gorm:"column:price_per_person" json:"price_per_person"`
	SecurityDepositPerPerson int    `gorm:"column:security_deposit_per_person" json:"security_deposit_per_person"`

	TotalAmount int `gorm:"column:total_amount" json:"total_amount"`
	AmountPaid  int `gorm:"column:amount_paid" json:"amount_paid"`
	AmountDue   int `gorm:"column:amount_due" json:"amount_due"`

	PaymentMethod string `gorm:"column:payment_method;size:50" json:"payment_method"`
	PaymentStatus string `gorm:"column:payment_status;size:50" json:"payment_status"`
	BookingStatus string `gorm:"column:booking_status;size:50" json:"booking_status"`

	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"check_in_date,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"check_out_date,omitempty"`
	BookingDate  time.Time  `gorm:"column:booking_date" json:"booking_date"`
	PaymentDate  *time.Time `gorm:"column:payment_date" json:"payment_date,omitempty"`

	// Gateway transaction reference.
	PaymentID string `gorm:"column:payment_id;uniqueIndex;size:100" json:"payment_id"`

	Notes datatypes.JSON `gorm:"column:notes" json:"notes,omitempty"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
	Room     *Room    `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Booking status values written by the ledger.
const (
	BookingStatusBooked    = "booked"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPartial       = "partial"
	PaymentStatusPaid          = "paid"
	PaymentStatusRefundPending = "refund_pending"
)
