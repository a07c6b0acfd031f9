package services

import (
	"fmt"
	"log"

	"pgstay-backend/models"
	"pgstay-backend/utils"

	"gorm.io/gorm"
)

// NotificationResult reports best-effort delivery per recipient. Failures
// here never touch the booking.
type NotificationResult struct {
	GuestNotified bool     `json:"guestNotified"`
	OwnerNotified bool     `json:"ownerNotified"`
	Errors        []string `json:"errors,omitempty"`
}

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// Notify sends the guest a confirmation email and logs the wa.me deep links
// for guest and owner. Fire-and-forget from the payment flow's perspective.
func (ns *NotificationService) Notify(booking models.Booking) NotificationResult {
	result := NotificationResult{}

	var property models.Property
	if err := ns.DB.First(&property, booking.PropertyID).Error; err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("load property %d: %v", booking.PropertyID, err))
		return result
	}

	checkIn := "N/A"
	if booking.CheckInDate != nil {
		checkIn = booking.CheckInDate.Format("2006-01-02")
	}

	guestMsg := fmt.Sprintf(
		"Hi %s! Your booking %s at %s is confirmed. Advance paid: Rs. %d. Balance Rs. %d is payable directly to the owner. Move-in: %s.",
		booking.GuestName, booking.ReferenceCode, property.Name,
		booking.AmountPaid, booking.AmountDue, checkIn,
	)
	if link := utils.BuildWhatsAppLink(booking.GuestPhone, guestMsg); link != "" {
		log.Printf("guest whatsapp link for booking %s: %s", booking.ReferenceCode, link)
	} else {
		result.Errors = append(result.Errors, "guest phone not usable for whatsapp")
	}

	ownerMsg := fmt.Sprintf(
		"New booking %s at %s: %s (%s), %s sharing, advance Rs. %d received, balance Rs. %d to collect. Move-in: %s.",
		booking.ReferenceCode, property.Name, booking.GuestName,
		utils.DisplayPhoneNumber(booking.GuestPhone), booking.SharingType,
		booking.AmountPaid, booking.AmountDue, checkIn,
	)
	if link := utils.BuildWhatsAppLink(property.OwnerPhone, ownerMsg); link != "" {
		log.Printf("owner whatsapp link for booking %s: %s", booking.ReferenceCode, link)
		result.OwnerNotified = true
	} else {
		result.Errors = append(result.Errors, "owner phone not usable for whatsapp")
	}

	emailData := utils.BookingEmailData{
		GuestName:     booking.GuestName,
		ReferenceCode: booking.ReferenceCode,
		PropertyName:  property.Name,
		SharingType:   booking.SharingType,
		CheckInDate:   checkIn,
		AmountPaid:    booking.AmountPaid,
		AmountDue:     booking.AmountDue,
		TotalAmount:   booking.TotalAmount,
		PaymentID:     booking.PaymentID,
		OwnerName:     property.OwnerName,
		OwnerPhone:    property.OwnerPhone,
	}
	if err := utils.SendBookingConfirmationEmail(booking.GuestEmail, emailData); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("guest email: %v", err))
	} else {
		result.GuestNotified = true
	}

	return result
}
