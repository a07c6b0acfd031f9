package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"pgstay-backend/models"
	"pgstay-backend/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService is the ledger writer: the only booking-direction mutator of
// available_beds. Admin capacity edits go through RoomService and are allowed
// to race with this (last-write-wins), but the decrement here is always a
// guarded conditional update, never read-then-write.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// ConfirmBooking atomically decrements the bed counter and inserts the
// booking row for a verified payment. Replaying the same payment id returns
// the original row.
func (s *BookingService) ConfirmBooking(order models.PaymentOrder, paymentID string) (models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// idempotent: a prior attempt already consumed this payment id
		var existing models.Booking
		err := tx.Where("payment_id = ?", paymentID).First(&existing).Error
		if err == nil {
			booking = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing booking: %w", err)
		}

		if order.RoomID != nil {
			res := tx.Model(&models.Room{}).
				Where("id = ? AND is_available = ? AND available_beds > 0", *order.RoomID, true).
				UpdateColumn("available_beds", gorm.Expr("available_beds - 1"))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement beds for room %d: %w", *order.RoomID, res.Error)
			}
			if res.RowsAffected == 0 {
				return ErrRoomNoLongerAvailable
			}
		} else {
			// Whole-property stay: the availability flag is the counter.
			res := tx.Model(&models.Property{}).
				Where("id = ? AND is_available = ?", order.PropertyID, true).
				UpdateColumn("is_available", false)
			if res.Error != nil {
				return fmt.Errorf("failed to reserve property %d: %w", order.PropertyID, res.Error)
			}
			if res.RowsAffected == 0 {
				return ErrRoomNoLongerAvailable
			}
		}

		ref, err := utils.GenerateReferenceCode(8)
		if err != nil {
			return fmt.Errorf("failed to generate reference code: %w", err)
		}

		now := time.Now().UTC()
		booking = models.Booking{
			PropertyID: order.PropertyID,
			RoomID:     order.RoomID,
			UserID:     order.UserID,

			ReferenceCode: ref,

			GuestName:  order.GuestName,
			GuestEmail: order.GuestEmail,
			GuestPhone: order.GuestPhone,

			SharingType:              order.SharingType,
			PricePerPerson:           order.PricePerPerson,
			SecurityDepositPerPerson: order.SecurityDepositPerPerson,

			TotalAmount: order.TotalAmount,
			AmountPaid:  order.Amount,
			AmountDue:   order.TotalAmount - order.Amount,

			PaymentMethod: "razorpay",
			PaymentStatus: models.PaymentStatusPartial,
			BookingStatus: models.BookingStatusBooked,

			CheckInDate:  order.CheckInDate,
			CheckOutDate: order.CheckOutDate,
			BookingDate:  now,
			PaymentDate:  &now,

			PaymentID: paymentID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})

	if txErr != nil {
		// Two verifications raced past the pre-check; the unique index on
		// payment_id decided the winner. Return the row that won.
		if isDuplicateEntry(txErr) {
			var existing models.Booking
			if err := s.DB.Where("payment_id = ?", paymentID).First(&existing).Error; err == nil {
				return existing, nil
			}
		}
		return models.Booking{}, txErr
	}
	return booking, nil
}

// CancelBooking is the admin cancellation transition: marks the booking
// cancelled with the payment flagged for refund, and restores the consumed
// bed (capped at total_beds) or the property's availability flag.
func (s *BookingService) CancelBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		// idempotent
		if booking.BookingStatus == models.BookingStatusCancelled {
			return nil
		}

		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"booking_status": models.BookingStatusCancelled,
			"payment_status": models.PaymentStatusRefundPending,
		}).Error; err != nil {
			return err
		}

		if booking.RoomID != nil {
			res := tx.Model(&models.Room{}).
				Where("id = ? AND available_beds < total_beds", *booking.RoomID).
				UpdateColumn("available_beds", gorm.Expr("available_beds + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Capacity was shrunk by an admin edit in the meantime;
				// the cancellation itself still goes through.
				log.Printf("warning: bed not restored for room %d (already at capacity)", *booking.RoomID)
			}
		} else {
			if err := tx.Model(&models.Property{}).
				Where("id = ?", booking.PropertyID).
				UpdateColumn("is_available", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetBooking loads one booking with its property and room.
func (s *BookingService) GetBooking(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Property").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// GetBookingByReference looks a booking up by its reference code, for the
// guest-facing success page.
func (s *BookingService) GetBookingByReference(ref string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Property").Preload("Room").
		Where("reference_code = ?", ref).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// ListBookings returns all bookings newest-first for the admin screen.
func (s *BookingService) ListBookings() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Property").
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}
