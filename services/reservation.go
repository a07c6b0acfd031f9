package services

import (
	"errors"
	"fmt"
	"time"

	"pgstay-backend/models"
	"pgstay-backend/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// ReservationIntent is the ephemeral guest selection, validated once at flow
// entry and threaded through as a single value instead of loose query strings.
type ReservationIntent struct {
	PropertyID  uint   `json:"propertyId" validate:"required"`
	RoomID      *uint  `json:"roomId,omitempty"`
	SharingType string `json:"sharingType,omitempty"`

	FullName string `json:"fullName" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`

	MoveIn         time.Time `json:"moveIn" validate:"required"`
	DurationMonths int       `json:"durationMonths" validate:"required,min=1"`

	UserID *uint `json:"userId,omitempty"`
}

// MoveOut derives the check-out date from move-in + duration.
func (i ReservationIntent) MoveOut() time.Time {
	return i.MoveIn.AddDate(0, i.DurationMonths, 0)
}

// Validate checks the intent before any network call is made.
func (i ReservationIntent) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}
	if !utils.IsValidMobile(i.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

// StayKind tags the two shapes a rentable unit can take.
type StayKind int

const (
	// StayRoom is a discrete room row of a PG property.
	StayRoom StayKind = iota
	// StayWholeProperty is a "Room"-type property rented as one unit.
	StayWholeProperty
)

// Stay is the normalized room-like value the pricing calculator and ledger
// writer consume.
type Stay struct {
	Kind     StayKind
	Property models.Property
	Room     *models.Room

	SharingType              string
	PricePerPerson           int
	SecurityDepositPerPerson *int
}

// RoomID returns the concrete room id, nil for whole-property stays.
func (s Stay) RoomID() *uint {
	if s.Kind == StayRoom && s.Room != nil {
		id := s.Room.ID
		return &id
	}
	return nil
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// ResolveStay resolves an intent to exactly one concrete stay. Resolution
// paths, in priority order: explicit room id, sharing type, whole-property.
func (s *ReservationService) ResolveStay(intent ReservationIntent) (Stay, error) {
	var property models.Property
	if err := s.DB.First(&property, intent.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Stay{}, ErrPropertyNotFound
		}
		return Stay{}, fmt.Errorf("failed to load property %d: %w", intent.PropertyID, err)
	}

	switch {
	case intent.RoomID != nil:
		return s.stayByRoomID(property, *intent.RoomID)
	case intent.SharingType != "":
		return s.stayBySharingType(property, intent.SharingType)
	case property.PropertyType == models.PropertyTypeRoom:
		return stayFromProperty(property)
	default:
		return Stay{}, ErrNoSelection
	}
}

func (s *ReservationService) stayByRoomID(property models.Property, roomID uint) (Stay, error) {
	var room models.Room
	if err := s.DB.Where("property_id = ?", property.ID).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Stay{}, ErrRoomNotFound
		}
		return Stay{}, fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	if !room.IsAvailable || room.AvailableBeds <= 0 {
		return Stay{}, ErrRoomUnavailable
	}
	return Stay{
		Kind:                     StayRoom,
		Property:                 property,
		Room:                     &room,
		SharingType:              room.SharingType,
		PricePerPerson:           room.PricePerPerson,
		SecurityDepositPerPerson: room.SecurityDepositPerPerson,
	}, nil
}

func (s *ReservationService) stayBySharingType(property models.Property, sharingType string) (Stay, error) {
	var rooms []models.Room
	if err := s.DB.
		Where("property_id = ? AND sharing_type = ?", property.ID, sharingType).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return Stay{}, fmt.Errorf("failed to load rooms for sharing type %q: %w", sharingType, err)
	}

	room := pickRepresentativeRoom(rooms)
	if room == nil {
		return Stay{}, ErrSharingSoldOut
	}
	return Stay{
		Kind:                     StayRoom,
		Property:                 property,
		Room:                     room,
		SharingType:              room.SharingType,
		PricePerPerson:           room.PricePerPerson,
		SecurityDepositPerPerson: room.SecurityDepositPerPerson,
	}, nil
}

// pickRepresentativeRoom picks the room whose price is shown for a sharing
// tier: the cheapest one that still has a bed, ties broken by creation order.
// Guests see one price per tier, not per individual room.
func pickRepresentativeRoom(rooms []models.Room) *models.Room {
	var best *models.Room
	for i := range rooms {
		r := &rooms[i]
		if !r.IsAvailable || r.AvailableBeds <= 0 {
			continue
		}
		if best == nil || r.PricePerPerson < best.PricePerPerson ||
			(r.PricePerPerson == best.PricePerPerson && r.ID < best.ID) {
			best = r
		}
	}
	return best
}

// stayFromProperty synthesizes a one-bed stay from a "Room"-type property's
// own price and deposit fields.
func stayFromProperty(property models.Property) (Stay, error) {
	if !property.IsAvailable {
		return Stay{}, ErrPropertyUnavailable
	}
	if property.MonthlyPrice <= 0 {
		return Stay{}, ErrInvalidPrice
	}
	return Stay{
		Kind:                     StayWholeProperty,
		Property:                 property,
		SharingType:              models.PropertyTypeRoom,
		PricePerPerson:           property.MonthlyPrice,
		SecurityDepositPerPerson: property.SecurityDeposit,
	}, nil
}
