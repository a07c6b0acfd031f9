package services

import (
	"context"
	"errors"
	"fmt"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

// RoomService is the admin room CRUD path. Capacity edits here are direct
// sets and may race with booking decrements; last-write-wins is acceptable
// on this side only.
type RoomService struct {
	DB         *gorm.DB
	Properties *PropertyService
}

func NewRoomService(db *gorm.DB, properties *PropertyService) *RoomService {
	return &RoomService{DB: db, Properties: properties}
}

// ListByProperty returns all rooms of a property.
func (s *RoomService) ListByProperty(propertyID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("property_id = ?", propertyID).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// CreateRoom inserts a room under an existing property.
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.PricePerPerson <= 0 {
		return ErrInvalidPrice
	}
	if room.TotalBeds <= 0 || room.AvailableBeds < 0 || room.AvailableBeds > room.TotalBeds {
		return fmt.Errorf("%w: bed counts out of range", ErrInvalidIntent)
	}

	var property models.Property
	if err := s.DB.First(&property, room.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("failed to check property %d: %w", room.PropertyID, err)
	}

	if err := s.DB.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	s.Properties.InvalidateListingCache(ctx)
	return nil
}

func intFromUpdate(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64: // JSON numbers arrive as float64
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// mergeBedCounts overlays a partial edit onto the room's current counters and
// rejects anything that would leave available_beds outside [0, total_beds].
// When total_beds shrinks below an untouched available_beds, available_beds is
// pulled down with it.
func mergeBedCounts(room models.Room, updates map[string]interface{}) error {
	total := room.TotalBeds
	if v, ok := updates["total_beds"]; ok {
		n, numeric := intFromUpdate(v)
		if !numeric {
			return fmt.Errorf("%w: total_beds must be a number", ErrInvalidIntent)
		}
		total = n
	}

	available := room.AvailableBeds
	availableSet := false
	if v, ok := updates["available_beds"]; ok {
		n, numeric := intFromUpdate(v)
		if !numeric {
			return fmt.Errorf("%w: available_beds must be a number", ErrInvalidIntent)
		}
		available = n
		availableSet = true
	}

	if total <= 0 || available < 0 {
		return fmt.Errorf("%w: bed counts out of range", ErrInvalidIntent)
	}
	if available > total {
		if availableSet {
			return fmt.Errorf("%w: bed counts out of range", ErrInvalidIntent)
		}
		updates["available_beds"] = total
	}
	return nil
}

// UpdateRoom applies a partial admin edit. Bed counters are validated against
// the merged result so the edit can never break 0 <= available <= total.
func (s *RoomService) UpdateRoom(ctx context.Context, id uint, updates map[string]interface{}) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	if v, ok := updates["price_per_person"]; ok {
		if n, numeric := intFromUpdate(v); !numeric || n <= 0 {
			return nil, ErrInvalidPrice
		}
	}
	if err := mergeBedCounts(room, updates); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	s.Properties.InvalidateListingCache(ctx)
	return &room, nil
}

// DeleteRoom soft-deletes a room.
func (s *RoomService) DeleteRoom(ctx context.Context, id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	s.Properties.InvalidateListingCache(ctx)
	return nil
}
