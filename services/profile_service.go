package services

import (
	"errors"
	"fmt"
	"strings"

	"pgstay-backend/models"
	"pgstay-backend/utils"

	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// GetOrCreate returns the profile for an email, creating it lazily on first
// access the way the auth callback does.
func (s *ProfileService) GetOrCreate(email, fullName string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: empty email", ErrInvalidIntent)
	}

	var profile models.Profile
	err := s.DB.Where("email = ?", email).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile = models.Profile{Email: email, FullName: strings.TrimSpace(fullName)}
	if err := s.DB.Create(&profile).Error; err != nil {
		// lost a create race: someone else inserted the same email
		if isDuplicateEntry(err) {
			if err2 := s.DB.Where("email = ?", email).First(&profile).Error; err2 == nil {
				return &profile, nil
			}
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile lets the user change contact fields. Phone numbers are
// normalized and validated before storage.
func (s *ProfileService) UpdateProfile(id uint, updates map[string]interface{}) (*models.Profile, error) {
	for _, key := range []string{"phone", "alt_phone"} {
		if v, ok := updates[key]; ok {
			phone, _ := v.(string)
			if phone == "" {
				continue
			}
			if !utils.IsValidMobile(phone) {
				return nil, ErrInvalidPhone
			}
			updates[key] = utils.NormalizePhoneNumber(phone)
		}
	}

	var profile models.Profile
	if err := s.DB.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if err := s.DB.Model(&profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &profile, nil
}
