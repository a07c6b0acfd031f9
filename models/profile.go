package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is created lazily on first access; bookings reference it through
// the optional user_id column.
type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email     string `gorm:"uniqueIndex;size:255" json:"email"`
	FullName  string `gorm:"size:255" json:"fullName"`
	Phone     string `gorm:"size:20" json:"phone"`
	AltPhone  string `gorm:"size:20" json:"altPhone,omitempty"`
	AvatarURL string `gorm:"size:512" json:"avatarUrl,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
