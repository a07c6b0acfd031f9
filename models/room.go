package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	PropertyID uint   `gorm:"index;column:property_id" json:"propertyId"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"roomNumber"`

	// "Single", "2 Sharing", "3 Sharing", ...
	SharingType string `gorm:"column:sharing_type;size:50;index" json:"sharingType"`

	// Integer rupees, per person.
	PricePerPerson           int  `gorm:"column:price_per_person" json:"pricePerPerson"`
	SecurityDepositPerPerson *int `gorm:"column:security_deposit_per_person" json:"securityDepositPerPerson,omitempty"`

	TotalBeds     int `gorm:"column:total_beds" json:"totalBeds"`
	AvailableBeds int `gorm:"column:available_beds" json:"availableBeds"`

	HasAC               bool `gorm:"column:has_ac;default:false" json:"hasAC"`
	HasBalcony          bool `gorm:"column:has_balcony;default:false" json:"hasBalcony"`
	HasAttachedBathroom bool `gorm:"column:has_attached_bathroom;default:false" json:"hasAttachedBathroom"`

	IsAvailable bool `gorm:"default:true" json:"isAvailable"`

	Property Property `gorm:"foreignKey:PropertyID;references:ID" json:"-"`
}

func (Room) TableName() string {
	return "property_rooms"
}
