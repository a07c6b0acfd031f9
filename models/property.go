package models

import (
	"gorm.io/gorm"
)

// PropertyTypeRoom marks properties rented as a single unit, with no
// discrete room rows underneath.
const PropertyTypeRoom = "Room"

type Property struct {
	gorm.Model

	Name         string `gorm:"size:255" json:"name"`
	PropertyType string `gorm:"size:50;default:PG" json:"propertyType"`

	Address string `gorm:"type:text" json:"address"`
	City    string `gorm:"size:100;index" json:"city"`
	Area    string `gorm:"size:100;index" json:"area"`

	// Integer rupees. For "Room" type properties these are the rentable
	// unit's own price/deposit; PG properties price per room instead.
	MonthlyPrice    int  `gorm:"column:monthly_price" json:"monthlyPrice"`
	SecurityDeposit *int `gorm:"column:security_deposit" json:"securityDeposit,omitempty"`

	OwnerName  string `gorm:"size:255" json:"ownerName"`
	OwnerPhone string `gorm:"size:20" json:"ownerPhone"`

	PaymentInstructions string `gorm:"type:text" json:"paymentInstructions,omitempty"`

	IsAvailable bool `gorm:"default:true" json:"isAvailable"`
	IsVerified  bool `gorm:"default:false" json:"isVerified"`
	IsFeatured  bool `gorm:"default:false" json:"isFeatured"`

	Rooms []Room `gorm:"foreignKey:PropertyID" json:"rooms,omitempty"`
}
