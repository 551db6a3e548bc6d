package entity

import "github.com/shopspring/decimal"

// Item represents a menu item. Bilingual names: NameLocal is the Tamil name
// shown on the billing screen, NameCommon the English one used for sorting.
type Item struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	NameLocal  string          `gorm:"size:255;not null;column:name_local" json:"name_local"`
	NameCommon string          `gorm:"size:255;not null;column:name_common" json:"name_common"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category   string          `gorm:"size:100;not null;default:Others" json:"category"`
	ImageRef   *string         `gorm:"size:255;column:image_ref" json:"image_ref,omitempty"`
	IsActive   bool            `gorm:"not null;default:true" json:"is_active"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
