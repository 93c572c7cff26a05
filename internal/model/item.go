package model

import "github.com/shopspring/decimal"

// Item is the master record for anything bought, stocked, sold or produced.
type Item struct {
	BaseModel
	ItemCode     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"item_code" validate:"required"`
	ItemName     string          `gorm:"type:varchar(255);not null" json:"item_name" validate:"required"`
	ItemGroup    string          `gorm:"type:varchar(100)" json:"item_group"` // Raw Material, Sub Assembly, Finished Good, Consumable
	UOM          string          `gorm:"type:varchar(20)" json:"uom"`         // Nos, Kg, Mtr, ...
	HSNCode      string          `gorm:"type:varchar(20)" json:"hsn_code"`
	GSTRate      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_rate"`
	StandardRate decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"standard_rate"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(18,6);default:0" json:"reorder_level"`
	Description  string          `gorm:"type:text" json:"description"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`

	// User tracking
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	UpdatedByUserID *string `gorm:"type:varchar(255)" json:"updated_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
	UpdatedByUser   *User   `gorm:"foreignKey:UpdatedByUserID;references:ID" json:"updated_by_user,omitempty"`
}
