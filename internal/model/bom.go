package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BOM component kinds
const (
	ComponentRawMaterial = "raw_material"
	ComponentSubAssembly = "sub_assembly"
)

// BOM is the recipe of components and operations needed to produce one
// batch of a finished item.
type BOM struct {
	BaseModel
	BOMNo         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"bom_no"`
	ItemCode      string          `gorm:"type:varchar(50);not null;index" json:"item_code" validate:"required"`
	ItemName      string          `gorm:"type:varchar(255)" json:"item_name"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,6);default:1" json:"quantity"` // batch size the BOM describes
	ProfitMargin  decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"profit_margin"` // percent
	CGSTRate      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"cgst_rate"`     // percent
	SGSTRate      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"sgst_rate"`     // percent
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	Components    []BOMComponent  `gorm:"foreignKey:BOMID;constraint:OnDelete:CASCADE" json:"components"`
	Operations    []BOMOperation  `gorm:"foreignKey:BOMID;constraint:OnDelete:CASCADE" json:"operations"`
}

// BOMComponent is one material line: a raw material with a rate, or a
// reference to another BOM (sub-assembly) whose cost is rolled up.
type BOMComponent struct {
	BaseModel
	BOMID         uuid.UUID       `gorm:"type:char(36);not null;index" json:"bom_id"`
	ComponentType string          `gorm:"type:varchar(20);default:'raw_material'" json:"component_type"`
	ItemCode      string          `gorm:"type:varchar(50);not null" json:"item_code" validate:"required"`
	ItemName      string          `gorm:"type:varchar(255)" json:"item_name"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"quantity" validate:"gt=0"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"rate"`
	SubBOMNo      string          `gorm:"type:varchar(50)" json:"sub_bom_no"` // set when component_type is sub_assembly
}

// BOMOperation is one shop-floor operation with a time and hourly rate.
type BOMOperation struct {
	BaseModel
	BOMID         uuid.UUID       `gorm:"type:char(36);not null;index" json:"bom_id"`
	OperationName string          `gorm:"type:varchar(100);not null" json:"operation_name" validate:"required"`
	Workstation   string          `gorm:"type:varchar(100)" json:"workstation"`
	Hours         decimal.Decimal `gorm:"type:decimal(10,4);default:0" json:"hours"`
	HourlyRate    decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"hourly_rate"`
}
