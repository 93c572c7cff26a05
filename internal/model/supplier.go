package model

// Supplier is a vendor the company buys from.
type Supplier struct {
	BaseModel
	SupplierCode  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"supplier_code" validate:"required"`
	SupplierName  string `gorm:"type:varchar(255);not null" json:"supplier_name" validate:"required"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contact_person"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	GSTIN         string `gorm:"type:varchar(20)" json:"gstin"`
	Address       string `gorm:"type:text" json:"address"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
}
