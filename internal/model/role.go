package model

// Role represents user roles in the system
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // MASTER_ADMIN, QC_INSPECTOR, ...
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

// Role codes as constants
const (
	RoleMasterAdmin      = "MASTER_ADMIN"
	RoleAdmin            = "ADMIN"
	RoleQCInspector      = "QC_INSPECTOR"
	RoleInventoryManager = "INVENTORY_MANAGER"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RoleMasterAdmin,
		Name:        "Master Administrator",
		Description: "Full system access with all privileges",
	},
	{
		Code:        RoleAdmin,
		Name:        "Administrator",
		Description: "Administrative access, no user management",
	},
	{
		Code:        RoleQCInspector,
		Name:        "QC Inspector",
		Description: "Inspects received goods and records QC results",
	},
	{
		Code:        RoleInventoryManager,
		Name:        "Inventory Manager",
		Description: "Approves inspected GRNs and stock movements",
	},
}
