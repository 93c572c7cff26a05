package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "grn:inspect"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Inspect GRN"
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// User management
	{Code: "user:view", Name: "View User"},
	{Code: "user:create", Name: "Create User"},
	{Code: "user:update", Name: "Update User"},
	{Code: "user:delete", Name: "Delete User"},
	{Code: "user:update_privilege", Name: "Update User Privileges"},
	// Item master
	{Code: "item:view", Name: "View Item"},
	{Code: "item:create", Name: "Create Item"},
	{Code: "item:update", Name: "Update Item"},
	// Suppliers
	{Code: "supplier:view", Name: "View Supplier"},
	{Code: "supplier:create", Name: "Create Supplier"},
	{Code: "supplier:update", Name: "Update Supplier"},
	// Procurement
	{Code: "purchase:view", Name: "View Purchasing Documents"},
	{Code: "purchase:create", Name: "Create Purchasing Documents"},
	{Code: "purchase:update", Name: "Update Purchasing Documents"},
	// GRN workflow
	{Code: "grn:view", Name: "View GRN"},
	{Code: "grn:create", Name: "Create GRN"},
	{Code: "grn:inspect", Name: "Inspect GRN Items"},
	{Code: "grn:inventory_approve", Name: "Approve GRN For Stock"},
	// Stock ledger
	{Code: "stock:view", Name: "View Stock"},
	{Code: "stock:create", Name: "Create Stock Movement"},
	{Code: "stock:approve", Name: "Approve Stock Movement"},
	// BOM
	{Code: "bom:view", Name: "View BOM"},
	{Code: "bom:create", Name: "Create BOM"},
	{Code: "bom:update", Name: "Update BOM"},
	// Sales
	{Code: "sales:view", Name: "View Sales Documents"},
	{Code: "sales:create", Name: "Create Sales Documents"},
	{Code: "sales:update", Name: "Update Sales Documents"},
	// Production
	{Code: "production:view", Name: "View Production Orders"},
	{Code: "production:create", Name: "Create Production Order"},
	{Code: "production:update", Name: "Advance Production Stage"},
	// Dashboard
	{Code: "dashboard:view", Name: "View Dashboard"},
}
