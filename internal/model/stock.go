package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Warehouse is a physical stock location.
type Warehouse struct {
	BaseModel
	WarehouseName string `gorm:"type:varchar(100);uniqueIndex;not null" json:"warehouse_name" validate:"required"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
}

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// MovementStatus is the approval state of a stock movement.
// Only Completed movements affect stock balances.
type MovementStatus string

const (
	MovementPending   MovementStatus = "Pending"
	MovementApproved  MovementStatus = "Approved"
	MovementCompleted MovementStatus = "Completed"
	MovementCancelled MovementStatus = "Cancelled"
)

// Manual movements wait in Pending until inventory approves or rejects them.
// Approval passes through Approved and lands in Completed once the balance
// has been updated. Document workflows create movements directly in
// Completed, which is not a transition.
var movementTransitions = map[MovementStatus][]MovementStatus{
	MovementPending:  {MovementApproved, MovementCancelled},
	MovementApproved: {MovementCompleted},
}

func (s MovementStatus) CanTransitionTo(next MovementStatus) bool {
	for _, allowed := range movementTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StockMovement is one IN/OUT entry in the stock ledger.
type StockMovement struct {
	BaseModel
	TransactionNo string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"transaction_no"`
	ItemCode      string          `gorm:"type:varchar(50);not null;index" json:"item_code" validate:"required"`
	WarehouseID   uuid.UUID       `gorm:"type:char(36);not null;index" json:"warehouse_id" validate:"uuid_required"`
	Warehouse     *Warehouse      `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	MovementType  MovementType    `gorm:"type:varchar(10);not null" json:"movement_type" validate:"required,oneof=IN OUT"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"quantity" validate:"gt=0"`
	Status        MovementStatus  `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	ReferenceType string          `gorm:"type:varchar(50)" json:"reference_type"` // GRN, Production Order, Manual, ...
	ReferenceName string          `gorm:"type:varchar(50);index" json:"reference_name"`
	Notes         string          `gorm:"type:text" json:"notes"`

	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
}

// SignedQty is the balance contribution of the movement: positive for IN,
// negative for OUT.
func (m StockMovement) SignedQty() decimal.Decimal {
	if m.MovementType == MovementOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// StockBalance caches the running quantity per (item, warehouse) pair.
// It must always equal the sum of Completed movement quantities.
type StockBalance struct {
	BaseModel
	ItemCode    string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_item_wh" json:"item_code"`
	WarehouseID uuid.UUID       `gorm:"type:char(36);not null;uniqueIndex:idx_item_wh" json:"warehouse_id"`
	Warehouse   *Warehouse      `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	CurrentQty  decimal.Decimal `gorm:"type:decimal(18,6);default:0" json:"current_qty"`
}
