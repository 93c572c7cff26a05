package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GRNStatus is the lifecycle state of a goods receipt note.
type GRNStatus string

const (
	GRNPending                   GRNStatus = "pending"
	GRNInspecting                GRNStatus = "inspecting"
	GRNAwaitingInventoryApproval GRNStatus = "awaiting_inventory_approval"
	GRNApproved                  GRNStatus = "approved"
	GRNRejected                  GRNStatus = "rejected"
	GRNSentBack                  GRNStatus = "sent_back"
)

// grnTransitions is the closed transition table for the GRN workflow.
// approved and rejected are terminal.
var grnTransitions = map[GRNStatus][]GRNStatus{
	GRNPending:                   {GRNInspecting},
	GRNInspecting:                {GRNAwaitingInventoryApproval, GRNRejected},
	GRNAwaitingInventoryApproval: {GRNApproved, GRNSentBack},
	GRNSentBack:                  {GRNInspecting},
	GRNApproved:                  {},
	GRNRejected:                  {},
}

// IsValid reports whether the status is one of the known states.
func (s GRNStatus) IsValid() bool {
	_, ok := grnTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions exist from this status.
func (s GRNStatus) IsTerminal() bool {
	next, ok := grnTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo checks the transition table.
func (s GRNStatus) CanTransitionTo(next GRNStatus) bool {
	for _, allowed := range grnTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ErrIllegalTransition builds the standard error for a disallowed move.
func ErrIllegalTransition(from, to GRNStatus) error {
	return fmt.Errorf("illegal transition from %s to %s", from, to)
}

// GRNItemStatus is the per-line inspection outcome.
type GRNItemStatus string

const (
	GRNItemPending           GRNItemStatus = "pending"
	GRNItemAccepted          GRNItemStatus = "accepted"
	GRNItemPartiallyAccepted GRNItemStatus = "partially_accepted"
	GRNItemRejected          GRNItemStatus = "rejected"
)

// GRN is a goods receipt note: the record of physical receipt against a
// purchase order, gated by QC inspection before stock is updated.
// GRNs are permanent records; there is no delete path.
type GRN struct {
	BaseModel
	GRNNo        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"grn_no"`
	PONo         string    `gorm:"type:varchar(50);index" json:"po_no"`
	SupplierID   uuid.UUID `gorm:"type:char(36)" json:"supplier_id"`
	SupplierName string    `gorm:"type:varchar(255)" json:"supplier_name"`
	ReceiptDate  time.Time `gorm:"type:date" json:"receipt_date"`
	Status       GRNStatus `gorm:"type:varchar(40);default:'pending';index" json:"status"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Items        []GRNItem `gorm:"foreignKey:GRNID;constraint:OnDelete:CASCADE" json:"items"`
}

// GRNItem is one received line, tracked through inspection.
type GRNItem struct {
	BaseModel
	GRNID           uuid.UUID       `gorm:"type:char(36);not null;index" json:"grn_id"`
	ItemCode        string          `gorm:"type:varchar(50);not null" json:"item_code" validate:"required"`
	ItemName        string          `gorm:"type:varchar(255)" json:"item_name"`
	POQty           decimal.Decimal `gorm:"type:decimal(18,6);default:0" json:"po_qty"`
	ReceivedQty     decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"received_qty" validate:"gt=0"`
	AcceptedQty     decimal.Decimal `gorm:"type:decimal(18,6);default:0" json:"accepted_qty"`
	BatchNo         string          `gorm:"type:varchar(50)" json:"batch_no"`
	WarehouseName   string          `gorm:"type:varchar(100)" json:"warehouse_name"`
	ItemStatus      GRNItemStatus   `gorm:"type:varchar(30);default:'pending'" json:"item_status"`
	QCChecks        map[string]bool `gorm:"serializer:json" json:"qc_checks"`
	RejectionReason string          `gorm:"type:text" json:"rejection_reason"`
}

// EffectiveAcceptedQty is the quantity that will be posted to stock.
// Fully accepted lines default to the full received quantity when the
// inspector did not key an explicit accepted quantity.
func (i GRNItem) EffectiveAcceptedQty() decimal.Decimal {
	switch i.ItemStatus {
	case GRNItemAccepted:
		if i.AcceptedQty.IsZero() {
			return i.ReceivedQty
		}
		return i.AcceptedQty
	case GRNItemPartiallyAccepted:
		return i.AcceptedQty
	default:
		return decimal.Zero
	}
}

// AllItemsInspected reports whether every line has an inspection outcome.
func (g *GRN) AllItemsInspected() bool {
	for _, item := range g.Items {
		if item.ItemStatus == GRNItemPending {
			return false
		}
	}
	return len(g.Items) > 0
}

// AcceptedItems returns the lines that passed inspection fully or partially.
func (g *GRN) AcceptedItems() []GRNItem {
	var accepted []GRNItem
	for _, item := range g.Items {
		if item.ItemStatus == GRNItemAccepted || item.ItemStatus == GRNItemPartiallyAccepted {
			accepted = append(accepted, item)
		}
	}
	return accepted
}
