package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RFQ statuses
type RFQStatus string

const (
	RFQDraft  RFQStatus = "draft"
	RFQSent   RFQStatus = "sent"
	RFQClosed RFQStatus = "closed"
)

// RFQ is a request for quotation sent to one or more suppliers.
type RFQ struct {
	BaseModel
	RFQNo        string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"rfq_no"`
	Status       RFQStatus  `gorm:"type:varchar(20);default:'draft'" json:"status"`
	RequiredBy   *time.Time `gorm:"type:date" json:"required_by,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`
	Suppliers    []Supplier `gorm:"many2many:rfq_suppliers;" json:"suppliers,omitempty"`
	Items        []RFQItem  `gorm:"foreignKey:RFQID;constraint:OnDelete:CASCADE" json:"items"`
}

type RFQItem struct {
	BaseModel
	RFQID    uuid.UUID       `gorm:"type:char(36);not null;index" json:"rfq_id"`
	ItemCode string          `gorm:"type:varchar(50);not null" json:"item_code" validate:"required"`
	ItemName string          `gorm:"type:varchar(255)" json:"item_name"`
	Quantity decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"quantity" validate:"gt=0"`
	UOM      string          `gorm:"type:varchar(20)" json:"uom"`
}

// CanTransitionTo guards RFQ status updates.
func (s RFQStatus) CanTransitionTo(next RFQStatus) bool {
	switch s {
	case RFQDraft:
		return next == RFQSent || next == RFQClosed
	case RFQSent:
		return next == RFQClosed
	default:
		return false
	}
}

// Supplier quotation statuses
type QuotationStatus string

const (
	QuotationReceived QuotationStatus = "received"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationRejected QuotationStatus = "rejected"
)

// SupplierQuotation records the rates a supplier quoted against an RFQ.
type SupplierQuotation struct {
	BaseModel
	QuotationNo  string                  `gorm:"type:varchar(50);uniqueIndex;not null" json:"quotation_no"`
	RFQNo        string                  `gorm:"type:varchar(50);index" json:"rfq_no"`
	SupplierID   uuid.UUID               `gorm:"type:char(36);not null" json:"supplier_id" validate:"uuid_required"`
	Supplier     *Supplier               `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Status       QuotationStatus         `gorm:"type:varchar(20);default:'received'" json:"status"`
	ValidTill    *time.Time              `gorm:"type:date" json:"valid_till,omitempty"`
	Items        []SupplierQuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"items"`
}

type SupplierQuotationItem struct {
	BaseModel
	QuotationID uuid.UUID       `gorm:"type:char(36);not null;index" json:"quotation_id"`
	ItemCode    string          `gorm:"type:varchar(50);not null" json:"item_code" validate:"required"`
	ItemName    string          `gorm:"type:varchar(255)" json:"item_name"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"quantity" validate:"gt=0"`
	Rate        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"rate"`
}

// CanTransitionTo guards quotation status updates. A decided quotation
// stays decided.
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	return s == QuotationReceived && (next == QuotationAccepted || next == QuotationRejected)
}

// Purchase order statuses
type POStatus string

const (
	PODraft     POStatus = "draft"
	POSubmitted POStatus = "submitted"
	POReceived  POStatus = "received"
	POClosed    POStatus = "closed"
	POCancelled POStatus = "cancelled"
)

// PurchaseOrder is the commitment to buy; GRNs are raised against it.
type PurchaseOrder struct {
	BaseModel
	PONo         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"po_no"`
	SupplierID   uuid.UUID       `gorm:"type:char(36);not null" json:"supplier_id" validate:"uuid_required"`
	Supplier     *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	SupplierName string          `gorm:"type:varchar(255)" json:"supplier_name"`
	Status       POStatus        `gorm:"type:varchar(20);default:'draft'" json:"status"`
	OrderDate    time.Time       `gorm:"type:date" json:"order_date"`
	DeliveryDate *time.Time      `gorm:"type:date" json:"delivery_date,omitempty"`
	GrandTotal   decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"grand_total"`
	Notes        string          `gorm:"type:text" json:"notes"`
	Items        []POItem        `gorm:"foreignKey:POID;constraint:OnDelete:CASCADE" json:"items"`
}

type POItem struct {
	BaseModel
	POID          uuid.UUID       `gorm:"type:char(36);not null;index" json:"po_id"`
	ItemCode      string          `gorm:"type:varchar(50);not null" json:"item_code" validate:"required"`
	ItemName      string          `gorm:"type:varchar(255)" json:"item_name"`
	Quantity      decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"quantity" validate:"gt=0"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"rate"`
	UOM           string          `gorm:"type:varchar(20)" json:"uom"`
	WarehouseName string          `gorm:"type:varchar(100)" json:"warehouse_name"`
}

// Amount is the line total (quantity x rate).
func (i POItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// ComputeGrandTotal sums line amounts into GrandTotal.
func (po *PurchaseOrder) ComputeGrandTotal() {
	total := decimal.Zero
	for _, item := range po.Items {
		total = total.Add(item.Amount())
	}
	po.GrandTotal = total
}

// CanTransitionTo guards PO status updates.
func (s POStatus) CanTransitionTo(next POStatus) bool {
	switch s {
	case PODraft:
		return next == POSubmitted || next == POCancelled
	case POSubmitted:
		return next == POReceived || next == POCancelled
	case POReceived:
		return next == POClosed
	default:
		return false
	}
}
