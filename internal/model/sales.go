package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sales quotation statuses
type SalesQuotationStatus string

const (
	SQDraft    SalesQuotationStatus = "draft"
	SQSent     SalesQuotationStatus = "sent"
	SQAccepted SalesQuotationStatus = "accepted"
	SQRejected SalesQuotationStatus = "rejected"
)

// SalesQuotation is an offer sent to a customer.
type SalesQuotation struct {
	BaseModel
	QuotationNo   string               `gorm:"type:varchar(50);uniqueIndex;not null" json:"quotation_no"`
	CustomerName  string               `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerGSTIN string               `gorm:"type:varchar(20)" json:"customer_gstin"`
	Status        SalesQuotationStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	ValidTill     *time.Time           `gorm:"type:date" json:"valid_till,omitempty"`
	GrandTotal    decimal.Decimal      `gorm:"type:decimal(18,2);default:0" json:"grand_total"`
	Notes         string               `gorm:"type:text" json:"notes"`
	Items         []SalesItem          `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"items"`
}

// Sales order statuses
type SalesOrderStatus string

const (
	SODraft     SalesOrderStatus = "draft"
	SOSubmitted SalesOrderStatus = "submitted"
	SODelivered SalesOrderStatus = "delivered"
	SOClosed    SalesOrderStatus = "closed"
	SOCancelled SalesOrderStatus = "cancelled"
)

// SalesOrder is a confirmed customer order.
type SalesOrder struct {
	BaseModel
	OrderNo       string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_no"`
	CustomerName  string           `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerGSTIN string           `gorm:"type:varchar(20)" json:"customer_gstin"`
	Status        SalesOrderStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	OrderDate     time.Time        `gorm:"type:date" json:"order_date"`
	DeliveryDate  *time.Time       `gorm:"type:date" json:"delivery_date,omitempty"`
	GrandTotal    decimal.Decimal  `gorm:"type:decimal(18,2);default:0" json:"grand_total"`
	Notes         string           `gorm:"type:text" json:"notes"`
	Items         []SalesItem      `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"items"`
}

// SalesItem is one line on a sales quotation or order. ParentID points to
// whichever document owns the line.
type SalesItem struct {
	BaseModel
	ParentID uuid.UUID       `gorm:"type:char(36);not null;index" json:"parent_id"`
	ItemCode string          `gorm:"type:varchar(50);not null" json:"item_code" validate:"required"`
	ItemName string          `gorm:"type:varchar(255)" json:"item_name"`
	Quantity decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"quantity" validate:"gt=0"`
	Rate     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"rate"`
	GSTRate  decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_rate"`
}

// Amount is the line total including GST.
func (i SalesItem) Amount() decimal.Decimal {
	base := i.Quantity.Mul(i.Rate)
	gst := base.Mul(i.GSTRate).Div(decimal.NewFromInt(100))
	return base.Add(gst)
}

// CanTransitionTo guards sales order status updates.
func (s SalesOrderStatus) CanTransitionTo(next SalesOrderStatus) bool {
	switch s {
	case SODraft:
		return next == SOSubmitted || next == SOCancelled
	case SOSubmitted:
		return next == SODelivered || next == SOCancelled
	case SODelivered:
		return next == SOClosed
	default:
		return false
	}
}

// CanTransitionTo guards quotation status updates.
func (s SalesQuotationStatus) CanTransitionTo(next SalesQuotationStatus) bool {
	switch s {
	case SQDraft:
		return next == SQSent || next == SQRejected
	case SQSent:
		return next == SQAccepted || next == SQRejected
	default:
		return false
	}
}
