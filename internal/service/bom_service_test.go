package service

import (
	"testing"

	"go-erp-backend/internal/model"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestRollUpCost(t *testing.T) {
	bom := &model.BOM{
		BOMNo:        "BOM-20240101-0001",
		ItemCode:     "FG-001",
		Quantity:     decimal.NewFromInt(1),
		ProfitMargin: d("10"),
		CGSTRate:     d("9"),
		SGSTRate:     d("9"),
	}

	// 2 units: materials 500/unit, operations 100/unit
	got := RollUpCost(bom, decimal.NewFromInt(2), d("500"), d("100"))

	if got.MaterialCost.String() != "1000" {
		t.Errorf("MaterialCost = %s, want 1000", got.MaterialCost)
	}
	if got.OperationCost.String() != "200" {
		t.Errorf("OperationCost = %s, want 200", got.OperationCost)
	}
	if got.Subtotal.String() != "1200" {
		t.Errorf("Subtotal = %s, want 1200", got.Subtotal)
	}
	// 1200 * 1.10 = 1320
	if got.WithMargin.String() != "1320" {
		t.Errorf("WithMargin = %s, want 1320", got.WithMargin)
	}
	// 1320 * 18% = 237.6
	if got.GSTAmount.String() != "237.6" {
		t.Errorf("GSTAmount = %s, want 237.6", got.GSTAmount)
	}
	if got.GrandTotal.String() != "1557.6" {
		t.Errorf("GrandTotal = %s, want 1557.6", got.GrandTotal)
	}
}

func TestRollUpCostZeroRates(t *testing.T) {
	// Missing rates and percentages roll up to zero, never an error.
	bom := &model.BOM{BOMNo: "BOM-20240101-0002", Quantity: decimal.NewFromInt(1)}
	got := RollUpCost(bom, decimal.NewFromInt(5), decimal.Zero, decimal.Zero)

	if !got.GrandTotal.IsZero() {
		t.Errorf("GrandTotal = %s, want 0", got.GrandTotal)
	}
	if !got.GSTAmount.IsZero() {
		t.Errorf("GSTAmount = %s, want 0", got.GSTAmount)
	}
}

func TestRollUpCostBatchSize(t *testing.T) {
	// BOM describes a batch of 10; costing 5 units should halve the batch cost.
	bom := &model.BOM{BOMNo: "BOM-20240101-0003", Quantity: decimal.NewFromInt(10)}
	got := RollUpCost(bom, decimal.NewFromInt(5), d("1000"), d("200"))

	if got.Subtotal.String() != "600" {
		t.Errorf("Subtotal = %s, want 600", got.Subtotal)
	}
}
