package service

import (
	"testing"

	"go-erp-backend/internal/model"

	"github.com/shopspring/decimal"
)

func TestApplyInspection(t *testing.T) {
	tests := []struct {
		name      string
		item      model.GRNItem
		result    ItemInspectionResult
		expectErr bool
		wantQty   string
	}{
		{
			name:    "accepted takes full received qty",
			item:    model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100")},
			result:  ItemInspectionResult{ItemCode: "BLT-001", ItemStatus: model.GRNItemAccepted},
			wantQty: "100",
		},
		{
			name:    "partial acceptance keeps keyed qty",
			item:    model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100")},
			result:  ItemInspectionResult{ItemCode: "BLT-001", ItemStatus: model.GRNItemPartiallyAccepted, AcceptedQty: d("60")},
			wantQty: "60",
		},
		{
			name:      "partial acceptance at full qty is invalid",
			item:      model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100")},
			result:    ItemInspectionResult{ItemCode: "BLT-001", ItemStatus: model.GRNItemPartiallyAccepted, AcceptedQty: d("100")},
			expectErr: true,
		},
		{
			name:      "partial acceptance of zero is invalid",
			item:      model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100")},
			result:    ItemInspectionResult{ItemCode: "BLT-001", ItemStatus: model.GRNItemPartiallyAccepted},
			expectErr: true,
		},
		{
			name:    "rejection zeroes accepted qty",
			item:    model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100"), AcceptedQty: d("100")},
			result:  ItemInspectionResult{ItemCode: "BLT-001", ItemStatus: model.GRNItemRejected, RejectionReason: "bent threads"},
			wantQty: "0",
		},
		{
			name:      "rejection requires a reason",
			item:      model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100")},
			result:    ItemInspectionResult{ItemCode: "BLT-001", ItemStatus: model.GRNItemRejected},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyInspection(&tt.item, tt.result)
			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.item.ItemStatus != tt.result.ItemStatus {
				t.Errorf("item status = %s, want %s", tt.item.ItemStatus, tt.result.ItemStatus)
			}
			if got := tt.item.AcceptedQty.String(); got != tt.wantQty {
				t.Errorf("accepted qty = %s, want %s", got, tt.wantQty)
			}
		})
	}
}

func TestApplyInspectionRecordsQCChecks(t *testing.T) {
	item := model.GRNItem{ItemCode: "BLT-001", ReceivedQty: d("100")}
	checks := map[string]bool{
		"dimensions":     true,
		"surface_finish": true,
		"quantity_match": true,
		"documentation":  false,
	}
	err := applyInspection(&item, ItemInspectionResult{
		ItemCode:   "BLT-001",
		ItemStatus: model.GRNItemAccepted,
		QCChecks:   checks,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(item.QCChecks) != 4 || item.QCChecks["documentation"] {
		t.Errorf("qc checks not recorded: %v", item.QCChecks)
	}
}

// The posted IN quantity for an approved GRN must equal the sum of the
// accepted portions of its lines.
func TestAcceptedQuantityTotals(t *testing.T) {
	grn := &model.GRN{Items: []model.GRNItem{
		{ItemCode: "BLT-001", ReceivedQty: d("100"), ItemStatus: model.GRNItemAccepted},
		{ItemCode: "NUT-002", ReceivedQty: d("200"), AcceptedQty: d("150"), ItemStatus: model.GRNItemPartiallyAccepted},
		{ItemCode: "WSH-003", ReceivedQty: d("50"), ItemStatus: model.GRNItemRejected},
	}}

	total := decimal.Zero
	for _, item := range grn.AcceptedItems() {
		total = total.Add(item.EffectiveAcceptedQty())
	}
	if total.String() != "250" {
		t.Errorf("posted total = %s, want 250", total)
	}
	if len(grn.AcceptedItems()) != 2 {
		t.Errorf("accepted lines = %d, want 2", len(grn.AcceptedItems()))
	}
}

func TestFindItem(t *testing.T) {
	items := []model.GRNItem{
		{ItemCode: "BLT-001"},
		{ItemCode: "NUT-002"},
	}
	if findItem(items, "NUT-002") == nil {
		t.Error("expected to find NUT-002")
	}
	if findItem(items, "GONE-999") != nil {
		t.Error("expected nil for unknown item code")
	}
	// Returned pointer must alias the slice element, not a copy.
	findItem(items, "BLT-001").ItemName = "Hex Bolt M8"
	if items[0].ItemName != "Hex Bolt M8" {
		t.Error("findItem must return a pointer into the slice")
	}
}
