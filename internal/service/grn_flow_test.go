package service

import (
	"errors"
	"testing"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/ws"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeGRNRepo keeps GRNs in memory so the workflow service can be exercised
// without a MySQL instance. The sqlite handle only backs the transaction
// wrapper.
type fakeGRNRepo struct {
	grns map[string]*model.GRN
}

func (r *fakeGRNRepo) Create(grn *model.GRN) error {
	r.grns[grn.GRNNo] = grn
	return nil
}

func (r *fakeGRNRepo) FindAll() ([]model.GRN, error) {
	var out []model.GRN
	for _, grn := range r.grns {
		out = append(out, *grn)
	}
	return out, nil
}

func (r *fakeGRNRepo) FindByNo(grnNo string) (*model.GRN, error) {
	grn, ok := r.grns[grnNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return grn, nil
}

func (r *fakeGRNRepo) FindByStatus(status model.GRNStatus) ([]model.GRN, error) {
	var out []model.GRN
	for _, grn := range r.grns {
		if grn.Status == status {
			out = append(out, *grn)
		}
	}
	return out, nil
}

func (r *fakeGRNRepo) FindByNoForUpdate(tx *gorm.DB, grnNo string) (*model.GRN, error) {
	return r.FindByNo(grnNo)
}

func (r *fakeGRNRepo) UpdateStatus(tx *gorm.DB, grn *model.GRN, status model.GRNStatus, updatedBy string) error {
	grn.Status = status
	grn.UpdatedBy = updatedBy
	return nil
}

func (r *fakeGRNRepo) SaveItem(tx *gorm.DB, item *model.GRNItem) error {
	return nil
}

// fakeStockPoster records every movement the workflow asks for.
type fakeStockPoster struct {
	posted []PostMovementRequest
}

func (p *fakeStockPoster) PostCompletedMovement(tx *gorm.DB, req PostMovementRequest) (*model.StockMovement, error) {
	p.posted = append(p.posted, req)
	return &model.StockMovement{
		ItemCode:     req.ItemCode,
		MovementType: req.MovementType,
		Quantity:     req.Quantity,
		Status:       req.Status,
	}, nil
}

func newGRNWorkflow(t *testing.T) (GRNService, *fakeGRNRepo, *fakeStockPoster) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := &fakeGRNRepo{grns: make(map[string]*model.GRN)}
	poster := &fakeStockPoster{}
	hub := ws.NewHub()
	go hub.Run()
	svc := NewGRNService(repo, nil, poster, db, hub, []string{
		"dimensions", "surface_finish", "quantity_match", "documentation",
	})
	return svc, repo, poster
}

// Approving a GRN with nothing accepted must fail without touching the
// stock ledger.
func TestApproveRefusesZeroAcceptedItems(t *testing.T) {
	svc, repo, poster := newGRNWorkflow(t)
	repo.grns["GRN-20240101-0001"] = &model.GRN{
		GRNNo:  "GRN-20240101-0001",
		Status: model.GRNAwaitingInventoryApproval,
		Items: []model.GRNItem{
			{ItemCode: "BLT-001", ReceivedQty: d("100"), ItemStatus: model.GRNItemRejected, RejectionReason: "bent threads"},
		},
	}

	_, err := svc.Approve("GRN-20240101-0001", "u1", "Inventory Manager")
	if !errors.Is(err, ErrNoItemsAccepted) {
		t.Fatalf("err = %v, want ErrNoItemsAccepted", err)
	}
	if len(poster.posted) != 0 {
		t.Errorf("posted %d movements, want none", len(poster.posted))
	}
	if repo.grns["GRN-20240101-0001"].Status != model.GRNAwaitingInventoryApproval {
		t.Errorf("status = %s, want unchanged", repo.grns["GRN-20240101-0001"].Status)
	}
}

// The full happy path: a single fully accepted line of 100 must yield
// exactly one Completed IN movement of 100 once the GRN is approved.
func TestApprovalFlowPostsSingleCompletedIn(t *testing.T) {
	svc, repo, poster := newGRNWorkflow(t)
	repo.grns["GRN-20240101-0001"] = &model.GRN{
		GRNNo:  "GRN-20240101-0001",
		Status: model.GRNPending,
		Items: []model.GRNItem{
			{ItemCode: "BLT-001", ItemName: "Hex Bolt M8", ReceivedQty: d("100"), WarehouseName: "Main Store", ItemStatus: model.GRNItemPending},
		},
	}

	if _, err := svc.StartInspection("GRN-20240101-0001", "u1", "QC Inspector"); err != nil {
		t.Fatalf("StartInspection: %v", err)
	}
	_, err := svc.RecordInspection("GRN-20240101-0001", []ItemInspectionResult{
		{ItemCode: "BLT-001", ItemStatus: model.GRNItemAccepted, QCChecks: map[string]bool{"dimensions": true}},
	}, "u1", "QC Inspector")
	if err != nil {
		t.Fatalf("RecordInspection: %v", err)
	}
	if _, err := svc.CompleteInspection("GRN-20240101-0001", "u1", "QC Inspector"); err != nil {
		t.Fatalf("CompleteInspection: %v", err)
	}
	if got := repo.grns["GRN-20240101-0001"].Status; got != model.GRNAwaitingInventoryApproval {
		t.Fatalf("status after inspection = %s, want %s", got, model.GRNAwaitingInventoryApproval)
	}

	grn, err := svc.Approve("GRN-20240101-0001", "u2", "Inventory Manager")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if grn.Status != model.GRNApproved {
		t.Errorf("status = %s, want %s", grn.Status, model.GRNApproved)
	}

	if len(poster.posted) != 1 {
		t.Fatalf("posted %d movements, want 1", len(poster.posted))
	}
	mv := poster.posted[0]
	if mv.MovementType != model.MovementIn {
		t.Errorf("movement type = %s, want IN", mv.MovementType)
	}
	if mv.Quantity.String() != "100" {
		t.Errorf("quantity = %s, want 100", mv.Quantity)
	}
	if mv.Status != model.MovementCompleted {
		t.Errorf("status = %s, want Completed", mv.Status)
	}
	if mv.ReferenceType != "GRN" || mv.ReferenceName != "GRN-20240101-0001" {
		t.Errorf("reference = %s %s, want GRN GRN-20240101-0001", mv.ReferenceType, mv.ReferenceName)
	}
	if mv.ItemCode != "BLT-001" || mv.WarehouseName != "Main Store" {
		t.Errorf("item/warehouse = %s/%s", mv.ItemCode, mv.WarehouseName)
	}
}

// An inspection where every line is rejected ends the GRN in rejected, not
// awaiting inventory approval, and the terminal state refuses approval.
func TestCompleteInspectionAllRejected(t *testing.T) {
	svc, repo, poster := newGRNWorkflow(t)
	repo.grns["GRN-20240101-0002"] = &model.GRN{
		GRNNo:  "GRN-20240101-0002",
		Status: model.GRNInspecting,
		Items: []model.GRNItem{
			{ItemCode: "BLT-001", ReceivedQty: d("100"), ItemStatus: model.GRNItemPending},
			{ItemCode: "NUT-002", ReceivedQty: d("50"), ItemStatus: model.GRNItemPending},
		},
	}

	_, err := svc.RecordInspection("GRN-20240101-0002", []ItemInspectionResult{
		{ItemCode: "BLT-001", ItemStatus: model.GRNItemRejected, RejectionReason: "corrosion"},
		{ItemCode: "NUT-002", ItemStatus: model.GRNItemRejected, RejectionReason: "wrong gauge"},
	}, "u1", "QC Inspector")
	if err != nil {
		t.Fatalf("RecordInspection: %v", err)
	}

	grn, err := svc.CompleteInspection("GRN-20240101-0002", "u1", "QC Inspector")
	if err != nil {
		t.Fatalf("CompleteInspection: %v", err)
	}
	if grn.Status != model.GRNRejected {
		t.Errorf("status = %s, want %s", grn.Status, model.GRNRejected)
	}

	if _, err := svc.Approve("GRN-20240101-0002", "u2", "Inventory Manager"); err == nil {
		t.Error("expected error approving a rejected GRN")
	}
	if len(poster.posted) != 0 {
		t.Errorf("posted %d movements, want none", len(poster.posted))
	}
}

func TestRecordInspectionRejectsUnknownCheck(t *testing.T) {
	svc, repo, _ := newGRNWorkflow(t)
	repo.grns["GRN-20240101-0003"] = &model.GRN{
		GRNNo:  "GRN-20240101-0003",
		Status: model.GRNInspecting,
		Items: []model.GRNItem{
			{ItemCode: "BLT-001", ReceivedQty: d("100"), ItemStatus: model.GRNItemPending},
		},
	}

	_, err := svc.RecordInspection("GRN-20240101-0003", []ItemInspectionResult{
		{ItemCode: "BLT-001", ItemStatus: model.GRNItemAccepted, QCChecks: map[string]bool{"smell_test": true}},
	}, "u1", "QC Inspector")
	if !errors.Is(err, ErrUnknownQCCheck) {
		t.Fatalf("err = %v, want ErrUnknownQCCheck", err)
	}
}
