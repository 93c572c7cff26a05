package service

import (
	"errors"
	"fmt"
	"time"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/internal/ws"
	"go-erp-backend/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGRNNotFound       = errors.New("GRN not found")
	ErrPONotFound        = errors.New("purchase order not found")
	ErrNoItemsAccepted   = errors.New("no items accepted")
	ErrItemsNotInspected = errors.New("all items must be inspected before completing inspection")
	ErrGRNHasNoItems     = errors.New("GRN must have at least one item")
	ErrUnknownGRNItem    = errors.New("item not found on GRN")
	ErrUnknownQCCheck    = errors.New("unknown qc check")
)

// StockPoster is the stock ledger interface the GRN workflow consumes.
// Posting runs inside the caller's transaction so a failed post rolls the
// whole status transition back.
type StockPoster interface {
	PostCompletedMovement(tx *gorm.DB, req PostMovementRequest) (*model.StockMovement, error)
}

// PostMovementRequest asks the ledger for one movement.
type PostMovementRequest struct {
	ItemCode      string
	WarehouseName string
	MovementType  model.MovementType
	Quantity      decimal.Decimal
	ReferenceType string
	ReferenceName string
	Status        model.MovementStatus
	UserID        string
}

// CreateGRNRequest is the payload for raising a new GRN.
type CreateGRNRequest struct {
	PONo        string          `json:"po_no"`
	ReceiptDate *time.Time      `json:"receipt_date,omitempty"`
	Notes       string          `json:"notes"`
	Items       []model.GRNItem `json:"items"` // optional when PONo is set; defaults from PO lines
}

// ItemInspectionResult is one line of QC input.
type ItemInspectionResult struct {
	ItemCode        string              `json:"item_code" validate:"required"`
	ItemStatus      model.GRNItemStatus `json:"item_status" validate:"required,oneof=accepted partially_accepted rejected"`
	AcceptedQty     decimal.Decimal     `json:"accepted_qty"`
	QCChecks        map[string]bool     `json:"qc_checks"`
	RejectionReason string              `json:"rejection_reason"`
}

type GRNService interface {
	Create(req *CreateGRNRequest, userID, userName string) (*model.GRN, error)
	GetAll() ([]model.GRN, error)
	GetByNo(grnNo string) (*model.GRN, error)
	GetByStatus(status model.GRNStatus) ([]model.GRN, error)
	StartInspection(grnNo, userID, userName string) (*model.GRN, error)
	RecordInspection(grnNo string, results []ItemInspectionResult, userID, userName string) (*model.GRN, error)
	CompleteInspection(grnNo, userID, userName string) (*model.GRN, error)
	Approve(grnNo, userID, userName string) (*model.GRN, error)
	SendBack(grnNo, reason, userID, userName string) (*model.GRN, error)
	Resubmit(grnNo, userID, userName string) (*model.GRN, error)
}

type grnService struct {
	grnRepo         repository.GRNRepository
	procurementRepo repository.ProcurementRepository
	stock           StockPoster
	db              *gorm.DB
	wsHub           *ws.Hub
	qcChecks        map[string]bool
}

// NewGRNService wires the GRN workflow. qcCheckNames is the closed set of
// inspection checks a QC result may carry, from configuration.
func NewGRNService(grnRepo repository.GRNRepository, procRepo repository.ProcurementRepository, stock StockPoster, db *gorm.DB, hub *ws.Hub, qcCheckNames []string) GRNService {
	checks := make(map[string]bool, len(qcCheckNames))
	for _, name := range qcCheckNames {
		checks[name] = true
	}
	return &grnService{
		grnRepo:         grnRepo,
		procurementRepo: procRepo,
		stock:           stock,
		db:              db,
		wsHub:           hub,
		qcChecks:        checks,
	}
}

func (s *grnService) Create(req *CreateGRNRequest, userID, userName string) (*model.GRN, error) {
	grn := &model.GRN{
		PONo:        req.PONo,
		Notes:       req.Notes,
		Status:      model.GRNPending,
		ReceiptDate: time.Now(),
		Items:       req.Items,
	}
	if req.ReceiptDate != nil {
		grn.ReceiptDate = *req.ReceiptDate
	}

	// Created against a PO: pick up supplier and default the lines from it.
	if req.PONo != "" {
		po, err := s.procurementRepo.FindPOByNo(req.PONo)
		if err != nil {
			return nil, ErrPONotFound
		}
		grn.SupplierID = po.SupplierID
		grn.SupplierName = po.SupplierName
		if len(grn.Items) == 0 {
			for _, line := range po.Items {
				grn.Items = append(grn.Items, model.GRNItem{
					ItemCode:      line.ItemCode,
					ItemName:      line.ItemName,
					POQty:         line.Quantity,
					ReceivedQty:   line.Quantity,
					WarehouseName: line.WarehouseName,
					ItemStatus:    model.GRNItemPending,
				})
			}
		}
	}

	if len(grn.Items) == 0 {
		return nil, ErrGRNHasNoItems
	}
	for i := range grn.Items {
		if grn.Items[i].ItemStatus == "" {
			grn.Items[i].ItemStatus = model.GRNItemPending
		}
		if errs := validator.ValidateStruct(&grn.Items[i]); len(errs) > 0 {
			first := errs[0]
			return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		}
	}

	grn.CreatedBy = userID
	grn.UpdatedBy = userID
	if err := s.grnRepo.Create(grn); err != nil {
		return nil, err
	}

	s.publishStatusChange(grn, "grn_created", userID, userName)
	return grn, nil
}

func (s *grnService) GetAll() ([]model.GRN, error) {
	return s.grnRepo.FindAll()
}

func (s *grnService) GetByNo(grnNo string) (*model.GRN, error) {
	grn, err := s.grnRepo.FindByNo(grnNo)
	if err != nil {
		return nil, ErrGRNNotFound
	}
	return grn, nil
}

func (s *grnService) GetByStatus(status model.GRNStatus) ([]model.GRN, error) {
	return s.grnRepo.FindByStatus(status)
}

func (s *grnService) StartInspection(grnNo, userID, userName string) (*model.GRN, error) {
	return s.transition(grnNo, model.GRNInspecting, userID, userName, nil)
}

// RecordInspection stores per-item QC outcomes while the GRN is inspecting.
func (s *grnService) RecordInspection(grnNo string, results []ItemInspectionResult, userID, userName string) (*model.GRN, error) {
	var updated *model.GRN

	err := s.db.Transaction(func(tx *gorm.DB) error {
		grn, err := s.grnRepo.FindByNoForUpdate(tx, grnNo)
		if err != nil {
			return ErrGRNNotFound
		}
		if grn.Status != model.GRNInspecting {
			return fmt.Errorf("cannot record inspection while GRN is %s", grn.Status)
		}

		for _, res := range results {
			if errs := validator.ValidateStruct(&res); len(errs) > 0 {
				first := errs[0]
				return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
			}
			item := findItem(grn.Items, res.ItemCode)
			if item == nil {
				return fmt.Errorf("%w: %s", ErrUnknownGRNItem, res.ItemCode)
			}
			for name := range res.QCChecks {
				if !s.qcChecks[name] {
					return fmt.Errorf("%w: %s", ErrUnknownQCCheck, name)
				}
			}
			if err := applyInspection(item, res); err != nil {
				return err
			}
			item.UpdatedBy = userID
			if err := s.grnRepo.SaveItem(tx, item); err != nil {
				return err
			}
		}

		// Touch the header audit trail too.
		if err := s.grnRepo.UpdateStatus(tx, grn, grn.Status, userID); err != nil {
			return err
		}
		updated = grn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *grnService) CompleteInspection(grnNo, userID, userName string) (*model.GRN, error) {
	var updated *model.GRN

	err := s.db.Transaction(func(tx *gorm.DB) error {
		grn, err := s.grnRepo.FindByNoForUpdate(tx, grnNo)
		if err != nil {
			return ErrGRNNotFound
		}
		if grn.Status != model.GRNInspecting {
			return model.ErrIllegalTransition(grn.Status, model.GRNAwaitingInventoryApproval)
		}
		if !grn.AllItemsInspected() {
			return ErrItemsNotInspected
		}

		// All lines rejected: the GRN dies here instead of moving on to
		// inventory approval.
		target := model.GRNAwaitingInventoryApproval
		if len(grn.AcceptedItems()) == 0 {
			target = model.GRNRejected
		}
		if !grn.Status.CanTransitionTo(target) {
			return model.ErrIllegalTransition(grn.Status, target)
		}
		if err := s.grnRepo.UpdateStatus(tx, grn, target, userID); err != nil {
			return err
		}
		updated = grn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(updated, "inspection_completed", userID, userName)
	return updated, nil
}

// Approve moves an inspected GRN to approved and posts one Completed IN
// movement per accepted line. Any posting failure rolls everything back and
// leaves the GRN awaiting inventory approval.
func (s *grnService) Approve(grnNo, userID, userName string) (*model.GRN, error) {
	var updated *model.GRN

	err := s.db.Transaction(func(tx *gorm.DB) error {
		grn, err := s.grnRepo.FindByNoForUpdate(tx, grnNo)
		if err != nil {
			return ErrGRNNotFound
		}
		if !grn.Status.CanTransitionTo(model.GRNApproved) {
			return model.ErrIllegalTransition(grn.Status, model.GRNApproved)
		}

		accepted := grn.AcceptedItems()
		if len(accepted) == 0 {
			return ErrNoItemsAccepted
		}

		for _, item := range accepted {
			qty := item.EffectiveAcceptedQty()
			if qty.IsZero() {
				continue
			}
			_, err := s.stock.PostCompletedMovement(tx, PostMovementRequest{
				ItemCode:      item.ItemCode,
				WarehouseName: item.WarehouseName,
				MovementType:  model.MovementIn,
				Quantity:      qty,
				ReferenceType: "GRN",
				ReferenceName: grn.GRNNo,
				Status:        model.MovementCompleted,
				UserID:        userID,
			})
			if err != nil {
				return err
			}
		}

		if err := s.grnRepo.UpdateStatus(tx, grn, model.GRNApproved, userID); err != nil {
			return err
		}
		updated = grn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(updated, "grn_approved", userID, userName)
	return updated, nil
}

func (s *grnService) SendBack(grnNo, reason, userID, userName string) (*model.GRN, error) {
	grn, err := s.transition(grnNo, model.GRNSentBack, userID, userName, func(tx *gorm.DB, grn *model.GRN) error {
		if reason != "" {
			grn.Notes = grn.Notes + "\nSent back: " + reason
			return tx.Model(&model.GRN{}).Where("id = ?", grn.ID).Update("notes", grn.Notes).Error
		}
		return nil
	})
	return grn, err
}

func (s *grnService) Resubmit(grnNo, userID, userName string) (*model.GRN, error) {
	return s.transition(grnNo, model.GRNInspecting, userID, userName, nil)
}

// transition performs a plain status move with locking and the transition
// table check. extra runs inside the same transaction after the check.
func (s *grnService) transition(grnNo string, target model.GRNStatus, userID, userName string, extra func(*gorm.DB, *model.GRN) error) (*model.GRN, error) {
	var updated *model.GRN

	err := s.db.Transaction(func(tx *gorm.DB) error {
		grn, err := s.grnRepo.FindByNoForUpdate(tx, grnNo)
		if err != nil {
			return ErrGRNNotFound
		}
		if !grn.Status.CanTransitionTo(target) {
			return model.ErrIllegalTransition(grn.Status, target)
		}
		if extra != nil {
			if err := extra(tx, grn); err != nil {
				return err
			}
		}
		if err := s.grnRepo.UpdateStatus(tx, grn, target, userID); err != nil {
			return err
		}
		updated = grn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(updated, "grn_status_changed", userID, userName)
	return updated, nil
}

func (s *grnService) publishStatusChange(grn *model.GRN, action, userID, userName string) {
	s.wsHub.Publish(map[string]interface{}{
		"type":   "grn_update",
		"action": action,
		"grn": map[string]interface{}{
			"grn_no": grn.GRNNo,
			"po_no":  grn.PONo,
			"status": grn.Status,
		},
		"user": map[string]interface{}{
			"id":   userID,
			"name": userName,
		},
		"message": fmt.Sprintf("%s moved GRN %s to %s", userName, grn.GRNNo, grn.Status),
	})
}

func findItem(items []model.GRNItem, itemCode string) *model.GRNItem {
	for i := range items {
		if items[i].ItemCode == itemCode {
			return &items[i]
		}
	}
	return nil
}

// applyInspection copies a QC result onto a GRN line, normalizing the
// accepted quantity against what was actually received.
func applyInspection(item *model.GRNItem, res ItemInspectionResult) error {
	switch res.ItemStatus {
	case model.GRNItemAccepted:
		item.AcceptedQty = item.ReceivedQty
	case model.GRNItemPartiallyAccepted:
		if res.AcceptedQty.LessThanOrEqual(decimal.Zero) || res.AcceptedQty.GreaterThanOrEqual(item.ReceivedQty) {
			return fmt.Errorf("partially accepted qty for %s must be between 0 and received qty", item.ItemCode)
		}
		item.AcceptedQty = res.AcceptedQty
	case model.GRNItemRejected:
		item.AcceptedQty = decimal.Zero
		if res.RejectionReason == "" {
			return fmt.Errorf("rejection reason required for %s", item.ItemCode)
		}
	default:
		return fmt.Errorf("invalid item status %s", res.ItemStatus)
	}
	item.ItemStatus = res.ItemStatus
	item.RejectionReason = res.RejectionReason
	if res.QCChecks != nil {
		item.QCChecks = res.QCChecks
	}
	return nil
}
