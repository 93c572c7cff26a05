package service

import (
	"errors"
	"fmt"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/internal/ws"
	"go-erp-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrMovementNotFound   = errors.New("stock movement not found")
	ErrInsufficientStock  = errors.New("insufficient stock remaining")
	ErrMovementNotPending = errors.New("only pending movements can be approved or rejected")
)

// CreateMovementRequest is the payload for a manual ledger entry. Manual
// entries always start Pending and need inventory approval.
type CreateMovementRequest struct {
	ItemCode      string             `json:"item_code" validate:"required"`
	WarehouseID   uuid.UUID          `json:"warehouse_id" validate:"uuid_required"`
	MovementType  model.MovementType `json:"movement_type" validate:"required,oneof=IN OUT"`
	Quantity      decimal.Decimal    `json:"quantity" validate:"gt=0"`
	ReferenceType string             `json:"reference_type"`
	ReferenceName string             `json:"reference_name"`
	Notes         string             `json:"notes"`
}

type StockService interface {
	CreateWarehouse(w *model.Warehouse, userID string) error
	GetWarehouses() ([]model.Warehouse, error)

	CreateMovement(req *CreateMovementRequest, userID, userName string) (*model.StockMovement, error)
	GetMovements() ([]model.StockMovement, error)
	GetMovementsByReference(refType, refName string) ([]model.StockMovement, error)
	GetMovement(id uuid.UUID) (*model.StockMovement, error)
	ApproveMovement(id uuid.UUID, userID, userName string) (*model.StockMovement, error)
	RejectMovement(id uuid.UUID, userID, userName string) (*model.StockMovement, error)

	GetBalances() ([]model.StockBalance, error)
	RecomputeBalances(userID string) ([]model.StockBalance, error)

	// PostCompletedMovement implements StockPoster for document workflows.
	PostCompletedMovement(tx *gorm.DB, req PostMovementRequest) (*model.StockMovement, error)
}

type stockService struct {
	stockRepo repository.StockRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewStockService(stockRepo repository.StockRepository, db *gorm.DB, hub *ws.Hub) StockService {
	return &stockService{stockRepo: stockRepo, db: db, wsHub: hub}
}

func (s *stockService) CreateWarehouse(w *model.Warehouse, userID string) error {
	if errs := validator.ValidateStruct(w); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	w.CreatedBy = userID
	w.UpdatedBy = userID
	return s.stockRepo.CreateWarehouse(w)
}

func (s *stockService) GetWarehouses() ([]model.Warehouse, error) {
	return s.stockRepo.FindAllWarehouses()
}

func (s *stockService) CreateMovement(req *CreateMovementRequest, userID, userName string) (*model.StockMovement, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if _, err := s.stockRepo.FindWarehouseByID(req.WarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}

	refType := req.ReferenceType
	if refType == "" {
		refType = "Manual"
	}

	movement := &model.StockMovement{
		ItemCode:        req.ItemCode,
		WarehouseID:     req.WarehouseID,
		MovementType:    req.MovementType,
		Quantity:        req.Quantity,
		Status:          model.MovementPending,
		ReferenceType:   refType,
		ReferenceName:   req.ReferenceName,
		Notes:           req.Notes,
		CreatedByUserID: &userID,
	}
	movement.CreatedBy = userID
	movement.UpdatedBy = userID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.stockRepo.CreateMovement(tx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

func (s *stockService) GetMovements() ([]model.StockMovement, error) {
	return s.stockRepo.FindAllMovements()
}

// GetMovementsByReference lists the ledger entries a source document created,
// e.g. the IN movements posted by an approved GRN.
func (s *stockService) GetMovementsByReference(refType, refName string) ([]model.StockMovement, error) {
	return s.stockRepo.FindMovementsByReference(refType, refName)
}

func (s *stockService) GetMovement(id uuid.UUID) (*model.StockMovement, error) {
	m, err := s.stockRepo.FindMovementByID(id)
	if err != nil {
		return nil, ErrMovementNotFound
	}
	return m, nil
}

// ApproveMovement takes a pending movement through Approved to Completed and
// applies it to the cached balance, all in one transaction.
func (s *stockService) ApproveMovement(id uuid.UUID, userID, userName string) (*model.StockMovement, error) {
	var approved *model.StockMovement

	err := s.db.Transaction(func(tx *gorm.DB) error {
		movement, err := s.stockRepo.FindMovementByIDForUpdate(tx, id)
		if err != nil {
			return ErrMovementNotFound
		}
		if !movement.Status.CanTransitionTo(model.MovementApproved) {
			return ErrMovementNotPending
		}

		if err := s.stockRepo.UpdateMovementStatus(tx, movement.ID, model.MovementApproved, userID); err != nil {
			return err
		}
		if err := s.applyToBalance(tx, movement); err != nil {
			return err
		}
		if err := s.stockRepo.UpdateMovementStatus(tx, movement.ID, model.MovementCompleted, userID); err != nil {
			return err
		}
		movement.Status = model.MovementCompleted
		approved = movement
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishMovement(approved, "movement_completed", userID, userName)
	return approved, nil
}

func (s *stockService) RejectMovement(id uuid.UUID, userID, userName string) (*model.StockMovement, error) {
	var rejected *model.StockMovement

	err := s.db.Transaction(func(tx *gorm.DB) error {
		movement, err := s.stockRepo.FindMovementByIDForUpdate(tx, id)
		if err != nil {
			return ErrMovementNotFound
		}
		if !movement.Status.CanTransitionTo(model.MovementCancelled) {
			return ErrMovementNotPending
		}
		if err := s.stockRepo.UpdateMovementStatus(tx, movement.ID, model.MovementCancelled, userID); err != nil {
			return err
		}
		movement.Status = model.MovementCancelled
		rejected = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

func (s *stockService) GetBalances() ([]model.StockBalance, error) {
	return s.stockRepo.FindAllBalances()
}

// PostCompletedMovement creates a movement on behalf of a document workflow
// (GRN approval, production completion) inside the caller's transaction.
// Completed movements hit the balance immediately; Pending ones wait for
// stock approval.
func (s *stockService) PostCompletedMovement(tx *gorm.DB, req PostMovementRequest) (*model.StockMovement, error) {
	warehouse, err := s.stockRepo.FindWarehouseByName(req.WarehouseName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWarehouseNotFound, req.WarehouseName)
	}

	status := req.Status
	if status == "" {
		status = model.MovementCompleted
	}

	movement := &model.StockMovement{
		ItemCode:        req.ItemCode,
		WarehouseID:     warehouse.ID,
		MovementType:    req.MovementType,
		Quantity:        req.Quantity,
		Status:          status,
		ReferenceType:   req.ReferenceType,
		ReferenceName:   req.ReferenceName,
		CreatedByUserID: &req.UserID,
	}
	movement.CreatedBy = req.UserID
	movement.UpdatedBy = req.UserID

	if err := s.stockRepo.CreateMovement(tx, movement); err != nil {
		return nil, err
	}
	if status == model.MovementCompleted {
		if err := s.applyToBalance(tx, movement); err != nil {
			return nil, err
		}
	}
	return movement, nil
}

// applyToBalance locks the (item, warehouse) balance row and adds the signed
// movement quantity. OUT movements may not drive the balance negative.
func (s *stockService) applyToBalance(tx *gorm.DB, movement *model.StockMovement) error {
	balance, err := s.stockRepo.FindBalanceForUpdate(tx, movement.ItemCode, movement.WarehouseID)
	if err != nil {
		return err
	}

	newQty := balance.CurrentQty.Add(movement.SignedQty())
	if newQty.IsNegative() {
		return ErrInsufficientStock
	}
	balance.CurrentQty = newQty
	balance.UpdatedBy = movement.UpdatedBy
	return s.stockRepo.SaveBalance(tx, balance)
}

// BalanceKey identifies one (item, warehouse) running total.
type BalanceKey struct {
	ItemCode    string
	WarehouseID uuid.UUID
}

// DeriveBalances re-derives running totals from a full movement history.
// Only Completed movements count.
func DeriveBalances(movements []model.StockMovement) map[BalanceKey]decimal.Decimal {
	balances := make(map[BalanceKey]decimal.Decimal)
	for _, m := range movements {
		if m.Status != model.MovementCompleted {
			continue
		}
		key := BalanceKey{ItemCode: m.ItemCode, WarehouseID: m.WarehouseID}
		balances[key] = balances[key].Add(m.SignedQty())
	}
	return balances
}

// RecomputeBalances rebuilds the balance cache from the Completed movement
// history. The derived set replaces the cache wholesale; a mismatch between
// the two would indicate ledger corruption.
func (s *stockService) RecomputeBalances(userID string) ([]model.StockBalance, error) {
	var result []model.StockBalance

	err := s.db.Transaction(func(tx *gorm.DB) error {
		movements, err := s.stockRepo.FindCompletedMovements(tx)
		if err != nil {
			return err
		}

		derived := DeriveBalances(movements)
		balances := make([]model.StockBalance, 0, len(derived))
		for key, qty := range derived {
			b := model.StockBalance{
				ItemCode:    key.ItemCode,
				WarehouseID: key.WarehouseID,
				CurrentQty:  qty,
			}
			b.CreatedBy = userID
			b.UpdatedBy = userID
			balances = append(balances, b)
		}

		if err := s.stockRepo.ReplaceBalances(tx, balances); err != nil {
			return err
		}
		result = balances
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *stockService) publishMovement(m *model.StockMovement, action, userID, userName string) {
	s.wsHub.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"movement": map[string]interface{}{
			"transaction_no": m.TransactionNo,
			"item_code":      m.ItemCode,
			"movement_type":  m.MovementType,
			"quantity":       m.Quantity,
			"status":         m.Status,
		},
		"user": map[string]interface{}{
			"id":   userID,
			"name": userName,
		},
		"message": fmt.Sprintf("%s posted %s %s of %s", userName, m.MovementType, m.Quantity, m.ItemCode),
	})
}
