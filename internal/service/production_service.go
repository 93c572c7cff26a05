package service

import (
	"errors"
	"fmt"
	"time"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/internal/ws"
	"go-erp-backend/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrProductionOrderNotFound = errors.New("production order not found")
	ErrProductionCompleted     = errors.New("production order already completed")
	ErrProductionOnHold        = errors.New("production order is on hold")
	ErrProductionNotOnHold     = errors.New("production order is not on hold")
)

type ProductionService interface {
	Create(order *model.ProductionOrder, userID string) error
	GetAll() ([]model.ProductionOrder, error)
	GetByNo(prodNo string) (*model.ProductionOrder, error)
	// Advance moves the order to the next stage in sequence. Reaching the
	// completed stage posts a Pending IN movement for the finished quantity.
	Advance(prodNo, note, userID, userName string) (*model.ProductionOrder, error)
	Hold(prodNo, userID string) (*model.ProductionOrder, error)
	Resume(prodNo, userID string) (*model.ProductionOrder, error)
}

type productionService struct {
	prodRepo repository.ProductionRepository
	stock    StockPoster
	db       *gorm.DB
	wsHub    *ws.Hub
}

func NewProductionService(prodRepo repository.ProductionRepository, stock StockPoster, db *gorm.DB, hub *ws.Hub) ProductionService {
	return &productionService{prodRepo: prodRepo, stock: stock, db: db, wsHub: hub}
}

func (s *productionService) Create(order *model.ProductionOrder, userID string) error {
	if errs := validator.ValidateStruct(order); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	order.CurrentStage = model.StageMaterialRequest
	order.CreatedBy = userID
	order.UpdatedBy = userID
	return s.prodRepo.Create(order)
}

func (s *productionService) GetAll() ([]model.ProductionOrder, error) {
	return s.prodRepo.FindAll()
}

func (s *productionService) GetByNo(prodNo string) (*model.ProductionOrder, error) {
	order, err := s.prodRepo.FindByNo(prodNo)
	if err != nil {
		return nil, ErrProductionOrderNotFound
	}
	return order, nil
}

func (s *productionService) Advance(prodNo, note, userID, userName string) (*model.ProductionOrder, error) {
	var updated *model.ProductionOrder

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.prodRepo.FindByNoForUpdate(tx, prodNo)
		if err != nil {
			return ErrProductionOrderNotFound
		}
		if order.OnHold {
			return ErrProductionOnHold
		}

		next := order.CurrentStage.NextStage()
		if next == "" {
			return ErrProductionCompleted
		}

		order.CurrentStage = next
		order.UpdatedBy = userID
		if err := s.prodRepo.Save(tx, order); err != nil {
			return err
		}

		log := &model.StageLog{
			ProdOrderID: order.ID,
			Stage:       next,
			EnteredAt:   time.Now(),
			Note:        note,
		}
		log.CreatedBy = userID
		log.UpdatedBy = userID
		if err := s.prodRepo.AddStageLog(tx, log); err != nil {
			return err
		}

		// Finished goods land in stock as a pending IN entry; the inventory
		// manager still has to approve them into the balance.
		if next == model.StageCompleted {
			_, err := s.stock.PostCompletedMovement(tx, PostMovementRequest{
				ItemCode:      order.ItemCode,
				WarehouseName: order.WarehouseName,
				MovementType:  model.MovementIn,
				Quantity:      order.PlannedQty,
				ReferenceType: "Production Order",
				ReferenceName: order.ProdNo,
				Status:        model.MovementPending,
				UserID:        userID,
			})
			if err != nil {
				return err
			}
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":   "production_update",
		"action": "stage_advanced",
		"order": map[string]interface{}{
			"prod_no": updated.ProdNo,
			"stage":   updated.CurrentStage,
		},
		"user": map[string]interface{}{
			"id":   userID,
			"name": userName,
		},
		"message": fmt.Sprintf("%s moved %s to %s", userName, updated.ProdNo, updated.CurrentStage),
	})
	return updated, nil
}

func (s *productionService) Hold(prodNo, userID string) (*model.ProductionOrder, error) {
	return s.setHold(prodNo, userID, true)
}

func (s *productionService) Resume(prodNo, userID string) (*model.ProductionOrder, error) {
	return s.setHold(prodNo, userID, false)
}

func (s *productionService) setHold(prodNo, userID string, hold bool) (*model.ProductionOrder, error) {
	var updated *model.ProductionOrder

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.prodRepo.FindByNoForUpdate(tx, prodNo)
		if err != nil {
			return ErrProductionOrderNotFound
		}
		if order.CurrentStage == model.StageCompleted {
			return ErrProductionCompleted
		}
		if hold && order.OnHold {
			return ErrProductionOnHold
		}
		if !hold && !order.OnHold {
			return ErrProductionNotOnHold
		}
		order.OnHold = hold
		order.UpdatedBy = userID
		if err := s.prodRepo.Save(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
