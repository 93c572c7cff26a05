package service

import (
	"errors"
	"fmt"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/pkg/validator"

	"github.com/shopspring/decimal"
)

var (
	ErrBOMNotFound      = errors.New("BOM not found")
	ErrBOMCycleDetected = errors.New("BOM references form a cycle")
)

// BOMCostBreakdown is the result of a cost roll-up for a given quantity.
type BOMCostBreakdown struct {
	BOMNo         string          `json:"bom_no"`
	ItemCode      string          `json:"item_code"`
	Quantity      decimal.Decimal `json:"quantity"`
	MaterialCost  decimal.Decimal `json:"material_cost"`
	OperationCost decimal.Decimal `json:"operation_cost"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	WithMargin    decimal.Decimal `json:"with_margin"`
	GSTAmount     decimal.Decimal `json:"gst_amount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

type BOMService interface {
	Create(bom *model.BOM, userID string) error
	Update(bomNo string, bom *model.BOM, userID string) (*model.BOM, error)
	GetAll() ([]model.BOM, error)
	GetByNo(bomNo string) (*model.BOM, error)
	// Cost rolls up the BOM cost for a quantity multiplier.
	Cost(bomNo string, quantity decimal.Decimal) (*BOMCostBreakdown, error)
}

type bomService struct {
	bomRepo repository.BOMRepository
}

func NewBOMService(bomRepo repository.BOMRepository) BOMService {
	return &bomService{bomRepo: bomRepo}
}

func (s *bomService) Create(bom *model.BOM, userID string) error {
	for i := range bom.Components {
		if errs := validator.ValidateStruct(&bom.Components[i]); len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		}
	}
	if bom.Quantity.IsZero() {
		bom.Quantity = decimal.NewFromInt(1)
	}
	bom.CreatedBy = userID
	bom.UpdatedBy = userID
	return s.bomRepo.Create(bom)
}

func (s *bomService) Update(bomNo string, req *model.BOM, userID string) (*model.BOM, error) {
	existing, err := s.bomRepo.FindByNo(bomNo)
	if err != nil {
		return nil, ErrBOMNotFound
	}
	existing.ItemCode = req.ItemCode
	existing.ItemName = req.ItemName
	existing.ProfitMargin = req.ProfitMargin
	existing.CGSTRate = req.CGSTRate
	existing.SGSTRate = req.SGSTRate
	existing.IsActive = req.IsActive
	existing.UpdatedBy = userID
	if err := s.bomRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *bomService) GetAll() ([]model.BOM, error) {
	return s.bomRepo.FindAll()
}

func (s *bomService) GetByNo(bomNo string) (*model.BOM, error) {
	bom, err := s.bomRepo.FindByNo(bomNo)
	if err != nil {
		return nil, ErrBOMNotFound
	}
	return bom, nil
}

func (s *bomService) Cost(bomNo string, quantity decimal.Decimal) (*BOMCostBreakdown, error) {
	bom, err := s.bomRepo.FindByNo(bomNo)
	if err != nil {
		return nil, ErrBOMNotFound
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		quantity = decimal.NewFromInt(1)
	}

	unitCost, err := s.unitCost(bom, map[string]bool{})
	if err != nil {
		return nil, err
	}

	breakdown := RollUpCost(bom, quantity, unitCost.materials, unitCost.operations)
	return &breakdown, nil
}

type resolvedCost struct {
	materials  decimal.Decimal
	operations decimal.Decimal
}

// unitCost resolves material and operation cost for one batch of the BOM,
// recursing into sub-assembly BOMs. visiting guards against reference cycles.
func (s *bomService) unitCost(bom *model.BOM, visiting map[string]bool) (resolvedCost, error) {
	if visiting[bom.BOMNo] {
		return resolvedCost{}, ErrBOMCycleDetected
	}
	visiting[bom.BOMNo] = true
	defer delete(visiting, bom.BOMNo)

	materials := decimal.Zero
	for _, c := range bom.Components {
		rate := c.Rate
		if c.ComponentType == model.ComponentSubAssembly && c.SubBOMNo != "" {
			sub, err := s.bomRepo.FindByNo(c.SubBOMNo)
			if err != nil {
				// Missing sub-BOM rates roll up as zero, same as a missing
				// rate on a raw material.
				rate = decimal.Zero
			} else {
				subCost, err := s.unitCost(sub, visiting)
				if err != nil {
					return resolvedCost{}, err
				}
				rate = subCost.materials.Add(subCost.operations)
				if !sub.Quantity.IsZero() {
					rate = rate.Div(sub.Quantity)
				}
			}
		}
		materials = materials.Add(c.Quantity.Mul(rate))
	}

	operations := decimal.Zero
	for _, op := range bom.Operations {
		operations = operations.Add(op.Hours.Mul(op.HourlyRate))
	}

	return resolvedCost{materials: materials, operations: operations}, nil
}

// RollUpCost applies the quantity multiplier, profit margin and GST to
// already-resolved per-batch material and operation costs. Missing or zero
// rates contribute zero; nothing here errors.
func RollUpCost(bom *model.BOM, quantity, materialCost, operationCost decimal.Decimal) BOMCostBreakdown {
	batches := quantity
	if !bom.Quantity.IsZero() {
		batches = quantity.Div(bom.Quantity)
	}

	materials := materialCost.Mul(batches)
	operations := operationCost.Mul(batches)
	subtotal := materials.Add(operations)

	hundred := decimal.NewFromInt(100)
	withMargin := subtotal.Mul(hundred.Add(bom.ProfitMargin)).Div(hundred)
	gstRate := bom.CGSTRate.Add(bom.SGSTRate)
	gstAmount := withMargin.Mul(gstRate).Div(hundred)

	return BOMCostBreakdown{
		BOMNo:         bom.BOMNo,
		ItemCode:      bom.ItemCode,
		Quantity:      quantity,
		MaterialCost:  materials,
		OperationCost: operations,
		Subtotal:      subtotal,
		WithMargin:    withMargin,
		GSTAmount:     gstAmount,
		GrandTotal:    withMargin.Add(gstAmount),
	}
}
