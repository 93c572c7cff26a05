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
	ErrSalesQuotationNotFound = errors.New("sales quotation not found")
	ErrSalesOrderNotFound     = errors.New("sales order not found")
)

type SalesService interface {
	CreateQuotation(q *model.SalesQuotation, userID string) error
	GetQuotations() ([]model.SalesQuotation, error)
	UpdateQuotationStatus(no string, status model.SalesQuotationStatus, userID string) (*model.SalesQuotation, error)

	CreateOrder(o *model.SalesOrder, userID string) error
	GetOrders() ([]model.SalesOrder, error)
	GetOrder(no string) (*model.SalesOrder, error)
	UpdateOrderStatus(no string, status model.SalesOrderStatus, userID string) (*model.SalesOrder, error)
}

type salesService struct {
	salesRepo repository.SalesRepository
	itemRepo  repository.ItemRepository
}

func NewSalesService(salesRepo repository.SalesRepository, itemRepo repository.ItemRepository) SalesService {
	return &salesService{salesRepo: salesRepo, itemRepo: itemRepo}
}

// enrichLines pulls item names and GST rates from the item master for lines
// that did not carry them, then returns the grand total.
func (s *salesService) enrichLines(items []model.SalesItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i := range items {
		if errs := validator.ValidateStruct(&items[i]); len(errs) > 0 {
			first := errs[0]
			return total, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		}
		if master, err := s.itemRepo.FindByCode(items[i].ItemCode); err == nil {
			if items[i].ItemName == "" {
				items[i].ItemName = master.ItemName
			}
			if items[i].GSTRate.IsZero() {
				items[i].GSTRate = master.GSTRate
			}
		}
		total = total.Add(items[i].Amount())
	}
	return total, nil
}

func (s *salesService) CreateQuotation(q *model.SalesQuotation, userID string) error {
	if errs := validator.ValidateStruct(q); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	total, err := s.enrichLines(q.Items)
	if err != nil {
		return err
	}
	q.GrandTotal = total
	q.Status = model.SQDraft
	q.CreatedBy = userID
	q.UpdatedBy = userID
	return s.salesRepo.CreateQuotation(q)
}

func (s *salesService) GetQuotations() ([]model.SalesQuotation, error) {
	return s.salesRepo.FindAllQuotations()
}

func (s *salesService) UpdateQuotationStatus(no string, status model.SalesQuotationStatus, userID string) (*model.SalesQuotation, error) {
	q, err := s.salesRepo.FindQuotationByNo(no)
	if err != nil {
		return nil, ErrSalesQuotationNotFound
	}
	if !q.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("illegal transition from %s to %s", q.Status, status)
	}
	q.Status = status
	q.UpdatedBy = userID
	if err := s.salesRepo.UpdateQuotation(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *salesService) CreateOrder(o *model.SalesOrder, userID string) error {
	if errs := validator.ValidateStruct(o); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	total, err := s.enrichLines(o.Items)
	if err != nil {
		return err
	}
	o.GrandTotal = total
	o.Status = model.SODraft
	o.CreatedBy = userID
	o.UpdatedBy = userID
	return s.salesRepo.CreateOrder(o)
}

func (s *salesService) GetOrders() ([]model.SalesOrder, error) {
	return s.salesRepo.FindAllOrders()
}

func (s *salesService) GetOrder(no string) (*model.SalesOrder, error) {
	o, err := s.salesRepo.FindOrderByNo(no)
	if err != nil {
		return nil, ErrSalesOrderNotFound
	}
	return o, nil
}

func (s *salesService) UpdateOrderStatus(no string, status model.SalesOrderStatus, userID string) (*model.SalesOrder, error) {
	o, err := s.salesRepo.FindOrderByNo(no)
	if err != nil {
		return nil, ErrSalesOrderNotFound
	}
	if !o.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("illegal transition from %s to %s", o.Status, status)
	}
	o.Status = status
	o.UpdatedBy = userID
	if err := s.salesRepo.UpdateOrder(o); err != nil {
		return nil, err
	}
	return o, nil
}
