package service

import (
	"errors"
	"fmt"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/pkg/validator"
)

var (
	ErrRFQNotFound       = errors.New("RFQ not found")
	ErrQuotationNotFound = errors.New("supplier quotation not found")
)

type ProcurementService interface {
	CreateRFQ(rfq *model.RFQ, userID string) error
	GetRFQs() ([]model.RFQ, error)
	GetRFQ(rfqNo string) (*model.RFQ, error)
	UpdateRFQStatus(rfqNo string, status model.RFQStatus, userID string) (*model.RFQ, error)

	CreateQuotation(q *model.SupplierQuotation, userID string) error
	GetQuotations() ([]model.SupplierQuotation, error)
	UpdateQuotationStatus(no string, status model.QuotationStatus, userID string) (*model.SupplierQuotation, error)

	CreatePO(po *model.PurchaseOrder, userID string) error
	GetPOs() ([]model.PurchaseOrder, error)
	GetPO(poNo string) (*model.PurchaseOrder, error)
	UpdatePOStatus(poNo string, status model.POStatus, userID string) (*model.PurchaseOrder, error)
}

type procurementService struct {
	procRepo     repository.ProcurementRepository
	supplierRepo repository.SupplierRepository
}

func NewProcurementService(procRepo repository.ProcurementRepository, supplierRepo repository.SupplierRepository) ProcurementService {
	return &procurementService{procRepo: procRepo, supplierRepo: supplierRepo}
}

func (s *procurementService) CreateRFQ(rfq *model.RFQ, userID string) error {
	for i := range rfq.Items {
		if errs := validator.ValidateStruct(&rfq.Items[i]); len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		}
	}
	rfq.Status = model.RFQDraft
	rfq.CreatedBy = userID
	rfq.UpdatedBy = userID
	return s.procRepo.CreateRFQ(rfq)
}

func (s *procurementService) GetRFQs() ([]model.RFQ, error) {
	return s.procRepo.FindAllRFQs()
}

func (s *procurementService) GetRFQ(rfqNo string) (*model.RFQ, error) {
	rfq, err := s.procRepo.FindRFQByNo(rfqNo)
	if err != nil {
		return nil, ErrRFQNotFound
	}
	return rfq, nil
}

func (s *procurementService) UpdateRFQStatus(rfqNo string, status model.RFQStatus, userID string) (*model.RFQ, error) {
	rfq, err := s.procRepo.FindRFQByNo(rfqNo)
	if err != nil {
		return nil, ErrRFQNotFound
	}
	if !rfq.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("illegal transition from %s to %s", rfq.Status, status)
	}
	rfq.Status = status
	rfq.UpdatedBy = userID
	if err := s.procRepo.UpdateRFQ(rfq); err != nil {
		return nil, err
	}
	return rfq, nil
}

func (s *procurementService) CreateQuotation(q *model.SupplierQuotation, userID string) error {
	if errs := validator.ValidateStruct(q); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if _, err := s.supplierRepo.FindByID(q.SupplierID); err != nil {
		return errors.New("supplier not found")
	}
	q.Status = model.QuotationReceived
	q.CreatedBy = userID
	q.UpdatedBy = userID
	return s.procRepo.CreateQuotation(q)
}

func (s *procurementService) GetQuotations() ([]model.SupplierQuotation, error) {
	return s.procRepo.FindAllQuotations()
}

func (s *procurementService) UpdateQuotationStatus(no string, status model.QuotationStatus, userID string) (*model.SupplierQuotation, error) {
	q, err := s.procRepo.FindQuotationByNo(no)
	if err != nil {
		return nil, ErrQuotationNotFound
	}
	if !q.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("illegal transition from %s to %s", q.Status, status)
	}
	q.Status = status
	q.UpdatedBy = userID
	if err := s.procRepo.UpdateQuotation(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *procurementService) CreatePO(po *model.PurchaseOrder, userID string) error {
	if errs := validator.ValidateStruct(po); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	supplier, err := s.supplierRepo.FindByID(po.SupplierID)
	if err != nil {
		return errors.New("supplier not found")
	}
	for i := range po.Items {
		if errs := validator.ValidateStruct(&po.Items[i]); len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
		}
	}

	po.SupplierName = supplier.SupplierName
	po.Status = model.PODraft
	po.ComputeGrandTotal()
	po.CreatedBy = userID
	po.UpdatedBy = userID
	return s.procRepo.CreatePO(po)
}

func (s *procurementService) GetPOs() ([]model.PurchaseOrder, error) {
	return s.procRepo.FindAllPOs()
}

func (s *procurementService) GetPO(poNo string) (*model.PurchaseOrder, error) {
	po, err := s.procRepo.FindPOByNo(poNo)
	if err != nil {
		return nil, ErrPONotFound
	}
	return po, nil
}

func (s *procurementService) UpdatePOStatus(poNo string, status model.POStatus, userID string) (*model.PurchaseOrder, error) {
	po, err := s.procRepo.FindPOByNo(poNo)
	if err != nil {
		return nil, ErrPONotFound
	}
	if !po.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("illegal transition from %s to %s", po.Status, status)
	}
	po.Status = status
	po.UpdatedBy = userID
	if err := s.procRepo.UpdatePO(po); err != nil {
		return nil, err
	}
	return po, nil
}
