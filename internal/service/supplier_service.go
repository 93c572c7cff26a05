package service

import (
	"errors"
	"fmt"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/pkg/validator"

	"github.com/google/uuid"
)

var ErrSupplierCodeExists = errors.New("supplier code already exists")

type SupplierService interface {
	Create(supplier *model.Supplier, userID string) error
	Update(id uuid.UUID, supplier *model.Supplier, userID string) (*model.Supplier, error)
	GetAll() ([]model.Supplier, error)
	GetByID(id uuid.UUID) (*model.Supplier, error)
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(supplier *model.Supplier, userID string) error {
	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	existing, _ := s.supplierRepo.FindByCode(supplier.SupplierCode)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrSupplierCodeExists
	}

	supplier.CreatedBy = userID
	supplier.UpdatedBy = userID
	return s.supplierRepo.Create(supplier)
}

func (s *supplierService) Update(id uuid.UUID, req *model.Supplier, userID string) (*model.Supplier, error) {
	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}

	existing.SupplierName = req.SupplierName
	existing.ContactPerson = req.ContactPerson
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.GSTIN = req.GSTIN
	existing.Address = req.Address
	existing.IsActive = req.IsActive
	existing.UpdatedBy = userID

	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *supplierService) GetAll() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) GetByID(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	return supplier, nil
}
