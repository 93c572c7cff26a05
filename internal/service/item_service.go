package service

import (
	"errors"
	"fmt"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/pkg/validator"

	"github.com/google/uuid"
)

var ErrItemCodeExists = errors.New("item code already exists")

type ItemService interface {
	Create(item *model.Item, userID string) error
	Update(id uuid.UUID, item *model.Item, userID string) (*model.Item, error)
	GetAll() ([]model.Item, error)
	GetByCode(code string) (*model.Item, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) Create(item *model.Item, userID string) error {
	if errs := validator.ValidateStruct(item); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	existing, _ := s.itemRepo.FindByCode(item.ItemCode)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrItemCodeExists
	}

	item.CreatedBy = userID
	item.UpdatedBy = userID
	item.CreatedByUserID = &userID
	item.UpdatedByUserID = &userID
	return s.itemRepo.Create(item)
}

func (s *itemService) Update(id uuid.UUID, req *model.Item, userID string) (*model.Item, error) {
	existing, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("item not found")
	}

	existing.ItemName = req.ItemName
	existing.ItemGroup = req.ItemGroup
	existing.UOM = req.UOM
	existing.HSNCode = req.HSNCode
	existing.GSTRate = req.GSTRate
	existing.StandardRate = req.StandardRate
	existing.ReorderLevel = req.ReorderLevel
	existing.Description = req.Description
	existing.IsActive = req.IsActive
	existing.UpdatedBy = userID
	existing.UpdatedByUserID = &userID

	if err := s.itemRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *itemService) GetAll() ([]model.Item, error) {
	return s.itemRepo.FindAll()
}

func (s *itemService) GetByCode(code string) (*model.Item, error) {
	item, err := s.itemRepo.FindByCode(code)
	if err != nil {
		return nil, errors.New("item not found")
	}
	return item, nil
}
