package repository

import (
	"go-erp-backend/internal/docnum"
	"go-erp-backend/internal/model"

	"gorm.io/gorm"
)

type BOMRepository interface {
	Create(bom *model.BOM) error
	FindAll() ([]model.BOM, error)
	FindByNo(bomNo string) (*model.BOM, error)
	Update(bom *model.BOM) error
}

type bomRepo struct {
	db *gorm.DB
}

func NewBOMRepo(db *gorm.DB) BOMRepository {
	return &bomRepo{db}
}

func (r *bomRepo) Create(bom *model.BOM) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.BOM{}, "bom_no", docnum.PrefixBOM)
		if err != nil {
			return err
		}
		bom.BOMNo = no
		return tx.Create(bom).Error
	})
}

func (r *bomRepo) FindAll() ([]model.BOM, error) {
	var boms []model.BOM
	err := r.db.Preload("Components").Preload("Operations").Order("created_at DESC").Find(&boms).Error
	return boms, err
}

func (r *bomRepo) FindByNo(bomNo string) (*model.BOM, error) {
	var bom model.BOM
	err := r.db.Preload("Components").Preload("Operations").First(&bom, "bom_no = ?", bomNo).Error
	return &bom, err
}

func (r *bomRepo) Update(bom *model.BOM) error {
	return r.db.Save(bom).Error
}
