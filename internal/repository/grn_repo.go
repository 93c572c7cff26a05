package repository

import (
	"go-erp-backend/internal/docnum"
	"go-erp-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GRNRepository interface {
	Create(grn *model.GRN) error
	FindAll() ([]model.GRN, error)
	FindByNo(grnNo string) (*model.GRN, error)
	FindByStatus(status model.GRNStatus) ([]model.GRN, error)
	// FindByNoForUpdate locks the GRN row inside tx for the duration of a
	// workflow transition.
	FindByNoForUpdate(tx *gorm.DB, grnNo string) (*model.GRN, error)
	UpdateStatus(tx *gorm.DB, grn *model.GRN, status model.GRNStatus, updatedBy string) error
	SaveItem(tx *gorm.DB, item *model.GRNItem) error
}

type grnRepo struct {
	db *gorm.DB
}

func NewGRNRepo(db *gorm.DB) GRNRepository {
	return &grnRepo{db}
}

func (r *grnRepo) Create(grn *model.GRN) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.GRN{}, "grn_no", docnum.PrefixGRN)
		if err != nil {
			return err
		}
		grn.GRNNo = no
		return tx.Create(grn).Error
	})
}

func (r *grnRepo) FindAll() ([]model.GRN, error) {
	var grns []model.GRN
	err := r.db.Preload("Items").Order("created_at DESC").Find(&grns).Error
	return grns, err
}

func (r *grnRepo) FindByNo(grnNo string) (*model.GRN, error) {
	var grn model.GRN
	err := r.db.Preload("Items").First(&grn, "grn_no = ?", grnNo).Error
	return &grn, err
}

func (r *grnRepo) FindByStatus(status model.GRNStatus) ([]model.GRN, error) {
	var grns []model.GRN
	err := r.db.Preload("Items").Where("status = ?", status).Order("created_at DESC").Find(&grns).Error
	return grns, err
}

func (r *grnRepo) FindByNoForUpdate(tx *gorm.DB, grnNo string) (*model.GRN, error) {
	var grn model.GRN
	// Lock the header row first, then load items; two users transitioning the
	// same GRN serialize on this lock.
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&grn, "grn_no = ?", grnNo).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("grn_id = ?", grn.ID).Find(&grn.Items).Error; err != nil {
		return nil, err
	}
	return &grn, nil
}

func (r *grnRepo) UpdateStatus(tx *gorm.DB, grn *model.GRN, status model.GRNStatus, updatedBy string) error {
	grn.Status = status
	return tx.Model(&model.GRN{}).
		Where("id = ?", grn.ID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *grnRepo) SaveItem(tx *gorm.DB, item *model.GRNItem) error {
	return tx.Save(item).Error
}
