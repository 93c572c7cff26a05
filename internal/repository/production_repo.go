package repository

import (
	"go-erp-backend/internal/docnum"
	"go-erp-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductionRepository interface {
	Create(order *model.ProductionOrder) error
	FindAll() ([]model.ProductionOrder, error)
	FindByNo(prodNo string) (*model.ProductionOrder, error)
	FindByNoForUpdate(tx *gorm.DB, prodNo string) (*model.ProductionOrder, error)
	Save(tx *gorm.DB, order *model.ProductionOrder) error
	AddStageLog(tx *gorm.DB, log *model.StageLog) error
}

type productionRepo struct {
	db *gorm.DB
}

func NewProductionRepo(db *gorm.DB) ProductionRepository {
	return &productionRepo{db}
}

func (r *productionRepo) Create(order *model.ProductionOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.ProductionOrder{}, "prod_no", docnum.PrefixProdOrder)
		if err != nil {
			return err
		}
		order.ProdNo = no
		return tx.Create(order).Error
	})
}

func (r *productionRepo) FindAll() ([]model.ProductionOrder, error) {
	var orders []model.ProductionOrder
	err := r.db.Preload("StageLogs").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *productionRepo) FindByNo(prodNo string) (*model.ProductionOrder, error) {
	var order model.ProductionOrder
	err := r.db.Preload("StageLogs").First(&order, "prod_no = ?", prodNo).Error
	return &order, err
}

func (r *productionRepo) FindByNoForUpdate(tx *gorm.DB, prodNo string) (*model.ProductionOrder, error) {
	var order model.ProductionOrder
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, "prod_no = ?", prodNo).Error
	return &order, err
}

func (r *productionRepo) Save(tx *gorm.DB, order *model.ProductionOrder) error {
	return tx.Save(order).Error
}

func (r *productionRepo) AddStageLog(tx *gorm.DB, log *model.StageLog) error {
	return tx.Create(log).Error
}
