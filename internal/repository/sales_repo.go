package repository

import (
	"go-erp-backend/internal/docnum"
	"go-erp-backend/internal/model"

	"gorm.io/gorm"
)

type SalesRepository interface {
	CreateQuotation(q *model.SalesQuotation) error
	FindAllQuotations() ([]model.SalesQuotation, error)
	FindQuotationByNo(no string) (*model.SalesQuotation, error)
	UpdateQuotation(q *model.SalesQuotation) error

	CreateOrder(o *model.SalesOrder) error
	FindAllOrders() ([]model.SalesOrder, error)
	FindOrderByNo(no string) (*model.SalesOrder, error)
	UpdateOrder(o *model.SalesOrder) error
}

type salesRepo struct {
	db *gorm.DB
}

func NewSalesRepo(db *gorm.DB) SalesRepository {
	return &salesRepo{db}
}

func (r *salesRepo) CreateQuotation(q *model.SalesQuotation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.SalesQuotation{}, "quotation_no", docnum.PrefixSalesQ)
		if err != nil {
			return err
		}
		q.QuotationNo = no
		return tx.Create(q).Error
	})
}

func (r *salesRepo) FindAllQuotations() ([]model.SalesQuotation, error) {
	var quotations []model.SalesQuotation
	err := r.db.Preload("Items").Order("created_at DESC").Find(&quotations).Error
	return quotations, err
}

func (r *salesRepo) FindQuotationByNo(no string) (*model.SalesQuotation, error) {
	var q model.SalesQuotation
	err := r.db.Preload("Items").First(&q, "quotation_no = ?", no).Error
	return &q, err
}

func (r *salesRepo) UpdateQuotation(q *model.SalesQuotation) error {
	return r.db.Save(q).Error
}

func (r *salesRepo) CreateOrder(o *model.SalesOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.SalesOrder{}, "order_no", docnum.PrefixSalesOrd)
		if err != nil {
			return err
		}
		o.OrderNo = no
		return tx.Create(o).Error
	})
}

func (r *salesRepo) FindAllOrders() ([]model.SalesOrder, error) {
	var orders []model.SalesOrder
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *salesRepo) FindOrderByNo(no string) (*model.SalesOrder, error) {
	var o model.SalesOrder
	err := r.db.Preload("Items").First(&o, "order_no = ?", no).Error
	return &o, err
}

func (r *salesRepo) UpdateOrder(o *model.SalesOrder) error {
	return r.db.Save(o).Error
}
