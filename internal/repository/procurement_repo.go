package repository

import (
	"go-erp-backend/internal/docnum"
	"go-erp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProcurementRepository interface {
	CreateRFQ(rfq *model.RFQ) error
	FindAllRFQs() ([]model.RFQ, error)
	FindRFQByNo(rfqNo string) (*model.RFQ, error)
	UpdateRFQ(rfq *model.RFQ) error

	CreateQuotation(q *model.SupplierQuotation) error
	FindAllQuotations() ([]model.SupplierQuotation, error)
	FindQuotationByNo(no string) (*model.SupplierQuotation, error)
	UpdateQuotation(q *model.SupplierQuotation) error

	CreatePO(po *model.PurchaseOrder) error
	FindAllPOs() ([]model.PurchaseOrder, error)
	FindPOByNo(poNo string) (*model.PurchaseOrder, error)
	FindPOByID(id uuid.UUID) (*model.PurchaseOrder, error)
	UpdatePO(po *model.PurchaseOrder) error
}

type procurementRepo struct {
	db *gorm.DB
}

func NewProcurementRepo(db *gorm.DB) ProcurementRepository {
	return &procurementRepo{db}
}

func (r *procurementRepo) CreateRFQ(rfq *model.RFQ) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.RFQ{}, "rfq_no", docnum.PrefixRFQ)
		if err != nil {
			return err
		}
		rfq.RFQNo = no
		return tx.Create(rfq).Error
	})
}

func (r *procurementRepo) FindAllRFQs() ([]model.RFQ, error) {
	var rfqs []model.RFQ
	err := r.db.Preload("Items").Preload("Suppliers").Order("created_at DESC").Find(&rfqs).Error
	return rfqs, err
}

func (r *procurementRepo) FindRFQByNo(rfqNo string) (*model.RFQ, error) {
	var rfq model.RFQ
	err := r.db.Preload("Items").Preload("Suppliers").First(&rfq, "rfq_no = ?", rfqNo).Error
	return &rfq, err
}

func (r *procurementRepo) UpdateRFQ(rfq *model.RFQ) error {
	return r.db.Save(rfq).Error
}

func (r *procurementRepo) CreateQuotation(q *model.SupplierQuotation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.SupplierQuotation{}, "quotation_no", docnum.PrefixSQ)
		if err != nil {
			return err
		}
		q.QuotationNo = no
		return tx.Create(q).Error
	})
}

func (r *procurementRepo) FindAllQuotations() ([]model.SupplierQuotation, error) {
	var quotations []model.SupplierQuotation
	err := r.db.Preload("Items").Preload("Supplier").Order("created_at DESC").Find(&quotations).Error
	return quotations, err
}

func (r *procurementRepo) FindQuotationByNo(no string) (*model.SupplierQuotation, error) {
	var q model.SupplierQuotation
	err := r.db.Preload("Items").Preload("Supplier").First(&q, "quotation_no = ?", no).Error
	return &q, err
}

func (r *procurementRepo) UpdateQuotation(q *model.SupplierQuotation) error {
	return r.db.Save(q).Error
}

func (r *procurementRepo) CreatePO(po *model.PurchaseOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		no, err := nextDocNumber(tx, &model.PurchaseOrder{}, "po_no", docnum.PrefixPO)
		if err != nil {
			return err
		}
		po.PONo = no
		return tx.Create(po).Error
	})
}

func (r *procurementRepo) FindAllPOs() ([]model.PurchaseOrder, error) {
	var pos []model.PurchaseOrder
	err := r.db.Preload("Items").Preload("Supplier").Order("created_at DESC").Find(&pos).Error
	return pos, err
}

func (r *procurementRepo) FindPOByNo(poNo string) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.Preload("Items").Preload("Supplier").First(&po, "po_no = ?", poNo).Error
	return &po, err
}

func (r *procurementRepo) FindPOByID(id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.Preload("Items").Preload("Supplier").First(&po, "id = ?", id).Error
	return &po, err
}

func (r *procurementRepo) UpdatePO(po *model.PurchaseOrder) error {
	return r.db.Save(po).Error
}
