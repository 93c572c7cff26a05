package repository

import (
	"time"

	"go-erp-backend/internal/docnum"
	"go-erp-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	CreateWarehouse(w *model.Warehouse) error
	FindAllWarehouses() ([]model.Warehouse, error)
	FindWarehouseByID(id uuid.UUID) (*model.Warehouse, error)
	FindWarehouseByName(name string) (*model.Warehouse, error)

	CreateMovement(tx *gorm.DB, m *model.StockMovement) error
	FindAllMovements() ([]model.StockMovement, error)
	FindMovementByID(id uuid.UUID) (*model.StockMovement, error)
	FindMovementsByReference(refType, refName string) ([]model.StockMovement, error)
	FindMovementByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.StockMovement, error)
	// FindCompletedMovements loads the full Completed history inside tx, in
	// insertion order, for balance recomputation.
	FindCompletedMovements(tx *gorm.DB) ([]model.StockMovement, error)
	UpdateMovementStatus(tx *gorm.DB, id uuid.UUID, status model.MovementStatus, updatedBy string) error

	FindAllBalances() ([]model.StockBalance, error)
	FindBalanceForUpdate(tx *gorm.DB, itemCode string, warehouseID uuid.UUID) (*model.StockBalance, error)
	SaveBalance(tx *gorm.DB, b *model.StockBalance) error
	ReplaceBalances(tx *gorm.DB, balances []model.StockBalance) error

	GetDailyMovement(startDate, endDate time.Time) ([]DailyMovement, error)
}

// DailyMovement is one day of aggregated IN/OUT quantities for the dashboard.
type DailyMovement struct {
	Date     string  `json:"date"`
	Inbound  float64 `json:"inbound"`
	Outbound float64 `json:"outbound"`
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) CreateWarehouse(w *model.Warehouse) error {
	return r.db.Create(w).Error
}

func (r *stockRepo) FindAllWarehouses() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	err := r.db.Order("warehouse_name ASC").Find(&warehouses).Error
	return warehouses, err
}

func (r *stockRepo) FindWarehouseByID(id uuid.UUID) (*model.Warehouse, error) {
	var w model.Warehouse
	err := r.db.First(&w, "id = ?", id).Error
	return &w, err
}

func (r *stockRepo) FindWarehouseByName(name string) (*model.Warehouse, error) {
	var w model.Warehouse
	err := r.db.First(&w, "warehouse_name = ?", name).Error
	return &w, err
}

// CreateMovement assigns the transaction number and inserts within tx.
func (r *stockRepo) CreateMovement(tx *gorm.DB, m *model.StockMovement) error {
	no, err := nextDocNumber(tx, &model.StockMovement{}, "transaction_no", docnum.PrefixStockTxn)
	if err != nil {
		return err
	}
	m.TransactionNo = no
	return tx.Create(m).Error
}

func (r *stockRepo) FindAllMovements() ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Preload("Warehouse").Preload("CreatedByUser").Order("created_at DESC").Find(&movements).Error
	return movements, err
}

func (r *stockRepo) FindMovementByID(id uuid.UUID) (*model.StockMovement, error) {
	var m model.StockMovement
	err := r.db.Preload("Warehouse").First(&m, "id = ?", id).Error
	return &m, err
}

func (r *stockRepo) FindMovementsByReference(refType, refName string) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Where("reference_type = ? AND reference_name = ?", refType, refName).
		Order("created_at ASC").Find(&movements).Error
	return movements, err
}

func (r *stockRepo) FindMovementByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.StockMovement, error) {
	var m model.StockMovement
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *stockRepo) FindCompletedMovements(tx *gorm.DB) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := tx.Where("status = ?", model.MovementCompleted).Order("created_at ASC").Find(&movements).Error
	return movements, err
}

func (r *stockRepo) UpdateMovementStatus(tx *gorm.DB, id uuid.UUID, status model.MovementStatus, updatedBy string) error {
	return tx.Model(&model.StockMovement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}

func (r *stockRepo) FindAllBalances() ([]model.StockBalance, error) {
	var balances []model.StockBalance
	err := r.db.Preload("Warehouse").Order("item_code ASC").Find(&balances).Error
	return balances, err
}

// FindBalanceForUpdate locks (and lazily creates) the balance row for an
// (item, warehouse) pair inside tx.
func (r *stockRepo) FindBalanceForUpdate(tx *gorm.DB, itemCode string, warehouseID uuid.UUID) (*model.StockBalance, error) {
	var balance model.StockBalance
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balance, "item_code = ? AND warehouse_id = ?", itemCode, warehouseID).Error
	if err == gorm.ErrRecordNotFound {
		balance = model.StockBalance{ItemCode: itemCode, WarehouseID: warehouseID}
		if err := tx.Create(&balance).Error; err != nil {
			return nil, err
		}
		return &balance, nil
	}
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *stockRepo) SaveBalance(tx *gorm.DB, b *model.StockBalance) error {
	return tx.Save(b).Error
}

// ReplaceBalances swaps the whole balance cache for a freshly derived set.
func (r *stockRepo) ReplaceBalances(tx *gorm.DB, balances []model.StockBalance) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&model.StockBalance{}).Error; err != nil {
		return err
	}
	if len(balances) == 0 {
		return nil
	}
	return tx.Create(&balances).Error
}

func (r *stockRepo) GetDailyMovement(startDate, endDate time.Time) ([]DailyMovement, error) {
	var results []DailyMovement

	rows, err := r.db.Model(&model.StockMovement{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN movement_type = 'IN' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN movement_type = 'OUT' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("status = ? AND created_at BETWEEN ? AND ?", model.MovementCompleted, startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DailyMovement
		if err := rows.Scan(&d.Date, &d.Inbound, &d.Outbound); err != nil {
			return nil, err
		}
		results = append(results, d)
	}
	return results, nil
}
