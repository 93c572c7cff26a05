package repository

import (
	"go-erp-backend/internal/model"

	"gorm.io/gorm"
)

// DashboardStats is the overview card data for the admin dashboard.
type DashboardStats struct {
	TotalItems         int64            `json:"total_items"`
	TotalSuppliers     int64            `json:"total_suppliers"`
	OpenPurchaseOrders int64            `json:"open_purchase_orders"`
	OpenSalesOrders    int64            `json:"open_sales_orders"`
	GRNsByStatus       map[string]int64 `json:"grns_by_status"`
	PendingMovements   int64            `json:"pending_movements"`
	StockValuation     float64          `json:"stock_valuation"`
	LowStockCount      int64            `json:"low_stock_count"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{GRNsByStatus: map[string]int64{}}

	r.db.Model(&model.Item{}).Where("is_active = ?", true).Count(&stats.TotalItems)
	r.db.Model(&model.Supplier{}).Where("is_active = ?", true).Count(&stats.TotalSuppliers)
	r.db.Model(&model.PurchaseOrder{}).
		Where("status IN ?", []model.POStatus{model.PODraft, model.POSubmitted}).
		Count(&stats.OpenPurchaseOrders)
	r.db.Model(&model.SalesOrder{}).
		Where("status IN ?", []model.SalesOrderStatus{model.SODraft, model.SOSubmitted}).
		Count(&stats.OpenSalesOrders)
	r.db.Model(&model.StockMovement{}).
		Where("status = ?", model.MovementPending).
		Count(&stats.PendingMovements)

	// GRN kanban counts
	rows, err := r.db.Model(&model.GRN{}).
		Select("status, COUNT(*) as cnt").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var cnt int64
		if err := rows.Scan(&status, &cnt); err != nil {
			return nil, err
		}
		stats.GRNsByStatus[status] = cnt
	}

	// Valuation = SUM(balance qty * item standard rate)
	r.db.Model(&model.StockBalance{}).
		Select(`COALESCE(SUM(stock_balances.current_qty * items.standard_rate), 0)`).
		Joins("JOIN items ON items.item_code = stock_balances.item_code").
		Scan(&stats.StockValuation)

	// Low stock = items whose summed balance is under their reorder level
	r.db.Model(&model.Item{}).
		Where(`is_active = ? AND reorder_level > 0 AND item_code IN (
			SELECT item_code FROM stock_balances
			GROUP BY item_code
			HAVING SUM(current_qty) < (
				SELECT reorder_level FROM items i2 WHERE i2.item_code = stock_balances.item_code LIMIT 1
			)
		)`, true).
		Count(&stats.LowStockCount)

	return stats, nil
}
