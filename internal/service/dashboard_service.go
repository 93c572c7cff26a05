package service

import (
	"time"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
)

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
	GetStockMovement(days int) ([]repository.DailyMovement, error)
	GetLowStockItems() ([]model.Item, error)
}

type dashboardService struct {
	dashRepo  repository.DashboardRepository
	stockRepo repository.StockRepository
	itemRepo  repository.ItemRepository
}

func NewDashboardService(dashRepo repository.DashboardRepository, stockRepo repository.StockRepository, itemRepo repository.ItemRepository) DashboardService {
	return &dashboardService{dashRepo: dashRepo, stockRepo: stockRepo, itemRepo: itemRepo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.dashRepo.GetStats()
}

func (s *dashboardService) GetStockMovement(days int) ([]repository.DailyMovement, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.stockRepo.GetDailyMovement(startDate, endDate)
}

func (s *dashboardService) GetLowStockItems() ([]model.Item, error) {
	return s.itemRepo.FindLowStock()
}
