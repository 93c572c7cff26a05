package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-erp-backend/internal/config"
	"go-erp-backend/internal/handler"
	"go-erp-backend/internal/middleware"
	"go-erp-backend/internal/model"
	"go-erp-backend/internal/repository"
	"go-erp-backend/internal/service"
	"go-erp-backend/internal/ws"
	"go-erp-backend/pkg/database"
	"go-erp-backend/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using environment defaults")
	}
	cfg := config.Load()
	jwt.SetSecret(cfg.JWTSecret)

	// 2. Setup Database
	db := database.ConnectDB(cfg.DSN())
	// Auto Migrate (in production prefer a dedicated migration tool)
	db.AutoMigrate(
		&model.User{}, &model.Privilege{}, &model.Role{},
		&model.Item{}, &model.Supplier{},
		&model.RFQ{}, &model.RFQItem{},
		&model.SupplierQuotation{}, &model.SupplierQuotationItem{},
		&model.PurchaseOrder{}, &model.POItem{},
		&model.GRN{}, &model.GRNItem{},
		&model.Warehouse{}, &model.StockMovement{}, &model.StockBalance{},
		&model.BOM{}, &model.BOMComponent{}, &model.BOMOperation{},
		&model.SalesQuotation{}, &model.SalesOrder{}, &model.SalesItem{},
		&model.ProductionOrder{}, &model.StageLog{},
	)

	// 3. Seed default privileges, roles, admin user, and warehouses
	seedPrivilegesRolesAndAdmin(db, cfg)
	seedWarehouses(db, cfg)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	itemRepo := repository.NewItemRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	procRepo := repository.NewProcurementRepo(db)
	grnRepo := repository.NewGRNRepo(db)
	stockRepo := repository.NewStockRepo(db)
	bomRepo := repository.NewBOMRepo(db)
	salesRepo := repository.NewSalesRepo(db)
	prodRepo := repository.NewProductionRepo(db)
	dashRepo := repository.NewDashboardRepo(db)

	authService := service.NewAuthService(userRepo, wsHub)
	userService := service.NewUserService(userRepo, privilegeRepo, roleRepo)
	itemService := service.NewItemService(itemRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	procService := service.NewProcurementService(procRepo, supplierRepo)
	stockService := service.NewStockService(stockRepo, db, wsHub)
	grnService := service.NewGRNService(grnRepo, procRepo, stockService, db, wsHub, cfg.QCCheckNames)
	bomService := service.NewBOMService(bomRepo)
	salesService := service.NewSalesService(salesRepo, itemRepo)
	prodService := service.NewProductionService(prodRepo, stockService, db, wsHub)
	dashService := service.NewDashboardService(dashRepo, stockRepo, itemRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)
	itemHandler := handler.NewItemHandler(itemService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	procHandler := handler.NewProcurementHandler(procService)
	grnHandler := handler.NewGRNHandler(grnService)
	stockHandler := handler.NewStockHandler(stockService)
	bomHandler := handler.NewBOMHandler(bomService)
	salesHandler := handler.NewSalesHandler(salesService)
	prodHandler := handler.NewProductionHandler(prodService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Manufacturing ERP Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Item master
	protected.Get("/items", itemHandler.GetItems)
	protected.Get("/items/:code", itemHandler.GetItem)
	protected.Post("/items", middleware.RequirePrivilege("item:create"), itemHandler.CreateItem)
	protected.Put("/items/:id", middleware.RequirePrivilege("item:update"), itemHandler.UpdateItem)

	// Suppliers
	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Get("/suppliers/:id", supplierHandler.GetSupplier)
	protected.Post("/suppliers", middleware.RequirePrivilege("supplier:create"), supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", middleware.RequirePrivilege("supplier:update"), supplierHandler.UpdateSupplier)

	// Procurement: RFQ -> supplier quotation -> purchase order
	protected.Get("/rfqs", middleware.RequirePrivilege("purchase:view"), procHandler.GetRFQs)
	protected.Get("/rfqs/:rfq_no", middleware.RequirePrivilege("purchase:view"), procHandler.GetRFQ)
	protected.Post("/rfqs", middleware.RequirePrivilege("purchase:create"), procHandler.CreateRFQ)
	protected.Put("/rfqs/:rfq_no/status", middleware.RequirePrivilege("purchase:update"), procHandler.UpdateRFQStatus)

	protected.Get("/supplier-quotations", middleware.RequirePrivilege("purchase:view"), procHandler.GetQuotations)
	protected.Post("/supplier-quotations", middleware.RequirePrivilege("purchase:create"), procHandler.CreateQuotation)
	protected.Put("/supplier-quotations/:quotation_no/status", middleware.RequirePrivilege("purchase:update"), procHandler.UpdateQuotationStatus)

	protected.Get("/purchase-orders", middleware.RequirePrivilege("purchase:view"), procHandler.GetPOs)
	protected.Get("/purchase-orders/:po_no", middleware.RequirePrivilege("purchase:view"), procHandler.GetPO)
	protected.Post("/purchase-orders", middleware.RequirePrivilege("purchase:create"), procHandler.CreatePO)
	protected.Put("/purchase-orders/:po_no/status", middleware.RequirePrivilege("purchase:update"), procHandler.UpdatePOStatus)

	// GRN quality-control workflow
	protected.Get("/grn-requests", middleware.RequirePrivilege("grn:view"), grnHandler.GetGRNs)
	protected.Get("/grn-requests/:grn_no", middleware.RequirePrivilege("grn:view"), grnHandler.GetGRN)
	protected.Post("/grn-requests", middleware.RequirePrivilege("grn:create"), grnHandler.CreateGRN)
	protected.Post("/grn-requests/:grn_no/start-inspection", middleware.RequirePrivilege("grn:inspect"), grnHandler.StartInspection)
	protected.Post("/grn-requests/:grn_no/inspect", middleware.RequirePrivilege("grn:inspect"), grnHandler.RecordInspection)
	protected.Post("/grn-requests/:grn_no/complete-inspection", middleware.RequirePrivilege("grn:inspect"), grnHandler.CompleteInspection)
	protected.Post("/grn-requests/:grn_no/approve", middleware.RequirePrivilege("grn:inventory_approve"), grnHandler.ApproveGRN)
	protected.Post("/grn-requests/:grn_no/send-back", middleware.RequirePrivilege("grn:inventory_approve"), grnHandler.SendBackGRN)
	protected.Post("/grn-requests/:grn_no/resubmit", middleware.RequirePrivilege("grn:create"), grnHandler.ResubmitGRN)

	// Stock ledger
	protected.Get("/stock/warehouses", middleware.RequirePrivilege("stock:view"), stockHandler.GetWarehouses)
	protected.Post("/stock/warehouses", middleware.RequirePrivilege("stock:create"), stockHandler.CreateWarehouse)
	protected.Get("/stock/movements", middleware.RequirePrivilege("stock:view"), stockHandler.GetMovements)
	protected.Get("/stock/movements/:id", middleware.RequirePrivilege("stock:view"), stockHandler.GetMovement)
	protected.Post("/stock/movements", middleware.RequirePrivilege("stock:create"), stockHandler.CreateMovement)
	protected.Post("/stock/movements/:id/approve", middleware.RequirePrivilege("stock:approve"), stockHandler.ApproveMovement)
	protected.Post("/stock/movements/:id/reject", middleware.RequirePrivilege("stock:approve"), stockHandler.RejectMovement)
	protected.Get("/stock/stock-balance", middleware.RequirePrivilege("stock:view"), stockHandler.GetStockBalance)
	protected.Post("/stock/recompute", middleware.RequirePrivilege("stock:approve"), stockHandler.RecomputeBalances)

	// Bill of materials
	protected.Get("/boms", middleware.RequirePrivilege("bom:view"), bomHandler.GetBOMs)
	protected.Get("/boms/:bom_no", middleware.RequirePrivilege("bom:view"), bomHandler.GetBOM)
	protected.Get("/boms/:bom_no/cost", middleware.RequirePrivilege("bom:view"), bomHandler.GetBOMCost)
	protected.Post("/boms", middleware.RequirePrivilege("bom:create"), bomHandler.CreateBOM)
	protected.Put("/boms/:bom_no", middleware.RequirePrivilege("bom:update"), bomHandler.UpdateBOM)

	// Sales
	protected.Get("/sales-quotations", middleware.RequirePrivilege("sales:view"), salesHandler.GetQuotations)
	protected.Post("/sales-quotations", middleware.RequirePrivilege("sales:create"), salesHandler.CreateQuotation)
	protected.Put("/sales-quotations/:quotation_no/status", middleware.RequirePrivilege("sales:update"), salesHandler.UpdateQuotationStatus)
	protected.Get("/sales-orders", middleware.RequirePrivilege("sales:view"), salesHandler.GetOrders)
	protected.Get("/sales-orders/:order_no", middleware.RequirePrivilege("sales:view"), salesHandler.GetOrder)
	protected.Post("/sales-orders", middleware.RequirePrivilege("sales:create"), salesHandler.CreateOrder)
	protected.Put("/sales-orders/:order_no/status", middleware.RequirePrivilege("sales:update"), salesHandler.UpdateOrderStatus)

	// Production
	protected.Get("/production-orders", middleware.RequirePrivilege("production:view"), prodHandler.GetOrders)
	protected.Get("/production-orders/:prod_no", middleware.RequirePrivilege("production:view"), prodHandler.GetOrder)
	protected.Post("/production-orders", middleware.RequirePrivilege("production:create"), prodHandler.CreateOrder)
	protected.Post("/production-orders/:prod_no/advance", middleware.RequirePrivilege("production:update"), prodHandler.AdvanceStage)
	protected.Post("/production-orders/:prod_no/hold", middleware.RequirePrivilege("production:update"), prodHandler.HoldOrder)
	protected.Post("/production-orders/:prod_no/resume", middleware.RequirePrivilege("production:update"), prodHandler.ResumeOrder)

	// Dashboard
	protected.Get("/dashboard/stats", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetStats)
	protected.Get("/dashboard/stock-movement", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetStockMovement)
	protected.Get("/dashboard/low-stock", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetLowStockItems)

	// User Management Routes
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.DeleteUser)
	protected.Put("/users/:id/privileges", middleware.RequirePrivilege("user:update_privilege"), userHandler.UpdateUserPrivileges)

	// Role Routes
	protected.Get("/roles", roleHandler.GetRoles)

	// Privileges Route (list all available privileges)
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

// seedPrivilegesRolesAndAdmin creates default privileges, roles, and admin user if they don't exist
func seedPrivilegesRolesAndAdmin(db *gorm.DB, cfg *config.Config) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// 1. Seed privileges first
	if err := privilegeRepo.SeedDefaults(); err != nil {
		logrus.Warnf("Failed to seed privileges: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		logrus.Warnf("Failed to seed roles: %v", err)
	}

	// 3. Assign privileges to roles
	allPrivileges, _ := privilegeRepo.FindAll()

	// MASTER_ADMIN gets ALL privileges
	masterRole, err := roleRepo.FindByCode(model.RoleMasterAdmin)
	if err == nil && len(masterRole.Privileges) == 0 {
		db.Model(&masterRole).Association("Privileges").Replace(allPrivileges)
		logrus.Info("MASTER_ADMIN role assigned all privileges")
	}

	// ADMIN gets everything except user management
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		adminPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if p.Code != "user:create" && p.Code != "user:update" && p.Code != "user:delete" && p.Code != "user:update_privilege" {
				adminPrivileges = append(adminPrivileges, p)
			}
		}
		db.Model(&adminRole).Association("Privileges").Replace(adminPrivileges)
		logrus.Info("ADMIN role assigned limited privileges")
	}

	// QC_INSPECTOR can view and inspect incoming goods
	qcRole, err := roleRepo.FindByCode(model.RoleQCInspector)
	if err == nil && len(qcRole.Privileges) == 0 {
		assignPrivileges(db, qcRole, allPrivileges,
			"grn:view", "grn:create", "grn:inspect", "item:view", "stock:view", "dashboard:view")
		logrus.Info("QC_INSPECTOR role assigned inspection privileges")
	}

	// INVENTORY_MANAGER approves inspected GRNs and stock movements
	invRole, err := roleRepo.FindByCode(model.RoleInventoryManager)
	if err == nil && len(invRole.Privileges) == 0 {
		assignPrivileges(db, invRole, allPrivileges,
			"grn:view", "grn:inventory_approve", "stock:view", "stock:create", "stock:approve",
			"item:view", "dashboard:view")
		logrus.Info("INVENTORY_MANAGER role assigned approval privileges")
	}

	// 4. Create default admin user with MASTER_ADMIN role
	_, err = userRepo.FindByEmail(cfg.AdminEmail)
	if err != nil {
		masterRole, _ := roleRepo.FindByCode(model.RoleMasterAdmin)

		admin := &model.User{
			Email:       cfg.AdminEmail,
			FullName:    "Master Administrator",
			PhoneNumber: "",
			RoleID:      &masterRole.ID,
			IsActive:    true,
			Privileges:  masterRole.Privileges,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword(cfg.AdminPassword); err != nil {
			logrus.Warnf("Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			logrus.Warnf("Failed to create admin user: %v", err)
		} else {
			logrus.Infof("Admin user created: %s (MASTER_ADMIN)", cfg.AdminEmail)
		}
	}
}

// seedWarehouses creates the default warehouses on an empty install.
func seedWarehouses(db *gorm.DB, cfg *config.Config) {
	stockRepo := repository.NewStockRepo(db)

	existing, err := stockRepo.FindAllWarehouses()
	if err != nil {
		logrus.Warnf("Failed to check warehouses: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	for _, name := range cfg.DefaultWarehouses {
		w := &model.Warehouse{WarehouseName: name, IsActive: true}
		w.CreatedBy = "system"
		w.UpdatedBy = "system"
		if err := stockRepo.CreateWarehouse(w); err != nil {
			logrus.Warnf("Failed to seed warehouse %q: %v", name, err)
		}
	}
	logrus.Infof("Seeded %d default warehouses", len(cfg.DefaultWarehouses))
}

// assignPrivileges replaces a role's privileges with the subset of all
// privileges whose codes are listed.
func assignPrivileges(db *gorm.DB, role *model.Role, all []model.Privilege, codes ...string) {
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	subset := []model.Privilege{}
	for _, p := range all {
		if want[p.Code] {
			subset = append(subset, p)
		}
	}
	db.Model(role).Association("Privileges").Replace(subset)
}
