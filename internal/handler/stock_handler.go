package handler

import (
	"go-erp-backend/internal/model"
	"go-erp-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

func (h *StockHandler) CreateWarehouse(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateWarehouse(&warehouse, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

func (h *StockHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.service.GetWarehouses()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(warehouses)
}

func (h *StockHandler) CreateMovement(c *fiber.Ctx) error {
	var req service.CreateMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	movement, err := h.service.CreateMovement(&req, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock movement recorded", "data": movement})
}

func (h *StockHandler) GetMovements(c *fiber.Ctx) error {
	refType := c.Query("reference_type")
	refName := c.Query("reference_name")

	var movements []model.StockMovement
	var err error
	if refType != "" && refName != "" {
		movements, err = h.service.GetMovementsByReference(refType, refName)
	} else {
		movements, err = h.service.GetMovements()
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(movements)
}

func (h *StockHandler) GetMovement(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid movement ID"})
	}

	movement, err := h.service.GetMovement(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(movement)
}

func (h *StockHandler) ApproveMovement(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid movement ID"})
	}

	movement, err := h.service.ApproveMovement(id, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Movement approved", "data": movement})
}

func (h *StockHandler) RejectMovement(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid movement ID"})
	}

	movement, err := h.service.RejectMovement(id, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Movement rejected", "data": movement})
}

func (h *StockHandler) GetStockBalance(c *fiber.Ctx) error {
	balances, err := h.service.GetBalances()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(balances)
}

func (h *StockHandler) RecomputeBalances(c *fiber.Ctx) error {
	balances, err := h.service.RecomputeBalances(getUserID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Balances recomputed from ledger", "data": balances})
}
