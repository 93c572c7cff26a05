package handler

import (
	"go-erp-backend/internal/model"
	"go-erp-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductionHandler struct {
	service service.ProductionService
}

func NewProductionHandler(s service.ProductionService) *ProductionHandler {
	return &ProductionHandler{service: s}
}

func (h *ProductionHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.ProductionOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&order, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Production order created", "data": order})
}

func (h *ProductionHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *ProductionHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetByNo(c.Params("prod_no"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(order)
}

// AdvanceRequest optionally annotates the stage change.
type AdvanceRequest struct {
	Note string `json:"note"`
}

func (h *ProductionHandler) AdvanceStage(c *fiber.Ctx) error {
	var req AdvanceRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Advance(c.Params("prod_no"), req.Note, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Stage advanced", "data": order})
}

func (h *ProductionHandler) HoldOrder(c *fiber.Ctx) error {
	order, err := h.service.Hold(c.Params("prod_no"), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Production order on hold", "data": order})
}

func (h *ProductionHandler) ResumeOrder(c *fiber.Ctx) error {
	order, err := h.service.Resume(c.Params("prod_no"), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Production order resumed", "data": order})
}
