package handler

import (
	"go-erp-backend/internal/model"
	"go-erp-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

func (h *SalesHandler) CreateQuotation(c *fiber.Ctx) error {
	var q model.SalesQuotation
	if err := c.BodyParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateQuotation(&q, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sales quotation created", "data": q})
}

func (h *SalesHandler) GetQuotations(c *fiber.Ctx) error {
	quotations, err := h.service.GetQuotations()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(quotations)
}

func (h *SalesHandler) UpdateQuotationStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	q, err := h.service.UpdateQuotationStatus(c.Params("quotation_no"), model.SalesQuotationStatus(req.Status), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Quotation updated", "data": q})
}

func (h *SalesHandler) CreateOrder(c *fiber.Ctx) error {
	var o model.SalesOrder
	if err := c.BodyParser(&o); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateOrder(&o, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sales order created", "data": o})
}

func (h *SalesHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *SalesHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Params("order_no"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(order)
}

func (h *SalesHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	o, err := h.service.UpdateOrderStatus(c.Params("order_no"), model.SalesOrderStatus(req.Status), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Sales order updated", "data": o})
}
