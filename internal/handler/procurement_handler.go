package handler

import (
	"go-erp-backend/internal/model"
	"go-erp-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProcurementHandler struct {
	service service.ProcurementService
}

func NewProcurementHandler(s service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{service: s}
}

// statusUpdateRequest is shared by the procurement status endpoints.
type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *ProcurementHandler) CreateRFQ(c *fiber.Ctx) error {
	var rfq model.RFQ
	if err := c.BodyParser(&rfq); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateRFQ(&rfq, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "RFQ created", "data": rfq})
}

func (h *ProcurementHandler) GetRFQs(c *fiber.Ctx) error {
	rfqs, err := h.service.GetRFQs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rfqs)
}

func (h *ProcurementHandler) GetRFQ(c *fiber.Ctx) error {
	rfq, err := h.service.GetRFQ(c.Params("rfq_no"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rfq)
}

func (h *ProcurementHandler) UpdateRFQStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	rfq, err := h.service.UpdateRFQStatus(c.Params("rfq_no"), model.RFQStatus(req.Status), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "RFQ updated", "data": rfq})
}

func (h *ProcurementHandler) CreateQuotation(c *fiber.Ctx) error {
	var q model.SupplierQuotation
	if err := c.BodyParser(&q); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateQuotation(&q, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Quotation recorded", "data": q})
}

func (h *ProcurementHandler) GetQuotations(c *fiber.Ctx) error {
	quotations, err := h.service.GetQuotations()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(quotations)
}

func (h *ProcurementHandler) UpdateQuotationStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	q, err := h.service.UpdateQuotationStatus(c.Params("quotation_no"), model.QuotationStatus(req.Status), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Quotation updated", "data": q})
}

func (h *ProcurementHandler) CreatePO(c *fiber.Ctx) error {
	var po model.PurchaseOrder
	if err := c.BodyParser(&po); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreatePO(&po, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Purchase order created", "data": po})
}

func (h *ProcurementHandler) GetPOs(c *fiber.Ctx) error {
	pos, err := h.service.GetPOs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(pos)
}

func (h *ProcurementHandler) GetPO(c *fiber.Ctx) error {
	po, err := h.service.GetPO(c.Params("po_no"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(po)
}

func (h *ProcurementHandler) UpdatePOStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	po, err := h.service.UpdatePOStatus(c.Params("po_no"), model.POStatus(req.Status), getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Purchase order updated", "data": po})
}
