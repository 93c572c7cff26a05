package handler

import (
	"errors"
	"strings"

	"go-erp-backend/internal/model"
	"go-erp-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type GRNHandler struct {
	service service.GRNService
}

func NewGRNHandler(s service.GRNService) *GRNHandler {
	return &GRNHandler{service: s}
}

// grnError maps workflow errors to HTTP statuses. Illegal transitions come
// back as 409 so the frontend can tell a stale kanban from a bad request.
func grnError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGRNNotFound), errors.Is(err, service.ErrPONotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNoItemsAccepted), errors.Is(err, service.ErrItemsNotInspected):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		if strings.HasPrefix(err.Error(), "illegal transition") {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
}

func (h *GRNHandler) CreateGRN(c *fiber.Ctx) error {
	var req service.CreateGRNRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	grn, err := h.service.Create(&req, getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "GRN created", "data": grn})
}

func (h *GRNHandler) GetGRNs(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		if !model.GRNStatus(status).IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown GRN status"})
		}
		grns, err := h.service.GetByStatus(model.GRNStatus(status))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
		return c.JSON(grns)
	}

	grns, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(grns)
}

func (h *GRNHandler) GetGRN(c *fiber.Ctx) error {
	grn, err := h.service.GetByNo(c.Params("grn_no"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(grn)
}

func (h *GRNHandler) StartInspection(c *fiber.Ctx) error {
	grn, err := h.service.StartInspection(c.Params("grn_no"), getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inspection started", "data": grn})
}

// InspectRequest carries per-item QC results.
type InspectRequest struct {
	Results []service.ItemInspectionResult `json:"results"`
}

func (h *GRNHandler) RecordInspection(c *fiber.Ctx) error {
	var req InspectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if len(req.Results) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No inspection results provided"})
	}

	grn, err := h.service.RecordInspection(c.Params("grn_no"), req.Results, getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inspection recorded", "data": grn})
}

func (h *GRNHandler) CompleteInspection(c *fiber.Ctx) error {
	grn, err := h.service.CompleteInspection(c.Params("grn_no"), getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Inspection completed", "data": grn})
}

func (h *GRNHandler) ApproveGRN(c *fiber.Ctx) error {
	grn, err := h.service.Approve(c.Params("grn_no"), getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.JSON(fiber.Map{"message": "GRN approved, stock posted", "data": grn})
}

// SendBackRequest optionally carries the decline reason.
type SendBackRequest struct {
	Reason string `json:"reason"`
}

func (h *GRNHandler) SendBackGRN(c *fiber.Ctx) error {
	var req SendBackRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	grn, err := h.service.SendBack(c.Params("grn_no"), req.Reason, getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.JSON(fiber.Map{"message": "GRN sent back", "data": grn})
}

func (h *GRNHandler) ResubmitGRN(c *fiber.Ctx) error {
	grn, err := h.service.Resubmit(c.Params("grn_no"), getUserID(c), getUserName(c))
	if err != nil {
		return grnError(c, err)
	}
	return c.JSON(fiber.Map{"message": "GRN resubmitted for inspection", "data": grn})
}
