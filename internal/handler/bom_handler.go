package handler

import (
	"go-erp-backend/internal/model"
	"go-erp-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type BOMHandler struct {
	service service.BOMService
}

func NewBOMHandler(s service.BOMService) *BOMHandler {
	return &BOMHandler{service: s}
}

func (h *BOMHandler) CreateBOM(c *fiber.Ctx) error {
	var bom model.BOM
	if err := c.BodyParser(&bom); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&bom, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "BOM created", "data": bom})
}

func (h *BOMHandler) UpdateBOM(c *fiber.Ctx) error {
	var bom model.BOM
	if err := c.BodyParser(&bom); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(c.Params("bom_no"), &bom, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "BOM updated", "data": updated})
}

func (h *BOMHandler) GetBOMs(c *fiber.Ctx) error {
	boms, err := h.service.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(boms)
}

func (h *BOMHandler) GetBOM(c *fiber.Ctx) error {
	bom, err := h.service.GetByNo(c.Params("bom_no"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(bom)
}

// GetBOMCost rolls the BOM cost up for ?qty=N (default 1).
func (h *BOMHandler) GetBOMCost(c *fiber.Ctx) error {
	qty := decimal.NewFromInt(1)
	if q := c.Query("qty"); q != "" {
		parsed, err := decimal.NewFromString(q)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid qty"})
		}
		qty = parsed
	}

	breakdown, err := h.service.Cost(c.Params("bom_no"), qty)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(breakdown)
}
