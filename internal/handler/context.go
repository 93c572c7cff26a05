package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull user info from the JWT context (set by auth middleware)

func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system" // shouldn't happen on protected routes
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
