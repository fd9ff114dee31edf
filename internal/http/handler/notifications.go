package handler

import (
	"github.com/gofiber/fiber/v2"

	"medportal/internal/notify"
)

// ListNotifications returns the live toasts in creation order.
func ListNotifications(center *notify.Center) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"notifications": center.Active()})
	}
}

// DismissNotification cancels one toast before its auto-dismiss fires.
func DismissNotification(center *notify.Center) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !center.Dismiss(c.Params("id")) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "notification not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
