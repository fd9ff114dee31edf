package handler

import (
	"github.com/gofiber/fiber/v2"

	"medportal/internal/model"
	"medportal/internal/service"
)

// TelegramStatus reports the current account link state.
func TelegramStatus(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := svc.TelegramStatus(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(status)
	}
}

type linkTelegramRequest struct {
	TelegramID string `json:"telegram_id"`
}

// LinkTelegram links the account to a Telegram ID. An empty ID unlinks.
func LinkTelegram(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req linkTelegramRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		link, err := svc.LinkTelegram(c.UserContext(), req.TelegramID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(link)
	}
}

// UpdatePersonalProfile saves the personal-information form.
func UpdatePersonalProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var profile model.PersonalProfile
		if err := c.BodyParser(&profile); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.UpdatePersonal(c.UserContext(), profile); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"updated": true})
	}
}

// UpdateNotificationSetting toggles one notification preference.
func UpdateNotificationSetting(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var setting model.NotificationSetting
		if err := c.BodyParser(&setting); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.UpdateNotification(c.UserContext(), setting.Setting, setting.Enabled); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"updated": true})
	}
}
