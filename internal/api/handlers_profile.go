package api

import (
	"strings"

	"github.com/arasywa/ecoisland/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"email":              user.Email,
		"username":           user.Username,
		"profilePicture":     user.ProfilePicture,
		"joinDate":           user.JoinDate.Format("2006-01-02T15:04:05"),
		"points":             user.Points,
		"currentIslandTheme": user.CurrentIslandTheme,
	})
}

func (handler *Handler) UpdateProfilePicture(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := struct {
		ProfilePicture string `json:"profilePicture"`
	}{}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.ProfilePicture) == "" {
		return apiMessage(c, fiber.StatusBadRequest, "No profilePicture URL provided")
	}

	if err := handler.repositories.Users.UpdateByID(user.ID, map[string]any{
		"profile_picture": strings.TrimSpace(input.ProfilePicture),
	}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile picture")
	}

	return apiMessage(c, fiber.StatusOK, "Profile picture updated")
}

func (handler *Handler) UpdateIslandTheme(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	raw := map[string]any{}
	if err := c.BodyParser(&raw); err != nil {
		return apiMessage(c, fiber.StatusBadRequest, "No currentIslandTheme provided")
	}
	value, present := raw["currentIslandTheme"]
	if !present {
		return apiMessage(c, fiber.StatusBadRequest, "No currentIslandTheme provided")
	}

	theme := int(services.CoerceNumber(value))
	if err := handler.repositories.Users.UpdateByID(user.ID, map[string]any{
		"current_island_theme": theme,
	}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update island theme")
	}

	return c.JSON(fiber.Map{
		"message":            "Current island theme updated successfully",
		"currentIslandTheme": theme,
	})
}
