package api

import "github.com/gofiber/fiber/v2"

const leaderboardSize = 15

func (handler *Handler) Leaderboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	topUsers, err := handler.repositories.Users.TopByPoints(leaderboardSize)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leaderboard")
	}

	entries := make([]fiber.Map, 0, len(topUsers)+1)
	currentUserListed := false
	for _, entry := range topUsers {
		if entry.ID == user.ID {
			currentUserListed = true
		}
		entries = append(entries, fiber.Map{
			"username":       entry.Username,
			"points":         entry.Points,
			"profilePicture": entry.ProfilePicture,
		})
	}

	// The viewer always sees their own standing, even outside the top list.
	if !currentUserListed {
		entries = append(entries, fiber.Map{
			"username":       user.Username,
			"points":         user.Points,
			"profilePicture": user.ProfilePicture,
		})
	}

	return c.JSON(fiber.Map{"leaderboard": entries})
}
