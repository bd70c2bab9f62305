package api

import (
	"time"

	"github.com/arasywa/ecoisland/internal/db"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultLogsPerPage = 20
	logsDateFormat     = "2006-01-02"
)

// ListDailyCarbonLogs pages through the user's carbon logs, newest first,
// optionally filtered to a date range or to the current day.
func (handler *Handler) ListDailyCarbonLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", defaultLogsPerPage)
	if perPage < 1 {
		perPage = defaultLogsPerPage
	}

	dayStart, _ := handler.today()
	filter := db.CarbonLogFilter{
		TodayOnly: c.Query("today_only") == "true",
		Today:     dayStart,
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.ParseInLocation(logsDateFormat, raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date_from, expected YYYY-MM-DD")
		}
		filter.From = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.ParseInLocation(logsDateFormat, raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date_to, expected YYYY-MM-DD")
		}
		filter.To = &to
	}

	logs, total, err := handler.repositories.CarbonLogs.ListPage(user.ID, filter, page, perPage)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to retrieve logs")
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}

	return c.JSON(fiber.Map{
		"logs":         logs,
		"total_logs":   total,
		"current_page": page,
		"per_page":     perPage,
		"total_pages":  totalPages,
	})
}
