package api

import (
	"regexp"
	"time"

	"github.com/arasywa/ecoisland/internal/db"
	"github.com/arasywa/ecoisland/internal/services"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	secretKey    []byte
	location     *time.Location
	loginLimiter *attemptLimiter
	now          func() time.Time
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		db:           database,
		repositories: db.NewRepositories(database),
		secretKey:    []byte(secretKey),
		location:     location,
		loginLimiter: newAttemptLimiter(),
		now:          time.Now,
	}
}

func (handler *Handler) today() (time.Time, time.Time) {
	return services.DayRange(handler.now(), handler.location)
}
