package db

import (
	"time"

	"github.com/arasywa/ecoisland/internal/models"
	"gorm.io/gorm"
)

type CarbonLogRepository struct {
	database *gorm.DB
}

func NewCarbonLogRepository(database *gorm.DB) *CarbonLogRepository {
	return &CarbonLogRepository{database: database}
}

func (repo *CarbonLogRepository) Create(entry *models.DailyCarbonLog) error {
	return repo.database.Create(entry).Error
}

// ListSince returns every log on or after fromDay, oldest first. Callers pass
// the start of the trailing history window they need.
func (repo *CarbonLogRepository) ListSince(userID uint, fromDay time.Time) ([]models.DailyCarbonLog, error) {
	logs := make([]models.DailyCarbonLog, 0)
	if err := repo.database.
		Where("user_id = ? AND log_date >= ?", userID, fromDay).
		Order("log_date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CarbonLogRepository) FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyCarbonLog, bool, error) {
	entry := models.DailyCarbonLog{}
	result := repo.database.
		Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, dayStart, dayEnd).
		Order("log_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyCarbonLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyCarbonLog{}, false, nil
	}
	return entry, true, nil
}

type CarbonLogFilter struct {
	From      *time.Time
	To        *time.Time
	TodayOnly bool
	Today     time.Time
}

// ListPage returns one page of logs, newest first, plus the total match count.
func (repo *CarbonLogRepository) ListPage(userID uint, filter CarbonLogFilter, page int, perPage int) ([]models.DailyCarbonLog, int64, error) {
	query := repo.database.Model(&models.DailyCarbonLog{}).Where("user_id = ?", userID)

	if filter.TodayOnly {
		query = query.Where("log_date >= ? AND log_date < ?", filter.Today, filter.Today.AddDate(0, 0, 1))
	} else {
		if filter.From != nil {
			query = query.Where("log_date >= ?", *filter.From)
		}
		if filter.To != nil {
			query = query.Where("log_date <= ?", *filter.To)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.DailyCarbonLog, 0, perPage)
	if err := query.
		Order("log_date DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
