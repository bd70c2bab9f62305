package db

import (
	"time"

	"github.com/arasywa/ecoisland/internal/models"
	"gorm.io/gorm"
)

type GoalLogRepository struct {
	database *gorm.DB
}

func NewGoalLogRepository(database *gorm.DB) *GoalLogRepository {
	return &GoalLogRepository{database: database}
}

func (repo *GoalLogRepository) Create(entry *models.DailyGoalsLog) error {
	return repo.database.Create(entry).Error
}

func (repo *GoalLogRepository) FindByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyGoalsLog, bool, error) {
	entry := models.DailyGoalsLog{}
	result := repo.database.
		Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, dayStart, dayEnd).
		Order("log_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyGoalsLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyGoalsLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *GoalLogRepository) LatestByUser(userID uint) (models.DailyGoalsLog, bool, error) {
	entry := models.DailyGoalsLog{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("log_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyGoalsLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyGoalsLog{}, false, nil
	}
	return entry, true, nil
}
