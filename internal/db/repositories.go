package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	CarbonLogs *CarbonLogRepository
	GoalLogs   *GoalLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		CarbonLogs: NewCarbonLogRepository(database),
		GoalLogs:   NewGoalLogRepository(database),
	}
}
