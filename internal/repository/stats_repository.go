package repository

import (
	"github.com/mizuki-dev/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormStatsRepository is a GORM implementation of StatsRepository
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &GormStatsRepository{db: db}
}

// Ping runs a trivial query against the store
func (r *GormStatsRepository) Ping() error {
	var one int
	return r.db.Raw("SELECT 1").Scan(&one).Error
}

// CountUsers returns the total number of users
func (r *GormStatsRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountTasks returns the total number of tasks
func (r *GormStatsRepository) CountTasks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}

// CountCompletedTasks returns the number of completed tasks
func (r *GormStatsRepository) CountCompletedTasks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("completed = ?", true).Count(&count).Error
	return count, err
}
