package repository

import (
	"github.com/mizuki-dev/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create persists a new task inside a transaction
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
}

// FindOwned finds a task by ID restricted to the given owner
func (r *GormTaskRepository) FindOwned(id, userID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner returns all tasks owned by the given user
func (r *GormTaskRepository) ListByOwner(userID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to a task inside a transaction
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(task).Error
	})
}

// DeleteOwned permanently removes a task restricted to the given owner.
// Returns gorm.ErrRecordNotFound when no owned row matched.
func (r *GormTaskRepository) DeleteOwned(id, userID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
