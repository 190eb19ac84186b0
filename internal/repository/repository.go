package repository

import (
	"github.com/mizuki-dev/task-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access. Every lookup is
// scoped to an owner; a task belonging to a different user is indistinguishable
// from a missing one.
type TaskRepository interface {
	// Create persists a new task
	Create(task *models.Task) error

	// FindOwned finds a task by ID restricted to the given owner
	FindOwned(id, userID uint64) (*models.Task, error)

	// ListByOwner returns all tasks owned by the given user
	ListByOwner(userID uint64) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// DeleteOwned permanently removes a task restricted to the given owner
	DeleteOwned(id, userID uint64) error
}

// StatsRepository exposes the read-only aggregates and the connectivity probe
// used by the health and metrics endpoints.
type StatsRepository interface {
	// Ping runs a trivial query against the store
	Ping() error

	// CountUsers returns the total number of users
	CountUsers() (int64, error)

	// CountTasks returns the total number of tasks
	CountTasks() (int64, error)

	// CountCompletedTasks returns the number of completed tasks
	CountCompletedTasks() (int64, error)
}
