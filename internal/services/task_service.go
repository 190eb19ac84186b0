package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mizuki-dev/task-tracker-api/internal/models"
	"github.com/mizuki-dev/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrFailedToCreateTask = errors.New("failed to create task")
	ErrFailedToUpdateTask = errors.New("failed to update task")
	ErrFailedToDeleteTask = errors.New("failed to delete task")
)

// TaskService handles task business logic. Every operation is scoped to the
// acting user's identity; there is no path to another user's tasks.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    models.TaskPriority
	UserID      uint64
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *models.TaskPriority
}

// ListTasks returns all tasks owned by the given user
func (s *TaskService) ListTasks(userID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask validates input and persists a new task owned by input.UserID
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Completed:   false,
		UserID:      input.UserID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, ErrFailedToCreateTask
	}

	return task, nil
}

// UpdateTask merges the provided fields into the task identified by taskID,
// restricted to the given owner
func (s *TaskService) UpdateTask(userID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	// Save refreshes updated_at even when no field changed.
	if err := s.taskRepo.Update(task); err != nil {
		return nil, ErrFailedToUpdateTask
	}

	return task, nil
}

// DeleteTask permanently removes the task identified by taskID, restricted to
// the given owner
func (s *TaskService) DeleteTask(userID, taskID uint64) error {
	if err := s.taskRepo.DeleteOwned(taskID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return ErrFailedToDeleteTask
	}
	return nil
}
