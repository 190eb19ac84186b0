package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/task-tracker-api/internal/dto"
	apierrors "github.com/mizuki-dev/task-tracker-api/internal/errors"
	"github.com/mizuki-dev/task-tracker-api/internal/middleware"
	"github.com/mizuki-dev/task-tracker-api/internal/models"
	"github.com/mizuki-dev/task-tracker-api/internal/services"
)

// TaskHandler coordinates task CRUD HTTP handlers. All operations are scoped
// to the identity resolved by the auth middleware.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks owned by the current user.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Token requerido")
		return
	}

	tasks, err := h.taskService.ListTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "Error al obtener tareas")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task owned by the current user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Token requerido")
		return
	}

	type CreateTaskRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Title es requerido")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    models.TaskPriority(req.Priority),
		UserID:      userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask merges the provided fields into an existing task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Token requerido")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Tarea no encontrada")
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil || len(rawReq) == 0 {
		apierrors.BadRequest(c, "Datos requeridos")
		return
	}

	// A field that is present but carries the wrong JSON type is rejected
	// rather than silently dropped.
	var input services.UpdateTaskInput
	if raw, ok := rawReq["title"]; ok {
		title, ok := raw.(string)
		if !ok {
			apierrors.BadRequest(c, "Datos requeridos")
			return
		}
		input.Title = &title
	}
	if raw, ok := rawReq["description"]; ok {
		description, ok := raw.(string)
		if !ok {
			apierrors.BadRequest(c, "Datos requeridos")
			return
		}
		input.Description = &description
	}
	if raw, ok := rawReq["completed"]; ok {
		completed, ok := raw.(bool)
		if !ok {
			apierrors.BadRequest(c, "Datos requeridos")
			return
		}
		input.Completed = &completed
	}
	if raw, ok := rawReq["priority"]; ok {
		priorityStr, _ := raw.(string)
		priority := models.TaskPriority(priorityStr)
		input.Priority = &priority
	}

	task, err := h.taskService.UpdateTask(userID, taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask permanently removes a task owned by the current user.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Token requerido")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Tarea no encontrada")
		return
	}

	if err := h.taskService.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tarea eliminada",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, "Title es requerido")
	case errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, "Prioridad inválida")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Tarea no encontrada")
	case errors.Is(err, services.ErrFailedToCreateTask):
		apierrors.InternalError(c, "Error al crear tarea")
	case errors.Is(err, services.ErrFailedToUpdateTask):
		apierrors.InternalError(c, "Error al actualizar tarea")
	case errors.Is(err, services.ErrFailedToDeleteTask):
		apierrors.InternalError(c, "Error al eliminar tarea")
	default:
		apierrors.InternalError(c, "Error interno del servidor")
	}
}
