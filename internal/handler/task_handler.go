package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Bhargav-sunil/TaskManagement/internal/middleware"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
	"github.com/Bhargav-sunil/TaskManagement/internal/service"
	"github.com/Bhargav-sunil/TaskManagement/internal/validation"
)

// TaskHandler handles the task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskCreateRequest represents a task creation request.
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	UserID      uint   `json:"user_id"`
}

// TaskUpdateRequest represents a partial task update; absent fields stay nil.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
	UserID      *uint   `json:"user_id"`
}

func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary List visible tasks
// @Description Returns the caller's visible tasks, newest first, with owner and creator names joined.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param search query string false "Substring match on title and description"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	caller := middleware.Caller(c)
	filters := query.TaskFilters{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("search"),
	}
	page := query.ParsePagination(c.QueryParam("page"), c.QueryParam("limit"))

	tasks, pageInfo, err := h.taskService.List(c.Request().Context(), caller, filters, page)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "", echo.Map{
		"tasks":      tasks,
		"pagination": pageInfo,
	})
}

// Get godoc
// @Summary Get a task by id
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return failMessage(c, http.StatusBadRequest, "Invalid task id", nil)
	}

	task, err := h.taskService.Get(c.Request().Context(), middleware.Caller(c), id)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "", echo.Map{"task": task})
}

// Create godoc
// @Summary Create a task
// @Description Non-admin callers always own the tasks they create; only an admin may assign another user.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TaskCreateRequest true "Task data"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req TaskCreateRequest
	if err := c.Bind(&req); err != nil {
		return failMessage(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.ValidateTaskCreate(req.Title, req.Description, req.Priority, req.Status, req.DueDate); len(errs) > 0 {
		return failMessage(c, http.StatusBadRequest, "Validation failed", errs)
	}

	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		OwnerID:     req.UserID,
	}
	if req.DueDate != "" {
		due, err := validation.ParseDueDate(req.DueDate)
		if err != nil {
			return failMessage(c, http.StatusBadRequest, "Validation failed", []string{"Due date must be a valid date"})
		}
		input.DueDate = &due
	}

	task, err := h.taskService.Create(c.Request().Context(), middleware.Caller(c), input)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusCreated, "Task created successfully", echo.Map{"task": task})
}

// Update godoc
// @Summary Update a task
// @Description Partial update; only provided fields change. Owner reassignment requires the admin role and is otherwise ignored.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body TaskUpdateRequest true "Fields to update"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return failMessage(c, http.StatusBadRequest, "Invalid task id", nil)
	}

	var req TaskUpdateRequest
	if err := c.Bind(&req); err != nil {
		return failMessage(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	if errs := validation.ValidateTaskUpdate(req.Title, req.Description, req.Priority, req.Status, req.DueDate); len(errs) > 0 {
		return failMessage(c, http.StatusBadRequest, "Validation failed", errs)
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
		OwnerID:     req.UserID,
	}
	if err := h.taskService.Update(c.Request().Context(), middleware.Caller(c), id, input); err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "Task updated successfully", nil)
}

// Delete godoc
// @Summary Delete a task
// @Description Admin only; non-admins cannot delete tasks they own either.
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} errors.Envelope
// @Failure 403 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return failMessage(c, http.StatusBadRequest, "Invalid task id", nil)
	}

	if err := h.taskService.Delete(c.Request().Context(), middleware.Caller(c), id); err != nil {
		return fail(c, err)
	}

	return ok(c, http.StatusOK, "Task deleted successfully", nil)
}
