package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Bhargav-sunil/TaskManagement/internal/errors"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/query"
	"github.com/Bhargav-sunil/TaskManagement/internal/service"
)

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, caller *model.User, filters query.TaskFilters, page query.Pagination) ([]model.Task, query.PageInfo, error) {
	args := m.Called(ctx, caller, filters, page)
	tasks, _ := args.Get(0).([]model.Task)
	return tasks, args.Get(1).(query.PageInfo), args.Error(2)
}

func (m *MockTaskService) Get(ctx context.Context, caller *model.User, id uint) (*model.Task, error) {
	args := m.Called(ctx, caller, id)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, caller *model.User, input service.CreateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, caller, input)
	task, _ := args.Get(0).(*model.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, caller *model.User, id uint, input service.UpdateTaskInput) error {
	return m.Called(ctx, caller, id, input).Error(0)
}

func (m *MockTaskService) Delete(ctx context.Context, caller *model.User, id uint) error {
	return m.Called(ctx, caller, id).Error(0)
}

func taskRequest(method, target, body string, caller *model.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("caller", caller)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apperrors.Envelope {
	t.Helper()
	var env apperrors.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestTaskHandler_List(t *testing.T) {
	caller := &model.User{ID: 7, Role: model.RoleUser}

	mockSvc := new(MockTaskService)
	mockSvc.On("List", mock.Anything, caller,
		query.TaskFilters{Status: "pending", Search: "report"},
		query.Pagination{Page: 2, Limit: 5},
	).Return([]model.Task{{ID: 3, Title: "Quarterly report"}}, query.PageInfo{Page: 2, Limit: 5, Total: 6, Pages: 2}, nil)

	h := NewTaskHandler(mockSvc)
	c, rec := taskRequest(http.MethodGet, "/v1/tasks?status=pending&search=report&page=2&limit=5", "", caller)
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "tasks")
	pagination, ok := data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(6), pagination["total"])
	assert.Equal(t, float64(2), pagination["pages"])
	mockSvc.AssertExpectations(t)
}

func TestTaskHandler_Create(t *testing.T) {
	caller := &model.User{ID: 7, Role: model.RoleUser}

	t.Run("validation failures are collected", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		h := NewTaskHandler(mockSvc)

		c, rec := taskRequest(http.MethodPost, "/v1/tasks", `{"title":"a","priority":"urgent"}`, caller)
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, "Validation failed", env.Message)
		assert.Len(t, env.Errors, 2)
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unparseable due date never reaches the service", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		h := NewTaskHandler(mockSvc)

		c, rec := taskRequest(http.MethodPost, "/v1/tasks", `{"title":"Write minutes","due_date":"soon"}`, caller)
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Contains(t, env.Errors, "Due date must be a valid date")
		mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("parseable due date is passed through", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		mockSvc.On("Create", mock.Anything, caller, mock.MatchedBy(func(input service.CreateTaskInput) bool {
			return input.DueDate != nil && input.DueDate.Year() == 2030
		})).Return(&model.Task{ID: 4, Title: "Write minutes"}, nil)

		h := NewTaskHandler(mockSvc)
		c, rec := taskRequest(http.MethodPost, "/v1/tasks", `{"title":"Write minutes","due_date":"2030-06-15"}`, caller)
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("created task is wrapped in the envelope", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		mockSvc.On("Create", mock.Anything, caller, mock.MatchedBy(func(input service.CreateTaskInput) bool {
			return input.Title == "Write minutes" && input.DueDate == nil
		})).Return(&model.Task{ID: 4, Title: "Write minutes"}, nil)

		h := NewTaskHandler(mockSvc)
		c, rec := taskRequest(http.MethodPost, "/v1/tasks", `{"title":"Write minutes"}`, caller)
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.Equal(t, "Task created successfully", env.Message)
	})
}

func TestTaskHandler_Update(t *testing.T) {
	caller := &model.User{ID: 7, Role: model.RoleUser}

	t.Run("empty body maps to a field error", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		mockSvc.On("Update", mock.Anything, caller, uint(3), service.UpdateTaskInput{}).Return(apperrors.ErrNoFields)

		h := NewTaskHandler(mockSvc)
		c, rec := taskRequest(http.MethodPut, "/v1/tasks/3", `{}`, caller)
		c.SetParamNames("id")
		c.SetParamValues("3")
		require.NoError(t, h.Update(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.False(t, env.Success)
		assert.Equal(t, apperrors.ErrNoFields.Error(), env.Message)
	})

	t.Run("non-numeric id is rejected before the service", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		h := NewTaskHandler(mockSvc)

		c, rec := taskRequest(http.MethodPut, "/v1/tasks/abc", `{"title":"Renamed"}`, caller)
		c.SetParamNames("id")
		c.SetParamValues("abc")
		require.NoError(t, h.Update(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	caller := &model.User{ID: 7, Role: model.RoleUser}

	t.Run("forbidden surfaces as 403", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		mockSvc.On("Delete", mock.Anything, caller, uint(3)).Return(apperrors.ErrForbidden)

		h := NewTaskHandler(mockSvc)
		c, rec := taskRequest(http.MethodDelete, "/v1/tasks/3", "", caller)
		c.SetParamNames("id")
		c.SetParamValues("3")
		require.NoError(t, h.Delete(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing task surfaces as 404", func(t *testing.T) {
		mockSvc := new(MockTaskService)
		mockSvc.On("Delete", mock.Anything, caller, uint(3)).Return(apperrors.ErrTaskNotFound)

		h := NewTaskHandler(mockSvc)
		c, rec := taskRequest(http.MethodDelete, "/v1/tasks/3", "", caller)
		c.SetParamNames("id")
		c.SetParamValues("3")
		require.NoError(t, h.Delete(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
