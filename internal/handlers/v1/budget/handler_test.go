package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/service"
)

const duplicateMessage = "Budget for this category, month, and year already exists. Please update the existing budget instead."

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) CreateBudget(ctx context.Context, input service.BudgetInput) (*service.Budget, error) {
	args := m.Called(ctx, input)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) ListBudgets(ctx context.Context, page, limit string) (*service.BudgetPage, error) {
	args := m.Called(ctx, page, limit)
	p, _ := args.Get(0).(*service.BudgetPage)
	return p, args.Error(1)
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, id string, input service.BudgetInput) (*service.Budget, error) {
	args := m.Called(ctx, id, input)
	b, _ := args.Get(0).(*service.Budget)
	return b, args.Error(1)
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBudgetService) BudgetComparison(ctx context.Context) ([]service.BudgetComparison, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]service.BudgetComparison)
	return c, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockBudgetService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, apiutil.NewConfig())
	NewCreateBudgetHandler(svc).Register(api)
	NewListBudgetsHandler(svc).Register(api)
	NewUpdateBudgetHandler(svc).Register(api)
	NewDeleteBudgetHandler(svc).Register(api)
	NewBudgetComparisonHandler(svc).Register(api)
	return api
}

func foodJanuary() service.Budget {
	return service.Budget{
		ID:       uuid.Must(uuid.NewV4()),
		Category: category.Food,
		Month:    1,
		Year:     2024,
		Budget:   decimal.RequireFromString("100"),
	}
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload["error"]
}

func TestHTTP_CreateBudget_Success(t *testing.T) {
	b := foodJanuary()

	mockSvc := new(mockBudgetService)
	mockSvc.On("CreateBudget", mock.Anything, mock.MatchedBy(func(in service.BudgetInput) bool {
		return *in.Category == "Food" && *in.Month == 1 && *in.Year == 2024 && in.Budget.Equal(b.Budget)
	})).Return(&b, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/budgets", map[string]any{
		"category": "Food",
		"month":    1,
		"year":     2024,
		"budget":   100,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"_id": "`+b.ID.String()+`", "category": "Food", "month": 1, "year": 2024, "budget": 100}`, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateBudget_Conflict(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("CreateBudget", mock.Anything, mock.Anything).
		Return(nil, &service.Error{Kind: service.ErrConflict, Message: duplicateMessage})

	resp := newTestAPI(t, mockSvc).Post("/api/budgets", map[string]any{
		"category": "Food",
		"month":    1,
		"year":     2024,
		"budget":   100,
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.JSONEq(t, `{"error": "`+duplicateMessage+`"}`, resp.Body.String())
}

func TestHTTP_CreateBudget_Validation(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("CreateBudget", mock.Anything, mock.Anything).
		Return(nil, &service.Error{Kind: service.ErrValidation, Message: "Budget validation failed: month: Path `month` is required."})

	resp := newTestAPI(t, mockSvc).Post("/api/budgets", map[string]any{"category": "Food"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, errorMessage(t, resp.Body.Bytes()), "month")
}

func TestHTTP_CreateBudget_MonthNotNumber(t *testing.T) {
	mockSvc := new(mockBudgetService)

	resp := newTestAPI(t, mockSvc).Post("/api/budgets", map[string]any{
		"category": "Food",
		"month":    "January",
		"year":     2024,
		"budget":   100,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateBudget", mock.Anything, mock.Anything)
}

func TestHTTP_ListBudgets(t *testing.T) {
	b := foodJanuary()

	mockSvc := new(mockBudgetService)
	mockSvc.On("ListBudgets", mock.Anything, "1", "10").Return(&service.BudgetPage{
		Budgets:     []service.Budget{b},
		TotalPages:  1,
		CurrentPage: 1,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/budgets?page=1&limit=10")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListBudgetsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Budgets, 1)
	assert.Equal(t, b.ID.String(), body.Budgets[0].ID)
	assert.Equal(t, 1, body.TotalPages)
	assert.Equal(t, 1, body.CurrentPage)
}

func TestHTTP_UpdateBudget_Success(t *testing.T) {
	b := foodJanuary()
	b.Budget = decimal.RequireFromString("150")

	mockSvc := new(mockBudgetService)
	mockSvc.On("UpdateBudget", mock.Anything, b.ID.String(), mock.MatchedBy(func(in service.BudgetInput) bool {
		return in.Budget != nil && in.Budget.Equal(b.Budget) && in.Category == nil && in.Month == nil
	})).Return(&b, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/budgets/"+b.ID.String(), map[string]any{"budget": 150})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Budget.Equal(b.Budget))
}

func TestHTTP_UpdateBudget_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4()).String()

	mockSvc := new(mockBudgetService)
	mockSvc.On("UpdateBudget", mock.Anything, id, mock.Anything).
		Return(nil, &service.Error{Kind: service.ErrNotFound, Message: "Budget not found"})

	resp := newTestAPI(t, mockSvc).Put("/api/budgets/"+id, map[string]any{"budget": 1})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error": "Budget not found"}`, resp.Body.String())
}

func TestHTTP_UpdateBudget_NilWithoutErrorIsNotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4()).String()

	mockSvc := new(mockBudgetService)
	mockSvc.On("UpdateBudget", mock.Anything, id, mock.Anything).Return(nil, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/budgets/"+id, map[string]any{})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteBudget(t *testing.T) {
	id := uuid.Must(uuid.NewV4()).String()

	mockSvc := new(mockBudgetService)
	mockSvc.On("DeleteBudget", mock.Anything, id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/budgets/" + id)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message": "Budget deleted successfully"}`, resp.Body.String())
}

func TestHTTP_DeleteBudget_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4()).String()

	mockSvc := new(mockBudgetService)
	mockSvc.On("DeleteBudget", mock.Anything, id).
		Return(&service.Error{Kind: service.ErrNotFound, Message: "Budget not found"})

	resp := newTestAPI(t, mockSvc).Delete("/api/budgets/" + id)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "Budget not found", errorMessage(t, resp.Body.Bytes()))
}

func TestHTTP_BudgetComparison(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("BudgetComparison", mock.Anything).Return([]service.BudgetComparison{
		{Category: category.Food, Actual: decimal.RequireFromString("70"), Budget: decimal.RequireFromString("100")},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/budgets/comparison")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"category": "Food", "actual": 70, "budget": 100}]`, resp.Body.String())
}

func TestHTTP_BudgetComparison_Error(t *testing.T) {
	mockSvc := new(mockBudgetService)
	mockSvc.On("BudgetComparison", mock.Anything).Return(nil, errors.New("db down"))

	resp := newTestAPI(t, mockSvc).Get("/api/budgets/comparison")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "db down", errorMessage(t, resp.Body.Bytes()))
}
