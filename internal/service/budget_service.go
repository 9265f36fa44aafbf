package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/opt/omit"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/spend-tracker/internal/aggregation"
	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/operator/actions"
	"github.com/carson-networks/spend-tracker/internal/pagination"
	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

const (
	duplicateBudgetMessage = "Budget for this category, month, and year already exists. Please update the existing budget instead."
	missingBudgetFields    = "Missing required fields: category, month, year, or budget."
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage  *storage.Storage
	operator actionProcessor

	// NotFound controls how update and delete report unknown ids.
	NotFound NotFoundPolicy
}

// NewBudgetService creates a new BudgetService. Unknown ids are reported
// strictly.
func NewBudgetService(store *storage.Storage, op actionProcessor) *BudgetService {
	return &BudgetService{storage: store, operator: op, NotFound: Strict}
}

// CreateBudget stores a new budget. A second budget for the same category and
// period is a conflict.
func (s *BudgetService) CreateBudget(ctx context.Context, input BudgetInput) (*Budget, error) {
	var missing []string
	if input.Category == nil || *input.Category == "" {
		missing = append(missing, "category")
	}
	if input.Month == nil {
		missing = append(missing, "month")
	}
	if input.Year == nil {
		missing = append(missing, "year")
	}
	if input.Budget == nil {
		missing = append(missing, "budget")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError("Budget", missing)
	}

	create, err := budgetCreate(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateBudget{Create: create}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrDuplicatePeriod) {
			return nil, conflictError(duplicateBudgetMessage)
		}
		return nil, fmt.Errorf("create budget: %w", err)
	}

	budget := budgetFromStorage(action.Result)
	return &budget, nil
}

// ListBudgets returns one page of budgets ordered by year then month.
func (s *BudgetService) ListBudgets(ctx context.Context, page, limit string) (*BudgetPage, error) {
	window := pagination.Paginate(page, limit)

	var rows []*sqlconfig.Budget
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.storage.Budgets.List(gctx, &sqlconfig.BudgetFilter{
			Limit:  window.Limit,
			Offset: window.Skip,
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.storage.Budgets.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BudgetPage{
		Budgets:     budgetsFromStorage(rows),
		TotalPages:  pagination.TotalPages(total, window.Limit),
		CurrentPage: window.Page,
	}, nil
}

// UpdateBudget overwrites the provided fields.
func (s *BudgetService) UpdateBudget(ctx context.Context, id string, input BudgetInput) (*Budget, error) {
	budgetID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := sqlconfig.BudgetUpdate{}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, requiredFieldsError("Budget", []string{"category"})
		}
		parsed, err := category.Parse(*input.Category)
		if err != nil {
			return nil, validationError("Budget validation failed: category: %s", err)
		}
		update.Category = omit.From(parsed)
	}
	if input.Month != nil {
		if err := validateMonth(*input.Month); err != nil {
			return nil, err
		}
		update.Month = omit.From(*input.Month)
	}
	if input.Year != nil {
		update.Year = omit.From(*input.Year)
	}
	if input.Budget != nil {
		update.Budget = omit.From(*input.Budget)
	}

	action := &actions.UpdateBudget{ID: budgetID, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrDuplicatePeriod) {
			return nil, conflictError(duplicateBudgetMessage)
		}
		return nil, fmt.Errorf("update budget: %w", err)
	}

	if action.Result == nil {
		return nil, s.NotFound.missing("Budget")
	}
	budget := budgetFromStorage(action.Result)
	return &budget, nil
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, id string) error {
	budgetID, err := parseID(id)
	if err != nil {
		return err
	}

	action := &actions.DeleteBudget{ID: budgetID}
	if err := s.operator.Process(ctx, action); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}

	if !action.Deleted {
		return s.NotFound.missing("Budget")
	}
	return nil
}

// CreateOrUpdateBudget sets the budget amount for a category and period,
// creating the budget if the period has none. Zero is accepted for the
// numeric fields.
func (s *BudgetService) CreateOrUpdateBudget(ctx context.Context, input BudgetInput) (*Budget, error) {
	if input.Category == nil || *input.Category == "" || input.Month == nil || input.Year == nil || input.Budget == nil {
		return nil, validationError(missingBudgetFields)
	}

	create, err := budgetCreate(input)
	if err != nil {
		return nil, err
	}

	action := &actions.UpsertBudget{Create: create}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("upsert budget: %w", err)
	}

	budget := budgetFromStorage(action.Result)
	return &budget, nil
}

// BudgetComparison pairs total spend with total budget per category, summed
// over every period.
func (s *BudgetService) BudgetComparison(ctx context.Context) ([]BudgetComparison, error) {
	var actuals []*sqlconfig.CategoryTotal
	var budgets []*sqlconfig.CategoryTotal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actuals, err = s.storage.Transactions.SumByCategory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.storage.Budgets.SumByCategory(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := aggregation.Compare(categoryTotalsFromStorage(actuals), categoryTotalsFromStorage(budgets))
	result := make([]BudgetComparison, len(merged))
	for i, c := range merged {
		result[i] = BudgetComparison{Category: c.Category, Actual: c.Actual, Budget: c.Budget}
	}
	return result, nil
}

func budgetCreate(input BudgetInput) (sqlconfig.BudgetCreate, error) {
	cat, err := category.Parse(*input.Category)
	if err != nil {
		return sqlconfig.BudgetCreate{}, validationError("Budget validation failed: category: %s", err)
	}
	if err := validateMonth(*input.Month); err != nil {
		return sqlconfig.BudgetCreate{}, err
	}

	return sqlconfig.BudgetCreate{
		Category: cat,
		Month:    *input.Month,
		Year:     *input.Year,
		Budget:   *input.Budget,
	}, nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return validationError("Budget validation failed: month: %d is not between 1 and 12", month)
	}
	return nil
}
