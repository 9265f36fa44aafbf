package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aarondl/opt/omit"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/spend-tracker/internal/aggregation"
	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/operator/actions"
	"github.com/carson-networks/spend-tracker/internal/pagination"
	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

const defaultRecentLimit = 5

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor

	// NotFound controls how update and delete report unknown ids.
	NotFound NotFoundPolicy
}

// NewTransactionService creates a new TransactionService. Unknown ids are
// reported leniently.
func NewTransactionService(store *storage.Storage, op actionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: op, NotFound: Lenient}
}

// CreateTransaction validates and stores a new transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, input TransactionInput) (*Transaction, error) {
	var missing []string
	if input.Amount == nil {
		missing = append(missing, "amount")
	}
	if input.Date == nil {
		missing = append(missing, "date")
	}
	if input.Description == nil || *input.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError("Transaction", missing)
	}

	cat := category.Default
	if input.Category != nil {
		parsed, err := category.Parse(*input.Category)
		if err != nil {
			return nil, validationError("Transaction validation failed: category: %s", err)
		}
		cat = parsed
	}

	action := &actions.CreateTransaction{
		Create: sqlconfig.TransactionCreate{
			Amount:      *input.Amount,
			Date:        input.Date.UTC(),
			Description: *input.Description,
			Category:    cat,
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// ListTransactions returns one page of transactions, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context, page, limit string) (*TransactionPage, error) {
	window := pagination.Paginate(page, limit)

	var rows []*sqlconfig.Transaction
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.storage.Transactions.List(gctx, &sqlconfig.TransactionFilter{
			Limit:  window.Limit,
			Offset: window.Skip,
			Order:  sqlconfig.OrderByDateDesc,
		})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.storage.Transactions.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TransactionPage{
		Transactions: transactionsFromStorage(rows),
		TotalPages:   pagination.TotalPages(total, window.Limit),
		CurrentPage:  window.Page,
	}, nil
}

// UpdateTransaction overwrites the provided fields. With the lenient policy an
// unknown id yields a nil transaction and no error.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*Transaction, error) {
	txID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := sqlconfig.TransactionUpdate{}
	if input.Amount != nil {
		update.Amount = omit.From(*input.Amount)
	}
	if input.Date != nil {
		update.Date = omit.From(input.Date.UTC())
	}
	if input.Description != nil {
		if *input.Description == "" {
			return nil, requiredFieldsError("Transaction", []string{"description"})
		}
		update.Description = omit.From(*input.Description)
	}
	if input.Category != nil {
		parsed, err := category.Parse(*input.Category)
		if err != nil {
			return nil, validationError("Transaction validation failed: category: %s", err)
		}
		update.Category = omit.From(parsed)
	}

	action := &actions.UpdateTransaction{ID: txID, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	if action.Result == nil {
		return nil, s.NotFound.missing("Transaction")
	}
	tx := transactionFromStorage(action.Result)
	return &tx, nil
}

// DeleteTransaction removes a transaction. With the lenient policy an unknown
// id is not an error.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	txID, err := parseID(id)
	if err != nil {
		return err
	}

	action := &actions.DeleteTransaction{ID: txID}
	if err := s.operator.Process(ctx, action); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	if !action.Deleted {
		return s.NotFound.missing("Transaction")
	}
	return nil
}

// CategoryBreakdown sums spend per category. Categories without transactions
// are left out.
func (s *TransactionService) CategoryBreakdown(ctx context.Context) ([]CategoryTotal, error) {
	rows, err := s.storage.Transactions.SumByCategory(ctx)
	if err != nil {
		return nil, err
	}

	breakdown := aggregation.Breakdown(categoryTotalsFromStorage(rows))
	result := make([]CategoryTotal, len(breakdown))
	for i, b := range breakdown {
		result[i] = CategoryTotal{Category: b.Category, Total: b.Total}
	}
	return result, nil
}

// RecentTransactions returns the most recently inserted transactions. The
// order follows insertion, not the transaction date.
func (s *TransactionService) RecentTransactions(ctx context.Context, limit string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		Limit: pagination.ParseOrDefault(limit, defaultRecentLimit),
		Order: sqlconfig.OrderByInsertionDesc,
	})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// MonthlyExpenses sums spend per calendar month. The result always has
// twelve entries.
func (s *TransactionService) MonthlyExpenses(ctx context.Context) ([]MonthlyExpense, error) {
	rows, err := s.storage.Transactions.SumByMonth(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]aggregation.MonthTotal, len(rows))
	for i, row := range rows {
		totals[i] = aggregation.MonthTotal{Month: row.Month, Amount: row.Total}
	}

	months := aggregation.MonthlyExpenses(totals)
	result := make([]MonthlyExpense, len(months))
	for i, m := range months {
		result[i] = MonthlyExpense{Month: m.Month, Amount: m.Amount}
	}
	return result, nil
}

func categoryTotalsFromStorage(rows []*sqlconfig.CategoryTotal) []aggregation.CategoryTotal {
	result := make([]aggregation.CategoryTotal, len(rows))
	for i, row := range rows {
		result[i] = aggregation.CategoryTotal{Category: row.Category, Total: row.Total}
	}
	return result
}

func requiredFieldsError(entity string, fields []string) error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: Path `%s` is required.", f, f)
	}
	return validationError("%s validation failed: %s", entity, strings.Join(parts, ", "))
}
