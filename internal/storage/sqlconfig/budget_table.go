package sqlconfig

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const budgetsTableName = "budgets"

// Ensure BudgetsTable implements IBudgetTable at compile time.
var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

// NewBudgetsTable creates a BudgetsTable that runs its queries on exec.
func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// FindByID retrieves a budget by primary key.
func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByPeriod retrieves the budget for a category in a given month and year.
func (t *BudgetsTable) FindByPeriod(ctx context.Context, period BudgetPeriod) (*Budget, error) {
	return t.findOne(ctx, sm.Where(psql.And(
		psql.Quote("category").EQ(psql.Arg(string(period.Category))),
		psql.Quote("month").EQ(psql.Arg(period.Month)),
		psql.Quote("year").EQ(psql.Arg(period.Year)),
	)))
}

func (t *BudgetsTable) findOne(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*Budget, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(budgetsTableName),
		where,
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find budget: %w", err)
	}
	return &row, nil
}

// Insert creates a new budget and returns the stored row. A second budget for
// an existing period fails with ErrDuplicatePeriod.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into(budgetsTableName, "category", "month", "year", "budget"),
		im.Values(
			psql.Arg(string(create.Category)),
			psql.Arg(create.Month),
			psql.Arg(create.Year),
			psql.Arg(create.Budget),
		),
		im.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if isUniqueViolation(err) {
		return nil, ErrDuplicatePeriod
	}
	if err != nil {
		return nil, fmt.Errorf("insert budget: %w", err)
	}
	return &row, nil
}

// List returns a page of budgets ordered by year then month, oldest first.
// Nil filter returns all.
func (t *BudgetsTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(budgetsTableName),
		sm.OrderBy(psql.Quote("year")).Asc(),
		sm.OrderBy(psql.Quote("month")).Asc(),
		sm.OrderBy(psql.Quote("seq")).Asc(),
	}
	if filter != nil {
		queryMods = append(queryMods, sm.Limit(filter.Limit), sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Count returns the number of stored budgets.
func (t *BudgetsTable) Count(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(budgetsTableName),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, fmt.Errorf("count budgets: %w", err)
	}
	return count, nil
}

// Update overwrites the set fields of a budget and returns the new row, or
// nil when no budget has the id.
func (t *BudgetsTable) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Category.Get(); ok {
		sets = append(sets, um.SetCol("category").ToArg(string(v)))
	}
	if v, ok := update.Month.Get(); ok {
		sets = append(sets, um.SetCol("month").ToArg(v))
	}
	if v, ok := update.Year.Get(); ok {
		sets = append(sets, um.SetCol("year").ToArg(v))
	}
	if v, ok := update.Budget.Get(); ok {
		sets = append(sets, um.SetCol("budget").ToArg(v))
	}
	if len(sets) == 0 {
		return t.FindByID(ctx, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(budgetsTableName)}, sets...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Budget]())
	if isNoRows(err) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrDuplicatePeriod
	}
	if err != nil {
		return nil, fmt.Errorf("update budget: %w", err)
	}
	return &row, nil
}

// Delete removes a budget and reports whether a row was deleted.
func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From(budgetsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, fmt.Errorf("delete budget: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete budget: %w", err)
	}
	return affected > 0, nil
}

// SumByCategory sums budget amounts per category across every period,
// first-inserted category first.
func (t *BudgetsTable) SumByCategory(ctx context.Context) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns("category", "SUM(budget) AS total"),
		sm.From(budgetsTableName),
		sm.GroupBy("category"),
		sm.OrderBy("MIN(seq)").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[CategoryTotal]())
	if err != nil {
		return nil, fmt.Errorf("sum budgets by category: %w", err)
	}
	result := make([]*CategoryTotal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
