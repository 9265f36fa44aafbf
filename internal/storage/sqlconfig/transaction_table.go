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

const transactionsTableName = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable that runs its queries on exec,
// which may be the database handle or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(transactionsTableName, "amount", "date", "description", "category"),
		im.Values(
			psql.Arg(create.Amount),
			psql.Arg(create.Date),
			psql.Arg(create.Description),
			psql.Arg(string(create.Category)),
		),
		im.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return &row, nil
}

// List returns a page of transactions. Nil filter returns all, newest date first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(transactionsTableName),
	}

	order := OrderByDateDesc
	if filter != nil {
		order = filter.Order
	}
	switch order {
	case OrderByInsertionDesc:
		queryMods = append(queryMods, sm.OrderBy(psql.Quote("seq")).Desc())
	default:
		queryMods = append(queryMods,
			sm.OrderBy(psql.Quote("date")).Desc(),
			sm.OrderBy(psql.Quote("seq")).Desc(),
		)
	}

	if filter != nil {
		queryMods = append(queryMods, sm.Limit(filter.Limit), sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Count returns the number of stored transactions.
func (t *TransactionsTable) Count(ctx context.Context) (int64, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(transactionsTableName),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// Update overwrites the set fields of a transaction and returns the new row,
// or nil when no transaction has the id.
func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Amount.Get(); ok {
		sets = append(sets, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Date.Get(); ok {
		sets = append(sets, um.SetCol("date").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		sets = append(sets, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		sets = append(sets, um.SetCol("category").ToArg(string(v)))
	}
	if len(sets) == 0 {
		return t.FindByID(ctx, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(transactionsTableName)}, sets...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Transaction]())
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return &row, nil
}

// Delete removes a transaction and reports whether a row was deleted.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return affected > 0, nil
}

// SumByCategory sums amounts per category, first-inserted category first.
func (t *TransactionsTable) SumByCategory(ctx context.Context) ([]*CategoryTotal, error) {
	q := psql.Select(
		sm.Columns("category", "SUM(amount) AS total"),
		sm.From(transactionsTableName),
		sm.GroupBy("category"),
		sm.OrderBy("MIN(seq)").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[CategoryTotal]())
	if err != nil {
		return nil, fmt.Errorf("sum transactions by category: %w", err)
	}
	result := make([]*CategoryTotal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SumByMonth sums amounts per UTC calendar month of the transaction date,
// ordered by month. Only months with transactions are returned.
func (t *TransactionsTable) SumByMonth(ctx context.Context) ([]*MonthTotal, error) {
	const monthExpr = "EXTRACT(MONTH FROM date AT TIME ZONE 'UTC')::int"
	q := psql.Select(
		sm.Columns(monthExpr+" AS month", "SUM(amount) AS total"),
		sm.From(transactionsTableName),
		sm.GroupBy(monthExpr),
		sm.OrderBy("month").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[MonthTotal]())
	if err != nil {
		return nil, fmt.Errorf("sum transactions by month: %w", err)
	}
	result := make([]*MonthTotal, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
