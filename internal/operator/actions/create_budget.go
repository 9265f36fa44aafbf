package actions

import (
	"context"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// CreateBudget inserts a budget unless one already exists for the same
// category and period, in which case it fails with sqlconfig.ErrDuplicatePeriod.
type CreateBudget struct {
	Create sqlconfig.BudgetCreate

	Result *sqlconfig.Budget
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budgets.FindByPeriod(ctx, periodOf(&c.Create))
	if err != nil {
		return err
	}
	if existing != nil {
		return sqlconfig.ErrDuplicatePeriod
	}

	row, err := writer.Budgets.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.Result = row
	return nil
}

// UpsertBudget sets the amount of the budget for a category and period,
// creating the budget when there is none yet.
type UpsertBudget struct {
	Create sqlconfig.BudgetCreate

	Result  *sqlconfig.Budget
	Created bool
}

func (u *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budgets.FindByPeriod(ctx, periodOf(&u.Create))
	if err != nil {
		return err
	}

	if existing != nil {
		update := &sqlconfig.BudgetUpdate{Budget: omit.From(u.Create.Budget)}
		row, err := writer.Budgets.Update(ctx, existing.ID, update)
		if err != nil {
			return err
		}
		u.Result = row
		return nil
	}

	row, err := writer.Budgets.Insert(ctx, &u.Create)
	if err != nil {
		return err
	}

	u.Result = row
	u.Created = true
	return nil
}

func periodOf(create *sqlconfig.BudgetCreate) sqlconfig.BudgetPeriod {
	return sqlconfig.BudgetPeriod{
		Category: create.Category,
		Month:    create.Month,
		Year:     create.Year,
	}
}
