package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// UpdateBudget overwrites the set fields. Result is nil when the id is unknown.
type UpdateBudget struct {
	ID     uuid.UUID
	Update sqlconfig.BudgetUpdate

	Result *sqlconfig.Budget
}

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Budgets.Update(ctx, u.ID, &u.Update)
	if err != nil {
		return err
	}

	u.Result = row
	return nil
}

type DeleteBudget struct {
	ID uuid.UUID

	Deleted bool
}

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Budgets.Delete(ctx, d.ID)
	if err != nil {
		return err
	}

	d.Deleted = deleted
	return nil
}
