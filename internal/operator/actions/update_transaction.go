package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// UpdateTransaction overwrites the set fields. Result is nil when the id is unknown.
type UpdateTransaction struct {
	ID     uuid.UUID
	Update sqlconfig.TransactionUpdate

	Result *sqlconfig.Transaction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Update(ctx, t.ID, &t.Update)
	if err != nil {
		return err
	}

	t.Result = row
	return nil
}

type DeleteTransaction struct {
	ID uuid.UUID

	Deleted bool
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.Delete(ctx, t.ID)
	if err != nil {
		return err
	}

	t.Deleted = deleted
	return nil
}
