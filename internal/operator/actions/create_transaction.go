package actions

import (
	"context"

	"github.com/carson-networks/spend-tracker/internal/storage"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	Result *sqlconfig.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, &t.Create)
	if err != nil {
		return err
	}

	t.Result = row
	return nil
}
