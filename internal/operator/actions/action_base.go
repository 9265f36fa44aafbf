package actions

import (
	"context"

	"github.com/carson-networks/spend-tracker/internal/storage"
)

// IAction is one unit of write work. Perform runs inside a store transaction;
// returning an error rolls it back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
