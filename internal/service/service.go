package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/spend-tracker/internal/operator/actions"
	"github.com/carson-networks/spend-tracker/internal/storage"
)

// actionProcessor runs write actions inside a store transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
}

// NewService creates a new Service with the given storage. Writes are handed
// to op.
func NewService(store *storage.Storage, op actionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op),
		Budget:      NewBudgetService(store, op),
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.FromString(id)
	if err != nil {
		return uuid.Nil, validationError("invalid id %q", id)
	}
	return parsed, nil
}
