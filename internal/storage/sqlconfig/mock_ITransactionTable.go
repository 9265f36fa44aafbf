package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockITransactionTable is a testify mock of ITransactionTable.
type MockITransactionTable struct {
	mock.Mock
}

var _ ITransactionTable = (*MockITransactionTable)(nil)

// NewMockITransactionTable creates a mock whose expectations are asserted when the test ends.
func NewMockITransactionTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockITransactionTable {
	m := &MockITransactionTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockITransactionTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Transaction)
	return row, args.Error(1)
}

func (m *MockITransactionTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*Transaction)
	return row, args.Error(1)
}

func (m *MockITransactionTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*Transaction)
	return rows, args.Error(1)
}

func (m *MockITransactionTable) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockITransactionTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*Transaction)
	return row, args.Error(1)
}

func (m *MockITransactionTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockITransactionTable) SumByCategory(ctx context.Context) ([]*CategoryTotal, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*CategoryTotal)
	return rows, args.Error(1)
}

func (m *MockITransactionTable) SumByMonth(ctx context.Context) ([]*MonthTotal, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*MonthTotal)
	return rows, args.Error(1)
}
