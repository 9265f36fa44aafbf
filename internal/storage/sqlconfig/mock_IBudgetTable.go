package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockIBudgetTable is a testify mock of IBudgetTable.
type MockIBudgetTable struct {
	mock.Mock
}

var _ IBudgetTable = (*MockIBudgetTable)(nil)

// NewMockIBudgetTable creates a mock whose expectations are asserted when the test ends.
func NewMockIBudgetTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIBudgetTable {
	m := &MockIBudgetTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIBudgetTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*Budget)
	return row, args.Error(1)
}

func (m *MockIBudgetTable) FindByPeriod(ctx context.Context, period BudgetPeriod) (*Budget, error) {
	args := m.Called(ctx, period)
	row, _ := args.Get(0).(*Budget)
	return row, args.Error(1)
}

func (m *MockIBudgetTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*Budget)
	return row, args.Error(1)
}

func (m *MockIBudgetTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*Budget)
	return rows, args.Error(1)
}

func (m *MockIBudgetTable) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func (m *MockIBudgetTable) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) (*Budget, error) {
	args := m.Called(ctx, id, update)
	row, _ := args.Get(0).(*Budget)
	return row, args.Error(1)
}

func (m *MockIBudgetTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockIBudgetTable) SumByCategory(ctx context.Context) ([]*CategoryTotal, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*CategoryTotal)
	return rows, args.Error(1)
}
