package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    category.Category
}

// TransactionInput holds caller supplied fields. Nil means the field was not
// provided.
type TransactionInput struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	Category    *string
}

// TransactionPage is one page of the date ordered transaction listing.
type TransactionPage struct {
	Transactions []Transaction
	TotalPages   int
	CurrentPage  int
}

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category category.Category
	Total    decimal.Decimal
}

// MonthlyExpense is the summed spend for one calendar month.
type MonthlyExpense struct {
	Month  int
	Amount decimal.Decimal
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Date:        row.Date,
		Description: row.Description,
		Category:    row.Category,
	}
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []Transaction {
	result := make([]Transaction, len(rows))
	for i, row := range rows {
		result[i] = transactionFromStorage(row)
	}
	return result
}
