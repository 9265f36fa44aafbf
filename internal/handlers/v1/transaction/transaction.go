package transaction

import (
	"net/http"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/service"
)

const tag = "Transactions"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string               `json:"_id" doc:"Transaction UUID"`
	Amount      apiutil.Money        `json:"amount" doc:"Amount spent"`
	Date        string               `json:"date" format:"date-time" doc:"RFC3339 transaction date"`
	Description string               `json:"description" doc:"What the money was spent on"`
	Category    apiutil.CategoryName `json:"category" doc:"Spending category"`
}

// TransactionBody is the request body for creating or updating a
// transaction. Omitted fields are left to the service to default or reject.
type TransactionBody struct {
	_           struct{}       `json:"-" additionalProperties:"true"`
	Amount      *apiutil.Money `json:"amount,omitempty" required:"false" doc:"Amount spent"`
	Date        *string        `json:"date,omitempty" required:"false" doc:"YYYY-MM-DD or RFC3339 date"`
	Description *string        `json:"description,omitempty" required:"false" doc:"What the money was spent on"`
	Category    *string        `json:"category,omitempty" required:"false" doc:"Spending category, defaults to Recurring"`
}

func (b *TransactionBody) toInput() (service.TransactionInput, error) {
	input := service.TransactionInput{
		Amount:      b.Amount.DecimalPtr(),
		Description: b.Description,
		Category:    b.Category,
	}
	if b.Date != nil {
		date, err := apiutil.ParseDate(*b.Date)
		if err != nil {
			return service.TransactionInput{}, apiutil.NewError(http.StatusBadRequest, "Transaction validation failed: date: "+err.Error())
		}
		input.Date = &date
	}
	return input, nil
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Amount:      apiutil.NewMoney(tx.Amount),
		Date:        apiutil.FormatDate(tx.Date),
		Description: tx.Description,
		Category:    apiutil.NewCategoryName(tx.Category),
	}
}

func fromServiceList(txs []service.Transaction) []Transaction {
	result := make([]Transaction, len(txs))
	for i, tx := range txs {
		result[i] = fromService(tx)
	}
	return result
}
