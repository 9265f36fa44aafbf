package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// MonthlyExpense is the spend for one calendar month.
type MonthlyExpense struct {
	Month  int           `json:"month" minimum:"1" maximum:"12" doc:"Calendar month"`
	Amount apiutil.Money `json:"amount" doc:"Sum of transactions dated in the month, across all years"`
}

// MonthlyExpensesOutput is the Huma output for monthly expenses.
type MonthlyExpensesOutput struct {
	Body []MonthlyExpense
}

// monthlyExpenser is the interface for summing spend by month.
type monthlyExpenser interface {
	MonthlyExpenses(ctx context.Context) ([]service.MonthlyExpense, error)
}

// MonthlyExpensesHandler handles GET /api/transactions/monthly-expenses.
type MonthlyExpensesHandler struct {
	TransactionService monthlyExpenser
}

// NewMonthlyExpensesHandler creates a new MonthlyExpensesHandler.
func NewMonthlyExpensesHandler(svc monthlyExpenser) *MonthlyExpensesHandler {
	return &MonthlyExpensesHandler{TransactionService: svc}
}

// Register registers the monthly expenses endpoint with the Huma API.
func (h *MonthlyExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-expenses",
		Method:      http.MethodGet,
		Path:        "/api/transactions/monthly-expenses",
		Summary:     "Spend by month",
		Description: "Returns twelve entries, one per calendar month, with zero for months without spend.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *MonthlyExpensesHandler) handle(ctx context.Context, _ *struct{}) (*MonthlyExpensesOutput, error) {
	stopTimer := logging.GetLogData(ctx).AddTiming("monthlyExpensesMs")
	months, err := h.TransactionService.MonthlyExpenses(ctx)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	body := make([]MonthlyExpense, len(months))
	for i, m := range months {
		body[i] = MonthlyExpense{Month: m.Month, Amount: apiutil.NewMoney(m.Amount)}
	}
	return &MonthlyExpensesOutput{Body: body}, nil
}
