package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// RecentTransactionsInput is the Huma input for recent transactions.
type RecentTransactionsInput struct {
	Limit string `query:"limit" doc:"How many transactions to return, defaults to 5"`
}

// RecentTransactionsOutput is the Huma output for recent transactions.
type RecentTransactionsOutput struct {
	Body []Transaction
}

// recentLister is the interface for listing recently added transactions.
type recentLister interface {
	RecentTransactions(ctx context.Context, limit string) ([]service.Transaction, error)
}

// RecentTransactionsHandler handles GET /api/transactions/recent.
type RecentTransactionsHandler struct {
	TransactionService recentLister
}

// NewRecentTransactionsHandler creates a new RecentTransactionsHandler.
func NewRecentTransactionsHandler(svc recentLister) *RecentTransactionsHandler {
	return &RecentTransactionsHandler{TransactionService: svc}
}

// Register registers the recent transactions endpoint with the Huma API.
func (h *RecentTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recent-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions/recent",
		Summary:     "Recent transactions",
		Description: "Returns the most recently recorded transactions, regardless of their date.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *RecentTransactionsHandler) handle(ctx context.Context, input *RecentTransactionsInput) (*RecentTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("recentTransactionsMs")
	txs, err := h.TransactionService.RecentTransactions(ctx, input.Limit)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	logData.AddData("transactionCount", len(txs))
	return &RecentTransactionsOutput{Body: fromServiceList(txs)}, nil
}
