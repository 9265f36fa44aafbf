package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. Page and
// limit are parsed leniently, so they are taken as raw strings.
type ListTransactionsInput struct {
	Page  string `query:"page" doc:"1-based page number, defaults to 1"`
	Limit string `query:"limit" doc:"Page size, defaults to 10"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest date first"`
	TotalPages   int           `json:"totalPages" doc:"Number of pages at this limit"`
	CurrentPage  int           `json:"currentPage" doc:"Page returned"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, page, limit string) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of transactions ordered by date, newest first.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listTransactionsMs")
	page, err := h.TransactionService.ListTransactions(ctx, input.Page, input.Limit)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	logData.AddData("transactionCount", len(page.Transactions))
	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Transactions: fromServiceList(page.Transactions),
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
	}}, nil
}
