package transaction

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
	"github.com/carson-networks/spend-tracker/internal/logging"
	"github.com/carson-networks/spend-tracker/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction. The
// body is the updated Transaction, or JSON null when the id matched nothing.
type UpdateTransactionOutput struct {
	Body any
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id string, input service.TransactionInput) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Overwrites the provided fields of a transaction.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)

	txInput, err := input.Body.toInput()
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("updateTransactionMs")
	tx, err := h.TransactionService.UpdateTransaction(ctx, input.ID, txInput)
	stopTimer()
	if err != nil {
		return nil, apiutil.FromServiceError(err)
	}

	if tx == nil {
		logData.AddData("transactionFound", false)
		return &UpdateTransactionOutput{Body: json.RawMessage("null")}, nil
	}
	return &UpdateTransactionOutput{Body: fromService(*tx)}, nil
}
