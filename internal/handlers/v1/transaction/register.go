package transaction

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/service"
)

// RegisterAll registers every transaction endpoint backed by svc.
func RegisterAll(api huma.API, svc *service.TransactionService) {
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewCategoryBreakdownHandler(svc).Register(api)
	NewRecentTransactionsHandler(svc).Register(api)
	NewMonthlyExpensesHandler(svc).Register(api)
}
