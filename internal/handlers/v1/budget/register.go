package budget

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/service"
)

// RegisterAll registers every budget endpoint backed by svc.
func RegisterAll(api huma.API, svc *service.BudgetService) {
	NewCreateBudgetHandler(svc).Register(api)
	NewListBudgetsHandler(svc).Register(api)
	NewUpdateBudgetHandler(svc).Register(api)
	NewDeleteBudgetHandler(svc).Register(api)
	NewBudgetComparisonHandler(svc).Register(api)
}
