package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carson-networks/spend-tracker/internal/operator"
	"github.com/carson-networks/spend-tracker/internal/service"
	"github.com/carson-networks/spend-tracker/internal/storage"
)

var (
	budgetCategory string
	budgetMonth    int
	budgetYear     int
	budgetAmount   string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage budgets from the command line",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the budget for a category and month, creating it if needed",
	Args:  cobra.NoArgs,
	RunE:  runBudgetSet,
}

func init() {
	budgetSetCmd.Flags().StringVarP(&budgetCategory, "category", "c", "", "Spending category (e.g. Food, Travel)")
	budgetSetCmd.Flags().IntVarP(&budgetMonth, "month", "m", 0, "Calendar month, 1-12")
	budgetSetCmd.Flags().IntVarP(&budgetYear, "year", "y", 0, "Calendar year")
	budgetSetCmd.Flags().StringVarP(&budgetAmount, "amount", "a", "", "Budget amount")
	for _, name := range []string{"category", "month", "year", "amount"} {
		_ = budgetSetCmd.MarkFlagRequired(name)
	}
	budgetCmd.AddCommand(budgetSetCmd)
}

func runBudgetSet(cmd *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(budgetAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", budgetAmount, err)
	}

	env, _, err := bootstrap()
	if err != nil {
		return err
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)
	budget, err := svc.Budget.CreateOrUpdateBudget(cmd.Context(), service.BudgetInput{
		Category: &budgetCategory,
		Month:    &budgetMonth,
		Year:     &budgetYear,
		Budget:   &amount,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %02d/%d: %s (%s)\n", budget.Category, budget.Month, budget.Year, budget.Budget.StringFixed(2), budget.ID)
	return nil
}
