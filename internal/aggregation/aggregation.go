// Package aggregation turns grouped transaction and budget totals into the
// dashboard views: category breakdown, twelve-month series and the
// budget-vs-actual comparison. Everything here is a pure function of its
// inputs.
package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/spend-tracker/internal/category"
)

const monthsInYear = 12

// CategoryTotal is a summed amount for one category.
type CategoryTotal struct {
	Category category.Category
	Total    decimal.Decimal
}

// MonthTotal is a summed amount for one calendar month (1-12).
type MonthTotal struct {
	Month  int
	Amount decimal.Decimal
}

// Comparison pairs cumulative actual spend with cumulative budget for a category.
type Comparison struct {
	Category category.Category
	Actual   decimal.Decimal
	Budget   decimal.Decimal
}

// Breakdown collapses totals into one entry per category, keeping the order in
// which each category first appears. Categories that never appear are omitted.
func Breakdown(totals []CategoryTotal) []CategoryTotal {
	result := make([]CategoryTotal, 0, len(totals))
	index := make(map[category.Category]int, len(totals))
	for _, t := range totals {
		if i, ok := index[t.Category]; ok {
			result[i].Total = result[i].Total.Add(t.Total)
			continue
		}
		index[t.Category] = len(result)
		result = append(result, CategoryTotal{Category: t.Category, Total: t.Total})
	}
	return result
}

// MonthlyExpenses always returns exactly twelve entries, months 1 through 12
// in order. Months absent from totals are zero. Entries outside 1-12 are
// dropped.
func MonthlyExpenses(totals []MonthTotal) []MonthTotal {
	var sums [monthsInYear]decimal.Decimal
	for _, t := range totals {
		if t.Month < 1 || t.Month > monthsInYear {
			continue
		}
		sums[t.Month-1] = sums[t.Month-1].Add(t.Amount)
	}

	result := make([]MonthTotal, monthsInYear)
	for i := range result {
		result[i] = MonthTotal{Month: i + 1, Amount: sums[i]}
	}
	return result
}

// Compare merges actual spend and budget totals by category. The key set is
// the union of both inputs, ordered by first appearance across actuals then
// budgets. A side with no entry for a category reports zero.
func Compare(actuals, budgets []CategoryTotal) []Comparison {
	actualByCategory := sumByCategory(actuals)
	budgetByCategory := sumByCategory(budgets)

	seen := make(map[category.Category]struct{}, len(actuals)+len(budgets))
	result := make([]Comparison, 0, len(actualByCategory)+len(budgetByCategory))

	emit := func(c category.Category) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		result = append(result, Comparison{
			Category: c,
			Actual:   actualByCategory[c],
			Budget:   budgetByCategory[c],
		})
	}

	for _, a := range actuals {
		emit(a.Category)
	}
	for _, b := range budgets {
		emit(b.Category)
	}
	return result
}

func sumByCategory(totals []CategoryTotal) map[category.Category]decimal.Decimal {
	sums := make(map[category.Category]decimal.Decimal, len(totals))
	for _, t := range totals {
		sums[t.Category] = sums[t.Category].Add(t.Total)
	}
	return sums
}
