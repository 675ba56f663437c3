package insights

import (
	"math"
	"sort"

	"github.com/elcukro/home-budget-sub004/pkg/datetime"
)

// MonthTotal is one month's total expense spend.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlySpend buckets expense totals by calendar month, sorted
// chronologically. Transactions with unparseable dates are skipped.
func MonthlySpend(transactions []Transaction) []MonthTotal {
	totals := make(map[string]float64)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		month, err := datetime.MonthKey(t.Date)
		if err != nil {
			continue
		}
		totals[month] += math.Abs(t.Amount)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	spend := make([]MonthTotal, len(months))
	for i, month := range months {
		spend[i] = MonthTotal{Month: month, Total: totals[month]}
	}
	return spend
}

// AverageMonthlyExpenses returns the mean of the monthly expense totals,
// used as a fallback when no explicit monthly-expenses figure is configured.
func AverageMonthlyExpenses(transactions []Transaction) float64 {
	spend := MonthlySpend(transactions)
	if len(spend) == 0 {
		return 0
	}
	sum := 0.0
	for _, month := range spend {
		sum += month.Total
	}
	return sum / float64(len(spend))
}
