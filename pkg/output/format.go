// Package output provides utilities for formatting and displaying report results.
package output

import (
	"fmt"

	"github.com/elcukro/home-budget-sub004/internal/report"
	"github.com/elcukro/home-budget-sub004/pkg/datetime"
	"github.com/elcukro/home-budget-sub004/pkg/format"
	"github.com/elcukro/home-budget-sub004/pkg/insights"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result *report.Report) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Baby steps ---\n")
	fmt.Printf("Step                   | Progress | Current        | Target\n")
	fmt.Printf("____                   | ________ | _______        | ______\n")
	for _, step := range result.BabySteps {
		fmt.Printf("%-22s | %8s | %14s | %s\n",
			step.ID, format.Percent(step.ProgressPercent),
			format.Currency(step.CurrentAmount), format.Currency(step.TargetAmount))
	}

	if len(result.Loans) > 0 {
		fmt.Printf("\n--- Loan overpayment comparison ---\n")
		for _, loan := range result.Loans {
			c := loan.Comparison
			fmt.Printf("Loan %s:\n", loan.Name)
			_, _ = p.Printf("  original plan:   %d months, %.2f interest\n",
				c.Baseline.Months, c.Baseline.TotalInterest)
			_, _ = p.Printf("  with overpayment: %d months, %.2f interest\n",
				c.WithOverpayment.Months, c.WithOverpayment.TotalInterest)
			_, _ = p.Printf("  saved: %d months, %.2f interest\n",
				c.MonthsSaved, c.InterestSaved)
			if !c.Baseline.Converged() {
				fmt.Printf("  warning: payment does not cover interest; results capped\n")
			}
		}
	}

	if len(result.Insights.Patterns) > 0 {
		fmt.Printf("\n--- Spending patterns ---\n")
		fmt.Printf("Pattern        | Count | Total          | Saving potential\n")
		fmt.Printf("_______        | _____ | _____          | ________________\n")
		for _, pattern := range result.Insights.Patterns {
			fmt.Printf("%-14s | %5d | %14s | %s\n",
				pattern.Name, pattern.Count,
				format.Currency(pattern.Total), format.Currency(pattern.SavingPotential))
		}
	}

	if len(result.Insights.CategoryBreakdown) > 0 {
		fmt.Printf("\n--- Category breakdown ---\n")
		for _, category := range result.Insights.CategoryBreakdown {
			_, _ = p.Printf("%-20s %14s (%.1f%%)\n",
				category.Category, format.Currency(category.Total), category.Percentage)
		}
	}

	if len(result.Insights.LargePurchases) > 0 {
		fmt.Printf("\n--- Large purchases ---\n")
		for _, purchase := range result.Insights.LargePurchases {
			fmt.Printf("%s | %14s | %s\n",
				purchase.Date, format.Currency(purchase.Amount), purchase.Description)
		}
	}

	if len(result.MonthlySpend) > 0 {
		fmt.Printf("\n--- Monthly spend ---\n")
		for i, month := range result.MonthlySpend {
			change := ""
			if delta, ok := monthOverMonth(result.MonthlySpend, i); ok {
				change = fmt.Sprintf(" (%+.2f vs previous month)", delta)
			}
			fmt.Printf("%s | %14s%s\n", month.Month, format.Currency(month.Total), change)
		}
	}
}

// monthOverMonth returns the spend change relative to the preceding entry.
// Entries that are not calendar-adjacent report no change; a gap month means
// the delta would compare against stale data.
func monthOverMonth(spend []insights.MonthTotal, i int) (float64, bool) {
	if i == 0 {
		return 0, false
	}
	previous, err := datetime.OffsetMonth(spend[i].Month, -1)
	if err != nil || previous != spend[i-1].Month {
		return 0, false
	}
	return spend[i].Total - spend[i-1].Total, true
}

// CsvFormat outputs the report in comma-separated value format, one metric
// per row.
func CsvFormat(result *report.Report) {
	fmt.Printf("\"section\",\"name\",\"metric\",\"value\"\n")

	for _, step := range result.BabySteps {
		printRow("babystep", step.ID, "progress_percent", fmt.Sprintf("%d", step.ProgressPercent))
		printRow("babystep", step.ID, "current_amount", fmt.Sprintf("%.2f", step.CurrentAmount))
		printRow("babystep", step.ID, "target_amount", fmt.Sprintf("%.2f", step.TargetAmount))
	}

	for _, loan := range result.Loans {
		c := loan.Comparison
		printRow("loan", loan.Name, "baseline_months", fmt.Sprintf("%d", c.Baseline.Months))
		printRow("loan", loan.Name, "baseline_interest", fmt.Sprintf("%.2f", c.Baseline.TotalInterest))
		printRow("loan", loan.Name, "overpayment_months", fmt.Sprintf("%d", c.WithOverpayment.Months))
		printRow("loan", loan.Name, "overpayment_interest", fmt.Sprintf("%.2f", c.WithOverpayment.TotalInterest))
		printRow("loan", loan.Name, "months_saved", fmt.Sprintf("%d", c.MonthsSaved))
		printRow("loan", loan.Name, "interest_saved", fmt.Sprintf("%.2f", c.InterestSaved))
	}

	for _, pattern := range result.Insights.Patterns {
		printRow("pattern", pattern.Name, "count", fmt.Sprintf("%d", pattern.Count))
		printRow("pattern", pattern.Name, "total", fmt.Sprintf("%.2f", pattern.Total))
		printRow("pattern", pattern.Name, "saving_potential", fmt.Sprintf("%.2f", pattern.SavingPotential))
	}

	for _, category := range result.Insights.CategoryBreakdown {
		printRow("category", category.Category, "total", fmt.Sprintf("%.2f", category.Total))
		printRow("category", category.Category, "percentage", fmt.Sprintf("%.2f", category.Percentage))
	}

	for _, purchase := range result.Insights.LargePurchases {
		printRow("large_purchase", purchase.Description, purchase.Date, fmt.Sprintf("%.2f", purchase.Amount))
	}

	for i, month := range result.MonthlySpend {
		printRow("monthly_spend", month.Month, "total", fmt.Sprintf("%.2f", month.Total))
		if delta, ok := monthOverMonth(result.MonthlySpend, i); ok {
			printRow("monthly_spend", month.Month, "change", fmt.Sprintf("%.2f", delta))
		}
	}
}

func printRow(section, name, metric, value string) {
	fmt.Printf("\"%s\",\"%s\",\"%s\",\"%s\"\n", section, name, metric, value)
}
