// Package report assembles the full financial report: baby-step milestone
// progress, loan overpayment comparisons, and spending insights.
package report

import (
	"fmt"

	"github.com/elcukro/home-budget-sub004/internal/config"
	"github.com/elcukro/home-budget-sub004/pkg/babysteps"
	"github.com/elcukro/home-budget-sub004/pkg/insights"
	"github.com/elcukro/home-budget-sub004/pkg/loans"
	"go.uber.org/zap"
)

// LoanReport holds one loan's overpayment comparison.
type LoanReport struct {
	Name       string           `json:"name"`
	Comparison loans.Comparison `json:"comparison"`
}

// Report holds all information computed for one configuration.
type Report struct {
	BabySteps       []babysteps.Progress  `json:"babySteps"`
	Loans           []LoanReport          `json:"loans"`
	Insights        insights.Report       `json:"insights"`
	MonthlySpend    []insights.MonthTotal `json:"monthlySpend"`
	MonthlyExpenses float64               `json:"monthlyExpenses"`
}

// Generate computes the full report from the configuration and the loaded
// transactions. Transactions may be nil when no export is configured; the
// insights section is then empty.
func Generate(logger *zap.Logger, conf config.Configuration, transactions []insights.Transaction) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	monthlyExpenses := conf.Balances.MonthlyExpenses
	if monthlyExpenses <= 0 && len(transactions) > 0 {
		monthlyExpenses = insights.AverageMonthlyExpenses(transactions)
		logger.Debug(fmt.Sprintf("derived monthly expenses %.2f from %d transactions",
			monthlyExpenses, len(transactions)),
			zap.String("op", "report.Generate"),
		)
	}

	balances := babysteps.Balances{
		Savings:           conf.Balances.Savings,
		MonthlyExpenses:   monthlyExpenses,
		DebtRemaining:     conf.Balances.DebtRemaining,
		DebtPrincipal:     conf.Balances.DebtPrincipal,
		MortgageRemaining: conf.Balances.MortgageRemaining,
		MortgagePrincipal: conf.Balances.MortgagePrincipal,
	}

	result := &Report{
		BabySteps:       babysteps.EvaluateSteps(balances),
		MonthlyExpenses: monthlyExpenses,
	}

	simulator := loans.NewSimulator(logger)
	for _, loan := range conf.Loans {
		comparison := simulator.Compare(loan.Name, loan.LoanState(), loan.OverpaymentPlan())
		logger.Debug(fmt.Sprintf("loan %s: %d months baseline, %d months with overpayment",
			loan.Name, comparison.Baseline.Months, comparison.WithOverpayment.Months),
			zap.String("op", "report.Generate"),
		)
		result.Loans = append(result.Loans, LoanReport{
			Name:       loan.Name,
			Comparison: comparison,
		})
	}

	if len(transactions) > 0 {
		result.Insights = insights.DetectPatterns(transactions)
		result.MonthlySpend = insights.MonthlySpend(transactions)
		logger.Debug(fmt.Sprintf("detected %d spending patterns and %d large purchases",
			len(result.Insights.Patterns), len(result.Insights.LargePurchases)),
			zap.String("op", "report.Generate"),
		)
	}

	return result, nil
}
