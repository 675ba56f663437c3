// Package babysteps computes progress toward sequential personal-finance
// milestones. Each milestone is an independent pure calculation over the
// caller's current balances; no state is shared between steps.
package babysteps

import (
	"github.com/elcukro/home-budget-sub004/pkg/constants"
	"github.com/elcukro/home-budget-sub004/pkg/mathutil"
)

// Step identifiers, in methodology order.
const (
	StepStarterEmergencyFund = "starter-emergency-fund"
	StepDebtFree             = "debt-free"
	StepFullEmergencyFund    = "full-emergency-fund"
	StepMortgageFree         = "mortgage-free"
)

// Progress describes the state of one milestone.
type Progress struct {
	ID              string  `json:"id"`
	ProgressPercent int     `json:"progressPercent"`
	TargetAmount    float64 `json:"targetAmount"`
	CurrentAmount   float64 `json:"currentAmount"`
	Completed       bool    `json:"isCompleted"`
}

// Balances holds the externally-fetched figures the milestones are computed
// from. The calculators do not own or cache these; callers re-invoke with
// fresh balances whenever they refresh.
type Balances struct {
	Savings           float64 `json:"savings"`
	MonthlyExpenses   float64 `json:"monthlyExpenses"`
	DebtRemaining     float64 `json:"debtRemaining"`
	DebtPrincipal     float64 `json:"debtPrincipal"`
	MortgageRemaining float64 `json:"mortgageRemaining"`
	MortgagePrincipal float64 `json:"mortgagePrincipal"`
}

// FundProgress returns the percentage of a savings target reached. A target
// of zero or less counts as reached.
func FundProgress(currentSavings, targetAmount float64) int {
	if targetAmount <= 0 {
		return 100
	}
	return mathutil.ClampPercent(mathutil.CalculatePercentage(currentSavings, targetAmount))
}

// DebtProgress returns the percentage of consumer debt paid off. No debt at
// all counts as fully done.
func DebtProgress(remainingDebt, totalPrincipal float64) int {
	if totalPrincipal <= 0 {
		return 100
	}
	return mathutil.ClampPercent((1 - remainingDebt/totalPrincipal) * constants.PercentageMultiplier)
}

// EmergencyFundProgress returns the percentage of the emergency fund target,
// where the target is monthsTarget months of expenses.
func EmergencyFundProgress(currentSavings, monthlyExpenses float64, monthsTarget int) int {
	return FundProgress(currentSavings, monthlyExpenses*float64(monthsTarget))
}

// MortgageProgress returns the percentage of the mortgage paid off. Unlike
// DebtProgress, a zero principal reports 0 rather than 100: having no
// mortgage is a distinct state from having paid one off.
func MortgageProgress(remainingBalance, principal float64) int {
	if principal <= 0 {
		return 0
	}
	return mathutil.ClampPercent((1 - remainingBalance/principal) * constants.PercentageMultiplier)
}

// EvaluateSteps computes every milestone from the given balances, in
// methodology order. Steps are independent; none is derived from another.
func EvaluateSteps(b Balances) []Progress {
	starterTarget := constants.StarterEmergencyFundTarget
	fullTarget := b.MonthlyExpenses * constants.FullEmergencyFundMonths

	steps := []Progress{
		{
			ID:              StepStarterEmergencyFund,
			ProgressPercent: FundProgress(b.Savings, starterTarget),
			TargetAmount:    starterTarget,
			CurrentAmount:   b.Savings,
		},
		{
			ID:              StepDebtFree,
			ProgressPercent: DebtProgress(b.DebtRemaining, b.DebtPrincipal),
			TargetAmount:    b.DebtPrincipal,
			CurrentAmount:   b.DebtPrincipal - b.DebtRemaining,
		},
		{
			ID:              StepFullEmergencyFund,
			ProgressPercent: EmergencyFundProgress(b.Savings, b.MonthlyExpenses, constants.FullEmergencyFundMonths),
			TargetAmount:    fullTarget,
			CurrentAmount:   b.Savings,
		},
		{
			ID:              StepMortgageFree,
			ProgressPercent: MortgageProgress(b.MortgageRemaining, b.MortgagePrincipal),
			TargetAmount:    b.MortgagePrincipal,
			CurrentAmount:   b.MortgagePrincipal - b.MortgageRemaining,
		},
	}

	for i := range steps {
		steps[i].Completed = steps[i].ProgressPercent >= 100
	}
	return steps
}
