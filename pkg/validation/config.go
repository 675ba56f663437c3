// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/elcukro/home-budget-sub004/pkg/constants"
	"github.com/elcukro/home-budget-sub004/pkg/loans"
)

// LoanInfo carries the loan fields needed for validation warnings.
type LoanInfo struct {
	Name               string
	RemainingBalance   float64
	AnnualInterestRate float64
	MonthlyPayment     float64
	ExtraMonthly       float64
	OneTimePayment     float64
}

// BalanceInfo carries the balance fields needed for validation warnings.
type BalanceInfo struct {
	Savings           float64
	MonthlyExpenses   float64
	DebtRemaining     float64
	DebtPrincipal     float64
	MortgageRemaining float64
	MortgagePrincipal float64
}

// ValidateLoan returns warnings for loan parameters that will produce
// degenerate or surprising simulation results. None of these are errors;
// the simulator handles them by policy.
func ValidateLoan(loan LoanInfo) []string {
	var warnings []string

	if loan.RemainingBalance < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative remaining balance (%.2f)",
			loan.Name, loan.RemainingBalance))
	}
	if loan.AnnualInterestRate < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative interest rate (%.2f)",
			loan.Name, loan.AnnualInterestRate))
	}
	if loan.AnnualInterestRate > constants.MaxAnnualInterestRate {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has an interest rate above %.0f%% (%.2f)",
			loan.Name, constants.MaxAnnualInterestRate, loan.AnnualInterestRate))
	}
	if loan.MonthlyPayment <= 0 && loan.RemainingBalance > 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has no monthly payment - simulation will be a no-op",
			loan.Name))
	}
	if loan.OneTimePayment > loan.RemainingBalance && loan.RemainingBalance > 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' one-time payment (%.2f) exceeds remaining balance (%.2f) and will be capped",
			loan.Name, loan.OneTimePayment, loan.RemainingBalance))
	}

	if loan.RemainingBalance > 0 && loan.MonthlyPayment > 0 {
		payment := loan.MonthlyPayment + loan.ExtraMonthly
		interest := loans.CalculateInterestPayment(loan.RemainingBalance, loan.AnnualInterestRate)
		horizonPayment := loans.CalculateMonthlyPayment(loan.RemainingBalance, loan.AnnualInterestRate, constants.MaxSimulationMonths)
		if payment <= interest {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' payment (%.2f) does not cover monthly interest (%.2f) - loan will never amortize",
				loan.Name, payment, interest))
		} else if payment < horizonPayment {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' payment (%.2f) is below the %.2f needed to pay off within %d months - simulation will be capped",
				loan.Name, payment, horizonPayment, constants.MaxSimulationMonths))
		}
	}

	return warnings
}

// ValidateBalances returns warnings for balance figures that make milestone
// progress degenerate.
func ValidateBalances(b BalanceInfo) []string {
	var warnings []string

	if b.Savings < 0 {
		warnings = append(warnings, fmt.Sprintf("Savings balance is negative (%.2f)", b.Savings))
	}
	if b.MonthlyExpenses <= 0 {
		warnings = append(warnings, "Monthly expenses are not set - emergency fund targets will fall back to transaction history")
	}
	if b.DebtRemaining > b.DebtPrincipal {
		warnings = append(warnings, fmt.Sprintf("Remaining debt (%.2f) exceeds debt principal (%.2f)",
			b.DebtRemaining, b.DebtPrincipal))
	}
	if b.MortgageRemaining > b.MortgagePrincipal {
		warnings = append(warnings, fmt.Sprintf("Remaining mortgage (%.2f) exceeds mortgage principal (%.2f)",
			b.MortgageRemaining, b.MortgagePrincipal))
	}

	return warnings
}
