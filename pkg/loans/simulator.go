// Package loans provides pure loan amortization calculations.
package loans

import (
	"fmt"
	"math"

	"github.com/elcukro/home-budget-sub004/pkg/constants"
	"go.uber.org/zap"
)

// Loan holds the current amortization inputs for a single loan. It is
// immutable per simulation call and owned by the caller.
type Loan struct {
	RemainingBalance   float64
	AnnualInterestRate float64 // percent, e.g. 6.0 for 6% APR
	MonthlyPayment     float64
}

// OverpaymentPlan is a hypothetical add-on to a Loan.
type OverpaymentPlan struct {
	ExtraMonthly   float64
	OneTimePayment float64
}

// SimulationResult is the outcome of simulating a loan to payoff or to the
// safety cap.
type SimulationResult struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
}

// Converged reports whether the simulation reached payoff before the safety
// cap. Months == MaxSimulationMonths may indicate a loan whose payment does
// not cover its interest accrual.
func (r SimulationResult) Converged() bool {
	return r.Months < constants.MaxSimulationMonths
}

// Comparison holds a baseline simulation next to an overpayment simulation
// of the same loan, with the savings computed by subtraction.
type Comparison struct {
	Baseline        SimulationResult `json:"baseline"`
	WithOverpayment SimulationResult `json:"withOverpayment"`
	MonthsSaved     int              `json:"monthsSaved"`
	InterestSaved   float64          `json:"interestSaved"`
}

// MonthlyRate converts an annual percentage rate to a monthly fractional rate.
func MonthlyRate(annualInterestRate float64) float64 {
	return annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * MonthlyRate(annualInterestRate)
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := MonthlyRate(annualInterestRate)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// ClampPlan caps a plan's one-time payment at the loan's remaining balance.
func ClampPlan(loan Loan, plan OverpaymentPlan) OverpaymentPlan {
	if plan.OneTimePayment > loan.RemainingBalance {
		plan.OneTimePayment = loan.RemainingBalance
	}
	if plan.OneTimePayment < 0 {
		plan.OneTimePayment = 0
	}
	if plan.ExtraMonthly < 0 {
		plan.ExtraMonthly = 0
	}
	return plan
}

// Simulate runs a month-by-month amortization of the loan with the given
// overpayment plan applied. A loan with no balance or no payment is a no-op.
// When the combined payment does not cover a month's interest the loan never
// amortizes; the simulation stops at the safety cap with the interest
// accumulated so far.
func Simulate(loan Loan, plan OverpaymentPlan) SimulationResult {
	if loan.RemainingBalance <= 0 || loan.MonthlyPayment <= 0 {
		return SimulationResult{}
	}

	monthlyRate := MonthlyRate(loan.AnnualInterestRate)
	payment := loan.MonthlyPayment + plan.ExtraMonthly

	remaining := loan.RemainingBalance - plan.OneTimePayment
	if remaining < 0 {
		remaining = 0
	}

	var result SimulationResult
	for remaining > constants.PayoffEpsilon && result.Months < constants.MaxSimulationMonths {
		interest := remaining * monthlyRate
		result.TotalInterest += interest

		principal := payment - interest
		if principal <= 0 {
			result.Months = constants.MaxSimulationMonths
			break
		}
		if principal > remaining {
			principal = remaining
		}

		remaining -= principal
		result.Months++
	}

	return result
}

// CompareOverpayment simulates the loan twice, once without the plan and once
// with it, and reports the months and interest saved.
func CompareOverpayment(loan Loan, plan OverpaymentPlan) Comparison {
	baseline := Simulate(loan, OverpaymentPlan{})
	overpaid := Simulate(loan, ClampPlan(loan, plan))

	return Comparison{
		Baseline:        baseline,
		WithOverpayment: overpaid,
		MonthsSaved:     baseline.Months - overpaid.Months,
		InterestSaved:   baseline.TotalInterest - overpaid.TotalInterest,
	}
}

// Simulator wraps the pure simulation functions with logging for use by the
// report and server layers.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a new Simulator. If logger is nil, it will use a
// no-op logger to prevent panics.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// Compare runs CompareOverpayment for a named loan, logging plan clamping and
// non-convergence.
func (s *Simulator) Compare(name string, loan Loan, plan OverpaymentPlan) Comparison {
	clamped := ClampPlan(loan, plan)
	if clamped.OneTimePayment != plan.OneTimePayment {
		s.logger.Debug(fmt.Sprintf("capping one-time payment to remaining balance %.2f for loan %s",
			loan.RemainingBalance, name),
			zap.String("op", "loans.Compare"),
			zap.Float64("requested", plan.OneTimePayment),
		)
	}

	comparison := CompareOverpayment(loan, clamped)
	if !comparison.Baseline.Converged() {
		s.logger.Warn(fmt.Sprintf("loan %s does not amortize within %d months", name, constants.MaxSimulationMonths),
			zap.String("op", "loans.Compare"),
			zap.Float64("monthlyPayment", loan.MonthlyPayment),
			zap.Float64("annualInterestRate", loan.AnnualInterestRate),
		)
	}
	return comparison
}
