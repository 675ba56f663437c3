package config

import (
	"github.com/elcukro/home-budget-sub004/pkg/loans"
)

// Loan holds one loan's configuration, including its optional overpayment
// plan.
type Loan struct {
	Name               string
	RemainingBalance   float64
	AnnualInterestRate float64
	MonthlyPayment     float64
	ExtraMonthly       float64 `yaml:"extraMonthly,omitempty"`
	OneTimePayment     float64 `yaml:"oneTimePayment,omitempty"`
}

// LoanState converts the config entry to the calculator's loan input.
func (l Loan) LoanState() loans.Loan {
	return loans.Loan{
		RemainingBalance:   l.RemainingBalance,
		AnnualInterestRate: l.AnnualInterestRate,
		MonthlyPayment:     l.MonthlyPayment,
	}
}

// OverpaymentPlan converts the config entry's overpayment fields to the
// calculator's plan input.
func (l Loan) OverpaymentPlan() loans.OverpaymentPlan {
	return loans.OverpaymentPlan{
		ExtraMonthly:   l.ExtraMonthly,
		OneTimePayment: l.OneTimePayment,
	}
}

// HasOverpayment reports whether the loan declares any overpayment at all.
func (l Loan) HasOverpayment() bool {
	return l.ExtraMonthly > 0 || l.OneTimePayment > 0
}
