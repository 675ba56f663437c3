// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/elcukro/home-budget-sub004/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for home-budget.
type Configuration struct {
	Balances     Balances
	Loans        []Loan
	Transactions TransactionsConfig `yaml:"transactions,omitempty"`
	Logging      LoggingConfig      `yaml:"logging,omitempty"`
	Output       OutputConfig       `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Balances holds the externally-fetched account figures the milestone
// calculations run against.
type Balances struct {
	Savings           float64
	MonthlyExpenses   float64
	DebtRemaining     float64
	DebtPrincipal     float64
	MortgageRemaining float64
	MortgagePrincipal float64
}

// TransactionsConfig points at a bank-sync transaction export.
type TransactionsConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Degenerate numeric inputs are never errors; the
// calculators handle them by policy.
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.ValidateBalances(validation.BalanceInfo{
		Savings:           c.Balances.Savings,
		MonthlyExpenses:   c.Balances.MonthlyExpenses,
		DebtRemaining:     c.Balances.DebtRemaining,
		DebtPrincipal:     c.Balances.DebtPrincipal,
		MortgageRemaining: c.Balances.MortgageRemaining,
		MortgagePrincipal: c.Balances.MortgagePrincipal,
	})

	for _, loan := range c.Loans {
		warnings = append(warnings, validation.ValidateLoan(validation.LoanInfo{
			Name:               loan.Name,
			RemainingBalance:   loan.RemainingBalance,
			AnnualInterestRate: loan.AnnualInterestRate,
			MonthlyPayment:     loan.MonthlyPayment,
			ExtraMonthly:       loan.ExtraMonthly,
			OneTimePayment:     loan.OneTimePayment,
		})...)
	}

	return warnings
}
