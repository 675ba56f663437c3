package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elcukro/home-budget-sub004/pkg/insights"
)

// LoadTransactions reads a bank-sync transaction export (a JSON array of
// transaction records) from disk. An empty path returns no transactions and
// no error.
func LoadTransactions(path string) ([]insights.Transaction, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions file %s: %w", path, err)
	}

	var transactions []insights.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse transactions file %s: %w", path, err)
	}

	return transactions, nil
}
