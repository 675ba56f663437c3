package insights

// Transaction is a single bank-sync transaction as exported by the backend.
// Expenses carry negative amounts. Transactions are read-only inputs; the
// detector never mutates them.
type Transaction struct {
	Amount       float64 `json:"amount"`
	MerchantName string  `json:"merchantName,omitempty"`
	Description  string  `json:"descriptionDisplay"`
	Date         string  `json:"date"`
	Category     string  `json:"category,omitempty"`
	AICategory   string  `json:"aiCategory,omitempty"`
	AIConfidence float64 `json:"aiConfidence,omitempty"`
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// Merchant returns the merchant name, falling back to the display
// description when the bank sync did not resolve a merchant.
func (t Transaction) Merchant() string {
	if t.MerchantName != "" {
		return t.MerchantName
	}
	return t.Description
}
