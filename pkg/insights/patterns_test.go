package insights

import (
	"math"
	"testing"
)

func expense(merchant string, amount float64) Transaction {
	return Transaction{
		Amount:       -math.Abs(amount),
		MerchantName: merchant,
		Description:  merchant,
		Date:         "2025-06-15",
	}
}

func TestNormalizeMerchantKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Strips digits", "Starbucks 4521", "starbucks"},
		{"Lowercases", "STARBUCKS", "starbucks"},
		{"Trims whitespace", "  Costa Coffee  ", "costa coffee"},
		{"Digits inside word", "Zabka Z1234 K1", "zabka z k"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeMerchantKey(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeMerchantKey(%q) = %q, expected %q",
					tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeMerchantKeyGroupsBranches(t *testing.T) {
	first := NormalizeMerchantKey("Starbucks 1234")
	second := NormalizeMerchantKey("starbucks 5678")
	if first != second {
		t.Errorf("expected branch transactions to share a key, got %q and %q", first, second)
	}
}

func TestDetectPatternsCoffeeThreshold(t *testing.T) {
	// Two coffee purchases are below the threshold of three.
	below := []Transaction{
		expense("Starbucks 1234", 15),
		expense("Costa Coffee", 12),
	}
	report := DetectPatterns(below)
	for _, pattern := range report.Patterns {
		if pattern.Name == "coffee" {
			t.Fatalf("expected no coffee pattern for 2 transactions, got %+v", pattern)
		}
	}

	// A third purchase crosses it.
	atThreshold := append(below, expense("Starbucks 5678", 13))
	report = DetectPatterns(atThreshold)

	var coffee *Pattern
	for i := range report.Patterns {
		if report.Patterns[i].Name == "coffee" {
			coffee = &report.Patterns[i]
		}
	}
	if coffee == nil {
		t.Fatalf("expected a coffee pattern for 3 transactions")
	}
	if coffee.Count != 3 {
		t.Errorf("expected count 3, got %d", coffee.Count)
	}
	if math.Abs(coffee.Total-40) > 0.01 {
		t.Errorf("expected total 40, got %.2f", coffee.Total)
	}
	// savingPotential = round(0.7 * total)
	if coffee.SavingPotential != 28 {
		t.Errorf("expected saving potential 28, got %.2f", coffee.SavingPotential)
	}
}

func TestDetectPatternsSavingPotentialRounding(t *testing.T) {
	report := DetectPatterns([]Transaction{
		expense("Kawiarnia Lokalna", 12.5),
		expense("Kawiarnia Lokalna", 13),
		expense("Espresso House", 10),
	})

	if len(report.Patterns) != 1 {
		t.Fatalf("expected exactly one pattern, got %d", len(report.Patterns))
	}
	// 0.7 * 35.5 = 24.85 rounds to 25.
	if report.Patterns[0].SavingPotential != 25 {
		t.Errorf("expected saving potential 25, got %.2f", report.Patterns[0].SavingPotential)
	}
}

func TestDetectPatternsDeliveryAndRestaurants(t *testing.T) {
	report := DetectPatterns([]Transaction{
		expense("Pyszne.pl 99887", 45),
		expense("Glovo", 38),
		expense("Restauracja Pod Aniolami", 120),
		expense("Pizzeria Napoli 2", 60),
	})

	found := make(map[string]Pattern)
	for _, pattern := range report.Patterns {
		found[pattern.Name] = pattern
	}

	delivery, exists := found["food-delivery"]
	if !exists {
		t.Fatalf("expected a food-delivery pattern")
	}
	if delivery.Count != 2 || math.Abs(delivery.Total-83) > 0.01 {
		t.Errorf("unexpected delivery pattern: %+v", delivery)
	}
	// round(0.6 * 83) = 50
	if delivery.SavingPotential != 50 {
		t.Errorf("expected delivery saving potential 50, got %.2f", delivery.SavingPotential)
	}

	restaurants, exists := found["restaurants"]
	if !exists {
		t.Fatalf("expected a restaurants pattern")
	}
	// round(0.5 * 180) = 90
	if restaurants.SavingPotential != 90 {
		t.Errorf("expected restaurants saving potential 90, got %.2f", restaurants.SavingPotential)
	}
}

func TestDetectPatternsIgnoresIncome(t *testing.T) {
	report := DetectPatterns([]Transaction{
		{Amount: 5000, Description: "Salary", Date: "2025-06-01"},
		{Amount: 15, Description: "Starbucks refund", Date: "2025-06-02"},
		expense("Starbucks 1", 10),
		expense("Starbucks 2", 10),
	})

	for _, pattern := range report.Patterns {
		if pattern.Name == "coffee" {
			t.Errorf("expected refunds and income to be excluded, got %+v", pattern)
		}
	}
	if len(report.LargePurchases) != 0 {
		t.Errorf("expected no large purchases, got %d", len(report.LargePurchases))
	}
}

func TestDetectPatternsFallsBackToDescription(t *testing.T) {
	transactions := []Transaction{
		{Amount: -12, Description: "STARBUCKS 4412 WARSZAWA", Date: "2025-06-01"},
		{Amount: -14, Description: "starbucks 9981 KRAKOW", Date: "2025-06-02"},
		{Amount: -11, Description: "Starbucks 0013", Date: "2025-06-03"},
	}

	report := DetectPatterns(transactions)
	if len(report.Patterns) != 1 || report.Patterns[0].Name != "coffee" {
		t.Fatalf("expected description fallback to produce a coffee pattern, got %+v", report.Patterns)
	}
	if report.Patterns[0].Count != 3 {
		t.Errorf("expected count 3, got %d", report.Patterns[0].Count)
	}
}

func TestLargePurchases(t *testing.T) {
	report := DetectPatterns([]Transaction{
		expense("MediaMarkt", 350),
		expense("Biedronka", 300), // exactly at threshold is not flagged
		expense("Zabka", 299.99),
		expense("IKEA", 1200),
	})

	if len(report.LargePurchases) != 2 {
		t.Fatalf("expected 2 large purchases, got %d", len(report.LargePurchases))
	}
	if report.LargePurchases[0].Amount != 350 {
		t.Errorf("expected first large purchase of 350, got %.2f", report.LargePurchases[0].Amount)
	}
	if report.LargePurchases[1].Amount != 1200 {
		t.Errorf("expected second large purchase of 1200, got %.2f", report.LargePurchases[1].Amount)
	}
}

func TestCategoryBreakdownPrecedence(t *testing.T) {
	transactions := []Transaction{
		{Amount: -100, Description: "a", Date: "2025-06-01", Category: "groceries", AICategory: "dining", AIConfidence: 0.9},
		{Amount: -100, Description: "b", Date: "2025-06-02", Category: "groceries", AICategory: "dining", AIConfidence: 0.4},
		{Amount: -100, Description: "c", Date: "2025-06-03"},
	}

	report := DetectPatterns(transactions)
	totals := make(map[string]float64)
	for _, category := range report.CategoryBreakdown {
		totals[category.Category] = category.Total
	}

	if totals["dining"] != 100 {
		t.Errorf("expected confident AI category to win, got %v", totals)
	}
	if totals["groceries"] != 100 {
		t.Errorf("expected low-confidence AI suggestion to fall back to mapped category, got %v", totals)
	}
	if totals["other"] != 100 {
		t.Errorf("expected uncategorized expense to fall back to other, got %v", totals)
	}
}

func TestCategoryBreakdownPercentages(t *testing.T) {
	transactions := []Transaction{
		{Amount: -300, Description: "a", Date: "2025-06-01", Category: "housing"},
		{Amount: -100, Description: "b", Date: "2025-06-02", Category: "groceries"},
		{Amount: -100, Description: "c", Date: "2025-06-03", Category: "transport"},
	}

	report := DetectPatterns(transactions)
	if len(report.CategoryBreakdown) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(report.CategoryBreakdown))
	}

	if report.CategoryBreakdown[0].Category != "housing" {
		t.Errorf("expected housing first by total, got %s", report.CategoryBreakdown[0].Category)
	}
	if math.Abs(report.CategoryBreakdown[0].Percentage-60) > 0.001 {
		t.Errorf("expected housing at 60%%, got %.2f", report.CategoryBreakdown[0].Percentage)
	}

	sum := 0.0
	for _, category := range report.CategoryBreakdown {
		sum += category.Percentage
	}
	if math.Abs(sum-100) > 0.001 {
		t.Errorf("expected untruncated percentages to sum to 100, got %.2f", sum)
	}
}

func TestCategoryBreakdownTruncation(t *testing.T) {
	categories := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var transactions []Transaction
	for i, category := range categories {
		transactions = append(transactions, Transaction{
			Amount:      -float64(100 * (len(categories) - i)),
			Description: category,
			Date:        "2025-06-01",
			Category:    category,
		})
	}

	report := DetectPatterns(transactions)
	if len(report.CategoryBreakdown) != 6 {
		t.Fatalf("expected breakdown truncated to 6, got %d", len(report.CategoryBreakdown))
	}
	if report.CategoryBreakdown[0].Category != "a" {
		t.Errorf("expected largest category first, got %s", report.CategoryBreakdown[0].Category)
	}

	sum := 0.0
	for _, category := range report.CategoryBreakdown {
		sum += category.Percentage
	}
	if sum > 100.001 {
		t.Errorf("expected truncated percentages to sum to at most 100, got %.2f", sum)
	}
}

func TestDetectPatternsEmptyInput(t *testing.T) {
	report := DetectPatterns(nil)
	if len(report.Patterns) != 0 || len(report.CategoryBreakdown) != 0 || len(report.LargePurchases) != 0 {
		t.Errorf("expected empty report for no transactions, got %+v", report)
	}
}
