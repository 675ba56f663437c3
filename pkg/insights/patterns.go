// Package insights detects recurring discretionary spending patterns in
// bank-sync transactions. All detection is a pure single pass over the
// caller's transaction slice; results are recomputed on every call and
// never stored.
package insights

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/elcukro/home-budget-sub004/pkg/constants"
	"github.com/elcukro/home-budget-sub004/pkg/mathutil"
)

// Pattern is one detected recurring spend category.
type Pattern struct {
	Name            string  `json:"name"`
	Count           int     `json:"count"`
	Total           float64 `json:"total"`
	SavingPotential float64 `json:"savingPotential"`
}

// CategorySpend is one entry of the category breakdown.
type CategorySpend struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// LargePurchase flags a single expense above the large-purchase threshold.
type LargePurchase struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// Report is the full output of pattern detection.
type Report struct {
	Patterns          []Pattern       `json:"patterns"`
	CategoryBreakdown []CategorySpend `json:"categoryBreakdown"`
	LargePurchases    []LargePurchase `json:"largePurchases"`
}

// patternCategory pairs a keyword set with its reporting threshold and the
// assumed avoidable fraction of its spend. Keywords are bilingual
// (Polish/English) lowercase substrings matched against normalized merchant
// keys. Thresholds exist to avoid flagging one-off purchases as patterns;
// the fractions are heuristics, not computed optima.
type patternCategory struct {
	name           string
	keywords       []string
	minCount       int
	savingFraction float64
}

var patternCategories = []patternCategory{
	{
		name: "coffee",
		keywords: []string{
			"coffee", "kawa", "kawiarnia", "cafe", "espresso",
			"starbucks", "costa", "green caffe",
		},
		minCount:       constants.CoffeeMinCount,
		savingFraction: constants.CoffeeSavingFraction,
	},
	{
		name: "food-delivery",
		keywords: []string{
			"delivery", "dostawa", "pyszne", "glovo", "uber eats",
			"ubereats", "wolt", "bolt food",
		},
		minCount:       constants.DeliveryMinCount,
		savingFraction: constants.DeliverySavingFraction,
	},
	{
		name: "restaurants",
		keywords: []string{
			"restaurant", "restauracja", "bistro", "pizzeria", "pizza",
			"sushi", "kebab", "bar mleczny", "mcdonald", "kfc", "burger",
		},
		minCount:       constants.RestaurantMinCount,
		savingFraction: constants.RestaurantSavingFraction,
	},
}

// merchantGroup accumulates spend for one normalized merchant key.
type merchantGroup struct {
	key   string
	count int
	total float64
}

// NormalizeMerchantKey lowercases the merchant name, strips digits, and
// trims whitespace so that "Starbucks 4521" and "starbucks 7733" group
// together.
func NormalizeMerchantKey(merchant string) string {
	lowered := strings.ToLower(merchant)
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, lowered)
	return strings.TrimSpace(stripped)
}

// DetectPatterns runs the full pattern detection over the transaction list.
func DetectPatterns(transactions []Transaction) Report {
	groups := groupByMerchant(transactions)

	report := Report{
		Patterns:          detectKeywordPatterns(groups),
		CategoryBreakdown: categoryBreakdown(transactions),
		LargePurchases:    largePurchases(transactions),
	}
	return report
}

// groupByMerchant buckets expense transactions by normalized merchant key,
// preserving insertion order.
func groupByMerchant(transactions []Transaction) []*merchantGroup {
	index := make(map[string]*merchantGroup)
	var ordered []*merchantGroup

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		key := NormalizeMerchantKey(t.Merchant())
		group, exists := index[key]
		if !exists {
			group = &merchantGroup{key: key}
			index[key] = group
			ordered = append(ordered, group)
		}
		group.count++
		group.total += math.Abs(t.Amount)
	}

	return ordered
}

// detectKeywordPatterns sums the merchant groups matching each keyword set
// and emits a pattern when the category's minimum count is met.
func detectKeywordPatterns(groups []*merchantGroup) []Pattern {
	var patterns []Pattern

	for _, category := range patternCategories {
		count := 0
		total := 0.0
		for _, group := range groups {
			if matchesAny(group.key, category.keywords) {
				count += group.count
				total += group.total
			}
		}
		if count < category.minCount {
			continue
		}
		patterns = append(patterns, Pattern{
			Name:            category.name,
			Count:           count,
			Total:           total,
			SavingPotential: mathutil.RoundWhole(category.savingFraction * total),
		})
	}

	return patterns
}

func matchesAny(key string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// categoryBreakdown aggregates expense totals per category and returns the
// top entries by total, descending. Category precedence per transaction is
// the AI-suggested category when confident, then the mapped category, then
// "other".
func categoryBreakdown(transactions []Transaction) []CategorySpend {
	index := make(map[string]*CategorySpend)
	var ordered []*CategorySpend
	totalSpent := 0.0

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		amount := math.Abs(t.Amount)
		totalSpent += amount

		category := resolveCategory(t)
		entry, exists := index[category]
		if !exists {
			entry = &CategorySpend{Category: category}
			index[category] = entry
			ordered = append(ordered, entry)
		}
		entry.Total += amount
	}

	for _, entry := range ordered {
		entry.Percentage = mathutil.CalculatePercentage(entry.Total, totalSpent)
	}

	// Stable sort keeps insertion order for equal totals.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Total > ordered[j].Total
	})

	if len(ordered) > constants.CategoryBreakdownLimit {
		ordered = ordered[:constants.CategoryBreakdownLimit]
	}

	breakdown := make([]CategorySpend, len(ordered))
	for i, entry := range ordered {
		breakdown[i] = *entry
	}
	return breakdown
}

func resolveCategory(t Transaction) string {
	if t.AICategory != "" && t.AIConfidence > constants.AIConfidenceThreshold {
		return t.AICategory
	}
	if t.Category != "" {
		return t.Category
	}
	return "other"
}

// largePurchases flags every expense whose absolute amount exceeds the
// large-purchase threshold.
func largePurchases(transactions []Transaction) []LargePurchase {
	var purchases []LargePurchase
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		amount := math.Abs(t.Amount)
		if amount <= constants.LargePurchaseThreshold {
			continue
		}
		purchases = append(purchases, LargePurchase{
			Description: t.Description,
			Amount:      amount,
			Date:        t.Date,
		})
	}
	return purchases
}
