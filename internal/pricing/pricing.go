// Package pricing quotes shipping rates from country pricing rules and their
// weight brackets.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
)

type WeightRule struct {
	MaxWeight *float64
	Price     decimal.Decimal
}

// Rule is an enabled pricing rule of a destination country with its weight
// brackets.
type Rule struct {
	ID           int64
	CountryID    string
	CarrierID    string
	Method       carrier.Method
	FreeShipment decimal.NullDecimal
	WeightRules  []WeightRule
}

// ResolvePrice returns the shipping price of a package. A met free shipping
// threshold wins, then the matching weight bracket, then the carrier default.
func ResolvePrice(rule *Rule, cfg carrier.Config, weight float64, value decimal.Decimal) decimal.Decimal {
	threshold := cfg.FreeShippingLimit
	if rule != nil && rule.FreeShipment.Valid {
		threshold = rule.FreeShipment
	}
	if threshold.Valid && value.GreaterThanOrEqual(threshold.Decimal) {
		return decimal.Zero
	}

	if rule != nil && len(rule.WeightRules) > 0 {
		if price := ResolveWeightedPrice(rule.WeightRules, weight, cfg.MaxWeight); price != nil {
			return *price
		}
	}
	return cfg.DefaultPrice
}

// ResolveWeightedPrice picks the bracket with the smallest max weight that
// still fits weight. A bracket without max weight is capped by globalMaxWeight,
// or unbounded when the carrier has no max weight. It returns nil when no
// bracket fits.
func ResolveWeightedPrice(rules []WeightRule, weight, globalMaxWeight float64) *decimal.Decimal {
	var (
		best    *WeightRule
		bestMax float64
	)
	for i := range rules {
		maxWeight := bracketMax(rules[i].MaxWeight, globalMaxWeight)
		if maxWeight < weight {
			continue
		}
		if best == nil || maxWeight < bestMax {
			best = &rules[i]
			bestMax = maxWeight
		}
	}
	if best == nil {
		return nil
	}
	price := best.Price
	return &price
}

func bracketMax(maxWeight *float64, globalMaxWeight float64) float64 {
	switch {
	case maxWeight != nil:
		return *maxWeight
	case globalMaxWeight > 0:
		return globalMaxWeight
	default:
		return math.Inf(1)
	}
}
