package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrInvalidRange = errors.New("invalid weight range")

// Range is a half-open weight interval [From, To).
type Range struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// IsInRange reports whether value lies within the half-open range.
func IsInRange(value float64, r Range) bool {
	return value >= r.From && value < r.To
}

func overlaps(a, b Range) bool {
	return a.From < b.To && b.From < a.To
}

// CheckRanges validates a set of weight ranges: each must be non-empty and no
// two may share any point. Touching ranges such as [0,5) and [5,10) are valid.
func CheckRanges(ranges []Range) error {
	for i, r := range ranges {
		if r.From < 0 || r.To <= r.From {
			return fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, r.From, r.To)
		}
		for j := i + 1; j < len(ranges); j++ {
			if overlaps(r, ranges[j]) {
				return fmt.Errorf("%w: [%g, %g) overlaps [%g, %g)", ErrInvalidRange, r.From, r.To, ranges[j].From, ranges[j].To)
			}
		}
	}
	return nil
}

// RatesTable is a legacy per-country shipping rates configuration.
type RatesTable map[string][]RangePrice

type RangePrice struct {
	Range
	Price decimal.Decimal `json:"price"`
}

// Validate checks the ranges of every country and sorts them by lower bound.
func (t RatesTable) Validate() error {
	countries := make([]string, 0, len(t))
	for country := range t {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	for _, country := range countries {
		rows := t[country]
		ranges := make([]Range, len(rows))
		for i, row := range rows {
			if row.Price.IsNegative() {
				return fmt.Errorf("%s: %w: negative price %s", country, ErrInvalidRange, row.Price)
			}
			ranges[i] = row.Range
		}
		if err := CheckRanges(ranges); err != nil {
			return fmt.Errorf("%s: %w", country, err)
		}
		sort.Slice(rows, func(a, b int) bool { return rows[a].From < rows[b].From })
	}
	return nil
}

// PriceFor returns the price of the range containing weight.
func (t RatesTable) PriceFor(country string, weight float64) (decimal.Decimal, bool) {
	for _, row := range t[country] {
		if IsInRange(weight, row.Range) {
			return row.Price, true
		}
	}
	return decimal.Zero, false
}
