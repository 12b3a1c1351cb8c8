package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/address"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

var (
	ErrDuplicateCountry    = errors.New("an enabled pricing rule already exists for this country")
	ErrInvalidMaxWeight    = errors.New("invalid weight rule max weight")
	ErrWeightRuleMissing   = errors.New("pricing rule has no weight rules")
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	ErrInvalidPricingRule  = errors.New("invalid pricing rule")
)

// maxWeightPrecision is the number of decimal places max weights are compared at.
const maxWeightPrecision = 4

type WeightRule struct {
	ID        *int64          `json:"id,omitempty"`
	MaxWeight *float64        `json:"max_weight"`
	Price     decimal.Decimal `json:"price"`
}

// PricingRule is a country pricing rule with its weight brackets. A nil ID
// means a new rule.
type PricingRule struct {
	ID           *int64              `json:"id,omitempty"`
	CountryID    string              `json:"country_id"`
	CarrierID    string              `json:"carrier_id"`
	Method       carrier.Method      `json:"method"`
	Enabled      bool                `json:"enabled"`
	FreeShipment decimal.NullDecimal `json:"free_shipment"`
	WeightRules  []WeightRule        `json:"weight_rules"`
}

func (r *PricingRule) validate() error {
	country, err := address.NormalizeCountry(r.CountryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPricingRule, err)
	}
	r.CountryID = country
	if r.CarrierID == "" {
		return fmt.Errorf("%w: carrier is required", ErrInvalidPricingRule)
	}
	if !r.Method.Valid() {
		return fmt.Errorf("%w: unknown method %q", ErrInvalidPricingRule, r.Method)
	}
	if r.FreeShipment.Valid && r.FreeShipment.Decimal.IsNegative() {
		return fmt.Errorf("%w: free shipment threshold must not be negative", ErrInvalidPricingRule)
	}
	if len(r.WeightRules) == 0 {
		return ErrWeightRuleMissing
	}
	for _, wr := range r.WeightRules {
		if wr.Price.IsNegative() {
			return fmt.Errorf("%w: weight rule price must not be negative", ErrInvalidPricingRule)
		}
	}
	return nil
}

// ValidatePricingRuleMaxWeight checks that no two weight rules share a max
// weight after rounding and that none exceeds the carrier's global max
// weight. A rule without max weight stands for globalMaxWeight, or for an
// unbounded bracket when the carrier has no max weight.
func ValidatePricingRuleMaxWeight(rules []WeightRule, globalMaxWeight float64) error {
	seen := make(map[string]struct{}, len(rules))
	for _, wr := range rules {
		if wr.MaxWeight == nil && globalMaxWeight <= 0 {
			if _, ok := seen[unboundedWeightKey]; ok {
				return fmt.Errorf("%w: more than one weight rule without max weight", ErrInvalidMaxWeight)
			}
			seen[unboundedWeightKey] = struct{}{}
			continue
		}
		maxWeight := globalMaxWeight
		if wr.MaxWeight != nil {
			maxWeight = *wr.MaxWeight
			if maxWeight <= 0 {
				return fmt.Errorf("%w: %g must be positive", ErrInvalidMaxWeight, maxWeight)
			}
		}
		if globalMaxWeight > 0 && maxWeight > globalMaxWeight {
			return fmt.Errorf("%w: %g exceeds carrier max weight %g", ErrInvalidMaxWeight, maxWeight, globalMaxWeight)
		}

		key := decimal.NewFromFloat(maxWeight).Round(maxWeightPrecision).String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: duplicate max weight %s", ErrInvalidMaxWeight, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

const unboundedWeightKey = "unbounded"

// ValidateDuplicateCountry reports whether rule may be saved without creating
// a second enabled rule for its country, carrier and method.
func (s *Storage) ValidateDuplicateCountry(ctx context.Context, rule PricingRule) (bool, error) {
	existing, err := s.pricingRepo.FindEnabled(ctx, strings.ToUpper(rule.CountryID), rule.CarrierID, string(rule.Method))
	if err != nil {
		return false, fmt.Errorf("failed to find enabled pricing rules: %w", err)
	}
	return !hasOtherEnabled(existing, rule.ID), nil
}

func hasOtherEnabled(enabled []*repository.PricingRule, id *int64) bool {
	for _, e := range enabled {
		if id == nil || e.ID != *id {
			return true
		}
	}
	return false
}

// SavePricingRule validates and stores a pricing rule with its weight rules.
// Weight rules missing from the submitted set are deleted. It returns the id
// of the stored rule.
func (s *Storage) SavePricingRule(ctx context.Context, rule PricingRule) (int64, error) {
	if err := rule.validate(); err != nil {
		return 0, err
	}

	globalMaxWeight, err := s.carrierMaxWeight(ctx, rule.CarrierID)
	if err != nil {
		return 0, err
	}
	if err := ValidatePricingRuleMaxWeight(rule.WeightRules, globalMaxWeight); err != nil {
		return 0, err
	}

	if rule.Enabled {
		ok, err := s.ValidateDuplicateCountry(ctx, rule)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrDuplicateCountry
		}
	}

	row := &repository.PricingRule{
		CountryID:    rule.CountryID,
		CarrierID:    rule.CarrierID,
		Method:       string(rule.Method),
		Enabled:      rule.Enabled,
		FreeShipment: rule.FreeShipment,
	}

	err = db.WithTx(ctx, s.db, func(tx db.Tx) error {
		if rule.ID != nil {
			row.ID = *rule.ID
			if err := s.pricingRepo.UpdateTx(ctx, tx, row); err != nil {
				if errors.Is(err, repository.ErrObjectNotFound) {
					return ErrPricingRuleNotFound
				}
				return fmt.Errorf("failed to update pricing rule: %w", err)
			}
		} else {
			id, err := s.pricingRepo.CreateTx(ctx, tx, row)
			if err != nil {
				return fmt.Errorf("failed to create pricing rule: %w", err)
			}
			row.ID = id
		}

		keepIDs := make([]int64, 0, len(rule.WeightRules))
		for _, wr := range rule.WeightRules {
			weightRow := &repository.WeightRule{
				PricingRuleID: row.ID,
				MaxWeight:     wr.MaxWeight,
				Price:         wr.Price,
			}
			if wr.ID != nil {
				weightRow.ID = *wr.ID
				if err := s.weightRepo.UpdateTx(ctx, tx, weightRow); err != nil {
					if errors.Is(err, repository.ErrObjectNotFound) {
						return fmt.Errorf("%w: weight rule %d does not belong to pricing rule %d",
							ErrInvalidPricingRule, weightRow.ID, row.ID)
					}
					return err
				}
				keepIDs = append(keepIDs, weightRow.ID)
				continue
			}
			id, err := s.weightRepo.CreateTx(ctx, tx, weightRow)
			if err != nil {
				return err
			}
			keepIDs = append(keepIDs, id)
		}

		return s.weightRepo.DeleteOrphansTx(ctx, tx, row.ID, keepIDs)
	})
	if err != nil {
		return 0, err
	}

	metrics.PricingRulesSavedTotal.Inc()
	s.logger.Info("Pricing rule saved",
		zap.Int64("pricing_rule_id", row.ID),
		zap.String("country", row.CountryID),
		zap.String("carrier_id", row.CarrierID),
		zap.Int("weight_rules", len(rule.WeightRules)))
	return row.ID, nil
}

// SetPricingRuleEnabled toggles a pricing rule. Enabling is refused when
// another enabled rule exists for the same country, carrier and method; the
// check and the update run in one transaction holding row locks.
func (s *Storage) SetPricingRuleEnabled(ctx context.Context, id int64, enabled bool) error {
	if !enabled {
		if err := s.pricingRepo.SetEnabled(ctx, id, false); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrPricingRuleNotFound
			}
			return fmt.Errorf("failed to disable pricing rule %d: %w", id, err)
		}
		return nil
	}

	return db.WithTx(ctx, s.db, func(tx db.Tx) error {
		existing, err := s.pricingRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrPricingRuleNotFound
			}
			return fmt.Errorf("failed to get pricing rule: %w", err)
		}

		others, err := s.pricingRepo.FindEnabledTx(ctx, tx, strings.ToUpper(existing.CountryID), existing.CarrierID, existing.Method)
		if err != nil {
			return fmt.Errorf("failed to find enabled pricing rules: %w", err)
		}
		if hasOtherEnabled(others, &existing.ID) {
			return ErrDuplicateCountry
		}

		if err := s.pricingRepo.SetEnabledTx(ctx, tx, id, true); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrPricingRuleNotFound
			}
			return fmt.Errorf("failed to enable pricing rule %d: %w", id, err)
		}
		return nil
	})
}

// DisablePricingRulesExcept disables every pricing rule whose id is not in ids.
func (s *Storage) DisablePricingRulesExcept(ctx context.Context, ids []int64) error {
	if err := s.pricingRepo.DisableExcept(ctx, ids); err != nil {
		return fmt.Errorf("failed to disable pricing rules: %w", err)
	}
	return nil
}

// FindPricingRules lists pricing rules with their weight rules. Nil filters
// match everything.
func (s *Storage) FindPricingRules(ctx context.Context, country *string, enabled *bool) ([]PricingRule, error) {
	if country != nil {
		upper := strings.ToUpper(*country)
		country = &upper
	}
	rows, err := s.pricingRepo.FindBy(ctx, country, enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to find pricing rules: %w", err)
	}
	if len(rows) == 0 {
		return []PricingRule{}, nil
	}

	weightRules, err := s.weightRulesByPricingRule(ctx, rows)
	if err != nil {
		return nil, err
	}

	rules := make([]PricingRule, len(rows))
	for i, row := range rows {
		id := row.ID
		rules[i] = PricingRule{
			ID:           &id,
			CountryID:    row.CountryID,
			CarrierID:    row.CarrierID,
			Method:       carrier.Method(row.Method),
			Enabled:      row.Enabled,
			FreeShipment: row.FreeShipment,
			WeightRules:  []WeightRule{},
		}
		for _, wr := range weightRules[row.ID] {
			wrID := wr.ID
			rules[i].WeightRules = append(rules[i].WeightRules, WeightRule{
				ID:        &wrID,
				MaxWeight: wr.MaxWeight,
				Price:     wr.Price,
			})
		}
	}
	return rules, nil
}

// FindRule returns the enabled pricing rule used for quoting, or nil when the
// country has none.
func (s *Storage) FindRule(ctx context.Context, country, carrierID string, method carrier.Method) (*pricing.Rule, error) {
	rows, err := s.pricingRepo.FindEnabled(ctx, strings.ToUpper(country), carrierID, string(method))
	if err != nil {
		return nil, fmt.Errorf("failed to find enabled pricing rules: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) > 1 {
		s.logger.Warn("Multiple enabled pricing rules, using the oldest",
			zap.String("country", country), zap.String("carrier_id", carrierID), zap.String("method", string(method)))
	}
	row := rows[0]

	weightRules, err := s.weightRulesByPricingRule(ctx, rows[:1])
	if err != nil {
		return nil, err
	}

	rule := &pricing.Rule{
		ID:           row.ID,
		CountryID:    row.CountryID,
		CarrierID:    row.CarrierID,
		Method:       carrier.Method(row.Method),
		FreeShipment: row.FreeShipment,
	}
	for _, wr := range weightRules[row.ID] {
		rule.WeightRules = append(rule.WeightRules, pricing.WeightRule{
			MaxWeight: wr.MaxWeight,
			Price:     wr.Price,
		})
	}
	return rule, nil
}

func (s *Storage) weightRulesByPricingRule(ctx context.Context, rows []*repository.PricingRule) (map[int64][]*repository.WeightRule, error) {
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	weightRules, err := s.weightRepo.GetByPricingRuleIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get weight rules: %w", err)
	}

	byRule := make(map[int64][]*repository.WeightRule, len(rows))
	for _, wr := range weightRules {
		byRule[wr.PricingRuleID] = append(byRule[wr.PricingRuleID], wr)
	}
	return byRule, nil
}
