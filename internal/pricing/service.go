//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_pricing
package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
)

// RuleFinder returns the enabled pricing rule of a country, or nil if there
// is none.
type RuleFinder interface {
	FindRule(ctx context.Context, country, carrierID string, method carrier.Method) (*Rule, error)
}

type ConfigSource interface {
	CarrierConfig(ctx context.Context, strategy carrier.Strategy, storeID string) (*carrier.Config, error)
}

type StrategyResolver interface {
	Resolve(methodCode string) (carrier.Strategy, carrier.Method, error)
}

type RateRequest struct {
	StoreID    string
	MethodCode string
	Country    string
	Weight     float64
	Value      decimal.Decimal
}

type RateResult struct {
	MethodCode    string          `json:"method_code"`
	CarrierID     string          `json:"carrier_id"`
	Method        carrier.Method  `json:"method"`
	Title         string          `json:"title"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency,omitempty"`
	IsPickupPoint bool            `json:"is_pickup_point"`
}

type Service struct {
	rules      RuleFinder
	configs    ConfigSource
	strategies StrategyResolver
	logger     *zap.Logger
}

func NewService(rules RuleFinder, configs ConfigSource, strategies StrategyResolver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		rules:      rules,
		configs:    configs,
		strategies: strategies,
		logger:     logger,
	}
}

// CollectRates quotes a shipping method for a package. A nil result without
// error means the method is not offered for the request.
func (s *Service) CollectRates(ctx context.Context, req RateRequest) (*RateResult, error) {
	l := s.logger.With(zap.String("method_code", req.MethodCode), zap.String("country", req.Country), zap.Float64("weight", req.Weight))

	strategy, method, err := s.strategies.Resolve(req.MethodCode)
	if err != nil {
		return nil, err
	}

	cfg, err := s.configs.CarrierConfig(ctx, strategy, req.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to load carrier config: %w", err)
	}
	if !cfg.Enabled || !cfg.AllowsMethod(method) {
		l.Debug("Carrier method disabled")
		return nil, nil
	}

	countries, err := strategy.AvailableCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve available countries: %w", err)
	}
	if !containsCountry(countries, req.Country) {
		l.Debug("Country not served by carrier")
		return nil, nil
	}

	if cfg.MaxWeight > 0 && req.Weight > cfg.MaxWeight {
		l.Debug("Package exceeds carrier max weight", zap.Float64("max_weight", cfg.MaxWeight))
		return nil, nil
	}

	rule, err := s.rules.FindRule(ctx, strings.ToUpper(req.Country), cfg.CarrierID, method)
	if err != nil {
		return nil, fmt.Errorf("failed to find pricing rule: %w", err)
	}
	if rule == nil {
		l.Debug("No pricing rule for country")
		return nil, nil
	}

	return &RateResult{
		MethodCode:    req.MethodCode,
		CarrierID:     cfg.CarrierID,
		Method:        method,
		Title:         cfg.Title,
		Price:         ResolvePrice(rule, *cfg, req.Weight, req.Value),
		Currency:      cfg.Currency,
		IsPickupPoint: method == carrier.MethodPickupPoint,
	}, nil
}

// ResolvePointID resolves the fixed delivery point of a shipping method, e.g.
// the home delivery carrier of the destination country.
func (s *Service) ResolvePointID(methodCode, country string) (*string, error) {
	strategy, method, err := s.strategies.Resolve(methodCode)
	if err != nil {
		return nil, err
	}
	return strategy.ResolvePointID(method, country)
}

func containsCountry(countries []string, country string) bool {
	for _, c := range countries {
		if strings.EqualFold(c, country) {
			return true
		}
	}
	return false
}
