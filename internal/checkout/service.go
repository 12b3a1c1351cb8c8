//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_checkout
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/widget"
)

var (
	ErrInvalidPickupPoint  = errors.New("invalid pickup point")
	ErrCarDeliveryDisabled = errors.New("car delivery is disabled")
)

type StrategyFinder interface {
	ForCountry(ctx context.Context, country string) ([]carrier.Strategy, error)
}

type RateCollector interface {
	CollectRates(ctx context.Context, req pricing.RateRequest) (*pricing.RateResult, error)
}

type PointValidator interface {
	Validate(ctx context.Context, req widget.Request) (*widget.Result, error)
}

type SessionWriter interface {
	SavePickupPoint(ctx context.Context, sessionID string, point PickupPoint) error
	SaveValidatedAddress(ctx context.Context, sessionID string, addr ValidatedAddress) error
	SaveCarDelivery(ctx context.Context, sessionID string, details CarDelivery) error
	Remove(ctx context.Context, sessionID string) error
}

type RatesRequest struct {
	StoreID string          `json:"store_id"`
	Country string          `json:"country" validate:"required,len=2"`
	Weight  float64         `json:"weight" validate:"gte=0"`
	Value   decimal.Decimal `json:"value"`
}

// Service serves the checkout: available rates and the selections saved
// before the order is placed.
type Service struct {
	strategies StrategyFinder
	rates      RateCollector
	validator  PointValidator
	sessions   SessionWriter
	logger     *zap.Logger
}

func NewService(strategies StrategyFinder, rates RateCollector, validator PointValidator, sessions SessionWriter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		strategies: strategies,
		rates:      rates,
		validator:  validator,
		sessions:   sessions,
		logger:     logger,
	}
}

// AvailableRates quotes every method of every carrier delivering to the
// country. A carrier failing to quote is skipped.
func (s *Service) AvailableRates(ctx context.Context, req RatesRequest) ([]pricing.RateResult, error) {
	country := strings.ToUpper(req.Country)
	strategies, err := s.strategies.ForCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve carriers: %w", err)
	}

	result := make([]pricing.RateResult, 0, len(strategies))
	for _, strategy := range strategies {
		for _, option := range strategy.MethodSelect() {
			code := carrier.MethodCode(strategy.Code(), option.Value)
			rate, err := s.rates.CollectRates(ctx, pricing.RateRequest{
				StoreID:    req.StoreID,
				MethodCode: code,
				Country:    country,
				Weight:     req.Weight,
				Value:      req.Value,
			})
			if err != nil {
				metrics.RatesQuotedTotal.WithLabelValues("error").Inc()
				s.logger.Error("Failed to quote rate", zap.String("method_code", code), zap.Error(err))
				continue
			}
			if rate == nil {
				metrics.RatesQuotedTotal.WithLabelValues("unavailable").Inc()
				continue
			}
			metrics.RatesQuotedTotal.WithLabelValues("quoted").Inc()
			result = append(result, *rate)
		}
	}
	return result, nil
}

// SavePickupPoint stores the selected pickup point, validating it first when
// pickup point validation is enabled.
func (s *Service) SavePickupPoint(ctx context.Context, sessionID, country string, weight float64, point PickupPoint) error {
	if s.validator != nil && featureflag.IsEnabled(ctx, featureflag.PickupPointValidation) {
		result, err := s.validator.Validate(ctx, widget.Request{
			Point: widget.Point{
				ID:                   point.ID,
				CarrierID:            point.CarrierID,
				CarrierPickupPointID: point.CarrierPickupPointID,
			},
			Options: widget.Options{
				Country: strings.ToLower(country),
				Weight:  weight,
			},
		})
		if err != nil {
			// saving goes on unvalidated when the widget API is down
			s.logger.Warn("Pickup point validation unavailable", zap.String("point_id", point.ID), zap.Error(err))
		} else if !result.IsValid {
			return fmt.Errorf("%w: %s", ErrInvalidPickupPoint, result.Message())
		}
	}
	return s.sessions.SavePickupPoint(ctx, sessionID, point)
}

func (s *Service) SaveValidatedAddress(ctx context.Context, sessionID string, addr ValidatedAddress) error {
	addr.Country = strings.ToUpper(addr.Country)
	return s.sessions.SaveValidatedAddress(ctx, sessionID, addr)
}

func (s *Service) SaveCarDelivery(ctx context.Context, sessionID string, details CarDelivery) error {
	if !featureflag.IsEnabled(ctx, featureflag.CarDelivery) {
		return ErrCarDeliveryDisabled
	}
	return s.sessions.SaveCarDelivery(ctx, sessionID, details)
}

func (s *Service) RemoveSavedData(ctx context.Context, sessionID string) error {
	return s.sessions.Remove(ctx, sessionID)
}
