package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout"
	mock_checkout "gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/widget"
)

type serviceMocks struct {
	strategies *mock_checkout.MockStrategyFinder
	rates      *mock_checkout.MockRateCollector
	validator  *mock_checkout.MockPointValidator
	sessions   *mock_checkout.MockSessionWriter
}

func newTestService(t *testing.T) (*checkout.Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		strategies: mock_checkout.NewMockStrategyFinder(ctrl),
		rates:      mock_checkout.NewMockRateCollector(ctrl),
		validator:  mock_checkout.NewMockPointValidator(ctrl),
		sessions:   mock_checkout.NewMockSessionWriter(ctrl),
	}
	return checkout.NewService(m.strategies, m.rates, m.validator, m.sessions, nil), m
}

func TestService_AvailableRates(t *testing.T) {
	s, m := newTestService(t)
	ctx := context.Background()
	external := carrier.NewExternalStrategy(&repository.Carrier{ID: "13", Country: "CZ", HasPickupPoints: true})

	m.strategies.EXPECT().ForCountry(ctx, "CZ").Return([]carrier.Strategy{carrier.NewPacketaStrategy(), external}, nil)
	m.rates.EXPECT().CollectRates(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req pricing.RateRequest) (*pricing.RateResult, error) {
		assert.Equal(t, "CZ", req.Country)
		switch req.MethodCode {
		case "packetery_pickupPointDelivery":
			return &pricing.RateResult{MethodCode: req.MethodCode, Price: decimal.NewFromInt(79)}, nil
		case "packetery_addressDelivery":
			return nil, nil
		case "packetery-13_pickupPointDelivery":
			return nil, errors.New("carrier config broken")
		}
		t.Fatalf("unexpected method code %s", req.MethodCode)
		return nil, nil
	}).Times(3)

	rates, err := s.AvailableRates(ctx, checkout.RatesRequest{Country: "cz", Weight: 1})
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "packetery_pickupPointDelivery", rates[0].MethodCode)
}

func TestService_SavePickupPoint(t *testing.T) {
	ctx := context.Background()
	point := checkout.PickupPoint{MethodCode: "packetery_pickupPointDelivery", ID: "4321"}

	t.Run("valid point", func(t *testing.T) {
		s, m := newTestService(t)
		m.validator.EXPECT().Validate(ctx, widget.Request{
			Point:   widget.Point{ID: "4321"},
			Options: widget.Options{Country: "cz", Weight: 2},
		}).Return(&widget.Result{IsValid: true}, nil)
		m.sessions.EXPECT().SavePickupPoint(ctx, "sess", point).Return(nil)

		assert.NoError(t, s.SavePickupPoint(ctx, "sess", "CZ", 2, point))
	})

	t.Run("invalid point", func(t *testing.T) {
		s, m := newTestService(t)
		m.validator.EXPECT().Validate(ctx, gomock.Any()).Return(&widget.Result{
			Errors: []widget.ValidationError{{Code: "PointNotFound", Description: "Point does not exist"}},
		}, nil)

		err := s.SavePickupPoint(ctx, "sess", "CZ", 2, point)
		assert.ErrorIs(t, err, checkout.ErrInvalidPickupPoint)
		assert.Contains(t, err.Error(), "Point does not exist")
	})

	t.Run("widget unavailable", func(t *testing.T) {
		s, m := newTestService(t)
		m.validator.EXPECT().Validate(ctx, gomock.Any()).Return(nil, errors.New("timeout"))
		m.sessions.EXPECT().SavePickupPoint(ctx, "sess", point).Return(nil)

		assert.NoError(t, s.SavePickupPoint(ctx, "sess", "CZ", 2, point))
	})

	t.Run("validation disabled", func(t *testing.T) {
		s, m := newTestService(t)
		flagged := featureflag.WithFlags(ctx, featureflag.Flags{featureflag.PickupPointValidation: false})
		m.sessions.EXPECT().SavePickupPoint(flagged, "sess", point).Return(nil)

		assert.NoError(t, s.SavePickupPoint(flagged, "sess", "CZ", 2, point))
	})
}

func TestService_SaveCarDelivery(t *testing.T) {
	details := checkout.CarDelivery{MethodCode: "packetery_addressDelivery", ID: "car-1"}

	t.Run("disabled by default", func(t *testing.T) {
		s, _ := newTestService(t)
		err := s.SaveCarDelivery(context.Background(), "sess", details)
		assert.ErrorIs(t, err, checkout.ErrCarDeliveryDisabled)
	})

	t.Run("enabled", func(t *testing.T) {
		s, m := newTestService(t)
		ctx := featureflag.WithFlags(context.Background(), featureflag.Flags{featureflag.CarDelivery: true})
		m.sessions.EXPECT().SaveCarDelivery(ctx, "sess", details).Return(nil)

		assert.NoError(t, s.SaveCarDelivery(ctx, "sess", details))
	})
}

func TestService_SaveValidatedAddress(t *testing.T) {
	s, m := newTestService(t)
	ctx := context.Background()
	m.sessions.EXPECT().SaveValidatedAddress(ctx, "sess", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, a checkout.ValidatedAddress) error {
			assert.Equal(t, "SK", a.Country)
			return nil
		})

	assert.NoError(t, s.SaveValidatedAddress(ctx, "sess", checkout.ValidatedAddress{Street: "Hlavná", Country: "sk"}))
}

func TestService_RemoveSavedData(t *testing.T) {
	s, m := newTestService(t)
	ctx := context.Background()
	m.sessions.EXPECT().Remove(ctx, "sess").Return(nil)

	assert.NoError(t, s.RemoveSavedData(ctx, "sess"))
}
