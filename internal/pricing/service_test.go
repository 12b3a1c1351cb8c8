package pricing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing"
	mock_pricing "gitlab.ozon.dev/pupkingeorgij/packetery/internal/pricing/mocks"
)

const pickupPointCode = "packetery_pickupPointDelivery"

type serviceMocks struct {
	rules      *mock_pricing.MockRuleFinder
	configs    *mock_pricing.MockConfigSource
	strategies *mock_pricing.MockStrategyResolver
}

func newTestService(t *testing.T) (*pricing.Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		rules:      mock_pricing.NewMockRuleFinder(ctrl),
		configs:    mock_pricing.NewMockConfigSource(ctrl),
		strategies: mock_pricing.NewMockStrategyResolver(ctrl),
	}
	return pricing.NewService(m.rules, m.configs, m.strategies, nil), m
}

func packetaConfig() *carrier.Config {
	return &carrier.Config{
		CarrierID:    carrier.PacketaID,
		Title:        "Packeta",
		Enabled:      true,
		DefaultPrice: decimal.NewFromInt(150),
		MaxWeight:    10,
		Methods:      []carrier.Method{carrier.MethodPickupPoint, carrier.MethodAddress},
		Currency:     "CZK",
	}
}

func TestService_CollectRates(t *testing.T) {
	ctx := context.Background()
	strategy := carrier.NewPacketaStrategy()
	maxWeight := 5.0

	t.Run("quotes weight bracket", func(t *testing.T) {
		s, m := newTestService(t)
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "store-1").Return(packetaConfig(), nil)
		m.rules.EXPECT().FindRule(ctx, "CZ", carrier.PacketaID, carrier.MethodPickupPoint).Return(&pricing.Rule{
			CountryID:   "CZ",
			WeightRules: []pricing.WeightRule{{MaxWeight: &maxWeight, Price: decimal.NewFromInt(89)}},
		}, nil)

		rate, err := s.CollectRates(ctx, pricing.RateRequest{
			StoreID:    "store-1",
			MethodCode: pickupPointCode,
			Country:    "cz",
			Weight:     2,
			Value:      decimal.NewFromInt(300),
		})
		require.NoError(t, err)
		require.NotNil(t, rate)
		assert.True(t, decimal.NewFromInt(89).Equal(rate.Price))
		assert.Equal(t, carrier.PacketaID, rate.CarrierID)
		assert.True(t, rate.IsPickupPoint)
		assert.Equal(t, "CZK", rate.Currency)
	})

	t.Run("weight above carrier max", func(t *testing.T) {
		s, m := newTestService(t)
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "").Return(packetaConfig(), nil)

		rate, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: pickupPointCode, Country: "CZ", Weight: 11})
		require.NoError(t, err)
		assert.Nil(t, rate)
	})

	t.Run("disabled carrier", func(t *testing.T) {
		s, m := newTestService(t)
		cfg := packetaConfig()
		cfg.Enabled = false
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "").Return(cfg, nil)

		rate, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: pickupPointCode, Country: "CZ", Weight: 1})
		require.NoError(t, err)
		assert.Nil(t, rate)
	})

	t.Run("country not served", func(t *testing.T) {
		s, m := newTestService(t)
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "").Return(packetaConfig(), nil)

		rate, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: pickupPointCode, Country: "DE", Weight: 1})
		require.NoError(t, err)
		assert.Nil(t, rate)
	})

	t.Run("no pricing rule", func(t *testing.T) {
		s, m := newTestService(t)
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "").Return(packetaConfig(), nil)
		m.rules.EXPECT().FindRule(ctx, "SK", carrier.PacketaID, carrier.MethodPickupPoint).Return(nil, nil)

		rate, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: pickupPointCode, Country: "SK", Weight: 1})
		require.NoError(t, err)
		assert.Nil(t, rate)
	})

	t.Run("free shipping", func(t *testing.T) {
		s, m := newTestService(t)
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "").Return(packetaConfig(), nil)
		m.rules.EXPECT().FindRule(ctx, "CZ", carrier.PacketaID, carrier.MethodPickupPoint).Return(&pricing.Rule{
			CountryID:    "CZ",
			FreeShipment: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
			WeightRules:  []pricing.WeightRule{{MaxWeight: &maxWeight, Price: decimal.NewFromInt(89)}},
		}, nil)

		rate, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: pickupPointCode, Country: "CZ", Weight: 1, Value: decimal.NewFromInt(1000)})
		require.NoError(t, err)
		require.NotNil(t, rate)
		assert.True(t, rate.Price.IsZero())
	})

	t.Run("rule lookup failure", func(t *testing.T) {
		s, m := newTestService(t)
		dbErr := errors.New("connection reset")
		m.strategies.EXPECT().Resolve(pickupPointCode).Return(strategy, carrier.MethodPickupPoint, nil)
		m.configs.EXPECT().CarrierConfig(ctx, strategy, "").Return(packetaConfig(), nil)
		m.rules.EXPECT().FindRule(ctx, "CZ", carrier.PacketaID, carrier.MethodPickupPoint).Return(nil, dbErr)

		_, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: pickupPointCode, Country: "CZ", Weight: 1})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("unknown method code", func(t *testing.T) {
		s, m := newTestService(t)
		m.strategies.EXPECT().Resolve("flat_rate").Return(nil, carrier.Method(""), carrier.ErrNotPacketeryMethod)

		_, err := s.CollectRates(ctx, pricing.RateRequest{MethodCode: "flat_rate", Country: "CZ"})
		assert.ErrorIs(t, err, carrier.ErrNotPacketeryMethod)
	})
}

func TestService_ResolvePointID(t *testing.T) {
	s, m := newTestService(t)
	strategy := carrier.NewPacketaStrategy()
	m.strategies.EXPECT().Resolve("packetery_addressDelivery").Return(strategy, carrier.MethodAddress, nil)

	id, err := s.ResolvePointID("packetery_addressDelivery", "sk")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "131", *id)
}
