package carrier

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

type staticLister struct {
	carriers []*repository.Carrier
	err      error
}

func (l staticLister) GetAll(_ context.Context, _ bool) ([]*repository.Carrier, error) {
	return l.carriers, l.err
}

func TestParseMethodCode(t *testing.T) {
	tests := []struct {
		code        string
		carrierCode string
		method      Method
		wantErr     bool
	}{
		{code: "packetery_pickupPointDelivery", carrierCode: "packetery", method: MethodPickupPoint},
		{code: "packetery-106_addressDelivery", carrierCode: "packetery-106", method: MethodAddress},
		{code: "flat_rate_addressDelivery", wantErr: true},
		{code: "packetery_carDelivery", wantErr: true},
		{code: "packetery_", wantErr: true},
		{code: "packetery", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			carrierCode, method, err := ParseMethodCode(tc.code)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrNotPacketeryMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.carrierCode, carrierCode)
			assert.Equal(t, tc.method, method)
		})
	}
}

func TestCarrierIDFromCode(t *testing.T) {
	assert.Equal(t, PacketaID, CarrierIDFromCode(PacketaCode))
	assert.Equal(t, "106", CarrierIDFromCode(DynamicCode("106")))
	assert.Equal(t, "packetery-106_addressDelivery", MethodCode(DynamicCode("106"), MethodAddress))
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(staticLister{carriers: []*repository.Carrier{
		{ID: PacketaID, Name: "Packeta"},
		{ID: "131", Name: "SK Home", Country: "sk"},
		{ID: "106", Name: "CZ Home", Country: "cz"},
		{ID: "7000", Name: "HU Box", Country: "hu", HasPickupPoints: true, Deleted: true},
	}})
	require.NoError(t, r.Refresh(ctx))

	t.Run("all sorted with packeta first", func(t *testing.T) {
		var codes []string
		for _, s := range r.All() {
			codes = append(codes, s.Code())
		}
		assert.Equal(t, []string{"packetery", "packetery-106", "packetery-131", "packetery-7000"}, codes)
	})

	t.Run("resolve partner method", func(t *testing.T) {
		s, method, err := r.Resolve("packetery-131_addressDelivery")
		require.NoError(t, err)
		assert.Equal(t, "packetery-131", s.Code())
		assert.Equal(t, MethodAddress, method)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		_, _, err := r.Resolve("packetery-999_addressDelivery")
		assert.ErrorIs(t, err, ErrUnknownCarrier)
	})

	t.Run("for country skips deleted carriers", func(t *testing.T) {
		cz, err := r.ForCountry(ctx, "cz")
		require.NoError(t, err)
		require.Len(t, cz, 2)
		assert.Equal(t, "packetery", cz[0].Code())
		assert.Equal(t, "packetery-106", cz[1].Code())

		hu, err := r.ForCountry(ctx, "HU")
		require.NoError(t, err)
		require.Len(t, hu, 1)
		assert.Equal(t, "packetery", hu[0].Code())
	})
}

func TestRegistryRefreshKeepsStrategiesOnError(t *testing.T) {
	r := NewRegistry(staticLister{err: errors.New("db down")})

	assert.Error(t, r.Refresh(context.Background()))
	assert.Len(t, r.All(), 1)
}

func TestPacketaStrategyResolvePointID(t *testing.T) {
	s := NewPacketaStrategy()

	id, err := s.ResolvePointID(MethodAddress, "sk")
	require.NoError(t, err)
	assert.Equal(t, "131", *id)

	id, err = s.ResolvePointID(MethodPickupPoint, "CZ")
	require.NoError(t, err)
	assert.Nil(t, id)

	_, err = s.ResolvePointID(MethodAddress, "PL")
	assert.Error(t, err)

	assert.Equal(t, []string{"CZ", "HU", "RO", "SK"}, s.BaseCountries())
}

func TestExternalStrategyResolvePointID(t *testing.T) {
	home := NewExternalStrategy(&repository.Carrier{ID: "106", Country: "CZ"})

	id, err := home.ResolvePointID(MethodAddress, "cz")
	require.NoError(t, err)
	assert.Equal(t, "106", *id)

	_, err = home.ResolvePointID(MethodPickupPoint, "CZ")
	assert.Error(t, err)

	_, err = home.ResolvePointID(MethodAddress, "SK")
	assert.Error(t, err)

	points := NewExternalStrategy(&repository.Carrier{ID: "7000", Country: "HU", HasPickupPoints: true})
	id, err = points.ResolvePointID(MethodPickupPoint, "HU")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestCreateConfig(t *testing.T) {
	c := &repository.Carrier{ID: "106", Name: "CZ Home", MaxWeight: 30, Currency: "CZK", Country: "CZ"}
	options := &repository.CarrierOptions{
		Enabled:      true,
		DefaultPrice: decimal.NewFromInt(89),
		MaxWeight:    10,
		Title:        "Home delivery",
	}

	cfg := NewExternalStrategy(c).CreateConfig("default", nil, options)

	assert.Equal(t, "106", cfg.CarrierID)
	assert.Equal(t, "Home delivery", cfg.Title)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10.0, cfg.MaxWeight)
	assert.True(t, cfg.AllowsMethod(MethodAddress))
	assert.False(t, cfg.AllowsMethod(MethodPickupPoint))

	c.Deleted = true
	assert.False(t, NewExternalStrategy(c).CreateConfig("default", c, options).Enabled)
}

func TestGlobalMaxWeight(t *testing.T) {
	assert.Equal(t, 30.0, GlobalMaxWeight(&repository.Carrier{MaxWeight: 30}, nil))
	assert.Equal(t, 15.0, GlobalMaxWeight(&repository.Carrier{MaxWeight: 30}, &repository.CarrierOptions{MaxWeight: 15}))
	assert.Equal(t, 30.0, GlobalMaxWeight(&repository.Carrier{MaxWeight: 30}, &repository.CarrierOptions{MaxWeight: 50}))
	assert.Equal(t, 5.0, GlobalMaxWeight(nil, &repository.CarrierOptions{MaxWeight: 5}))
	assert.Zero(t, GlobalMaxWeight(nil, nil))
}
