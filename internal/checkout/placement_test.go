package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout"
	mock_checkout "gitlab.ozon.dev/pupkingeorgij/packetery/internal/checkout/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/events"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type placementMocks struct {
	orders   *mock_checkout.MockOrderStore
	points   *mock_checkout.MockPointResolver
	sessions *mock_checkout.MockSessions
}

func newTestPlacement(t *testing.T) (*checkout.Placement, *events.Dispatcher, *placementMocks) {
	ctrl := gomock.NewController(t)
	m := &placementMocks{
		orders:   mock_checkout.NewMockOrderStore(ctrl),
		points:   mock_checkout.NewMockPointResolver(ctrl),
		sessions: mock_checkout.NewMockSessions(ctrl),
	}
	p := checkout.NewPlacement(m.orders, m.points, m.sessions, nil)
	d := events.NewDispatcher(nil)
	p.Register(d)
	return p, d, m
}

func shopOrder(methodCode string) checkout.ShopOrder {
	return checkout.ShopOrder{
		OrderNumber: "1001",
		StoreID:     "store-1",
		MethodCode:  methodCode,
		FirstName:   "Jan",
		LastName:    "Novák",
		Email:       "jan@example.com",
		Street:      "Main Street 123/45a",
		City:        "Praha",
		Zip:         "11000",
		Country:     "cz",
		Currency:    "CZK",
		Value:       decimal.NewFromInt(1200),
		Cod:         true,
		Weight:      1.5,
	}
}

func TestPlacement_PickupPointFromPostedData(t *testing.T) {
	_, d, m := newTestPlacement(t)
	ctx := context.Background()

	m.sessions.EXPECT().Load(ctx, "sess").Return(&checkout.Session{}, nil)
	m.orders.EXPECT().PlaceOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *repository.Order) error {
		assert.Equal(t, "1001", row.OrderNumber)
		assert.Equal(t, "packeta", row.CarrierID)
		assert.Equal(t, "pickupPointDelivery", row.Method)
		require.NotNil(t, row.PointID)
		assert.Equal(t, "4321", *row.PointID)
		assert.False(t, row.IsCarrierPoint)
		assert.Nil(t, row.RecipientStreet)
		assert.True(t, row.Cod.Valid)
		assert.True(t, decimal.NewFromInt(1200).Equal(row.Cod.Decimal))
		return nil
	})
	m.sessions.EXPECT().Remove(ctx, "sess").Return(nil)

	err := d.Dispatch(ctx, checkout.OrderPlaced{
		Order:     shopOrder("packetery_pickupPointDelivery"),
		SessionID: "sess",
		Point:     &checkout.PickupPoint{ID: "4321", Name: "Praha 1, Main Street"},
	})
	assert.NoError(t, err)
}

func TestPlacement_CarrierPickupPointFromSession(t *testing.T) {
	_, d, m := newTestPlacement(t)
	ctx := context.Background()
	methodCode := "packetery-13_pickupPointDelivery"

	m.sessions.EXPECT().Load(ctx, "sess").Return(&checkout.Session{
		PickupPoint: &checkout.PickupPoint{
			MethodCode:           methodCode,
			ID:                   "9001",
			CarrierID:            "13",
			CarrierPickupPointID: "SK-77",
		},
	}, nil)
	m.orders.EXPECT().PlaceOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *repository.Order) error {
		assert.Equal(t, "13", row.CarrierID)
		assert.True(t, row.IsCarrierPoint)
		require.NotNil(t, row.CarrierPickupPoint)
		assert.Equal(t, "SK-77", *row.CarrierPickupPoint)
		return nil
	})
	m.sessions.EXPECT().Remove(ctx, "sess").Return(nil)

	assert.NoError(t, d.Dispatch(ctx, checkout.OrderPlaced{Order: shopOrder(methodCode), SessionID: "sess"}))
}

func TestPlacement_AddressDelivery(t *testing.T) {
	p, _, m := newTestPlacement(t)
	ctx := featureflag.WithFlags(context.Background(), featureflag.Flags{featureflag.CarDelivery: true})
	methodCode := "packetery_addressDelivery"
	order := shopOrder(methodCode)
	resolved := "106"

	m.sessions.EXPECT().Load(ctx, "sess").Return(&checkout.Session{
		CarDelivery: &checkout.CarDelivery{MethodCode: methodCode, ID: "car-1"},
	}, nil)
	m.points.EXPECT().ResolvePointID(methodCode, "cz").Return(&resolved, nil)
	m.orders.EXPECT().PlaceOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *repository.Order) error {
		assert.Equal(t, "106", row.CarrierID)
		assert.Nil(t, row.PointID)
		require.NotNil(t, row.RecipientStreet)
		assert.Equal(t, "Main Street", *row.RecipientStreet)
		require.NotNil(t, row.RecipientHouseNumber)
		assert.Equal(t, "123/45a", *row.RecipientHouseNumber)
		assert.Equal(t, "CZ", row.RecipientCountryID)
		assert.False(t, row.AddressValidated)
		require.NotNil(t, row.CarDeliveryID)
		assert.Equal(t, "car-1", *row.CarDeliveryID)
		return nil
	})
	m.sessions.EXPECT().Remove(ctx, "sess").Return(nil)

	assert.NoError(t, p.HandleOrderPlaced(ctx, checkout.OrderPlaced{Order: order, SessionID: "sess"}))
}

func TestPlacement_ValidatedAddressWins(t *testing.T) {
	p, _, m := newTestPlacement(t)
	ctx := context.Background()
	methodCode := "packetery_addressDelivery"
	resolved := "131"
	order := shopOrder(methodCode)
	order.Country = "SK"

	m.sessions.EXPECT().Load(ctx, "sess").Return(&checkout.Session{
		Address: &checkout.ValidatedAddress{
			MethodCode:  methodCode,
			Street:      "Hlavná",
			HouseNumber: "12",
			City:        "Bratislava",
			Zip:         "81101",
			Country:     "sk",
		},
	}, nil)
	m.points.EXPECT().ResolvePointID(methodCode, "SK").Return(&resolved, nil)
	m.orders.EXPECT().PlaceOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *repository.Order) error {
		assert.Equal(t, "Hlavná", *row.RecipientStreet)
		assert.Equal(t, "12", *row.RecipientHouseNumber)
		assert.Equal(t, "Bratislava", *row.RecipientCity)
		assert.True(t, row.AddressValidated)
		assert.Nil(t, row.CarDeliveryID)
		return nil
	})
	m.sessions.EXPECT().Remove(ctx, "sess").Return(nil)

	assert.NoError(t, p.HandleOrderPlaced(ctx, checkout.OrderPlaced{Order: order, SessionID: "sess"}))
}

func TestPlacement_AdminOrderUsesStagedRow(t *testing.T) {
	p, _, m := newTestPlacement(t)
	ctx := context.Background()
	order := shopOrder("packetery_pickupPointDelivery")
	order.OrderNumber = "1001-2"
	order.CreatedByAdmin = true
	pointID := "555"
	length := 30.0

	m.orders.EXPECT().GetStagedOrder(ctx, "1001-2").Return(&repository.Order{
		OrderNumber: "1001",
		CarrierID:   "packeta",
		PointID:     &pointID,
		Weight:      2.5,
		Length:      &length,
	}, nil)
	m.orders.EXPECT().PlaceOrder(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row *repository.Order) error {
		assert.Equal(t, "1001-2", row.OrderNumber)
		assert.Equal(t, "555", *row.PointID)
		assert.Equal(t, 2.5, row.Weight)
		assert.Equal(t, &length, row.Length)
		return nil
	})

	assert.NoError(t, p.HandleOrderPlaced(ctx, checkout.OrderPlaced{Order: order}))
}

func TestPlacement_MissingPickupPoint(t *testing.T) {
	p, _, m := newTestPlacement(t)
	ctx := context.Background()
	order := shopOrder("packetery_pickupPointDelivery")
	order.CreatedByAdmin = true

	m.orders.EXPECT().GetStagedOrder(ctx, "1001").Return(nil, storage.ErrOrderNotFound)

	err := p.HandleOrderPlaced(ctx, checkout.OrderPlaced{Order: order})
	assert.ErrorIs(t, err, checkout.ErrPickupPointMissing)
}

func TestPlacement_IgnoresOtherCarriers(t *testing.T) {
	p, _, _ := newTestPlacement(t)

	err := p.HandleOrderPlaced(context.Background(), checkout.OrderPlaced{Order: shopOrder("flat_rate")})
	assert.NoError(t, err)
}

func TestPlacement_PlaceOrderFailureKeepsSession(t *testing.T) {
	p, _, m := newTestPlacement(t)
	ctx := context.Background()
	dbErr := errors.New("duplicate key value")

	m.sessions.EXPECT().Load(ctx, "sess").Return(&checkout.Session{}, nil)
	m.orders.EXPECT().PlaceOrder(ctx, gomock.Any()).Return(dbErr)

	err := p.HandleOrderPlaced(ctx, checkout.OrderPlaced{
		Order:     shopOrder("packetery_pickupPointDelivery"),
		SessionID: "sess",
		Point:     &checkout.PickupPoint{ID: "1"},
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestPlacement_AddressChanged(t *testing.T) {
	_, d, m := newTestPlacement(t)
	ctx := context.Background()

	m.orders.EXPECT().UpdateOrderAddress(ctx, "1001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, a repository.OrderAddress) error {
			assert.Equal(t, "Dlouhá", *a.Street)
			assert.Equal(t, "7b", *a.HouseNumber)
			assert.Equal(t, "CZ", a.CountryID)
			assert.True(t, a.AddressValidated)
			return nil
		})

	err := d.Dispatch(ctx, checkout.AddressChanged{
		OrderNumber: "1001",
		Street:      "Dlouhá 7b",
		City:        "Praha",
		Zip:         "11000",
		Country:     "cz",
		Validated:   true,
	})
	assert.NoError(t, err)
}
