//go:generate mockgen -source ./placement.go -destination=./mocks/placement.go -package=mock_checkout
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/address"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/events"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

var (
	ErrPickupPointMissing = errors.New("pickup point was not selected")
	ErrUnexpectedEvent    = errors.New("unexpected event")
)

type OrderStore interface {
	PlaceOrder(ctx context.Context, order *repository.Order) error
	GetStagedOrder(ctx context.Context, orderNumber string) (*repository.Order, error)
	UpdateOrderAddress(ctx context.Context, orderNumber string, address repository.OrderAddress) error
}

type PointResolver interface {
	ResolvePointID(methodCode, country string) (*string, error)
}

type Sessions interface {
	Load(ctx context.Context, sessionID string) (*Session, error)
	Remove(ctx context.Context, sessionID string) error
}

// Placement stores the shipping snapshot of placed orders.
type Placement struct {
	orders   OrderStore
	points   PointResolver
	sessions Sessions
	logger   *zap.Logger
}

func NewPlacement(orders OrderStore, points PointResolver, sessions Sessions, logger *zap.Logger) *Placement {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Placement{
		orders:   orders,
		points:   points,
		sessions: sessions,
		logger:   logger,
	}
}

// Register subscribes the placement handlers to d.
func (p *Placement) Register(d *events.Dispatcher) {
	d.Subscribe(EventOrderPlaced, p.HandleOrderPlaced)
	d.Subscribe(EventAddressChanged, p.HandleAddressChanged)
}

func (p *Placement) HandleOrderPlaced(ctx context.Context, event events.Event) error {
	e, ok := event.(OrderPlaced)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEvent, event.Name())
	}
	order := e.Order
	l := p.logger.With(zap.String("order_number", order.OrderNumber), zap.String("method_code", order.MethodCode))

	carrierCode, method, err := carrier.ParseMethodCode(order.MethodCode)
	if err != nil {
		if errors.Is(err, carrier.ErrNotPacketeryMethod) {
			l.Debug("Skipping order of another carrier")
			return nil
		}
		return err
	}

	var staged *repository.Order
	if order.CreatedByAdmin {
		staged, err = p.orders.GetStagedOrder(ctx, order.OrderNumber)
		if err != nil && !errors.Is(err, storage.ErrOrderNotFound) {
			return fmt.Errorf("failed to get staged order: %w", err)
		}
	}

	var session *Session
	if e.SessionID != "" {
		session, err = p.sessions.Load(ctx, e.SessionID)
		if err != nil {
			l.Warn("Failed to load checkout session", zap.Error(err))
		}
	}

	row := newOrderRow(order)
	switch method {
	case carrier.MethodPickupPoint:
		point := e.Point
		if point == nil {
			point = session.PickupPointFor(order.MethodCode)
		}
		switch {
		case point != nil:
			applyPickupPoint(row, carrierCode, point)
		case staged != nil && staged.PointID != nil:
			applyStagedPoint(row, staged)
		default:
			return fmt.Errorf("order %s: %w", order.OrderNumber, ErrPickupPointMissing)
		}

	case carrier.MethodAddress:
		pointID, err := p.points.ResolvePointID(order.MethodCode, order.Country)
		if err != nil {
			return fmt.Errorf("failed to resolve address delivery carrier: %w", err)
		}
		if pointID == nil {
			return fmt.Errorf("no address delivery carrier for %s", order.MethodCode)
		}
		row.CarrierID = *pointID

		if validated := session.AddressFor(order.MethodCode); validated != nil {
			applyAddress(row, address.FromLine(validated.Street, validated.HouseNumber, validated.City, validated.Zip, validated.Country))
			row.AddressValidated = true
		} else {
			applyAddress(row, address.FromLine(order.Street, order.HouseNumber, order.City, order.Zip, order.Country))
		}
		if featureflag.IsEnabled(ctx, featureflag.CarDelivery) {
			if car := session.CarDeliveryFor(order.MethodCode); car != nil {
				row.CarDeliveryID = &car.ID
			}
		}
	}

	if staged != nil {
		applyStagedParcel(row, staged)
	}

	if err := p.orders.PlaceOrder(ctx, row); err != nil {
		return err
	}

	if e.SessionID != "" {
		if err := p.sessions.Remove(ctx, e.SessionID); err != nil {
			l.Warn("Failed to remove checkout session", zap.Error(err))
		}
	}
	return nil
}

func (p *Placement) HandleAddressChanged(ctx context.Context, event events.Event) error {
	e, ok := event.(AddressChanged)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEvent, event.Name())
	}

	a := address.FromLine(e.Street, e.HouseNumber, e.City, e.Zip, e.Country)
	return p.orders.UpdateOrderAddress(ctx, e.OrderNumber, repository.OrderAddress{
		Street:           &a.Street,
		HouseNumber:      a.HouseNumber,
		City:             &a.City,
		Zip:              &a.Zip,
		CountryID:        a.Country,
		AddressValidated: e.Validated,
	})
}

func newOrderRow(order ShopOrder) *repository.Order {
	row := &repository.Order{
		OrderNumber:        order.OrderNumber,
		StoreID:            order.StoreID,
		RecipientFirstName: order.FirstName,
		RecipientLastName:  order.LastName,
		RecipientCompany:   order.Company,
		RecipientEmail:     order.Email,
		RecipientPhone:     order.Phone,
		RecipientCountryID: order.Country,
		Currency:           order.Currency,
		Value:              order.Value,
		Weight:             order.Weight,
	}
	if _, method, err := carrier.ParseMethodCode(order.MethodCode); err == nil {
		row.Method = string(method)
	}
	if order.Cod {
		row.Cod = decimal.NewNullDecimal(order.Value)
	}
	return row
}

func applyPickupPoint(row *repository.Order, carrierCode string, point *PickupPoint) {
	row.PointID = stringPtr(point.ID)
	row.PointName = stringPtr(point.Name)
	row.PointCity = stringPtr(point.City)
	row.PointZip = stringPtr(point.Zip)
	row.PointStreet = stringPtr(point.Street)
	row.PointURL = stringPtr(point.URL)

	row.CarrierID = carrier.CarrierIDFromCode(carrierCode)
	if point.IsCarrierPoint() {
		row.CarrierID = point.CarrierID
		row.IsCarrierPoint = true
		row.CarrierPickupPoint = stringPtr(point.CarrierPickupPointID)
	}
}

func applyStagedPoint(row *repository.Order, staged *repository.Order) {
	row.CarrierID = staged.CarrierID
	row.PointID = staged.PointID
	row.PointName = staged.PointName
	row.PointCity = staged.PointCity
	row.PointZip = staged.PointZip
	row.PointStreet = staged.PointStreet
	row.PointURL = staged.PointURL
	row.IsCarrierPoint = staged.IsCarrierPoint
	row.CarrierPickupPoint = staged.CarrierPickupPoint
}

// applyStagedParcel keeps the parcel details entered while the admin order was
// being created.
func applyStagedParcel(row *repository.Order, staged *repository.Order) {
	if staged.Weight > 0 {
		row.Weight = staged.Weight
	}
	row.Length = staged.Length
	row.Width = staged.Width
	row.Height = staged.Height
	row.AdultContent = staged.AdultContent
	if staged.Cod.Valid {
		row.Cod = staged.Cod
	}
}

func applyAddress(row *repository.Order, a address.Address) {
	row.RecipientStreet = stringPtr(a.Street)
	row.RecipientHouseNumber = a.HouseNumber
	row.RecipientCity = stringPtr(a.City)
	row.RecipientZip = stringPtr(a.Zip)
	row.RecipientCountryID = a.Country
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
