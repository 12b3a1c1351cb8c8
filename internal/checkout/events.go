package checkout

import (
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced    = "order.placed"
	EventAddressChanged = "order.address_changed"
)

// ShopOrder is the part of a shop order the carrier integration needs.
type ShopOrder struct {
	OrderNumber    string          `json:"order_number" validate:"required"`
	StoreID        string          `json:"store_id"`
	MethodCode     string          `json:"method_code" validate:"required"`
	CreatedByAdmin bool            `json:"created_by_admin"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Company        string          `json:"company"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone"`
	Street         string          `json:"street"`
	HouseNumber    string          `json:"house_number"`
	City           string          `json:"city"`
	Zip            string          `json:"zip"`
	Country        string          `json:"country" validate:"required,len=2"`
	Currency       string          `json:"currency"`
	Value          decimal.Decimal `json:"value"`
	Cod            bool            `json:"cod"`
	Weight         float64         `json:"weight" validate:"gte=0"`
}

// OrderPlaced is dispatched once a shop order has been placed.
type OrderPlaced struct {
	Order     ShopOrder
	SessionID string
	// Point is the pickup point posted with the order form, if any.
	Point *PickupPoint
}

func (OrderPlaced) Name() string {
	return EventOrderPlaced
}

// AddressChanged is dispatched when the shipping address of an order is edited.
type AddressChanged struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	Country     string `json:"country" validate:"required,len=2"`
	Validated   bool   `json:"validated"`
}

func (AddressChanged) Name() string {
	return EventAddressChanged
}
