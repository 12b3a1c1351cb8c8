// Package carrier describes the delivery carriers offered at checkout and the
// per-carrier strategies resolving their methods, countries and pickup points.
package carrier

import (
	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

// Method is a delivery method offered by a carrier.
type Method string

const (
	MethodPickupPoint Method = "pickupPointDelivery"
	MethodAddress     Method = "addressDelivery"
)

func (m Method) Valid() bool {
	return m == MethodPickupPoint || m == MethodAddress
}

// PacketaCode is the carrier code of Packeta's own network.
const PacketaCode = "packetery"

// PacketaID is the carrier id used for Packeta internal pickup points.
const PacketaID = "packeta"

// MethodOption is a delivery method choice shown in the admin method select.
type MethodOption struct {
	Value Method `json:"value"`
	Label string `json:"label"`
}

// Config is the resolved configuration of a carrier in a store.
type Config struct {
	StoreID           string              `json:"store_id"`
	CarrierID         string              `json:"carrier_id"`
	Title             string              `json:"title"`
	Enabled           bool                `json:"enabled"`
	DefaultPrice      decimal.Decimal     `json:"default_price"`
	MaxWeight         float64             `json:"max_weight"`
	FreeShippingLimit decimal.NullDecimal `json:"free_shipping_limit"`
	Methods           []Method            `json:"methods"`
	HasPickupPoints   bool                `json:"has_pickup_points"`
	SupportsCod       bool                `json:"supports_cod"`
	Currency          string              `json:"currency"`
}

// AllowsMethod reports whether the carrier is configured for method.
func (c Config) AllowsMethod(method Method) bool {
	for _, m := range c.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// GlobalMaxWeight is the carrier's own weight limit, falling back to the
// configured one when the carrier feed doesn't provide any.
func GlobalMaxWeight(c *repository.Carrier, options *repository.CarrierOptions) float64 {
	if c != nil && c.MaxWeight > 0 {
		if options != nil && options.MaxWeight > 0 && options.MaxWeight < c.MaxWeight {
			return options.MaxWeight
		}
		return c.MaxWeight
	}
	if options != nil {
		return options.MaxWeight
	}
	return 0
}
