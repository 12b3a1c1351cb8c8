package carrier

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

// Strategy resolves carrier specific behaviour for checkout and pricing.
type Strategy interface {
	Code() string
	CreateConfig(storeID string, c *repository.Carrier, options *repository.CarrierOptions) Config
	MethodSelect() []MethodOption
	ResolvePointID(method Method, country string) (*string, error)
	AvailableCountries(ctx context.Context) ([]string, error)
	BaseCountries() []string
}

type BaseStrategy struct {
	code string
}

func (b BaseStrategy) Code() string {
	return b.code
}

func createConfig(storeID string, c *repository.Carrier, options *repository.CarrierOptions, methods []Method) Config {
	cfg := Config{
		StoreID:   storeID,
		Methods:   methods,
		MaxWeight: GlobalMaxWeight(c, options),
	}
	if c != nil {
		cfg.CarrierID = c.ID
		cfg.Title = c.Name
		cfg.HasPickupPoints = c.HasPickupPoints
		cfg.SupportsCod = c.SupportsCod
		cfg.Currency = c.Currency
	}
	if options != nil {
		cfg.Enabled = options.Enabled
		cfg.DefaultPrice = options.DefaultPrice
		cfg.FreeShippingLimit = options.FreeShippingLimit
		if options.Title != "" {
			cfg.Title = options.Title
		}
	}
	if c != nil && c.Deleted {
		cfg.Enabled = false
	}
	return cfg
}

// PacketaStrategy serves Packeta's own network: internal pickup points and
// home delivery in the base countries.
type PacketaStrategy struct {
	BaseStrategy
	addressCarriers map[string]string
}

// Home delivery carrier ids of the Packeta network per destination country.
var packetaAddressCarriers = map[string]string{
	"CZ": "106",
	"SK": "131",
	"HU": "4159",
	"RO": "4161",
}

func NewPacketaStrategy() *PacketaStrategy {
	return &PacketaStrategy{
		BaseStrategy:    BaseStrategy{code: PacketaCode},
		addressCarriers: packetaAddressCarriers,
	}
}

func (s PacketaStrategy) CreateConfig(storeID string, c *repository.Carrier, options *repository.CarrierOptions) Config {
	cfg := createConfig(storeID, c, options, []Method{MethodPickupPoint, MethodAddress})
	cfg.HasPickupPoints = true
	if cfg.CarrierID == "" {
		cfg.CarrierID = PacketaID
	}
	return cfg
}

func (s PacketaStrategy) MethodSelect() []MethodOption {
	return []MethodOption{
		{Value: MethodPickupPoint, Label: "Pickup Point Delivery"},
		{Value: MethodAddress, Label: "Address Delivery"},
	}
}

// ResolvePointID returns the home delivery carrier of the country for address
// delivery. Pickup point delivery has no fixed point, the customer picks one.
func (s PacketaStrategy) ResolvePointID(method Method, country string) (*string, error) {
	switch method {
	case MethodPickupPoint:
		return nil, nil
	case MethodAddress:
		id, ok := s.addressCarriers[strings.ToUpper(country)]
		if !ok {
			return nil, fmt.Errorf("no address delivery carrier for country %s", country)
		}
		return &id, nil
	default:
		return nil, fmt.Errorf("unknown delivery method: %s", method)
	}
}

func (s PacketaStrategy) AvailableCountries(_ context.Context) ([]string, error) {
	return s.BaseCountries(), nil
}

func (s PacketaStrategy) BaseCountries() []string {
	countries := make([]string, 0, len(s.addressCarriers))
	for country := range s.addressCarriers {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

// ExternalStrategy serves a partner carrier delivering through the Packeta
// network, either to its own pickup points or to an address.
type ExternalStrategy struct {
	BaseStrategy
	carrier *repository.Carrier
}

func NewExternalStrategy(c *repository.Carrier) *ExternalStrategy {
	return &ExternalStrategy{
		BaseStrategy: BaseStrategy{code: DynamicCode(c.ID)},
		carrier:      c,
	}
}

func (s ExternalStrategy) Carrier() *repository.Carrier {
	return s.carrier
}

func (s ExternalStrategy) method() Method {
	if s.carrier.HasPickupPoints {
		return MethodPickupPoint
	}
	return MethodAddress
}

func (s ExternalStrategy) CreateConfig(storeID string, c *repository.Carrier, options *repository.CarrierOptions) Config {
	if c == nil {
		c = s.carrier
	}
	return createConfig(storeID, c, options, []Method{s.method()})
}

func (s ExternalStrategy) MethodSelect() []MethodOption {
	if s.carrier.HasPickupPoints {
		return []MethodOption{{Value: MethodPickupPoint, Label: "Pickup Point Delivery"}}
	}
	return []MethodOption{{Value: MethodAddress, Label: "Address Delivery"}}
}

// ResolvePointID returns the carrier id itself: partner carriers are addressed
// by their id when exporting address delivery packets.
func (s ExternalStrategy) ResolvePointID(method Method, country string) (*string, error) {
	if method != s.method() {
		return nil, fmt.Errorf("carrier %s does not support method %s", s.carrier.ID, method)
	}
	if !strings.EqualFold(country, s.carrier.Country) {
		return nil, fmt.Errorf("carrier %s does not deliver to %s", s.carrier.ID, country)
	}
	if method == MethodPickupPoint {
		return nil, nil
	}
	id := s.carrier.ID
	return &id, nil
}

func (s ExternalStrategy) AvailableCountries(_ context.Context) ([]string, error) {
	if s.carrier.Deleted {
		return nil, nil
	}
	return s.BaseCountries(), nil
}

func (s ExternalStrategy) BaseCountries() []string {
	return []string{strings.ToUpper(s.carrier.Country)}
}
