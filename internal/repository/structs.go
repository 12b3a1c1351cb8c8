package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrObjectNotFound = errors.New("not found")

type Carrier struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	HasPickupPoints bool      `db:"has_pickup_points" json:"has_pickup_points"`
	RequiresSize    bool      `db:"requires_size" json:"requires_size"`
	SupportsCod     bool      `db:"supports_cod" json:"supports_cod"`
	RequiresEmail   bool      `db:"requires_email" json:"requires_email"`
	RequiresPhone   bool      `db:"requires_phone" json:"requires_phone"`
	MaxWeight       float64   `db:"max_weight" json:"max_weight"`
	Deleted         bool      `db:"deleted" json:"deleted"`
	Country         string    `db:"country" json:"country"`
	Currency        string    `db:"currency" json:"currency"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CarrierOptions is the shop-side configuration of a carrier.
type CarrierOptions struct {
	CarrierID         string              `db:"carrier_id" json:"carrier_id"`
	Enabled           bool                `db:"enabled" json:"enabled"`
	Title             string              `db:"title" json:"title"`
	DefaultPrice      decimal.Decimal     `db:"default_price" json:"default_price"`
	MaxWeight         float64             `db:"max_weight" json:"max_weight"`
	FreeShippingLimit decimal.NullDecimal `db:"free_shipping_limit" json:"free_shipping_limit"`
}

type PricingRule struct {
	ID           int64               `db:"id" json:"id"`
	CountryID    string              `db:"country_id" json:"country_id"`
	CarrierID    string              `db:"carrier_id" json:"carrier_id"`
	Method       string              `db:"method" json:"method"`
	Enabled      bool                `db:"enabled" json:"enabled"`
	FreeShipment decimal.NullDecimal `db:"free_shipment" json:"free_shipment"`
}

type WeightRule struct {
	ID            int64           `db:"id" json:"id"`
	PricingRuleID int64           `db:"packetery_pricing_rule_id" json:"packetery_pricing_rule_id"`
	MaxWeight     *float64        `db:"max_weight" json:"max_weight"`
	Price         decimal.Decimal `db:"price" json:"price"`
}

// Order is the shipping snapshot of a shop order.
type Order struct {
	OrderNumber          string              `db:"order_number" json:"order_number"`
	StoreID              string              `db:"store_id" json:"store_id"`
	CarrierID            string              `db:"carrier_id" json:"carrier_id"`
	Method               string              `db:"method" json:"method"`
	PointID              *string             `db:"point_id" json:"point_id"`
	PointName            *string             `db:"point_name" json:"point_name"`
	PointCity            *string             `db:"point_city" json:"point_city"`
	PointZip             *string             `db:"point_zip" json:"point_zip"`
	PointStreet          *string             `db:"point_street" json:"point_street"`
	PointURL             *string             `db:"point_url" json:"point_url"`
	CarrierPickupPoint   *string             `db:"carrier_pickup_point" json:"carrier_pickup_point"`
	IsCarrierPoint       bool                `db:"is_carrier_point" json:"is_carrier_point"`
	RecipientFirstName   string              `db:"recipient_first_name" json:"recipient_first_name"`
	RecipientLastName    string              `db:"recipient_last_name" json:"recipient_last_name"`
	RecipientCompany     string              `db:"recipient_company" json:"recipient_company"`
	RecipientEmail       string              `db:"recipient_email" json:"recipient_email"`
	RecipientPhone       string              `db:"recipient_phone" json:"recipient_phone"`
	RecipientStreet      *string             `db:"recipient_street" json:"recipient_street"`
	RecipientHouseNumber *string             `db:"recipient_house_number" json:"recipient_house_number"`
	RecipientCity        *string             `db:"recipient_city" json:"recipient_city"`
	RecipientZip         *string             `db:"recipient_zip" json:"recipient_zip"`
	RecipientCountryID   string              `db:"recipient_country_id" json:"recipient_country_id"`
	AddressValidated     bool                `db:"address_validated" json:"address_validated"`
	CarDeliveryID        *string             `db:"car_delivery_id" json:"car_delivery_id"`
	Currency             string              `db:"currency" json:"currency"`
	Value                decimal.Decimal     `db:"value" json:"value"`
	Cod                  decimal.NullDecimal `db:"cod" json:"cod"`
	Weight               float64             `db:"weight" json:"weight"`
	Length               *float64            `db:"length" json:"length"`
	Width                *float64            `db:"width" json:"width"`
	Height               *float64            `db:"height" json:"height"`
	AdultContent         bool                `db:"adult_content" json:"adult_content"`
	IsExported           bool                `db:"is_exported" json:"is_exported"`
	PacketID             *string             `db:"packet_id" json:"packet_id"`
	Barcode              *string             `db:"barcode" json:"barcode"`
	IsLabelPrinted       bool                `db:"is_label_printed" json:"is_label_printed"`
	APIError             *string             `db:"api_error" json:"api_error"`
	APIErrorAt           *time.Time          `db:"api_error_at" json:"api_error_at"`
	CreatedAt            time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time           `db:"updated_at" json:"updated_at"`
}

// OrderAddress holds the recipient address columns changed on address edits.
type OrderAddress struct {
	Street           *string
	HouseNumber      *string
	City             *string
	Zip              *string
	CountryID        string
	AddressValidated bool
}

// OrderDetails holds the parcel columns editable from the admin order modal.
type OrderDetails struct {
	Weight       float64
	Length       *float64
	Width        *float64
	Height       *float64
	Value        decimal.Decimal
	Cod          decimal.NullDecimal
	AdultContent bool
}

type LogEntry struct {
	ID          int64           `db:"id" json:"id"`
	OrderNumber *string         `db:"order_number" json:"order_number"`
	Action      string          `db:"action" json:"action"`
	Status      string          `db:"status" json:"status"`
	Title       string          `db:"title" json:"title"`
	Params      json.RawMessage `db:"params" json:"params"`
	Date        time.Time       `db:"date" json:"date"`
}

type CustomsDeclaration struct {
	ID               int64           `db:"id" json:"id"`
	OrderNumber      string          `db:"order_number" json:"order_number"`
	Ead              string          `db:"ead" json:"ead"`
	DeliveryCost     decimal.Decimal `db:"delivery_cost" json:"delivery_cost"`
	InvoiceNumber    string          `db:"invoice_number" json:"invoice_number"`
	InvoiceIssueDate time.Time       `db:"invoice_issue_date" json:"invoice_issue_date"`
	Mrn              *string         `db:"mrn" json:"mrn"`
}

type CustomsDeclarationItem struct {
	ID                   int64           `db:"id" json:"id"`
	CustomsDeclarationID int64           `db:"customs_declaration_id" json:"customs_declaration_id"`
	CustomsCode          string          `db:"customs_code" json:"customs_code"`
	Value                decimal.Decimal `db:"value" json:"value"`
	ProductNameEn        string          `db:"product_name_en" json:"product_name_en"`
	ProductName          *string         `db:"product_name" json:"product_name"`
	UnitsCount           int             `db:"units_count" json:"units_count"`
	CountryOfOrigin      string          `db:"country_of_origin" json:"country_of_origin"`
	Weight               float64         `db:"weight" json:"weight"`
	IsFoodOrBook         bool            `db:"is_food_or_book" json:"is_food_or_book"`
	IsVoc                bool            `db:"is_voc" json:"is_voc"`
}
