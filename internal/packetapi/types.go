package packetapi

import (
	"encoding/xml"
	"time"

	"github.com/shopspring/decimal"
)

// Size of a packet in millimetres.
type Size struct {
	Length int `xml:"length"`
	Width  int `xml:"width"`
	Height int `xml:"height"`
}

type CustomsItem struct {
	CustomsCode     string          `xml:"customsCode"`
	Value           decimal.Decimal `xml:"value"`
	ProductNameEn   string          `xml:"productNameEn"`
	ProductName     string          `xml:"productName,omitempty"`
	UnitsCount      int             `xml:"unitsCount"`
	CountryOfOrigin string          `xml:"countryOfOrigin"`
	Weight          float64         `xml:"weight"`
	IsFoodOrBook    bool            `xml:"isFoodBook"`
	IsVoc           bool            `xml:"isVoc"`
}

type CustomsDeclaration struct {
	Ead              string          `xml:"ead"`
	DeliveryCost     decimal.Decimal `xml:"deliveryCost"`
	InvoiceNumber    string          `xml:"invoiceNumber"`
	InvoiceIssueDate string          `xml:"invoiceIssueDate"`
	Mrn              string          `xml:"mrn,omitempty"`
	Items            []CustomsItem   `xml:"items>item"`
}

// PacketAttributes describes a packet to create.
type PacketAttributes struct {
	Number             string              `xml:"number"`
	Name               string              `xml:"name"`
	Surname            string              `xml:"surname"`
	Company            string              `xml:"company,omitempty"`
	Email              string              `xml:"email,omitempty"`
	Phone              string              `xml:"phone,omitempty"`
	AddressID          string              `xml:"addressId"`
	Cod                *decimal.Decimal    `xml:"cod,omitempty"`
	Value              decimal.Decimal     `xml:"value"`
	Currency           string              `xml:"currency,omitempty"`
	Weight             float64             `xml:"weight"`
	Eshop              string              `xml:"eshop,omitempty"`
	AdultContent       bool                `xml:"adultContent"`
	Street             string              `xml:"street,omitempty"`
	HouseNumber        string              `xml:"houseNumber,omitempty"`
	City               string              `xml:"city,omitempty"`
	Zip                string              `xml:"zip,omitempty"`
	CarrierPickupPoint string              `xml:"carrierPickupPoint,omitempty"`
	CarrierService     string              `xml:"carrierService,omitempty"`
	Size               *Size               `xml:"size,omitempty"`
	CustomsDeclaration *CustomsDeclaration `xml:"customsDeclaration,omitempty"`
}

type PacketIDDetail struct {
	ID          string `xml:"id"`
	Barcode     string `xml:"barcode"`
	BarcodeText string `xml:"barcodeText"`
}

type ShipmentIDDetail struct {
	ID          string `xml:"id"`
	Checksum    string `xml:"checksum"`
	Barcode     string `xml:"barcode"`
	BarcodeText string `xml:"barcodeText"`
}

// Packet status codes reported by the Packet API.
const (
	StatusReceivedData         = 1
	StatusArrived              = 2
	StatusPreparedForDeparture = 3
	StatusDeparted             = 4
	StatusReadyForPickup       = 5
	StatusHandedToCarrier      = 6
	StatusDelivered            = 7
	StatusReturned             = 9
	StatusCancelled            = 11
)

type CurrentStatus struct {
	DateTime             string `xml:"dateTime"`
	StatusCode           int    `xml:"statusCode"`
	CodeText             string `xml:"codeText"`
	StatusText           string `xml:"statusText"`
	BranchID             string `xml:"branchId"`
	DestinationBranchID  string `xml:"destinationBranchId"`
	ExternalTrackingCode string `xml:"externalTrackingCode"`
	IsReturning          bool   `xml:"isReturning"`
	StoredUntil          string `xml:"storedUntil"`
}

// Time parses the status timestamp, reported in the Packeta local zone.
func (s CurrentStatus) Time() (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", s.DateTime)
}

// Label formats accepted by PacketsLabelsPdf.
const (
	LabelFormatA6OnA4 = "A6 on A4"
	LabelFormatA6OnA6 = "A6 on A6"
	LabelFormatA7OnA4 = "A7 on A4"
	LabelFormat105x35 = "105x35mm on A4"
)

type packetIDs struct {
	IDs []string `xml:"id"`
}

type createPacketRequest struct {
	XMLName     xml.Name         `xml:"ns1:createPacket"`
	APIPassword string           `xml:"apiPassword"`
	Attributes  PacketAttributes `xml:"attributes"`
}

type createPacketResponse struct {
	Result PacketIDDetail `xml:"createPacketResult"`
}

type packetAttributesValidRequest struct {
	XMLName     xml.Name         `xml:"ns1:packetAttributesValid"`
	APIPassword string           `xml:"apiPassword"`
	Attributes  PacketAttributes `xml:"attributes"`
}

type packetIDRequest struct {
	XMLName     xml.Name
	APIPassword string `xml:"apiPassword"`
	PacketID    string `xml:"packetId"`
}

type emptyResponse struct{}

type packetStatusResponse struct {
	Result CurrentStatus `xml:"packetStatusResult"`
}

type createShipmentRequest struct {
	XMLName       xml.Name  `xml:"ns1:createShipment"`
	APIPassword   string    `xml:"apiPassword"`
	PacketIDs     packetIDs `xml:"packetIds"`
	CustomBarcode string    `xml:"customBarcode,omitempty"`
}

type createShipmentResponse struct {
	Result ShipmentIDDetail `xml:"createShipmentResult"`
}

type barcodePngRequest struct {
	XMLName     xml.Name `xml:"ns1:barcodePng"`
	APIPassword string   `xml:"apiPassword"`
	Barcode     string   `xml:"barcode"`
}

type barcodePngResponse struct {
	Result string `xml:"barcodePngResult"`
}

type packetsLabelsPdfRequest struct {
	XMLName     xml.Name  `xml:"ns1:packetsLabelsPdf"`
	APIPassword string    `xml:"apiPassword"`
	PacketIDs   packetIDs `xml:"packetIds"`
	Format      string    `xml:"format"`
	Offset      int       `xml:"offset"`
}

type packetsLabelsPdfResponse struct {
	Result string `xml:"packetsLabelsPdfResult"`
}
