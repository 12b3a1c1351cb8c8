package export

import (
	"math"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

const invoiceDateLayout = "2006-01-02"

// BuildPacketAttributes maps an order snapshot to the packet sent to the
// Packet API. declaration may be nil.
func BuildPacketAttributes(order *repository.Order, eshop string, declaration *repository.CustomsDeclaration, items []*repository.CustomsDeclarationItem) packetapi.PacketAttributes {
	attrs := packetapi.PacketAttributes{
		Number:       order.OrderNumber,
		Name:         order.RecipientFirstName,
		Surname:      order.RecipientLastName,
		Company:      order.RecipientCompany,
		Email:        order.RecipientEmail,
		Phone:        order.RecipientPhone,
		Value:        order.Value,
		Currency:     order.Currency,
		Weight:       order.Weight,
		Eshop:        eshop,
		AdultContent: order.AdultContent,
	}

	if order.Cod.Valid {
		cod := order.Cod.Decimal
		attrs.Cod = &cod
	}

	switch {
	case order.IsCarrierPoint && order.CarrierPickupPoint != nil:
		attrs.AddressID = order.CarrierID
		attrs.CarrierPickupPoint = *order.CarrierPickupPoint
	case order.PointID != nil:
		attrs.AddressID = *order.PointID
	default:
		attrs.AddressID = order.CarrierID
		attrs.Street = deref(order.RecipientStreet)
		attrs.HouseNumber = deref(order.RecipientHouseNumber)
		attrs.City = deref(order.RecipientCity)
		attrs.Zip = deref(order.RecipientZip)
	}

	if order.Length != nil && order.Width != nil && order.Height != nil {
		attrs.Size = &packetapi.Size{
			Length: int(math.Round(*order.Length)),
			Width:  int(math.Round(*order.Width)),
			Height: int(math.Round(*order.Height)),
		}
	}

	if declaration != nil {
		attrs.CustomsDeclaration = customsDeclaration(declaration, items)
	}
	return attrs
}

func customsDeclaration(d *repository.CustomsDeclaration, items []*repository.CustomsDeclarationItem) *packetapi.CustomsDeclaration {
	result := &packetapi.CustomsDeclaration{
		Ead:              d.Ead,
		DeliveryCost:     d.DeliveryCost,
		InvoiceNumber:    d.InvoiceNumber,
		InvoiceIssueDate: d.InvoiceIssueDate.Format(invoiceDateLayout),
		Mrn:              deref(d.Mrn),
		Items:            make([]packetapi.CustomsItem, 0, len(items)),
	}
	for _, item := range items {
		result.Items = append(result.Items, packetapi.CustomsItem{
			CustomsCode:     item.CustomsCode,
			Value:           item.Value,
			ProductNameEn:   item.ProductNameEn,
			ProductName:     deref(item.ProductName),
			UnitsCount:      item.UnitsCount,
			CountryOfOrigin: item.CountryOfOrigin,
			Weight:          item.Weight,
			IsFoodOrBook:    item.IsFoodOrBook,
			IsVoc:           item.IsVoc,
		})
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
