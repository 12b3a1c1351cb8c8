package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestBuildPacketAttributes(t *testing.T) {
	base := repository.Order{
		OrderNumber:        "1001",
		CarrierID:          "packeta",
		RecipientFirstName: "Jan",
		RecipientLastName:  "Novák",
		RecipientEmail:     "jan@example.com",
		Value:              decimal.NewFromInt(1200),
		Currency:           "CZK",
		Weight:             1.5,
	}

	t.Run("internal pickup point", func(t *testing.T) {
		order := base
		order.PointID = strPtr("4321")
		order.Cod = decimal.NewNullDecimal(decimal.NewFromInt(1200))

		attrs := BuildPacketAttributes(&order, "shop", nil, nil)
		assert.Equal(t, "4321", attrs.AddressID)
		assert.Empty(t, attrs.CarrierPickupPoint)
		assert.Equal(t, "shop", attrs.Eshop)
		require.NotNil(t, attrs.Cod)
		assert.True(t, decimal.NewFromInt(1200).Equal(*attrs.Cod))
		assert.Nil(t, attrs.Size)
		assert.Nil(t, attrs.CustomsDeclaration)
	})

	t.Run("carrier pickup point", func(t *testing.T) {
		order := base
		order.CarrierID = "13"
		order.PointID = strPtr("9001")
		order.IsCarrierPoint = true
		order.CarrierPickupPoint = strPtr("SK-77")

		attrs := BuildPacketAttributes(&order, "", nil, nil)
		assert.Equal(t, "13", attrs.AddressID)
		assert.Equal(t, "SK-77", attrs.CarrierPickupPoint)
		assert.Nil(t, attrs.Cod)
	})

	t.Run("address delivery with size", func(t *testing.T) {
		order := base
		order.CarrierID = "106"
		order.RecipientStreet = strPtr("Main Street")
		order.RecipientHouseNumber = strPtr("123/45a")
		order.RecipientCity = strPtr("Praha")
		order.RecipientZip = strPtr("11000")
		order.Length = floatPtr(300.4)
		order.Width = floatPtr(200)
		order.Height = floatPtr(99.6)

		attrs := BuildPacketAttributes(&order, "", nil, nil)
		assert.Equal(t, "106", attrs.AddressID)
		assert.Equal(t, "Main Street", attrs.Street)
		assert.Equal(t, "123/45a", attrs.HouseNumber)
		require.NotNil(t, attrs.Size)
		assert.Equal(t, 300, attrs.Size.Length)
		assert.Equal(t, 100, attrs.Size.Height)
	})

	t.Run("customs declaration", func(t *testing.T) {
		order := base
		order.PointID = strPtr("4321")
		declaration := &repository.CustomsDeclaration{
			Ead:              "create",
			DeliveryCost:     decimal.NewFromInt(5),
			InvoiceNumber:    "INV-1",
			InvoiceIssueDate: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		}
		items := []*repository.CustomsDeclarationItem{{
			CustomsCode:     "6109100010",
			Value:           decimal.NewFromInt(20),
			ProductNameEn:   "T-shirt",
			UnitsCount:      2,
			CountryOfOrigin: "CZ",
			Weight:          0.2,
		}}

		attrs := BuildPacketAttributes(&order, "", declaration, items)
		require.NotNil(t, attrs.CustomsDeclaration)
		assert.Equal(t, "2024-02-28", attrs.CustomsDeclaration.InvoiceIssueDate)
		require.Len(t, attrs.CustomsDeclaration.Items, 1)
		assert.Equal(t, "T-shirt", attrs.CustomsDeclaration.Items[0].ProductNameEn)
	})
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}, {"5"}}, chunk([]string{"1", "2", "3", "4", "5"}, 2))
	assert.Equal(t, [][]string{{"1", "2"}}, chunk([]string{"1", "2"}, 2))
}
