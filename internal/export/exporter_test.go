package export_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/export"
	mock_export "gitlab.ozon.dev/pupkingeorgij/packetery/internal/export/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type exporterMocks struct {
	api    *mock_export.MockPacketAPI
	orders *mock_export.MockOrderStore
	labels *mock_export.MockLabelStore
}

func newTestExporter(t *testing.T) (*export.Exporter, *exporterMocks) {
	ctrl := gomock.NewController(t)
	m := &exporterMocks{
		api:    mock_export.NewMockPacketAPI(ctrl),
		orders: mock_export.NewMockOrderStore(ctrl),
		labels: mock_export.NewMockLabelStore(ctrl),
	}
	return export.NewExporter(m.api, m.orders, m.labels, "shop", nil), m
}

func pickupOrder(number, pointID string) *repository.Order {
	return &repository.Order{
		OrderNumber: number,
		CarrierID:   "packeta",
		PointID:     &pointID,
		Value:       decimal.NewFromInt(100),
		Weight:      1,
	}
}

func TestExporter_ExportOrders(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := featureflag.WithFlags(context.Background(), featureflag.Flags{featureflag.CustomsDeclaration: true})

	ok := pickupOrder("1", "100")
	bad := pickupOrder("2", "200")
	exported := pickupOrder("3", "300")
	exported.IsExported = true

	fault := &packetapi.Fault{
		Identifier:       packetapi.FaultPacketAttributes,
		Message:          "Invalid packet attributes",
		ValidationErrors: []packetapi.ValidationError{{Field: "addressId", Message: "Unknown address"}},
	}

	m.orders.EXPECT().GetOrders(ctx, []string{"1", "2", "3", "4"}).Return([]*repository.Order{ok, bad, exported}, nil)
	m.orders.EXPECT().GetCustomsDeclaration(ctx, "1").Return(nil, nil, nil)
	m.orders.EXPECT().GetCustomsDeclaration(ctx, "2").Return(nil, nil, nil)

	m.api.EXPECT().CreatePacket(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, attrs packetapi.PacketAttributes) (*packetapi.PacketIDDetail, error) {
		assert.Equal(t, "shop", attrs.Eshop)
		if attrs.Number == "2" {
			return nil, fault
		}
		assert.Equal(t, "100", attrs.AddressID)
		return &packetapi.PacketIDDetail{ID: "555", Barcode: "Z555"}, nil
	}).Times(2)

	m.orders.EXPECT().MarkPacketExported(ctx, ok, "555", "Z555").Return(nil)
	m.orders.EXPECT().LogAPICall(ctx, gomock.Any(), export.ActionCreatePacket, storage.LogStatusSuccess, "Packet created", gomock.Any())

	m.orders.EXPECT().SetOrderAPIError(ctx, "2", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, message string) error {
		assert.True(t, strings.Contains(message, "Unknown address"))
		return nil
	})
	m.orders.EXPECT().LogAPICall(ctx, gomock.Any(), export.ActionCreatePacket, storage.LogStatusError, gomock.Any(), gomock.Any())

	result, err := e.ExportOrders(ctx, []string{"1", "2", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, []export.ExportedPacket{{OrderNumber: "1", PacketID: "555", Barcode: "Z555"}}, result.Exported)
	require.Len(t, result.Failed, 3)
	assert.Equal(t, "2", result.Failed[0].OrderNumber)
	assert.Equal(t, export.FailedExport{OrderNumber: "3", Error: export.ErrAlreadyExists.Error()}, result.Failed[1])
	assert.Equal(t, export.FailedExport{OrderNumber: "4", Error: storage.ErrOrderNotFound.Error()}, result.Failed[2])
}

func TestExporter_ExportClearsPreviousError(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := featureflag.WithFlags(context.Background(), featureflag.Flags{featureflag.CustomsDeclaration: false})

	order := pickupOrder("1", "100")
	previous := "timeout"
	order.APIError = &previous

	m.orders.EXPECT().GetOrders(ctx, []string{"1"}).Return([]*repository.Order{order}, nil)
	m.api.EXPECT().CreatePacket(ctx, gomock.Any()).Return(&packetapi.PacketIDDetail{ID: "555"}, nil)
	m.orders.EXPECT().MarkPacketExported(ctx, order, "555", "").Return(nil)
	m.orders.EXPECT().SetOrderAPIError(ctx, "1", "").Return(nil)
	m.orders.EXPECT().LogAPICall(ctx, gomock.Any(), export.ActionCreatePacket, storage.LogStatusSuccess, gomock.Any(), gomock.Any())

	result, err := e.ExportOrders(ctx, []string{"1"})
	require.NoError(t, err)
	assert.Len(t, result.Exported, 1)
	assert.Empty(t, result.Failed)
}

func TestExporter_ExportOrdersLoadFailure(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := context.Background()
	m.orders.EXPECT().GetOrders(ctx, []string{"1"}).Return(nil, errors.New("connection reset"))

	_, err := e.ExportOrders(ctx, []string{"1"})
	assert.Error(t, err)
}

func TestExporter_PrintLabels(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := context.Background()

	printed := pickupOrder("1", "100")
	packetID := "555"
	printed.PacketID = &packetID
	notExported := pickupOrder("2", "200")

	m.orders.EXPECT().GetOrders(ctx, []string{"1", "2"}).Return([]*repository.Order{printed, notExported}, nil)
	m.api.EXPECT().PacketsLabelsPdf(gomock.Any(), []string{"555"}, packetapi.LabelFormatA6OnA4, 2).Return([]byte("%PDF"), nil)
	m.labels.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("%PDF"), "application/pdf").Return(nil)
	m.orders.EXPECT().MarkLabelsPrinted(ctx, []string{"1"}).Return(nil)
	m.orders.EXPECT().LogAPICall(ctx, nil, export.ActionLabelPrint, storage.LogStatusSuccess, gomock.Any(), gomock.Any())

	keys, err := e.PrintLabels(ctx, []string{"1", "2"}, "", 2)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "labels/"))
}

func TestExporter_PrintLabelsWithoutPackets(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := context.Background()
	m.orders.EXPECT().GetOrders(ctx, []string{"2"}).Return([]*repository.Order{pickupOrder("2", "200")}, nil)

	_, err := e.PrintLabels(ctx, []string{"2"}, packetapi.LabelFormatA7OnA4, 0)
	assert.ErrorIs(t, err, export.ErrNoPackets)
}

func TestExporter_PrintLabelsFailure(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := context.Background()

	order := pickupOrder("1", "100")
	packetID := "555"
	order.PacketID = &packetID
	fault := &packetapi.Fault{Identifier: packetapi.FaultPacketIDs, Message: "Unknown packet"}

	m.orders.EXPECT().GetOrders(ctx, []string{"1"}).Return([]*repository.Order{order}, nil)
	m.api.EXPECT().PacketsLabelsPdf(gomock.Any(), []string{"555"}, packetapi.LabelFormatA6OnA4, 0).Return(nil, fault)
	m.orders.EXPECT().LogAPICall(ctx, nil, export.ActionLabelPrint, storage.LogStatusError, gomock.Any(), gomock.Any())

	_, err := e.PrintLabels(ctx, []string{"1"}, "", 0)
	assert.True(t, packetapi.IsFault(err, packetapi.FaultPacketIDs))
}

func TestExporter_CancelPacket(t *testing.T) {
	ctx := context.Background()
	packetID := "555"

	t.Run("cancelled", func(t *testing.T) {
		e, m := newTestExporter(t)
		order := pickupOrder("1", "100")
		order.PacketID = &packetID

		m.orders.EXPECT().GetOrder(ctx, "1").Return(order, nil)
		m.api.EXPECT().CancelPacket(ctx, "555").Return(nil)
		m.orders.EXPECT().MarkPacketCancelled(ctx, order).Return(nil)
		m.orders.EXPECT().LogAPICall(ctx, gomock.Any(), export.ActionCancelPacket, storage.LogStatusSuccess, gomock.Any(), "555")

		assert.NoError(t, e.CancelPacket(ctx, "1"))
	})

	t.Run("not exported", func(t *testing.T) {
		e, m := newTestExporter(t)
		m.orders.EXPECT().GetOrder(ctx, "1").Return(pickupOrder("1", "100"), nil)

		assert.ErrorIs(t, e.CancelPacket(ctx, "1"), export.ErrNotExported)
	})

	t.Run("rejected by api", func(t *testing.T) {
		e, m := newTestExporter(t)
		order := pickupOrder("1", "100")
		order.PacketID = &packetID
		fault := &packetapi.Fault{Identifier: packetapi.FaultCannotCancelPacket, Message: "Packet already delivered"}

		m.orders.EXPECT().GetOrder(ctx, "1").Return(order, nil)
		m.api.EXPECT().CancelPacket(ctx, "555").Return(fault)
		m.orders.EXPECT().LogAPICall(ctx, gomock.Any(), export.ActionCancelPacket, storage.LogStatusError, gomock.Any(), "555")

		err := e.CancelPacket(ctx, "1")
		assert.True(t, packetapi.IsFault(err, packetapi.FaultCannotCancelPacket))
	})
}

func TestExporter_RefreshStatus(t *testing.T) {
	e, m := newTestExporter(t)
	ctx := context.Background()
	order := pickupOrder("1", "100")
	packetID := "555"
	order.PacketID = &packetID
	status := &packetapi.CurrentStatus{StatusCode: packetapi.StatusDelivered, StatusText: "Delivered"}

	m.orders.EXPECT().GetOrder(ctx, "1").Return(order, nil)
	m.api.EXPECT().PacketStatus(ctx, "555").Return(status, nil)
	m.orders.EXPECT().RecordPacketStatus(ctx, order, packetapi.StatusDelivered, "Delivered").Return(nil)

	got, err := e.RefreshStatus(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, status, got)
}
