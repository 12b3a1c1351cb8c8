//go:generate mockgen -source ./exporter.go -destination=./mocks/exporter.go -package=mock_export
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/featureflag"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/objectstore"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/packetapi"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

const (
	labelBatchSize = 50
	labelWorkers   = 4
)

// API log actions.
const (
	ActionCreatePacket = "create-packet"
	ActionCancelPacket = "cancel-packet"
	ActionPacketStatus = "packet-status"
	ActionLabelPrint   = "label-print"
)

var (
	ErrNotExported   = errors.New("order has no packet")
	ErrNoPackets     = errors.New("no exported orders to print")
	ErrAlreadyExists = errors.New("order already exported")
)

type PacketAPI interface {
	CreatePacket(ctx context.Context, attributes packetapi.PacketAttributes) (*packetapi.PacketIDDetail, error)
	CancelPacket(ctx context.Context, packetID string) error
	PacketStatus(ctx context.Context, packetID string) (*packetapi.CurrentStatus, error)
	PacketsLabelsPdf(ctx context.Context, packetIDList []string, format string, offset int) ([]byte, error)
}

type OrderStore interface {
	GetOrder(ctx context.Context, orderNumber string) (*repository.Order, error)
	GetOrders(ctx context.Context, orderNumbers []string) ([]*repository.Order, error)
	GetCustomsDeclaration(ctx context.Context, orderNumber string) (*repository.CustomsDeclaration, []*repository.CustomsDeclarationItem, error)
	MarkPacketExported(ctx context.Context, order *repository.Order, packetID, barcode string) error
	MarkPacketCancelled(ctx context.Context, order *repository.Order) error
	RecordPacketStatus(ctx context.Context, order *repository.Order, code int, text string) error
	SetOrderAPIError(ctx context.Context, orderNumber, message string) error
	MarkLabelsPrinted(ctx context.Context, orderNumbers []string) error
	LogAPICall(ctx context.Context, orderNumber *string, action, status, title string, params interface{})
}

type LabelStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

type ExportedPacket struct {
	OrderNumber string `json:"order_number"`
	PacketID    string `json:"packet_id"`
	Barcode     string `json:"barcode"`
}

type FailedExport struct {
	OrderNumber string `json:"order_number"`
	Error       string `json:"error"`
}

type Result struct {
	Exported []ExportedPacket `json:"exported"`
	Failed   []FailedExport   `json:"failed"`
}

type Exporter struct {
	api     PacketAPI
	orders  OrderStore
	labels  LabelStore
	eshop   string
	logger  *zap.Logger
	timeNow func() time.Time
}

func NewExporter(api PacketAPI, orders OrderStore, labels LabelStore, eshop string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		api:     api,
		orders:  orders,
		labels:  labels,
		eshop:   eshop,
		logger:  logger,
		timeNow: time.Now,
	}
}

// ExportOrders creates a packet for every order. A failing order is annotated
// with the error and the batch goes on.
func (e *Exporter) ExportOrders(ctx context.Context, orderNumbers []string) (*Result, error) {
	orders, err := e.orders.GetOrders(ctx, orderNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	byNumber := make(map[string]*repository.Order, len(orders))
	for _, order := range orders {
		byNumber[order.OrderNumber] = order
	}

	result := &Result{}
	for _, number := range orderNumbers {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		order, ok := byNumber[number]
		if !ok {
			result.Failed = append(result.Failed, FailedExport{OrderNumber: number, Error: storage.ErrOrderNotFound.Error()})
			continue
		}
		if order.IsExported {
			result.Failed = append(result.Failed, FailedExport{OrderNumber: number, Error: ErrAlreadyExists.Error()})
			continue
		}

		packet, err := e.exportOrder(ctx, order)
		if err != nil {
			result.Failed = append(result.Failed, FailedExport{OrderNumber: number, Error: err.Error()})
			continue
		}
		result.Exported = append(result.Exported, *packet)
	}

	e.logger.Info("Orders exported",
		zap.Int("exported", len(result.Exported)), zap.Int("failed", len(result.Failed)))
	return result, nil
}

func (e *Exporter) exportOrder(ctx context.Context, order *repository.Order) (*ExportedPacket, error) {
	l := e.logger.With(zap.String("order_number", order.OrderNumber))
	number := order.OrderNumber

	var (
		declaration *repository.CustomsDeclaration
		items       []*repository.CustomsDeclarationItem
	)
	if featureflag.IsEnabled(ctx, featureflag.CustomsDeclaration) {
		var err error
		declaration, items, err = e.orders.GetCustomsDeclaration(ctx, number)
		if err != nil {
			return nil, err
		}
	}

	attrs := BuildPacketAttributes(order, e.eshop, declaration, items)
	detail, err := e.api.CreatePacket(ctx, attrs)
	if err != nil {
		metrics.PacketExportErrorsTotal.Inc()
		l.Warn("Packet export failed", zap.Error(err))
		if annotateErr := e.orders.SetOrderAPIError(ctx, number, err.Error()); annotateErr != nil {
			l.Error("Failed to store export error", zap.Error(annotateErr))
		}
		e.orders.LogAPICall(ctx, &number, ActionCreatePacket, storage.LogStatusError, err.Error(), attrs)
		return nil, err
	}

	if err := e.orders.MarkPacketExported(ctx, order, detail.ID, detail.Barcode); err != nil {
		// the packet exists remotely, keep its id in the log to reconcile
		e.orders.LogAPICall(ctx, &number, ActionCreatePacket, storage.LogStatusError, err.Error(), detail)
		return nil, err
	}
	if order.APIError != nil {
		if err := e.orders.SetOrderAPIError(ctx, number, ""); err != nil {
			l.Error("Failed to clear export error", zap.Error(err))
		}
	}

	metrics.PacketsExportedTotal.Inc()
	e.orders.LogAPICall(ctx, &number, ActionCreatePacket, storage.LogStatusSuccess, "Packet created", detail)
	l.Info("Packet created", zap.String("packet_id", detail.ID))

	return &ExportedPacket{OrderNumber: number, PacketID: detail.ID, Barcode: detail.Barcode}, nil
}

// PrintLabels fetches the label PDFs of the exported orders and stores them,
// returning the object keys. Packets are requested in batches.
func (e *Exporter) PrintLabels(ctx context.Context, orderNumbers []string, format string, offset int) ([]string, error) {
	if format == "" {
		format = packetapi.LabelFormatA6OnA4
	}

	orders, err := e.orders.GetOrders(ctx, orderNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var (
		packetIDs []string
		printed   []string
	)
	for _, order := range orders {
		if order.PacketID == nil {
			continue
		}
		packetIDs = append(packetIDs, *order.PacketID)
		printed = append(printed, order.OrderNumber)
	}
	if len(packetIDs) == 0 {
		return nil, ErrNoPackets
	}

	batches := chunk(packetIDs, labelBatchSize)
	keys := make([]string, len(batches))
	now := e.timeNow()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(labelWorkers)
	for i, batch := range batches {
		g.Go(func() error {
			batchOffset := 0
			if i == 0 {
				batchOffset = offset
			}
			pdf, err := e.api.PacketsLabelsPdf(gctx, batch, format, batchOffset)
			if err != nil {
				e.orders.LogAPICall(ctx, nil, ActionLabelPrint, storage.LogStatusError, err.Error(), batch)
				return err
			}

			key := objectstore.LabelKey(now, i)
			if err := e.labels.Put(gctx, key, pdf, "application/pdf"); err != nil {
				return err
			}
			keys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to print labels: %w", err)
	}

	if err := e.orders.MarkLabelsPrinted(ctx, printed); err != nil {
		return nil, fmt.Errorf("failed to mark labels printed: %w", err)
	}
	e.orders.LogAPICall(ctx, nil, ActionLabelPrint, storage.LogStatusSuccess, "Labels printed", packetIDs)
	return keys, nil
}

// CancelPacket cancels the packet of an exported order.
func (e *Exporter) CancelPacket(ctx context.Context, orderNumber string) error {
	order, err := e.orders.GetOrder(ctx, orderNumber)
	if err != nil {
		return err
	}
	if order.PacketID == nil {
		return ErrNotExported
	}

	if err := e.api.CancelPacket(ctx, *order.PacketID); err != nil {
		e.orders.LogAPICall(ctx, &orderNumber, ActionCancelPacket, storage.LogStatusError, err.Error(), *order.PacketID)
		return err
	}
	if err := e.orders.MarkPacketCancelled(ctx, order); err != nil {
		return err
	}
	e.orders.LogAPICall(ctx, &orderNumber, ActionCancelPacket, storage.LogStatusSuccess, "Packet cancelled", *order.PacketID)
	return nil
}

// RefreshStatus fetches the tracking status of an exported order.
func (e *Exporter) RefreshStatus(ctx context.Context, orderNumber string) (*packetapi.CurrentStatus, error) {
	order, err := e.orders.GetOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order.PacketID == nil {
		return nil, ErrNotExported
	}

	status, err := e.api.PacketStatus(ctx, *order.PacketID)
	if err != nil {
		e.orders.LogAPICall(ctx, &orderNumber, ActionPacketStatus, storage.LogStatusError, err.Error(), *order.PacketID)
		return nil, err
	}
	if err := e.orders.RecordPacketStatus(ctx, order, status.StatusCode, status.StatusText); err != nil {
		return nil, err
	}
	return status, nil
}

func chunk(ids []string, size int) [][]string {
	var batches [][]string
	for size < len(ids) {
		ids, batches = ids[size:], append(batches, ids[:size])
	}
	return append(batches, ids)
}
