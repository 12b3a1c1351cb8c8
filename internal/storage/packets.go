package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

// Log statuses of API calls.
const (
	LogStatusSuccess = "success"
	LogStatusError   = "error"
)

// MarkPacketExported stores the packet created for an order and enqueues the
// export event in the same transaction.
func (s *Storage) MarkPacketExported(ctx context.Context, order *repository.Order, packetID, barcode string) error {
	return db.WithTx(ctx, s.db, func(tx db.Tx) error {
		if err := s.orderRepo.MarkExportedTx(ctx, tx, order.OrderNumber, packetID, barcode); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to mark order %s exported: %w", order.OrderNumber, err)
		}
		return s.enqueuePacketEventTx(ctx, tx, repository.PacketEventPayload{
			Event:       repository.PacketEventExported,
			OrderNumber: order.OrderNumber,
			PacketID:    packetID,
			Barcode:     barcode,
			CarrierID:   order.CarrierID,
		})
	})
}

// MarkPacketCancelled resets the export state of an order whose packet was
// cancelled.
func (s *Storage) MarkPacketCancelled(ctx context.Context, order *repository.Order) error {
	packetID := ""
	if order.PacketID != nil {
		packetID = *order.PacketID
	}
	return db.WithTx(ctx, s.db, func(tx db.Tx) error {
		if err := s.orderRepo.MarkCancelledTx(ctx, tx, order.OrderNumber); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to mark order %s cancelled: %w", order.OrderNumber, err)
		}
		return s.enqueuePacketEventTx(ctx, tx, repository.PacketEventPayload{
			Event:       repository.PacketEventCancelled,
			OrderNumber: order.OrderNumber,
			PacketID:    packetID,
			CarrierID:   order.CarrierID,
		})
	})
}

// RecordPacketStatus enqueues the current tracking status of a packet.
func (s *Storage) RecordPacketStatus(ctx context.Context, order *repository.Order, code int, text string) error {
	packetID := ""
	if order.PacketID != nil {
		packetID = *order.PacketID
	}
	return db.WithTx(ctx, s.db, func(tx db.Tx) error {
		return s.enqueuePacketEventTx(ctx, tx, repository.PacketEventPayload{
			Event:       repository.PacketEventStatus,
			OrderNumber: order.OrderNumber,
			PacketID:    packetID,
			CarrierID:   order.CarrierID,
			StatusCode:  code,
			StatusText:  text,
		})
	})
}

func (s *Storage) enqueuePacketEventTx(ctx context.Context, tx db.Tx, payload repository.PacketEventPayload) error {
	payload.Timestamp = s.timeNow().UTC()
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal packet event: %w", err)
	}

	task := &repository.OutboxTask{
		Topic:   PacketEventsTopic,
		Payload: data,
	}
	if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue packet event: %w", err)
	}
	return nil
}

// SetOrderAPIError annotates an order with the last Packet API failure. An
// empty message clears the annotation.
func (s *Storage) SetOrderAPIError(ctx context.Context, orderNumber, message string) error {
	if message == "" {
		return s.orderRepo.SetAPIError(ctx, orderNumber, nil, nil)
	}
	now := s.timeNow().UTC()
	return s.orderRepo.SetAPIError(ctx, orderNumber, &message, &now)
}

func (s *Storage) MarkLabelsPrinted(ctx context.Context, orderNumbers []string) error {
	if len(orderNumbers) == 0 {
		return nil
	}
	return s.orderRepo.MarkLabelsPrinted(ctx, orderNumbers)
}

// LogAPICall writes a Packet API call to the API log. Failures are logged and
// swallowed so that logging never breaks the call itself.
func (s *Storage) LogAPICall(ctx context.Context, orderNumber *string, action, status, title string, params interface{}) {
	var raw json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			s.logger.Warn("Failed to marshal API log params", zap.String("action", action), zap.Error(err))
		} else {
			raw = data
		}
	}

	entry := &repository.LogEntry{
		OrderNumber: orderNumber,
		Action:      action,
		Status:      status,
		Title:       title,
		Params:      raw,
		Date:        s.timeNow().UTC(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write API log", zap.String("action", action), zap.Error(err))
	}
}

func (s *Storage) GetOrderLog(ctx context.Context, orderNumber string, limit int) ([]*repository.LogEntry, error) {
	entries, err := s.logRepo.GetByOrderNumber(ctx, orderNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order log: %w", err)
	}
	return entries, nil
}
