package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

var ErrOrderNotFound = errors.New("order not found")

// PlaceOrder stores the shipping snapshot of a newly placed order. Each order
// is inserted once.
func (s *Storage) PlaceOrder(ctx context.Context, order *repository.Order) error {
	now := s.timeNow().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.RecipientCountryID = strings.ToUpper(order.RecipientCountryID)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("place_order").Inc()
		return fmt.Errorf("failed to add order %s: %w", order.OrderNumber, err)
	}

	metrics.OrdersPlacedTotal.Inc()
	s.logger.Info("Order snapshot stored",
		zap.String("order_number", order.OrderNumber),
		zap.String("carrier_id", order.CarrierID),
		zap.String("method", order.Method))
	return nil
}

func (s *Storage) GetOrder(ctx context.Context, orderNumber string) (*repository.Order, error) {
	order, err := s.orderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *Storage) GetOrders(ctx context.Context, orderNumbers []string) ([]*repository.Order, error) {
	return s.orderRepo.GetByOrderNumbers(ctx, orderNumbers)
}

// StagedOrderKey is the key an order is staged under before it gets its final
// number: the part of the order number before the first "-".
func StagedOrderKey(orderNumber string) string {
	key, _, _ := strings.Cut(orderNumber, "-")
	return key
}

// GetStagedOrder returns the row staged for an admin-created order.
func (s *Storage) GetStagedOrder(ctx context.Context, orderNumber string) (*repository.Order, error) {
	return s.GetOrder(ctx, StagedOrderKey(orderNumber))
}

func (s *Storage) UpdateOrderAddress(ctx context.Context, orderNumber string, address repository.OrderAddress) error {
	address.CountryID = strings.ToUpper(address.CountryID)
	if err := s.orderRepo.UpdateAddress(ctx, orderNumber, address); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order %s address: %w", orderNumber, err)
	}
	return nil
}

func (s *Storage) UpdateOrderDetails(ctx context.Context, orderNumber string, details repository.OrderDetails) error {
	if details.Weight < 0 {
		return fmt.Errorf("weight must not be negative: %g", details.Weight)
	}
	if err := s.orderRepo.UpdateDetails(ctx, orderNumber, details); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order %s details: %w", orderNumber, err)
	}
	return nil
}
