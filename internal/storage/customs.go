package storage

import (
	"context"
	"errors"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

var ErrInvalidCustomsDeclaration = errors.New("invalid customs declaration")

// SaveCustomsDeclaration stores the declaration of an order and replaces its
// items.
func (s *Storage) SaveCustomsDeclaration(ctx context.Context, declaration *repository.CustomsDeclaration, items []*repository.CustomsDeclarationItem) error {
	if declaration.InvoiceNumber == "" {
		return fmt.Errorf("%w: invoice number is required", ErrInvalidCustomsDeclaration)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidCustomsDeclaration)
	}
	for _, item := range items {
		if item.UnitsCount <= 0 {
			return fmt.Errorf("%w: item %s has no units", ErrInvalidCustomsDeclaration, item.CustomsCode)
		}
	}

	return db.WithTx(ctx, s.db, func(tx db.Tx) error {
		id, err := s.customsRepo.UpsertTx(ctx, tx, declaration)
		if err != nil {
			return err
		}
		declaration.ID = id
		return s.customsRepo.ReplaceItemsTx(ctx, tx, id, items)
	})
}

// GetCustomsDeclaration returns the declaration of an order with its items,
// or nil when the order has none.
func (s *Storage) GetCustomsDeclaration(ctx context.Context, orderNumber string) (*repository.CustomsDeclaration, []*repository.CustomsDeclarationItem, error) {
	declaration, err := s.customsRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get customs declaration: %w", err)
	}

	items, err := s.customsRepo.GetItems(ctx, declaration.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get customs declaration items: %w", err)
	}
	return declaration, items, nil
}
