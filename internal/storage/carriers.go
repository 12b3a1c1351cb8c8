package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

var ErrCarrierNotFound = errors.New("carrier not found")

// CarrierConfig resolves the store configuration of the carrier served by
// strategy. A carrier without stored options is disabled.
func (s *Storage) CarrierConfig(ctx context.Context, strategy carrier.Strategy, storeID string) (*carrier.Config, error) {
	carrierID := carrier.CarrierIDFromCode(strategy.Code())

	c, options, err := s.carrierWithOptions(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	cfg := strategy.CreateConfig(storeID, c, options)
	return &cfg, nil
}

func (s *Storage) carrierWithOptions(ctx context.Context, carrierID string) (*repository.Carrier, *repository.CarrierOptions, error) {
	c, err := s.carriers.Get(ctx, carrierID)
	if err != nil {
		if !errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("failed to get carrier %s: %w", carrierID, err)
		}
		c = nil
	}

	options, err := s.carrierRepo.GetOptions(ctx, carrierID)
	if err != nil {
		if !errors.Is(err, repository.ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("failed to get carrier %s options: %w", carrierID, err)
		}
		options = nil
	}
	return c, options, nil
}

func (s *Storage) carrierMaxWeight(ctx context.Context, carrierID string) (float64, error) {
	c, options, err := s.carrierWithOptions(ctx, carrierID)
	if err != nil {
		return 0, err
	}
	if c == nil && carrierID != carrier.PacketaID {
		return 0, fmt.Errorf("%w: %s", ErrCarrierNotFound, carrierID)
	}
	return carrier.GlobalMaxWeight(c, options), nil
}

// SyncCarriers stores the carrier feed. Carriers missing from the feed are
// kept but marked deleted.
func (s *Storage) SyncCarriers(ctx context.Context, feed []*repository.Carrier) error {
	known, err := s.carrierRepo.GetAll(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to get carriers: %w", err)
	}

	inFeed := make(map[string]struct{}, len(feed))
	for _, c := range feed {
		inFeed[c.ID] = struct{}{}
	}

	var upserted []*repository.Carrier
	err = db.WithTx(ctx, s.db, func(tx db.Tx) error {
		now := s.timeNow().UTC()
		for _, c := range feed {
			c.Country = strings.ToUpper(c.Country)
			c.UpdatedAt = now
			if err := s.carrierRepo.UpsertTx(ctx, tx, c); err != nil {
				return fmt.Errorf("failed to upsert carrier %s: %w", c.ID, err)
			}
			upserted = append(upserted, c)
		}
		for _, c := range known {
			if _, ok := inFeed[c.ID]; ok || c.Deleted {
				continue
			}
			deleted := *c
			deleted.Deleted = true
			deleted.UpdatedAt = now
			if err := s.carrierRepo.UpsertTx(ctx, tx, &deleted); err != nil {
				return fmt.Errorf("failed to mark carrier %s deleted: %w", c.ID, err)
			}
			upserted = append(upserted, &deleted)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, c := range upserted {
		s.carriers.Set(c)
	}
	s.logger.Info("Carriers synchronized", zap.Int("feed", len(feed)), zap.Int("written", len(upserted)))
	return nil
}

func (s *Storage) ListCarriers(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error) {
	carriers, err := s.carrierRepo.GetAll(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list carriers: %w", err)
	}
	return carriers, nil
}

// GetAll lets Storage act as the carrier source of the strategy registry.
func (s *Storage) GetAll(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error) {
	return s.ListCarriers(ctx, includeDeleted)
}

func (s *Storage) SaveCarrierOptions(ctx context.Context, options *repository.CarrierOptions) error {
	if options.CarrierID == "" {
		return errors.New("carrier id is required")
	}
	if options.CarrierID != carrier.PacketaID {
		if _, err := s.carriers.Get(ctx, options.CarrierID); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return fmt.Errorf("%w: %s", ErrCarrierNotFound, options.CarrierID)
			}
			return err
		}
	}
	if err := s.carrierRepo.SaveOptions(ctx, options); err != nil {
		return fmt.Errorf("failed to save carrier %s options: %w", options.CarrierID, err)
	}
	return nil
}
