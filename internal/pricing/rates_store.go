package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore"
)

const ratesKeyPrefix = "packetery:shipping_rates:"

// RatesStore keeps the legacy per-store shipping rates tables.
type RatesStore struct {
	kv redisstore.KV
}

func NewRatesStore(kv redisstore.KV) *RatesStore {
	return &RatesStore{kv: kv}
}

// Load returns the table of the store, empty if none was saved.
func (s *RatesStore) Load(ctx context.Context, storeID string) (RatesTable, error) {
	raw, err := s.kv.Get(ctx, ratesKeyPrefix+storeID)
	if err != nil {
		if errors.Is(err, redisstore.ErrKeyNotFound) {
			return RatesTable{}, nil
		}
		return nil, fmt.Errorf("failed to load shipping rates: %w", err)
	}

	table := RatesTable{}
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, fmt.Errorf("failed to decode shipping rates: %w", err)
	}
	return table, nil
}

// Save validates the table and stores it without expiration.
func (s *RatesStore) Save(ctx context.Context, storeID string, table RatesTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode shipping rates: %w", err)
	}
	return s.kv.Set(ctx, ratesKeyPrefix+storeID, string(data), 0)
}
