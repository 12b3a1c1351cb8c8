package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore"
	mock_redisstore "gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore/mocks"
)

func TestRatesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock_redisstore.NewMockKV(ctrl)
	store := NewRatesStore(kv)
	ctx := context.Background()

	t.Run("missing table", func(t *testing.T) {
		kv.EXPECT().Get(ctx, "packetery:shipping_rates:1").Return("", redisstore.ErrKeyNotFound)

		table, err := store.Load(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, table)
	})

	t.Run("save sorted table", func(t *testing.T) {
		kv.EXPECT().Set(ctx, "packetery:shipping_rates:1",
			`{"CZ":[{"from":0,"to":5,"price":"80"},{"from":5,"to":10,"price":"120"}]}`, gomock.Any()).Return(nil)

		err := store.Save(ctx, "1", RatesTable{"CZ": {
			{Range: Range{From: 5, To: 10}, Price: decimal.NewFromInt(120)},
			{Range: Range{From: 0, To: 5}, Price: decimal.NewFromInt(80)},
		}})
		assert.NoError(t, err)
	})

	t.Run("overlapping table is not saved", func(t *testing.T) {
		err := store.Save(ctx, "1", RatesTable{"CZ": {
			{Range: Range{From: 0, To: 6}, Price: decimal.NewFromInt(80)},
			{Range: Range{From: 5, To: 10}, Price: decimal.NewFromInt(120)},
		}})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
