package featureflag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_redisstore "gitlab.ozon.dev/pupkingeorgij/packetery/internal/redisstore/mocks"
)

func TestStore_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock_redisstore.NewMockKV(ctrl)
	ctx := context.Background()
	store := NewStore(kv, nil, nil)

	t.Run("stored values override defaults", func(t *testing.T) {
		kv.EXPECT().HGetAll(ctx, flagsKey).Return(map[string]string{
			CarDelivery:           "true",
			PickupPointValidation: "0",
			"broken":              "maybe",
		}, nil)

		flags, err := store.Load(ctx)
		require.NoError(t, err)
		assert.True(t, flags[CarDelivery])
		assert.False(t, flags[PickupPointValidation])
		assert.True(t, flags[CustomsDeclaration])
		_, ok := flags["broken"]
		assert.False(t, ok)
	})

	t.Run("redis failure falls back to defaults", func(t *testing.T) {
		kv.EXPECT().HGetAll(ctx, flagsKey).Return(nil, errors.New("connection refused"))

		flags, err := store.Load(ctx)
		assert.Error(t, err)
		assert.Equal(t, DefaultFlags(), flags)
	})
}

func TestStore_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock_redisstore.NewMockKV(ctrl)
	ctx := context.Background()
	kv.EXPECT().HSet(ctx, flagsKey, map[string]string{CarDelivery: "true"}).Return(nil)

	assert.NoError(t, NewStore(kv, nil, nil).Set(ctx, CarDelivery, true))
}

func TestIsEnabled(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsEnabled(ctx, CarDelivery))
	assert.True(t, IsEnabled(ctx, PickupPointValidation))

	ctx = WithFlags(ctx, Flags{CarDelivery: true})
	assert.True(t, IsEnabled(ctx, CarDelivery))
	assert.False(t, IsEnabled(ctx, PickupPointValidation))
}
