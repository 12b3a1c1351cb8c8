package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	mock_database "gitlab.ozon.dev/pupkingeorgij/packetery/internal/db/mocks"
)

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)

		gomock.InOrder(
			mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil),
			mockTx.EXPECT().Commit(ctx).Return(nil),
			mockTx.EXPECT().Rollback(gomock.Any()).Return(nil),
		)

		err := db.WithTx(ctx, mockDB, func(tx db.Tx) error {
			assert.Equal(t, mockTx, tx)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)

		expectedErr := errors.New("duplicate country")
		mockDB.EXPECT().BeginTx(ctx).Return(mockTx, nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := db.WithTx(ctx, mockDB, func(db.Tx) error { return expectedErr })
		assert.Equal(t, expectedErr, err)
	})

	t.Run("begin fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)

		expectedErr := errors.New("too many connections")
		mockDB.EXPECT().BeginTx(ctx).Return(nil, expectedErr)

		called := false
		err := db.WithTx(ctx, mockDB, func(db.Tx) error {
			called = true
			return nil
		})
		assert.Equal(t, expectedErr, err)
		assert.False(t, called)
	})
}

func TestGenerateDsn(t *testing.T) {
	dsn := db.GenerateDsn(db.Config{Host: "pg", Port: 5432, User: "u", Password: "p", Name: "packetery"})
	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=packetery sslmode=disable", dsn)
}
