package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/packetery/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository/postgresql"
)

func TestPricingRuleRepo_GetByIDTx(t *testing.T) {
	ctx := context.Background()

	t.Run("rule found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewPricingRuleRepo(mock_database.NewMockDB(ctrl))

		stored := repository.PricingRule{ID: 7, CountryID: "CZ", CarrierID: "packeta", Method: "pickupPointDelivery", Enabled: true}
		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), int64(7)).
			DoAndReturn(func(_ context.Context, dest *repository.PricingRule, _ string, _ int64) error {
				*dest = stored
				return nil
			})

		rule, err := repo.GetByIDTx(ctx, mockTx, 7)
		require.NoError(t, err)
		assert.Equal(t, &stored, rule)
	})

	t.Run("rule not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewPricingRuleRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), int64(8)).Return(pgx.ErrNoRows)

		rule, err := repo.GetByIDTx(ctx, mockTx, 8)
		assert.Nil(t, rule)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestPricingRuleRepo_FindBy(t *testing.T) {
	ctx := context.Background()
	country := "SK"
	enabled := true

	tests := []struct {
		name          string
		country       *string
		enabled       *bool
		expectedQuery string
		expectedArgs  []interface{}
	}{
		{
			name:          "no filter",
			expectedQuery: "SELECT * FROM packetery_pricing_rule WHERE TRUE ORDER BY country_id, carrier_id, id",
		},
		{
			name:          "country only",
			country:       &country,
			expectedQuery: "SELECT * FROM packetery_pricing_rule WHERE TRUE AND country_id = $1 ORDER BY country_id, carrier_id, id",
			expectedArgs:  []interface{}{"SK"},
		},
		{
			name:          "country and enabled",
			country:       &country,
			enabled:       &enabled,
			expectedQuery: "SELECT * FROM packetery_pricing_rule WHERE TRUE AND country_id = $1 AND enabled = $2 ORDER BY country_id, carrier_id, id",
			expectedArgs:  []interface{}{"SK", true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewPricingRuleRepo(mockDB)

			mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), tc.expectedQuery, tc.expectedArgs...).Return(nil)

			_, err := repo.FindBy(ctx, tc.country, tc.enabled)
			assert.NoError(t, err)
		})
	}
}

func TestPricingRuleRepo_SetEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewPricingRuleRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), false, int64(3)).Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.SetEnabled(ctx, 3, false))
	})

	t.Run("missing rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewPricingRuleRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), true, int64(4)).Return(pgconn.CommandTag("UPDATE 0"), nil)

		assert.ErrorIs(t, repo.SetEnabled(ctx, 4, true), repository.ErrObjectNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewPricingRuleRepo(mockDB)

		expectedErr := errors.New("connection reset")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), true, int64(5)).Return(nil, expectedErr)

		assert.Equal(t, expectedErr, repo.SetEnabled(ctx, 5, true))
	})
}

func TestPricingRuleRepo_SetEnabledTxMissingRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewPricingRuleRepo(mock_database.NewMockDB(ctrl))

	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), true, int64(6)).Return(pgconn.CommandTag("UPDATE 0"), nil)

	assert.ErrorIs(t, repo.SetEnabledTx(context.Background(), mockTx, 6, true), repository.ErrObjectNotFound)
}

func TestPricingRuleRepo_DisableExceptSendsEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewPricingRuleRepo(mockDB)

	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), []int64{}).Return(pgconn.CommandTag("UPDATE 2"), nil)

	assert.NoError(t, repo.DisableExcept(context.Background(), nil))
}

func TestWeightRuleRepo_DeleteOrphansTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewWeightRuleRepo(mock_database.NewMockDB(ctrl))

	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), int64(9), []int64{1, 2}).Return(pgconn.CommandTag("DELETE 1"), nil)

	assert.NoError(t, repo.DeleteOrphansTx(context.Background(), mockTx, 9, []int64{1, 2}))
}

func TestWeightRuleRepo_UpdateTx(t *testing.T) {
	maxWeight := 5.0
	rule := &repository.WeightRule{ID: 99, PricingRuleID: 5, MaxWeight: &maxWeight, Price: decimal.NewFromInt(89)}

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewWeightRuleRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), rule.MaxWeight, rule.Price, int64(99), int64(5)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateTx(context.Background(), mockTx, rule))
	})

	t.Run("belongs to another pricing rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewWeightRuleRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), rule.MaxWeight, rule.Price, int64(99), int64(5)).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		assert.ErrorIs(t, repo.UpdateTx(context.Background(), mockTx, rule), repository.ErrObjectNotFound)
	})
}

func TestWeightRuleRepo_GetByPricingRuleIDsSkipsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := postgresql.NewWeightRuleRepo(mock_database.NewMockDB(ctrl))

	rules, err := repo.GetByPricingRuleIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}
