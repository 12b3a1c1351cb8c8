package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "gitlab.ozon.dev/pupkingeorgij/packetery/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository/postgresql"
)

type stringRow struct {
	value string
	err   error
}

func (r stringRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func TestUserRepo_ValidateUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		row      stringRow
		valid    bool
		wantErr  bool
	}{
		{name: "valid password", password: "secret", row: stringRow{value: string(hash)}, valid: true},
		{name: "wrong password", password: "guess", row: stringRow{value: string(hash)}},
		{name: "unknown user", password: "secret", row: stringRow{err: pgx.ErrNoRows}},
		{name: "database error", password: "secret", row: stringRow{err: errors.New("conn closed")}, wantErr: true},
		{name: "corrupt hash", password: "secret", row: stringRow{value: "plain"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewUserRepo(mockDB)

			mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), "admin").Return(tc.row)

			valid, err := repo.ValidateUser(context.Background(), "admin", tc.password)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.valid, valid)
		})
	}
}
