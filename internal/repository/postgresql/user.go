package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

// UserRepo checks admin credentials against packetery_admin_user.
type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

// ValidateUser reports whether the password matches the stored bcrypt hash.
// Unknown users and wrong passwords are both false without an error.
func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var hash string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM packetery_admin_user WHERE username = $1", username).Scan(&hash)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to load admin user %q: %w", username, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("invalid password hash of %q: %w", username, err)
	}
	return true, nil
}
