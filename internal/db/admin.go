package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the admin user for the REST admin endpoints unless it
// already exists.
func EnsureAdmin(ctx context.Context, database DB, username, password string, logger *zap.Logger) error {
	if username == "" || password == "" {
		return errors.New("admin username and password are required")
	}

	var count int
	err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM packetery_admin_user WHERE username = $1", username).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}

	if count > 0 {
		logger.Info("Admin user already exists", zap.String("username", username))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err = database.Exec(ctx, "INSERT INTO packetery_admin_user (username, password) VALUES ($1, $2)", username, string(hashed)); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Info("Admin user created successfully", zap.String("username", username))
	return nil
}
