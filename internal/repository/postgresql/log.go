package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type LogRepo struct {
	db db.DB
}

func NewLogRepo(db db.DB) storage.LogRepository {
	return &LogRepo{db: db}
}

func (r *LogRepo) Create(ctx context.Context, entry *repository.LogEntry) error {
	params := entry.Params
	if len(params) == 0 {
		params = []byte("{}")
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO packetery_log (
            order_number, action, status, title, params, date
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.OrderNumber, entry.Action, entry.Status, entry.Title, params, entry.Date)
	return err
}

func (r *LogRepo) GetByOrderNumber(ctx context.Context, orderNumber string, limit int) ([]*repository.LogEntry, error) {
	query := `
        SELECT * FROM packetery_log
        WHERE order_number = $1
        ORDER BY date DESC
    `
	args := []interface{}{orderNumber}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var entries []*repository.LogEntry
	err := r.db.Select(ctx, &entries, query, args...)
	return entries, err
}
