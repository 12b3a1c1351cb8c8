package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type CarrierRepo struct {
	db db.DB
}

func NewCarrierRepo(db db.DB) storage.CarrierRepository {
	return &CarrierRepo{db: db}
}

func (r *CarrierRepo) UpsertTx(ctx context.Context, tx db.Tx, carrier *repository.Carrier) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO packetery_carrier (
            id, name, has_pickup_points, requires_size, supports_cod, requires_email,
            requires_phone, max_weight, deleted, country, currency, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            has_pickup_points = EXCLUDED.has_pickup_points,
            requires_size = EXCLUDED.requires_size,
            supports_cod = EXCLUDED.supports_cod,
            requires_email = EXCLUDED.requires_email,
            requires_phone = EXCLUDED.requires_phone,
            max_weight = EXCLUDED.max_weight,
            deleted = EXCLUDED.deleted,
            country = EXCLUDED.country,
            currency = EXCLUDED.currency,
            updated_at = EXCLUDED.updated_at
    `, carrier.ID, carrier.Name, carrier.HasPickupPoints, carrier.RequiresSize, carrier.SupportsCod, carrier.RequiresEmail,
		carrier.RequiresPhone, carrier.MaxWeight, carrier.Deleted, carrier.Country, carrier.Currency, carrier.UpdatedAt)
	return err
}

func (r *CarrierRepo) GetByID(ctx context.Context, id string) (*repository.Carrier, error) {
	var carrier repository.Carrier
	err := r.db.Get(ctx, &carrier, "SELECT * FROM packetery_carrier WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &carrier, nil
}

func (r *CarrierRepo) GetAll(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error) {
	query := "SELECT * FROM packetery_carrier"
	if !includeDeleted {
		query += " WHERE deleted = FALSE"
	}
	query += " ORDER BY country, name"

	var carriers []*repository.Carrier
	err := r.db.Select(ctx, &carriers, query)
	return carriers, err
}

func (r *CarrierRepo) GetOptions(ctx context.Context, carrierID string) (*repository.CarrierOptions, error) {
	var options repository.CarrierOptions
	err := r.db.Get(ctx, &options, "SELECT * FROM packetery_carrier_option WHERE carrier_id = $1", carrierID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &options, nil
}

func (r *CarrierRepo) SaveOptions(ctx context.Context, options *repository.CarrierOptions) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO packetery_carrier_option (
            carrier_id, enabled, title, default_price, max_weight, free_shipping_limit
        ) VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (carrier_id) DO UPDATE SET
            enabled = EXCLUDED.enabled,
            title = EXCLUDED.title,
            default_price = EXCLUDED.default_price,
            max_weight = EXCLUDED.max_weight,
            free_shipping_limit = EXCLUDED.free_shipping_limit
    `, options.CarrierID, options.Enabled, options.Title, options.DefaultPrice, options.MaxWeight, options.FreeShippingLimit)
	return err
}
