package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type PricingRuleRepo struct {
	db db.DB
}

func NewPricingRuleRepo(db db.DB) storage.PricingRuleRepository {
	return &PricingRuleRepo{db: db}
}

// GetByIDTx loads a pricing rule and locks it until tx ends.
func (r *PricingRuleRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.PricingRule, error) {
	var rule repository.PricingRule
	err := tx.Get(ctx, &rule, "SELECT * FROM packetery_pricing_rule WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rule, nil
}

func (r *PricingRuleRepo) FindBy(ctx context.Context, country *string, enabled *bool) ([]*repository.PricingRule, error) {
	query := "SELECT * FROM packetery_pricing_rule WHERE TRUE"
	var args []interface{}

	if country != nil {
		args = append(args, *country)
		query += fmt.Sprintf(" AND country_id = $%d", len(args))
	}
	if enabled != nil {
		args = append(args, *enabled)
		query += fmt.Sprintf(" AND enabled = $%d", len(args))
	}
	query += " ORDER BY country_id, carrier_id, id"

	var rules []*repository.PricingRule
	err := r.db.Select(ctx, &rules, query, args...)
	return rules, err
}

func (r *PricingRuleRepo) FindEnabled(ctx context.Context, country, carrierID, method string) ([]*repository.PricingRule, error) {
	var rules []*repository.PricingRule
	err := r.db.Select(ctx, &rules, `
        SELECT * FROM packetery_pricing_rule
        WHERE country_id = $1 AND carrier_id = $2 AND method = $3 AND enabled = TRUE
        ORDER BY id ASC
    `, country, carrierID, method)
	return rules, err
}

// FindEnabledTx is FindEnabled locking the found rules until tx ends.
func (r *PricingRuleRepo) FindEnabledTx(ctx context.Context, tx db.Tx, country, carrierID, method string) ([]*repository.PricingRule, error) {
	var rules []*repository.PricingRule
	err := tx.Select(ctx, &rules, `
        SELECT * FROM packetery_pricing_rule
        WHERE country_id = $1 AND carrier_id = $2 AND method = $3 AND enabled = TRUE
        ORDER BY id ASC
        FOR UPDATE
    `, country, carrierID, method)
	return rules, err
}

func (r *PricingRuleRepo) CreateTx(ctx context.Context, tx db.Tx, rule *repository.PricingRule) (int64, error) {
	var id int64
	err := tx.Get(ctx, &id, `
        INSERT INTO packetery_pricing_rule (
            country_id, carrier_id, method, enabled, free_shipment
        ) VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, rule.CountryID, rule.CarrierID, rule.Method, rule.Enabled, rule.FreeShipment)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pricing rule: %w", err)
	}
	return id, nil
}

func (r *PricingRuleRepo) UpdateTx(ctx context.Context, tx db.Tx, rule *repository.PricingRule) error {
	tag, err := tx.Exec(ctx, `
        UPDATE packetery_pricing_rule
        SET
            country_id = $1,
            carrier_id = $2,
            method = $3,
            enabled = $4,
            free_shipment = $5
        WHERE id = $6
    `, rule.CountryID, rule.CarrierID, rule.Method, rule.Enabled, rule.FreeShipment, rule.ID)
	if err != nil {
		return fmt.Errorf("failed to update pricing rule %d: %w", rule.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

const setEnabledQuery = "UPDATE packetery_pricing_rule SET enabled = $1 WHERE id = $2"

func (r *PricingRuleRepo) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	return setEnabled(ctx, r.db, id, enabled)
}

func (r *PricingRuleRepo) SetEnabledTx(ctx context.Context, tx db.Tx, id int64, enabled bool) error {
	return setEnabled(ctx, tx, id, enabled)
}

func setEnabled(ctx context.Context, executor execer, id int64, enabled bool) error {
	tag, err := executor.Exec(ctx, setEnabledQuery, enabled, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *PricingRuleRepo) DisableExcept(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	_, err := r.db.Exec(ctx, "UPDATE packetery_pricing_rule SET enabled = FALSE WHERE NOT (id = ANY($1))", ids)
	return err
}
