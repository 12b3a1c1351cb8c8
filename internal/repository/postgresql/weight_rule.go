package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type WeightRuleRepo struct {
	db db.DB
}

func NewWeightRuleRepo(db db.DB) storage.WeightRuleRepository {
	return &WeightRuleRepo{db: db}
}

func (r *WeightRuleRepo) GetByPricingRuleIDs(ctx context.Context, pricingRuleIDs []int64) ([]*repository.WeightRule, error) {
	var rules []*repository.WeightRule
	if len(pricingRuleIDs) == 0 {
		return rules, nil
	}
	err := r.db.Select(ctx, &rules, `
        SELECT * FROM packetery_weight_rule
        WHERE packetery_pricing_rule_id = ANY($1)
        ORDER BY packetery_pricing_rule_id, id
    `, pricingRuleIDs)
	return rules, err
}

func (r *WeightRuleRepo) CreateTx(ctx context.Context, tx db.Tx, rule *repository.WeightRule) (int64, error) {
	var id int64
	err := tx.Get(ctx, &id, `
        INSERT INTO packetery_weight_rule (
            packetery_pricing_rule_id, max_weight, price
        ) VALUES ($1, $2, $3)
        RETURNING id
    `, rule.PricingRuleID, rule.MaxWeight, rule.Price)
	if err != nil {
		return 0, fmt.Errorf("failed to insert weight rule: %w", err)
	}
	return id, nil
}

// UpdateTx updates a weight rule of its pricing rule. A weight rule of another
// pricing rule is not found.
func (r *WeightRuleRepo) UpdateTx(ctx context.Context, tx db.Tx, rule *repository.WeightRule) error {
	tag, err := tx.Exec(ctx, `
        UPDATE packetery_weight_rule
        SET
            max_weight = $1,
            price = $2
        WHERE id = $3 AND packetery_pricing_rule_id = $4
    `, rule.MaxWeight, rule.Price, rule.ID, rule.PricingRuleID)
	if err != nil {
		return fmt.Errorf("failed to update weight rule %d: %w", rule.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// DeleteOrphansTx removes the weight rules of a pricing rule that are not in keepIDs.
func (r *WeightRuleRepo) DeleteOrphansTx(ctx context.Context, tx db.Tx, pricingRuleID int64, keepIDs []int64) error {
	if keepIDs == nil {
		keepIDs = []int64{}
	}
	_, err := tx.Exec(ctx, `
        DELETE FROM packetery_weight_rule
        WHERE packetery_pricing_rule_id = $1 AND NOT (id = ANY($2))
    `, pricingRuleID, keepIDs)
	if err != nil {
		return fmt.Errorf("failed to delete orphaned weight rules of pricing rule %d: %w", pricingRuleID, err)
	}
	return nil
}
