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

type CustomsDeclarationRepo struct {
	db db.DB
}

func NewCustomsDeclarationRepo(db db.DB) storage.CustomsDeclarationRepository {
	return &CustomsDeclarationRepo{db: db}
}

func (r *CustomsDeclarationRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*repository.CustomsDeclaration, error) {
	var declaration repository.CustomsDeclaration
	err := r.db.Get(ctx, &declaration, "SELECT * FROM packetery_customs_declaration WHERE order_number = $1", orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &declaration, nil
}

func (r *CustomsDeclarationRepo) GetItems(ctx context.Context, declarationID int64) ([]*repository.CustomsDeclarationItem, error) {
	var items []*repository.CustomsDeclarationItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM packetery_customs_declaration_item
        WHERE customs_declaration_id = $1
        ORDER BY id ASC
    `, declarationID)
	return items, err
}

func (r *CustomsDeclarationRepo) UpsertTx(ctx context.Context, tx db.Tx, declaration *repository.CustomsDeclaration) (int64, error) {
	var id int64
	err := tx.Get(ctx, &id, `
        INSERT INTO packetery_customs_declaration (
            order_number, ead, delivery_cost, invoice_number, invoice_issue_date, mrn
        ) VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (order_number) DO UPDATE SET
            ead = EXCLUDED.ead,
            delivery_cost = EXCLUDED.delivery_cost,
            invoice_number = EXCLUDED.invoice_number,
            invoice_issue_date = EXCLUDED.invoice_issue_date,
            mrn = EXCLUDED.mrn
        RETURNING id
    `, declaration.OrderNumber, declaration.Ead, declaration.DeliveryCost, declaration.InvoiceNumber,
		declaration.InvoiceIssueDate, declaration.Mrn)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert customs declaration: %w", err)
	}
	return id, nil
}

func (r *CustomsDeclarationRepo) ReplaceItemsTx(ctx context.Context, tx db.Tx, declarationID int64, items []*repository.CustomsDeclarationItem) error {
	if _, err := tx.Exec(ctx, "DELETE FROM packetery_customs_declaration_item WHERE customs_declaration_id = $1", declarationID); err != nil {
		return fmt.Errorf("failed to delete customs declaration items: %w", err)
	}

	for _, item := range items {
		_, err := tx.Exec(ctx, `
            INSERT INTO packetery_customs_declaration_item (
                customs_declaration_id, customs_code, value, product_name_en, product_name,
                units_count, country_of_origin, weight, is_food_or_book, is_voc
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        `, declarationID, item.CustomsCode, item.Value, item.ProductNameEn, item.ProductName,
			item.UnitsCount, item.CountryOfOrigin, item.Weight, item.IsFoodOrBook, item.IsVoc)
		if err != nil {
			return fmt.Errorf("failed to insert customs declaration item: %w", err)
		}
	}
	return nil
}
