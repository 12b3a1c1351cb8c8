package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO packetery_order (
            order_number, store_id, carrier_id, method,
            point_id, point_name, point_city, point_zip, point_street, point_url,
            carrier_pickup_point, is_carrier_point,
            recipient_first_name, recipient_last_name, recipient_company, recipient_email, recipient_phone,
            recipient_street, recipient_house_number, recipient_city, recipient_zip, recipient_country_id,
            address_validated, car_delivery_id, currency, value, cod, weight,
            length, width, height, adult_content, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7, $8, $9, $10,
            $11, $12,
            $13, $14, $15, $16, $17,
            $18, $19, $20, $21, $22,
            $23, $24, $25, $26, $27, $28,
            $29, $30, $31, $32, $33, $34
        )
    `, order.OrderNumber, order.StoreID, order.CarrierID, order.Method,
		order.PointID, order.PointName, order.PointCity, order.PointZip, order.PointStreet, order.PointURL,
		order.CarrierPickupPoint, order.IsCarrierPoint,
		order.RecipientFirstName, order.RecipientLastName, order.RecipientCompany, order.RecipientEmail, order.RecipientPhone,
		order.RecipientStreet, order.RecipientHouseNumber, order.RecipientCity, order.RecipientZip, order.RecipientCountryID,
		order.AddressValidated, order.CarDeliveryID, order.Currency, order.Value, order.Cod, order.Weight,
		order.Length, order.Width, order.Height, order.AdultContent, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM packetery_order WHERE order_number = $1", orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByOrderNumbers(ctx context.Context, orderNumbers []string) ([]*repository.Order, error) {
	var orders []*repository.Order
	if len(orderNumbers) == 0 {
		return orders, nil
	}
	err := r.db.Select(ctx, &orders, `
        SELECT * FROM packetery_order
        WHERE order_number = ANY($1)
        ORDER BY created_at ASC
    `, orderNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) UpdateAddress(ctx context.Context, orderNumber string, address repository.OrderAddress) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE packetery_order
        SET
            recipient_street = $1,
            recipient_house_number = $2,
            recipient_city = $3,
            recipient_zip = $4,
            recipient_country_id = $5,
            address_validated = $6,
            updated_at = NOW()
        WHERE order_number = $7
    `, address.Street, address.HouseNumber, address.City, address.Zip, address.CountryID, address.AddressValidated, orderNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) UpdateDetails(ctx context.Context, orderNumber string, details repository.OrderDetails) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE packetery_order
        SET
            weight = $1,
            length = $2,
            width = $3,
            height = $4,
            value = $5,
            cod = $6,
            adult_content = $7,
            updated_at = NOW()
        WHERE order_number = $8
    `, details.Weight, details.Length, details.Width, details.Height, details.Value, details.Cod, details.AdultContent, orderNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) MarkExportedTx(ctx context.Context, tx db.Tx, orderNumber, packetID, barcode string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE packetery_order
        SET
            is_exported = TRUE,
            packet_id = $1,
            barcode = $2,
            api_error = NULL,
            api_error_at = NULL,
            updated_at = NOW()
        WHERE order_number = $3
    `, packetID, barcode, orderNumber)
	if err != nil {
		return fmt.Errorf("failed to mark order %s exported: %w", orderNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) MarkCancelledTx(ctx context.Context, tx db.Tx, orderNumber string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE packetery_order
        SET
            is_exported = FALSE,
            packet_id = NULL,
            barcode = NULL,
            is_label_printed = FALSE,
            updated_at = NOW()
        WHERE order_number = $1
    `, orderNumber)
	if err != nil {
		return fmt.Errorf("failed to mark order %s cancelled: %w", orderNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) SetAPIError(ctx context.Context, orderNumber string, message *string, at *time.Time) error {
	_, err := r.db.Exec(ctx, `
        UPDATE packetery_order
        SET
            api_error = $1,
            api_error_at = $2,
            updated_at = NOW()
        WHERE order_number = $3
    `, message, at, orderNumber)
	return err
}

func (r *OrderRepo) MarkLabelsPrinted(ctx context.Context, orderNumbers []string) error {
	if len(orderNumbers) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
        UPDATE packetery_order
        SET is_label_printed = TRUE, updated_at = NOW()
        WHERE order_number = ANY($1)
    `, orderNumbers)
	return err
}
