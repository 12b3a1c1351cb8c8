//go:generate mockgen -source ./interfaces.go -destination=./mocks/interfaces.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
)

type CarrierRepository interface {
	UpsertTx(ctx context.Context, tx db.Tx, carrier *repository.Carrier) error
	GetByID(ctx context.Context, id string) (*repository.Carrier, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]*repository.Carrier, error)
	GetOptions(ctx context.Context, carrierID string) (*repository.CarrierOptions, error)
	SaveOptions(ctx context.Context, options *repository.CarrierOptions) error
}

type PricingRuleRepository interface {
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.PricingRule, error)
	FindBy(ctx context.Context, country *string, enabled *bool) ([]*repository.PricingRule, error)
	FindEnabled(ctx context.Context, country, carrierID, method string) ([]*repository.PricingRule, error)
	FindEnabledTx(ctx context.Context, tx db.Tx, country, carrierID, method string) ([]*repository.PricingRule, error)
	CreateTx(ctx context.Context, tx db.Tx, rule *repository.PricingRule) (int64, error)
	UpdateTx(ctx context.Context, tx db.Tx, rule *repository.PricingRule) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	SetEnabledTx(ctx context.Context, tx db.Tx, id int64, enabled bool) error
	DisableExcept(ctx context.Context, ids []int64) error
}

type WeightRuleRepository interface {
	GetByPricingRuleIDs(ctx context.Context, pricingRuleIDs []int64) ([]*repository.WeightRule, error)
	CreateTx(ctx context.Context, tx db.Tx, rule *repository.WeightRule) (int64, error)
	UpdateTx(ctx context.Context, tx db.Tx, rule *repository.WeightRule) error
	DeleteOrphansTx(ctx context.Context, tx db.Tx, pricingRuleID int64, keepIDs []int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *repository.Order) error
	GetByOrderNumber(ctx context.Context, orderNumber string) (*repository.Order, error)
	GetByOrderNumbers(ctx context.Context, orderNumbers []string) ([]*repository.Order, error)
	UpdateAddress(ctx context.Context, orderNumber string, address repository.OrderAddress) error
	UpdateDetails(ctx context.Context, orderNumber string, details repository.OrderDetails) error
	MarkExportedTx(ctx context.Context, tx db.Tx, orderNumber, packetID, barcode string) error
	MarkCancelledTx(ctx context.Context, tx db.Tx, orderNumber string) error
	SetAPIError(ctx context.Context, orderNumber string, message *string, at *time.Time) error
	MarkLabelsPrinted(ctx context.Context, orderNumbers []string) error
}

type LogRepository interface {
	Create(ctx context.Context, entry *repository.LogEntry) error
	GetByOrderNumber(ctx context.Context, orderNumber string, limit int) ([]*repository.LogEntry, error)
}

type CustomsDeclarationRepository interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (*repository.CustomsDeclaration, error)
	GetItems(ctx context.Context, declarationID int64) ([]*repository.CustomsDeclarationItem, error)
	UpsertTx(ctx context.Context, tx db.Tx, declaration *repository.CustomsDeclaration) (int64, error)
	ReplaceItemsTx(ctx context.Context, tx db.Tx, declarationID int64, items []*repository.CustomsDeclarationItem) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type UserRepository interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

// CarrierCache is the read-through carrier cache consulted for carrier
// descriptors.
type CarrierCache interface {
	Get(ctx context.Context, id string) (*repository.Carrier, error)
	Set(carrier *repository.Carrier)
	Delete(id string)
}
