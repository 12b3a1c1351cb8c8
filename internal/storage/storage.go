package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
)

// PacketEventsTopic is the kafka topic receiving packet lifecycle events.
const PacketEventsTopic = "packet_events"

type Repositories struct {
	Carriers     CarrierRepository
	PricingRules PricingRuleRepository
	WeightRules  WeightRuleRepository
	Orders       OrderRepository
	Logs         LogRepository
	Customs      CustomsDeclarationRepository
	Outbox       OutboxTaskRepository
	Users        UserRepository
}

// Storage implements the persistence use cases on top of the repositories.
type Storage struct {
	db          db.DB
	carrierRepo CarrierRepository
	pricingRepo PricingRuleRepository
	weightRepo  WeightRuleRepository
	orderRepo   OrderRepository
	logRepo     LogRepository
	customsRepo CustomsDeclarationRepository
	outboxRepo  OutboxTaskRepository
	userRepo    UserRepository
	carriers    CarrierCache
	logger      *zap.Logger
	timeNow     func() time.Time
}

func NewStorage(database db.DB, repos Repositories, carriers CarrierCache, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Storage{
		db:          database,
		carrierRepo: repos.Carriers,
		pricingRepo: repos.PricingRules,
		weightRepo:  repos.WeightRules,
		orderRepo:   repos.Orders,
		logRepo:     repos.Logs,
		customsRepo: repos.Customs,
		outboxRepo:  repos.Outbox,
		userRepo:    repos.Users,
		carriers:    carriers,
		logger:      logger,
		timeNow:     time.Now,
	}
}

func (s *Storage) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	return s.userRepo.ValidateUser(ctx, username, password)
}
