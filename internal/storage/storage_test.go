package storage

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/packetery/internal/db/mocks"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage/mocks"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type storageMocks struct {
	db       *mock_database.MockDB
	tx       *mock_database.MockTx
	carriers *mock_storage.MockCarrierRepository
	pricing  *mock_storage.MockPricingRuleRepository
	weights  *mock_storage.MockWeightRuleRepository
	orders   *mock_storage.MockOrderRepository
	logs     *mock_storage.MockLogRepository
	customs  *mock_storage.MockCustomsDeclarationRepository
	outbox   *mock_storage.MockOutboxTaskRepository
	users    *mock_storage.MockUserRepository
	cache    *mock_storage.MockCarrierCache
}

func newTestStorage(t *testing.T) (*Storage, *storageMocks) {
	ctrl := gomock.NewController(t)
	m := &storageMocks{
		db:       mock_database.NewMockDB(ctrl),
		tx:       mock_database.NewMockTx(ctrl),
		carriers: mock_storage.NewMockCarrierRepository(ctrl),
		pricing:  mock_storage.NewMockPricingRuleRepository(ctrl),
		weights:  mock_storage.NewMockWeightRuleRepository(ctrl),
		orders:   mock_storage.NewMockOrderRepository(ctrl),
		logs:     mock_storage.NewMockLogRepository(ctrl),
		customs:  mock_storage.NewMockCustomsDeclarationRepository(ctrl),
		outbox:   mock_storage.NewMockOutboxTaskRepository(ctrl),
		users:    mock_storage.NewMockUserRepository(ctrl),
		cache:    mock_storage.NewMockCarrierCache(ctrl),
	}

	s := NewStorage(m.db, Repositories{
		Carriers:     m.carriers,
		PricingRules: m.pricing,
		WeightRules:  m.weights,
		Orders:       m.orders,
		Logs:         m.logs,
		Customs:      m.customs,
		Outbox:       m.outbox,
		Users:        m.users,
	}, m.cache, nil)
	s.timeNow = func() time.Time { return fixedTime }
	return s, m
}

// expectTx expects one transaction to be started. The deferred rollback runs
// after commit too.
func (m *storageMocks) expectTx() {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}
