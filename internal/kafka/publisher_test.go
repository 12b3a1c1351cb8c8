package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/db"
	mock_database "gitlab.ozon.dev/pupkingeorgij/packetery/internal/db/mocks"
	mock_kafka "gitlab.ozon.dev/pupkingeorgij/packetery/internal/kafka/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/packetery/internal/storage/mocks"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type publisherMocks struct {
	db       *mock_database.MockDB
	tx       *mock_database.MockTx
	repo     *mock_storage.MockOutboxTaskRepository
	producer *mock_kafka.MockProducer
}

func newTestPublisher(t *testing.T) (*Publisher, *publisherMocks) {
	ctrl := gomock.NewController(t)
	m := &publisherMocks{
		db:       mock_database.NewMockDB(ctrl),
		tx:       mock_database.NewMockTx(ctrl),
		repo:     mock_storage.NewMockOutboxTaskRepository(ctrl),
		producer: mock_kafka.NewMockProducer(ctrl),
	}
	p := NewPublisher(m.db, m.repo, m.producer, PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
	}, nil)
	p.timeNow = func() time.Time { return fixedTime }
	return p, m
}

func (m *publisherMocks) expectClaim(ctx context.Context, tasks []*repository.OutboxTask) {
	m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	m.repo.EXPECT().GetProcessableTasks(ctx, m.tx, 10, 3).Return(tasks, nil)
	for _, task := range tasks {
		m.repo.EXPECT().UpdateTaskStatusTx(ctx, m.tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil).Return(nil)
	}
	m.tx.EXPECT().Commit(ctx).Return(nil)
}

func packetTask(t *testing.T, orderNumber string, attempts int) *repository.OutboxTask {
	payload, err := json.Marshal(repository.PacketEventPayload{
		Event:       repository.PacketEventExported,
		OrderNumber: orderNumber,
		PacketID:    "555",
	})
	require.NoError(t, err)
	return &repository.OutboxTask{
		ID:       uuid.New(),
		Status:   repository.TaskStatusCreated,
		Topic:    "packet_events",
		Payload:  payload,
		Attempts: attempts,
	}
}

func TestPublisher_ProcessBatch(t *testing.T) {
	p, m := newTestPublisher(t)
	ctx := context.Background()

	sent := packetTask(t, "1001", 0)
	failed := packetTask(t, "1002", 2)
	m.expectClaim(ctx, []*repository.OutboxTask{sent, failed})

	m.producer.EXPECT().SendMessage(ctx, "packet_events", []byte("1001"), []byte(sent.Payload)).Return(nil)
	m.repo.EXPECT().UpdateTaskStatus(ctx, m.db, sent.ID, repository.TaskStatusDone, 0, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DB, _ uuid.UUID, _ repository.TaskStatus, _ int, _ *string, completedAt *time.Time) error {
			require.NotNil(t, completedAt)
			assert.Equal(t, fixedTime, *completedAt)
			return nil
		})

	m.producer.EXPECT().SendMessage(ctx, "packet_events", []byte("1002"), gomock.Any()).Return(errors.New("broker unavailable"))
	m.repo.EXPECT().UpdateTaskStatus(ctx, m.db, failed.ID, repository.TaskStatusFailed, 3, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ db.DB, _ uuid.UUID, _ repository.TaskStatus, _ int, lastError *string, _ *time.Time) error {
			require.NotNil(t, lastError)
			assert.Equal(t, "broker unavailable", *lastError)
			return nil
		})

	assert.NoError(t, p.processBatch(ctx))
}

func TestPublisher_ProcessBatchEmpty(t *testing.T) {
	p, m := newTestPublisher(t)
	ctx := context.Background()
	m.expectClaim(ctx, nil)

	assert.NoError(t, p.processBatch(ctx))
}

func TestPublisher_ProcessBatchClaimFailure(t *testing.T) {
	p, m := newTestPublisher(t)
	ctx := context.Background()

	m.db.EXPECT().BeginTx(ctx).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	m.repo.EXPECT().GetProcessableTasks(ctx, m.tx, 10, 3).Return(nil, errors.New("deadlock detected"))

	assert.Error(t, p.processBatch(ctx))
}

func TestPublisher_ShutdownStopsBatch(t *testing.T) {
	p, m := newTestPublisher(t)
	ctx := context.Background()
	m.expectClaim(ctx, []*repository.OutboxTask{packetTask(t, "1001", 0)})
	m.producer.EXPECT().Close().Return(nil)

	p.Shutdown()
	assert.ErrorIs(t, p.processBatch(ctx), errShutdown)
}

func TestMessageKey(t *testing.T) {
	task := packetTask(t, "1001", 0)
	assert.Equal(t, []byte("1001"), messageKey(task))

	task.Payload = json.RawMessage(`{"foo":"bar"}`)
	assert.Equal(t, []byte(task.ID.String()), messageKey(task))
}
