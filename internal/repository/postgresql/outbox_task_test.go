package postgresql_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.ozon.dev/pupkingeorgij/packetery/internal/db/mocks"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/repository/postgresql"
)

func TestOutboxTaskRepo_CreateTxAssignsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOutboxTaskRepo()

	task := &repository.OutboxTask{Topic: "packet_events", Payload: json.RawMessage(`{"order_number":"1001"}`)}
	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), repository.TaskStatusCreated, task.Payload, "packet_events", gomock.Any(), gomock.Any()).
		Return(pgconn.CommandTag("INSERT 0 1"), nil)

	assert.NoError(t, repo.CreateTx(context.Background(), mockTx, task))
	assert.NotEqual(t, uuid.Nil, task.ID)
}

func TestOutboxTaskRepo_GetProcessableTasksHonoursMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewOutboxTaskRepo()

	mockTx.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
		repository.TaskStatusCreated, repository.TaskStatusFailed, 7, 20).Return(nil)

	_, err := repo.GetProcessableTasks(context.Background(), mockTx, 20, 7)
	assert.NoError(t, err)
}

func TestOutboxTaskRepo_UpdateTaskStatusMissingTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewOutboxTaskRepo()

	id := uuid.New()
	mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), id, repository.TaskStatusDone, 1, nil, nil).
		Return(pgconn.CommandTag("UPDATE 0"), nil)

	err := repo.UpdateTaskStatus(context.Background(), mockDB, id, repository.TaskStatusDone, 1, nil, nil)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}
