package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	orderNumber *string
	action      string
	status      string
	title       string
}

type recordingSink struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (s *recordingSink) LogAPICall(_ context.Context, orderNumber *string, action, status, title string, _ interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, recordedCall{orderNumber: orderNumber, action: action, status: status, title: title})
}

func (s *recordingSink) snapshot() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedCall(nil), s.calls...)
}

func TestAuditManagerFlushesOnShutdown(t *testing.T) {
	sink := &recordingSink{}
	m := NewAuditManager(2, 2, time.Hour, nil)
	m.SetSink(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	m.LogEntry(ctx, AuditLogEntry{Handler: "exportOrders", StatusCode: http.StatusOK})
	m.LogEntry(ctx, AuditLogEntry{Handler: "cancelPacket", StatusCode: http.StatusConflict, OrderNumber: "1001"})
	m.LogEntry(ctx, AuditLogEntry{Handler: "orderLog", StatusCode: http.StatusOK, OrderNumber: "1002"})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	m.Shutdown(shutdownCtx)

	calls := sink.snapshot()
	require.Len(t, calls, 3)

	byTitle := make(map[string]recordedCall, len(calls))
	for _, c := range calls {
		assert.Equal(t, auditLogAction, c.action)
		byTitle[c.title] = c
	}
	assert.Equal(t, "success", byTitle["exportOrders"].status)
	assert.Nil(t, byTitle["exportOrders"].orderNumber)
	assert.Equal(t, "error", byTitle["cancelPacket"].status)
	require.NotNil(t, byTitle["cancelPacket"].orderNumber)
	assert.Equal(t, "1001", *byTitle["cancelPacket"].orderNumber)
	assert.Equal(t, 0, m.Pending())
}

func TestAuditManagerFlushesOnTimeout(t *testing.T) {
	sink := &recordingSink{}
	m := NewAuditManager(1, 10, 10*time.Millisecond, nil)
	m.SetSink(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	m.LogEntry(ctx, AuditLogEntry{Handler: "listCarriers", StatusCode: http.StatusOK})

	assert.Eventually(t, func() bool {
		return len(sink.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestAuditLogMiddlewareUsesRouteName(t *testing.T) {
	sink := &recordingSink{}
	s := New(Deps{Audit: sink}, Config{AuditWorkers: 1, AuditBatchSize: 1, AuditTimeout: time.Second}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.AuditManager.Start(ctx)

	r := mux.NewRouter()
	r.Use(s.auditLogMiddleware)
	r.HandleFunc("/admin/orders/{orderNumber}/cancel", func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusConflict, "order has no packet")
	}).Methods(http.MethodPost).Name("cancelPacket")

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/1001/cancel", strings.NewReader(`{}`))
	req.SetBasicAuth("admin", "secret")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Eventually(t, func() bool {
		return len(sink.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	call := sink.snapshot()[0]
	assert.Equal(t, "cancelPacket", call.title)
	assert.Equal(t, "error", call.status)
	require.NotNil(t, call.orderNumber)
	assert.Equal(t, "1001", *call.orderNumber)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))
	long := strings.Repeat("x", maxAuditBodySize+10)
	assert.Len(t, truncate(long), maxAuditBodySize+3)
}
