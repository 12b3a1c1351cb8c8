package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/packetery/internal/metrics"
)

const auditLogAction = "admin-request"

// AuditSink persists audit entries next to the API call log.
type AuditSink interface {
	LogAPICall(ctx context.Context, orderNumber *string, action, status, title string, params interface{})
}

// AuditManager batches audit entries and hands them to a pool of workers.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	sink        AuditSink
	logger      *zap.Logger

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg      sync.WaitGroup
	pending atomic.Int64
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration, logger *zap.Logger) *AuditManager {
	if workerCount <= 0 {
		workerCount = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		logger:      logger.Named("audit"),
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

// SetSink must be called before Start.
func (m *AuditManager) SetSink(sink AuditSink) {
	m.sink = sink
}

func (m *AuditManager) Start(ctx context.Context) {
	m.logger.Info("Starting audit manager", zap.Int("workers", m.workerCount), zap.Int("batch_size", m.batchSize))
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}

	go m.monitorShutdown(ctx)
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("Shutting down audit manager")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("Audit manager stopped", zap.Int("pending", m.Pending()))
		case <-ctx.Done():
			m.logger.Warn("Audit manager shutdown interrupted", zap.Int("pending", m.Pending()))
		}
	})
}

func (m *AuditManager) monitorShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
		m.Shutdown(context.Background())
	case <-m.shutdownCh:
	}
}

// LogEntry queues an entry. Entries that cannot be queued are written
// directly.
func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	m.updatePendingCount(1)

	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.writeDirect(entry)
	case <-m.shutdownCh:
		m.writeDirect(entry)
	}
}

// Pending is the number of entries not yet handed to a worker.
func (m *AuditManager) Pending() int {
	return int(m.pending.Load())
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		batch = append(batch, m.drainInput()...)
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) drainInput() []AuditLogEntry {
	var rest []AuditLogEntry
	for {
		select {
		case entry := <-m.inputChan:
			rest = append(rest, entry)
		default:
			return rest
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.writeBatch(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.writeBatch(id, batch)
		case <-ctx.Done():
			for batch := range m.batchChan {
				m.writeBatch(id, batch)
			}
			return
		}
	}
}

func (m *AuditManager) writeDirect(entry AuditLogEntry) {
	m.writeBatch(-1, []AuditLogEntry{entry})
}

func (m *AuditManager) writeBatch(workerID int, batch []AuditLogEntry) {
	for _, entry := range batch {
		m.logger.Info("Admin request",
			zap.Int("worker", workerID),
			zap.String("handler", entry.Handler),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status_code", entry.StatusCode),
			zap.String("user", entry.UserID),
			zap.String("order_number", entry.OrderNumber),
			zap.Time("timestamp", entry.Timestamp))

		if m.sink != nil {
			var orderNumber *string
			if entry.OrderNumber != "" {
				number := entry.OrderNumber
				orderNumber = &number
			}
			m.sink.LogAPICall(context.Background(), orderNumber, auditLogAction, entry.status(), entry.Handler, entry)
		}
	}
	m.updatePendingCount(-len(batch))
}

func (m *AuditManager) updatePendingCount(delta int) {
	metrics.AuditPendingEntries.Set(float64(m.pending.Add(int64(delta))))
}
