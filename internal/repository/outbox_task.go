package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

const (
	PacketEventExported  = "packet_exported"
	PacketEventCancelled = "packet_cancelled"
	PacketEventStatus    = "packet_status"
)

// PacketEventPayload is the message published for packet lifecycle changes.
type PacketEventPayload struct {
	Timestamp   time.Time `json:"timestamp"`
	Event       string    `json:"event"`
	OrderNumber string    `json:"order_number"`
	PacketID    string    `json:"packet_id"`
	Barcode     string    `json:"barcode,omitempty"`
	CarrierID   string    `json:"carrier_id,omitempty"`
	StatusCode  int       `json:"status_code,omitempty"`
	StatusText  string    `json:"status_text,omitempty"`
}
