package server

import (
	"time"
)

type AuditLogEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Handler     string    `json:"handler"`
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	StatusCode  int       `json:"status_code"`
	UserID      string    `json:"user_id,omitempty"`
	OrderNumber string    `json:"order_number,omitempty"`
	Request     string    `json:"request,omitempty"`
	Response    string    `json:"response,omitempty"`
}

func (e AuditLogEntry) status() string {
	if e.StatusCode >= 400 {
		return "error"
	}
	return "success"
}
