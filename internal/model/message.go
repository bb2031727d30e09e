package model

import (
	"time"

	"github.com/google/uuid"
)

// Message statuses exposed through the status endpoint and cached in Redis.
const (
	MessageStatusQueued    = "queued"
	MessageStatusCompleted = "completed"
	MessageStatusProcessed = "processed"
)

// Dispatch result statuses returned to the caller.
const (
	DispatchQueued     = "queued"
	DispatchCompleted  = "completed"
	DispatchSuppressed = "suppressed"
)

// Message is one accepted inbound event. It is created exactly once and
// never mutated afterwards except for ProcessedAt, which is stamped when
// every delivery for it has reached a terminal status.
type Message struct {
	ID            uuid.UUID  `json:"id"`
	TypeID        uuid.UUID  `json:"type_id"`
	TypeCode      string     `json:"message_type"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	SourceHost    *string    `json:"source_host,omitempty"`
	SourceService *string    `json:"source_service,omitempty"`
	SourceIP      *string    `json:"source_ip,omitempty"`
	Priority      int        `json:"priority"`
	Metadata      *string    `json:"metadata,omitempty"` // serialized JSON, opaque to the router
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

// MessageSummary is the read-side view of a message with per-status
// delivery counts.
type MessageSummary struct {
	Message
	RecipientCount int `json:"recipient_count"`
	SentCount      int `json:"sent_count"`
	FailedCount    int `json:"failed_count"`
	SkippedCount   int `json:"skipped_count"`
	PendingCount   int `json:"pending_count"`
}

// DispatchInput is the normalized dispatch request handed to the dispatch
// service by the API layer.
type DispatchInput struct {
	TypeCode      string
	Title         string
	Content       string
	SourceHost    string
	SourceService string
	SourceIP      string
	TargetGroups  []string
	Priority      int // 0 = use the message type's default
	Metadata      string
}

// DispatchResult is what the caller gets back synchronously. A suppressed
// dispatch carries a nil MessageID since nothing was persisted.
type DispatchResult struct {
	Status         string    `json:"status"`
	MessageID      uuid.UUID `json:"message_id"`
	RecipientCount int       `json:"recipient_count"`
}

// Alert is the content pushed to the gateway for one message.
type Alert struct {
	MessageType   string    `json:"message_type"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	SourceHost    string    `json:"source_host,omitempty"`
	SourceService string    `json:"source_service,omitempty"`
	SourceIP      string    `json:"source_ip,omitempty"`
	Priority      int       `json:"priority"`
	Timestamp     time.Time `json:"timestamp"`
}
