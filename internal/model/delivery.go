package model

import (
	"time"

	"github.com/google/uuid"
)

// Delivery statuses. Pending is the only non-terminal status: a pending
// entry either loops back to pending with an incremented attempt count or
// moves to one of the terminal statuses.
const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
	DeliverySkipped = "skipped"
)

// SkipReasonNoAddress is recorded on deliveries skipped because the
// recipient has no push address bound.
const SkipReasonNoAddress = "recipient has no LINE account bound"

// Delivery is the per-recipient ledger entry for one message. At most one
// row exists per (message, recipient) pair.
type Delivery struct {
	ID           uuid.UUID  `json:"id"`
	MessageID    uuid.UUID  `json:"message_id"`
	RecipientID  uuid.UUID  `json:"recipient_id"`
	Status       string     `json:"status"`
	AttemptCount int        `json:"attempt_count"`
	LastError    *string    `json:"last_error,omitempty"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// DeliveryItem is a pending ledger entry joined with everything the send
// loops need: the recipient's push address and the alert content of the
// parent message.
type DeliveryItem struct {
	ID           uuid.UUID
	MessageID    uuid.UUID
	RecipientID  uuid.UUID
	AttemptCount int
	LineUserID   string
	Alert        Alert
}
