package claims

import (
	"time"

	"github.com/google/uuid"
)

// ClaimEventType represents the kind of a timeline entry.
type ClaimEventType string

const (
	EventCreated             ClaimEventType = "created"
	EventSubmitted           ClaimEventType = "submitted"
	EventStatusChanged       ClaimEventType = "status_changed"
	EventDocumentUploaded    ClaimEventType = "document_uploaded"
	EventAdjusterAssigned    ClaimEventType = "adjuster_assigned"
	EventInspectionScheduled ClaimEventType = "inspection_scheduled"
	EventInspectionCompleted ClaimEventType = "inspection_completed"
	EventEstimateReceived    ClaimEventType = "estimate_received"
	EventApproved            ClaimEventType = "approved"
	EventRejected            ClaimEventType = "rejected"
	EventPaymentProcessed    ClaimEventType = "payment_processed"
	EventClosed              ClaimEventType = "closed"
	EventReopened            ClaimEventType = "reopened"
	EventNoteAdded           ClaimEventType = "note_added"
)

// ClaimEvent is an immutable audit-log entry on a claim's timeline.
// Entries are appended, never mutated or deleted.
type ClaimEvent struct {
	ID          string         `json:"id"`
	Type        ClaimEventType `json:"type"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Actor       string         `json:"actor"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// NewClaimEvent creates a timeline entry with a generated ID.
func NewClaimEvent(eventType ClaimEventType, description, actor string, at time.Time) ClaimEvent {
	return ClaimEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		Description: description,
		Timestamp:   at,
		Actor:       actor,
	}
}
