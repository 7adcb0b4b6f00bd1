package model

// Alert types and priorities accepted by dispatch.
const (
	AlertTypeWarning    = "warning"
	AlertTypeEvacuation = "evacuation"
	AlertTypeInfo       = "info"
	AlertTypeEmergency  = "emergency"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// DeliveryResult is the per-recipient outcome of one dispatch.
type DeliveryResult struct {
	Contact   string  `json:"phone"`
	Status    string  `json:"status"` // sent | failed | pending
	MessageID string  `json:"messageId"`
	Timestamp string  `json:"timestamp"`
	Cost      float64 `json:"cost"`
}

// RecipientSnapshot is the roster state of one target at dispatch time.
type RecipientSnapshot struct {
	Name     string `json:"name"`
	Contact  string `json:"phone"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

// BroadcastRecord is the immutable audit entry for one dispatch. Appended to
// the broadcast log once per dispatch, never mutated, read newest-first.
type BroadcastRecord struct {
	ID              string              `json:"id"`
	Message         string              `json:"message"`
	AlertType       string              `json:"alertType"`
	Priority        string              `json:"priority"`
	TargetRoles     []string            `json:"targetRoles,omitempty"`
	TargetLocations []string            `json:"targetLocations,omitempty"`
	TargetUsers     int                 `json:"targetUsers"`
	SentTo          []RecipientSnapshot `json:"sentTo"`
	Timestamp       string              `json:"timestamp"` // RFC3339
	Success         bool                `json:"success"`
	Results         []DeliveryResult    `json:"results"`
}
