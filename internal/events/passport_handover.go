package events

import "time"

const PassportHandoverTopic = "hr.passport.custody.v1"

type PassportHandoverEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	PassportIDs []string  `json:"passport_ids"`
	Action      string    `json:"action"`
	Operator    string    `json:"operator,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
