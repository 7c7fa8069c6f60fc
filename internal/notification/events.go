package notification

import (
	"time"
)

// MailRequestedEvent is consumed by the external mailer service; this
// service only publishes and never waits for delivery.
type MailRequestedEvent struct {
	EventID    string    `json:"event_id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	FromLabel  string    `json:"from_label"`
	Recipients []string  `json:"recipients"`
	Admin      bool      `json:"admin"`
	Timestamp  time.Time `json:"timestamp"`
}
