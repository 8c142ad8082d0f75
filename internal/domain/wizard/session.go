package wizard

import "time"

// HandoffStatus tracks the hand-off of a confirmed booking to persistence.
type HandoffStatus string

const (
	HandoffNone      HandoffStatus = ""
	HandoffPending   HandoffStatus = "pending"
	HandoffPersisted HandoffStatus = "persisted"
	HandoffFailed    HandoffStatus = "failed"
)

// Handoff is the outcome reported back into the session after confirmation.
type Handoff struct {
	Status      HandoffStatus `json:"status,omitempty"`
	PersistedID string        `json:"persisted_id,omitempty"`
	PaymentID   string        `json:"payment_id,omitempty"`
	Notice      *Notice       `json:"notice,omitempty"`
	Attempts    int           `json:"attempts,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at,omitempty"`
}

// Retryable reports whether the user may trigger the hand-off again.
func (h Handoff) Retryable() bool {
	return h.Status == HandoffFailed
}

// Session is a stored wizard: one draft, owned by one user.
type Session struct {
	ID        string    `json:"id"`
	Draft     Draft     `json:"draft"`
	Handoff   Handoff   `json:"handoff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Session) OwnedBy(userID string) bool {
	return userID != "" && s.Draft.UserID == userID
}
