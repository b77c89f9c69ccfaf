package models

// Profile event types published to Kafka.
const (
	EventUserCreated     = "user_created"
	EventUsernameClaimed = "username_claimed"
	EventLinkCreated     = "link_created"
)

// ProfileEvent is the payload published for profile lifecycle changes.
type ProfileEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	LinkID    string `json:"link_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
