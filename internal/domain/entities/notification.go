package entities

import "time"

type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelPush  NotificationChannel = "push"
	NotificationChannelInApp NotificationChannel = "inapp"
)

type NotificationStatus string

const (
	NotificationStatusQueued NotificationStatus = "queued"
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// Notification is a queued message for one user on one channel.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-index: status / created_at
//   - GSI user_id-index: user_id / created_at
type Notification struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Channel   NotificationChannel `json:"channel"`
	Title     string              `json:"title"`
	Body      string              `json:"body"`
	Meta      map[string]string   `json:"meta,omitempty"`
	Status    NotificationStatus  `json:"status"`
	SentAt    *time.Time          `json:"sent_at,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}
