package response

import (
	"time"

	"waste_pickup/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string            `json:"id"`
	Channel   string            `json:"channel"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Meta      map[string]string `json:"meta"`
	Status    string            `json:"status"`
	SentAt    *time.Time        `json:"sent_at"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	meta := n.Meta
	if meta == nil {
		meta = map[string]string{}
	}
	return NotificationResponse{
		ID:        n.ID,
		Channel:   string(n.Channel),
		Title:     n.Title,
		Body:      n.Body,
		Meta:      meta,
		Status:    string(n.Status),
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}
