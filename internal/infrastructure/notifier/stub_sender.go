package notifier

import (
	"context"
	"log"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

// StubSender logs instead of delivering. It stands in for SMS and push
// providers and reports false while its channel is disabled.
type StubSender struct {
	channel entities.NotificationChannel
	enabled bool
}

var _ interfaces.INotificationSender = (*StubSender)(nil)

func NewSMSSender(enabled bool) *StubSender {
	return &StubSender{channel: entities.NotificationChannelSMS, enabled: enabled}
}

func NewPushSender(enabled bool) *StubSender {
	return &StubSender{channel: entities.NotificationChannelPush, enabled: enabled}
}

func (s *StubSender) Send(_ context.Context, n entities.Notification) (bool, error) {
	if !s.enabled {
		log.Printf("[notification][%s] disabled, skipping notification_id=%s", s.channel, n.ID)
		return false, nil
	}
	log.Printf("[notification][%s] deliver notification_id=%s user_id=%s title=%q", s.channel, n.ID, n.UserID, n.Title)
	return true, nil
}
