package notifier

import (
	"context"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

// InAppSender pushes notifications to the owner's live connections. The
// notification is stored either way, so it counts as sent even when the user
// has no open connection.
type InAppSender struct {
	registry interfaces.IConnectionRegistry
}

var _ interfaces.INotificationSender = (*InAppSender)(nil)

func NewInAppSender(registry interfaces.IConnectionRegistry) *InAppSender {
	return &InAppSender{registry: registry}
}

func (s *InAppSender) Send(_ context.Context, n entities.Notification) (bool, error) {
	s.registry.Publish(n.UserID, n)
	return true, nil
}
