package interfaces

import (
	"context"
	"time"

	"waste_pickup/internal/domain/entities"
)

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/notification_repository_mock.go -package=mock_interfaces

// INotificationRepository persists the notification queue.
type INotificationRepository interface {
	Queue(ctx context.Context, n entities.Notification) (entities.Notification, error)
	FindQueued(ctx context.Context, limit int) ([]entities.Notification, error)
	MarkSent(ctx context.Context, id string, success bool, at time.Time) error
	ListByUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
}
