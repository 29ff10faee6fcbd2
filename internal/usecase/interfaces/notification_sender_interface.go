package interfaces

import (
	"context"

	"waste_pickup/internal/domain/entities"
)

//go:generate mockgen -source=notification_sender_interface.go -destination=mocks/notification_sender_mock.go -package=mock_interfaces

// INotificationSender delivers one notification over its transport.
// A false result without error means the message was skipped (e.g. the
// channel is disabled or there is no recipient).
type INotificationSender interface {
	Send(ctx context.Context, n entities.Notification) (bool, error)
}

// IConnectionRegistry fans in-app payloads out to a user's live connections.
type IConnectionRegistry interface {
	Register(userID string, conn Connection)
	Unregister(userID string, conn Connection)
	Publish(userID string, payload any) int
}

// Connection is a live client able to receive JSON frames.
type Connection interface {
	WriteJSON(v any) error
}
