package interfaces

import (
	"context"
	"time"

	"waste_pickup/internal/domain/entities"
)

//go:generate mockgen -source=pickup_request_repository_interface.go -destination=mocks/pickup_request_repository_mock.go -package=mock_interfaces

// IPickupRequestRepository abstracts persistence for PickupRequest.
//
// Absent records are returned as the zero value with a nil error.
// Update is conditional on expectedVersion and applies the status/slot change,
// reward increment and event append in a single write; a stale version yields
// ErrVersionConflict.
type IPickupRequestRepository interface {
	Create(ctx context.Context, r entities.PickupRequest) (entities.PickupRequest, error)
	Get(ctx context.Context, id string, ownerID string) (entities.PickupRequest, error)
	Update(ctx context.Context, id string, expectedVersion int64, upd entities.RequestUpdate) (entities.PickupRequest, error)
	AppendEvent(ctx context.Context, id string, event entities.RequestEvent) error
	ListByUser(ctx context.Context, userID string, filter entities.RequestFilter) ([]entities.PickupRequest, int, error)
	FindSlotsInRange(ctx context.Context, start, end time.Time) ([]entities.PickupRequest, error)
	DeleteStaleDrafts(ctx context.Context, olderThan time.Time) (int, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus, createdAfter time.Time) ([]entities.PickupRequest, error)
}
