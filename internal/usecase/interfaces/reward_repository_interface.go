package interfaces

import (
	"context"

	"waste_pickup/internal/domain/entities"
)

//go:generate mockgen -source=reward_repository_interface.go -destination=mocks/reward_repository_mock.go -package=mock_interfaces

// IRewardRepository persists reward grants. Grant never overwrites: a taken
// id yields ErrRewardExists.
type IRewardRepository interface {
	Grant(ctx context.Context, r entities.Reward) (entities.Reward, error)
	TotalPoints(ctx context.Context, userID string) (int, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]entities.Reward, error)
}
