package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

const recentRewardsLimit = 10

// IRewardUseCase keeps the reward ledger in step with completed requests.
//
// Points land on the request in the same write that completes it. The ledger
// entry is keyed by the request id, so RecordCompletion and Backfill may run
// any number of times for one request and grant at most once.
type IRewardUseCase interface {
	RecordCompletion(ctx context.Context, r entities.PickupRequest) (entities.Reward, error)
	Backfill(ctx context.Context, completedSince time.Time) (int, error)
	Summary(ctx context.Context, userID string) (entities.RewardSummary, error)
}

type RewardUseCase struct {
	rewards  interfaces.IRewardRepository
	requests interfaces.IPickupRequestRepository
	now      func() time.Time
}

var _ IRewardUseCase = (*RewardUseCase)(nil)

func NewRewardUseCase(rewards interfaces.IRewardRepository, requests interfaces.IPickupRequestRepository) *RewardUseCase {
	return &RewardUseCase{rewards: rewards, requests: requests, now: time.Now}
}

// PointsForCategory is the reward table: recyclable 5, hazardous and e-waste 10,
// everything else nothing.
func PointsForCategory(c entities.WasteCategory) int {
	switch c {
	case entities.WasteCategoryRecyclable:
		return 5
	case entities.WasteCategoryHazardous, entities.WasteCategoryEWaste:
		return 10
	default:
		return 0
	}
}

// RecordCompletion writes the ledger entry for a completed request. An entry
// that already exists is returned as success. Requests without points yield
// the zero Reward.
func (u *RewardUseCase) RecordCompletion(ctx context.Context, r entities.PickupRequest) (entities.Reward, error) {
	grant, _, err := u.grant(ctx, r)
	return grant, err
}

// Backfill grants missing ledger entries for requests completed after
// completedSince (by creation time) and returns how many it wrote. It keeps
// going past individual failures and reports the last one.
func (u *RewardUseCase) Backfill(ctx context.Context, completedSince time.Time) (int, error) {
	completed, err := u.requests.ListByStatus(ctx, entities.RequestStatusCompleted, completedSince)
	if err != nil {
		log.Printf("[reward][usecase] backfill list failed err=%v", err)
		return 0, err
	}

	written := 0
	var lastErr error
	for _, r := range completed {
		_, created, err := u.grant(ctx, r)
		if err != nil {
			lastErr = err
			continue
		}
		if created {
			written++
		}
	}
	if written > 0 {
		log.Printf("[reward][usecase] backfill granted=%d scanned=%d", written, len(completed))
	}
	return written, lastErr
}

func (u *RewardUseCase) grant(ctx context.Context, r entities.PickupRequest) (entities.Reward, bool, error) {
	if r.Status != entities.RequestStatusCompleted {
		return entities.Reward{}, false, ErrInvalidState
	}
	if r.RewardPoints <= 0 {
		return entities.Reward{}, false, nil
	}

	at := r.UpdatedAt
	if at.IsZero() {
		at = u.now()
	}
	grant := entities.Reward{
		ID:        r.ID,
		UserID:    r.UserID,
		RequestID: r.ID,
		Points:    r.RewardPoints,
		Reason:    fmt.Sprintf("Completed %s pickup", r.Category),
		CreatedAt: at.UTC(),
	}
	if _, err := u.rewards.Grant(ctx, grant); err != nil {
		if errors.Is(err, interfaces.ErrRewardExists) {
			return grant, false, nil
		}
		log.Printf("[reward][usecase] grant failed request_id=%s user_id=%s err=%v", r.ID, r.UserID, err)
		return entities.Reward{}, false, err
	}
	log.Printf("[reward][usecase] granted request_id=%s user_id=%s points=%d", r.ID, r.UserID, grant.Points)
	return grant, true, nil
}

func (u *RewardUseCase) Summary(ctx context.Context, userID string) (entities.RewardSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.RewardSummary{}, ErrInvalidUserID
	}

	total, err := u.rewards.TotalPoints(ctx, userID)
	if err != nil {
		return entities.RewardSummary{}, err
	}
	recent, err := u.rewards.ListRecent(ctx, userID, recentRewardsLimit)
	if err != nil {
		return entities.RewardSummary{}, err
	}
	if recent == nil {
		recent = []entities.Reward{}
	}
	return entities.RewardSummary{TotalPoints: total, Recent: recent}, nil
}
