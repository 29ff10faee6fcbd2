package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
	mock_interfaces "waste_pickup/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPointsForCategory(t *testing.T) {
	cases := map[entities.WasteCategory]int{
		entities.WasteCategoryRecyclable: 5,
		entities.WasteCategoryHazardous:  10,
		entities.WasteCategoryEWaste:     10,
		entities.WasteCategoryOrganic:    0,
		entities.WasteCategoryBulk:       0,
		entities.WasteCategoryOther:      0,
	}
	for category, want := range cases {
		if got := PointsForCategory(category); got != want {
			t.Fatalf("%s: expected %d, got %d", category, want, got)
		}
	}
}

func TestRewardUseCase_RecordCompletion(t *testing.T) {
	completedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	completed := entities.PickupRequest{
		ID:           "req-1",
		UserID:       "user-1",
		Category:     entities.WasteCategoryRecyclable,
		Status:       entities.RequestStatusCompleted,
		RewardPoints: 5,
		Version:      9,
		UpdatedAt:    completedAt,
	}

	t.Run("no points grants nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewRewardUseCase(mock_interfaces.NewMockIRewardRepository(ctrl), nil)

		in := completed
		in.Category = entities.WasteCategoryOrganic
		in.RewardPoints = 0
		got, err := uc.RecordCompletion(context.Background(), in)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero reward, got %+v err=%v", got, err)
		}
	})

	t.Run("grant is keyed by the request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rewards := mock_interfaces.NewMockIRewardRepository(ctrl)
		uc := NewRewardUseCase(rewards, nil)

		rewards.EXPECT().Grant(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Reward) (entities.Reward, error) {
			if r.ID != "req-1" || r.RequestID != "req-1" || r.UserID != "user-1" || r.Points != 5 ||
				r.Reason != "Completed recyclable pickup" || !r.CreatedAt.Equal(completedAt) {
				t.Fatalf("unexpected grant: %+v", r)
			}
			return r, nil
		})

		got, err := uc.RecordCompletion(context.Background(), completed)
		if err != nil || got.Points != 5 {
			t.Fatalf("expected 5 points, got %+v err=%v", got, err)
		}
	})

	t.Run("existing grant counts as recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rewards := mock_interfaces.NewMockIRewardRepository(ctrl)
		uc := NewRewardUseCase(rewards, nil)
		rewards.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(entities.Reward{}, interfaces.ErrRewardExists)

		got, err := uc.RecordCompletion(context.Background(), completed)
		if err != nil || got.ID != "req-1" {
			t.Fatalf("expected existing grant to succeed, got %+v err=%v", got, err)
		}
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rewards := mock_interfaces.NewMockIRewardRepository(ctrl)
		uc := NewRewardUseCase(rewards, nil)
		rewards.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(entities.Reward{}, errors.New("db"))

		if _, err := uc.RecordCompletion(context.Background(), completed); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("request not completed", func(t *testing.T) {
		uc := NewRewardUseCase(nil, nil)
		in := completed
		in.Status = entities.RequestStatusVerification
		if _, err := uc.RecordCompletion(context.Background(), in); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestRewardUseCase_Backfill(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	done := func(id string, points int) entities.PickupRequest {
		return entities.PickupRequest{
			ID:           id,
			UserID:       "user-1",
			Category:     entities.WasteCategoryHazardous,
			Status:       entities.RequestStatusCompleted,
			RewardPoints: points,
		}
	}

	t.Run("writes only missing grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rewards := mock_interfaces.NewMockIRewardRepository(ctrl)
		requests := mock_interfaces.NewMockIPickupRequestRepository(ctrl)
		uc := NewRewardUseCase(rewards, requests)

		requests.EXPECT().ListByStatus(gomock.Any(), entities.RequestStatusCompleted, since).
			Return([]entities.PickupRequest{done("req-1", 10), done("req-2", 10), done("req-3", 0)}, nil)
		rewards.EXPECT().Grant(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Reward) (entities.Reward, error) {
			if r.ID == "req-1" {
				return entities.Reward{}, interfaces.ErrRewardExists
			}
			return r, nil
		}).Times(2)

		written, err := uc.Backfill(context.Background(), since)
		if err != nil || written != 1 {
			t.Fatalf("expected one new grant, got %d err=%v", written, err)
		}
	})

	t.Run("keeps going past a failed grant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rewards := mock_interfaces.NewMockIRewardRepository(ctrl)
		requests := mock_interfaces.NewMockIPickupRequestRepository(ctrl)
		uc := NewRewardUseCase(rewards, requests)

		requests.EXPECT().ListByStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entities.PickupRequest{done("req-1", 10), done("req-2", 10)}, nil)
		gomock.InOrder(
			rewards.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(entities.Reward{}, errors.New("throttled")),
			rewards.EXPECT().Grant(gomock.Any(), gomock.Any()).Return(entities.Reward{ID: "req-2"}, nil),
		)

		written, err := uc.Backfill(context.Background(), since)
		if written != 1 || err == nil || err.Error() != "throttled" {
			t.Fatalf("expected 1 written and the grant error, got %d err=%v", written, err)
		}
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIPickupRequestRepository(ctrl)
		uc := NewRewardUseCase(nil, requests)
		requests.EXPECT().ListByStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Backfill(context.Background(), since); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestRewardUseCase_Summary(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewRewardUseCase(nil, nil)
		if _, err := uc.Summary(context.Background(), " "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("total and recent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rewards := mock_interfaces.NewMockIRewardRepository(ctrl)
		uc := NewRewardUseCase(rewards, nil)
		rewards.EXPECT().TotalPoints(gomock.Any(), "user-1").Return(15, nil)
		rewards.EXPECT().ListRecent(gomock.Any(), "user-1", 10).Return(nil, nil)

		got, err := uc.Summary(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalPoints != 15 || got.Recent == nil || len(got.Recent) != 0 {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})
}
