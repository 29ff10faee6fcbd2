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

func TestNotificationUseCase_Queue(t *testing.T) {
	fixed := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("email waits for the drain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		email := mock_interfaces.NewMockINotificationSender(ctrl)
		uc := NewNotificationUseCase(repo, map[entities.NotificationChannel]interfaces.INotificationSender{
			entities.NotificationChannelEmail: email,
		})
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Queue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) (entities.Notification, error) {
			if n.Status != entities.NotificationStatusQueued || n.ID == "" || n.Meta == nil {
				t.Fatalf("unexpected queued notification: %+v", n)
			}
			return n, nil
		})

		got, err := uc.Queue(context.Background(), "user-1", entities.NotificationChannelEmail, "t", "b", nil)
		if err != nil || got.Status != entities.NotificationStatusQueued {
			t.Fatalf("expected queued, got %+v err=%v", got, err)
		}
	})

	t.Run("inapp is delivered immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		inapp := mock_interfaces.NewMockINotificationSender(ctrl)
		uc := NewNotificationUseCase(repo, map[entities.NotificationChannel]interfaces.INotificationSender{
			entities.NotificationChannelInApp: inapp,
		})
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Queue(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.Notification) (entities.Notification, error) {
			return n, nil
		})
		inapp.EXPECT().Send(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().MarkSent(gomock.Any(), gomock.Any(), true, fixed).Return(nil)

		got, err := uc.Queue(context.Background(), "user-1", entities.NotificationChannelInApp, "t", "b", map[string]string{"request_id": "r1"})
		if err != nil || got.Status != entities.NotificationStatusSent || got.SentAt == nil {
			t.Fatalf("expected sent, got %+v err=%v", got, err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil)
		repo.EXPECT().Queue(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("db"))

		if _, err := uc.Queue(context.Background(), "user-1", entities.NotificationChannelSMS, "t", "b", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNotificationUseCase_ProcessQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	email := mock_interfaces.NewMockINotificationSender(ctrl)
	sms := mock_interfaces.NewMockINotificationSender(ctrl)
	push := mock_interfaces.NewMockINotificationSender(ctrl)
	uc := NewNotificationUseCase(repo, map[entities.NotificationChannel]interfaces.INotificationSender{
		entities.NotificationChannelEmail: email,
		entities.NotificationChannelSMS:   sms,
		entities.NotificationChannelPush:  push,
	})

	queued := []entities.Notification{
		{ID: "n1", Channel: entities.NotificationChannelEmail},
		{ID: "n2", Channel: entities.NotificationChannelSMS},
		{ID: "n3", Channel: entities.NotificationChannelPush},
		{ID: "n4", Channel: "fax"},
	}
	repo.EXPECT().FindQueued(gomock.Any(), 50).Return(queued, nil)
	email.EXPECT().Send(gomock.Any(), queued[0]).Return(true, nil)
	sms.EXPECT().Send(gomock.Any(), queued[1]).Return(false, nil)
	push.EXPECT().Send(gomock.Any(), queued[2]).Return(false, errors.New("provider down"))
	repo.EXPECT().MarkSent(gomock.Any(), "n1", true, gomock.Any()).Return(nil)
	repo.EXPECT().MarkSent(gomock.Any(), "n2", false, gomock.Any()).Return(nil)
	repo.EXPECT().MarkSent(gomock.Any(), "n3", false, gomock.Any()).Return(nil)
	repo.EXPECT().MarkSent(gomock.Any(), "n4", false, gomock.Any()).Return(errors.New("db"))

	res, err := uc.ProcessQueue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sent != 1 || res.Failed != 3 {
		t.Fatalf("expected 1 sent / 3 failed, got %+v", res)
	}
}

func TestNotificationUseCase_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo, nil)

	if _, err := uc.ListForUser(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}

	repo.EXPECT().ListByUser(gomock.Any(), "user-1", 50).Return(nil, nil)
	got, err := uc.ListForUser(context.Background(), "user-1")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", got, err)
	}
}
