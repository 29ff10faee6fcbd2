package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	queueBatchSize         = 50
	userNotificationsLimit = 50
)

// INotificationUseCase queues notifications and drains the queue.
//
// In-app notifications are delivered at queue time; every other channel
// waits for ProcessQueue. Each queued notification gets one delivery attempt
// and ends as sent or failed.
type INotificationUseCase interface {
	Queue(ctx context.Context, userID string, channel entities.NotificationChannel, title, body string, meta map[string]string) (entities.Notification, error)
	ProcessQueue(ctx context.Context) (ProcessResult, error)
	ListForUser(ctx context.Context, userID string) ([]entities.Notification, error)
}

// ProcessResult summarizes one drain cycle.
type ProcessResult struct {
	Sent   int
	Failed int
}

type NotificationUseCase struct {
	repo    interfaces.INotificationRepository
	senders map[entities.NotificationChannel]interfaces.INotificationSender
	now     func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, senders map[entities.NotificationChannel]interfaces.INotificationSender) *NotificationUseCase {
	if senders == nil {
		senders = map[entities.NotificationChannel]interfaces.INotificationSender{}
	}
	return &NotificationUseCase{repo: repo, senders: senders, now: time.Now}
}

func (u *NotificationUseCase) Queue(ctx context.Context, userID string, channel entities.NotificationChannel, title, body string, meta map[string]string) (entities.Notification, error) {
	if meta == nil {
		meta = map[string]string{}
	}
	n := entities.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Channel:   channel,
		Title:     title,
		Body:      body,
		Meta:      meta,
		Status:    entities.NotificationStatusQueued,
		CreatedAt: u.now().UTC(),
	}
	created, err := u.repo.Queue(ctx, n)
	if err != nil {
		return entities.Notification{}, err
	}

	if channel != entities.NotificationChannelInApp {
		return created, nil
	}
	ok := u.deliver(ctx, created)
	at := u.now().UTC()
	if err := u.repo.MarkSent(ctx, created.ID, ok, at); err != nil {
		return created, err
	}
	created.SentAt = &at
	created.Status = statusFor(ok)
	return created, nil
}

func (u *NotificationUseCase) ProcessQueue(ctx context.Context) (ProcessResult, error) {
	queued, err := u.repo.FindQueued(ctx, queueBatchSize)
	if err != nil {
		return ProcessResult{}, err
	}

	var res ProcessResult
	for _, n := range queued {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		ok := u.deliver(ctx, n)
		if err := u.repo.MarkSent(ctx, n.ID, ok, u.now().UTC()); err != nil {
			log.Printf("[notification][usecase] mark failed notification_id=%s err=%v", n.ID, err)
		}
		if ok {
			res.Sent++
		} else {
			res.Failed++
		}
	}
	return res, nil
}

func (u *NotificationUseCase) ListForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	items, err := u.repo.ListByUser(ctx, userID, userNotificationsLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Notification{}
	}
	return items, nil
}

func (u *NotificationUseCase) deliver(ctx context.Context, n entities.Notification) bool {
	sender, ok := u.senders[n.Channel]
	if !ok {
		log.Printf("[notification][usecase] no sender for channel=%s notification_id=%s", n.Channel, n.ID)
		return false
	}
	sent, err := sender.Send(ctx, n)
	if err != nil {
		log.Printf("[notification][usecase] send failed channel=%s notification_id=%s err=%v", n.Channel, n.ID, err)
		return false
	}
	return sent
}

func statusFor(ok bool) entities.NotificationStatus {
	if ok {
		return entities.NotificationStatusSent
	}
	return entities.NotificationStatusFailed
}
