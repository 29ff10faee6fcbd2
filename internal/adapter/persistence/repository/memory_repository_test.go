package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

func seedRequest(id, user string, status entities.RequestStatus, created time.Time) entities.PickupRequest {
	return entities.PickupRequest{
		ID:        id,
		UserID:    user,
		Category:  entities.WasteCategoryRecyclable,
		Status:    status,
		Version:   1,
		CreatedAt: created,
		UpdatedAt: created,
		Events:    []entities.RequestEvent{{Type: entities.EventTypeStatusChange, Data: map[string]any{"status": string(status)}}},
	}
}

func TestPickupRequestMemoryRepository_UpdateChecksVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewPickupRequestMemoryRepository()
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	if _, err := repo.Create(ctx, seedRequest("r1", "u1", entities.RequestStatusSubmitted, base)); err != nil {
		t.Fatalf("create: %v", err)
	}

	scheduled := entities.RequestStatusScheduled
	slot := entities.SlotWindow{Start: base.Add(26 * time.Hour), End: base.Add(27 * time.Hour)}
	ev := entities.RequestEvent{Type: entities.EventTypeStatusChange, Data: map[string]any{"from": "submitted", "to": "scheduled"}}
	got, err := repo.Update(ctx, "r1", 1, entities.RequestUpdate{Status: &scheduled, AssignedSlot: &slot, Event: &ev})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Version != 2 || got.Status != scheduled || got.AssignedSlot == nil || len(got.Events) != 2 {
		t.Fatalf("unexpected update result: %+v", got)
	}

	if _, err := repo.Update(ctx, "r1", 1, entities.RequestUpdate{AddRewardPoints: 5}); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}

	missing, err := repo.Update(ctx, "nope", 1, entities.RequestUpdate{AddRewardPoints: 5})
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing id, got %+v err=%v", missing, err)
	}
}

func TestPickupRequestMemoryRepository_GetIsOwnerScopedAndCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPickupRequestMemoryRepository()
	_, _ = repo.Create(ctx, seedRequest("r1", "u1", entities.RequestStatusDraft, time.Now()))

	other, _ := repo.Get(ctx, "r1", "u2")
	if other.ID != "" {
		t.Fatalf("expected other owner to get zero value")
	}

	got, _ := repo.Get(ctx, "r1", "u1")
	got.Events[0].Data["status"] = "tampered"
	again, _ := repo.Get(ctx, "r1", "")
	if again.Events[0].Data["status"] != "draft" {
		t.Fatalf("stored record was mutated through a read copy")
	}
}

func TestPickupRequestMemoryRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewPickupRequestMemoryRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		_, _ = repo.Create(ctx, seedRequest(id, "u1", entities.RequestStatusSubmitted, base.Add(time.Duration(i)*time.Hour)))
	}
	_, _ = repo.Create(ctx, seedRequest("d", "u1", entities.RequestStatusDraft, base.Add(5*time.Hour)))
	_, _ = repo.Create(ctx, seedRequest("e", "u2", entities.RequestStatusSubmitted, base))

	items, total, err := repo.ListByUser(ctx, "u1", entities.RequestFilter{Status: entities.RequestStatusSubmitted, Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("unexpected page total=%d items=%+v", total, items)
	}

	items, total, _ = repo.ListByUser(ctx, "u1", entities.RequestFilter{Skip: 10, Limit: 5})
	if total != 4 || len(items) != 0 {
		t.Fatalf("expected empty page past the end, total=%d len=%d", total, len(items))
	}
}

func TestPickupRequestMemoryRepository_FindSlotsInRangeSkipsReleased(t *testing.T) {
	ctx := context.Background()
	repo := NewPickupRequestMemoryRepository()
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	slot := entities.SlotWindow{Start: start, End: start.Add(time.Hour)}

	held := seedRequest("held", "u1", entities.RequestStatusScheduled, start.Add(-48*time.Hour))
	held.AssignedSlot = &slot
	released := seedRequest("released", "u1", entities.RequestStatusCancelled, start.Add(-48*time.Hour))
	released.AssignedSlot = &slot
	_, _ = repo.Create(ctx, held)
	_, _ = repo.Create(ctx, released)

	got, err := repo.FindSlotsInRange(ctx, start.Add(-time.Hour), start.Add(time.Hour))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].ID != "held" {
		t.Fatalf("expected only held request, got %+v", got)
	}
	if got, _ := repo.FindSlotsInRange(ctx, start.Add(time.Hour), start.Add(2*time.Hour)); len(got) != 0 {
		t.Fatalf("range end must be exclusive of later slots, got %+v", got)
	}
}

func TestPickupRequestMemoryRepository_DeleteStaleDrafts(t *testing.T) {
	ctx := context.Background()
	repo := NewPickupRequestMemoryRepository()
	now := time.Date(2025, 1, 20, 3, 0, 0, 0, time.UTC)
	_, _ = repo.Create(ctx, seedRequest("old-draft", "u1", entities.RequestStatusDraft, now.Add(-8*24*time.Hour)))
	_, _ = repo.Create(ctx, seedRequest("new-draft", "u1", entities.RequestStatusDraft, now.Add(-2*24*time.Hour)))
	_, _ = repo.Create(ctx, seedRequest("old-submitted", "u1", entities.RequestStatusSubmitted, now.Add(-30*24*time.Hour)))

	n, err := repo.DeleteStaleDrafts(ctx, now.Add(-7*24*time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("expected 1 deletion, got %d err=%v", n, err)
	}
	if got, _ := repo.Get(ctx, "old-draft", ""); got.ID != "" {
		t.Fatalf("old draft should be gone")
	}
	if got, _ := repo.Get(ctx, "old-submitted", ""); got.ID == "" {
		t.Fatalf("submitted request must survive cleanup")
	}
}

func TestRewardMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRewardMemoryRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, _ = repo.Grant(ctx, entities.Reward{ID: "g1", UserID: "u1", Points: 5, CreatedAt: base})
	_, _ = repo.Grant(ctx, entities.Reward{ID: "g2", UserID: "u1", Points: 10, CreatedAt: base.Add(time.Hour)})
	_, _ = repo.Grant(ctx, entities.Reward{ID: "g3", UserID: "u2", Points: 10, CreatedAt: base})

	total, _ := repo.TotalPoints(ctx, "u1")
	if total != 15 {
		t.Fatalf("expected 15 points, got %d", total)
	}
	recent, _ := repo.ListRecent(ctx, "u1", 1)
	if len(recent) != 1 || recent[0].ID != "g2" {
		t.Fatalf("expected newest grant first, got %+v", recent)
	}

	if _, err := repo.Grant(ctx, entities.Reward{ID: "g1", UserID: "u1", Points: 5, CreatedAt: base}); !errors.Is(err, interfaces.ErrRewardExists) {
		t.Fatalf("expected ErrRewardExists, got %v", err)
	}
	if total, _ := repo.TotalPoints(ctx, "u1"); total != 15 {
		t.Fatalf("duplicate grant must not add points, got %d", total)
	}
}

func TestPickupRequestMemoryRepository_ListByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewPickupRequestMemoryRepository()
	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	_, _ = repo.Create(ctx, seedRequest("late", "u1", entities.RequestStatusCompleted, base.Add(2*time.Hour)))
	_, _ = repo.Create(ctx, seedRequest("early", "u2", entities.RequestStatusCompleted, base.Add(time.Hour)))
	_, _ = repo.Create(ctx, seedRequest("too-old", "u1", entities.RequestStatusCompleted, base.Add(-time.Hour)))
	_, _ = repo.Create(ctx, seedRequest("open", "u1", entities.RequestStatusScheduled, base.Add(time.Hour)))

	got, err := repo.ListByStatus(ctx, entities.RequestStatusCompleted, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("expected [early late], got %+v", got)
	}
}

func TestNotificationMemoryRepository_MarkSentOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationMemoryRepository()
	_, _ = repo.Queue(ctx, entities.Notification{ID: "n1", UserID: "u1", Channel: entities.NotificationChannelEmail, Status: entities.NotificationStatusQueued})
	_, _ = repo.Queue(ctx, entities.Notification{ID: "n2", UserID: "u1", Channel: entities.NotificationChannelSMS, Status: entities.NotificationStatusQueued})

	queued, _ := repo.FindQueued(ctx, 10)
	if len(queued) != 2 || queued[0].ID != "n1" {
		t.Fatalf("unexpected queue: %+v", queued)
	}

	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_ = repo.MarkSent(ctx, "n1", false, at)
	_ = repo.MarkSent(ctx, "n1", true, at)

	list, _ := repo.ListByUser(ctx, "u1", 10)
	if len(list) != 2 || list[0].ID != "n2" {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if list[1].Status != entities.NotificationStatusFailed || list[1].SentAt == nil {
		t.Fatalf("first outcome must stick, got %+v", list[1])
	}
	if queued, _ := repo.FindQueued(ctx, 10); len(queued) != 1 {
		t.Fatalf("expected one queued left, got %d", len(queued))
	}
}
