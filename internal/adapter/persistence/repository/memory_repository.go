package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

// PickupRequestMemoryRepository is an in-process store with the same
// conditional-write semantics as the DynamoDB repository. It backs
// STORAGE_DRIVER=memory and scenario tests.
type PickupRequestMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.PickupRequest
	now   func() time.Time
}

var _ interfaces.IPickupRequestRepository = (*PickupRequestMemoryRepository)(nil)

func NewPickupRequestMemoryRepository() *PickupRequestMemoryRepository {
	return &PickupRequestMemoryRepository{items: map[string]entities.PickupRequest{}, now: time.Now}
}

func (r *PickupRequestMemoryRepository) Create(_ context.Context, p entities.PickupRequest) (entities.PickupRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[p.ID]; exists {
		return entities.PickupRequest{}, interfaces.ErrVersionConflict
	}
	r.items[p.ID] = cloneRequest(p)
	return cloneRequest(p), nil
}

func (r *PickupRequestMemoryRepository) Get(_ context.Context, id string, ownerID string) (entities.PickupRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok || (ownerID != "" && p.UserID != ownerID) {
		return entities.PickupRequest{}, nil
	}
	return cloneRequest(p), nil
}

func (r *PickupRequestMemoryRepository) Update(_ context.Context, id string, expectedVersion int64, upd entities.RequestUpdate) (entities.PickupRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return entities.PickupRequest{}, nil
	}
	if p.Version != expectedVersion {
		return entities.PickupRequest{}, interfaces.ErrVersionConflict
	}
	p = applyUpdate(p, upd, r.now().UTC())
	r.items[id] = p
	return cloneRequest(p), nil
}

func (r *PickupRequestMemoryRepository) AppendEvent(_ context.Context, id string, event entities.RequestEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil
	}
	r.items[id] = applyUpdate(p, entities.RequestUpdate{Event: &event}, r.now().UTC())
	return nil
}

func (r *PickupRequestMemoryRepository) ListByUser(_ context.Context, userID string, filter entities.RequestFilter) ([]entities.PickupRequest, int, error) {
	r.mu.RLock()
	var matched []entities.PickupRequest
	for _, p := range r.items {
		if p.UserID != userID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		matched = append(matched, cloneRequest(p))
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)
	if filter.Skip >= total {
		return []entities.PickupRequest{}, total, nil
	}
	end := total
	if filter.Limit > 0 && filter.Skip+filter.Limit < total {
		end = filter.Skip + filter.Limit
	}
	return matched[filter.Skip:end], total, nil
}

func (r *PickupRequestMemoryRepository) FindSlotsInRange(_ context.Context, start, end time.Time) ([]entities.PickupRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.PickupRequest{}
	for _, p := range r.items {
		if !p.HoldsSlot() {
			continue
		}
		s := p.AssignedSlot.Start
		if !s.Before(start) && s.Before(end) {
			out = append(out, cloneRequest(p))
		}
	}
	return out, nil
}

func (r *PickupRequestMemoryRepository) DeleteStaleDrafts(_ context.Context, olderThan time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := 0
	for id, p := range r.items {
		if p.Status == entities.RequestStatusDraft && p.CreatedAt.Before(olderThan) {
			delete(r.items, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *PickupRequestMemoryRepository) ListByStatus(_ context.Context, status entities.RequestStatus, createdAfter time.Time) ([]entities.PickupRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.PickupRequest{}
	for _, p := range r.items {
		if p.Status == status && p.CreatedAt.After(createdAfter) {
			out = append(out, cloneRequest(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func applyUpdate(p entities.PickupRequest, upd entities.RequestUpdate, now time.Time) entities.PickupRequest {
	p = cloneRequest(p)
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.AssignedSlot != nil {
		slot := *upd.AssignedSlot
		p.AssignedSlot = &slot
	}
	p.RewardPoints += upd.AddRewardPoints
	if upd.Event != nil {
		p.Events = append(p.Events, cloneEvent(*upd.Event))
	}
	p.Version++
	p.UpdatedAt = now
	return p
}

func cloneRequest(p entities.PickupRequest) entities.PickupRequest {
	out := p
	out.Photos = append([]string{}, p.Photos...)
	out.PreferredSlots = append([]entities.SlotWindow{}, p.PreferredSlots...)
	out.Events = make([]entities.RequestEvent, 0, len(p.Events))
	for _, e := range p.Events {
		out.Events = append(out.Events, cloneEvent(e))
	}
	if p.AssignedSlot != nil {
		slot := *p.AssignedSlot
		out.AssignedSlot = &slot
	}
	if p.Address.Lat != nil {
		lat := *p.Address.Lat
		out.Address.Lat = &lat
	}
	if p.Address.Lng != nil {
		lng := *p.Address.Lng
		out.Address.Lng = &lng
	}
	return out
}

func cloneEvent(e entities.RequestEvent) entities.RequestEvent {
	if e.Data == nil {
		return e
	}
	data := make(map[string]any, len(e.Data))
	for k, v := range e.Data {
		data[k] = v
	}
	e.Data = data
	return e
}

type RewardMemoryRepository struct {
	mu     sync.RWMutex
	grants []entities.Reward
}

var _ interfaces.IRewardRepository = (*RewardMemoryRepository)(nil)

func NewRewardMemoryRepository() *RewardMemoryRepository {
	return &RewardMemoryRepository{}
}

func (r *RewardMemoryRepository) Grant(_ context.Context, reward entities.Reward) (entities.Reward, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.grants {
		if g.ID == reward.ID {
			return entities.Reward{}, interfaces.ErrRewardExists
		}
	}
	r.grants = append(r.grants, reward)
	return reward, nil
}

func (r *RewardMemoryRepository) TotalPoints(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, g := range r.grants {
		if g.UserID == userID {
			total += g.Points
		}
	}
	return total, nil
}

func (r *RewardMemoryRepository) ListRecent(_ context.Context, userID string, limit int) ([]entities.Reward, error) {
	r.mu.RLock()
	out := []entities.Reward{}
	for _, g := range r.grants {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type NotificationMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Notification
}

var _ interfaces.INotificationRepository = (*NotificationMemoryRepository)(nil)

func NewNotificationMemoryRepository() *NotificationMemoryRepository {
	return &NotificationMemoryRepository{}
}

func (r *NotificationMemoryRepository) Queue(_ context.Context, n entities.Notification) (entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, cloneNotification(n))
	return cloneNotification(n), nil
}

// FindQueued returns queued notifications in insertion order.
func (r *NotificationMemoryRepository) FindQueued(_ context.Context, limit int) ([]entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Notification{}
	for _, n := range r.items {
		if n.Status != entities.NotificationStatusQueued {
			continue
		}
		out = append(out, cloneNotification(n))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *NotificationMemoryRepository) MarkSent(_ context.Context, id string, success bool, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID != id || r.items[i].Status != entities.NotificationStatusQueued {
			continue
		}
		if success {
			r.items[i].Status = entities.NotificationStatusSent
		} else {
			r.items[i].Status = entities.NotificationStatusFailed
		}
		sentAt := at
		r.items[i].SentAt = &sentAt
		return nil
	}
	return nil
}

// ListByUser returns the user's notifications newest first.
func (r *NotificationMemoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Notification{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID != userID {
			continue
		}
		out = append(out, cloneNotification(r.items[i]))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func cloneNotification(n entities.Notification) entities.Notification {
	meta := make(map[string]string, len(n.Meta))
	for k, v := range n.Meta {
		meta[k] = v
	}
	n.Meta = meta
	if n.SentAt != nil {
		at := *n.SentAt
		n.SentAt = &at
	}
	return n
}
