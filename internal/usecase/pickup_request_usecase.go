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

	"github.com/google/uuid"
)

const (
	CancellationLockout    = 24 * time.Hour
	DefaultDraftRetention  = 7 * 24 * time.Hour
	DefaultRequestPageSize = 20
	MaxRequestPageSize     = 100
)

// IPickupRequestUseCase is the request lifecycle engine.
//
//   - Create / Submit: citizen-facing intake, stamps the first status event
//   - Cancel: owner-only, status and 24h lockout gated
//   - ConfirmSlot: owner-only shortcut to "scheduled" from pre-service statuses
//   - Transition: operational advancement through the transition table
//   - CleanupStaleDrafts: retention job for abandoned drafts
type IPickupRequestUseCase interface {
	Create(ctx context.Context, userID string, in CreateRequestInput) (entities.PickupRequest, error)
	Submit(ctx context.Context, requestID, userID string) (entities.PickupRequest, error)
	Get(ctx context.Context, requestID, userID string) (entities.PickupRequest, error)
	List(ctx context.Context, userID string, filter entities.RequestFilter) (RequestPage, error)
	Cancel(ctx context.Context, requestID, userID string, reason *string) (entities.PickupRequest, error)
	ConfirmSlot(ctx context.Context, requestID, userID string, slot entities.SlotWindow) (entities.PickupRequest, error)
	Transition(ctx context.Context, requestID string, target entities.RequestStatus, actor string) (entities.PickupRequest, error)
	AddNote(ctx context.Context, requestID, userID, text string) (entities.PickupRequest, error)
	CleanupStaleDrafts(ctx context.Context, retention time.Duration) (int, error)
}

// CreateRequestInput is the citizen payload for a new pickup request.
type CreateRequestInput struct {
	Category       entities.WasteCategory
	IsSpecial      bool
	Description    string
	Quantity       float64
	Photos         []string
	Address        entities.Address
	PreferredSlots []entities.SlotWindow
	ContactEmail   string
	Draft          bool
}

// RequestPage is one page of a user's requests, newest first.
type RequestPage struct {
	Items []entities.PickupRequest
	Total int
	Skip  int
	Limit int
}

type PickupRequestUseCase struct {
	repo          interfaces.IPickupRequestRepository
	slots         ISlotUseCase
	rewards       IRewardUseCase
	notifications INotificationUseCase
	now           func() time.Time
}

var _ IPickupRequestUseCase = (*PickupRequestUseCase)(nil)

func NewPickupRequestUseCase(
	repo interfaces.IPickupRequestRepository,
	slots ISlotUseCase,
	rewards IRewardUseCase,
	notifications INotificationUseCase,
) *PickupRequestUseCase {
	return &PickupRequestUseCase{
		repo:          repo,
		slots:         slots,
		rewards:       rewards,
		notifications: notifications,
		now:           time.Now,
	}
}

func (u *PickupRequestUseCase) Create(ctx context.Context, userID string, in CreateRequestInput) (entities.PickupRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PickupRequest{}, ErrInvalidUserID
	}
	if err := validateCreateInput(in); err != nil {
		return entities.PickupRequest{}, err
	}

	status := entities.RequestStatusSubmitted
	if in.Draft {
		status = entities.RequestStatusDraft
	}
	now := u.now().UTC()
	photos := in.Photos
	if photos == nil {
		photos = []string{}
	}
	preferred := in.PreferredSlots
	if preferred == nil {
		preferred = []entities.SlotWindow{}
	}

	r := entities.PickupRequest{
		ID:             uuid.NewString(),
		UserID:         userID,
		Category:       in.Category,
		IsSpecial:      in.IsSpecial,
		Description:    strings.TrimSpace(in.Description),
		Quantity:       in.Quantity,
		Photos:         photos,
		Address:        in.Address,
		ContactEmail:   strings.TrimSpace(in.ContactEmail),
		PreferredSlots: preferred,
		Status:         status,
		Events: []entities.RequestEvent{{
			Type: entities.EventTypeStatusChange,
			At:   now,
			By:   userID,
			Data: map[string]any{"status": string(status)},
		}},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed user_id=%s err=%v", userID, err)
		return entities.PickupRequest{}, err
	}
	log.Printf("[request][usecase] created request_id=%s user_id=%s status=%s category=%s", created.ID, userID, created.Status, created.Category)

	if created.Status == entities.RequestStatusSubmitted {
		u.queueSubmitted(ctx, created)
	}
	return created, nil
}

func (u *PickupRequestUseCase) Submit(ctx context.Context, requestID, userID string) (entities.PickupRequest, error) {
	r, err := u.getOwned(ctx, requestID, userID)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	if !r.Status.CanTransitionTo(entities.RequestStatusSubmitted) {
		return entities.PickupRequest{}, ErrInvalidTransition
	}

	updated, err := u.applyStatus(ctx, r, entities.RequestStatusSubmitted, userID, nil, nil)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	u.queueSubmitted(ctx, updated)
	return updated, nil
}

func (u *PickupRequestUseCase) Get(ctx context.Context, requestID, userID string) (entities.PickupRequest, error) {
	return u.getOwned(ctx, requestID, userID)
}

func (u *PickupRequestUseCase) List(ctx context.Context, userID string, filter entities.RequestFilter) (RequestPage, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return RequestPage{}, ErrInvalidUserID
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return RequestPage{}, ErrInvalidStatus
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return RequestPage{}, ErrInvalidCategory
	}
	if filter.Skip < 0 || filter.Limit < 0 {
		return RequestPage{}, ErrInvalidPagination
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultRequestPageSize
	}
	if filter.Limit > MaxRequestPageSize {
		filter.Limit = MaxRequestPageSize
	}

	items, total, err := u.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return RequestPage{}, err
	}
	if items == nil {
		items = []entities.PickupRequest{}
	}
	return RequestPage{Items: items, Total: total, Skip: filter.Skip, Limit: filter.Limit}, nil
}

func (u *PickupRequestUseCase) Cancel(ctx context.Context, requestID, userID string, reason *string) (entities.PickupRequest, error) {
	r, err := u.getOwned(ctx, requestID, userID)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	if err := u.checkCancellable(r); err != nil {
		log.Printf("[request][usecase] cancel rejected request_id=%s status=%s err=%v", r.ID, r.Status, err)
		return entities.PickupRequest{}, err
	}

	var why any
	if reason != nil {
		why = *reason
	}
	updated, err := u.applyStatus(ctx, r, entities.RequestStatusCancelled, userID, map[string]any{"reason": why}, nil)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	u.notify(ctx, updated, entities.NotificationChannelInApp, "Pickup cancelled", "Your pickup request was cancelled")
	return updated, nil
}

// ConfirmSlot assigns a window and moves the request to "scheduled" without
// consulting the transition table. Only pre-service statuses qualify; a
// scheduled request may be re-confirmed onto another window.
func (u *PickupRequestUseCase) ConfirmSlot(ctx context.Context, requestID, userID string, slot entities.SlotWindow) (entities.PickupRequest, error) {
	if !slot.IsValid() {
		return entities.PickupRequest{}, ErrInvalidSlot
	}
	r, err := u.getOwned(ctx, requestID, userID)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	if !r.Status.AllowsSlotConfirmation() {
		return entities.PickupRequest{}, ErrInvalidState
	}

	free, err := u.slots.IsAvailable(ctx, slot, r.ID)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	if !free {
		return entities.PickupRequest{}, ErrSlotUnavailable
	}

	window := entities.SlotWindow{Start: slot.Start.UTC(), End: slot.End.UTC()}
	extra := map[string]any{
		"slot_start": window.Start.Format(time.RFC3339),
		"slot_end":   window.End.Format(time.RFC3339),
	}
	updated, err := u.applyStatus(ctx, r, entities.RequestStatusScheduled, userID, extra, &window)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	u.notify(ctx, updated, entities.NotificationChannelEmail, "Pickup scheduled", "Your slot is confirmed")
	return updated, nil
}

func (u *PickupRequestUseCase) Transition(ctx context.Context, requestID string, target entities.RequestStatus, actor string) (entities.PickupRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.PickupRequest{}, ErrInvalidRequestID
	}
	if strings.TrimSpace(actor) == "" {
		actor = "system"
	}

	r, err := u.repo.Get(ctx, requestID, "")
	if err != nil {
		return entities.PickupRequest{}, err
	}
	if r.ID == "" {
		return entities.PickupRequest{}, ErrRequestNotFound
	}
	if !r.Status.CanTransitionTo(target) {
		return entities.PickupRequest{}, ErrInvalidTransition
	}
	// The table decides which states may cancel; only the lockout applies here.
	if target == entities.RequestStatusCancelled {
		if err := u.checkLockout(r); err != nil {
			return entities.PickupRequest{}, err
		}
	}

	updated, err := u.applyStatus(ctx, r, target, actor, nil, nil)
	if err != nil {
		return entities.PickupRequest{}, err
	}

	// The request already carries its points. A missing ledger entry is
	// written later by the reward backfill job.
	if target == entities.RequestStatusCompleted && u.rewards != nil {
		if _, err := u.rewards.RecordCompletion(ctx, updated); err != nil {
			log.Printf("[request][usecase] reward ledger deferred request_id=%s err=%v", r.ID, err)
		}
	}

	u.notify(ctx, updated, entities.NotificationChannelInApp, "Pickup status updated", fmt.Sprintf("Your pickup request is now %s", target))
	return updated, nil
}

func (u *PickupRequestUseCase) AddNote(ctx context.Context, requestID, userID, text string) (entities.PickupRequest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.PickupRequest{}, ErrInvalidNote
	}
	r, err := u.getOwned(ctx, requestID, userID)
	if err != nil {
		return entities.PickupRequest{}, err
	}

	event := entities.RequestEvent{
		Type: entities.EventTypeNote,
		At:   u.now().UTC(),
		By:   userID,
		Data: map[string]any{"text": text},
	}
	if err := u.repo.AppendEvent(ctx, r.ID, event); err != nil {
		return entities.PickupRequest{}, err
	}
	return u.getOwned(ctx, r.ID, userID)
}

func (u *PickupRequestUseCase) CleanupStaleDrafts(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		retention = DefaultDraftRetention
	}
	threshold := u.now().UTC().Add(-retention)
	deleted, err := u.repo.DeleteStaleDrafts(ctx, threshold)
	if err != nil {
		log.Printf("[request][usecase] draft cleanup failed threshold=%s err=%v", threshold.Format(time.RFC3339), err)
		return 0, err
	}
	if deleted > 0 {
		log.Printf("[request][usecase] draft cleanup deleted=%d threshold=%s", deleted, threshold.Format(time.RFC3339))
	}
	return deleted, nil
}

func (u *PickupRequestUseCase) getOwned(ctx context.Context, requestID, userID string) (entities.PickupRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.PickupRequest{}, ErrInvalidRequestID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.PickupRequest{}, ErrInvalidUserID
	}

	r, err := u.repo.Get(ctx, requestID, userID)
	if err != nil {
		return entities.PickupRequest{}, err
	}
	// Absent and foreign-owned requests are indistinguishable to the caller.
	if r.ID == "" || r.UserID != userID {
		return entities.PickupRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *PickupRequestUseCase) checkCancellable(r entities.PickupRequest) error {
	if !r.Status.IsCancellable() {
		return ErrInvalidState
	}
	return u.checkLockout(r)
}

func (u *PickupRequestUseCase) checkLockout(r entities.PickupRequest) error {
	if r.AssignedSlot != nil && r.AssignedSlot.Start.Sub(u.now()) < CancellationLockout {
		return ErrTooLateToCancel
	}
	return nil
}

// applyStatus writes the new status and its STATUS_CHANGE event in one
// conditional update. Completion adds the category's reward points in the
// same write.
func (u *PickupRequestUseCase) applyStatus(
	ctx context.Context,
	r entities.PickupRequest,
	target entities.RequestStatus,
	actor string,
	extra map[string]any,
	slot *entities.SlotWindow,
) (entities.PickupRequest, error) {
	data := map[string]any{"from": string(r.Status), "to": string(target)}
	for k, v := range extra {
		data[k] = v
	}
	points := 0
	if target == entities.RequestStatusCompleted {
		points = PointsForCategory(r.Category)
		data["reward_points"] = points
	}
	upd := entities.RequestUpdate{
		Status:          &target,
		AssignedSlot:    slot,
		AddRewardPoints: points,
		Event: &entities.RequestEvent{
			Type: entities.EventTypeStatusChange,
			At:   u.now().UTC(),
			By:   actor,
			Data: data,
		},
	}

	updated, err := u.repo.Update(ctx, r.ID, r.Version, upd)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[request][usecase] concurrent update request_id=%s version=%d", r.ID, r.Version)
			return entities.PickupRequest{}, ErrConcurrentUpdate
		}
		log.Printf("[request][usecase] update failed request_id=%s to=%s err=%v", r.ID, target, err)
		return entities.PickupRequest{}, err
	}
	if updated.ID == "" {
		return entities.PickupRequest{}, ErrRequestNotFound
	}
	log.Printf("[request][usecase] status changed request_id=%s from=%s to=%s by=%s", r.ID, r.Status, target, actor)
	return updated, nil
}

func (u *PickupRequestUseCase) queueSubmitted(ctx context.Context, r entities.PickupRequest) {
	u.notify(ctx, r, entities.NotificationChannelEmail, "Pickup request submitted", fmt.Sprintf("Your request %s is submitted", r.ID))
	u.notify(ctx, r, entities.NotificationChannelInApp, "Request submitted", "We received your pickup request")
}

// notify never fails the caller: queue errors are logged and dropped.
func (u *PickupRequestUseCase) notify(ctx context.Context, r entities.PickupRequest, channel entities.NotificationChannel, title, body string) {
	if u.notifications == nil {
		return
	}
	meta := map[string]string{"request_id": r.ID}
	if r.ContactEmail != "" {
		meta["email"] = r.ContactEmail
	}
	if _, err := u.notifications.Queue(ctx, r.UserID, channel, title, body, meta); err != nil {
		log.Printf("[request][usecase] notification queue failed request_id=%s channel=%s err=%v", r.ID, channel, err)
	}
}

func validateCreateInput(in CreateRequestInput) error {
	if !in.Category.IsValid() {
		return ErrInvalidCategory
	}
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidDescription
	}
	if strings.TrimSpace(in.Address.Line1) == "" || strings.TrimSpace(in.Address.City) == "" || strings.TrimSpace(in.Address.Pincode) == "" {
		return ErrInvalidAddress
	}
	for _, w := range in.PreferredSlots {
		if !w.IsValid() {
			return ErrInvalidSlot
		}
	}
	return nil
}
