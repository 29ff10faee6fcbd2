package usecase

import (
	"context"
	"log"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase/interfaces"
)

const (
	DefaultSlotCapacityPerDay  = 24
	DefaultSpecialSlotCapacity = 2

	slotDayStartHour = 9
	slotDayEndHour   = 21
)

// ISlotUseCase computes bookable pickup windows.
//
// Capacity is a quota on offered windows per day: once the category's
// capacity of free windows has been produced, generation stops even if the
// rest of the day is unscanned.
type ISlotUseCase interface {
	AvailableSlots(ctx context.Context, date time.Time, category entities.WasteCategory) ([]entities.SlotWindow, error)
	IsAvailable(ctx context.Context, window entities.SlotWindow, excludeRequestID string) (bool, error)
}

type SlotConfig struct {
	StandardCapacity int
	SpecialCapacity  int
	Location         *time.Location
}

type SlotUseCase struct {
	repo interfaces.IPickupRequestRepository
	cfg  SlotConfig
}

var _ ISlotUseCase = (*SlotUseCase)(nil)

func NewSlotUseCase(repo interfaces.IPickupRequestRepository, cfg SlotConfig) *SlotUseCase {
	if cfg.StandardCapacity <= 0 {
		cfg.StandardCapacity = DefaultSlotCapacityPerDay
	}
	if cfg.SpecialCapacity <= 0 {
		cfg.SpecialCapacity = DefaultSpecialSlotCapacity
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &SlotUseCase{repo: repo, cfg: cfg}
}

// CapacityFor returns the daily offer quota for a category.
func (u *SlotUseCase) CapacityFor(category entities.WasteCategory) int {
	if category.IsSpecialHandling() {
		return u.cfg.SpecialCapacity
	}
	return u.cfg.StandardCapacity
}

func (u *SlotUseCase) AvailableSlots(ctx context.Context, date time.Time, category entities.WasteCategory) ([]entities.SlotWindow, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	y, m, d := date.Date()
	dayStart := time.Date(y, m, d, slotDayStartHour, 0, 0, 0, u.cfg.Location)
	dayEnd := time.Date(y, m, d, slotDayEndHour, 0, 0, 0, u.cfg.Location)

	assigned, err := u.repo.FindSlotsInRange(ctx, dayStart, dayEnd)
	if err != nil {
		log.Printf("[slot][usecase] find slots failed date=%s err=%v", dayStart.Format(time.DateOnly), err)
		return nil, err
	}
	taken := make([]entities.SlotWindow, 0, len(assigned))
	for _, r := range assigned {
		if r.HoldsSlot() {
			taken = append(taken, *r.AssignedSlot)
		}
	}

	capacity := u.CapacityFor(category)
	slots := make([]entities.SlotWindow, 0, capacity)
	for current := dayStart; current.Before(dayEnd) && len(slots) < capacity; current = current.Add(entities.SlotLength) {
		candidate := entities.SlotWindow{Start: current, End: current.Add(entities.SlotLength)}
		if !containsWindow(taken, candidate) {
			slots = append(slots, candidate)
		}
	}
	return slots, nil
}

// IsAvailable reports whether no other active request holds exactly window.
func (u *SlotUseCase) IsAvailable(ctx context.Context, window entities.SlotWindow, excludeRequestID string) (bool, error) {
	if !window.IsValid() {
		return false, ErrInvalidSlot
	}
	local := window.Start.In(u.cfg.Location)
	y, m, d := local.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, u.cfg.Location)

	assigned, err := u.repo.FindSlotsInRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return false, err
	}
	for _, r := range assigned {
		if r.ID == excludeRequestID || !r.HoldsSlot() {
			continue
		}
		if r.AssignedSlot.SameAs(window) {
			return false, nil
		}
	}
	return true, nil
}

func containsWindow(list []entities.SlotWindow, w entities.SlotWindow) bool {
	for _, t := range list {
		if t.SameAs(w) {
			return true
		}
	}
	return false
}
