package request

import (
	"errors"
	"strings"
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Accepted timestamp layouts. Values without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type AddressRequest struct {
	Line1   string   `json:"line1" binding:"required"`
	Line2   string   `json:"line2"`
	City    string   `json:"city" binding:"required"`
	Pincode string   `json:"pincode" binding:"required"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

type SlotRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (s SlotRequest) ToWindow() (entities.SlotWindow, error) {
	start, err := ParseTimestamp(s.Start)
	if err != nil {
		return entities.SlotWindow{}, err
	}
	end, err := ParseTimestamp(s.End)
	if err != nil {
		return entities.SlotWindow{}, err
	}
	return entities.SlotWindow{Start: start, End: end}, nil
}

// CreatePickupRequest is the citizen payload for POST /v1/requests.
type CreatePickupRequest struct {
	Category       string         `json:"category" binding:"required"`
	IsSpecial      bool           `json:"is_special"`
	Description    string         `json:"description" binding:"required"`
	Quantity       float64        `json:"quantity" binding:"required,gt=0"`
	Photos         []string       `json:"photos"`
	Address        AddressRequest `json:"address" binding:"required"`
	PreferredSlots []SlotRequest  `json:"preferred_slots" binding:"dive"`
	ContactEmail   string         `json:"contact_email" binding:"omitempty,email"`
	Draft          bool           `json:"draft"`
}

func (r CreatePickupRequest) ToInput() (usecase.CreateRequestInput, error) {
	slots := make([]entities.SlotWindow, 0, len(r.PreferredSlots))
	for _, s := range r.PreferredSlots {
		w, err := s.ToWindow()
		if err != nil {
			return usecase.CreateRequestInput{}, err
		}
		slots = append(slots, w)
	}
	return usecase.CreateRequestInput{
		Category:    entities.WasteCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		IsSpecial:   r.IsSpecial,
		Description: r.Description,
		Quantity:    r.Quantity,
		Photos:      r.Photos,
		Address: entities.Address{
			Line1:   strings.TrimSpace(r.Address.Line1),
			Line2:   strings.TrimSpace(r.Address.Line2),
			City:    strings.TrimSpace(r.Address.City),
			Pincode: strings.TrimSpace(r.Address.Pincode),
			Lat:     r.Address.Lat,
			Lng:     r.Address.Lng,
		},
		PreferredSlots: slots,
		ContactEmail:   r.ContactEmail,
		Draft:          r.Draft,
	}, nil
}

type CancelPickupRequest struct {
	Reason *string `json:"reason"`
}

type ConfirmSlotRequest struct {
	SlotStart string `json:"slot_start" binding:"required"`
	SlotEnd   string `json:"slot_end" binding:"required"`
}

func (r ConfirmSlotRequest) ToWindow() (entities.SlotWindow, error) {
	return SlotRequest{Start: r.SlotStart, End: r.SlotEnd}.ToWindow()
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r TransitionRequest) Target() entities.RequestStatus {
	return entities.RequestStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type NoteRequest struct {
	Text string `json:"text" binding:"required"`
}

type ListPickupRequestsQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Skip     int    `form:"skip"`
	Limit    int    `form:"limit"`
}

func (q ListPickupRequestsQuery) ToFilter() entities.RequestFilter {
	return entities.RequestFilter{
		Status:   entities.RequestStatus(strings.TrimSpace(q.Status)),
		Category: entities.WasteCategory(strings.TrimSpace(q.Category)),
		Skip:     q.Skip,
		Limit:    q.Limit,
	}
}

func ParseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}
