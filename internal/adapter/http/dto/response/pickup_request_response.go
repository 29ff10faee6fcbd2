package response

import (
	"time"

	"waste_pickup/internal/domain/entities"
	"waste_pickup/internal/usecase"
)

type AddressResponse struct {
	Line1   string   `json:"line1"`
	Line2   string   `json:"line2,omitempty"`
	City    string   `json:"city"`
	Pincode string   `json:"pincode"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type EventResponse struct {
	Type string         `json:"type"`
	At   time.Time      `json:"at"`
	By   string         `json:"by"`
	Data map[string]any `json:"data"`
}

type PickupRequestResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Category       string          `json:"category"`
	IsSpecial      bool            `json:"is_special"`
	Description    string          `json:"description"`
	Quantity       float64         `json:"quantity"`
	Photos         []string        `json:"photos"`
	Address        AddressResponse `json:"address"`
	PreferredSlots []SlotResponse  `json:"preferred_slots"`
	AssignedSlot   *SlotResponse   `json:"assigned_slot"`
	VendorID       string          `json:"vendor_id,omitempty"`
	Status         string          `json:"status"`
	Events         []EventResponse `json:"events"`
	RewardPoints   int             `json:"reward_points"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PickupRequestListResponse struct {
	Items []PickupRequestResponse `json:"items"`
	Total int                     `json:"total"`
	Skip  int                     `json:"skip"`
	Limit int                     `json:"limit"`
}

func FromSlot(w entities.SlotWindow) SlotResponse {
	return SlotResponse{Start: w.Start.UTC(), End: w.End.UTC()}
}

func FromPickupRequest(r entities.PickupRequest) PickupRequestResponse {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}
	preferred := make([]SlotResponse, 0, len(r.PreferredSlots))
	for _, w := range r.PreferredSlots {
		preferred = append(preferred, FromSlot(w))
	}
	events := make([]EventResponse, 0, len(r.Events))
	for _, e := range r.Events {
		data := e.Data
		if data == nil {
			data = map[string]any{}
		}
		events = append(events, EventResponse{Type: string(e.Type), At: e.At, By: e.By, Data: data})
	}

	res := PickupRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Category:    string(r.Category),
		IsSpecial:   r.IsSpecial,
		Description: r.Description,
		Quantity:    r.Quantity,
		Photos:      photos,
		Address: AddressResponse{
			Line1:   r.Address.Line1,
			Line2:   r.Address.Line2,
			City:    r.Address.City,
			Pincode: r.Address.Pincode,
			Lat:     r.Address.Lat,
			Lng:     r.Address.Lng,
		},
		PreferredSlots: preferred,
		VendorID:       r.VendorID,
		Status:         string(r.Status),
		Events:         events,
		RewardPoints:   r.RewardPoints,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.AssignedSlot != nil {
		slot := FromSlot(*r.AssignedSlot)
		res.AssignedSlot = &slot
	}
	return res
}

func FromRequestPage(p usecase.RequestPage) PickupRequestListResponse {
	items := make([]PickupRequestResponse, 0, len(p.Items))
	for _, r := range p.Items {
		items = append(items, FromPickupRequest(r))
	}
	return PickupRequestListResponse{Items: items, Total: p.Total, Skip: p.Skip, Limit: p.Limit}
}
