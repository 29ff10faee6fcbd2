package entities

import "time"

// WasteCategory classifies what is being collected.
type WasteCategory string

const (
	WasteCategoryOrganic    WasteCategory = "organic"
	WasteCategoryRecyclable WasteCategory = "recyclable"
	WasteCategoryHazardous  WasteCategory = "hazardous"
	WasteCategoryEWaste     WasteCategory = "e-waste"
	WasteCategoryBulk       WasteCategory = "bulk"
	WasteCategoryOther      WasteCategory = "other"
)

func (c WasteCategory) IsValid() bool {
	switch c {
	case WasteCategoryOrganic, WasteCategoryRecyclable, WasteCategoryHazardous,
		WasteCategoryEWaste, WasteCategoryBulk, WasteCategoryOther:
		return true
	}
	return false
}

// IsSpecialHandling marks categories served from the reduced slot capacity.
func (c WasteCategory) IsSpecialHandling() bool {
	return c == WasteCategoryHazardous || c == WasteCategoryEWaste
}

// EventType tags entries of the request audit log.
type EventType string

const (
	EventTypeStatusChange EventType = "STATUS_CHANGE"
	EventTypeNote         EventType = "NOTE"
	EventTypeAudit        EventType = "AUDIT"
)

// RequestEvent is an append-only audit entry owned by its request.
type RequestEvent struct {
	Type EventType      `json:"type"`
	At   time.Time      `json:"at"`
	By   string         `json:"by"`
	Data map[string]any `json:"data,omitempty"`
}

type Address struct {
	Line1   string   `json:"line1"`
	Line2   string   `json:"line2,omitempty"`
	City    string   `json:"city"`
	Pincode string   `json:"pincode"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// PickupRequest is a citizen-submitted waste collection job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id / created_at
//   - GSI slot_date-index: slot_date / slot_start (only when a slot is assigned)
//   - GSI status-index: status / created_at
//
// Version increases on every write and guards concurrent updates.
type PickupRequest struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Category       WasteCategory  `json:"category"`
	IsSpecial      bool           `json:"is_special"`
	Description    string         `json:"description"`
	Quantity       float64        `json:"quantity"`
	Photos         []string       `json:"photos"`
	Address        Address        `json:"address"`
	ContactEmail   string         `json:"contact_email,omitempty"`
	PreferredSlots []SlotWindow   `json:"preferred_slots"`
	AssignedSlot   *SlotWindow    `json:"assigned_slot,omitempty"`
	VendorID       string         `json:"vendor_id,omitempty"`
	Status         RequestStatus  `json:"status"`
	Events         []RequestEvent `json:"events"`
	RewardPoints   int            `json:"reward_points"`
	Version        int64          `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// HoldsSlot reports whether the request still occupies its assigned window.
func (r PickupRequest) HoldsSlot() bool {
	return r.AssignedSlot != nil && r.Status != RequestStatusCancelled && r.Status != RequestStatusFailed
}

// RequestFilter narrows a listing of one user's requests.
type RequestFilter struct {
	Status   RequestStatus
	Category WasteCategory
	Skip     int
	Limit    int
}

// RequestUpdate is a single atomic change to a request. Nil fields are left
// untouched; Event, when set, is appended in the same write.
type RequestUpdate struct {
	Status          *RequestStatus
	AssignedSlot    *SlotWindow
	AddRewardPoints int
	Event           *RequestEvent
}
