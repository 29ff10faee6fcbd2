package entities

// RequestStatus is the lifecycle state of a pickup request.
type RequestStatus string

const (
	RequestStatusDraft         RequestStatus = "draft"
	RequestStatusSubmitted     RequestStatus = "submitted"
	RequestStatusPendingReview RequestStatus = "pending_review"
	RequestStatusScheduled     RequestStatus = "scheduled"
	RequestStatusEnroute       RequestStatus = "enroute"
	RequestStatusOnsite        RequestStatus = "onsite"
	RequestStatusCollecting    RequestStatus = "collecting"
	RequestStatusCollected     RequestStatus = "collected"
	RequestStatusHandover      RequestStatus = "handover"
	RequestStatusVerification  RequestStatus = "verification"
	RequestStatusCompleted     RequestStatus = "completed"
	RequestStatusCancelled     RequestStatus = "cancelled"
	RequestStatusFailed        RequestStatus = "failed"
)

// AllRequestStatuses lists every state in lifecycle order.
var AllRequestStatuses = []RequestStatus{
	RequestStatusDraft,
	RequestStatusSubmitted,
	RequestStatusPendingReview,
	RequestStatusScheduled,
	RequestStatusEnroute,
	RequestStatusOnsite,
	RequestStatusCollecting,
	RequestStatusCollected,
	RequestStatusHandover,
	RequestStatusVerification,
	RequestStatusCompleted,
	RequestStatusCancelled,
	RequestStatusFailed,
}

// transitions is the one-step reachability table. Statuses missing from the
// map have no declared successors.
var transitions = map[RequestStatus][]RequestStatus{
	RequestStatusDraft:         {RequestStatusSubmitted},
	RequestStatusSubmitted:     {RequestStatusPendingReview, RequestStatusCancelled},
	RequestStatusPendingReview: {RequestStatusScheduled, RequestStatusCancelled},
	RequestStatusScheduled:     {RequestStatusEnroute, RequestStatusCancelled},
	RequestStatusEnroute:       {RequestStatusOnsite, RequestStatusFailed},
	RequestStatusOnsite:        {RequestStatusCollecting, RequestStatusFailed},
	RequestStatusCollecting:    {RequestStatusCollected, RequestStatusFailed},
	RequestStatusCollected:     {RequestStatusHandover},
	RequestStatusHandover:      {RequestStatusVerification},
	RequestStatusVerification:  {RequestStatusCompleted},
}

// cancellableStatuses are the states a citizen may cancel from.
var cancellableStatuses = map[RequestStatus]bool{
	RequestStatusDraft:     true,
	RequestStatusSubmitted: true,
	RequestStatusScheduled: true,
}

// slotConfirmableStatuses are the states where a slot may be (re)confirmed.
var slotConfirmableStatuses = map[RequestStatus]bool{
	RequestStatusDraft:         true,
	RequestStatusSubmitted:     true,
	RequestStatusPendingReview: true,
	RequestStatusScheduled:     true,
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusDraft, RequestStatusSubmitted, RequestStatusPendingReview, RequestStatusScheduled,
		RequestStatusEnroute, RequestStatusOnsite, RequestStatusCollecting, RequestStatusCollected,
		RequestStatusHandover, RequestStatusVerification, RequestStatusCompleted,
		RequestStatusCancelled, RequestStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave s.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled || s == RequestStatusFailed
}

// AllowedNext returns the declared successors of s.
func (s RequestStatus) AllowedNext() []RequestStatus {
	next := transitions[s]
	out := make([]RequestStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo applies the table plus the global cancelled/failed escapes.
// Terminal states never transition, escapes included.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if !target.IsValid() || s.IsTerminal() {
		return false
	}
	if target == RequestStatusCancelled || target == RequestStatusFailed {
		return true
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsCancellable() bool {
	return cancellableStatuses[s]
}

func (s RequestStatus) AllowsSlotConfirmation() bool {
	return slotConfirmableStatuses[s]
}
