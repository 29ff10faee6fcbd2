package entities

import "time"

// SlotLength is the width of every generated slot window.
const SlotLength = 60 * time.Minute

// SlotWindow is a [Start, End) pickup interval.
type SlotWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w SlotWindow) IsValid() bool {
	return !w.Start.IsZero() && w.End.After(w.Start)
}

// SameAs compares windows by instant, ignoring location.
func (w SlotWindow) SameAs(o SlotWindow) bool {
	return w.Start.Equal(o.Start) && w.End.Equal(o.End)
}
