package repository

import (
	"testing"
	"time"
)

func TestFormatTimeIsSortable(t *testing.T) {
	a := time.Date(2025, 1, 10, 10, 0, 5, 0, time.UTC)
	b := a.Add(500 * time.Millisecond)
	if !(formatTime(a) < formatTime(b)) {
		t.Fatalf("expected %s < %s", formatTime(a), formatTime(b))
	}
	if got := parseTime(formatTime(b)); !got.Equal(b) {
		t.Fatalf("round trip mismatch: %v != %v", got, b)
	}
	if formatTime(time.Time{}) != "" || !parseTime("").IsZero() {
		t.Fatalf("zero time must map to empty string")
	}
}

func TestMergeNames(t *testing.T) {
	out := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
	if len(out) != 2 || out["#a"] != "a" || out["#b"] != "b" {
		t.Fatalf("unexpected merge: %v", out)
	}
	if got := mergeNames(nil, map[string]string{"#b": "b"}); got["#b"] != "b" {
		t.Fatalf("expected b side")
	}
}
