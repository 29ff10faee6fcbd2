package notifier

import (
	"errors"
	"sync"
	"testing"
)

type fakeConn struct {
	mu     sync.Mutex
	frames []any
	fail   bool
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.frames = append(f.frames, v)
	return nil
}

func TestHubPublish(t *testing.T) {
	hub := NewHub()
	a, b, broken := &fakeConn{}, &fakeConn{}, &fakeConn{fail: true}
	hub.Register("u1", a)
	hub.Register("u1", b)
	hub.Register("u1", broken)
	hub.Register("u2", &fakeConn{})

	if got := hub.Publish("u1", map[string]string{"title": "hi"}); got != 2 {
		t.Fatalf("expected 2 deliveries, got %d", got)
	}
	if len(a.frames) != 1 || len(b.frames) != 1 {
		t.Fatalf("each live connection should receive one frame")
	}
	if got := hub.Publish("nobody", "x"); got != 0 {
		t.Fatalf("expected 0 deliveries for unknown user, got %d", got)
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register("u1", a)
	hub.Register("u1", b)

	hub.Unregister("u1", a)
	if hub.Connections("u1") != 1 {
		t.Fatalf("expected one connection left")
	}
	hub.Unregister("u1", b)
	if hub.Connections("u1") != 0 {
		t.Fatalf("expected user entry removed")
	}
	hub.Unregister("u1", b)
	if hub.Publish("u1", "x") != 0 {
		t.Fatalf("unregistered connection must not receive frames")
	}
}

func TestHubConcurrentAccess(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := &fakeConn{}
			hub.Register("u1", c)
			hub.Publish("u1", "ping")
			hub.Unregister("u1", c)
		}()
	}
	wg.Wait()
	if hub.Connections("u1") != 0 {
		t.Fatalf("expected no connections after all goroutines unregistered")
	}
}
