package notifier

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestWSConnWriteJSON(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn := NewWSConn(raw)
		_ = conn.WriteJSON(map[string]string{"title": "Pickup scheduled"})
		_ = conn.Close(websocket.CloseNormalClosure, "bye")
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	var got map[string]string
	if err := client.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got["title"] != "Pickup scheduled" {
		t.Fatalf("unexpected frame: %v", got)
	}
	if _, _, err := client.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected normal close, got %v", err)
	}
}
