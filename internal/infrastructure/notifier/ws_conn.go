package notifier

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// WSConn adapts a gorilla connection to the hub. gorilla allows one writer at
// a time, so writes are serialized.
type WSConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWSConn(conn *websocket.Conn) *WSConn {
	return &WSConn{conn: conn}
}

func (c *WSConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

// Close sends a close frame with code and reason, then closes the socket.
func (c *WSConn) Close(code int, reason string) error {
	c.mu.Lock()
	msg := websocket.FormatCloseMessage(code, reason)
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	c.mu.Unlock()
	return c.conn.Close()
}
