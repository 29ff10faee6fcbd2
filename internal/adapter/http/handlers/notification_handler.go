package handlers

import (
	"log"
	"net/http"

	response "waste_pickup/internal/adapter/http/dto/response"
	"waste_pickup/internal/adapter/http/middleware"
	"waste_pickup/internal/infrastructure/notifier"
	"waste_pickup/internal/usecase"
	"waste_pickup/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// closeUnauthorized is the application close code sent for a bad token.
const closeUnauthorized = 4001

type NotificationHandler struct {
	usecase  usecase.INotificationUseCase
	hub      interfaces.IConnectionRegistry
	verifier *middleware.TokenVerifier
	upgrader websocket.Upgrader
}

func NewNotificationHandler(uc usecase.INotificationUseCase, hub interfaces.IConnectionRegistry, verifier *middleware.TokenVerifier) *NotificationHandler {
	return &NotificationHandler{
		usecase:  uc,
		hub:      hub,
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// List godoc
// @Summary      Latest notifications of the caller
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  response.NotificationResponse
// @Security     Bearer
// @Router       /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.usecase.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// Stream upgrades to a WebSocket that receives in-app notifications. The
// bearer token travels in the "token" query parameter.
func (h *NotificationHandler) Stream(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[notification][ws] upgrade failed err=%v", err)
		return
	}
	conn := notifier.NewWSConn(ws)

	principal, err := h.verifier.Verify(c.Query("token"))
	if err != nil {
		_ = conn.Close(closeUnauthorized, "unauthorized")
		return
	}

	h.hub.Register(principal.UserID, conn)
	log.Printf("[notification][ws] connected user=%s", principal.UserID)
	defer func() {
		h.hub.Unregister(principal.UserID, conn)
		_ = conn.Close(websocket.CloseNormalClosure, "")
		log.Printf("[notification][ws] disconnected user=%s", principal.UserID)
	}()

	// Inbound frames are ignored; reading detects the client going away.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

