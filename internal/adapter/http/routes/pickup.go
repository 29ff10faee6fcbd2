package routes

import (
	"net/http"

	"waste_pickup/internal/adapter/http/handlers"
	"waste_pickup/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPing               = "/ping"
	PathRequests           = "/requests"
	PathSlots              = "/slots"
	PathRewards            = "/rewards"
	PathNotifications      = "/notifications"
	PathNotificationStream = "/ws/notifications"
)

var staffRoles = []string{"operator", "vendor", "admin"}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addRequestRoutes(rg *gin.RouterGroup, h *handlers.PickupRequestHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", h.Create)
		requests.GET("", h.List)
		requests.GET("/:id", h.Get)
		requests.POST("/:id/submit", h.Submit)
		requests.POST("/:id/cancel", h.Cancel)
		requests.POST("/:id/confirm-slot", h.ConfirmSlot)
		requests.POST("/:id/notes", h.AddNote)
		requests.POST("/:id/status", middleware.RequireRole(staffRoles...), h.Transition)
	}
}

func addSlotRoutes(rg *gin.RouterGroup, h *handlers.SlotHandler) {
	rg.GET(PathSlots+"/available", h.AvailableSlots)
}

func addRewardRoutes(rg *gin.RouterGroup, h *handlers.RewardHandler) {
	rg.GET(PathRewards+"/summary", h.Summary)
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	rg.GET(PathNotifications, h.List)
}
