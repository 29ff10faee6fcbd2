package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"waste_pickup/internal/adapter/http/handlers/mocks"
	"waste_pickup/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSlotHandler_AvailableSlots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.GET("/v1/slots/available", h.AvailableSlots)

		w := serveJSON(r, http.MethodGet, "/v1/slots/available?date=10-01-2025", "")
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_REQUEST" {
			t.Fatalf("expected 400 INVALID_REQUEST, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.GET("/v1/slots/available", h.AvailableSlots)

		day := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().AvailableSlots(gomock.Any(), gomock.Any(), entities.WasteCategoryHazardous).Return([]entities.SlotWindow{
			{Start: day, End: day.Add(time.Hour)},
			{Start: day.Add(time.Hour), End: day.Add(2 * time.Hour)},
		}, nil)

		w := serveJSON(r, http.MethodGet, "/v1/slots/available?date=2025-01-10&category=hazardous", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Date  string           `json:"date"`
			Slots []map[string]any `json:"slots"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Date != "2025-01-10" || len(body.Slots) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(uc)

		r := gin.New()
		r.GET("/v1/slots/available", h.AvailableSlots)

		uc.EXPECT().AvailableSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		w := serveJSON(r, http.MethodGet, "/v1/slots/available?date=2025-01-10&category=organic", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestRewardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRewardUseCase(ctrl)
	h := NewRewardHandler(uc)

	r := gin.New()
	r.GET("/v1/rewards/summary", asUser("user-1", "citizen"), h.Summary)

	uc.EXPECT().Summary(gomock.Any(), "user-1").Return(entities.RewardSummary{
		TotalPoints: 15,
		Recent: []entities.Reward{
			{ID: "rw-1", UserID: "user-1", RequestID: "req-1", Points: 10, Reason: "completed hazardous pickup"},
		},
	}, nil)

	w := serveJSON(r, http.MethodGet, "/v1/rewards/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		TotalPoints int              `json:"total_points"`
		Recent      []map[string]any `json:"recent"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.TotalPoints != 15 || len(body.Recent) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestNotificationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc, nil, nil)

		r := gin.New()
		r.GET("/v1/notifications", asUser("user-1", "citizen"), h.List)

		uc.EXPECT().ListForUser(gomock.Any(), "user-1").Return([]entities.Notification{
			{ID: "n-1", UserID: "user-1", Channel: entities.NotificationChannelInApp, Title: "Pickup request created", Status: entities.NotificationStatusSent},
		}, nil)

		w := serveJSON(r, http.MethodGet, "/v1/notifications", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "n-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc, nil, nil)

		r := gin.New()
		r.GET("/v1/notifications", asUser("user-1", "citizen"), h.List)

		uc.EXPECT().ListForUser(gomock.Any(), "user-1").Return(nil, errors.New("boom"))

		w := serveJSON(r, http.MethodGet, "/v1/notifications", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
