package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waste_pickup/internal/adapter/http/middleware"
	"waste_pickup/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestApp(t *testing.T) (*App, *middleware.TokenVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("STORAGE_DRIVER", config.StorageMemory)
	t.Setenv("JWT_SECRET", "routes-secret")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	app, err := newApp(cfg, memoryRepositories())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(app.Close)
	verifier, _ := middleware.NewTokenVerifier(cfg.JWTSecret)
	return app, verifier
}

func call(t *testing.T, app *App, token, method, path, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestRoutes_PublicAndAuth(t *testing.T) {
	app, verifier := newTestApp(t)

	if code, body := call(t, app, "", http.MethodGet, "/v1/ping", ""); code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("ping: %d %v", code, body)
	}
	if code, body := call(t, app, "", http.MethodGet, "/v1/requests", ""); code != http.StatusUnauthorized || body["code"] != "UNAUTHORIZED" {
		t.Fatalf("expected 401 UNAUTHORIZED, got %d %v", code, body)
	}

	citizen, _ := verifier.Sign(middleware.Principal{UserID: "citizen-1", Role: "citizen"}, time.Minute)
	if code, body := call(t, app, citizen, http.MethodPost, "/v1/requests/any/status", `{"status":"enroute"}`); code != http.StatusForbidden || body["code"] != "FORBIDDEN" {
		t.Fatalf("expected 403 FORBIDDEN, got %d %v", code, body)
	}
}

func TestRoutes_RequestLifecycle(t *testing.T) {
	app, verifier := newTestApp(t)
	citizen, _ := verifier.Sign(middleware.Principal{UserID: "citizen-1", Role: "citizen"}, time.Minute)
	operator, _ := verifier.Sign(middleware.Principal{UserID: "op-1", Role: "operator"}, time.Minute)

	code, created := call(t, app, citizen, http.MethodPost, "/v1/requests", `{"category":"hazardous","description":"paint cans","quantity":4,
"address":{"line1":"1 Main","city":"Pune","pincode":"411001"}}`)
	if code != http.StatusCreated || created["status"] != "submitted" {
		t.Fatalf("create: %d %v", code, created)
	}
	id, _ := created["id"].(string)

	if code, body := call(t, app, "", http.MethodGet, "/v1/requests/"+id, ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d %v", code, body)
	}
	other, _ := verifier.Sign(middleware.Principal{UserID: "citizen-2", Role: "citizen"}, time.Minute)
	if code, body := call(t, app, other, http.MethodGet, "/v1/requests/"+id, ""); code != http.StatusNotFound || body["code"] != "REQUEST_NOT_FOUND" {
		t.Fatalf("foreign owner must see 404, got %d %v", code, body)
	}

	code, scheduled := call(t, app, citizen, http.MethodPost, "/v1/requests/"+id+"/confirm-slot", `{"slot_start":"2099-01-10T10:00:00Z","slot_end":"2099-01-10T11:00:00Z"}`)
	if code != http.StatusOK || scheduled["status"] != "scheduled" {
		t.Fatalf("confirm slot: %d %v", code, scheduled)
	}

	for _, status := range []string{"enroute", "onsite", "collecting", "collected", "handover", "verification", "completed"} {
		code, body := call(t, app, operator, http.MethodPost, "/v1/requests/"+id+"/status", `{"status":"`+status+`"}`)
		if code != http.StatusOK || body["status"] != status {
			t.Fatalf("transition to %s: %d %v", status, code, body)
		}
	}

	if code, body := call(t, app, operator, http.MethodPost, "/v1/requests/"+id+"/status", `{"status":"failed"}`); code != http.StatusBadRequest || body["code"] != "INVALID_TRANSITION" {
		t.Fatalf("terminal request must reject transitions, got %d %v", code, body)
	}

	code, summary := call(t, app, citizen, http.MethodGet, "/v1/rewards/summary", "")
	if code != http.StatusOK || summary["total_points"] != float64(10) {
		t.Fatalf("reward summary: %d %v", code, summary)
	}

	code, list := call(t, app, citizen, http.MethodGet, "/v1/requests?status=completed", "")
	if code != http.StatusOK || list["total"] != float64(1) {
		t.Fatalf("list: %d %v", code, list)
	}
}

func TestRoutes_SlotsAndNotifications(t *testing.T) {
	app, verifier := newTestApp(t)
	citizen, _ := verifier.Sign(middleware.Principal{UserID: "citizen-1", Role: "citizen"}, time.Minute)

	code, slots := call(t, app, citizen, http.MethodGet, "/v1/slots/available?date=2099-01-10&category=organic", "")
	if code != http.StatusOK {
		t.Fatalf("slots: %d %v", code, slots)
	}
	if list, _ := slots["slots"].([]any); len(list) != 12 {
		t.Fatalf("expected 12 standard slots, got %v", slots["slots"])
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+citizen)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("notifications: %d", w.Code)
	}
}
