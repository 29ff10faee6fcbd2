package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body.Code != "REQUEST_NOT_FOUND" || body.Message != "Request not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "REQUEST_NOT_FOUND: Request not found" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into body")
		}
	})
}
