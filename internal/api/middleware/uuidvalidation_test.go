package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	custommiddleware "github.com/s91capital/Investor-Backoffice-Backend/internal/api/middleware"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/testutil"
)

// TestValidateUUIDMiddleware tests UUID path parameter validation.
//
// WHY: Every entity route relies on this middleware so handlers never see a
// malformed ID. A gap here turns into garbage lookups in every handler.
func TestValidateUUIDMiddleware(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})
	handler := custommiddleware.ValidateUUIDMiddleware(next)

	t.Run("passes a valid UUID through", func(t *testing.T) {
		nextCalled = false
		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/investor/"+id, map[string]string{"uuid": id})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if !nextCalled {
			t.Error("Expected next handler to be called")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})

	t.Run("rejects a malformed UUID", func(t *testing.T) {
		nextCalled = false
		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/api/investor/nope", map[string]string{"uuid": "nope"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if nextCalled {
			t.Error("Expected next handler not to be called")
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("rejects a missing parameter", func(t *testing.T) {
		nextCalled = false
		req := httptest.NewRequest(http.MethodGet, "/api/investor/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if nextCalled {
			t.Error("Expected next handler not to be called")
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}
