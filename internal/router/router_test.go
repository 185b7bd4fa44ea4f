package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffeeshop/internal/diag"
	"coffeeshop/internal/product"
	"coffeeshop/internal/settings"
	"coffeeshop/internal/store"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	productHandler := product.NewHandler(product.NewService(product.NewStoreRepository(s)))
	settingsHandler := settings.NewHandler(settings.NewService(settings.NewStoreRepository(s)))
	diagHandler := diag.NewHandler(s)

	return NewRouter(productHandler, settingsHandler, diagHandler)
}

func TestLiveness(t *testing.T) {
	r := setupTestRouter(store.NewUnavailableStore())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["message"] != "Coffee Shop Backend Running" {
		t.Fatalf("unexpected liveness message %q", body["message"])
	}
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter(store.NewUnavailableStore())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

// TestSettingsEndpointsDegraded drives the wired routes end to end with
// no store attached: GET serves the default, PUT echoes without persisting.
func TestSettingsEndpointsDegraded(t *testing.T) {
	r := setupTestRouter(store.NewUnavailableStore())

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got settings.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TaxRate != settings.DefaultTaxRate {
		t.Fatalf("expected default tax rate, got %v", got.TaxRate)
	}
}
