package diag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"coffeeshop/internal/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func setupDiagTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", NewHandler(s).Status)
	return r
}

func getStatus(t *testing.T, router *gin.Engine) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("diagnostic endpoint must never fail, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestStatus_Degraded(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	body := getStatus(t, setupDiagTestRouter(store.NewUnavailableStore()))

	if body["backend"] != "✅ Running" {
		t.Fatalf("unexpected backend status %v", body["backend"])
	}
	if body["database"] != "❌ Not Available" {
		t.Fatalf("unexpected database status %v", body["database"])
	}
	if body["database_url"] != "❌ Not Set" || body["database_name"] != "❌ Not Set" {
		t.Fatalf("unexpected env markers: %v / %v", body["database_url"], body["database_name"])
	}
}

func TestStatus_Connected(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "coffeeshop")

	mem := store.NewMemoryStore()
	if _, err := mem.Create(context.Background(), "product", bson.M{"name": "Espresso"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := getStatus(t, setupDiagTestRouter(mem))

	if body["database"] != "✅ Connected & Working" {
		t.Fatalf("unexpected database status %v", body["database"])
	}
	if body["database_url"] != "✅ Set" || body["database_name"] != "✅ Set" {
		t.Fatalf("unexpected env markers: %v / %v", body["database_url"], body["database_name"])
	}

	collections, ok := body["collections"].([]interface{})
	if !ok || len(collections) != 1 || collections[0] != "product" {
		t.Fatalf("unexpected collections %v", body["collections"])
	}
}

func TestTruncate(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	if got := truncate(string(long), 80); len(got) != 80 {
		t.Fatalf("expected 80 chars, got %d", len(got))
	}
	if got := truncate("short", 80); got != "short" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}

// TestTruncateMultibyte: cutting must happen on characters, never in
// the middle of a multibyte rune.
func TestTruncateMultibyte(t *testing.T) {
	long := strings.Repeat("服务器连接失败", 20)

	got := truncate(long, 80)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 80 {
		t.Fatalf("expected 80 runes, got %d", utf8.RuneCountInString(got))
	}

	short := "⚠️ timeout"
	if got := truncate(short, 80); got != short {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}
