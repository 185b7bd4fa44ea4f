package diag

import (
	"context"
	"net/http"
	"os"
	"time"

	"coffeeshop/internal/store"

	"github.com/gin-gonic/gin"
)

const probeTimeout = 500 * time.Millisecond

// Handler serves GET /test: a connectivity report that never fails the
// request, whatever state the store is in.
type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) Status(c *gin.Context) {
	response := gin.H{
		"backend":       "✅ Running",
		"database":      "❌ Not Available",
		"database_url":  envStatus("DATABASE_URL"),
		"database_name": envStatus("DATABASE_NAME"),
		"collections":   []string{},
	}

	if h.store.Available() {
		ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
		defer cancel()

		if err := h.probe(ctx, response); err != nil {
			response["database"] = "⚠️ Error: " + truncate(err.Error(), 80)
		} else {
			response["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) probe(ctx context.Context, response gin.H) error {
	if err := h.store.Ping(ctx); err != nil {
		return err
	}

	names, err := h.store.CollectionNames(ctx)
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	response["collections"] = names
	return nil
}

func envStatus(key string) string {
	if os.Getenv(key) == "" {
		return "❌ Not Set"
	}
	return "✅ Set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
