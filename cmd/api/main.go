package main

import (
	"log"
	"os"

	"coffeeshop/internal/db"
	"coffeeshop/internal/diag"
	"coffeeshop/internal/product"
	"coffeeshop/internal/router"
	"coffeeshop/internal/settings"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// ───────────────────────── STORE ─────────────────────────
	// DATABASE_URL / DATABASE_NAME are optional: without them the
	// backend serves the sample menu and in-memory defaults.
	documentStore := db.Connect()

	// ───────────────────────── WIRING ─────────────────────────
	productRepo := product.NewStoreRepository(documentStore)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	settingsRepo := settings.NewStoreRepository(documentStore)
	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	diagHandler := diag.NewHandler(documentStore)

	r := router.NewRouter(productHandler, settingsHandler, diagHandler)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
