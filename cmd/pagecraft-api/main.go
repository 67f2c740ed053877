package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkovac/pagecraft-api/internal/config"
	"github.com/dkovac/pagecraft-api/internal/database"
	"github.com/dkovac/pagecraft-api/internal/handlers"
	authmw "github.com/dkovac/pagecraft-api/internal/middleware"
	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/dkovac/pagecraft-api/internal/services"
	"github.com/dkovac/pagecraft-api/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	registry := schema.NewRegistry()

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	pageService := services.NewPageService(db, registry)
	templateService := services.NewTemplateService(db, registry)
	versionService := services.NewVersionService(db)
	libraryService := services.NewLibraryService(db, registry)

	hub := sse.NewHub()
	go hub.Run()

	pageHandler := handlers.NewPageHandler(pageService, hub)
	templateHandler := handlers.NewTemplateHandler(templateService, pageService)
	versionHandler := handlers.NewVersionHandler(versionService, hub)
	libraryHandler := handlers.NewLibraryHandler(libraryService)
	renderHandler := handlers.NewRenderHandler(pageService, registry, cfg.DefaultLanguage)
	sseHandler := handlers.NewSSEHandler(hub)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	// Public render projection for the site frontend.
	api.Get("/pages/:slug", renderHandler.Get)

	admin := api.Group("/admin")
	admin.Use(authmw.Auth(jwtService))

	admin.Get("/pages", pageHandler.List)
	admin.Post("/pages", pageHandler.Create)
	admin.Get("/pages/:id", pageHandler.Get)
	admin.Patch("/pages/:id", pageHandler.UpdateMeta)
	admin.Put("/pages/:id/content", pageHandler.UpdateContent)
	admin.Post("/pages/:id/status", pageHandler.SetStatus)
	admin.Post("/pages/:id/reorder", pageHandler.Reorder)
	admin.Delete("/pages/:id", pageHandler.Delete)

	admin.Get("/pages/:id/versions", versionHandler.List)
	admin.Post("/pages/:id/versions", versionHandler.Create)
	admin.Post("/pages/:id/versions/:versionId/activate", versionHandler.Activate)
	admin.Delete("/pages/:id/versions/:versionId", versionHandler.Delete)

	admin.Get("/page-templates", templateHandler.List)
	admin.Post("/page-templates", templateHandler.Create)
	admin.Get("/page-templates/:id", templateHandler.Get)
	admin.Patch("/page-templates/:id", templateHandler.Update)
	admin.Delete("/page-templates/:id", templateHandler.Delete)
	admin.Post("/page-templates/:id/archive", templateHandler.Archive)
	admin.Post("/page-templates/:id/instantiate", templateHandler.Instantiate)

	admin.Get("/page-components", libraryHandler.List)
	admin.Post("/page-components", libraryHandler.Create)
	admin.Get("/page-components/:id", libraryHandler.Get)
	admin.Post("/page-components/:id/archive", libraryHandler.Archive)
	admin.Delete("/page-components/:id", libraryHandler.Delete)

	admin.Get("/events", sseHandler.Connect)
	admin.Post("/sse/:clientId/subscribe/:pageId", sseHandler.Subscribe)
	admin.Post("/sse/:clientId/unsubscribe/:pageId", sseHandler.Unsubscribe)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
