package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"docshelf/internal/auth"
	"docshelf/internal/config"
	"docshelf/internal/filetypes"
	"docshelf/internal/handler"
	"docshelf/internal/middleware"
	"docshelf/internal/seed"
	"docshelf/internal/service"
	"docshelf/internal/store"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"seed_file", cfg.SeedFile,
	)

	// Session tokens (placeholder identity). The legacy mock-token
	// fallback is dev only.
	sessionTokens, err := auth.NewSessionTokens(cfg.SessionSecret, cfg.Environment == "dev", logger)
	if err != nil {
		log.Fatalf("Failed to create session token service: %v", err)
	}

	// File-type catalog (embedded)
	fileTypes, err := filetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load file-type catalog: %v", err)
	}

	// Seed the tree store. Malformed seed data degrades to an empty
	// forest; it never prevents startup.
	treeStore := store.New()
	sections := seed.LoadFile(cfg.SeedFile, logger)
	if err := treeStore.Load(sections); err != nil {
		logger.Warn("seed data inconsistent, starting with empty section list", "error", err)
	}
	logger.Info("tree store seeded", "sections", len(sections))

	// Services
	sectionService := service.NewSectionService(treeStore, logger)
	folderService := service.NewFolderService(treeStore, logger)
	fileService := service.NewFileService(treeStore, fileTypes, logger)
	searchService := service.NewSearchService(treeStore, logger)

	// Handlers
	sectionHandler := handler.NewSectionHandler(sectionService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)
	sessionHandler := handler.NewSessionHandler(sessionTokens, logger)

	logger.Info("services initialized")

	// HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", sectionHandler.HealthCheck)

	// Session (placeholder auth)
	mux.HandleFunc("POST /api/auth/session", sessionHandler.CreateSession)

	// Section routes
	mux.HandleFunc("GET /api/sections", sectionHandler.ListSections)
	mux.HandleFunc("POST /api/sections", sectionHandler.CreateSection)
	mux.HandleFunc("PATCH /api/sections/{id}", sectionHandler.UpdateSection)
	mux.HandleFunc("DELETE /api/sections/{id}", sectionHandler.DeleteSection)
	mux.HandleFunc("GET /api/sections/{id}/tree", sectionHandler.GetTree)
	mux.HandleFunc("GET /api/sections/{id}/files", sectionHandler.ListFiles)

	// Folder routes (path-addressed in the body)
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("PATCH /api/folders", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders", folderHandler.DeleteFolder)

	// File routes
	mux.HandleFunc("PATCH /api/files/{id}", fileHandler.UpdateFile)
	mux.HandleFunc("POST /api/files/move", fileHandler.MoveFiles)

	// Lookup and search
	mux.HandleFunc("GET /api/items", searchHandler.GetItem)
	mux.HandleFunc("GET /api/search", searchHandler.Search)

	// Build middleware chain; applied in reverse order (they wrap each
	// other): CORS → RequestLog → Recovery → Auth → Routes
	var h http.Handler = mux
	h = middleware.Auth(sessionTokens)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLog(logger)(h)

	// CORS - must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
