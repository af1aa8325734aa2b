package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driving"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	authService      driving.AuthService
	companyService   driving.CompanyService
	warehouseService driving.WarehouseService
	categoryService  driving.CategoryService
}

// Config holds server configuration
type Config struct {
	Host    string
	Port    int
	Version string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    8080,
		Version: "dev",
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	companyService driving.CompanyService,
	warehouseService driving.WarehouseService,
	categoryService driving.CategoryService,
) *Server {
	s := &Server{
		router:           http.NewServeMux(),
		version:          cfg.Version,
		authService:      authService,
		companyService:   companyService,
		warehouseService: warehouseService,
		categoryService:  categoryService,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	authMiddleware := NewAuthMiddleware(s.authService)

	// Health endpoints (no auth)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Auth endpoints (public)
	s.router.HandleFunc("POST /api/v1/auth/signup", s.handleSignup)
	s.router.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	s.router.HandleFunc("POST /api/v1/auth/logout", s.handleLogout)
	s.router.HandleFunc("POST /api/v1/auth/refresh", s.handleRefresh)
	s.router.HandleFunc("GET /api/v1/auth/has-company", s.handleHasCompany)

	// Company endpoints (authenticated)
	s.router.Handle("POST /api/v1/companies",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateCompany)))
	s.router.Handle("POST /api/v1/employees",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateEmployee)))
	s.router.Handle("GET /api/v1/branches",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListBranches)))

	// Warehouse endpoints (authenticated)
	s.router.Handle("POST /api/v1/warehouses",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateWarehouse)))
	s.router.Handle("GET /api/v1/warehouses",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListWarehouses)))
	s.router.Handle("POST /api/v1/warehouses/{id}/branches",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleAssociateWarehouse)))

	// Category endpoints (authenticated)
	s.router.Handle("POST /api/v1/categories",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCreateCategory)))
	s.router.Handle("GET /api/v1/categories",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleListCategories)))
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
