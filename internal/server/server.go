// Package server provides the HTTP server for the student records API.
// It wires configuration, database, authentication, services and handlers
// together and manages the server lifecycle including graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/khairuladnan/StudentMS_Backend/internal/auth"
	"github.com/khairuladnan/StudentMS_Backend/internal/config"
	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
	"github.com/khairuladnan/StudentMS_Backend/internal/database"
	"github.com/khairuladnan/StudentMS_Backend/internal/handlers"
	"github.com/khairuladnan/StudentMS_Backend/internal/repository"
	"github.com/khairuladnan/StudentMS_Backend/internal/service"
	"github.com/khairuladnan/StudentMS_Backend/migrations"
	"github.com/khairuladnan/StudentMS_Backend/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// AuthHandler manages registration and login
	AuthHandler *handlers.AuthHandler

	// StudentHandler manages student record endpoints
	StudentHandler *handlers.StudentHandler

	// ContactHandler manages the contact book endpoints
	ContactHandler *handlers.ContactHandler

	// SystemHandler serves health and version endpoints
	SystemHandler *handlers.SystemHandler
}

// AuthProviders contains the authentication dependencies shared by the
// login flow and the route protection middleware.
type AuthProviders struct {
	// JWTService handles token generation and validation
	JWTService *auth.JWTService

	// PasswordCfg contains password hashing configuration
	PasswordCfg *auth.PasswordConfig
}

// Server represents the API server. It encapsulates all components and
// handles initialization, startup and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// authProviders contains authentication services
	authProviders *AuthProviders

	// repositories used by the services
	studentRepo repository.StudentRepository
	contactRepo repository.ContactRepository

	// services implementing the business logic
	authService    *service.AuthService
	studentService *service.StudentService
	contactService *service.ContactService

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows dependency order: database, auth providers,
// repositories, services, handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := s.setupAuthProviders(); err != nil {
		return nil, fmt.Errorf("failed to set up auth providers: %w", err)
	}

	if err := s.setupRepositories(); err != nil {
		return nil, fmt.Errorf("failed to set up repositories: %w", err)
	}

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	if err := s.setupHandlers(); err != nil {
		return nil, fmt.Errorf("failed to set up handlers: %w", err)
	}

	if err := s.seedDatabase(); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase initializes the database connection and runs migrations.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// seedDatabase runs the idempotent bootstrap seeds. Runs after the auth
// providers are set up because the admin seed needs the password config.
func (s *Server) seedDatabase() error {
	seeder := scripts.NewSeeder(s.Db, s.authProviders.PasswordCfg)
	return seeder.SeedDatabase(context.Background())
}

// setupAuthProviders initializes the JWT service and password configuration.
func (s *Server) setupAuthProviders() error {
	jwtService := auth.NewJWTService(&s.Config.JWT)
	passwordCfg := auth.ConfigFromAppConfig(s.Config)

	s.authProviders = &AuthProviders{
		JWTService:  jwtService,
		PasswordCfg: passwordCfg,
	}

	return nil
}

// setupRepositories initializes the data repositories.
func (s *Server) setupRepositories() error {
	s.studentRepo = repository.NewStudentRepository(s.Db)
	s.contactRepo = repository.NewContactRepository()

	return nil
}

// setupServices initializes the business services.
func (s *Server) setupServices() error {
	if s.authProviders == nil || s.authProviders.JWTService == nil {
		return fmt.Errorf("JWT service not initialized")
	}
	if s.authProviders.PasswordCfg == nil {
		return fmt.Errorf("password config not initialized")
	}

	s.authService = service.NewAuthService(
		s.studentRepo,
		s.authProviders.JWTService,
		s.authProviders.PasswordCfg,
	)
	s.studentService = service.NewStudentService(s.studentRepo)
	s.contactService = service.NewContactService(s.contactRepo)

	return nil
}

// setupHandlers initializes the HTTP request handlers.
func (s *Server) setupHandlers() error {
	s.Handlers = &Handlers{
		AuthHandler:    handlers.NewAuthHandler(s.authService),
		StudentHandler: handlers.NewStudentHandler(s.studentService),
		ContactHandler: handlers.NewContactHandler(s.contactService),
		SystemHandler:  handlers.NewSystemHandler(s.Db, s.Config),
	}

	return nil
}

// Start starts the HTTP server and blocks until a server error occurs or a
// shutdown signal (SIGINT, SIGTERM) is received, in which case it shuts the
// server down gracefully within the configured timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("Failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}
