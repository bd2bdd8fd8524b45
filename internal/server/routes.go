package server

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/khairuladnan/StudentMS_Backend/internal/middleware"
)

// SetupRoutes configures the routes for the application.
//
// Read access to student records and contacts is public; every mutating
// endpoint sits behind the JWT middleware. Requests without a token get 401,
// requests with a bad or expired token get 403.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.CORS(&s.Config.CORS))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestLogger())

	// Health check and version routes (unprotected)
	r.Get("/health", s.Handlers.SystemHandler.Health)
	r.Get("/version", s.Handlers.SystemHandler.Version)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Handlers.AuthHandler.Register)
			r.Post("/login", s.Handlers.AuthHandler.Login)
		})

		r.Route("/students", func(r chi.Router) {
			r.Get("/", s.Handlers.StudentHandler.List)
			r.Get("/{id}", s.Handlers.StudentHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(s.authProviders.JWTService))

				r.Post("/add", s.Handlers.StudentHandler.Add)
				r.Put("/update/{id}", s.Handlers.StudentHandler.Update)
				r.Delete("/delete/{id}", s.Handlers.StudentHandler.Delete)
			})
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", s.Handlers.ContactHandler.List)
			r.Get("/{id}", s.Handlers.ContactHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(s.authProviders.JWTService))

				r.Post("/add", s.Handlers.ContactHandler.Add)
				r.Put("/update/{id}", s.Handlers.ContactHandler.Update)
				r.Delete("/delete/{id}", s.Handlers.ContactHandler.Delete)
			})
		})
	})

	s.router = r
}

// GetRouter returns the configured router. Used for testing and for
// integrating the router with other components.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
