package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sachinbijalwan2892/Social-media-app/internal/api/handlers"
	"github.com/sachinbijalwan2892/Social-media-app/internal/auth"
	"github.com/sachinbijalwan2892/Social-media-app/internal/models"
	"github.com/sachinbijalwan2892/Social-media-app/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(jwtSecret string, authService services.AuthServiceProvider, postService services.PostServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)

	authenticated := auth.Authenticator(jwtSecret)
	anyRole := auth.RequireRoles(models.RoleAdmin, models.RoleRegistered)
	registeredOnly := auth.RequireRoles(models.RoleRegistered)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/posts", func(r chi.Router) {
		// Public reads
		r.Get("/", postHandler.List)
		r.Get("/comments/{id}", postHandler.ListComments)

		r.Group(func(r chi.Router) {
			r.Use(authenticated, anyRole)
			r.Post("/create", postHandler.Create)
			r.Delete("/delete/{id}", postHandler.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated, registeredOnly)
			r.Put("/update/{id}", postHandler.Update)
			r.Post("/like/{id}", postHandler.Like)
			r.Post("/unlike/{id}", postHandler.Unlike)
			r.Post("/comment/{id}", postHandler.Comment)
		})
	})

	return r
}
