package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxJSONBodyBytes caps every JSON request body.
const maxJSONBodyBytes = 1 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// public routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(maxJSONBodyBytes))

		r.Post("/auth/login", h.login)

		r.Get("/posts", h.listPosts)
		r.Get("/posts/{key}", h.getPost)

		r.Get("/projects", h.listProjects)
		r.Get("/projects/{key}", h.getProject)

		r.Get("/resume", h.getResume)

		r.Get("/api/version", h.getServerVersion)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequestSize(maxJSONBodyBytes))

			r.Put("/admin/credentials", h.updateCredentials)

			r.Post("/posts", h.createPost)
			r.Put("/posts/{key}", h.updatePost)
			r.Delete("/posts/{key}", h.deletePost)

			r.Post("/projects", h.createProject)
			r.Put("/projects/{slug}", h.updateProject)
			r.Delete("/projects/{slug}", h.deleteProject)

			r.Put("/resume", h.updateResume)
		})

		// capped by the upload limit in uploadImage
		r.Post("/upload", h.uploadImage)
	})

	router.NotFound(CheckHTTPMethod)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}
}
