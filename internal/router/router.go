package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
)

func New(
	projectHandler *handlers.ProjectHandler,
	courseworkHandler *handlers.CourseworkHandler,
	contactHandler *handlers.ContactHandler,
	resumeHandler *handlers.ResumeHandler,
	visitorHandler *handlers.VisitorHandler,
	tracking middleware.HitRecorder,
	respond *handlers.Responder,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))
	r.Use(middleware.Tracker(tracking))

	// Liveness (also a tracked page hit)
	r.Get("/", handlers.Health())

	r.Route("/api", func(r chi.Router) {

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.List)
			// "featured" must be matched before "{id}", or the literal
			// segment fails ObjectID validation.
			r.Get("/featured", projectHandler.ListFeatured)
			r.Get("/{id}", projectHandler.Get)
			r.Post("/", projectHandler.Create)
			r.Put("/{id}", projectHandler.Update)
			r.Delete("/{id}", projectHandler.Delete)
		})

		r.Route("/coursework", func(r chi.Router) {
			r.Get("/", courseworkHandler.List)
			r.Get("/{id}", courseworkHandler.Get)
			r.Post("/", courseworkHandler.Create)
			r.Put("/{id}", courseworkHandler.Update)
			r.Delete("/{id}", courseworkHandler.Delete)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.Create)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.Get)
			r.Put("/{id}", contactHandler.Update)
			r.Delete("/{id}", contactHandler.Delete)
		})

		r.Route("/resume", func(r chi.Router) {
			r.Get("/", resumeHandler.Get)
			r.Put("/", resumeHandler.Put)
		})

		r.Get("/visitors", visitorHandler.List)

		r.Route("/track", func(r chi.Router) {
			r.Post("/end-session", visitorHandler.EndSession)
			r.Get("/script.js", visitorHandler.Script)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Fail(w, http.StatusNotFound, "Route not found", nil)
	})

	return r
}
