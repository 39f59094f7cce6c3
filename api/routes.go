package api

import (
	"github.com/go-chi/chi/v5"
)

// setupProjectRoutes wires the full project surface: CRUD, answers,
// generation, download, progress and suggestions.
func setupProjectRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Get("/projects/{projectID}/sections", handlers.projectHandler.getSections())
		r.Get("/projects/{projectID}/progress", handlers.projectHandler.getProgress())

		// Answer Handler endpoints
		r.Post("/projects/{projectID}/answers", handlers.answerHandler.saveAnswer())

		// Generate Handler endpoints
		r.Post("/projects/{projectID}/generate", handlers.generateHandler.generateOutputs())
		r.Get("/projects/{projectID}/generate", handlers.generateHandler.getOutputs())
		r.Get("/projects/{projectID}/download", handlers.generateHandler.downloadOutputs())

		// Suggest Handler endpoints
		r.Post("/projects/{projectID}/ai-suggest", handlers.suggestHandler.suggest())
	})
}
