package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Route("/ai", func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/prompt", h.prompt)
			r.Post("/quiz", h.generateQuiz)
			r.Post("/quiz/evaluate", h.evaluateQuiz)
			r.Post("/study-plan", h.studyPlan)
			r.Post("/summary", h.summary)
			r.Post("/ocr", h.ocr)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", h.listDocuments)
			r.Post("/", h.saveDocument)
			r.Patch("/{id}", h.updateDocument)
			r.Delete("/{id}", h.deleteDocument)
		})

		r.Post("/users/register", h.register)
		r.Post("/users/login", h.login)

		r.Get("/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
