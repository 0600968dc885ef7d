package rest

import (
	"context"
	"net/http"

	core_port "catalog-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	allowedOrigins []string,
	propertyHandler *PropertyHandler,
	inquiryHandler *InquiryHandler,
	contentHandler *ContentHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		MaxAge:         300,
	}))
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// фиксированные сегменты регистрируются до "{propertyID}"
		r.Get("/properties", propertyHandler.ListProperties)
		r.Get("/properties/featured", propertyHandler.ListFeaturedProperties)
		r.Get("/properties/search", propertyHandler.SearchProperties)
		r.Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)
		r.Post("/properties", propertyHandler.CreateProperty)

		r.Post("/inquiries", inquiryHandler.CreateInquiry)
		r.Get("/inquiries", inquiryHandler.ListInquiries)

		r.Get("/team", contentHandler.ListTeamMembers)
		r.Post("/team", contentHandler.CreateTeamMember)

		r.Get("/testimonials", contentHandler.ListTestimonials)
		r.Get("/testimonials/featured", contentHandler.ListFeaturedTestimonials)
		r.Post("/testimonials", contentHandler.CreateTestimonial)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}

// Handler возвращает корневой роутер, используется в тестах.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
