package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	analyticssvc "gitlab.com/codelens-2025.net/internal/core/services/analytics"
	reviewsvc "gitlab.com/codelens-2025.net/internal/core/services/review"
	submissionsvc "gitlab.com/codelens-2025.net/internal/core/services/submission"
	"gitlab.com/codelens-2025.net/internal/handlers"
	"gitlab.com/codelens-2025.net/internal/handlers/analytics"
	"gitlab.com/codelens-2025.net/internal/handlers/reviews"
	"gitlab.com/codelens-2025.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService submissionsvc.ISubmissionService
	reviewService     reviewsvc.IReviewService
	analyticsService  analyticssvc.IAnalyticsService
}

func NewServiceProvider(
	submissionService submissionsvc.ISubmissionService,
	reviewService reviewsvc.IReviewService,
	analyticsService analyticssvc.IAnalyticsService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
		reviewService:     reviewService,
		analyticsService:  analyticsService,
	}
}

type Server struct {
	router          *mux.Router
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	middleware      *handlers.MiddlewareProvider
	logger          primary.Logger
	srv             *http.Server
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, middleware *handlers.MiddlewareProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		middleware:      middleware,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	// All operations assume an authenticated identity; the middleware
	// supplies the owner id the core trusts.
	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.middleware.JWTMiddleware)

	submissions.NewHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(api)
	reviews.NewHandler(s.ServiceProvider.reviewService, s.logger).RegisterRoutes(api)
	analytics.NewHandler(s.ServiceProvider.analyticsService, s.logger).RegisterRoutes(api)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation waits on the analysis capability
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv != nil {
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", "error", err)
		}
	}
}
