package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"support-desk-backend/internal/api/middleware"
	"support-desk-backend/internal/queue"
	"support-desk-backend/internal/service/support"
	"support-desk-backend/internal/websocket"

	"github.com/prometheus/client_golang/prometheus"
)

type RouteRegistrar func(mux *http.ServeMux, s *APIServer)

type ServerConfig struct {
	ListenAddr     string
	AllowedOrigins []string
	// Registry receives the HTTP collectors and backs /metrics. Nil uses
	// the Prometheus default registry.
	Registry *prometheus.Registry
}

type APIServer struct {
	listenAddr          string
	requestQueueManager *queue.RequestQueueManager
	service             *support.Service
	routeRegistrars     []RouteRegistrar
	handler             *websocket.Handler
	cors                middleware.CORSConfig
	metrics             *metrics
}

func NewAPIServer(cfg ServerConfig, rqm *queue.RequestQueueManager, svc *support.Service, handler *websocket.Handler, registrars ...RouteRegistrar) *APIServer {
	var (
		reg      prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		reg, gatherer = cfg.Registry, cfg.Registry
	}

	return &APIServer{
		listenAddr:          cfg.ListenAddr,
		requestQueueManager: rqm,
		service:             svc,
		handler:             handler,
		routeRegistrars:     registrars,
		cors:                middleware.DefaultCORSConfig(cfg.AllowedOrigins),
		metrics:             newMetrics(reg, gatherer, cfg.ListenAddr, rqm),
	}
}

// Routes returns the instrumented mux with every registrar applied.
func (s *APIServer) Routes() http.Handler {
	mux := http.NewServeMux()

	for _, reg := range s.routeRegistrars {
		reg(mux, s)
	}

	mux.Handle("/metrics", s.metrics.metricsHandler())

	return s.metrics.instrument(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *APIServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.listenAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Server listening on http://localhost%s", s.listenAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *APIServer) Service() *support.Service {
	return s.service
}

func (s *APIServer) Websocket() *websocket.Handler {
	return s.handler
}
