package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/pets-service/internal/api/docs"
	"ulascansenturk/pets-service/internal/metrics"
	"ulascansenturk/pets-service/internal/service"
)

type RouterOptions struct {
	ForecastService service.ForecastService
	PetService      service.PetService
	Logger          zerolog.Logger
	Timeout         time.Duration

	// Metrics may be nil, in which case /metrics is not mounted.
	Metrics *metrics.HTTPMetrics

	// EnableDocs mounts the OpenAPI document and Swagger UI.
	EnableDocs bool
}

func NewRouter(opts RouterOptions) http.Handler {
	forecastHandler := NewForecastHandler(opts.ForecastService)
	petHandler := NewPetHandler(opts.PetService, opts.Timeout)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(hlog.AccessHandler(accessLog))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         600,
	}))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/weatherforecast", forecastHandler.GetForecasts)
	r.Get("/pets", petHandler.ListPets)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	if opts.EnableDocs {
		docs.Register(r)
	}

	return r
}
