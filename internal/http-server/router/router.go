package router

import (
	"context"
	"log/slog"
	"net/http"

	"bakeryBooker/internal/http-server/handlers/pastry/createPastryReservation"
	"bakeryBooker/internal/http-server/handlers/pastry/getPastryReservations"
	"bakeryBooker/internal/http-server/handlers/table/createTableReservation"
	"bakeryBooker/internal/http-server/handlers/table/getTableReservations"
	"bakeryBooker/internal/http-server/handlers/table/setTableReservationStatus"
	"bakeryBooker/internal/http-server/middleware/mwlogger"
	"bakeryBooker/internal/http-server/middleware/ratelimit"
	"bakeryBooker/internal/models"
	"bakeryBooker/internal/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const livenessMessage = "Server attivo!"

type Service interface {
	CreatePastryReservation(ctx context.Context, req reservation.PastryRequest) (*models.PastryReservation, error)
	CreateTableReservation(ctx context.Context, req reservation.TableRequest) (*models.TableReservation, error)
	PastryReservations(ctx context.Context) ([]models.PastryReservation, error)
	TableReservations(ctx context.Context) ([]models.TableReservation, error)
	SetTableReservationStatus(ctx context.Context, id string, confirmed bool) (*models.TableReservation, error)
}

type Options struct {
	AllowedOrigin string
	// RateLimit is requests per second per client on the booking endpoints. Zero disables it.
	RateLimit float64
	RateBurst int
	// TrustProxy keys the rate limiter and the request log on the forwarded
	// client address instead of the proxy's.
	TrustProxy bool
}

func New(log *slog.Logger, svc Service, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	if opts.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{opts.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(livenessMessage))
	})

	router.Group(func(r chi.Router) {
		if opts.RateLimit > 0 {
			r.Use(ratelimit.New(log, ratelimit.NewLimiter(opts.RateLimit, opts.RateBurst)))
		}

		r.Post("/prenota-brioche", createPastryReservation.New(log, svc))
		r.Post("/prenota-tavolo", createTableReservation.New(log, svc))
	})

	router.Get("/prenotazioni-brioche", getPastryReservations.New(log, svc))
	router.Get("/prenotazioni-tavoli", getTableReservations.New(log, svc))
	router.Put("/prenotazioni-tavoli/{id}", setTableReservationStatus.New(log, svc))

	return router
}
