package getPastryReservations

import (
	"context"
	"log/slog"
	"net/http"

	"bakeryBooker/internal/lib/api/response"
	"bakeryBooker/internal/lib/logger/sl"
	"bakeryBooker/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const msgFailed = "Errore nel recupero delle prenotazioni."

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PastryReservationsGetter
type PastryReservationsGetter interface {
	PastryReservations(ctx context.Context) ([]models.PastryReservation, error)
}

func New(log *slog.Logger, getter PastryReservationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pastry.getPastryReservations.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		reservations, err := getter.PastryReservations(r.Context())
		if err != nil {
			log.Error("failed to get pastry reservations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		if reservations == nil {
			reservations = []models.PastryReservation{}
		}

		log.Info("pastry reservations retrieved", slog.Int("count", len(reservations)))

		render.JSON(w, r, reservations)
	}
}
