package getTableReservations

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableReservationsGetter
type TableReservationsGetter interface {
	TableReservations(ctx context.Context) ([]models.TableReservation, error)
}

func New(log *slog.Logger, getter TableReservationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.table.getTableReservations.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		reservations, err := getter.TableReservations(r.Context())
		if err != nil {
			log.Error("failed to get table reservations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		if reservations == nil {
			reservations = []models.TableReservation{}
		}

		log.Info("table reservations retrieved", slog.Int("count", len(reservations)))

		render.JSON(w, r, reservations)
	}
}
