package createPastryReservation

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"bakeryBooker/internal/lib/api/response"
	"bakeryBooker/internal/lib/logger/sl"
	"bakeryBooker/internal/models"
	"bakeryBooker/internal/reservation"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const msgFailed = "Errore durante la prenotazione."

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PastryReservationCreator
type PastryReservationCreator interface {
	CreatePastryReservation(ctx context.Context, req reservation.PastryRequest) (*models.PastryReservation, error)
}

func New(log *slog.Logger, creator PastryReservationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pastry.createPastryReservation.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req reservation.PastryRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		created, err := creator.CreatePastryReservation(r.Context(), req)
		if err != nil {
			log.Error("failed to create pastry reservation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		log.Info("pastry reservation created", slog.String("id", created.ID))

		render.JSON(w, r, response.OK(
			fmt.Sprintf("Ciao %s, la tua prenotazione è avvenuta con successo!", created.Name),
		))
	}
}
