package setTableReservationStatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"bakeryBooker/internal/lib/api/response"
	"bakeryBooker/internal/lib/logger/sl"
	"bakeryBooker/internal/models"
	"bakeryBooker/internal/reservation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgUpdated  = "Prenotazione aggiornata e email inviata."
	msgFailed   = "Errore durante l'aggiornamento."
	msgNotFound = "Prenotazione non trovata."
)

// StatusRequest carries the staff decision. Confirmed is a pointer so that a
// missing field is rejected instead of read as a decline.
type StatusRequest struct {
	Confirmed *bool `json:"confirmed" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableStatusSetter
type TableStatusSetter interface {
	SetTableReservationStatus(ctx context.Context, id string, confirmed bool) (*models.TableReservation, error)
}

func New(log *slog.Logger, setter TableStatusSetter) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.table.setTableReservationStatus.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("reservation id is required")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(msgNotFound))
			return
		}

		log = log.With(slog.String("id", id))

		var req StatusRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		if err = validate.Struct(req); err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		_, err = setter.SetTableReservationStatus(r.Context(), id, *req.Confirmed)
		if err != nil {
			log.Error("failed to update table reservation", sl.Err(err))

			if errors.Is(err, reservation.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(msgNotFound))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(msgFailed))
			return
		}

		log.Info("table reservation updated", slog.Bool("confirmed", *req.Confirmed))

		render.JSON(w, r, response.OK(msgUpdated))
	}
}
