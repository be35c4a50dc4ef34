package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"bakeryBooker/internal/lib/logger/sl"
	"bakeryBooker/internal/models"
	"bakeryBooker/internal/notifier"
	"bakeryBooker/internal/storage"

	"github.com/go-playground/validator/v10"
)

type PastryRequest struct {
	Name     string   `json:"name" validate:"required"`
	Phone    string   `json:"phone" validate:"required"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string   `json:"timeSlot" validate:"required"`
	Items    []string `json:"items" validate:"pastry_items"`
}

type TableRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"timeSlot" validate:"required"`
	PartySize int    `json:"partySize" validate:"party_size"`
}

type Store interface {
	SavePastryReservation(ctx context.Context, r *models.PastryReservation) (string, error)
	SaveTableReservation(ctx context.Context, r *models.TableReservation) (string, error)
	PastryReservations(ctx context.Context) ([]models.PastryReservation, error)
	TableReservations(ctx context.Context) ([]models.TableReservation, error)
	SetTableReservationConfirmed(ctx context.Context, id string, confirmed bool) (*models.TableReservation, error)
}

type Notifier interface {
	Send(ctx context.Context, msg notifier.Message) error
}

type Service struct {
	log      *slog.Logger
	store    Store
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
}

func New(log *slog.Logger, store Store, n Notifier) *Service {
	return &Service{
		log:      log,
		store:    store,
		notifier: n,
		validate: newValidator(),
		now:      time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterAlias("pastry_items", fmt.Sprintf("max=%d", models.MaxPastryItems))
	v.RegisterAlias("party_size", fmt.Sprintf("min=%d,max=%d", models.MinPartySize, models.MaxPartySize))

	return v
}

func (s *Service) CreatePastryReservation(ctx context.Context, req PastryRequest) (*models.PastryReservation, error) {
	const op = "reservation.CreatePastryReservation"

	log := s.log.With(slog.String("op", op))

	if err := s.validate.Struct(req); err != nil {
		log.Info("invalid pastry reservation", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrValidation, err)
	}

	items := slices.Clone(req.Items)
	if items == nil {
		items = []string{}
	}

	r := &models.PastryReservation{
		Name:      req.Name,
		Phone:     req.Phone,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Items:     items,
		CreatedAt: s.now(),
	}

	id, err := s.store.SavePastryReservation(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
	r.ID = id

	log.Info("pastry reservation saved",
		slog.String("id", id),
		slog.String("name", r.Name),
		slog.Any("items", r.Items),
	)

	return r, nil
}

func (s *Service) CreateTableReservation(ctx context.Context, req TableRequest) (*models.TableReservation, error) {
	const op = "reservation.CreateTableReservation"

	log := s.log.With(slog.String("op", op))

	if err := s.validate.Struct(req); err != nil {
		log.Info("invalid table reservation", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrValidation, err)
	}

	r := &models.TableReservation{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		PartySize: req.PartySize,
		Confirmed: false,
		CreatedAt: s.now(),
	}

	id, err := s.store.SaveTableReservation(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
	r.ID = id

	log.Info("table reservation pending",
		slog.String("id", id),
		slog.String("name", r.Name),
		slog.Int("party_size", r.PartySize),
		slog.String("date", r.Date),
		slog.String("time_slot", r.TimeSlot),
	)

	return r, nil
}

// PastryReservations lists pastry reservations by pickup date, latest first.
func (s *Service) PastryReservations(ctx context.Context) ([]models.PastryReservation, error) {
	const op = "reservation.PastryReservations"

	reservations, err := s.store.PastryReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}

	return reservations, nil
}

// TableReservations lists table reservations by submission time, latest first.
func (s *Service) TableReservations(ctx context.Context) ([]models.TableReservation, error) {
	const op = "reservation.TableReservations"

	reservations, err := s.store.TableReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}

	return reservations, nil
}

// SetTableReservationStatus records the staff decision and emails the customer.
// The decision is persisted before the email goes out and is not rolled back
// when sending fails; the returned error then wraps ErrNotification.
func (s *Service) SetTableReservationStatus(ctx context.Context, id string, confirmed bool) (*models.TableReservation, error) {
	const op = "reservation.SetTableReservationStatus"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id),
		slog.Bool("confirmed", confirmed),
	)

	r, err := s.store.SetTableReservationConfirmed(ctx, id, confirmed)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}

	if r.Email == "" {
		log.Warn("reservation has no email, customer not notified")
		return r, nil
	}

	if err = s.notifier.Send(ctx, StatusMessage(r)); err != nil {
		log.Error("status saved but customer was not notified", slog.String("email", r.Email), sl.Err(err))
		return r, fmt.Errorf("%s: %w: %w", op, ErrNotification, err)
	}

	log.Info("table reservation status updated", slog.String("email", r.Email))

	return r, nil
}
