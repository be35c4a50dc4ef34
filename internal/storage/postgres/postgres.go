package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bakeryBooker/internal/models"
	"bakeryBooker/internal/storage"

	"github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS pastry_reservations (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL,
		date       TEXT NOT NULL,
		time_slot  TEXT NOT NULL,
		items      TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS table_reservations (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL,
		email      TEXT NOT NULL,
		date       TEXT NOT NULL,
		time_slot  TEXT NOT NULL,
		party_size INTEGER NOT NULL CHECK (party_size BETWEEN 1 AND 30),
		confirmed  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

type Storage struct {
	DB      *sql.DB
	timeout time.Duration
}

func InitDB(ctx context.Context, dsn string, timeout time.Duration) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db, timeout: timeout}

	if err = s.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.DB.PingContext(ctx)
}

func (s *Storage) Close(_ context.Context) error {
	return s.DB.Close()
}

func (s *Storage) SavePastryReservation(ctx context.Context, r *models.PastryReservation) (string, error) {
	query := `
		INSERT INTO pastry_reservations (name, phone, date, time_slot, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items := r.Items
	if items == nil {
		items = []string{}
	}

	var id int64
	err := s.DB.QueryRowContext(ctx, query, r.Name, r.Phone, r.Date, r.TimeSlot, pq.Array(items), r.CreatedAt).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create pastry reservation: %w", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (s *Storage) SaveTableReservation(ctx context.Context, r *models.TableReservation) (string, error) {
	query := `
		INSERT INTO table_reservations (name, phone, email, date, time_slot, party_size, confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		r.Name, r.Phone, r.Email, r.Date, r.TimeSlot, r.PartySize, r.Confirmed, r.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create table reservation: %w", err)
	}

	return strconv.FormatInt(id, 10), nil
}

func (s *Storage) PastryReservations(ctx context.Context) ([]models.PastryReservation, error) {
	query := `
		SELECT id, name, phone, date, time_slot, items, created_at
		FROM pastry_reservations
		ORDER BY date DESC`

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pastry reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]models.PastryReservation, 0)
	for rows.Next() {
		var (
			r  models.PastryReservation
			id int64
		)
		err = rows.Scan(&id, &r.Name, &r.Phone, &r.Date, &r.TimeSlot, pq.Array(&r.Items), &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pastry reservation: %w", err)
		}
		r.ID = strconv.FormatInt(id, 10)
		reservations = append(reservations, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pastry reservations: %w", err)
	}

	return reservations, nil
}

func (s *Storage) TableReservations(ctx context.Context) ([]models.TableReservation, error) {
	query := `
		SELECT id, name, phone, email, date, time_slot, party_size, confirmed, created_at
		FROM table_reservations
		ORDER BY created_at DESC`

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get table reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]models.TableReservation, 0)
	for rows.Next() {
		r, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan table reservation: %w", err)
		}
		reservations = append(reservations, *r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table reservations: %w", err)
	}

	return reservations, nil
}

func (s *Storage) SetTableReservationConfirmed(ctx context.Context, id string, confirmed bool) (*models.TableReservation, error) {
	query := `
		UPDATE table_reservations
		SET confirmed = $1
		WHERE id = $2
		RETURNING id, name, phone, email, date, time_slot, party_size, confirmed, created_at`

	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, storage.ErrReservationNotFound
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := scanTable(s.DB.QueryRowContext(ctx, query, confirmed, numericID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to update table reservation: %w", err)
	}

	return r, nil
}

func (s *Storage) DeletePastryReservationsBefore(ctx context.Context, date string) (int64, error) {
	n, err := s.deleteBefore(ctx, `DELETE FROM pastry_reservations WHERE date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old pastry reservations: %w", err)
	}

	return n, nil
}

func (s *Storage) DeleteTableReservationsBefore(ctx context.Context, date string) (int64, error) {
	n, err := s.deleteBefore(ctx, `DELETE FROM table_reservations WHERE date < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old table reservations: %w", err)
	}

	return n, nil
}

func (s *Storage) deleteBefore(ctx context.Context, query, date string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// COLLATE "C" keeps the comparison bytewise, matching the stored date layout.
	result, err := s.DB.ExecContext(ctx, query+` COLLATE "C"`, date)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTable(row rowScanner) (*models.TableReservation, error) {
	var (
		r  models.TableReservation
		id int64
	)

	err := row.Scan(&id, &r.Name, &r.Phone, &r.Email, &r.Date, &r.TimeSlot, &r.PartySize, &r.Confirmed, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.ID = strconv.FormatInt(id, 10)

	return &r, nil
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
