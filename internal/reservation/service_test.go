package reservation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"bakeryBooker/internal/lib/logger/handlers/slogdiscard"
	"bakeryBooker/internal/models"
	"bakeryBooker/internal/notifier"
	"bakeryBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	pastry  []models.PastryReservation
	tables  []models.TableReservation
	writes  int
	failErr error
}

func (f *fakeStore) SavePastryReservation(_ context.Context, r *models.PastryReservation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return "", f.failErr
	}
	f.writes++
	id := strconv.Itoa(len(f.pastry) + 1)
	stored := *r
	stored.ID = id
	stored.Items = slices.Clone(r.Items)
	f.pastry = append(f.pastry, stored)

	return id, nil
}

func (f *fakeStore) SaveTableReservation(_ context.Context, r *models.TableReservation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return "", f.failErr
	}
	f.writes++
	id := strconv.Itoa(len(f.tables) + 1)
	stored := *r
	stored.ID = id
	f.tables = append(f.tables, stored)

	return id, nil
}

func (f *fakeStore) PastryReservations(_ context.Context) ([]models.PastryReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return nil, f.failErr
	}
	return append([]models.PastryReservation(nil), f.pastry...), nil
}

func (f *fakeStore) TableReservations(_ context.Context) ([]models.TableReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return nil, f.failErr
	}
	return append([]models.TableReservation(nil), f.tables...), nil
}

func (f *fakeStore) SetTableReservationConfirmed(_ context.Context, id string, confirmed bool) (*models.TableReservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failErr != nil {
		return nil, f.failErr
	}
	for i := range f.tables {
		if f.tables[i].ID == id {
			f.writes++
			f.tables[i].Confirmed = confirmed
			r := f.tables[i]
			return &r, nil
		}
	}

	return nil, fmt.Errorf("fake: %w", storage.ErrReservationNotFound)
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notifier.Message
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, msg notifier.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)

	return nil
}

func newService(store *fakeStore, n *fakeNotifier) *Service {
	s := New(slogdiscard.NewDiscardLogger(), store, n)
	s.now = func() time.Time { return time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC) }

	return s
}

func validPastry(items int) PastryRequest {
	req := PastryRequest{
		Name:     "Giulia",
		Phone:    "333",
		Date:     "2025-06-01",
		TimeSlot: "08:30",
	}
	for i := 0; i < items; i++ {
		req.Items = append(req.Items, "brioche-"+strconv.Itoa(i))
	}

	return req
}

func validTable() TableRequest {
	return TableRequest{
		Name:      "Anna",
		Phone:     "123",
		Email:     "a@x.com",
		Date:      "2025-06-01",
		TimeSlot:  "20:00",
		PartySize: 4,
	}
}

func TestCreatePastryReservationPreservesItems(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 7, models.MaxPastryItems} {
		n := n
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{}
			s := newService(store, &fakeNotifier{})
			req := validPastry(n)

			r, err := s.CreatePastryReservation(context.Background(), req)
			require.NoError(t, err)

			require.Len(t, store.pastry, 1)
			stored := store.pastry[0]
			assert.Equal(t, r.ID, stored.ID)
			assert.Len(t, stored.Items, n)
			if n > 0 {
				assert.Equal(t, req.Items, stored.Items)
			}
			assert.NotNil(t, stored.Items)
			assert.Equal(t, time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC), stored.CreatedAt)
		})
	}
}

func TestCreatePastryReservationValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(r *PastryRequest)
	}{
		{name: "Too many items", mutate: func(r *PastryRequest) { *r = validPastry(models.MaxPastryItems + 1) }},
		{name: "Missing name", mutate: func(r *PastryRequest) { r.Name = "" }},
		{name: "Missing phone", mutate: func(r *PastryRequest) { r.Phone = "" }},
		{name: "Missing time slot", mutate: func(r *PastryRequest) { r.TimeSlot = "" }},
		{name: "Date not ISO", mutate: func(r *PastryRequest) { r.Date = "01/06/2025" }},
		{name: "Date not zero padded", mutate: func(r *PastryRequest) { r.Date = "2025-6-1" }},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{}
			s := newService(store, &fakeNotifier{})
			req := validPastry(3)
			tc.mutate(&req)

			_, err := s.CreatePastryReservation(context.Background(), req)
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, store.writes, "no document may be written")
		})
	}
}

func TestCreateTableReservation(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	s := newService(store, &fakeNotifier{})

	r, err := s.CreateTableReservation(context.Background(), validTable())
	require.NoError(t, err)

	require.Len(t, store.tables, 1)
	assert.Equal(t, r.ID, store.tables[0].ID)
	assert.False(t, store.tables[0].Confirmed)
	assert.Equal(t, 4, store.tables[0].PartySize)
}

func TestCreateTableReservationPartySize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		size  int
		valid bool
	}{
		{size: -1, valid: false},
		{size: models.MinPartySize - 1, valid: false},
		{size: models.MinPartySize, valid: true},
		{size: 15, valid: true},
		{size: models.MaxPartySize, valid: true},
		{size: models.MaxPartySize + 1, valid: false},
		{size: 100, valid: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(strconv.Itoa(tc.size), func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{}
			s := newService(store, &fakeNotifier{})
			req := validTable()
			req.PartySize = tc.size

			_, err := s.CreateTableReservation(context.Background(), req)
			if tc.valid {
				assert.NoError(t, err)
				assert.Equal(t, 1, store.writes)
				return
			}

			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, store.writes)
		})
	}
}

func TestCreateTableReservationInvalidEmail(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	s := newService(store, &fakeNotifier{})
	req := validTable()
	req.Email = "not-an-email"

	_, err := s.CreateTableReservation(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, store.writes)
}

func TestStorageErrors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	store := &fakeStore{failErr: dbErr}
	s := newService(store, &fakeNotifier{})
	ctx := context.Background()

	_, err := s.CreatePastryReservation(ctx, validPastry(1))
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, dbErr)

	_, err = s.CreateTableReservation(ctx, validTable())
	assert.ErrorIs(t, err, ErrStorage)

	_, err = s.PastryReservations(ctx)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = s.TableReservations(ctx)
	assert.ErrorIs(t, err, ErrStorage)

	_, err = s.SetTableReservationStatus(ctx, "1", true)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestListingDoesNotWrite(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	s := newService(store, &fakeNotifier{})
	ctx := context.Background()

	_, err := s.CreatePastryReservation(ctx, validPastry(2))
	require.NoError(t, err)
	_, err = s.CreateTableReservation(ctx, validTable())
	require.NoError(t, err)

	writes := store.writes

	pastry, err := s.PastryReservations(ctx)
	require.NoError(t, err)
	tables, err := s.TableReservations(ctx)
	require.NoError(t, err)

	assert.Len(t, pastry, 1)
	assert.Len(t, tables, 1)
	assert.Equal(t, writes, store.writes)
}

func TestSetTableReservationStatusConfirmed(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	n := &fakeNotifier{}
	s := newService(store, n)
	ctx := context.Background()

	created, err := s.CreateTableReservation(ctx, validTable())
	require.NoError(t, err)

	r, err := s.SetTableReservationStatus(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, r.Confirmed)

	require.Len(t, n.sent, 1)
	msg := n.sent[0]
	assert.Equal(t, "a@x.com", msg.To)
	assert.Equal(t, "Conferma prenotazione tavolo", msg.Subject)
	for _, want := range []string{"Anna", "2025-06-01", "20:00", "4", "CONFERMATA"} {
		assert.Contains(t, msg.Body, want)
	}
}

func TestSetTableReservationStatusDeclined(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	n := &fakeNotifier{}
	s := newService(store, n)
	ctx := context.Background()

	created, err := s.CreateTableReservation(ctx, validTable())
	require.NoError(t, err)

	r, err := s.SetTableReservationStatus(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, r.Confirmed)

	require.Len(t, n.sent, 1)
	assert.Equal(t, "Prenotazione rifiutata", n.sent[0].Subject)
	assert.Contains(t, n.sent[0].Body, "non può essere accettata")
	assert.Contains(t, n.sent[0].Body, "Anna")
}

func TestSetTableReservationStatusTwiceSendsTwice(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	n := &fakeNotifier{}
	s := newService(store, n)
	ctx := context.Background()

	created, err := s.CreateTableReservation(ctx, validTable())
	require.NoError(t, err)

	_, err = s.SetTableReservationStatus(ctx, created.ID, true)
	require.NoError(t, err)
	_, err = s.SetTableReservationStatus(ctx, created.ID, true)
	require.NoError(t, err)

	assert.Len(t, n.sent, 2)
	assert.True(t, store.tables[0].Confirmed)
}

func TestSetTableReservationStatusNotFound(t *testing.T) {
	t.Parallel()

	n := &fakeNotifier{}
	s := newService(&fakeStore{}, n)

	_, err := s.SetTableReservationStatus(context.Background(), "42", true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, n.sent)
}

func TestSetTableReservationStatusNoEmail(t *testing.T) {
	t.Parallel()

	store := &fakeStore{tables: []models.TableReservation{{ID: "1", Name: "Anna"}}}
	n := &fakeNotifier{}
	s := newService(store, n)

	r, err := s.SetTableReservationStatus(context.Background(), "1", true)
	require.NoError(t, err)
	assert.True(t, r.Confirmed)
	assert.Empty(t, n.sent)
}

func TestSetTableReservationStatusNotificationFailureKeepsDecision(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	n := &fakeNotifier{}
	s := newService(store, n)
	ctx := context.Background()

	created, err := s.CreateTableReservation(ctx, validTable())
	require.NoError(t, err)

	n.err = errors.New("relay unreachable")

	_, err = s.SetTableReservationStatus(ctx, created.ID, true)
	assert.ErrorIs(t, err, ErrNotification)
	assert.True(t, store.tables[0].Confirmed, "decision stays persisted")
}
