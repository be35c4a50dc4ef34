package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakeryBooker/internal/models"
	"bakeryBooker/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names match the ones the previous deployment wrote to.
const (
	PastryCollection = "prenotazionebrioches"
	TableCollection  = "prenotazionetavolos"
)

type Storage struct {
	client  *mongodriver.Client
	pastry  *mongodriver.Collection
	tables  *mongodriver.Collection
	timeout time.Duration
}

// Document keys match the records already stored in these collections, so
// the API names (name, date, ...) are mapped here and nowhere else.
const (
	keyDate      = "data"
	keyCreatedAt = "dataCreazione"
	keyConfirmed = "confermata"
)

type pastryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"nome"`
	Phone     string             `bson:"numeroditelefono"`
	Date      string             `bson:"data"`
	TimeSlot  string             `bson:"orario"`
	Items     []string           `bson:"brioche"`
	CreatedAt time.Time          `bson:"dataCreazione"`
}

type tableDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"nome"`
	Phone     string             `bson:"telefono"`
	Email     string             `bson:"email"`
	Date      string             `bson:"data"`
	TimeSlot  string             `bson:"orario"`
	PartySize int                `bson:"persone"`
	Confirmed bool               `bson:"confermata"`
	CreatedAt time.Time          `bson:"dataCreazione"`
}

func Open(ctx context.Context, uri, database string, timeout time.Duration) (*Storage, error) {
	const op = "storage.mongo.Open"

	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := New(client.Database(database), timeout)

	if err = s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// New wraps an already connected database.
func New(db *mongodriver.Database, timeout time.Duration) *Storage {
	return &Storage{
		client:  db.Client(),
		pastry:  db.Collection(PastryCollection),
		tables:  db.Collection(TableCollection),
		timeout: timeout,
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) SavePastryReservation(ctx context.Context, r *models.PastryReservation) (string, error) {
	const op = "storage.mongo.SavePastryReservation"

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc := pastryDoc{
		ID:        primitive.NewObjectID(),
		Name:      r.Name,
		Phone:     r.Phone,
		Date:      r.Date,
		TimeSlot:  r.TimeSlot,
		Items:     r.Items,
		CreatedAt: r.CreatedAt,
	}
	if doc.Items == nil {
		doc.Items = []string{}
	}

	if _, err := s.pastry.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return doc.ID.Hex(), nil
}

func (s *Storage) SaveTableReservation(ctx context.Context, r *models.TableReservation) (string, error) {
	const op = "storage.mongo.SaveTableReservation"

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc := tableDoc{
		ID:        primitive.NewObjectID(),
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Date:      r.Date,
		TimeSlot:  r.TimeSlot,
		PartySize: r.PartySize,
		Confirmed: r.Confirmed,
		CreatedAt: r.CreatedAt,
	}

	if _, err := s.tables.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return doc.ID.Hex(), nil
}

func (s *Storage) PastryReservations(ctx context.Context) ([]models.PastryReservation, error) {
	const op = "storage.mongo.PastryReservations"

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.pastry.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: keyDate, Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var docs []pastryDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reservations := make([]models.PastryReservation, 0, len(docs))
	for _, d := range docs {
		reservations = append(reservations, d.toModel())
	}

	return reservations, nil
}

func (s *Storage) TableReservations(ctx context.Context) ([]models.TableReservation, error) {
	const op = "storage.mongo.TableReservations"

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.tables.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: keyCreatedAt, Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var docs []tableDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reservations := make([]models.TableReservation, 0, len(docs))
	for _, d := range docs {
		reservations = append(reservations, d.toModel())
	}

	return reservations, nil
}

func (s *Storage) SetTableReservationConfirmed(ctx context.Context, id string, confirmed bool) (*models.TableReservation, error) {
	const op = "storage.mongo.SetTableReservationConfirmed"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrReservationNotFound)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc tableDoc
	err = s.tables.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{keyConfirmed: confirmed}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrReservationNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reservation := doc.toModel()

	return &reservation, nil
}

func (s *Storage) DeletePastryReservationsBefore(ctx context.Context, date string) (int64, error) {
	const op = "storage.mongo.DeletePastryReservationsBefore"

	n, err := s.deleteBefore(ctx, s.pastry, date)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (s *Storage) DeleteTableReservationsBefore(ctx context.Context, date string) (int64, error) {
	const op = "storage.mongo.DeleteTableReservationsBefore"

	n, err := s.deleteBefore(ctx, s.tables, date)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (s *Storage) deleteBefore(ctx context.Context, coll *mongodriver.Collection, date string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := coll.DeleteMany(ctx, bson.M{keyDate: bson.M{"$lt": date}})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (d pastryDoc) toModel() models.PastryReservation {
	return models.PastryReservation{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		Date:      d.Date,
		TimeSlot:  d.TimeSlot,
		Items:     d.Items,
		CreatedAt: d.CreatedAt,
	}
}

func (d tableDoc) toModel() models.TableReservation {
	return models.TableReservation{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Date:      d.Date,
		TimeSlot:  d.TimeSlot,
		PartySize: d.PartySize,
		Confirmed: d.Confirmed,
		CreatedAt: d.CreatedAt,
	}
}
