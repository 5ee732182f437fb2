package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/tbourn/holistiq/internal/domain"
)

// DefaultDatabase is used when neither the URI nor the config names a database.
const DefaultDatabase = "holistiq"

var collections = []string{
	domain.CollectionBMI,
	domain.CollectionWorkouts,
	domain.CollectionMeditations,
	domain.CollectionChat,
	domain.CollectionAssessments,
	domain.CollectionReports,
	domain.CollectionHealthData,
}

// MongoBackend stores records as documents. IDs are ObjectIDs.
type MongoBackend struct {
	client *mongo.Client
	db     *mongo.Database
}

// DatabaseFromURI returns the database named in the URI path, or DefaultDatabase.
func DatabaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return DefaultDatabase
	}
	return cs.Database
}

// OpenMongo connects and pings the server, both bounded by timeout, then
// makes sure every collection has a descending timestamp index.
func OpenMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoBackend, error) {
	if database == "" {
		database = DatabaseFromURI(uri)
	}
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	b := &MongoBackend{client: client, db: client.Database(database)}
	if err := b.ensureIndexes(pctx); err != nil {
		log.Warn().Err(err).Str("database", database).Msg("mongo index setup failed")
	}
	return b, nil
}

func (b *MongoBackend) ensureIndexes(ctx context.Context) error {
	var errs []error
	for _, name := range collections {
		_, err := b.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (b *MongoBackend) Name() string { return "mongo" }

func (b *MongoBackend) NewID() domain.ID { return domain.ID(primitive.NewObjectID().Hex()) }

func (b *MongoBackend) Insert(ctx context.Context, rec domain.Record) error {
	_, err := b.db.Collection(rec.Collection()).InsertOne(ctx, rec)
	return err
}

func (b *MongoBackend) FindRecent(ctx context.Context, collection string, limit int, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := b.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (b *MongoBackend) FindByID(ctx context.Context, collection string, id domain.ID, out any) error {
	err := b.db.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (b *MongoBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx, readpref.Primary())
}

func (b *MongoBackend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
