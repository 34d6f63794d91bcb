package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned by every operation when the store was never
// initialized (missing or bad database configuration at startup).
// It is the only infrastructure error the store defines; ordinary negative
// lookups are reported as false/nil results, never as errors.
var ErrUnavailable = errors.New("store: database not available, check DATABASE_URL and DATABASE_NAME")

const connectTimeout = 10 * time.Second

// Store provides collection-agnostic CRUD primitives over a single MongoDB
// database. It is constructed once at process start and injected into the
// controllers; the connection is never torn down for the process lifetime.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// FindOptions narrows a Find call. A zero Limit means no limit; Sort is a
// list of (field, direction) pairs applied in priority order.
type FindOptions struct {
	Limit int64
	Sort  bson.D
}

// Open connects to MongoDB using the given settings. When either setting is
// empty the returned store is permanently unavailable: every operation will
// fail with ErrUnavailable, but the process itself keeps running.
func Open(uri, name string) (*Store, error) {
	if uri == "" || name == "" {
		return &Store{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return &Store{}, fmt.Errorf("store: connect: %w", err)
	}

	return &Store{client: client, db: client.Database(name)}, nil
}

// NewWithDatabase wraps an existing database handle. Used by tests.
func NewWithDatabase(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether the store was initialized with a database handle.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) ready() error {
	if !s.Available() {
		return ErrUnavailable
	}
	return nil
}

// Create stamps created_at and updated_at with the current UTC instant
// (both equal), inserts the payload into the named collection and returns
// the external form of the new identifier.
func (s *Store) Create(ctx context.Context, collection string, payload interface{}) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}

	doc, err := toDocument(payload)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("store: insert into %s: %w", collection, err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("store: unexpected inserted id type %T", result.InsertedID)
	}
	return EncodeID(oid), nil
}

// Find returns every document in the collection matching filter.
// An unmatched filter yields an empty slice, never an error. Identifiers in
// the returned documents are always in their external string form.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, opts *FindOptions) ([]bson.M, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	if filter == nil {
		filter = bson.M{}
	}

	findOpts := options.Find()
	if opts != nil {
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
		if len(opts.Sort) > 0 {
			findOpts.SetSort(opts.Sort)
		}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("store: find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("store: decode from %s: %w", collection, err)
	}

	for _, doc := range docs {
		serializeID(doc)
	}
	return docs, nil
}

// FindByID looks up a single document by its external identifier.
// Both a missing document and a malformed identifier yield (nil, nil):
// a bad id is indistinguishable from an absent one at this boundary.
func (s *Store) FindByID(ctx context.Context, collection string, id string) (bson.M, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	oid, err := DecodeID(id)
	if err != nil {
		return nil, nil
	}

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: find %s/%s: %w", collection, id, err)
	}

	serializeID(doc)
	return doc, nil
}

// Update applies a partial field merge to the document with the given
// external identifier. Only the supplied fields change; updated_at is
// forcibly overwritten with the current UTC instant regardless of the
// caller's payload. Returns true iff a document matched the id, so a write
// that leaves every value unchanged still reports success. An unknown or
// malformed id yields (false, nil).
func (s *Store) Update(ctx context.Context, collection string, id string, set bson.M) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}

	oid, err := DecodeID(id)
	if err != nil {
		return false, nil
	}

	merged := bson.M{}
	for key, value := range set {
		merged[key] = value
	}
	merged["updated_at"] = time.Now().UTC()

	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": merged})
	if err != nil {
		return false, fmt.Errorf("store: update %s/%s: %w", collection, id, err)
	}
	return result.MatchedCount > 0, nil
}

// Delete removes the document with the given external identifier.
// Returns true iff a document existed and was removed; a second delete of
// the same id returns false. Hard delete, no tombstones.
func (s *Store) Delete(ctx context.Context, collection string, id string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}

	oid, err := DecodeID(id)
	if err != nil {
		return false, nil
	}

	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("store: delete %s/%s: %w", collection, id, err)
	}
	return result.DeletedCount > 0, nil
}

// CollectionNames lists the collections currently present in the database.
// Used by the health endpoint.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store: list collections: %w", err)
	}
	return names, nil
}

// toDocument converts an arbitrary payload (typed model or bson.M) into a
// flat document the timestamps can be stamped onto.
func toDocument(payload interface{}) (bson.M, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("store: marshal payload: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("store: unmarshal payload: %w", err)
	}
	return doc, nil
}

// serializeID rewrites the native _id into its external string form in place.
func serializeID(doc bson.M) {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = EncodeID(oid)
	}
}
