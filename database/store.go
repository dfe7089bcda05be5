package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Logical collection names.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

var (
	// ErrUnavailable means no store connection was configured.
	ErrUnavailable = errors.New("database not configured")
	// ErrInvalidID means a boundary id string is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound means a well-formed id matched no document.
	ErrNotFound = errors.New("document not found")
)

// ID is a document identity as exposed at the API boundary: the hex form
// of the store-assigned ObjectID.
type ID string

// ObjectID translates the boundary string into the store-native identity,
// failing with ErrInvalidID when it is not well formed.
func (id ID) ObjectID() (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(string(id))
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, string(id))
	}
	return oid, nil
}

// Store wraps the shared Mongo handle. A nil Store is a valid
// "unconfigured" store: every operation fails with ErrUnavailable.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Name reports the bound database name, empty when unconfigured.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Insert writes one document into the named collection and returns the
// store-assigned identity in boundary form.
func Insert(ctx context.Context, s *Store, collection string, doc any) (ID, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	res, err := s.collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return ID(oid.Hex()), nil
}

// Find returns at most limit documents matching filter, in store-native
// order. No matches yields an empty, non-nil slice.
func Find[T any](ctx context.Context, s *Store, collection string, filter bson.M, limit int64) ([]T, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	opts := options.Find().SetLimit(limit)
	cursor, err := s.collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return docs, nil
}

// FindByID fetches one document by its boundary id. The id is validated
// before the store is touched, so a malformed id reports ErrInvalidID
// even on an unconfigured store.
func FindByID[T any](ctx context.Context, s *Store, collection string, id ID) (*T, error) {
	oid, err := id.ObjectID()
	if err != nil {
		return nil, err
	}
	if !s.Available() {
		return nil, ErrUnavailable
	}
	var doc T
	if err := s.collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return &doc, nil
}

// Count reports the number of documents in the named collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	if !s.Available() {
		return 0, ErrUnavailable
	}
	n, err := s.collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// ListCollections reports the collection names present in the database.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
