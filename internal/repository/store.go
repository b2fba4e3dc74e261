package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the raw-document surface the development data loader works
// against: whole-collection truncation plus document inserts, nothing else.
type Store interface {
	DropCollection(ctx context.Context, name string) error
	InsertDocument(ctx context.Context, collection string, doc interface{}) error
}

type store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *store {
	return &store{db: db}
}

func (s *store) DropCollection(ctx context.Context, name string) error {
	return errors.Wrap(s.db.Collection(name).Drop(ctx), "drop collection")
}

func (s *store) InsertDocument(ctx context.Context, collection string, doc interface{}) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return errors.Wrap(err, "insert document")
}
