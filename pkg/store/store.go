// Package store persists creative records for the preview service.
//
// Two backends exist:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for production deployments
//
// A stored [Creative] wraps a raw campaign record with an identifier
// and bookkeeping timestamps. Identifiers are UUIDs assigned on first
// save, so records uploaded through the API can be previewed by stable
// URLs.
//
// Create a store:
//
//	// Development
//	s := store.NewMemoryStore()
//
//	// Production
//	s, err := store.NewMongoStore(ctx, store.MongoConfig{
//	    URI:      "mongodb://localhost:27017",
//	    Database: "adproof",
//	})
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/adproof/adproof/pkg/creative"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a creative does not exist.
	ErrNotFound = errors.New("creative not found")

	// ErrInvalidRecord is returned when a creative has no record
	// payload at all.
	ErrInvalidRecord = errors.New("invalid creative record")
)

// Creative is a stored campaign record.
type Creative struct {
	ID        string           `json:"id" bson:"_id"`
	Name      string           `json:"name,omitempty" bson:"name,omitempty"`
	Record    *creative.Record `json:"record" bson:"record"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for creative storage backends.
type Store interface {
	// Get retrieves a creative by ID. Returns ErrNotFound if it does
	// not exist.
	Get(ctx context.Context, id string) (*Creative, error)

	// Put stores a creative, assigning a UUID when the ID is empty.
	// The assigned ID is written back to c.
	Put(ctx context.Context, c *Creative) error

	// List returns all stored creatives, newest first.
	List(ctx context.Context) ([]*Creative, error)

	// Delete removes a creative. Deleting a missing ID is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// prepare validates c and fills in identity and timestamps before a
// save on any backend.
func prepare(c *Creative) error {
	if c == nil || c.Record == nil {
		return ErrInvalidRecord
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return nil
}
