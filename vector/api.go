package vector

import (
	"context"
)

// DefaultTopK is the number of hits Query callers conventionally ask for
// when they have no better value.
const DefaultTopK = 5

// Record represents a stored text-embedding pair. Records are append-only:
// once written they are never updated or deleted by the store.
type Record struct {
	// ID is assigned by the store on insertion; ids are strictly increasing
	// and never reused.
	ID int64

	// Text holds the remembered text. May be empty.
	Text string

	// Embedding is the vector representation of Text, produced by an
	// external embedding provider. The store does not validate its length.
	Embedding []float32

	// Metadata is an optional caller-defined payload (e.g. JSON). A nil
	// pointer means no metadata was supplied; it is stored as SQL NULL.
	Metadata *string
}

// Hit is a single similarity search result. It is transient and never
// persisted.
type Hit struct {
	ID    int64
	Text  string
	Score float64
}

// Store defines the vector store API. The canonical implementation is
// SQLiteStore; boltstore provides an alternate bbolt-backed one.
type Store interface {
	// Insert appends a new record and returns its assigned id. Every call
	// creates a new row, even for identical text; there is no uniqueness
	// constraint and no update-by-key semantics.
	Insert(ctx context.Context, text string, embedding []float32, meta *string) (int64, error)

	// Query scans every stored record, scores it against the given embedding
	// with Cosine, and returns the k highest-scoring hits in descending score
	// order. Equal scores order by lower id first. k <= 0 yields no hits.
	Query(ctx context.Context, embedding []float32, k int) ([]Hit, error)

	// Close releases the underlying storage handle. The store must not be
	// used afterwards.
	Close() error
}
