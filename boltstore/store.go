package boltstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/viant/memvec/vector"
)

var bucketMemories = []byte("memories")

// record is the stored JSON shape. The embedding keeps the same packed
// little-endian float32 encoding as the SQLite emb column, base64-wrapped by
// encoding/json.
type record struct {
	Text string  `json:"text"`
	Emb  []byte  `json:"emb"`
	Meta *string `json:"meta,omitempty"`
}

// Store is a bbolt-backed vector.Store. Ids come from the bucket sequence,
// so they are strictly increasing and never reused. bbolt serializes
// writers internally; no extra locking is needed.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates a bbolt database at path and ensures the memories
// bucket exists. Failures wrap vector.ErrOpenFailed.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", vector.ErrOpenFailed, path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketMemories)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %w", vector.ErrOpenFailed, path, err)
	}
	return &Store{db: db}, nil
}

// Insert appends a new record and returns its assigned id.
func (s *Store) Insert(ctx context.Context, text string, embedding []float32, meta *string) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", vector.ErrWriteFailed, err)
	}
	var id int64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMemories)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		id = int64(seq)
		data, err := json.Marshal(record{Text: text, Emb: vector.EncodeEmbedding(embedding), Meta: meta})
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", vector.ErrWriteFailed, err)
	}
	return id, nil
}

// Query scans every record, scores it with vector.Cosine and returns the k
// best hits, highest score first, ties by lower id. Records that fail to
// decode are skipped.
func (s *Store) Query(ctx context.Context, embedding []float32, k int) ([]vector.Hit, error) {
	if k <= 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", vector.ErrReadFailed, err)
	}
	var hits []vector.Hit
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMemories).ForEach(func(key, val []byte) error {
			var rec record
			if err := json.Unmarshal(val, &rec); err != nil {
				return nil
			}
			vec, err := vector.DecodeEmbedding(rec.Emb)
			if err != nil {
				return nil
			}
			hits = append(hits, vector.Hit{
				ID:    btoi(key),
				Text:  rec.Text,
				Score: vector.Cosine(embedding, vec),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vector.ErrReadFailed, err)
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

// Close releases the database file.
func (s *Store) Close() error { return s.db.Close() }

// itob encodes an id as a big-endian key so bucket iteration follows id
// order.
func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func btoi(b []byte) int64 {
	if len(b) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}

var _ vector.Store = (*Store)(nil)
