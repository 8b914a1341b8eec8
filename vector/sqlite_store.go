package vector

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/memvec/engine"
)

// SQLiteStore is the canonical Store implementation, backed by a single
// SQLite table (see EnsureSchema for the layout). It owns its database
// handle for its lifetime; a mutex serializes all operations because the
// store is designed for one logical caller at a time and the underlying
// driver is not assumed re-entrant.
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	ownsDB bool
}

// Open opens or creates a SQLite database at path and ensures the memories
// table exists. Use ":memory:" for an ephemeral store. Failures wrap
// ErrOpenFailed; after a failed Open no store is returned and nothing needs
// closing.
func Open(path string) (*SQLiteStore, error) {
	db, err := engine.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	// sql.Open defers real work; ping to surface bad paths and permissions now.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenFailed, path, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenFailed, path, err)
	}
	return &SQLiteStore{db: db, ownsDB: true}, nil
}

// New wraps an existing database handle, ensuring the schema exists. The
// caller keeps ownership of db and is responsible for closing it; Close on
// the returned store is then a no-op. Useful when the handle is shared or
// injected.
func New(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: db is nil", ErrOpenFailed)
	}
	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Insert appends a new record and returns its id. The insert is a single
// transaction: on failure nothing is visible to subsequent queries.
func (s *SQLiteStore) Insert(ctx context.Context, text string, embedding []float32, meta *string) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	var metaVal sql.NullString
	if meta != nil {
		metaVal = sql.NullString{String: *meta, Valid: true}
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO memories(text, emb, meta) VALUES(?, ?, ?)`,
		text, EncodeEmbedding(embedding), metaVal)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return id, nil
}

// Query reads every record, scores it against embedding with Cosine and
// returns the k best hits, highest score first. Equal scores order by lower
// id. A row whose blob cannot be decoded is skipped; one corrupt row must
// not deny access to the rest of the corpus.
func (s *SQLiteStore) Query(ctx context.Context, embedding []float32, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, text, emb FROM memories`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			id   int64
			text string
			blob []byte
		)
		if err := rows.Scan(&id, &text, &blob); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		vec, err := DecodeEmbedding(blob)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{ID: id, Text: text, Score: Cosine(embedding, vec)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
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

// Records returns every stored record in id order, embeddings decoded.
// Rows whose blob cannot be decoded are skipped, matching Query. Failures
// wrap ErrReadFailed.
func (s *SQLiteStore) Records(ctx context.Context) ([]Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, text, emb, meta FROM memories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec  Record
			blob []byte
			meta sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Text, &blob, &meta); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		vec, err := DecodeEmbedding(blob)
		if err != nil {
			continue
		}
		rec.Embedding = vec
		if meta.Valid {
			m := meta.String
			rec.Metadata = &m
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return out, nil
}

// Close releases the database handle when the store owns it. It is safe to
// call once on every exit path after a successful Open.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying handle for maintenance tooling (see vecadmin).
func (s *SQLiteStore) DB() *sql.DB { return s.db }

var _ Store = (*SQLiteStore)(nil)
