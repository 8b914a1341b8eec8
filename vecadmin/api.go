// Package vecadmin provides maintenance helpers for SQLite-backed stores:
// corpus statistics, embedding integrity checks and space reclamation. It
// operates on the raw database handle (see vector.SQLiteStore.DB) so it can
// also be pointed at files produced by other tooling.
package vecadmin

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/memvec/vector"
)

// Stats summarizes the memories table.
type Stats struct {
	// Records is the total row count, including rows with bad embeddings.
	Records int64

	// Dimensions maps embedding length to the number of rows carrying it.
	// The store does not enforce a single dimension, so mixed corpora show
	// up here.
	Dimensions map[int]int64

	// BadEmbeddings counts rows whose blob cannot be decoded. Query skips
	// these silently; Inspect makes them visible.
	BadEmbeddings int64
}

// Inspect scans the memories table and reports row counts, the dimension
// histogram and the number of undecodable embedding blobs.
func Inspect(ctx context.Context, db *sql.DB) (*Stats, error) {
	if db == nil {
		return nil, fmt.Errorf("vecadmin: db is nil")
	}
	rows, err := db.QueryContext(ctx, `SELECT emb FROM memories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &Stats{Dimensions: make(map[int]int64)}
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		stats.Records++
		vec, err := vector.DecodeEmbedding(blob)
		if err != nil {
			stats.BadEmbeddings++
			continue
		}
		stats.Dimensions[len(vec)]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Vacuum reclaims free space in the database file.
func Vacuum(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("vecadmin: db is nil")
	}
	_, err := db.ExecContext(ctx, `VACUUM`)
	return err
}
