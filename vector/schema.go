package vector

import (
	"database/sql"
)

const memoriesSchema = `
CREATE TABLE IF NOT EXISTS memories (
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    emb  BLOB NOT NULL,
    meta TEXT
);
`

// EnsureSchema creates the memories table in the provided database if it
// does not already exist. Creation is idempotent: running it against a
// database that already holds the table neither errors nor touches existing
// rows.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(memoriesSchema)
	return err
}
