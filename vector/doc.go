// Package vector implements a persistent store of text-embedding pairs with
// exact nearest-neighbour retrieval by cosine similarity. It includes:
//   - Record/Hit model and the Store interface
//   - SQLiteStore: durable append-only storage backed by a single table
//   - Schema helpers to create the memories table
//   - Embedding encoding (little-endian float32 BLOB) and similarity math
//
// The store never computes embeddings; callers obtain vectors from an
// external producer and pass them in.
package vector
