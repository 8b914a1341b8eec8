// Package boltstore provides a bbolt-backed implementation of vector.Store
// for callers that prefer a pure key-value file over SQL. Query semantics
// match the SQLite store exactly; the on-disk layout does not, so files are
// not interchangeable between the two backends.
package boltstore
