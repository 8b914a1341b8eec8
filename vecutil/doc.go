// Package vecutil bridges free-form text and the vector store. It stays
// embedding-agnostic: callers supply an EmbedFunc backed by whatever
// provider they use, and vecutil handles the embed-then-store and
// embed-then-query plumbing.
package vecutil
