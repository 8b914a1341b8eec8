package vecutil

import (
	"context"
	"fmt"

	"github.com/viant/memvec/vector"
)

// EmbedFunc converts free-form text into an embedding.
//
// Implementations can call any embedding provider (OpenAI, local model,
// other cloud APIs, etc.) as long as they return a slice of float32 values.
// The core memvec packages only depend on the numeric vectors and their
// encoded BLOB representation.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// Remember embeds text with the provided EmbedFunc and inserts the
// resulting record into the store, returning the assigned id. Embedding
// failures are returned as-is; they are the producer's errors, not the
// store's.
func Remember(ctx context.Context, s vector.Store, embed EmbedFunc, text string, meta *string) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("vecutil: store is nil")
	}
	if embed == nil {
		return 0, fmt.Errorf("vecutil: EmbedFunc is nil")
	}
	vec, err := embed(ctx, text)
	if err != nil {
		return 0, err
	}
	return s.Insert(ctx, text, vec, meta)
}

// RecallText embeds the query text and runs a top-k similarity search.
// When k <= 0, vector.DefaultTopK is used.
func RecallText(ctx context.Context, s vector.Store, embed EmbedFunc, query string, k int) ([]vector.Hit, error) {
	if s == nil {
		return nil, fmt.Errorf("vecutil: store is nil")
	}
	if embed == nil {
		return nil, fmt.Errorf("vecutil: EmbedFunc is nil")
	}
	if k <= 0 {
		k = vector.DefaultTopK
	}
	vec, err := embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.Query(ctx, vec, k)
}
