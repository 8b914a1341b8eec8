package vecutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/memvec/vector"
	"github.com/viant/memvec/vecutil"
)

// fakeEmbed maps known words onto fixed unit vectors so tests are
// deterministic without a real embedding provider.
func fakeEmbed(vectors map[string][]float32) vecutil.EmbedFunc {
	return func(_ context.Context, text string) ([]float32, error) {
		v, ok := vectors[text]
		if !ok {
			return nil, errors.New("no embedding for " + text)
		}
		return v, nil
	}
}

func TestRememberAndRecallText(t *testing.T) {
	ctx := context.Background()
	s, err := vector.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	embed := fakeEmbed(map[string][]float32{
		"open the mail app": {1, 0},
		"play some music":   {0, 1},
		"check my inbox":    {0.9, 0.1},
	})

	id, err := vecutil.Remember(ctx, s, embed, "open the mail app", nil)
	require.NoError(t, err)
	assert.Positive(t, id)
	_, err = vecutil.Remember(ctx, s, embed, "play some music", nil)
	require.NoError(t, err)

	hits, err := vecutil.RecallText(ctx, s, embed, "check my inbox", 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "open the mail app", hits[0].Text)
}

func TestRecallText_DefaultTopK(t *testing.T) {
	ctx := context.Background()
	s, err := vector.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	embed := func(_ context.Context, _ string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	for i := 0; i < vector.DefaultTopK+3; i++ {
		_, err := vecutil.Remember(ctx, s, embed, "note", nil)
		require.NoError(t, err)
	}

	// k <= 0 falls back to DefaultTopK instead of returning nothing.
	hits, err := vecutil.RecallText(ctx, s, embed, "note", 0)
	require.NoError(t, err)
	assert.Len(t, hits, vector.DefaultTopK)
}

func TestEmbedFailurePropagates(t *testing.T) {
	ctx := context.Background()
	s, err := vector.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	embedErr := errors.New("provider unavailable")
	failing := func(_ context.Context, _ string) ([]float32, error) { return nil, embedErr }

	_, err = vecutil.Remember(ctx, s, failing, "anything", nil)
	assert.ErrorIs(t, err, embedErr)

	_, err = vecutil.RecallText(ctx, s, failing, "anything", 3)
	assert.ErrorIs(t, err, embedErr)

	// Nothing was inserted by the failed Remember.
	hits, err := s.Query(ctx, []float32{1}, 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestNilArguments(t *testing.T) {
	ctx := context.Background()
	s, err := vector.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = vecutil.Remember(ctx, nil, nil, "x", nil)
	assert.Error(t, err)
	_, err = vecutil.Remember(ctx, s, nil, "x", nil)
	assert.Error(t, err)
	_, err = vecutil.RecallText(ctx, s, nil, "x", 1)
	assert.Error(t, err)
}
