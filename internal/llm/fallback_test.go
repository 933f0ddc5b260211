package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSuccess_ReturnsFirstSuccess(t *testing.T) {
	var tried []string
	got, winner, err := FirstSuccess(context.Background(), []string{"a", "b", "c"}, func(_ context.Context, c string) (int, error) {
		tried = append(tried, c)
		if c == "b" {
			return 2, nil
		}
		return 0, errors.New("nope")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, "b", winner)
	assert.Equal(t, []string{"a", "b"}, tried)
}

func TestFirstSuccess_AllFail(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := FirstSuccess(context.Background(), []string{"a", "b"}, func(context.Context, string) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, ErrAllModelsFailed)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a: boom")
	assert.Contains(t, err.Error(), "b: boom")
}

func TestFirstSuccess_NoCandidates(t *testing.T) {
	calls := 0
	_, _, err := FirstSuccess(context.Background(), nil, func(context.Context, string) (string, error) {
		calls++
		return "", nil
	})
	assert.ErrorIs(t, err, ErrAllModelsFailed)
	assert.Zero(t, calls)
}

func TestFirstSuccess_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var tried []string
	_, _, err := FirstSuccess(ctx, []string{"a", "b", "c"}, func(_ context.Context, c string) (string, error) {
		tried = append(tried, c)
		cancel()
		return "", errors.New("nope")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrAllModelsFailed)
	assert.Equal(t, []string{"a"}, tried)
}
