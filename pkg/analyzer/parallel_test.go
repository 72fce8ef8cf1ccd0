package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/panbanda/mood/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFiles_PreservesOrderAndErrors(t *testing.T) {
	files := make([]string, 50)
	for i := range files {
		files[i] = fmt.Sprintf("C%02d.java", i)
	}

	errOdd := errors.New("odd")
	tracker := NewTracker(nil)
	tracker.Add(len(files))
	ctx := WithTracker(context.Background(), tracker)

	results := MapFiles(ctx, files, 4, func(psr *parser.Parser, path string) (string, error) {
		assert.NotNil(t, psr)
		var n int
		_, _ = fmt.Sscanf(path, "C%02d.java", &n)
		if n%2 == 1 {
			return "", errOdd
		}
		return strings.TrimSuffix(path, ".java"), nil
	})

	require.Len(t, results, len(files))
	for i, r := range results {
		assert.Equal(t, files[i], r.Path)
		if i%2 == 1 {
			assert.ErrorIs(t, r.Err, errOdd)
		} else {
			assert.NoError(t, r.Err)
			assert.Equal(t, fmt.Sprintf("C%02d", i), r.Value)
		}
	}
	assert.Equal(t, len(files), tracker.Current())
	assert.Equal(t, len(files)/2, tracker.Failed())
}

func TestMapFiles_Empty(t *testing.T) {
	results := MapFiles(context.Background(), nil, 0, func(*parser.Parser, string) (int, error) {
		return 0, nil
	})
	assert.Nil(t, results)
}

func TestMapFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	results := MapFiles(ctx, []string{"A.java", "B.java"}, 1, func(*parser.Parser, string) (int, error) {
		called = true
		return 1, nil
	})

	require.Len(t, results, 2)
	assert.False(t, called)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestDefaultWorkers(t *testing.T) {
	assert.Positive(t, DefaultWorkers())
}
