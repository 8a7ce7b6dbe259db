package dhis2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAllPages_MultiplePages(t *testing.T) {
	pages := map[int][]string{
		1: {"a", "b"},
		2: {"c", "d"},
		3: {"e"},
	}
	var calls []int

	result, err := FetchAllPages(2, func(page, pageSize int) ([]string, D2Pager, error) {
		calls = append(calls, page)
		assert.Equal(t, 2, pageSize)
		return pages[page], D2Pager{Page: page, PageCount: 3}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, result)
	assert.Equal(t, []int{1, 2, 3}, calls)
}

func TestFetchAllPages_SinglePage(t *testing.T) {
	calls := 0

	result, err := FetchAllPages(100, func(page, pageSize int) ([]string, D2Pager, error) {
		calls++
		return []string{"only"}, D2Pager{Page: 1, PageCount: 1}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, result)
	assert.Equal(t, 1, calls)
}

func TestFetchAllPages_ErrorStops(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	_, err := FetchAllPages(10, func(page, pageSize int) ([]string, D2Pager, error) {
		calls++
		if page == 2 {
			return nil, D2Pager{}, boom
		}
		return []string{"x"}, D2Pager{Page: page, PageCount: 5}, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestFetchByIDsChunked(t *testing.T) {
	ids := make([]string, 120)
	for i := range ids {
		ids[i] = string(rune('a'+i%26)) + "-id"
	}

	var chunkSizes []int
	result, err := FetchByIDsChunked(ids, 50, func(chunk []string) ([]string, error) {
		chunkSizes = append(chunkSizes, len(chunk))
		return chunk, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{50, 50, 20}, chunkSizes)
	assert.Equal(t, ids, result)
}

func TestFetchByIDsChunked_FailureNamesChunk(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	_, err := FetchByIDsChunked([]string{"a", "b", "c"}, 1, func(chunk []string) ([]string, error) {
		calls++
		if calls == 2 {
			return nil, boom
		}
		return chunk, nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chunk 2")
	// Sequential execution stops at the failing chunk.
	assert.Equal(t, 2, calls)
}

func TestChunkIDs(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		size     int
		expected [][]string
	}{
		{
			name:     "even split",
			ids:      []string{"a", "b", "c", "d"},
			size:     2,
			expected: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:     "remainder chunk",
			ids:      []string{"a", "b", "c"},
			size:     2,
			expected: [][]string{{"a", "b"}, {"c"}},
		},
		{
			name:     "empty input",
			ids:      nil,
			size:     2,
			expected: nil,
		},
		{
			name:     "non-positive size",
			ids:      []string{"a"},
			size:     0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChunkIDs(tt.ids, tt.size))
		})
	}
}
