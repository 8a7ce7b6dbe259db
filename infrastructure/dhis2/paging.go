package dhis2

import "fmt"

// PageFunc fetches one page of results and reports the pager state the
// server returned for it.
type PageFunc[T any] func(page, pageSize int) ([]T, D2Pager, error)

// FetchAllPages walks a paginated collection from page 1 until the reported
// page count is reached, concatenating results in page order. Pages are
// requested strictly sequentially: each request depends on the previous
// page's pager, and sequential reads keep load on the server bounded.
func FetchAllPages[T any](pageSize int, fetch PageFunc[T]) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, pager, err := fetch(page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}
		all = append(all, items...)
		if pager.Page >= pager.PageCount {
			return all, nil
		}
	}
}

// ChunkFunc fetches the records for one chunk of ids.
type ChunkFunc[T any] func(ids []string) ([]T, error)

// FetchByIDsChunked partitions ids into chunks of at most chunkSize,
// preserving order, and issues one request per chunk. Chunks run
// sequentially, never concurrently: the same helper backs batched writes,
// and concurrent writes to one remote collection would make ordering
// ambiguous. Any chunk failure fails the whole operation; there is no
// partial-success aggregation.
func FetchByIDsChunked[T any](ids []string, chunkSize int, fetch ChunkFunc[T]) ([]T, error) {
	var all []T
	for i, chunk := range ChunkIDs(ids, chunkSize) {
		items, err := fetch(chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d (%d ids): %w", i+1, len(chunk), err)
		}
		all = append(all, items...)
	}
	return all, nil
}

// ForEachIDChunk runs fn once per chunk of ids, sequentially and in order.
// It backs the batched write paths, which share the chunking and
// fail-fast semantics of FetchByIDsChunked but return no records.
func ForEachIDChunk(ids []string, chunkSize int, fn func(ids []string) error) error {
	for i, chunk := range ChunkIDs(ids, chunkSize) {
		if err := fn(chunk); err != nil {
			return fmt.Errorf("chunk %d (%d ids): %w", i+1, len(chunk), err)
		}
	}
	return nil
}

// ChunkIDs splits ids into slices of at most size, preserving order.
func ChunkIDs(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
