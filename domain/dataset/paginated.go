package dataset

// Paginated is one page of results together with the remote pager state.
type Paginated[T any] struct {
	Page      int
	PageSize  int
	PageCount int
	Total     int
	Data      []T
}
