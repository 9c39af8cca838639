package pq

// Item encapsulates a payload and its priority.
type Item[T any] struct {
	Payload  T
	Priority int
}

// compareItems orders items by priority alone, payloads don't participate.
func compareItems[T any](a, b Item[T]) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	}

	return 0
}
