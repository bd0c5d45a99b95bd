package remote

// envelope is the wrapper some marketplace responses use to carry a
// collection under a nested "$values" field. Unwrap tolerates the envelope
// or its payload being absent, in which case the collection is empty.
type envelope[T any] struct {
	Values []T `json:"$values"`
}

func (e *envelope[T]) unwrap() []T {
	if e == nil || e.Values == nil {
		return []T{}
	}

	return e.Values
}
