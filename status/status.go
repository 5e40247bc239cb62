package status

import "context"

// Map is a flat key-value health status. Values must be JSON-encodable.
type Map map[string]any

// Clone returns a shallow copy of the map. A nil map clones to an empty,
// non-nil map so callers can merge into the result.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge copies every key from other into m, overwriting existing keys.
// Later merges win key-wise over earlier ones.
func (m Map) Merge(other Map) {
	for k, v := range other {
		m[k] = v
	}
}

// Callback produces the local health status of the calling process.
//
// Contract:
//   - Concurrency: must be safe for concurrent use.
//   - Context: should honor cancellation/deadlines.
//   - Errors: a non-nil error marks the local check as failed; the returned
//     map is ignored in that case.
type Callback func(ctx context.Context) (Map, error)

// Static returns a Callback that always reports a clone of m.
func Static(m Map) Callback {
	return func(context.Context) (Map, error) {
		return m.Clone(), nil
	}
}
