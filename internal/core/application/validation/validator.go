// Package validation holds the field-level rules applied before anything is
// persisted. Validators report every broken rule as a human-readable message
// so callers can hand the full list back to the client.
package validation

// EntityValidator checks a candidate and returns its rule violations.
// An empty result means the candidate is valid.
type EntityValidator[T any] interface {
	Validate(candidate T) []string
}

// Func adapts a plain function to EntityValidator.
type Func[T any] func(candidate T) []string

func (f Func[T]) Validate(candidate T) []string {
	return f(candidate)
}
