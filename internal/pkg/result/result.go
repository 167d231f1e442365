// Package result provides Result, the value every use case hands back to the
// transport layer. A Result is either successful and carries data, or failed
// and carries one or more human-readable messages. Business failures travel
// in-band through Result instead of as Go errors.
package result

import "encoding/json"

// DefaultErrorMessage replaces an empty message list so a failure always explains itself.
const DefaultErrorMessage = "An unexpected error occurred"

// Result is an immutable success-or-failure outcome.
//
// Example:
//
//	res := result.Success(response)
//	if !res.IsSuccessful() {
//	    log.Println(res.ErrorMessage())
//	}
//
//	failed := result.Failure[projection.PackageResponse]("package not found")
type Result[T any] struct {
	isSuccessful bool
	data         T
	errors       []string
}

// Success wraps data into a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{
		isSuccessful: true,
		data:         data,
	}
}

// Failure builds a failed Result from the given messages.
func Failure[T any](messages ...string) Result[T] {
	return Failures[T](messages)
}

// Failures builds a failed Result from a message slice. The slice is copied.
func Failures[T any](messages []string) Result[T] {
	if len(messages) == 0 {
		messages = []string{DefaultErrorMessage}
	}

	copied := make([]string, len(messages))
	copy(copied, messages)

	return Result[T]{
		isSuccessful: false,
		errors:       copied,
	}
}

// FromError turns an infrastructure fault into a failed Result carrying err.Error().
func FromError[T any](err error) Result[T] {
	if err == nil {
		return Failure[T]()
	}
	return Failure[T](err.Error())
}

// IsSuccessful reports whether the operation succeeded.
func (r Result[T]) IsSuccessful() bool {
	return r.isSuccessful
}

// Data returns the payload. It is the zero value of T on failure.
func (r Result[T]) Data() T {
	return r.data
}

// Errors returns a copy of the failure messages.
func (r Result[T]) Errors() []string {
	if len(r.errors) == 0 {
		return nil
	}

	copied := make([]string, len(r.errors))
	copy(copied, r.errors)

	return copied
}

// ErrorMessage returns the first failure message, or "" on success.
func (r Result[T]) ErrorMessage() string {
	if len(r.errors) == 0 {
		return ""
	}
	return r.errors[0]
}

type resultJSON[T any] struct {
	IsSuccessful bool     `json:"isSuccessful"`
	Data         *T       `json:"data"`
	Errors       []string `json:"errors"`
	ErrorMessage *string  `json:"errorMessage"`
}

// MarshalJSON renders {"isSuccessful","data","errors","errorMessage"}.
// Data is null on failure and errorMessage is null on success.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := resultJSON[T]{
		IsSuccessful: r.isSuccessful,
		Errors:       r.Errors(),
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}

	if r.isSuccessful {
		data := r.data
		out.Data = &data
	} else {
		msg := r.ErrorMessage()
		out.ErrorMessage = &msg
	}

	return json.Marshal(out)
}
