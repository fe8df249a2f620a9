package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResult signals that generation succeeded but yielded no usable
// text. Fatal for the cycle; no state is mutated.
var ErrEmptyResult = errors.New("generation returned no usable text")

// RateLimitError marks a transient rate-limit rejection from a backend.
// The generator retries these with backoff; everything else propagates.
type RateLimitError struct {
	Provider string
	Message  string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited: %s", e.Provider, e.Message)
}

// IsRateLimit reports whether err is (or wraps) a RateLimitError.
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}
