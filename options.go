package mlut

import (
	"fmt"
)

// Option is something that can be configured on a Build call
type Option func(*builder) error

// Resolution sets how many samples the gradient has (default 4096).
func Resolution(i int) Option {
	return func(b *builder) error {
		if i <= 0 {
			return fmt.Errorf("%w, given %d", ErrInvalidResolution, i)
		}
		b.resolution = i
		return nil
	}
}

// Routines sets how many goroutines fill the gradient. Each one is handed
// a contiguous band of samples, so the result does not depend on this value.
func Routines(i int) Option {
	return func(b *builder) error {
		if i <= 0 {
			i = 1
		}
		b.routines = i
		return nil
	}
}
