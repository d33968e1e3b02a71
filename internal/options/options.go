// Package options holds the generic functional-option plumbing shared by the
// encoder configuration types. Packages alias Option with a concrete target
// (for example blob.TrackEncoderOption) so callers never see the generics.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an option. Use this for options whose validation can fail,
// such as checking a compression type against the registered codecs.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs each option against target in order and stops at the first
// error, leaving any options after it unapplied.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps a function that cannot fail, such as flipping the endianness
// flag on a config.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
