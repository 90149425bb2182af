package chain

// Option holds a storage value that may be absent at a block.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None is an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}
