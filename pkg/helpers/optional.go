package helpers

// Optional marks a value as explicitly present or absent. The zero value is absent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding val.
func Some[T any](val T) Optional[T] {
	return Optional[T]{value: val, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr treats nil as absent.
func FromPtr[T any](val *T) Optional[T] {
	if val == nil {
		return None[T]()
	}
	return Some(*val)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool { return o.set }

// ValueOr returns the held value or fallback when absent.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to the provided value.
func Ptr[T any](val T) *T {
	return &val
}
