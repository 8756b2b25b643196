package optional

// Map applies f to the present value and wraps the result with OfNullable,
// so a nil result collapses into an empty Optional. f is not called on an
// empty Optional.
//
// The collapse hides absence that f produces internally. Stage functions that
// can yield nothing should return an Optional and go through FlatMap instead.
func Map[T, U any](o Optional[T], f func(T) *U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return OfNullable(f(o.value))
}

// FlatMap returns f(v) for a present v without wrapping it again.
// f is not called on an empty Optional.
func FlatMap[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return f(o.value)
}

// Compose chains two Optional-producing functions into one.
func Compose[A, B, C any](f func(A) Optional[B], g func(B) Optional[C]) func(A) Optional[C] {
	return func(a A) Optional[C] {
		return FlatMap(f(a), g)
	}
}

func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if !o.present {
		return None[T]()
	}
	return o.value
}

// Filter keeps the value only if pred holds for it.
func Filter[T any](o Optional[T], pred func(T) bool) Optional[T] {
	if !o.present || !pred(o.value) {
		return None[T]()
	}
	return o
}

// Equal reports whether both are empty or both hold equal values.
func Equal[T comparable](a, b Optional[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b Optional[T], eq func(T, T) bool) bool {
	if a.present != b.present {
		return false
	}
	if !a.present {
		return true
	}
	return eq(a.value, b.value)
}
