package optional

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("value must not be nil")
	ErrEmptyValueAccess = errors.New("no value present")
)

// Optional holds either a present value of T or nothing.
// The zero value is an empty Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a plain value. It is always present.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps the value behind v and fails when v is nil.
func Of[T any](v *T) (Optional[T], error) {
	if v == nil {
		return None[T](), fmt.Errorf("optional.Of: %w", ErrInvalidArgument)
	}
	return Some(*v), nil
}

// OfNullable wraps the value behind v, or returns an empty Optional when v is nil.
func OfNullable[T any](v *T) Optional[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the wrapped value, or ErrEmptyValueAccess when there is none.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrEmptyValueAccess
	}
	return o.value, nil
}

func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrElseGet calls supplier only when the Optional is empty.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	return supplier()
}

func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// Ptr converts back to the nullable form.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
