// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Option represents a value that is either present (Some) or absent (None).
type Option[A any] struct {
	ok    bool
	value A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.ok {
		return o.value, true
	}
	var zero A
	return zero, false
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}
