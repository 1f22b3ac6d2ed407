// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Either represents a value that is either Left (error) or Right (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// ExceptT is the error layer: a base computation of an Either value.
// A Left outcome at any level short-circuits further sequencing.
//
// Payloads inside the wrapped computation use the Erased instantiation
// Either[Erased, Erased].
type ExceptT struct {
	value Erased // base computation of Either[Erased, Erased]
}

// NewExceptT wraps an unwrapped form back into the layer.
func NewExceptT(value Erased) ExceptT {
	return ExceptT{value: value}
}

// Unwrap returns the base computation of Either[Erased, Erased].
func (t ExceptT) Unwrap() Erased { return t.value }

// LiftExcept introduces the error layer around a base computation:
// every outcome becomes a Right.
func LiftExcept(base Monad, m Erased) ExceptT {
	return ExceptT{value: Map(base, m, func(a Erased) Erased {
		return Right[Erased, Erased](a)
	})}
}

// ThrowExcept is the computation over base that fails with err.
func ThrowExcept(base Monad, err Erased) ExceptT {
	return ExceptT{value: base.Return(Left[Erased, Erased](err))}
}

// Hoist applies the transformation to the wrapped computation; the Either
// structure rides along as the carried value.
func (t ExceptT) Hoist(tr Trans) ExceptT {
	return ExceptT{value: tr.Apply(t.value)}
}

// Embed merges a nested error layer by short-circuiting on failure.
// The merge is left-biased: a failure at the merge level wins, and the
// carried Either decides only if the merge level succeeded. An error
// already carried by t propagates through any merge function that
// sequences it before failing itself — the carried error short-circuits
// first.
func (t ExceptT) Embed(target Monad, f func(Erased) ExceptT) ExceptT {
	u := f(t.value)
	return ExceptT{value: target.Bind(u.value, func(x Erased) Erased {
		outer := x.(Either[Erased, Erased])
		if e, ok := outer.GetLeft(); ok {
			return target.Return(Left[Erased, Erased](e))
		}
		r, _ := outer.GetRight()
		return target.Return(r.(Either[Erased, Erased]))
	})}
}

// ExceptMonad is the Monad dictionary for ExceptT over Base.
// Bind short-circuits: once a computation has failed, f never runs.
type ExceptMonad struct {
	Base Monad
}

// Return implements Monad.
func (m ExceptMonad) Return(a Erased) Erased {
	return ExceptT{value: m.Base.Return(Right[Erased, Erased](a))}
}

// Bind implements Monad.
func (m ExceptMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(ExceptT)
	return ExceptT{value: m.Base.Bind(t.value, func(x Erased) Erased {
		e := x.(Either[Erased, Erased])
		a, ok := e.GetRight()
		if !ok {
			return m.Base.Return(e)
		}
		return f(a).(ExceptT).value
	})}
}
