// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// MaybeT is the optionality layer: a base computation of an Option value.
// An absent outcome at any level short-circuits further sequencing.
//
// Payloads inside the wrapped computation use the Erased instantiation
// Option[Erased]; concrete carried types are recovered by the caller at
// the unwrap boundary.
type MaybeT struct {
	value Erased // base computation of Option[Erased]
}

// NewMaybeT wraps an unwrapped form back into the layer.
func NewMaybeT(value Erased) MaybeT {
	return MaybeT{value: value}
}

// Unwrap returns the base computation of Option[Erased].
func (t MaybeT) Unwrap() Erased { return t.value }

// LiftMaybe introduces the optionality layer around a base computation:
// every outcome becomes present.
func LiftMaybe(base Monad, m Erased) MaybeT {
	return MaybeT{value: Map(base, m, func(a Erased) Erased {
		return Some[Erased](a)
	})}
}

// NoneMaybe is the absent computation over base.
func NoneMaybe(base Monad) MaybeT {
	return MaybeT{value: base.Return(None[Erased]())}
}

// Hoist applies the transformation to the wrapped computation; the Option
// structure rides along as the carried value.
func (t MaybeT) Hoist(tr Trans) MaybeT {
	return MaybeT{value: tr.Apply(t.value)}
}

// Embed merges a nested optionality layer by short-circuiting on absence:
// an absent outcome introduced by f wins, otherwise the carried Option
// decides.
func (t MaybeT) Embed(target Monad, f func(Erased) MaybeT) MaybeT {
	u := f(t.value)
	return MaybeT{value: target.Bind(u.value, func(x Erased) Erased {
		outer := x.(Option[Erased])
		inner, ok := outer.Get()
		if !ok {
			return target.Return(None[Erased]())
		}
		return target.Return(inner.(Option[Erased]))
	})}
}

// MaybeMonad is the Monad dictionary for MaybeT over Base.
// Bind short-circuits: once a computation is absent, f never runs.
type MaybeMonad struct {
	Base Monad
}

// Return implements Monad.
func (m MaybeMonad) Return(a Erased) Erased {
	return MaybeT{value: m.Base.Return(Some[Erased](a))}
}

// Bind implements Monad.
func (m MaybeMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(MaybeT)
	return MaybeT{value: m.Base.Bind(t.value, func(x Erased) Erased {
		opt := x.(Option[Erased])
		a, ok := opt.Get()
		if !ok {
			return m.Base.Return(None[Erased]())
		}
		return f(a).(MaybeT).value
	})}
}
