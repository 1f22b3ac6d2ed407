// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// LazyStateT is the lazy-pairing mutable-state layer: like StateT, but
// the (value, next state) pair is produced by a thunk, deferring pair
// construction until a consumer forces it.
//
// LazyStateT implements LayerFunctor only, for the same reason as StateT.
//
// Payloads inside the produced computation use func() Pair[Erased, Erased].
type LazyStateT struct {
	run func(state Erased) Erased
}

// NewLazyStateT wraps a threading function back into the layer.
func NewLazyStateT(run func(state Erased) Erased) LazyStateT {
	return LazyStateT{run: run}
}

// Unwrap returns the threading function.
func (t LazyStateT) Unwrap() func(state Erased) Erased { return t.run }

// LiftLazyState introduces the lazy mutable-state layer around a base
// computation; the state passes through unchanged.
func LiftLazyState(base Monad, m Erased) LazyStateT {
	return LazyStateT{run: func(state Erased) Erased {
		return Map(base, m, func(a Erased) Erased {
			return func() Pair[Erased, Erased] {
				return Pair[Erased, Erased]{Fst: a, Snd: state}
			}
		})
	}}
}

// GetLazyState is the computation over base whose value is the current
// state.
func GetLazyState(base Monad) LazyStateT {
	return LazyStateT{run: func(state Erased) Erased {
		return base.Return(func() Pair[Erased, Erased] {
			return Pair[Erased, Erased]{Fst: state, Snd: state}
		})
	}}
}

// PutLazyState is the computation over base that replaces the state and
// carries no interesting value.
func PutLazyState(base Monad, state Erased) LazyStateT {
	return LazyStateT{run: func(Erased) Erased {
		return base.Return(func() Pair[Erased, Erased] {
			return Pair[Erased, Erased]{Fst: struct{}{}, Snd: state}
		})
	}}
}

// Hoist composes the transformation on the output side of the threading
// function; the thunk rides along unforced.
func (t LazyStateT) Hoist(tr Trans) LazyStateT {
	run := t.run
	return LazyStateT{run: func(state Erased) Erased { return tr.Apply(run(state)) }}
}

// LazyStateMonad is the Monad dictionary for LazyStateT over Base.
// The first thunk must be forced to obtain the state for the next step;
// each step's own pair stays deferred.
type LazyStateMonad struct {
	Base Monad
}

// Return implements Monad.
func (m LazyStateMonad) Return(a Erased) Erased {
	return LazyStateT{run: func(state Erased) Erased {
		return m.Base.Return(func() Pair[Erased, Erased] {
			return Pair[Erased, Erased]{Fst: a, Snd: state}
		})
	}}
}

// Bind implements Monad.
func (m LazyStateMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(LazyStateT)
	return LazyStateT{run: func(state Erased) Erased {
		return m.Base.Bind(t.run(state), func(x Erased) Erased {
			p := x.(func() Pair[Erased, Erased])()
			return f(p.Fst).(LazyStateT).run(p.Snd)
		})
	}}
}
