// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// StateT is the eager mutable-state layer: a function from a state value
// to a base computation of a (value, next state) pair. The state moves
// through the chain with exactly one owner at every point; nothing is
// shared or aliased.
//
// StateT implements LayerFunctor only. A lawful merge does not exist for
// state threading: with a merge function that carries state effects of
// its own, the lift identities cannot hold, because the merge level and
// the carried level would have to consume the same state value twice.
//
// Payloads inside the produced computation use Pair[Erased, Erased],
// value first, state second.
type StateT struct {
	run func(state Erased) Erased
}

// NewStateT wraps a threading function back into the layer.
func NewStateT(run func(state Erased) Erased) StateT {
	return StateT{run: run}
}

// Unwrap returns the threading function.
func (t StateT) Unwrap() func(state Erased) Erased { return t.run }

// LiftState introduces the mutable-state layer around a base computation;
// the state passes through unchanged.
func LiftState(base Monad, m Erased) StateT {
	return StateT{run: func(state Erased) Erased {
		return Map(base, m, func(a Erased) Erased {
			return Pair[Erased, Erased]{Fst: a, Snd: state}
		})
	}}
}

// GetState is the computation over base whose value is the current state.
func GetState(base Monad) StateT {
	return StateT{run: func(state Erased) Erased {
		return base.Return(Pair[Erased, Erased]{Fst: state, Snd: state})
	}}
}

// PutState is the computation over base that replaces the state and
// carries no interesting value.
func PutState(base Monad, state Erased) StateT {
	return StateT{run: func(Erased) Erased {
		return base.Return(Pair[Erased, Erased]{Fst: struct{}{}, Snd: state})
	}}
}

// ModifyState is the computation over base that applies f to the state
// and returns the new state.
func ModifyState(base Monad, f func(Erased) Erased) StateT {
	return StateT{run: func(state Erased) Erased {
		next := f(state)
		return base.Return(Pair[Erased, Erased]{Fst: next, Snd: next})
	}}
}

// Hoist composes the transformation on the output side of the threading
// function; the state input/output shape is untouched.
func (t StateT) Hoist(tr Trans) StateT {
	run := t.run
	return StateT{run: func(state Erased) Erased { return tr.Apply(run(state)) }}
}

// StateMonad is the Monad dictionary for StateT over Base.
// Bind threads the state from each step into the next.
type StateMonad struct {
	Base Monad
}

// Return implements Monad.
func (m StateMonad) Return(a Erased) Erased {
	return StateT{run: func(state Erased) Erased {
		return m.Base.Return(Pair[Erased, Erased]{Fst: a, Snd: state})
	}}
}

// Bind implements Monad.
func (m StateMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(StateT)
	return StateT{run: func(state Erased) Erased {
		return m.Base.Bind(t.run(state), func(x Erased) Erased {
			p := x.(Pair[Erased, Erased])
			return f(p.Fst).(StateT).run(p.Snd)
		})
	}}
}
