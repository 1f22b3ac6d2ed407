// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}

// RWST is the combined environment+state+log layer: a function from a
// read-only input and a state value to a base computation of a
// (value, next state, log) triple. It fuses the capabilities of ReaderT,
// StateT and WriterT into one layer so a stack needs a single level for
// all three.
//
// RWST implements LayerFunctor only: its state component rules out a
// lawful merge, exactly as for StateT.
//
// Payloads inside the produced computation use
// Triple[Erased, Erased, Erased], value first, state second, log third.
type RWST struct {
	run func(env, state Erased) Erased
}

// NewRWST wraps a threading function back into the layer.
func NewRWST(run func(env, state Erased) Erased) RWST {
	return RWST{run: run}
}

// Unwrap returns the threading function.
func (t RWST) Unwrap() func(env, state Erased) Erased { return t.run }

// LiftRWS introduces the combined layer around a base computation: the
// environment is ignored, the state passes through unchanged and the log
// is empty.
func LiftRWS(base Monad, logs Monoid, m Erased) RWST {
	return RWST{run: func(_, state Erased) Erased {
		return Map(base, m, func(a Erased) Erased {
			return Triple[Erased, Erased, Erased]{Fst: a, Snd: state, Trd: logs.Empty()}
		})
	}}
}

// AskRWS is the computation over base whose value is the environment.
func AskRWS(base Monad, logs Monoid) RWST {
	return RWST{run: func(env, state Erased) Erased {
		return base.Return(Triple[Erased, Erased, Erased]{Fst: env, Snd: state, Trd: logs.Empty()})
	}}
}

// GetRWS is the computation over base whose value is the current state.
func GetRWS(base Monad, logs Monoid) RWST {
	return RWST{run: func(_, state Erased) Erased {
		return base.Return(Triple[Erased, Erased, Erased]{Fst: state, Snd: state, Trd: logs.Empty()})
	}}
}

// PutRWS is the computation over base that replaces the state and carries
// no interesting value.
func PutRWS(base Monad, logs Monoid, state Erased) RWST {
	return RWST{run: func(_, _ Erased) Erased {
		return base.Return(Triple[Erased, Erased, Erased]{Fst: struct{}{}, Snd: state, Trd: logs.Empty()})
	}}
}

// TellRWS is the computation over base that appends w to the log and
// carries no interesting value.
func TellRWS(base Monad, w Erased) RWST {
	return RWST{run: func(_, state Erased) Erased {
		return base.Return(Triple[Erased, Erased, Erased]{Fst: struct{}{}, Snd: state, Trd: w})
	}}
}

// Hoist composes the transformation on the output side of the threading
// function; the input/output shape is untouched.
func (t RWST) Hoist(tr Trans) RWST {
	run := t.run
	return RWST{run: func(env, state Erased) Erased { return tr.Apply(run(env, state)) }}
}

// RWSMonad is the Monad dictionary for RWST over Base with log monoid
// Logs. Bind shares the environment, threads the state and concatenates
// logs in sequencing order.
type RWSMonad struct {
	Base Monad
	Logs Monoid
}

// Return implements Monad.
func (m RWSMonad) Return(a Erased) Erased {
	logs := m.Logs
	return RWST{run: func(_, state Erased) Erased {
		return m.Base.Return(Triple[Erased, Erased, Erased]{Fst: a, Snd: state, Trd: logs.Empty()})
	}}
}

// Bind implements Monad.
func (m RWSMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(RWST)
	return RWST{run: func(env, state Erased) Erased {
		return m.Base.Bind(t.run(env, state), func(x Erased) Erased {
			p := x.(Triple[Erased, Erased, Erased])
			return m.Base.Bind(f(p.Fst).(RWST).run(env, p.Snd), func(y Erased) Erased {
				q := y.(Triple[Erased, Erased, Erased])
				return m.Base.Return(Triple[Erased, Erased, Erased]{
					Fst: q.Fst,
					Snd: q.Snd,
					Trd: m.Logs.Combine(p.Trd, q.Trd),
				})
			})
		})
	}}
}
