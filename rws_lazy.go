// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// LazyRWST is the lazy-pairing combined environment+state+log layer:
// like RWST, but the (value, next state, log) triple is produced by a
// thunk, deferring triple construction and log concatenation until a
// consumer forces it.
//
// LazyRWST implements LayerFunctor only, for the same reason as RWST.
//
// Payloads inside the produced computation use
// func() Triple[Erased, Erased, Erased].
type LazyRWST struct {
	run func(env, state Erased) Erased
}

// NewLazyRWST wraps a threading function back into the layer.
func NewLazyRWST(run func(env, state Erased) Erased) LazyRWST {
	return LazyRWST{run: run}
}

// Unwrap returns the threading function.
func (t LazyRWST) Unwrap() func(env, state Erased) Erased { return t.run }

// LiftLazyRWS introduces the lazy combined layer around a base
// computation: the environment is ignored, the state passes through
// unchanged and the log is empty.
func LiftLazyRWS(base Monad, logs Monoid, m Erased) LazyRWST {
	return LazyRWST{run: func(_, state Erased) Erased {
		return Map(base, m, func(a Erased) Erased {
			return func() Triple[Erased, Erased, Erased] {
				return Triple[Erased, Erased, Erased]{Fst: a, Snd: state, Trd: logs.Empty()}
			}
		})
	}}
}

// TellLazyRWS is the computation over base that appends w to the log and
// carries no interesting value.
func TellLazyRWS(base Monad, w Erased) LazyRWST {
	return LazyRWST{run: func(_, state Erased) Erased {
		return base.Return(func() Triple[Erased, Erased, Erased] {
			return Triple[Erased, Erased, Erased]{Fst: struct{}{}, Snd: state, Trd: w}
		})
	}}
}

// Hoist composes the transformation on the output side of the threading
// function; the thunk rides along unforced.
func (t LazyRWST) Hoist(tr Trans) LazyRWST {
	run := t.run
	return LazyRWST{run: func(env, state Erased) Erased { return tr.Apply(run(env, state)) }}
}

// LazyRWSMonad is the Monad dictionary for LazyRWST over Base with log
// monoid Logs. The first thunk must be forced to obtain the state for the
// next step; the combined triple of the whole Bind stays deferred.
type LazyRWSMonad struct {
	Base Monad
	Logs Monoid
}

// Return implements Monad.
func (m LazyRWSMonad) Return(a Erased) Erased {
	logs := m.Logs
	return LazyRWST{run: func(_, state Erased) Erased {
		return m.Base.Return(func() Triple[Erased, Erased, Erased] {
			return Triple[Erased, Erased, Erased]{Fst: a, Snd: state, Trd: logs.Empty()}
		})
	}}
}

// Bind implements Monad.
func (m LazyRWSMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(LazyRWST)
	logs := m.Logs
	return LazyRWST{run: func(env, state Erased) Erased {
		return m.Base.Bind(t.run(env, state), func(x Erased) Erased {
			p := x.(func() Triple[Erased, Erased, Erased])()
			return m.Base.Bind(f(p.Fst).(LazyRWST).run(env, p.Snd), func(y Erased) Erased {
				force := y.(func() Triple[Erased, Erased, Erased])
				return m.Base.Return(func() Triple[Erased, Erased, Erased] {
					q := force()
					return Triple[Erased, Erased, Erased]{
						Fst: q.Fst,
						Snd: q.Snd,
						Trd: logs.Combine(p.Trd, q.Trd),
					}
				})
			})
		})
	}}
}
