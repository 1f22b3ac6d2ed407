// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// LazyWriterT is the lazy-pairing write-log layer: a base computation of
// a thunk producing the (value, log) pair. Pair construction and log
// concatenation are deferred until the thunk is forced, so a consumer
// that never forces it never pays for the log.
//
// Payloads inside the wrapped computation use func() Pair[Erased, Erased].
type LazyWriterT struct {
	logs  Monoid
	value Erased // base computation of func() Pair[Erased, Erased]
}

// NewLazyWriterT wraps an unwrapped form back into the layer.
func NewLazyWriterT(logs Monoid, value Erased) LazyWriterT {
	return LazyWriterT{logs: logs, value: value}
}

// Unwrap returns the base computation of func() Pair[Erased, Erased].
func (t LazyWriterT) Unwrap() Erased { return t.value }

// Logs returns the layer's log monoid.
func (t LazyWriterT) Logs() Monoid { return t.logs }

// LiftLazyWriter introduces the lazy write-log layer around a base
// computation with an empty log.
func LiftLazyWriter(base Monad, logs Monoid, m Erased) LazyWriterT {
	return LazyWriterT{logs: logs, value: Map(base, m, func(a Erased) Erased {
		return func() Pair[Erased, Erased] {
			return Pair[Erased, Erased]{Fst: a, Snd: logs.Empty()}
		}
	})}
}

// TellLazyWriter is the computation over base that appends w to the log
// and carries no interesting value.
func TellLazyWriter(base Monad, logs Monoid, w Erased) LazyWriterT {
	return LazyWriterT{logs: logs, value: base.Return(func() Pair[Erased, Erased] {
		return Pair[Erased, Erased]{Fst: struct{}{}, Snd: w}
	})}
}

// Hoist applies the transformation to the wrapped computation; the thunk
// rides along as the carried value, unforced.
func (t LazyWriterT) Hoist(tr Trans) LazyWriterT {
	return LazyWriterT{logs: t.logs, value: tr.Apply(t.value)}
}

// Embed merges a nested lazy write-log layer like WriterT.Embed, carried
// log first, except that forcing and concatenation happen only when the
// resulting thunk is itself forced.
func (t LazyWriterT) Embed(target Monad, f func(Erased) LazyWriterT) LazyWriterT {
	u := f(t.value)
	logs := u.logs
	return LazyWriterT{logs: logs, value: target.Bind(u.value, func(x Erased) Erased {
		force := x.(func() Pair[Erased, Erased])
		return target.Return(func() Pair[Erased, Erased] {
			own := force()
			carried := own.Fst.(func() Pair[Erased, Erased])()
			return Pair[Erased, Erased]{
				Fst: carried.Fst,
				Snd: logs.Combine(carried.Snd, own.Snd),
			}
		})
	})}
}

// LazyWriterMonad is the Monad dictionary for LazyWriterT over Base with
// log monoid Logs. The first thunk must be forced to continue sequencing;
// the combined pair of the whole Bind stays deferred.
type LazyWriterMonad struct {
	Base Monad
	Logs Monoid
}

// Return implements Monad.
func (m LazyWriterMonad) Return(a Erased) Erased {
	logs := m.Logs
	return LazyWriterT{logs: logs, value: m.Base.Return(func() Pair[Erased, Erased] {
		return Pair[Erased, Erased]{Fst: a, Snd: logs.Empty()}
	})}
}

// Bind implements Monad.
func (m LazyWriterMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(LazyWriterT)
	logs := m.Logs
	return LazyWriterT{logs: logs, value: m.Base.Bind(t.value, func(x Erased) Erased {
		p := x.(func() Pair[Erased, Erased])()
		return m.Base.Bind(f(p.Fst).(LazyWriterT).value, func(y Erased) Erased {
			force := y.(func() Pair[Erased, Erased])
			return m.Base.Return(func() Pair[Erased, Erased] {
				q := force()
				return Pair[Erased, Erased]{
					Fst: q.Fst,
					Snd: logs.Combine(p.Snd, q.Snd),
				}
			})
		})
	})}
}
