// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// WriterT is the eager write-log layer: a base computation of a
// (value, log) pair, with the pair built strictly as sequencing proceeds.
// Logs combine through the layer's Monoid; the monoid travels with the
// layer value because merging nested occurrences needs it.
//
// Payloads inside the wrapped computation use the Erased instantiation
// Pair[Erased, Erased], value first, log second.
type WriterT struct {
	logs  Monoid
	value Erased // base computation of Pair[Erased, Erased]
}

// NewWriterT wraps an unwrapped form back into the layer.
func NewWriterT(logs Monoid, value Erased) WriterT {
	return WriterT{logs: logs, value: value}
}

// Unwrap returns the base computation of Pair[Erased, Erased].
func (t WriterT) Unwrap() Erased { return t.value }

// Logs returns the layer's log monoid.
func (t WriterT) Logs() Monoid { return t.logs }

// LiftWriter introduces the write-log layer around a base computation
// with an empty log.
func LiftWriter(base Monad, logs Monoid, m Erased) WriterT {
	return WriterT{logs: logs, value: Map(base, m, func(a Erased) Erased {
		return Pair[Erased, Erased]{Fst: a, Snd: logs.Empty()}
	})}
}

// TellWriter is the computation over base that appends w to the log and
// carries no interesting value.
func TellWriter(base Monad, logs Monoid, w Erased) WriterT {
	return WriterT{logs: logs, value: base.Return(Pair[Erased, Erased]{Fst: struct{}{}, Snd: w})}
}

// Hoist applies the transformation to the wrapped computation; the pair
// structure rides along as the carried value.
func (t WriterT) Hoist(tr Trans) WriterT {
	return WriterT{logs: t.logs, value: tr.Apply(t.value)}
}

// Embed merges a nested write-log layer by concatenating the carried log
// with the log written at the merge level, carried log first. The carried
// value is kept.
func (t WriterT) Embed(target Monad, f func(Erased) WriterT) WriterT {
	u := f(t.value)
	return WriterT{logs: u.logs, value: target.Bind(u.value, func(x Erased) Erased {
		own := x.(Pair[Erased, Erased])
		carried := own.Fst.(Pair[Erased, Erased])
		return target.Return(Pair[Erased, Erased]{
			Fst: carried.Fst,
			Snd: u.logs.Combine(carried.Snd, own.Snd),
		})
	})}
}

// WriterMonad is the Monad dictionary for WriterT over Base with log
// monoid Logs. Bind concatenates logs in sequencing order.
type WriterMonad struct {
	Base Monad
	Logs Monoid
}

// Return implements Monad.
func (m WriterMonad) Return(a Erased) Erased {
	return WriterT{logs: m.Logs, value: m.Base.Return(Pair[Erased, Erased]{Fst: a, Snd: m.Logs.Empty()})}
}

// Bind implements Monad.
func (m WriterMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(WriterT)
	return WriterT{logs: m.Logs, value: m.Base.Bind(t.value, func(x Erased) Erased {
		p := x.(Pair[Erased, Erased])
		return m.Base.Bind(f(p.Fst).(WriterT).value, func(y Erased) Erased {
			q := y.(Pair[Erased, Erased])
			return m.Base.Return(Pair[Erased, Erased]{
				Fst: q.Fst,
				Snd: m.Logs.Combine(p.Snd, q.Snd),
			})
		})
	})}
}
