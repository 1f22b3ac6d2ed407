// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// ReaderT is the environment layer: a function from a read-only input to
// a base computation. The input is never modified, only consulted.
type ReaderT struct {
	run func(env Erased) Erased
}

// NewReaderT wraps a reading function back into the layer.
func NewReaderT(run func(env Erased) Erased) ReaderT {
	return ReaderT{run: run}
}

// Unwrap returns the reading function.
func (t ReaderT) Unwrap() func(env Erased) Erased { return t.run }

// LiftReader introduces the environment layer around a base computation;
// the environment is ignored.
func LiftReader(m Erased) ReaderT {
	return ReaderT{run: func(Erased) Erased { return m }}
}

// AskReader is the computation over base whose value is the environment
// itself.
func AskReader(base Monad) ReaderT {
	return ReaderT{run: func(env Erased) Erased { return base.Return(env) }}
}

// Hoist composes the transformation on the output side of the reading
// function; the input shape is untouched.
func (t ReaderT) Hoist(tr Trans) ReaderT {
	run := t.run
	return ReaderT{run: func(env Erased) Erased { return tr.Apply(run(env)) }}
}

// Embed merges a nested environment layer by threading the same input
// through both levels: the merge is transparent composition of the two
// reading functions, with no combination step. The target dictionary is
// not needed.
func (t ReaderT) Embed(_ Monad, f func(Erased) ReaderT) ReaderT {
	run := t.run
	return ReaderT{run: func(env Erased) Erased { return f(run(env)).run(env) }}
}

// ReaderMonad is the Monad dictionary for ReaderT over Base.
type ReaderMonad struct {
	Base Monad
}

// Return implements Monad.
func (m ReaderMonad) Return(a Erased) Erased {
	return ReaderT{run: func(Erased) Erased { return m.Base.Return(a) }}
}

// Bind implements Monad. Both computations read the same environment.
func (m ReaderMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(ReaderT)
	return ReaderT{run: func(env Erased) Erased {
		return m.Base.Bind(t.run(env), func(a Erased) Erased {
			return f(a).(ReaderT).run(env)
		})
	}}
}
