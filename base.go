// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Concrete base computation types. Layers are generic over any Monad
// dictionary; these two are the ones shipped with the package, one trivial
// and one with genuinely different sequencing so transformations between
// distinct bases can be exercised.

// PureMonad is the trivial base computation type: a computation is its
// value and sequencing is function application.
type PureMonad struct{}

// Return implements Monad.
func (PureMonad) Return(a Erased) Erased { return a }

// Bind implements Monad.
func (PureMonad) Bind(m Erased, f func(Erased) Erased) Erased { return f(m) }

// ListMonad is the nondeterministic base computation type: a computation
// is the slice of its possible outcomes, in order.
type ListMonad struct{}

// Return implements Monad.
func (ListMonad) Return(a Erased) Erased { return []Erased{a} }

// Bind implements Monad. Outcomes of f are concatenated in input order.
func (ListMonad) Bind(m Erased, f func(Erased) Erased) Erased {
	xs := m.([]Erased)
	out := make([]Erased, 0, len(xs))
	for _, a := range xs {
		out = append(out, f(a).([]Erased)...)
	}
	return out
}

// WrapList is the natural transformation from PureMonad to ListMonad:
// a value becomes the computation with that single outcome.
func WrapList() Trans {
	return TransFunc(func(m Erased) Erased { return []Erased{m} })
}

// ReverseList is the natural transformation from ListMonad to itself that
// reverses outcome order. Reversal distributes over ListMonad sequencing,
// so the monad-morphism laws hold.
func ReverseList() Trans {
	return TransFunc(func(m Erased) Erased {
		xs := m.([]Erased)
		out := make([]Erased, len(xs))
		for i, x := range xs {
			out[len(xs)-1-i] = x
		}
		return out
	})
}
