// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Trans is a natural transformation between two base computation types:
// a mapping from a source computation to a target computation that is
// uniform in the carried value — it may reshape the computation but must
// neither inspect nor depend on the value the computation carries.
//
// A valid transformation preserves sequencing structure. For the source
// dictionary m and target dictionary n:
//
//	tr.Apply(m.Bind(c, f)) == n.Bind(tr.Apply(c), func(a) { return tr.Apply(f(a)) })
//	tr.Apply(m.Return(a)) == n.Return(a)
//
// These are the monad-morphism laws. They are a caller obligation and are
// never checked at runtime; supplying a transformation that violates them
// yields results that are merely inconsistent with the documented
// equivalences.
type Trans interface {
	Apply(m Erased) Erased
}

// TransFunc adapts a plain function to Trans.
type TransFunc func(Erased) Erased

// Apply implements Trans.
func (f TransFunc) Apply(m Erased) Erased { return f(m) }

// IdentityTrans returns the identity transformation.
// Hoisting with it leaves every layer unchanged.
func IdentityTrans() Trans {
	return TransFunc(func(m Erased) Erased { return m })
}

// ComposeTrans composes two transformations, applying g first.
// Hoisting with the composition equals hoisting with g and then with f.
func ComposeTrans(f, g Trans) Trans {
	return TransFunc(func(m Erased) Erased { return f.Apply(g.Apply(m)) })
}
