// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Capability contracts for effect layers, and the combinators derived
// from them.
//
// The package uses F-bounded polymorphism (type T[P T[P]]) so that every
// capability method returns the layer's concrete type: hoisting an
// optionality layer yields an optionality layer, with no downcast at the
// call site.

// LayerFunctor is the capability to push a natural transformation through
// one effect layer: given a transformation between two base computation
// types, produce the structurally identical layer over the target type.
//
// Hoist must itself act functorially over transformations:
//
//	t.Hoist(ComposeTrans(f, g)) == t.Hoist(g).Hoist(f)
//	t.Hoist(IdentityTrans())    == t
//
// Hoist does not verify that tr satisfies the monad-morphism laws.
type LayerFunctor[T LayerFunctor[T]] interface {
	Hoist(tr Trans) T
}

// LayerMonad adds the capability to merge a nested occurrence of the same
// layer kind into a single occurrence.
//
// Embed applies f to the unwrapped form of the layer and collapses the
// layer structure of the result to one level. f maps a base computation of
// the source type to a freshly layered computation over the target type;
// like a transformation, it must be uniform in the carried value. target
// is the dictionary of the base computation type under f's results; layer
// kinds whose merge needs no sequencing in the target ignore it.
//
// Together with the layer's lift, Embed must satisfy:
//
//	t.Embed(n, lift)        == t
//	lift(m).Embed(n, f)     == f(m)
//	t.Embed(n, f).Embed(p, g) == t.Embed(p, func(m) { return f(m).Embed(p, g) })
//
// Not every layer kind admits a lawful Embed; such kinds implement only
// LayerFunctor and are rejected here at compile time.
type LayerMonad[T LayerMonad[T]] interface {
	LayerFunctor[T]
	Embed(target Monad, f func(Erased) T) T
}

// Squash collapses a layer wrapped directly around another occurrence of
// the same layer kind into a single occurrence. target is the base
// dictionary of the inner occurrence.
//
// Squashing a trivially nested layer returns the inner layer unchanged:
// Squash(n, lift(inner)) == inner.
func Squash[T LayerMonad[T]](target Monad, t T) T {
	return t.Embed(target, func(m Erased) T { return m.(T) })
}

// ComposeForward composes two layer-introducing functions left to right:
// the result introduces f's layer, then merges g through it. target is the
// base dictionary under g's results.
//
// ComposeForward is associative and the layer's lift is its two-sided
// identity, so layer-introducing functions form a category under it.
func ComposeForward[T LayerMonad[T]](target Monad, f, g func(Erased) T) func(Erased) T {
	return func(m Erased) T { return f(m).Embed(target, g) }
}

// ComposeBackward is ComposeForward with the arguments flipped, for
// right-to-left reading.
func ComposeBackward[T LayerMonad[T]](target Monad, g, f func(Erased) T) func(Erased) T {
	return ComposeForward(target, f, g)
}

// MergeWith merges f through t; a convenience spelling of Embed.
func MergeWith[T LayerMonad[T]](target Monad, f func(Erased) T, t T) T {
	return t.Embed(target, f)
}

// MergedBy is MergeWith with the layered value first.
func MergedBy[T LayerMonad[T]](t T, target Monad, f func(Erased) T) T {
	return t.Embed(target, f)
}
