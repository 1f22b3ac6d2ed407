// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package strata provides law-governed composition and transformation of
// layered effect computations in Go.
//
// A layered computation is built by stacking independent capability
// layers — optionality, error propagation, read-only environment,
// write-only log, mutable state, or a combination — on top of an
// arbitrary base computation type. Code written against one layering
// cannot normally be reused inside a differently-layered stack; strata
// supplies the two capability contracts that make such reuse possible,
// the combinators derived from them, and a catalogue of layer
// implementations satisfying both.
//
// # Design Philosophy
//
// strata provides:
//   - Minimal but complete contracts for transformations between
//     computation types and for pushing them through layers
//   - F-bounded polymorphism (type T[P T[P]]) so every capability method
//     returns the layer's concrete type
//   - A uniform Erased type-erasure boundary standing in for higher-kinded
//     types, with concrete types recovered at the unwrap boundary
//
// # Base Computation Types
//
// Go cannot abstract over type constructors, so a base computation type
// is supplied as a [Monad] dictionary over [Erased] values:
//
//   - [Monad]: Return (trivial injection) and Bind (sequencing)
//   - [Map]: derived value transformation
//   - [PureMonad]: the trivial base — a computation is its value
//   - [ListMonad]: the nondeterministic base — a slice of outcomes
//
// # Natural Transformations
//
// [Trans] is a structure-preserving mapping between two base computation
// types, uniform in the carried value. The monad-morphism laws it must
// satisfy are a caller obligation, checked only by property tests.
//
//   - [TransFunc]: adapt a function to Trans
//   - [IdentityTrans], [ComposeTrans]: the category of transformations
//   - [WrapList], [ReverseList]: lawful transformations shipped for use
//     with the built-in bases
//
// # Capability Contracts
//
// [LayerFunctor] pushes a transformation through one layer (Hoist);
// [LayerMonad] additionally merges a nested occurrence of the same layer
// kind into one (Embed). Derived combinators:
//
//   - [Squash]: collapse a layer wrapped around another occurrence of itself
//   - [ComposeForward], [ComposeBackward]: Kleisli-style composition of
//     layer-introducing functions, with lift as two-sided identity
//   - [MergeWith], [MergedBy]: convenience spellings of Embed
//
// # Layer Catalogue
//
// Ten layers, each with construct/unwrap, a lift, a Hoist, and a Monad
// dictionary so layers stack; six also admit a lawful Embed:
//
//   - [IdentityT]: pass-through (Embed: pass-through)
//   - [MaybeT]: optionality (Embed: short-circuit on absence)
//   - [ExceptT]: error, with [Either] (Embed: short-circuit, merge-level
//     failure first)
//   - [ReaderT]: read-only environment (Embed: transparent threading)
//   - [WriterT], [LazyWriterT]: write-log, eager and lazy-pairing
//     (Embed: monoidal log concatenation, carried log first)
//   - [StateT], [LazyStateT]: mutable state (Hoist only — no lawful merge
//     exists for a threaded state channel)
//   - [RWST], [LazyRWST]: combined environment+state+log (Hoist only)
//
// Accumulating layers combine logs through a [Monoid]; [SliceMonoid] and
// [StringMonoid] are provided.
//
// # Errors
//
// Every operation is total over well-typed, law-abiding inputs; no
// operation returns an error. Feeding a dictionary or layer a value of
// the wrong computation type panics at the type assertion marking the
// erasure boundary.
//
// # Example
//
//	base := strata.PureMonad{}
//	double := strata.TransFunc(func(m strata.Erased) strata.Erased {
//		return m.(int) * 2
//	})
//
//	layer := strata.NewReaderT(func(env strata.Erased) strata.Erased {
//		return base.Return(env.(int) + 1)
//	})
//
//	hoisted := layer.Hoist(double)
//	// hoisted.Unwrap()(5) == 12
package strata
