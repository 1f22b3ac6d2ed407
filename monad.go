// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Erased is a type alias for any, marking type-erased computation values.
// Go cannot abstract over type constructors, so a base computation of some
// carried type is passed around as an Erased value and its structured
// payloads are recovered via type assertions at layer boundaries.
type Erased = any

// Monad is the dictionary for a base computation type.
//
// A base computation type is whatever the caller chooses, as long as it
// supports trivial value injection (Return) and sequential composition
// (Bind) satisfying the usual identities:
//
//	Bind(Return(a), f) == f(a)
//	Bind(m, Return)    == m
//	Bind(Bind(m, f), g) == Bind(m, func(a) { return Bind(f(a), g) })
//
// The identities are a caller obligation; nothing verifies them at runtime.
// Passing a value of the wrong computation type to a dictionary fails by
// type assertion panic.
type Monad interface {
	// Return injects a value as a trivial computation.
	Return(a Erased) Erased
	// Bind sequences m with the computation produced by f from m's value.
	Bind(m Erased, f func(Erased) Erased) Erased
}

// Map applies a pure function to the value of a computation.
// Derived from Bind and Return; every layer's lift is built on it.
func Map(base Monad, m Erased, f func(Erased) Erased) Erased {
	return base.Bind(m, func(a Erased) Erased {
		return base.Return(f(a))
	})
}
