// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// Monoid is an associative combine operation with a neutral element over
// an accumulator type. Accumulating layers (write-log and combined) merge
// their logs through it; associativity and the neutrality of Empty are a
// caller obligation for custom monoids.
type Monoid interface {
	Empty() Erased
	Combine(a, b Erased) Erased
}

// SliceMonoid accumulates log entries as a []Erased, combining by
// concatenation. Empty is the empty, non-nil slice.
type SliceMonoid struct{}

// Empty implements Monoid.
func (SliceMonoid) Empty() Erased { return []Erased{} }

// Combine implements Monoid. The result is freshly allocated; neither
// argument is aliased.
func (SliceMonoid) Combine(a, b Erased) Erased {
	as, bs := a.([]Erased), b.([]Erased)
	out := make([]Erased, 0, len(as)+len(bs))
	out = append(out, as...)
	return append(out, bs...)
}

// StringMonoid accumulates a log as a string, combining by concatenation.
type StringMonoid struct{}

// Empty implements Monoid.
func (StringMonoid) Empty() Erased { return "" }

// Combine implements Monoid.
func (StringMonoid) Combine(a, b Erased) Erased { return a.(string) + b.(string) }
