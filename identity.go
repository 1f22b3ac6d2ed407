// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata

// IdentityT is the pass-through layer: it wraps a base computation and
// contributes no capability. It exists so layered code can be reused in
// positions that expect one more layer than is actually needed.
type IdentityT struct {
	value Erased
}

// NewIdentityT wraps an unwrapped form back into the layer.
func NewIdentityT(value Erased) IdentityT {
	return IdentityT{value: value}
}

// Unwrap returns the underlying base computation.
func (t IdentityT) Unwrap() Erased { return t.value }

// LiftIdentity introduces the pass-through layer around a base computation.
func LiftIdentity(m Erased) IdentityT {
	return IdentityT{value: m}
}

// Hoist applies the transformation directly to the wrapped computation.
func (t IdentityT) Hoist(tr Trans) IdentityT {
	return IdentityT{value: tr.Apply(t.value)}
}

// Embed merges by passing through: there is no secondary structure to
// collapse, so the result is exactly f applied to the unwrapped form.
func (t IdentityT) Embed(_ Monad, f func(Erased) IdentityT) IdentityT {
	return f(t.value)
}

// IdentityMonad is the Monad dictionary for IdentityT over Base.
type IdentityMonad struct {
	Base Monad
}

// Return implements Monad.
func (m IdentityMonad) Return(a Erased) Erased {
	return IdentityT{value: m.Base.Return(a)}
}

// Bind implements Monad.
func (m IdentityMonad) Bind(ma Erased, f func(Erased) Erased) Erased {
	t := ma.(IdentityT)
	return IdentityT{value: m.Base.Bind(t.value, func(a Erased) Erased {
		return f(a).(IdentityT).value
	})}
}
