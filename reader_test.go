// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/strata"
)

func TestReaderAsk(t *testing.T) {
	base := strata.PureMonad{}
	m := strata.AskReader(base)

	assert.Equal(t, 5, m.Unwrap()(5))
}

func TestReaderLiftIgnoresEnv(t *testing.T) {
	m := strata.LiftReader(3)

	assert.Equal(t, 3, m.Unwrap()(5))
	assert.Equal(t, 3, m.Unwrap()(99))
}

func TestReaderBindSharesEnv(t *testing.T) {
	base := strata.PureMonad{}
	dict := strata.ReaderMonad{Base: base}

	// Both steps see the same environment.
	prog := dict.Bind(strata.AskReader(base), func(a strata.Erased) strata.Erased {
		return dict.Bind(strata.AskReader(base), func(b strata.Erased) strata.Erased {
			return dict.Return(a.(int) + b.(int))
		})
	}).(strata.ReaderT)

	assert.Equal(t, 10, prog.Unwrap()(5))
}

// Hoisting a transformation that doubles the produced value leaves the
// environment side untouched.
func TestReaderHoistDoubles(t *testing.T) {
	base := strata.PureMonad{}
	m := strata.NewReaderT(func(strata.Erased) strata.Erased {
		return base.Return(3)
	})
	double := strata.TransFunc(func(x strata.Erased) strata.Erased {
		return x.(int) * 2
	})

	out := m.Hoist(double)

	assert.Equal(t, 6, out.Unwrap()(5))
}

// Merging nested environment layers threads one environment through both
// levels.
func TestReaderEmbedThreadsSameEnv(t *testing.T) {
	base := strata.PureMonad{}
	m := strata.NewReaderT(func(env strata.Erased) strata.Erased {
		return base.Return(env.(int) + 1)
	})

	out := m.Embed(base, func(c strata.Erased) strata.ReaderT {
		return strata.NewReaderT(func(env strata.Erased) strata.Erased {
			return base.Return(c.(int) * env.(int))
		})
	})

	// env=4: inner produces 5, merge level multiplies by the same env.
	assert.Equal(t, 20, out.Unwrap()(4))
}

func TestReaderHoistToList(t *testing.T) {
	base := strata.PureMonad{}
	m := strata.AskReader(base)

	out := m.Hoist(strata.WrapList())

	xs := out.Unwrap()(7).([]strata.Erased)
	require.Len(t, xs, 1)
	assert.Equal(t, 7, xs[0])
}
