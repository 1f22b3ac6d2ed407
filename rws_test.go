// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strata_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/strata"
)

func TestRWSProgram(t *testing.T) {
	base := strata.PureMonad{}
	sm := strata.SliceMonoid{}
	dict := strata.RWSMonad{Base: base, Logs: sm}

	prog := dict.Bind(strata.AskRWS(base, sm), func(e strata.Erased) strata.Erased {
		return dict.Bind(strata.GetRWS(base, sm), func(s strata.Erased) strata.Erased {
			return dict.Bind(strata.TellRWS(base, []strata.Erased{e.(int) + s.(int)}), func(strata.Erased) strata.Erased {
				return dict.Bind(strata.PutRWS(base, sm, s.(int)+1), func(strata.Erased) strata.Erased {
					return dict.Return(e.(int) * s.(int))
				})
			})
		})
	}).(strata.RWST)

	tr := prog.Unwrap()(3, 4).(strata.Triple[strata.Erased, strata.Erased, strata.Erased])
	if tr.Fst != 12 {
		t.Fatalf("got value %v, want 12", tr.Fst)
	}
	if tr.Snd != 5 {
		t.Fatalf("got state %v, want 5", tr.Snd)
	}
	if !reflect.DeepEqual(tr.Trd, []strata.Erased{7}) {
		t.Fatalf("got log %v, want [7]", tr.Trd)
	}
}

func TestRWSLift(t *testing.T) {
	base := strata.PureMonad{}
	sm := strata.SliceMonoid{}
	m := strata.LiftRWS(base, sm, "v")

	tr := m.Unwrap()(1, 2).(strata.Triple[strata.Erased, strata.Erased, strata.Erased])
	if tr.Fst != "v" {
		t.Fatalf("got value %v, want v", tr.Fst)
	}
	if tr.Snd != 2 {
		t.Fatalf("got state %v, want 2", tr.Snd)
	}
	if len(tr.Trd.([]strata.Erased)) != 0 {
		t.Fatalf("got log %v, want empty", tr.Trd)
	}
}

func TestRWSHoistToList(t *testing.T) {
	base := strata.PureMonad{}
	sm := strata.SliceMonoid{}
	m := strata.AskRWS(base, sm)

	out := m.Hoist(strata.WrapList())

	xs := out.Unwrap()(8, 0).([]strata.Erased)
	if len(xs) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(xs))
	}
	tr := xs[0].(strata.Triple[strata.Erased, strata.Erased, strata.Erased])
	if tr.Fst != 8 {
		t.Fatalf("got value %v, want 8", tr.Fst)
	}
}

func TestLazyRWSTellAndBind(t *testing.T) {
	base := strata.PureMonad{}
	sm := strata.SliceMonoid{}
	dict := strata.LazyRWSMonad{Base: base, Logs: sm}

	prog := dict.Bind(strata.TellLazyRWS(base, []strata.Erased{"a"}), func(strata.Erased) strata.Erased {
		return dict.Bind(strata.TellLazyRWS(base, []strata.Erased{"b"}), func(strata.Erased) strata.Erased {
			return dict.Return(1)
		})
	}).(strata.LazyRWST)

	tr := forceTriple(prog.Unwrap()(0, 0))
	if tr.Fst != 1 {
		t.Fatalf("got value %v, want 1", tr.Fst)
	}
	if !reflect.DeepEqual(tr.Trd, []strata.Erased{"a", "b"}) {
		t.Fatalf("got log %v, want [a b]", tr.Trd)
	}
}

// Sequencing lazy combined-layer computations defers every thunk after
// the first until the result is forced.
func TestLazyRWSDefersForcing(t *testing.T) {
	base := strata.PureMonad{}
	sm := strata.SliceMonoid{}
	dict := strata.LazyRWSMonad{Base: base, Logs: sm}

	forced := false
	second := strata.NewLazyRWST(func(_, state strata.Erased) strata.Erased {
		return base.Return(func() strata.Triple[strata.Erased, strata.Erased, strata.Erased] {
			forced = true
			return strata.Triple[strata.Erased, strata.Erased, strata.Erased]{Fst: 2, Snd: state, Trd: sm.Empty()}
		})
	})

	out := dict.Bind(strata.TellLazyRWS(base, []strata.Erased{1}), func(strata.Erased) strata.Erased {
		return second
	}).(strata.LazyRWST)

	res := out.Unwrap()(0, 0)
	if forced {
		t.Fatal("second thunk forced before the result was")
	}
	tr := forceTriple(res)
	if !forced {
		t.Fatal("forcing the result did not force the second thunk")
	}
	if tr.Fst != 2 {
		t.Fatalf("got value %v, want 2", tr.Fst)
	}
	if !reflect.DeepEqual(tr.Trd, []strata.Erased{1}) {
		t.Fatalf("got log %v, want [1]", tr.Trd)
	}
}

func TestLazyRWSLift(t *testing.T) {
	base := strata.PureMonad{}
	sm := strata.SliceMonoid{}
	m := strata.LiftLazyRWS(base, sm, "v")

	tr := forceTriple(m.Unwrap()(1, 2))
	if tr.Fst != "v" || tr.Snd != 2 {
		t.Fatalf("got %v, want (v, 2, [])", tr)
	}
}
