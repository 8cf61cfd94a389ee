// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package lam

import (
	"testing"

	"github.com/wdamron/lam/types"
)

func TestFreshVarsAreDense(t *testing.T) {
	var s subst
	s.init()

	for i := 0; i < 20; i++ {
		tv := s.fresh()
		if tv.Id != i {
			t.Fatalf("id: %d", tv.Id)
		}
		// self-mapped until bound
		if !types.Equal(s.binding(tv.Id), tv) {
			t.Fatalf("binding %d: %s", tv.Id, types.TypeString(s.binding(tv.Id)))
		}
	}
}

func TestSubstituteChasesChains(t *testing.T) {
	var s subst
	s.init()
	a, b, c := s.fresh(), s.fresh(), s.fresh()
	intType := &types.Con{Name: "int"}

	s.bind(a.Id, b)
	s.bind(b.Id, c)
	s.bind(c.Id, intType)

	if got := s.substitute(a); !types.Equal(got, intType) {
		t.Fatalf("type: %s", types.TypeString(got))
	}
}

func TestSubstituteStopsAtUnbound(t *testing.T) {
	var s subst
	s.init()
	a, b := s.fresh(), s.fresh()

	s.bind(a.Id, b)

	if got := s.substitute(a); !types.Equal(got, b) {
		t.Fatalf("type: %s", types.TypeString(got))
	}
}

func TestSubstituteResolvesConArgs(t *testing.T) {
	var s subst
	s.init()
	a, b := s.fresh(), s.fresh()
	intType := &types.Con{Name: "int"}

	s.bind(a.Id, intType)
	ty := types.NewFunc(a, &types.Con{Name: "List", Args: []types.Type{b}})

	got := s.substitute(ty)
	if typeString := types.TypeString(got); typeString != "int -> List['_1]" {
		t.Fatalf("type: %s", typeString)
	}
	// idempotent: resolving again changes nothing
	if !types.Equal(s.substitute(got), got) {
		t.Fatalf("expected substitution to be idempotent")
	}
}

func TestOccursChasesBindings(t *testing.T) {
	var s subst
	s.init()
	a, b := s.fresh(), s.fresh()

	s.bind(b.Id, &types.Con{Name: "List", Args: []types.Type{a}})

	if !s.occurs(a.Id, b) {
		t.Fatalf("expected %s to occur within %s", types.TypeString(a), types.TypeString(b))
	}
	if s.occurs(a.Id, &types.Con{Name: "int"}) {
		t.Fatalf("expected no occurrence in a ground type")
	}
}
