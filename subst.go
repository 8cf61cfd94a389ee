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
	"github.com/wdamron/lam/types"
)

// subst is an array-backed substitution mapping type-variable ids to type
// terms. Slot i initially holds Var(i) (self-mapped = unbound) and is
// overwritten once the variable is bound during solving. Resolution chases
// binding chains lazily rather than compressing them eagerly.
//
// The fresh-variable counter is the slice length, so every variable id is
// strictly less than the store size and independent inferences never share
// ids.
type subst struct {
	entries []types.Type

	// initial space:
	_entries [16]types.Type
}

func (s *subst) init() { s.entries = s._entries[:0] }

// Append a new self-mapped slot and return its variable.
func (s *subst) fresh() *types.Var {
	tv := &types.Var{Id: len(s.entries)}
	s.entries = append(s.entries, tv)
	return tv
}

// Current slot value for id; still Var(id) while unbound.
func (s *subst) binding(id int) types.Type { return s.entries[id] }

// Overwrite slot id with t. The caller must have run the occurs check: t must
// not be Var(id) itself, nor contain Var(id) transitively.
func (s *subst) bind(id int, t types.Type) { s.entries[id] = t }

// occurs reports whether Var(id) is reachable within t after fully chasing
// live bindings.
func (s *subst) occurs(id int, t types.Type) bool {
	switch t := t.(type) {
	case *types.Var:
		if t.Id == id {
			return true
		}
		mapped := s.entries[t.Id]
		if tv, ok := mapped.(*types.Var); ok && tv.Id == t.Id {
			return false
		}
		return s.occurs(id, mapped)

	case *types.Con:
		for _, arg := range t.Args {
			if s.occurs(id, arg) {
				return true
			}
		}
	}
	return false
}

// substitute fully resolves t against the current bindings: variable chains
// are chased until reaching an unbound variable or a constructor, then
// constructor arguments are resolved recursively. Terminates because the
// occurs check keeps bindings acyclic, and is idempotent once constraints are
// solved.
func (s *subst) substitute(t types.Type) types.Type {
	for {
		tv, ok := t.(*types.Var)
		if !ok {
			break
		}
		mapped := s.entries[tv.Id]
		if m, ok := mapped.(*types.Var); ok && m.Id == tv.Id {
			return mapped
		}
		t = mapped
	}
	con := t.(*types.Con)
	if len(con.Args) == 0 {
		return con
	}
	args := make([]types.Type, len(con.Args))
	for i, arg := range con.Args {
		args[i] = s.substitute(arg)
	}
	return &types.Con{Name: con.Name, Args: args}
}
