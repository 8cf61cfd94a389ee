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

// SolveConstraints unifies every pending constraint in generation order, then
// clears the list. This is a single left-to-right pass rather than a worklist:
// a constraint is never re-examined after being solved, which is sufficient
// because variable resolution always chases the live binding chain rather than
// a frozen snapshot.
//
// On failure the substitution may be inconsistent and the Engine should be
// discarded.
func (e *Engine) SolveConstraints() error {
	pending := e.constraints
	e.constraints = e.constraints[:0]
	for _, c := range pending {
		if err := e.unify(c.Left, c.Right); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) unify(a, b types.Type) error {
	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar != nil && bvar != nil && avar.Id == bvar.Id:
		return nil

	case avar == nil && bvar != nil:
		return e.unify(b, a)

	case avar != nil:
		mapped := e.sub.binding(avar.Id)
		if tv, ok := mapped.(*types.Var); ok && tv.Id == avar.Id {
			// unbound: bind unless that would create a cyclic type
			if e.sub.occurs(avar.Id, b) {
				return InfiniteTypeError{Id: avar.Id}
			}
			e.sub.bind(avar.Id, b)
			return nil
		}
		// already bound; the existing binding must remain consistent with
		// the new requirement
		return e.unify(mapped, b)
	}

	// constructor vs constructor
	ac, bc := a.(*types.Con), b.(*types.Con)
	if ac.Name != bc.Name || len(ac.Args) != len(bc.Args) {
		return TypeMismatchError{Expected: ac, Actual: bc}
	}
	for i := range ac.Args {
		if err := e.unify(ac.Args[i], bc.Args[i]); err != nil {
			return err
		}
	}
	return nil
}
