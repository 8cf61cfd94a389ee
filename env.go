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
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/lam/types"
)

var emptyScope = immutable.NewSortedMap(nil)

// env is a stack of lexical scopes, each an immutable mapping from variable
// names to types. Lookup scans from the innermost scope outward, so an inner
// binding shadows any same-named outer binding for the lifetime of its scope.
//
// The base scope is seeded at construction and is never popped.
type env struct {
	scopes []*immutable.SortedMap

	// initial space:
	_scopes [8]*immutable.SortedMap
}

func newEnv(initial map[string]types.Type) *env {
	base := emptyScope
	for name, t := range initial {
		base = base.Set(name, t)
	}
	e := &env{}
	e.scopes = append(e._scopes[:0], base)
	return e
}

func (e *env) pushScope() {
	e.scopes = append(e.scopes, emptyScope)
}

// popScope removes the innermost scope. Popping the base scope is a
// programming error.
func (e *env) popScope() {
	if len(e.scopes) <= 1 {
		panic("popped the base scope")
	}
	e.scopes[len(e.scopes)-1] = nil
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Bind name within the innermost scope.
func (e *env) extend(name string, t types.Type) {
	top := len(e.scopes) - 1
	e.scopes[top] = e.scopes[top].Set(name, t)
}

// Innermost-first lookup; the first match wins.
func (e *env) lookup(name string) (types.Type, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i].Get(name); ok {
			return v.(types.Type), true
		}
	}
	return nil, false
}
