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

package types

// Type is the base interface for all type terms.
type Type interface {
	// Name of the kind of type term.
	TypeName() string
}

var (
	_ Type = (*Con)(nil)
	_ Type = (*Var)(nil)
)

// FuncName is the constructor name reserved for function types.
const FuncName = "Fun"

// Type constructor applied to zero or more ordered arguments.
//
// A nullary constructor is a concrete type such as `int`; a non-nullary
// constructor is a generic type such as `List[int]` or a function type
// `Fun[int, int]`.
type Con struct {
	Name string
	Args []Type
}

// "Con"
func (t *Con) TypeName() string { return "Con" }

// Unconstrained type variable, identified by a dense non-negative id.
type Var struct {
	Id int
}

// "Var"
func (t *Var) TypeName() string { return "Var" }

// NewFunc returns the function type from arg to ret, i.e. `Fun[arg, ret]`.
func NewFunc(arg, ret Type) *Con {
	return &Con{Name: FuncName, Args: []Type{arg, ret}}
}

// Equal reports whether a and b are structurally equal: constructors must
// agree on name, arity and argument types pairwise, and variables must agree
// on id.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id

	case *Con:
		b, ok := b.(*Con)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
