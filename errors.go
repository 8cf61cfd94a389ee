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
	"strconv"

	"github.com/wdamron/lam/types"
)

// All inference failures are terminal for the current inference: no retry, no
// partial result. An Engine which produced an error should be discarded rather
// than reused.

// UnboundVariableError is returned by Infer when an expression references a
// name absent from every active scope.
type UnboundVariableError struct {
	Name string
}

func (e UnboundVariableError) Error() string {
	return "unbound variable: " + e.Name
}

// TypeMismatchError is returned by SolveConstraints when two constructors
// disagree on name or argument count.
type TypeMismatchError struct {
	Expected types.Type
	Actual   types.Type
}

func (e TypeMismatchError) Error() string {
	return "cannot unify " + types.TypeString(e.Expected) + " with " + types.TypeString(e.Actual)
}

// InfiniteTypeError is returned by SolveConstraints when binding a variable
// would create a self-referential type.
type InfiniteTypeError struct {
	Id int
}

func (e InfiniteTypeError) Error() string {
	return "infinite type: '_" + strconv.Itoa(e.Id) + " occurs within its own binding"
}
