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
	"github.com/wdamron/lam/ast"
	"github.com/wdamron/lam/types"
)

// Engine infers types for expressions within a fixed base environment.
//
// An Engine owns its substitution and constraint list, which live for the
// duration of inferring one top-level expression: run Infer once, then
// SolveConstraints, then apply Substitute to the inferred type. Calling Infer
// again without solving mixes constraint generations and is unsupported;
// create a fresh Engine per input instead.
//
// An Engine cannot be used concurrently; each concurrent inference should own
// its own Engine.
type Engine struct {
	sub         subst
	env         *env
	constraints []types.Constraint

	// initial space:
	_constraints [16]types.Constraint
}

// New creates an inference engine whose base scope contains the given
// bindings. The caller decides which built-in names (if any) are predeclared;
// initial may be nil.
func New(initial map[string]types.Type) *Engine {
	e := &Engine{env: newEnv(initial)}
	e.sub.init()
	e.constraints = e._constraints[:0]
	return e
}

// Fresh allocates a new unconstrained type variable.
func (e *Engine) Fresh() *types.Var { return e.sub.fresh() }

// Constraints returns the pending constraint list, for diagnostics and tests.
// The returned slice must not be modified.
func (e *Engine) Constraints() []types.Constraint { return e.constraints }

// Bindings returns a snapshot of the substitution table indexed by variable
// id, for diagnostics and tests. Unbound variables map to themselves.
func (e *Engine) Bindings() []types.Type {
	out := make([]types.Type, len(e.sub.entries))
	copy(out, e.sub.entries)
	return out
}

// Substitute applies the current bindings to t, producing its fully-resolved
// form. After SolveConstraints succeeds, the result contains variables only
// where the expression was genuinely polymorphic.
func (e *Engine) Substitute(t types.Type) types.Type { return e.sub.substitute(t) }

// Infer produces the not-yet-solved type of expr, allocating fresh variables
// and recording equality constraints along the way. The only failure is a
// reference to a name absent from every active scope.
func (e *Engine) Infer(expr ast.Expr) (types.Type, error) {
	switch expr := expr.(type) {
	case *ast.Var:
		// a variable's type is whatever the environment records for it
		t, ok := e.env.lookup(expr.Name)
		if !ok {
			return nil, UnboundVariableError{Name: expr.Name}
		}
		return t, nil

	case *ast.App:
		funType, err := e.Infer(expr.Func)
		if err != nil {
			return nil, err
		}
		argType, err := e.Infer(expr.Arg)
		if err != nil {
			return nil, err
		}
		// if the function turns out to map argType to out, the application
		// has type out
		out := e.sub.fresh()
		e.constrain(funType, types.NewFunc(argType, out))
		return out, nil

	case *ast.Abs:
		param := e.sub.fresh()
		bodyType, err := e.inferBody(expr, param)
		if err != nil {
			return nil, err
		}
		return types.NewFunc(param, bodyType), nil
	}
	panic("unknown expression: " + expr.ExprName())
}

// inferBody infers the abstraction body within a new scope binding the
// parameter. The scope is popped even when inference of the body fails.
func (e *Engine) inferBody(abs *ast.Abs, param types.Type) (types.Type, error) {
	e.env.pushScope()
	defer e.env.popScope()
	e.env.extend(abs.Param, param)
	return e.Infer(abs.Body)
}

func (e *Engine) constrain(a, b types.Type) {
	e.constraints = append(e.constraints, types.Constraint{Left: a, Right: b})
}
