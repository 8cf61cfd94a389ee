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

	"github.com/wdamron/lam/ast"
	"github.com/wdamron/lam/types"
)

func TestInferIdentityApplication(t *testing.T) {
	intType := &types.Con{Name: "int"}
	engine := New(map[string]types.Type{"one": intType})

	expr := &ast.App{
		Func: &ast.Abs{Param: "x", Body: &ast.Var{Name: "x"}},
		Arg:  &ast.Var{Name: "one"},
	}

	exprString := ast.ExprString(expr)
	if exprString != "(fun x => x) one" {
		t.Fatalf("expr: %s", exprString)
	}
	t.Logf("expr: %s", exprString)

	unsolved, err := engine.Infer(expr)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(unsolved); typeString != "'_1" {
		t.Fatalf("unsolved type: %s", typeString)
	}

	constraints := engine.Constraints()
	if len(constraints) != 1 {
		t.Fatalf("constraints: %v", constraints)
	}
	if s := constraints[0].String(); s != "'_0 -> '_0 = int -> '_1" {
		t.Fatalf("constraint: %s", s)
	}

	if err := engine.SolveConstraints(); err != nil {
		t.Fatal(err)
	}
	if len(engine.Constraints()) != 0 {
		t.Fatalf("expected an empty constraint list after solving")
	}

	resolved := engine.Substitute(unsolved)
	if typeString := types.TypeString(resolved); typeString != "int" {
		t.Fatalf("type: %s", typeString)
	}
	if !types.Equal(resolved, intType) {
		t.Fatalf("type: %s", types.TypeString(resolved))
	}
	t.Logf("type: %s", types.TypeString(resolved))
}

func TestInferCompose(t *testing.T) {
	engine := New(nil)

	expr := &ast.Abs{Param: "f", Body: &ast.Abs{Param: "g", Body: &ast.Abs{
		Param: "x",
		Body: &ast.App{
			Func: &ast.Var{Name: "g"},
			Arg:  &ast.App{Func: &ast.Var{Name: "f"}, Arg: &ast.Var{Name: "x"}},
		},
	}}}

	exprString := ast.ExprString(expr)
	if exprString != "fun f => fun g => fun x => g (f x)" {
		t.Fatalf("expr: %s", exprString)
	}
	t.Logf("expr: %s", exprString)

	unsolved, err := engine.Infer(expr)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(unsolved); typeString != "'_0 -> '_1 -> '_2 -> '_4" {
		t.Fatalf("unsolved type: %s", typeString)
	}

	constraints := engine.Constraints()
	if len(constraints) != 2 {
		t.Fatalf("constraints: %v", constraints)
	}
	if s := constraints[0].String(); s != "'_0 = '_2 -> '_3" {
		t.Fatalf("constraint: %s", s)
	}
	if s := constraints[1].String(); s != "'_1 = '_3 -> '_4" {
		t.Fatalf("constraint: %s", s)
	}

	if err := engine.SolveConstraints(); err != nil {
		t.Fatal(err)
	}

	resolved := engine.Substitute(unsolved)
	typeString := types.TypeString(resolved)
	if typeString != "('_2 -> '_3) -> ('_3 -> '_4) -> '_2 -> '_4" {
		t.Fatalf("type: %s", typeString)
	}
	t.Logf("type: %s", typeString)
}

func TestInferGroundResult(t *testing.T) {
	intType := &types.Con{Name: "int"}
	engine := New(map[string]types.Type{
		"one":  intType,
		"succ": types.NewFunc(intType, intType),
	})

	expr := &ast.App{
		Func: &ast.Var{Name: "succ"},
		Arg:  &ast.App{Func: &ast.Var{Name: "succ"}, Arg: &ast.Var{Name: "one"}},
	}

	unsolved, err := engine.Infer(expr)
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.SolveConstraints(); err != nil {
		t.Fatal(err)
	}

	// every leaf type is ground, so the resolved type must be fully ground
	resolved := engine.Substitute(unsolved)
	if typeString := types.TypeString(resolved); typeString != "int" {
		t.Fatalf("type: %s", typeString)
	}

	// substitution is idempotent once constraints are solved
	if !types.Equal(engine.Substitute(resolved), resolved) {
		t.Fatalf("expected substitution to be idempotent after solving")
	}
}

func TestShadowing(t *testing.T) {
	engine := New(nil)

	// the inner x must resolve to the inner parameter, never the outer one
	expr := &ast.Abs{Param: "x", Body: &ast.Abs{Param: "x", Body: &ast.Var{Name: "x"}}}

	unsolved, err := engine.Infer(expr)
	if err != nil {
		t.Fatal(err)
	}
	if typeString := types.TypeString(unsolved); typeString != "'_0 -> '_1 -> '_1" {
		t.Fatalf("type: %s", typeString)
	}
	if len(engine.Constraints()) != 0 {
		t.Fatalf("constraints: %v", engine.Constraints())
	}
}

func TestShadowingRestoresOuterBinding(t *testing.T) {
	engine := New(nil)

	// after leaving the inner abstraction, x must refer to the outer
	// parameter again
	expr := &ast.Abs{Param: "x", Body: &ast.App{
		Func: &ast.Abs{Param: "x", Body: &ast.Var{Name: "x"}},
		Arg:  &ast.Var{Name: "x"},
	}}

	unsolved, err := engine.Infer(expr)
	if err != nil {
		t.Fatal(err)
	}

	constraints := engine.Constraints()
	if len(constraints) != 1 {
		t.Fatalf("constraints: %v", constraints)
	}
	// the application argument is the outer parameter '_0, not the inner '_1
	if s := constraints[0].String(); s != "'_1 -> '_1 = '_0 -> '_2" {
		t.Fatalf("constraint: %s", s)
	}

	if err := engine.SolveConstraints(); err != nil {
		t.Fatal(err)
	}
	resolved := engine.Substitute(unsolved)
	if typeString := types.TypeString(resolved); typeString != "'_2 -> '_2" {
		t.Fatalf("type: %s", typeString)
	}
}

func TestUnboundVariable(t *testing.T) {
	engine := New(nil)

	_, err := engine.Infer(&ast.Var{Name: "undeclared"})
	if err == nil {
		t.Fatalf("expected an unbound-variable error")
	}
	ube, ok := err.(UnboundVariableError)
	if !ok || ube.Name != "undeclared" {
		t.Fatalf("error: %v", err)
	}
	t.Logf("Passed check for unbound-variable error: %v", err)
}

func TestScopePoppedOnError(t *testing.T) {
	engine := New(nil)

	expr := &ast.Abs{Param: "x", Body: &ast.App{
		Func: &ast.Var{Name: "missing"},
		Arg:  &ast.Var{Name: "x"},
	}}

	if _, err := engine.Infer(expr); err == nil {
		t.Fatalf("expected an unbound-variable error")
	}
	// the abstraction scope must not leak when body inference fails
	if len(engine.env.scopes) != 1 {
		t.Fatalf("scopes: %d", len(engine.env.scopes))
	}
	if _, ok := engine.env.lookup("x"); ok {
		t.Fatalf("expected x to be out of scope after a failed inference")
	}
}

func TestBindingsSnapshot(t *testing.T) {
	intType := &types.Con{Name: "int"}
	engine := New(map[string]types.Type{"one": intType})

	expr := &ast.App{
		Func: &ast.Abs{Param: "x", Body: &ast.Var{Name: "x"}},
		Arg:  &ast.Var{Name: "one"},
	}

	if _, err := engine.Infer(expr); err != nil {
		t.Fatal(err)
	}
	if err := engine.SolveConstraints(); err != nil {
		t.Fatal(err)
	}

	bindings := engine.Bindings()
	if len(bindings) != 2 {
		t.Fatalf("bindings: %v", bindings)
	}
	if !types.Equal(bindings[0], intType) {
		t.Fatalf("binding 0: %s", types.TypeString(bindings[0]))
	}
	if !types.Equal(engine.Substitute(bindings[1]), intType) {
		t.Fatalf("binding 1: %s", types.TypeString(bindings[1]))
	}
}
