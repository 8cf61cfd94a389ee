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

package ast

import (
	"strings"
)

// ExprString returns a single-line string representation of an expression,
// in the surface syntax.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *App:
		if simple {
			sb.WriteByte('(')
		}
		// application associates to the left, so a nested App in function
		// position needs no parentheses
		if _, ok := et.Func.(*Abs); ok {
			exprString(sb, true, et.Func)
		} else {
			exprString(sb, false, et.Func)
		}
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *Abs:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		sb.WriteString(et.Param)
		sb.WriteString(" => ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}
	}
}

const treeTab = "|   "

// ExprTreeString returns an indented, multi-line tree representation of an
// expression, one node per line.
func ExprTreeString(e Expr) string {
	var sb strings.Builder
	exprTreeString(&sb, e, 0)
	return sb.String()
}

func exprTreeString(sb *strings.Builder, e Expr, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(treeTab)
	}
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *App:
		sb.WriteString("(app\n")
		exprTreeString(sb, et.Func, depth+1)
		sb.WriteByte('\n')
		exprTreeString(sb, et.Arg, depth+1)
		sb.WriteByte(')')

	case *Abs:
		sb.WriteString("(fun\n")
		for i := 0; i <= depth; i++ {
			sb.WriteString(treeTab)
		}
		sb.WriteString(et.Param)
		sb.WriteByte('\n')
		exprTreeString(sb, et.Body, depth+1)
		sb.WriteByte(')')
	}
}
