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

package parse

import (
	"github.com/pkg/errors"

	"github.com/wdamron/lam/ast"
)

// SyntaxError describes a token which did not match the grammar. EOF is an
// ordinary token, so running out of input reports as `expected X, got EOF`.
type SyntaxError struct {
	Expected string
	Got      Token
}

func (e *SyntaxError) Error() string {
	return "expected " + e.Expected + ", got " + e.Got.Kind.String()
}

// Parse parses a complete expression:
//
//	expr := atom { atom }
//	atom := IDENT | "fun" IDENT+ "=>" expr | "(" expr ")"
//
// Application by juxtaposition associates to the left, and `fun x y => e`
// curries to nested single-parameter abstractions. Errors are wrapped with the
// byte offset of the offending token.
func Parse(input string) (ast.Expr, error) {
	p := &parser{lex: NewLexer(input)}
	p.next()
	expr, err := p.parseExpr()
	if err == nil && p.tok.Kind != EOF {
		err = &SyntaxError{Expected: "EOF", Got: p.tok}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse error at offset %d", p.tok.Pos)
	}
	return expr, nil
}

type parser struct {
	lex *Lexer
	tok Token // lookahead
}

func (p *parser) next() { p.tok = p.lex.Next() }

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, &SyntaxError{Expected: kind.String(), Got: tok}
	}
	p.next()
	return tok, nil
}

func startsExpr(kind TokenKind) bool {
	return kind == IDENT || kind == FUN || kind == LPAREN
}

func (p *parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for startsExpr(p.tok.Kind) {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		lhs = &ast.App{Func: lhs, Arg: arg}
	}
	return lhs, nil
}

func (p *parser) parseAtom() (ast.Expr, error) {
	switch p.tok.Kind {
	case IDENT:
		tok := p.tok
		p.next()
		return &ast.Var{Name: tok.Text}, nil

	case FUN:
		return p.parseAbs()

	case LPAREN:
		p.next()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return body, nil
	}
	return nil, &SyntaxError{Expected: "expression", Got: p.tok}
}

func (p *parser) parseAbs() (ast.Expr, error) {
	p.next() // `fun`
	var params []string
	for p.tok.Kind == IDENT {
		params = append(params, p.tok.Text)
		p.next()
	}
	if len(params) == 0 {
		return nil, &SyntaxError{Expected: "identifier", Got: p.tok}
	}
	if _, err := p.expect(FATARROW); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	abs := &ast.Abs{Param: params[len(params)-1], Body: body}
	for i := len(params) - 2; i >= 0; i-- {
		abs = &ast.Abs{Param: params[i], Body: abs}
	}
	return abs, nil
}
