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

// parse tokenizes and parses the surface syntax for lambda expressions:
// identifiers, `fun <params> => <body>` abstractions, application by
// juxtaposition and parenthesized grouping.
package parse

// TokenKind is the kind of a lexical token.
type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	IDENT    // `x`
	FUN      // `fun`
	FATARROW // `=>`
	LPAREN   // `(`
	RPAREN   // `)`
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "invalid token"
	case IDENT:
		return "identifier"
	case FUN:
		return "'fun'"
	case FATARROW:
		return "'=>'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	}
	return "unknown token"
}

// Token is a lexical token along with its text and byte offset in the input.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Lexer scans an input string into tokens. Once the input is exhausted it
// yields EOF tokens indefinitely, which simplifies lookahead in the parser.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token.
func (l *Lexer) Next() Token {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Pos: len(l.input)}
	}

	start := l.pos
	switch c := l.input[l.pos]; {
	case c == '(':
		l.pos++
		return Token{Kind: LPAREN, Text: "(", Pos: start}

	case c == ')':
		l.pos++
		return Token{Kind: RPAREN, Text: ")", Pos: start}

	case c == '=' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '>':
		l.pos += 2
		return Token{Kind: FATARROW, Text: "=>", Pos: start}

	case isIdentStart(c):
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		text := l.input[start:l.pos]
		if text == "fun" {
			return Token{Kind: FUN, Text: text, Pos: start}
		}
		return Token{Kind: IDENT, Text: text, Pos: start}

	default:
		l.pos++
		return Token{Kind: ILLEGAL, Text: l.input[start:l.pos], Pos: start}
	}
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n', '\f':
			l.pos++
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
