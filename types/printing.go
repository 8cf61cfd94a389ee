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

import (
	"strconv"
	"strings"
)

// TypeString returns a string representation of a Type.
//
// Variables print as '_<id>. Function types print arrow-style (`int -> int`),
// parenthesized when nested on the left of another arrow; all other
// constructors print as `Name` or `Name[arg, ...]`.
func TypeString(t Type) string {
	var sb strings.Builder
	typeString(&sb, false, t)
	return sb.String()
}

func typeString(sb *strings.Builder, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		sb.WriteString("'_")
		sb.WriteString(strconv.Itoa(t.Id))

	case *Con:
		if t.Name == FuncName && len(t.Args) == 2 {
			if simple {
				sb.WriteByte('(')
			}
			typeString(sb, true, t.Args[0])
			sb.WriteString(" -> ")
			typeString(sb, false, t.Args[1])
			if simple {
				sb.WriteByte(')')
			}
			return
		}
		sb.WriteString(t.Name)
		if len(t.Args) == 0 {
			return
		}
		sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeString(sb, false, arg)
		}
		sb.WriteByte(']')
	}
}
