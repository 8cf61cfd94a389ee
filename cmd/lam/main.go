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

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/lam"
	"github.com/wdamron/lam/ast"
	"github.com/wdamron/lam/parse"
	"github.com/wdamron/lam/types"
)

// Config holds the command-line options.
type Config struct {
	Tree        bool
	Constraints bool
	File        string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "lam [flags] [file]",
		Short: "Type inference for a minimal lambda calculus",
		Long: `lam parses lambda expressions and infers their principal types.
With a file argument the file is checked as a single expression; without
arguments an interactive prompt reads one expression per line.`,
		Example: `  # Check a file containing one expression
  lam compose.lam

  # Start the interactive prompt
  lam

  # Show the expression tree and generated constraints
  lam --tree --constraints`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.File = args[0]
				return runFile(cfg)
			}
			return runREPL(cfg)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&cfg.Tree, "tree", false, "Print the parsed expression tree")
	rootCmd.Flags().BoolVar(&cfg.Constraints, "constraints", false, "Print the generated constraints before solving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// prelude is the base scope predeclared for every checked expression.
func prelude() map[string]types.Type {
	intType := &types.Con{Name: "int"}
	boolType := &types.Con{Name: "bool"}
	return map[string]types.Type{
		"zero":   intType,
		"one":    intType,
		"succ":   types.NewFunc(intType, intType),
		"pred":   types.NewFunc(intType, intType),
		"iszero": types.NewFunc(intType, boolType),
		"true":   boolType,
		"false":  boolType,
		"not":    types.NewFunc(boolType, boolType),
	}
}

func runFile(cfg Config) error {
	src, err := os.ReadFile(cfg.File)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	result, err := check(cfg, string(src))
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func runREPL(cfg Config) error {
	fmt.Println("lam - enter an expression per line, Ctrl-D to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return errors.Wrap(scanner.Err(), "read input")
		}
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		// a bad input never stops the loop; every line gets a fresh engine
		result, err := check(cfg, line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(result)
	}
}

// check parses src, infers and solves within a fresh engine, then returns
// `expr : type`.
func check(cfg Config, src string) (string, error) {
	expr, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	if cfg.Tree {
		fmt.Println(ast.ExprTreeString(expr))
	}

	engine := lam.New(prelude())
	t, err := engine.Infer(expr)
	if err != nil {
		return "", err
	}
	if cfg.Constraints {
		for _, c := range engine.Constraints() {
			fmt.Println(c.String())
		}
	}
	if err := engine.SolveConstraints(); err != nil {
		return "", err
	}
	resolved := engine.Substitute(t)
	return ast.ExprString(expr) + " : " + types.TypeString(resolved), nil
}
