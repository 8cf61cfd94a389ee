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

// lam provides constraint-based type inference for a minimal lambda calculus.
//
// The type-system is the monomorphic core of Hindley-Milner: expressions are
// variables, applications and single-parameter abstractions, and types are
// constructors applied to ordered arguments or unconstrained type variables.
//
// Inference runs in two phases. Infer walks an expression, allocating fresh
// type variables and recording equality constraints without solving them.
// SolveConstraints then unifies each constraint against an array-backed
// substitution, with an occurs check preventing infinite types. Substitute
// applies the final bindings to the inferred type to produce its fully-resolved
// form.
//
// Links:
//
// * Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// * Unification (Wikipedia): https://en.wikipedia.org/wiki/Unification_(computer_science)
package lam
