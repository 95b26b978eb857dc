// Package ast declares the types used to represent syntax trees for
// deltalog programs.
package ast

// This module is derived from the GO AST design pattern in
// https://golang.org/pkg/go/ast/
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import (
	"fmt"
	"strings"
)

// Statement is the interface implemented by all top-level clauses of a
// program: rules, queries, and base declarations.
type Statement interface {
	Node
	statementNode()
}

// A Rule derives its head atom from the literals of its body.  A rule
// whose head is a delta form describes an incremental update to the
// head's predicate rather than the predicate's steady state.
type Rule struct {
	Kind string    `json:"kind"`
	Head *Atom     `json:"head"`
	Body []Literal `json:"body"`
	Loc  `json:"loc"`
}

// A Query names the output predicate of the program.
type Query struct {
	Kind string `json:"kind"`
	Atom *Atom  `json:"atom"`
	Loc  `json:"loc"`
}

// A Base declares an extensional (input) predicate.  Its atom's
// arguments are variables whose names double as column names.
type Base struct {
	Kind string `json:"kind"`
	Atom *Atom  `json:"atom"`
	Loc  `json:"loc"`
}

func (*Rule) statementNode()  {}
func (*Query) statementNode() {}
func (*Base) statementNode()  {}

// Program is an ordered sequence of statements.
type Program []Statement

// Form tags whether an atom denotes a steady-state relation or an
// incremental insert/delete on one.
type Form string

const (
	Plain       Form = "pred"
	DeltaInsert Form = "delta-insert"
	DeltaDelete Form = "delta-delete"
)

// An Atom is a predicate applied to an ordered argument list.  All
// three head forms share this shape and differ only in Form.
type Atom struct {
	Kind string `json:"kind"`
	Form Form   `json:"form"`
	Name string `json:"name"`
	Args []Term `json:"args"`
	Loc  `json:"loc"`
}

// Arity is the number of arguments of a.
func (a *Atom) Arity() int { return len(a.Args) }

func (a *Atom) String() string {
	var b strings.Builder
	switch a.Form {
	case DeltaInsert:
		b.WriteByte('+')
	case DeltaDelete:
		b.WriteByte('-')
	}
	b.WriteString(a.Name)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(TermString(arg))
	}
	b.WriteByte(')')
	return b.String()
}

// Literal is the interface implemented by all body terms of a rule.
type Literal interface {
	Node
	literalNode()
}

// A Rel is a positive use of a predicate in a rule body.
type Rel struct {
	Kind string `json:"kind"`
	Atom *Atom  `json:"atom"`
	Loc  `json:"loc"`
}

// A Not is a negated use of a predicate in a rule body.
type Not struct {
	Kind string `json:"kind"`
	Atom *Atom  `json:"atom"`
	Loc  `json:"loc"`
}

// An Equality binds a variable to a constant (or, in a rule head
// context, to an aggregate expression).
type Equality struct {
	Kind string `json:"kind"`
	Var  Term   `json:"var"`
	Expr Term   `json:"expr"`
	Loc  `json:"loc"`
}

// An Inequality compares two terms with an operator other than "=".
type Inequality struct {
	Kind string `json:"kind"`
	Op   string `json:"op"`
	LHS  Term   `json:"lhs"`
	RHS  Term   `json:"rhs"`
	Loc  `json:"loc"`
}

func (*Rel) literalNode()        {}
func (*Not) literalNode()        {}
func (*Equality) literalNode()   {}
func (*Inequality) literalNode() {}

// Term is the interface implemented by all argument positions of an
// atom and both sides of a comparison.
type Term interface {
	Node
	termNode()
}

// A NamedVar is a user-written variable identifier.
type NamedVar struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Loc  `json:"loc"`
}

// A NumberedVar is a compiler-generated positional variable, printed
// as _<n>.
type NumberedVar struct {
	Kind   string `json:"kind"`
	Number int    `json:"number"`
	Loc    `json:"loc"`
}

// An AnonVar is the wildcard "_", which joins with nothing.
type AnonVar struct {
	Kind string `json:"kind"`
	Loc  `json:"loc"`
}

// An AggVar wraps an aggregate function applied to a variable, e.g.
// sum(X).  It is valid only in a rule head argument position.
type AggVar struct {
	Kind string `json:"kind"`
	Func string `json:"func"`
	Arg  string `json:"arg"`
	Loc  `json:"loc"`
}

// A Constant is a literal value.  Text holds the value as written and
// Type is one of "int", "float", "string", "bool", or "null".
type Constant struct {
	Kind string `json:"kind"`
	Type string `json:"type"`
	Text string `json:"text"`
	Loc  `json:"loc"`
}

func (*NamedVar) termNode()    {}
func (*NumberedVar) termNode() {}
func (*AnonVar) termNode()     {}
func (*AggVar) termNode()      {}
func (*Constant) termNode()    {}

// TermString returns the printed form of a term.  Two named or
// numbered variables are the same variable iff their printed forms are
// equal; this is the single definition of variable identity.
func TermString(t Term) string {
	switch t := t.(type) {
	case *NamedVar:
		return t.Name
	case *NumberedVar:
		return fmt.Sprintf("_%d", t.Number)
	case *AnonVar:
		return "_"
	case *AggVar:
		return fmt.Sprintf("%s(%s)", t.Func, t.Arg)
	case *Constant:
		if t.Type == "string" {
			return "'" + t.Text + "'"
		}
		return t.Text
	}
	panic(fmt.Sprintf("system error: unknown term type %T", t))
}
