package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/deltalog/deltalog/compiler/ast"
	"github.com/deltalog/deltalog/compiler/semantic"
	"github.com/spf13/cobra"
)

func (d *driver) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables file.dl [file.dl ...]",
		Short: "print the analysis tables for a program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := d.analyze(args)
			if err != nil {
				return err
			}
			rep, err := buildReport(a)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if d.format == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			writeReport(w, rep)
			return nil
		},
	}
}

type report struct {
	Sources []predReport `json:"sources"`
	Derived []predReport `json:"derived"`
	Updates []string     `json:"updates"`
	Query   string       `json:"query"`
}

type predReport struct {
	Name    string       `json:"name"`
	Arity   int          `json:"arity"`
	Columns []string     `json:"columns"`
	Rules   []ruleReport `json:"rules,omitempty"`
}

type ruleReport struct {
	Head       string              `json:"head"`
	Joins      map[string][]string `json:"joins,omitempty"`
	Equalities map[string]string   `json:"equalities,omitempty"`
}

func buildReport(a *semantic.Analysis) (*report, error) {
	rep := &report{Query: a.Query.Atom.String()}
	for _, k := range a.Extensional.Keys() {
		rep.Sources = append(rep.Sources, predReport{
			Name:    k.Name,
			Arity:   k.Arity,
			Columns: a.Columns[k],
		})
	}
	for _, k := range a.Intensional.Keys() {
		pr := predReport{
			Name:    k.Name,
			Arity:   k.Arity,
			Columns: a.Columns[k],
		}
		for _, rule := range a.Intensional.Lookup(k) {
			rr, err := buildRuleReport(a.Columns, rule)
			if err != nil {
				return nil, err
			}
			pr.Rules = append(pr.Rules, rr)
		}
		rep.Derived = append(rep.Derived, pr)
	}
	for _, atom := range a.Deltas {
		rep.Updates = append(rep.Updates, atom.String())
	}
	return rep, nil
}

func buildRuleReport(cols semantic.ColumnTable, rule *ast.Rule) (ruleReport, error) {
	if err := checkDefined(cols, rule.Body); err != nil {
		return ruleReport{}, err
	}
	vt, err := semantic.BuildVarOccurrences(cols, rule.Body)
	if err != nil {
		return ruleReport{}, err
	}
	rr := ruleReport{Head: rule.Head.String()}
	for _, v := range vt.Vars().Sorted() {
		name := ast.TermString(v)
		var refs []string
		for _, ref := range vt[name] {
			refs = append(refs, ref.String())
		}
		if rr.Joins == nil {
			rr.Joins = make(map[string][]string)
		}
		rr.Joins[name] = refs
	}
	eqs := semantic.BuildEqualityTable(equalities(rule.Body))
	for name, c := range eqs {
		if rr.Equalities == nil {
			rr.Equalities = make(map[string]string)
		}
		rr.Equalities[name] = ast.TermString(c)
	}
	return rr, nil
}

// checkDefined verifies every body atom resolves in the column table
// before the per-rule builders run; they treat an unresolved atom as
// a breach of contract.
func checkDefined(cols semantic.ColumnTable, body []ast.Literal) error {
	for _, lit := range body {
		var atom *ast.Atom
		switch lit := lit.(type) {
		case *ast.Rel:
			atom = lit.Atom
		case *ast.Not:
			atom = lit.Atom
		default:
			continue
		}
		k := semantic.KeyOf(atom)
		if names, ok := cols[k]; !ok || len(names) != atom.Arity() {
			return fmt.Errorf("undefined predicate %s", k)
		}
	}
	return nil
}

// equalities filters the body literals the equality builder accepts:
// a named or numbered variable equated to a constant.
func equalities(body []ast.Literal) []ast.Literal {
	var eqs []ast.Literal
	for _, lit := range body {
		eq, ok := lit.(*ast.Equality)
		if !ok {
			continue
		}
		if _, ok := eq.Expr.(*ast.Constant); !ok {
			continue
		}
		switch eq.Var.(type) {
		case *ast.NamedVar, *ast.NumberedVar:
			eqs = append(eqs, eq)
		}
	}
	return eqs
}

func writeReport(w io.Writer, rep *report) {
	for _, p := range rep.Sources {
		fmt.Fprintf(w, "source %s/%d (%s)\n", p.Name, p.Arity, strings.Join(p.Columns, ", "))
	}
	for _, p := range rep.Derived {
		fmt.Fprintf(w, "derived %s/%d (%s)\n", p.Name, p.Arity, strings.Join(p.Columns, ", "))
		for _, r := range p.Rules {
			fmt.Fprintf(w, "  rule %s\n", r.Head)
			for name, refs := range r.Joins {
				fmt.Fprintf(w, "    %s: %s\n", name, strings.Join(refs, " = "))
			}
			for name, val := range r.Equalities {
				fmt.Fprintf(w, "    %s = %s\n", name, val)
			}
		}
	}
	for _, u := range rep.Updates {
		fmt.Fprintf(w, "update %s\n", u)
	}
	fmt.Fprintf(w, "query %s\n", rep.Query)
}
