package parser

import (
	"fmt"

	"github.com/deltalog/deltalog/compiler/ast"
)

var aggFuncs = map[string]bool{
	"avg":   true,
	"count": true,
	"max":   true,
	"min":   true,
	"sum":   true,
}

// syntaxError is a grammar violation at a given non-terminal.
type syntaxError struct {
	msg string
	pos int
	end int
}

func (e *syntaxError) Error() string {
	return "syntax error: " + e.msg
}

type parser struct {
	toks []token
	off  int
}

func newParser(toks []token) *parser {
	return &parser{toks: toks}
}

func (p *parser) cur() token {
	return p.toks[p.off]
}

func (p *parser) la(n int) token {
	if p.off+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.off+n]
}

func (p *parser) advance() token {
	tok := p.toks[p.off]
	if p.off < len(p.toks)-1 {
		p.off++
	}
	return tok
}

func (p *parser) expect(typ tokenType, what string) (token, error) {
	tok := p.cur()
	if tok.typ != typ {
		return token{}, p.errorf(tok, "expected %s, found %s", what, tok)
	}
	return p.advance(), nil
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &syntaxError{
		msg: fmt.Sprintf(format, args...),
		pos: tok.pos,
		end: tok.end,
	}
}

func (p *parser) program() (ast.Program, error) {
	var prog ast.Program
	for p.cur().typ != tokenEOF {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog = append(prog, s)
	}
	return prog, nil
}

// statement := "?-" atom "."
//            | ("+"|"-") atom ":-" body "."
//            | atom ":-" body "."
//            | atom "."
func (p *parser) statement() (ast.Statement, error) {
	switch tok := p.cur(); tok.typ {
	case tokenQuery:
		p.advance()
		atom, err := p.atom(ast.Plain, tok.pos)
		if err != nil {
			return nil, err
		}
		dot, err := p.expect(tokenDot, `"."`)
		if err != nil {
			return nil, err
		}
		return &ast.Query{Kind: "Query", Atom: atom, Loc: ast.NewLoc(tok.pos, dot.end)}, nil
	case tokenPlus, tokenMinus:
		form := ast.DeltaInsert
		if tok.typ == tokenMinus {
			form = ast.DeltaDelete
		}
		p.advance()
		head, err := p.atom(form, tok.pos)
		if err != nil {
			return nil, err
		}
		// A delta head is only meaningful as the head of a rule.
		if _, err := p.expect(tokenImplies, `":-" after update head`); err != nil {
			return nil, err
		}
		return p.ruleTail(head, tok.pos)
	case tokenIdent:
		head, err := p.atom(ast.Plain, tok.pos)
		if err != nil {
			return nil, err
		}
		if p.cur().typ == tokenImplies {
			p.advance()
			return p.ruleTail(head, tok.pos)
		}
		dot, err := p.expect(tokenDot, `"."`)
		if err != nil {
			return nil, err
		}
		return &ast.Base{Kind: "Base", Atom: head, Loc: ast.NewLoc(tok.pos, dot.end)}, nil
	default:
		return nil, p.errorf(tok, "expected statement, found %s", tok)
	}
}

func (p *parser) ruleTail(head *ast.Atom, pos int) (*ast.Rule, error) {
	body, err := p.body()
	if err != nil {
		return nil, err
	}
	dot, err := p.expect(tokenDot, `"."`)
	if err != nil {
		return nil, err
	}
	return &ast.Rule{Kind: "Rule", Head: head, Body: body, Loc: ast.NewLoc(pos, dot.end)}, nil
}

func (p *parser) body() ([]ast.Literal, error) {
	var body []ast.Literal
	for {
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		body = append(body, lit)
		if p.cur().typ != tokenComma {
			return body, nil
		}
		p.advance()
	}
}

// literal := "not" atom | atom | term cmpop term
func (p *parser) literal() (ast.Literal, error) {
	tok := p.cur()
	if tok.typ == tokenIdent && tok.text == "not" && p.la(1).typ == tokenIdent {
		p.advance()
		atom, err := p.atom(ast.Plain, p.cur().pos)
		if err != nil {
			return nil, err
		}
		return &ast.Not{Kind: "Not", Atom: atom, Loc: ast.NewLoc(tok.pos, atom.End())}, nil
	}
	if tok.typ == tokenIdent && p.la(1).typ == tokenLParen && !aggFuncs[tok.text] {
		atom, err := p.atom(ast.Plain, tok.pos)
		if err != nil {
			return nil, err
		}
		return &ast.Rel{Kind: "Rel", Atom: atom, Loc: atom.Loc}, nil
	}
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}
	op := p.cur()
	switch op.typ {
	case tokenEq:
		p.advance()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.Equality{Kind: "Equality", Var: lhs, Expr: rhs, Loc: ast.NewLoc(lhs.Pos(), rhs.End())}, nil
	case tokenNeq, tokenLT, tokenLE, tokenGT, tokenGE:
		p.advance()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		return &ast.Inequality{Kind: "Inequality", Op: op.text, LHS: lhs, RHS: rhs, Loc: ast.NewLoc(lhs.Pos(), rhs.End())}, nil
	default:
		return nil, p.errorf(op, "expected comparison operator, found %s", op)
	}
}

// atom := ident "(" [term ("," term)*] ")"
func (p *parser) atom(form ast.Form, pos int) (*ast.Atom, error) {
	name, err := p.expect(tokenIdent, "predicate name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokenLParen, `"("`); err != nil {
		return nil, err
	}
	var args []ast.Term
	if p.cur().typ != tokenRParen {
		for {
			arg, err := p.term()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur().typ != tokenComma {
				break
			}
			p.advance()
		}
	}
	rparen, err := p.expect(tokenRParen, `")"`)
	if err != nil {
		return nil, err
	}
	return &ast.Atom{
		Kind: "Atom",
		Form: form,
		Name: name.text,
		Args: args,
		Loc:  ast.NewLoc(pos, rparen.end),
	}, nil
}

func (p *parser) term() (ast.Term, error) {
	switch tok := p.cur(); tok.typ {
	case tokenIdent:
		if aggFuncs[tok.text] && p.la(1).typ == tokenLParen {
			return p.aggVar()
		}
		p.advance()
		switch tok.text {
		case "true", "false":
			return &ast.Constant{Kind: "Constant", Type: "bool", Text: tok.text, Loc: ast.NewLoc(tok.pos, tok.end)}, nil
		case "null":
			return &ast.Constant{Kind: "Constant", Type: "null", Text: tok.text, Loc: ast.NewLoc(tok.pos, tok.end)}, nil
		}
		return &ast.NamedVar{Kind: "NamedVar", Name: tok.text, Loc: ast.NewLoc(tok.pos, tok.end)}, nil
	case tokenAnon:
		p.advance()
		return &ast.AnonVar{Kind: "AnonVar", Loc: ast.NewLoc(tok.pos, tok.end)}, nil
	case tokenInt:
		p.advance()
		return &ast.Constant{Kind: "Constant", Type: "int", Text: tok.text, Loc: ast.NewLoc(tok.pos, tok.end)}, nil
	case tokenFloat:
		p.advance()
		return &ast.Constant{Kind: "Constant", Type: "float", Text: tok.text, Loc: ast.NewLoc(tok.pos, tok.end)}, nil
	case tokenString:
		p.advance()
		return &ast.Constant{Kind: "Constant", Type: "string", Text: tok.text, Loc: ast.NewLoc(tok.pos, tok.end)}, nil
	case tokenMinus:
		if next := p.la(1); next.typ == tokenInt || next.typ == tokenFloat {
			p.advance()
			num := p.advance()
			typ := "int"
			if num.typ == tokenFloat {
				typ = "float"
			}
			return &ast.Constant{Kind: "Constant", Type: typ, Text: "-" + num.text, Loc: ast.NewLoc(tok.pos, num.end)}, nil
		}
		return nil, p.errorf(tok, "expected term, found %s", tok)
	default:
		return nil, p.errorf(tok, "expected term, found %s", tok)
	}
}

// aggVar := aggfunc "(" ident ")"
func (p *parser) aggVar() (*ast.AggVar, error) {
	fn := p.advance()
	p.advance() // "("
	arg, err := p.expect(tokenIdent, "aggregate variable")
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(tokenRParen, `")"`)
	if err != nil {
		return nil, err
	}
	return &ast.AggVar{
		Kind: "AggVar",
		Func: fn.text,
		Arg:  arg.text,
		Loc:  ast.NewLoc(fn.pos, rparen.end),
	}, nil
}
