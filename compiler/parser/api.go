package parser

import (
	"errors"

	"github.com/deltalog/deltalog/compiler/ast"
	"github.com/deltalog/deltalog/compiler/srcfiles"
)

type AST struct {
	program ast.Program
	files   *srcfiles.List
}

func (a *AST) Parsed() ast.Program {
	return a.program
}

func (a *AST) Files() *srcfiles.List {
	return a.files
}

// ParseProgram parses a program text and an optional set of include
// files and tracks include file names and offsets for error reporting.
// The first lexical or syntax error aborts the parse.
func ParseProgram(program string, filenames ...string) (*AST, error) {
	files, err := srcfiles.Concat(filenames, program)
	if err != nil {
		return nil, err
	}
	toks, err := scan(files.Text)
	if err != nil {
		var lexErr *lexError
		if errors.As(err, &lexErr) {
			files.AddError(lexErr.Error(), lexErr.pos, lexErr.end)
			return nil, files.Error()
		}
		return nil, err
	}
	prog, err := newParser(toks).program()
	if err != nil {
		var synErr *syntaxError
		if errors.As(err, &synErr) {
			files.AddError(synErr.Error(), synErr.pos, synErr.end)
			return nil, files.Error()
		}
		return nil, err
	}
	return &AST{program: prog, files: files}, nil
}

func scan(src string) ([]token, error) {
	lex := newLexer(src)
	var toks []token
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.typ == tokenEOF {
			return toks, nil
		}
	}
}
