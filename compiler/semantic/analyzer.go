package semantic

import (
	"errors"

	"github.com/deltalog/deltalog/compiler/ast"
	"github.com/deltalog/deltalog/compiler/parser"
	"github.com/deltalog/deltalog/compiler/srcfiles"
)

// Analysis holds the whole-program tables handed to the downstream
// code generator.  The per-rule tables are not here: the generator
// builds them itself, once per rule, with BuildVarOccurrences and
// BuildEqualityTable.
type Analysis struct {
	Extensional *SymbolTable
	Intensional *SymbolTable
	Columns     ColumnTable
	Deltas      []*ast.Atom
	Query       *ast.Query
}

// Analyze runs the whole-program passes over the parsed program: the
// intensional/extensional split, column-name inference, query
// extraction, and delta-predicate extraction.  Analysis stops at the
// first violation; the returned error renders with file positions
// when the offending node has a span.
func Analyze(p *parser.AST) (*Analysis, error) {
	prog := p.Parsed()
	ext := ExtractExtensional(prog)
	intn := ExtractIntensional(prog)
	cols := BuildColumnTable(ext, intn)
	query, err := GetQuery(prog)
	if err != nil {
		return nil, bind(p.Files(), err)
	}
	deltas, err := ExtractDeltaPredicates(prog)
	if err != nil {
		return nil, bind(p.Files(), err)
	}
	return &Analysis{
		Extensional: ext,
		Intensional: intn,
		Columns:     cols,
		Deltas:      deltas,
		Query:       query,
	}, nil
}

// bind points a semantic error at the program's source files so it
// renders with file, line, and character positions.
func bind(files *srcfiles.List, err error) error {
	var serr *Error
	if errors.As(err, &serr) && files != nil && serr.Pos >= 0 {
		files.AddError(serr.Error(), serr.Pos, serr.End)
		return files.Error()
	}
	return err
}
