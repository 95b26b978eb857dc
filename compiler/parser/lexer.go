package parser

import (
	"fmt"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenInt
	tokenFloat
	tokenString
	tokenLParen
	tokenRParen
	tokenComma
	tokenDot
	tokenImplies // :-
	tokenQuery   // ?-
	tokenPlus
	tokenMinus
	tokenEq
	tokenNeq
	tokenLT
	tokenLE
	tokenGT
	tokenGE
	tokenAnon // _
)

type token struct {
	typ  tokenType
	text string
	pos  int
	end  int
}

func (t token) String() string {
	if t.typ == tokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

// lexer scans the concatenated source text of a program.  It stops at
// the first unrecognized token, which is a terminal lexical error.
type lexer struct {
	src string
	off int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	pos := l.off
	if l.off >= len(l.src) {
		return token{typ: tokenEOF, pos: pos, end: pos}, nil
	}
	c := l.src[l.off]
	switch {
	case isIdentStart(c):
		return l.scanIdent(), nil
	case c >= '0' && c <= '9':
		return l.scanNumber(), nil
	case c == '\'':
		return l.scanString()
	}
	l.off++
	switch c {
	case '(':
		return token{tokenLParen, "(", pos, l.off}, nil
	case ')':
		return token{tokenRParen, ")", pos, l.off}, nil
	case ',':
		return token{tokenComma, ",", pos, l.off}, nil
	case '.':
		return token{tokenDot, ".", pos, l.off}, nil
	case '+':
		return token{tokenPlus, "+", pos, l.off}, nil
	case '-':
		return token{tokenMinus, "-", pos, l.off}, nil
	case '=':
		return token{tokenEq, "=", pos, l.off}, nil
	case '_':
		return token{tokenAnon, "_", pos, l.off}, nil
	case ':':
		if l.peek() == '-' {
			l.off++
			return token{tokenImplies, ":-", pos, l.off}, nil
		}
	case '?':
		if l.peek() == '-' {
			l.off++
			return token{tokenQuery, "?-", pos, l.off}, nil
		}
	case '<':
		switch l.peek() {
		case '>':
			l.off++
			return token{tokenNeq, "<>", pos, l.off}, nil
		case '=':
			l.off++
			return token{tokenLE, "<=", pos, l.off}, nil
		}
		return token{tokenLT, "<", pos, l.off}, nil
	case '>':
		if l.peek() == '=' {
			l.off++
			return token{tokenGE, ">=", pos, l.off}, nil
		}
		return token{tokenGT, ">", pos, l.off}, nil
	}
	return token{}, &lexError{
		text: l.src[pos:l.off],
		pos:  pos,
		end:  l.off,
	}
}

func (l *lexer) peek() byte {
	if l.off < len(l.src) {
		return l.src[l.off]
	}
	return 0
}

func (l *lexer) skipSpace() {
	for l.off < len(l.src) {
		switch c := l.src[l.off]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.off++
		case c == '%':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.off++
			}
		default:
			return
		}
	}
}

func (l *lexer) scanIdent() token {
	pos := l.off
	for l.off < len(l.src) && isIdentPart(l.src[l.off]) {
		l.off++
	}
	return token{tokenIdent, l.src[pos:l.off], pos, l.off}
}

func (l *lexer) scanNumber() token {
	pos := l.off
	typ := tokenInt
	for l.off < len(l.src) && l.src[l.off] >= '0' && l.src[l.off] <= '9' {
		l.off++
	}
	if l.off < len(l.src) && l.src[l.off] == '.' &&
		l.off+1 < len(l.src) && l.src[l.off+1] >= '0' && l.src[l.off+1] <= '9' {
		typ = tokenFloat
		l.off++
		for l.off < len(l.src) && l.src[l.off] >= '0' && l.src[l.off] <= '9' {
			l.off++
		}
	}
	return token{typ, l.src[pos:l.off], pos, l.off}
}

func (l *lexer) scanString() (token, error) {
	pos := l.off
	l.off++
	for l.off < len(l.src) {
		if l.src[l.off] == '\'' {
			l.off++
			// text excludes the quotes
			return token{tokenString, l.src[pos+1 : l.off-1], pos, l.off}, nil
		}
		if l.src[l.off] == '\n' {
			break
		}
		l.off++
	}
	return token{}, &lexError{
		text: l.src[pos:l.off],
		pos:  pos,
		end:  l.off,
	}
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9' || c == '_'
}

// lexError is an unrecognized or unterminated token.
type lexError struct {
	text string
	pos  int
	end  int
}

func (e *lexError) Error() string {
	return fmt.Sprintf("lexical error: unrecognized token %q", e.text)
}
