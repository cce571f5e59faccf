package asm

import (
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/ezrec/asp/internal"
)

// TokenKind is the class of a lexical token.
//
// An identifier is a mnemonic, register or symbol. A number carries its
// optional sign. The text of an expression is the inside of its $( ... ).
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_EOF       = TokenKind(0) // end of file
	TOKEN_NEWLINE   = TokenKind(1) // end of line
	TOKEN_IDENT     = TokenKind(2) // identifier
	TOKEN_NUMBER    = TokenKind(3) // number
	TOKEN_DIRECTIVE = TokenKind(4) // directive
	TOKEN_EXPR      = TokenKind(5) // expression
	TOKEN_COMMA     = TokenKind(6) // ','
	TOKEN_COLON     = TokenKind(7) // ':'
	TOKEN_HASH      = TokenKind(8) // '#'
)

// Token is a lexical token and its location.
type Token struct {
	Kind   TokenKind
	Text   string
	LineNo int
	Column int
}

// Lexer splits assembly source into tokens.
type Lexer struct {
	lines []string
}

// NewLexer reads all of the source from the input.
func NewLexer(input io.Reader) (lx *Lexer, err error) {
	lx = &Lexer{}
	for line, err := range internal.Lines(input) {
		if err != nil {
			return nil, err
		}
		lx.lines = append(lx.lines, line)
	}
	return
}

// Line returns the text of a source line, numbered from 1.
func (lx *Lexer) Line(lineno int) string {
	if lineno < 1 || lineno > len(lx.lines) {
		return ""
	}
	return lx.lines[lineno-1]
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '.' || unicode.IsLetter(ch)
}

func isIdent(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v'
}

// Tokens iterates over the tokens of the source. Each call starts again
// from the first line. Iteration stops after TOKEN_EOF or the first error.
func (lx *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(tok Token, err error) bool) {
		for n, line := range lx.lines {
			lineno := n + 1
			for tok, err := range scanLine(line, lineno) {
				if !yield(tok, err) || err != nil {
					return
				}
			}
			if !yield(Token{Kind: TOKEN_NEWLINE, LineNo: lineno, Column: len(line) + 1}, nil) {
				return
			}
		}
		yield(Token{Kind: TOKEN_EOF, LineNo: len(lx.lines) + 1, Column: 1}, nil)
	}
}

// scanLine tokenizes a single line, without its end of line.
func scanLine(line string, lineno int) iter.Seq2[Token, error] {
	return func(yield func(tok Token, err error) bool) {
		// Comments run to the end of the line.
		if cut := strings.IndexByte(line, ';'); cut >= 0 {
			line = line[:cut]
		}

		text := []rune(line)
		for pos := 0; pos < len(text); {
			ch := text[pos]
			start := pos
			tok := Token{LineNo: lineno, Column: start + 1}

			switch {
			case isSpace(ch):
				pos++
				continue
			case ch == ',':
				tok.Kind = TOKEN_COMMA
				pos++
			case ch == ':':
				tok.Kind = TOKEN_COLON
				pos++
			case ch == '#':
				tok.Kind = TOKEN_HASH
				pos++
			case ch == '$' && pos+1 < len(text) && text[pos+1] == '(':
				depth := 0
				pos++
				for ; pos < len(text); pos++ {
					if text[pos] == '(' {
						depth++
					} else if text[pos] == ')' {
						depth--
						if depth == 0 {
							break
						}
					}
				}
				if pos == len(text) {
					yield(tok, &ErrLex{LineNo: lineno, Column: start + 1, Char: '$'})
					return
				}
				pos++
				tok.Kind = TOKEN_EXPR
				tok.Text = strings.TrimSpace(string(text[start+2 : pos-1]))
			case unicode.IsDigit(ch) ||
				((ch == '-' || ch == '+') && pos+1 < len(text) && unicode.IsDigit(text[pos+1])):
				pos++
				for pos < len(text) && isIdent(text[pos]) {
					pos++
				}
				tok.Kind = TOKEN_NUMBER
			case ch == '.' && pos+1 < len(text) && isIdentStart(text[pos+1]):
				pos++
				for pos < len(text) && isIdent(text[pos]) {
					pos++
				}
				tok.Kind = TOKEN_DIRECTIVE
			case isIdentStart(ch):
				pos++
				for pos < len(text) && isIdent(text[pos]) {
					pos++
				}
				tok.Kind = TOKEN_IDENT
			default:
				yield(tok, &ErrLex{LineNo: lineno, Column: start + 1, Char: ch})
				return
			}

			if tok.Text == "" {
				tok.Text = string(text[start:pos])
			}

			if !yield(tok, nil) {
				return
			}
		}
	}
}
