package asm

import (
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/asp/isa"
)

// StatementKind is the class of a parsed statement: an instruction, a
// 'name:' label, or a '.equ NAME VALUE' equate.
type StatementKind int

//go:generate go tool stringer -linecomment -type=StatementKind,OperandKind
const (
	STATEMENT_INSTRUCTION = StatementKind(0) // instruction
	STATEMENT_LABEL       = StatementKind(1) // label
	STATEMENT_EQUATE      = StatementKind(2) // equate
)

// OperandKind is the class of a parsed operand. Symbols and expressions
// are resolved after parsing.
type OperandKind int

const (
	OPERAND_REGISTER   = OperandKind(0) // register
	OPERAND_NUMBER     = OperandKind(1) // number
	OPERAND_SYMBOL     = OperandKind(2) // symbol
	OPERAND_EXPRESSION = OperandKind(3) // expression
)

// Operand is a possibly symbolic operand.
type Operand struct {
	Kind  OperandKind
	Text  string
	Value int // Register index or numeral value.
}

// Statement is a single label, equate or instruction.
type Statement struct {
	Kind     StatementKind
	LineNo   int
	Name     string     // Label or equate name.
	Opcode   isa.Opcode // Instruction opcode.
	Operands []Operand  // Instruction operands, or the equate value.
}

// Parser builds statements from tokens.
type Parser struct {
	Source func(lineno int) string // Optional source text for diagnostics.

	next   func() (Token, error, bool)
	peeked *Token
}

// Parse parses a token stream with a default parser.
func Parse(tokens iter.Seq2[Token, error]) (stmts []Statement, err error) {
	ps := &Parser{}
	return ps.Parse(tokens)
}

// errorf wraps an error with its line.
func (ps *Parser) errorf(lineno int, err error) error {
	line := ""
	if ps.Source != nil {
		line = ps.Source(lineno)
	}
	return &ErrSyntax{LineNo: lineno, Line: line, Err: err}
}

// scan returns the next token, or the pushed back one.
func (ps *Parser) scan() (tok Token, err error) {
	if ps.peeked != nil {
		tok = *ps.peeked
		ps.peeked = nil
		return
	}

	tok, err, ok := ps.next()
	if !ok {
		tok = Token{Kind: TOKEN_EOF}
	}
	return
}

// unscan pushes a token back.
func (ps *Parser) unscan(tok Token) {
	ps.peeked = &tok
}

// unexpected describes a misplaced token.
func unexpected(tok Token) error {
	if tok.Text == "" {
		return ErrTokenUnexpected(tok.Kind.String())
	}
	return ErrTokenUnexpected(tok.Text)
}

// Parse consumes tokens until TOKEN_EOF, and returns the statements.
func (ps *Parser) Parse(tokens iter.Seq2[Token, error]) (stmts []Statement, err error) {
	var stop func()
	ps.next, stop = iter.Pull2(tokens)
	defer stop()
	ps.peeked = nil

	for {
		var tok Token
		tok, err = ps.scan()
		if err != nil {
			return
		}

		switch tok.Kind {
		case TOKEN_EOF:
			return
		case TOKEN_NEWLINE:
			continue
		case TOKEN_DIRECTIVE:
			var stmt Statement
			stmt, err = ps.parseDirective(tok)
			if err != nil {
				return
			}
			stmts = append(stmts, stmt)
		case TOKEN_IDENT:
			var after Token
			after, err = ps.scan()
			if err != nil {
				return
			}
			if after.Kind == TOKEN_COLON {
				if isa.IsRegName(tok.Text) {
					err = ps.errorf(tok.LineNo, ErrLabelSyntax)
					return
				}
				stmts = append(stmts, Statement{Kind: STATEMENT_LABEL, LineNo: tok.LineNo, Name: tok.Text})
				continue
			}
			ps.unscan(after)

			var stmt Statement
			stmt, err = ps.parseInstruction(tok)
			if err != nil {
				return
			}
			stmts = append(stmts, stmt)
		default:
			err = ps.errorf(tok.LineNo, unexpected(tok))
			return
		}
	}
}

// parseOperands collects the operands up to the end of the line.
func (ps *Parser) parseOperands() (operands []Operand, err error) {
	comma := false
	for {
		var tok Token
		tok, err = ps.scan()
		if err != nil {
			return
		}

		switch tok.Kind {
		case TOKEN_NEWLINE, TOKEN_EOF:
			if comma {
				err = ps.errorf(tok.LineNo, ErrOperandMissing)
				return
			}
			ps.unscan(tok)
			return
		case TOKEN_COMMA:
			if comma || len(operands) == 0 {
				err = ps.errorf(tok.LineNo, unexpected(tok))
				return
			}
			comma = true
			continue
		}
		comma = false

		hash := false
		if tok.Kind == TOKEN_HASH {
			hash = true
			tok, err = ps.scan()
			if err != nil {
				return
			}
		}

		var operand Operand
		switch tok.Kind {
		case TOKEN_NUMBER:
			var value int64
			value, err = strconv.ParseInt(tok.Text, 0, 32)
			if err != nil {
				err = ps.errorf(tok.LineNo, ErrParseNumber(tok.Text))
				return
			}
			operand = Operand{Kind: OPERAND_NUMBER, Text: tok.Text, Value: int(value)}
		case TOKEN_EXPR:
			operand = Operand{Kind: OPERAND_EXPRESSION, Text: tok.Text}
		case TOKEN_IDENT:
			if isa.IsRegName(tok.Text) {
				if hash {
					err = ps.errorf(tok.LineNo, ErrOperandKind(tok.Text))
					return
				}
				operand = Operand{Kind: OPERAND_REGISTER, Text: tok.Text, Value: -1}
				reg, reg_err := isa.ParseReg(tok.Text)
				if reg_err == nil {
					operand.Value = int(reg)
				}
			} else {
				operand = Operand{Kind: OPERAND_SYMBOL, Text: tok.Text}
			}
		default:
			err = ps.errorf(tok.LineNo, unexpected(tok))
			return
		}

		operands = append(operands, operand)
	}
}

// parseInstruction parses a mnemonic and checks its operand shape.
func (ps *Parser) parseInstruction(mnemonic Token) (stmt Statement, err error) {
	op, ok := isa.LookupMnemonic(mnemonic.Text)
	if !ok {
		err = ps.errorf(mnemonic.LineNo, ErrMnemonicInvalid(mnemonic.Text))
		return
	}

	operands, err := ps.parseOperands()
	if err != nil {
		return
	}

	fields := op.Fields()
	for n, field := range fields {
		if n >= len(operands) {
			if field.IsImmediate() {
				err = ps.errorf(mnemonic.LineNo, ErrImmediateMissing)
			} else {
				err = ps.errorf(mnemonic.LineNo, ErrRegisterMissing)
			}
			return
		}

		operand := operands[n]
		if field.IsImmediate() {
			if operand.Kind == OPERAND_REGISTER {
				err = ps.errorf(mnemonic.LineNo, ErrOperandKind(operand.Text))
				return
			}
		} else if operand.Kind != OPERAND_REGISTER || operand.Value < 0 {
			err = ps.errorf(mnemonic.LineNo, ErrParseRegister(operand.Text))
			return
		}
	}

	if len(operands) > len(fields) {
		err = ps.errorf(mnemonic.LineNo, ErrOperandExtra(operands[len(fields)].Text))
		return
	}

	stmt = Statement{
		Kind:     STATEMENT_INSTRUCTION,
		LineNo:   mnemonic.LineNo,
		Opcode:   op,
		Operands: operands,
	}

	return
}

// parseDirective parses a '.equ NAME VALUE' line.
func (ps *Parser) parseDirective(directive Token) (stmt Statement, err error) {
	if !strings.EqualFold(directive.Text, ".equ") {
		err = ps.errorf(directive.LineNo, ErrDirectiveInvalid(directive.Text))
		return
	}

	name, err := ps.scan()
	if err != nil {
		return
	}
	if name.Kind != TOKEN_IDENT || isa.IsRegName(name.Text) {
		err = ps.errorf(directive.LineNo, ErrEquateSyntax)
		return
	}

	operands, err := ps.parseOperands()
	if err != nil {
		return
	}
	if len(operands) != 1 || operands[0].Kind == OPERAND_REGISTER {
		err = ps.errorf(directive.LineNo, ErrEquateSyntax)
		return
	}

	stmt = Statement{
		Kind:     STATEMENT_EQUATE,
		LineNo:   directive.LineNo,
		Name:     name.Text,
		Operands: operands,
	}

	return
}
