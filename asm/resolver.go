package asm

import (
	"maps"

	"github.com/ezrec/asp/isa"
)

// Symbols are the names bound while resolving a program.
type Symbols struct {
	Label  map[string]int // Label to instruction address.
	Equate map[string]int // Equate to value.
}

// lookup finds a label or equate.
func (syms *Symbols) lookup(name string) (value int, is_label bool, ok bool) {
	if value, ok = syms.Equate[name]; ok {
		return
	}
	value, ok = syms.Label[name]
	is_label = ok
	return
}

// names returns every symbol, for expression evaluation.
func (syms *Symbols) names() map[string]int {
	names := maps.Clone(syms.Label)
	maps.Copy(names, syms.Equate)
	return names
}

// Resolver binds labels and equates, then replaces symbolic operands.
type Resolver struct {
	Source    func(lineno int) string // Optional source text for diagnostics.
	Predefine map[string]int          // Equates defined before the source.
}

// Resolve resolves statements with a default resolver.
func Resolve(stmts []Statement, predefine map[string]int) (prog *isa.Program, syms *Symbols, err error) {
	rs := &Resolver{Predefine: predefine}
	return rs.Resolve(stmts)
}

// errorf wraps an error with its line.
func (rs *Resolver) errorf(lineno int, err error) error {
	line := ""
	if rs.Source != nil {
		line = rs.Source(lineno)
	}
	return &ErrResolve{LineNo: lineno, Line: line, Err: err}
}

// Resolve runs both passes and returns the resolved program.
func (rs *Resolver) Resolve(stmts []Statement) (prog *isa.Program, syms *Symbols, err error) {
	syms = &Symbols{
		Label:  map[string]int{},
		Equate: maps.Clone(rs.Predefine),
	}
	if syms.Equate == nil {
		syms.Equate = map[string]int{}
	}

	err = rs.bind(stmts, syms)
	if err != nil {
		syms = nil
		return
	}

	prog, err = rs.rewrite(stmts, syms)
	if err != nil {
		syms = nil
		return
	}

	return
}

// bind is the first pass: addresses, labels and equates.
func (rs *Resolver) bind(stmts []Statement, syms *Symbols) (err error) {
	addr := 0
	for _, stmt := range stmts {
		switch stmt.Kind {
		case STATEMENT_INSTRUCTION:
			addr++
			if addr > isa.DEPTH {
				err = rs.errorf(stmt.LineNo, ErrProgramTooLong)
				return
			}
		case STATEMENT_LABEL:
			if _, _, ok := syms.lookup(stmt.Name); ok {
				err = rs.errorf(stmt.LineNo, ErrLabelDuplicate)
				return
			}
			syms.Label[stmt.Name] = addr
		case STATEMENT_EQUATE:
			if _, _, ok := syms.lookup(stmt.Name); ok {
				err = rs.errorf(stmt.LineNo, ErrEquateDuplicate)
				return
			}
			var value int
			value, err = rs.value(stmt.Operands[0], isa.Field{}, addr, stmt.LineNo, syms)
			if err != nil {
				return
			}
			syms.Equate[stmt.Name] = value
		}
	}

	return
}

// rewrite is the second pass: every operand becomes a number.
func (rs *Resolver) rewrite(stmts []Statement, syms *Symbols) (prog *isa.Program, err error) {
	prog = &isa.Program{}

	for _, stmt := range stmts {
		if stmt.Kind != STATEMENT_INSTRUCTION {
			continue
		}

		addr := len(prog.Instructions)
		fields := stmt.Opcode.Fields()
		inst := isa.Instruction{
			Opcode:   stmt.Opcode,
			Operands: make([]int, len(stmt.Operands)),
			LineNo:   stmt.LineNo,
		}
		for n, operand := range stmt.Operands {
			var field isa.Field
			if n < len(fields) {
				field = fields[n]
			}
			inst.Operands[n], err = rs.value(operand, field, addr, stmt.LineNo, syms)
			if err != nil {
				prog = nil
				return
			}
		}
		prog.Instructions = append(prog.Instructions, inst)
	}

	return
}

// value resolves one operand destined for a field at an address.
func (rs *Resolver) value(operand Operand, field isa.Field, addr int, lineno int, syms *Symbols) (value int, err error) {
	switch operand.Kind {
	case OPERAND_REGISTER, OPERAND_NUMBER:
		value = operand.Value
	case OPERAND_EXPRESSION:
		names := syms.names()
		names["PC"] = addr
		names["LINENO"] = lineno
		value, err = evalExpression(operand.Text, names)
		if err != nil {
			err = rs.errorf(lineno, err)
			return
		}
	case OPERAND_SYMBOL:
		var is_label, ok bool
		value, is_label, ok = syms.lookup(operand.Text)
		if !ok {
			err = rs.errorf(lineno, ErrLabelMissing(operand.Text))
			return
		}
		if !is_label || !field.IsImmediate() {
			return
		}
		if field.Relative {
			value -= addr
			if !field.Fits(value) {
				err = rs.errorf(lineno, ErrBranchRange{Label: operand.Text, Offset: value})
				return
			}
		} else if !field.Fits(value) {
			err = rs.errorf(lineno, isa.ErrImmediateRange{Value: value, Min: field.Min(), Max: field.Max()})
			return
		}
	}

	return
}
