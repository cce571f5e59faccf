package asm

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpression does compile-time $(...) evaluations.
func evalExpression(expr string, names map[string]int) (value int, err error) {
	thread := starlark.Thread{Name: "asp"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range names {
		pred[key] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > math.MaxInt32 || st_int64 < math.MinInt32 {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}
