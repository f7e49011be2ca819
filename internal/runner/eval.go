package runner

import (
	"fmt"
	"strconv"

	"github.com/lorewright/lorewright/internal/graph"
)

// Eval compares a current value against an operand with one of the six
// branch operators. Numbers compare numerically when both sides are numeric;
// everything else falls back to string equality, so the ordering operators
// are false for non-numeric operands.
func Eval(op graph.Operator, current, operand any) bool {
	cn, cok := toNumber(current)
	on, ook := toNumber(operand)
	if cok && ook {
		switch op {
		case graph.OpEquals:
			return cn == on
		case graph.OpNotEquals:
			return cn != on
		case graph.OpGreater:
			return cn > on
		case graph.OpLess:
			return cn < on
		case graph.OpGreaterEqual:
			return cn >= on
		case graph.OpLessEqual:
			return cn <= on
		}
		return false
	}

	cs := fmt.Sprintf("%v", current)
	os := fmt.Sprintf("%v", operand)
	switch op {
	case graph.OpEquals:
		return cs == os
	case graph.OpNotEquals:
		return cs != os
	}
	return false
}

// Apply produces the new value of a variable_set mutation. Divide by zero
// reports an error and leaves the value unchanged.
func Apply(op graph.VariableOp, current, operand any) (any, error) {
	if op == graph.VarSet {
		return operand, nil
	}
	cn, cok := toNumber(current)
	on, ook := toNumber(operand)
	if !cok || !ook {
		return current, fmt.Errorf("operation %s requires numeric values", op)
	}
	switch op {
	case graph.VarAdd:
		return cn + on, nil
	case graph.VarSubtract:
		return cn - on, nil
	case graph.VarMultiply:
		return cn * on, nil
	case graph.VarDivide:
		if on == 0 {
			return current, fmt.Errorf("division by zero")
		}
		return cn / on, nil
	}
	return current, fmt.Errorf("unknown operation %q", op)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
