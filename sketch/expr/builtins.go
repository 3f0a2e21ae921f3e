package expr

import (
	"fmt"
	"math"
)

// builtin describes a function callable from field expressions. Exactly one of
// fn1, fn2, fnN is set; maxArgs < 0 means variadic.
type builtin struct {
	minArgs int
	maxArgs int
	fn1     func(float64) float64
	fn2     func(float64, float64) float64
	fnN     func([]float64) float64
}

func (b builtin) arity() string {
	switch {
	case b.maxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", b.minArgs)
	case b.minArgs == b.maxArgs:
		return fmt.Sprintf("%d argument(s)", b.minArgs)
	default:
		return fmt.Sprintf("%d..%d arguments", b.minArgs, b.maxArgs)
	}
}

func unary(fn func(float64) float64) builtin {
	return builtin{minArgs: 1, maxArgs: 1, fn1: fn}
}

func binary(fn func(float64, float64) float64) builtin {
	return builtin{minArgs: 2, maxArgs: 2, fn2: fn}
}

var builtins = map[string]builtin{
	// Trigonometry.
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"atan2": binary(math.Atan2),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),

	// Powers, roots, logs.
	"pow":  binary(math.Pow),
	"sqrt": unary(math.Sqrt),
	"cbrt": unary(math.Cbrt),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),

	// Misc.
	"abs":   unary(math.Abs),
	"floor": unary(math.Floor),
	"ceil":  unary(math.Ceil),
	"min":   {minArgs: 1, maxArgs: -1, fnN: minOf},
	"max":   {minArgs: 1, maxArgs: -1, fnN: maxOf},
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, f := range v[1:] {
		m = math.Min(m, f)
	}
	return m
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, f := range v[1:] {
		m = math.Max(m, f)
	}
	return m
}
