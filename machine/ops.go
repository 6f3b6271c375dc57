package machine

import (
	"fmt"
	"math"
)

// arithmetic applies one of the numeric operators. Two ints stay int,
// anything mixed with a float64 becomes float64.
func arithmetic(name string, x, y interface{}, ints func(a, b int) int, floats func(a, b float64) float64) (interface{}, error) {
	xi, xIsInt := x.(int)
	yi, yIsInt := y.(int)
	if xIsInt && yIsInt {
		return ints(xi, yi), nil
	}
	xf, xOK := toFloat(x)
	yf, yOK := toFloat(y)
	if xOK && yOK {
		return floats(xf, yf), nil
	}
	return nil, OperandError{
		Message: fmt.Sprintf("%v of %#v and %#v not implemented", name, x, y),
		X:       x,
		Y:       y,
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Add sums numbers, and concatenates when the left operand is a string.
func Add(x, y interface{}) (interface{}, error) {
	if s, ok := x.(string); ok {
		return s + fmt.Sprint(y), nil
	}
	return arithmetic("add", x, y,
		func(a, b int) int { return a + b },
		func(a, b float64) float64 { return a + b })
}

func Sub(x, y interface{}) (interface{}, error) {
	return arithmetic("sub", x, y,
		func(a, b int) int { return a - b },
		func(a, b float64) float64 { return a - b })
}

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	}
	return true
}
