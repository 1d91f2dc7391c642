package kds

import "math"

// Tolerance is the absolute tolerance used for every threshold comparison
// in the design calculations (capacity vs demand, strain vs limit, moment
// vs cracking threshold). Comparing through these helpers prevents spurious
// branch flips at boundary values.
const Tolerance = 1e-9

// GreaterOrEqual reports whether a >= b within Tolerance.
func GreaterOrEqual(a, b float64) bool {
	return a-b > -Tolerance
}

// LessOrEqual reports whether a <= b within Tolerance.
func LessOrEqual(a, b float64) bool {
	return a-b < Tolerance
}

// Equal reports whether a == b within Tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
