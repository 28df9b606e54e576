// Package calculator provides integer arithmetic.
package calculator

// SimpleCalculator adds integers. It has no state; the zero value is ready to use.
type SimpleCalculator struct{}

// Add returns a + b. Overflow wraps like any Go int addition.
func (SimpleCalculator) Add(a, b int) int {
	return a + b
}
