package exact

import (
	"github.com/irifrance/gini/logic"
	"github.com/irifrance/gini/z"
)

// lit is a short alias for the literal type the circuit builder works in.
type lit = z.Lit

// The SMT APIs the component's design notes were written against generally
// lack a native pseudo-boolean "sum of selected constants"; this file is
// the small helper those notes ask implementers to expose, built directly
// on logic.C's And/Or/Xor gates (a ripple-carry adder over little-endian
// bit vectors). It backs the fan-in balance constraint's per-path delay
// sum.

// bitsOf renders the unsigned constant k as a little-endian []bool of the
// given width; constBits turns it into c's standing true/false literals.
func bitsOf(c *logic.C, k, width int) []bool {
	out := make([]bool, width)
	for i := 0; i < width; i++ {
		out[i] = k&(1<<uint(i)) != 0
	}
	return out
}

func constBits(c *logic.C, k, width int) []lit {
	bs := bitsOf(c, k, width)
	out := make([]lit, width)
	for i, b := range bs {
		if b {
			out[i] = c.T
		} else {
			out[i] = c.F
		}
	}
	return out
}

func halfAdd(c *logic.C, a, b lit) (sum, carry lit) {
	return c.Xor(a, b), c.And(a, b)
}

func fullAdd(c *logic.C, a, b, cin lit) (sum, carry lit) {
	s1, c1 := halfAdd(c, a, b)
	s2, c2 := halfAdd(c, s1, cin)
	return s2, c.Or(c1, c2)
}

// addBits adds two little-endian bit vectors, returning a vector one bit
// wider than the longer input (to hold a possible final carry).
func addBits(c *logic.C, a, b []lit) []lit {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}
	width++
	out := make([]lit, width)
	carry := c.F
	for i := 0; i < width; i++ {
		ai, bi := c.F, c.F
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i], carry = fullAdd(c, ai, bi, carry)
	}
	return out
}

// iteWeight returns the little-endian encoding of weight when selected
// holds, else zero, every bit built with a single logic.C Choice gate.
func iteWeight(c *logic.C, selected lit, weight, width int) []lit {
	k := constBits(c, weight, width)
	out := make([]lit, width)
	for i := range out {
		out[i] = c.Choice(selected, k[i], c.F)
	}
	return out
}

// oneHotValue converts a one-hot group of literals (group[i] means "value
// is i") into its little-endian binary encoding.
func oneHotValue(c *logic.C, group []lit, width int) []lit {
	acc := constBits(c, 0, width)
	for v, bit := range group {
		acc = addBits(c, acc, iteWeight(c, bit, v, width))
	}
	return acc
}

// sumAll adds every term together, starting from zero.
func sumAll(c *logic.C, terms [][]lit) []lit {
	acc := []lit{c.F}
	for _, t := range terms {
		acc = addBits(c, acc, t)
	}
	return acc
}

// equalBits asserts a == b, zero-extending the shorter operand.
func equalBits(c *logic.C, a, b []lit) lit {
	width := len(a)
	if len(b) > width {
		width = len(b)
	}
	eqs := make([]lit, 0, width)
	for i := 0; i < width; i++ {
		ai, bi := c.F, c.F
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		eqs = append(eqs, c.Or(c.And(ai, bi), c.And(ai.Not(), bi.Not())))
	}
	return c.Ands(eqs...)
}
