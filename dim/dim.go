// SPDX-License-Identifier: MIT

// Package dim carries vector and matrix dimensions at the type level.
//
// A dimension is any type with a Len method; its zero value is never stored,
// only instantiated to read the length. Because dimensions are type
// parameters, combining a 3-vector with a 4×4 matrix is a compile error
// rather than a runtime check.
//
// Predefined dimensions D1..D10 cover the common small cases. Larger or
// domain-specific sizes are declared the same way:
//
//	type D34 struct{}
//
//	func (D34) Len() int { return 34 }
package dim

// Dim reports a fixed, positive length.
// Implementations must be stateless: Len must return the same value for
// every value of the type, including the zero value.
type Dim interface {
	Len() int
}

// Len returns the length carried by N.
// Complexity: O(1).
func Len[N Dim]() int {
	var n N

	return n.Len()
}

// D1 is the dimension 1.
type D1 struct{}

// D2 is the dimension 2.
type D2 struct{}

// D3 is the dimension 3.
type D3 struct{}

// D4 is the dimension 4.
type D4 struct{}

// D5 is the dimension 5.
type D5 struct{}

// D6 is the dimension 6.
type D6 struct{}

// D7 is the dimension 7.
type D7 struct{}

// D8 is the dimension 8.
type D8 struct{}

// D9 is the dimension 9.
type D9 struct{}

// D10 is the dimension 10.
type D10 struct{}

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }
func (D9) Len() int { return 9 }
func (D10) Len() int { return 10 }
