// Package dft holds the unchecked transform engine: the twiddle table, the
// brute-force reference transform, the closed-form 4-point base case, and the
// recursive and iterative fast transforms built on them.
//
// Every transform computes
//
//	X[k] = (1/N) Σ x[s]·exp(+2πi·k·s/N)
//
// where N is the length of the Table passed in. Sequences are split into
// separate real and imaginary slices. Functions in this package do not
// validate their arguments; the root package checks every precondition
// before calling in.
package dft
