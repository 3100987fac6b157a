// Package algodft computes the complex discrete Fourier transform with three
// interchangeable algorithms and checks the fast ones against the slow one.
//
// A Plan fixes the transform length N and precomputes its twiddle table.
// Every strategy of a Plan computes the same 1/N-normalized transform
//
//	X[k] = (1/N) Σ x[s]·exp(+2πi·k·s/N)
//
// Strategies:
//
//   - StrategyReference: direct O(N²) summation, any N.
//   - StrategyRecursive: radix-2 decimation in time with a closed-form
//     4-point floor, any even N. Odd halves fall back to direct summation.
//   - StrategyIterative: bit-reversed 4-point scatter plus in-place
//     butterfly passes, N = 4·2^k.
//   - StrategyGonum, StrategyGoDSP: third-party FFTs adapted to the same
//     convention, used as independent cross-checks.
//
// Sequences are split into real and imaginary float64 slices. Buffers are
// owned by the caller; transforms write only into the destination.
//
// Basic usage:
//
//	plan, err := algodft.NewPlan(4096)
//	if err != nil {
//	    return err
//	}
//	src := algodft.NewSequence(4096)
//	dst := algodft.NewSequence(4096)
//	// fill src ...
//	if err := plan.Iterative(dst, src); err != nil {
//	    return err
//	}
//	report, err := plan.Verify(src, 0)
package algodft
