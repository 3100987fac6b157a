package math

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReverseIndex returns i with its lower log2(limit) bits reversed.
// limit must be a power of 2 and 0 <= i < limit; neither is checked.
func BitReverseIndex(i, limit int) int {
	return ReverseBits(i, Log2(limit))
}

// IsPowerOf2 reports whether n is a positive power of 2.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IsRadix4Chain reports whether n = 4·2^k for some k >= 0, i.e. n can be
// halved repeatedly down to a 4-point base block.
func IsRadix4Chain(n int) bool {
	return n >= 4 && IsPowerOf2(n)
}
