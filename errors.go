package algodft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when a transform size is not valid for the
	// requested strategy. Plans need a positive length; the recursive
	// strategy needs an even length; the iterative strategy needs 4·2^k.
	ErrInvalidLength = errors.New("algodft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algodft: nil slice")

	// ErrLengthMismatch is returned when a sequence's real and imaginary parts
	// differ in length, or a sequence is shorter than the Plan requires.
	ErrLengthMismatch = errors.New("algodft: slice length mismatch")

	// ErrInvalidStride is returned when a stride is < 1 or when size·stride
	// does not equal the Plan length.
	ErrInvalidStride = errors.New("algodft: invalid stride")

	// ErrIndexOutOfRange is returned by BitReverse for an index outside [0, limit).
	ErrIndexOutOfRange = errors.New("algodft: index out of range")

	// ErrUnknownStrategy is returned for a Strategy value or name that does not
	// name a transform.
	ErrUnknownStrategy = errors.New("algodft: unknown strategy")
)
