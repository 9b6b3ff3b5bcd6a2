package cost

import "errors"

var (
	// ErrTooSmall is returned when a matrix has fewer than two posts. A route
	// needs at least a start and an end.
	ErrTooSmall = errors.New("cost matrix must have at least 2 posts")

	// ErrNonSquare is returned when the rows of a matrix do not all have the
	// same length as the number of rows.
	ErrNonSquare = errors.New("cost matrix must be square")

	// ErrNonZeroDiagonal is returned when a diagonal cell holds anything other
	// than 0 or [NA].
	ErrNonZeroDiagonal = errors.New("diagonal cost must be 0")

	// ErrNegativeCost is returned when a defined cell above the diagonal is
	// negative.
	ErrNegativeCost = errors.New("cost must be non-negative")

	// ErrMissingDirectEdge is returned when the (0, n-1) cell is undefined.
	// Without it a matrix is not guaranteed to have any route.
	ErrMissingDirectEdge = errors.New("direct edge from first to last post is undefined")

	// ErrUndefinedEdge is returned when a solver needs a cell that holds [NA].
	ErrUndefinedEdge = errors.New("undefined edge cost")

	// ErrIndexOutOfRange is returned when a cell lookup is outside the matrix
	// or does not satisfy i < j.
	ErrIndexOutOfRange = errors.New("post index out of range")

	// ErrInvalidPath is returned by [Matrix.PathCost] when a path does not
	// start at 0, end at n-1 and increase strictly.
	ErrInvalidPath = errors.New("invalid path")

	// ErrOverflow is returned when an accumulated cost no longer fits in an
	// int64. It reports a capacity limit, not an input defect, and is never
	// matched by [IsMalformed].
	ErrOverflow = errors.New("accumulated cost overflows int64")
)

var malformed = []error{
	ErrTooSmall,
	ErrNonSquare,
	ErrNonZeroDiagonal,
	ErrNegativeCost,
	ErrMissingDirectEdge,
	ErrUndefinedEdge,
	ErrIndexOutOfRange,
	ErrInvalidPath,
}

// IsMalformed reports whether err (or anything it wraps) signals a defect in
// the input matrix or path rather than an arithmetic limit.
func IsMalformed(err error) bool {
	for _, target := range malformed {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
