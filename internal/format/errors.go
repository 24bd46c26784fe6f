package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a read.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNegativeLength indicates a count prefix was negative.
	ErrNegativeLength = errors.New("format: negative length")
	// ErrTooLong indicates a byte run exceeded its length prefix capacity.
	ErrTooLong = errors.New("format: length exceeds prefix capacity")
)
