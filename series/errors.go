// SPDX-License-Identifier: MIT
package series

import "errors"

var (
	// ErrLengthMismatch indicates keys and values of differing lengths.
	ErrLengthMismatch = errors.New("series: keys and values must have the same length")
	// ErrDuplicateKey indicates a key appearing more than once at construction.
	ErrDuplicateKey = errors.New("series: duplicate key")
	// ErrKeyMismatch indicates an element-wise operation between series with
	// differing key sets.
	ErrKeyMismatch = errors.New("series: key sets do not match")
	// ErrEmptySeries indicates an aggregate that is undefined on an empty series.
	ErrEmptySeries = errors.New("series: series is empty")
)
