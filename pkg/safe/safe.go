// Package safe converts between integer widths and fails instead of wrapping around.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32. Round numbers and spec versions travel as uint32.
func Uint32[T Integer](v T) (uint32, error) {
	if isNegative(v) || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64. Block heights travel as uint64.
func Uint64[T Integer](v T) (uint64, error) {
	if isNegative(v) {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts v to int64, the width of BIGINT and of task entity ids.
func Int64[T Integer](v T) (int64, error) {
	if !isNegative(v) && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

func isNegative[T Integer](v T) bool {
	var zero T
	return v < zero
}
