// File: weight.go
// Role: Resolution of the default ("unit") edge weight for a weight type.

package core

// unitWeight returns the value AddUnitEdge stores for weight type W:
// 1 for every built-in numeric kind, the zero value for anything else.
// Named numeric types (type Cost int) are not built-in kinds and get zero.
func unitWeight[W any]() W {
	var zero W
	var u any
	switch any(zero).(type) {
	case int:
		u = int(1)
	case int8:
		u = int8(1)
	case int16:
		u = int16(1)
	case int32:
		u = int32(1)
	case int64:
		u = int64(1)
	case uint:
		u = uint(1)
	case uint8:
		u = uint8(1)
	case uint16:
		u = uint16(1)
	case uint32:
		u = uint32(1)
	case uint64:
		u = uint64(1)
	case uintptr:
		u = uintptr(1)
	case float32:
		u = float32(1)
	case float64:
		u = float64(1)
	case complex64:
		u = complex64(1)
	case complex128:
		u = complex128(1)
	default:
		return zero
	}

	return u.(W)
}
