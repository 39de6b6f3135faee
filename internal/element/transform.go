package element

import "math"

// Affine Rescale Strategy
//
// value' = value*slope + intercept runs in a working precision chosen per
// element type: float32 for the narrow integers, float64 for the 64-bit
// integers (float32 cannot hold their range without precision loss), and
// the element's own type for floats. The strategy and, for integer targets,
// the saturation range are bound when the transformer is built; bulk
// operations resolve them once and never branch on the type inside a loop.
//
// A slope of exactly 0 is the NIfTI header convention for "no rescale" and
// returns the value bit-for-bit unchanged before any arithmetic.

type transformFunc[T Value] func(v T, slope, intercept float32) T

// transformerFor returns the transform bound to T's strategy.
func transformerFor[T Value]() transformFunc[T] {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return viaNative[T]
	case uint64, int64:
		lo, hi, loV, hiV := intRange[T]()
		return viaFloat64(lo, hi, loV, hiV)
	default:
		lo, hi, loV, hiV := intRange[T]()
		return viaFloat32(lo, hi, loV, hiV)
	}
}

// Transform applies the affine rescale to a single value.
func Transform[T Value](v T, slope, intercept float32) T {
	return transformerFor[T]()(v, slope, intercept)
}

// TransformMany applies the rescale to every value in sequence order,
// returning a new slice and leaving the input untouched.
func TransformMany[T Value](values []T, slope, intercept float32) []T {
	fn := transformerFor[T]()
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = fn(v, slope, intercept)
	}
	return out
}

// TransformManyInPlace applies the rescale to every value in sequence order,
// mutating the caller's slice. The caller must hold exclusive access to the
// slice for the duration of the call.
func TransformManyInPlace[T Value](values []T, slope, intercept float32) {
	fn := transformerFor[T]()
	for i, v := range values {
		values[i] = fn(v, slope, intercept)
	}
}

// viaNative computes the rescale in the element's own type. Slope and
// intercept are converted once per element; no narrowing occurs.
func viaNative[T Value](v T, slope, intercept float32) T {
	if slope == 0 {
		return v
	}
	return v*T(slope) + T(intercept)
}

// viaFloat32 builds a transform that works through float32 and narrows the
// result back to the integer element with saturation.
func viaFloat32[T Value](lo, hi float64, loV, hiV T) transformFunc[T] {
	return func(v T, slope, intercept float32) T {
		if slope == 0 {
			return v
		}
		x := float32(v)*slope + intercept
		return narrow(float64(x), lo, hi, loV, hiV)
	}
}

// viaFloat64 builds a transform that works through float64 for the 64-bit
// integer elements.
func viaFloat64[T Value](lo, hi float64, loV, hiV T) transformFunc[T] {
	return func(v T, slope, intercept float32) T {
		if slope == 0 {
			return v
		}
		x := float64(v)*float64(slope) + float64(intercept)
		return narrow(x, lo, hi, loV, hiV)
	}
}

// narrow converts a working-precision result back to an integer element:
// truncate toward zero, saturate at the type's range, NaN to zero. Go's
// out-of-range float-to-int conversion is implementation-defined, so the
// clamp is explicit. hi is an exclusive bound because the largest 64-bit
// integers are not exactly representable in float64.
func narrow[T Value](x, lo, hi float64, loV, hiV T) T {
	if math.IsNaN(x) {
		var zero T
		return zero
	}
	x = math.Trunc(x)
	if x < lo {
		return loV
	}
	if x >= hi {
		return hiV
	}
	return T(x)
}

// intRange reports the saturation range for an integer element type: an
// inclusive float lower bound, an exclusive float upper bound (the power of
// two just above the type's maximum), and the extreme values of the type
// itself. The extremes pass through variables because a constant converted
// to a type parameter must be representable in every type of the constraint
// set.
func intRange[T Value]() (lo, hi float64, loV, hiV T) {
	switch any(*new(T)).(type) {
	case uint8:
		maxV := uint8(math.MaxUint8)
		return 0, 1 << 8, loV, T(maxV)
	case int8:
		minV, maxV := int8(math.MinInt8), int8(math.MaxInt8)
		return math.MinInt8, 1 << 7, T(minV), T(maxV)
	case uint16:
		maxV := uint16(math.MaxUint16)
		return 0, 1 << 16, loV, T(maxV)
	case int16:
		minV, maxV := int16(math.MinInt16), int16(math.MaxInt16)
		return math.MinInt16, 1 << 15, T(minV), T(maxV)
	case uint32:
		maxV := uint32(math.MaxUint32)
		return 0, 1 << 32, loV, T(maxV)
	case int32:
		minV, maxV := int32(math.MinInt32), int32(math.MaxInt32)
		return math.MinInt32, 1 << 31, T(minV), T(maxV)
	case uint64:
		maxV := uint64(math.MaxUint64)
		return 0, 1 << 64, loV, T(maxV)
	case int64:
		minV, maxV := int64(math.MinInt64), int64(math.MaxInt64)
		return math.MinInt64, 1 << 63, T(minV), T(maxV)
	}
	return 0, 0, loV, hiV
}
