package element

import (
	"math"
	"testing"
)

// identityOnZeroSlope checks the zero-slope convention: every value comes
// back untouched no matter the intercept.
func identityOnZeroSlope[T Value](t *testing.T, values []T) {
	t.Helper()
	for _, intercept := range []float32{0, 1, -273.15, 1e20} {
		for _, v := range values {
			if got := Transform(v, 0, intercept); got != v {
				t.Errorf("Transform(%v, 0, %v): expected identity, got %v", v, intercept, got)
			}
		}
	}
}

func TestTransformZeroSlopeIdentity(t *testing.T) {
	identityOnZeroSlope(t, []uint8{0, 1, 255})
	identityOnZeroSlope(t, []int8{-128, 0, 127})
	identityOnZeroSlope(t, []uint16{0, 1, 65535})
	identityOnZeroSlope(t, []int16{-32768, 0, 32767})
	identityOnZeroSlope(t, []uint32{0, 1, math.MaxUint32})
	identityOnZeroSlope(t, []int32{math.MinInt32, 0, math.MaxInt32})
	identityOnZeroSlope(t, []uint64{0, 1, math.MaxUint64})
	identityOnZeroSlope(t, []int64{math.MinInt64, 0, math.MaxInt64})
	identityOnZeroSlope(t, []float32{0, -1.5, math.MaxFloat32})
	identityOnZeroSlope(t, []float64{0, -1.5, math.MaxFloat64})
}

func TestTransformConcrete(t *testing.T) {
	// The canonical example: stored u16 code 1 with slope 2, intercept 1
	// rescales to 3.
	if got := Transform(uint16(1), 2.0, 1.0); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestTransformFloatNative(t *testing.T) {
	if got := Transform(float32(1.5), 2.0, 0.25); got != 3.25 {
		t.Errorf("float32: expected 3.25, got %v", got)
	}
	if got := Transform(float64(-2.0), 0.5, 0.125); got != -0.875 {
		t.Errorf("float64: expected -0.875, got %v", got)
	}
	// Floats are not clamped: overflow follows IEEE semantics.
	if got := Transform(float32(math.MaxFloat32), 2.0, 0.0); !math.IsInf(float64(got), 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}

func TestTransformIntegerSaturation(t *testing.T) {
	// Conversion back from the working float truncates toward zero,
	// saturates at the target range, and maps NaN to zero.
	if got := Transform(uint8(250), 2.0, 0.0); got != 255 {
		t.Errorf("uint8 high: expected 255, got %d", got)
	}
	if got := Transform(uint8(5), -1.0, 0.0); got != 0 {
		t.Errorf("uint8 low: expected 0, got %d", got)
	}
	if got := Transform(uint8(200), 1.0, 54.4); got != 254 {
		t.Errorf("uint8 truncation: expected 254, got %d", got)
	}
	if got := Transform(int16(30000), 2.0, 0.0); got != 32767 {
		t.Errorf("int16 high: expected 32767, got %d", got)
	}
	if got := Transform(int16(30000), -2.0, 0.0); got != -32768 {
		t.Errorf("int16 low: expected -32768, got %d", got)
	}
	if got := Transform(int64(1<<40), 1e10, 0.0); got != math.MaxInt64 {
		t.Errorf("int64 high: expected MaxInt64, got %d", got)
	}
	if got := Transform(uint64(1<<40), -1.0, 0.0); got != 0 {
		t.Errorf("uint64 low: expected 0, got %d", got)
	}
	// 0 * +Inf is NaN in the working precision.
	if got := Transform(uint8(0), float32(math.Inf(1)), 0.0); got != 0 {
		t.Errorf("NaN: expected 0, got %d", got)
	}
}

// saturatesAt drives the working float past both ends of the range and
// checks the clamp lands exactly on the type's extremes.
func saturatesAt[T Value](t *testing.T, loV, hiV T) {
	t.Helper()
	var zero T
	if got := Transform(zero, 1, float32(math.Inf(1))); got != hiV {
		t.Errorf("Transform(%T, +Inf intercept): expected %v, got %v", zero, hiV, got)
	}
	if got := Transform(zero, 1, float32(math.Inf(-1))); got != loV {
		t.Errorf("Transform(%T, -Inf intercept): expected %v, got %v", zero, loV, got)
	}
}

func TestTransformSaturationExtremes(t *testing.T) {
	saturatesAt(t, uint8(0), uint8(math.MaxUint8))
	saturatesAt(t, int8(math.MinInt8), int8(math.MaxInt8))
	saturatesAt(t, uint16(0), uint16(math.MaxUint16))
	saturatesAt(t, int16(math.MinInt16), int16(math.MaxInt16))
	saturatesAt(t, uint32(0), uint32(math.MaxUint32))
	saturatesAt(t, int32(math.MinInt32), int32(math.MaxInt32))
	saturatesAt(t, uint64(0), uint64(math.MaxUint64))
	saturatesAt(t, int64(math.MinInt64), int64(math.MaxInt64))
}

func TestTransform64BitPrecision(t *testing.T) {
	// Slope 2 and intercept 10 have exact float32 inverses (0.5, -5), so a
	// forward/backward pass isolates the float64 rounding of the wide
	// value itself: relative error stays below 2^-50. A float32 working
	// precision would be off by roughly v*2^-24 here.
	const slope, intercept float32 = 2.0, 10.0
	const invSlope, invIntercept float32 = 0.5, -5.0

	u := uint64(1234567890123456789)
	ru := Transform(Transform(u, slope, intercept), invSlope, invIntercept)
	var du uint64
	if ru > u {
		du = ru - u
	} else {
		du = u - ru
	}
	if float64(du) > float64(u)/math.Pow(2, 50) {
		t.Errorf("uint64: |%d - %d| = %d exceeds relative bound 2^-50", ru, u, du)
	}
	if du == 0 {
		// The bound must be doing real work: the value is wide enough that
		// a float32 path could not round-trip it.
		if uint64(float32(u)) == u {
			t.Error("test value fits float32 exactly; pick a wider one")
		}
	}

	i := int64(-987654321987654321)
	ri := Transform(Transform(i, slope, intercept), invSlope, invIntercept)
	di := ri - i
	if di < 0 {
		di = -di
	}
	if float64(di) > float64(-i)/math.Pow(2, 50) {
		t.Errorf("int64: |%d - %d| = %d exceeds relative bound 2^-50", ri, i, di)
	}
}

// bulkMatchesScalar checks TransformMany against element-wise Transform and
// TransformManyInPlace against TransformMany on a copy.
func bulkMatchesScalar[T Value](t *testing.T, values []T, slope, intercept float32) {
	t.Helper()
	many := TransformMany(values, slope, intercept)
	if len(many) != len(values) {
		t.Fatalf("expected %d elements, got %d", len(values), len(many))
	}
	for i, v := range values {
		if want := Transform(v, slope, intercept); many[i] != want {
			t.Errorf("element %d: TransformMany %v != Transform %v", i, many[i], want)
		}
	}

	inPlace := make([]T, len(values))
	copy(inPlace, values)
	TransformManyInPlace(inPlace, slope, intercept)
	for i := range many {
		if inPlace[i] != many[i] {
			t.Errorf("element %d: in-place %v != copy %v", i, inPlace[i], many[i])
		}
	}
}

func TestTransformBulkScalarEquivalence(t *testing.T) {
	bulkMatchesScalar(t, []uint8{0, 1, 100, 255}, 1.5, -2)
	bulkMatchesScalar(t, []int8{-128, -1, 0, 127}, 0.25, 3)
	bulkMatchesScalar(t, []uint16{0, 256, 65535}, 2, 1)
	bulkMatchesScalar(t, []int16{-32768, 0, 32767}, -1, 0.5)
	bulkMatchesScalar(t, []uint32{0, 1 << 20, math.MaxUint32}, 0.125, 7)
	bulkMatchesScalar(t, []int32{math.MinInt32, 0, math.MaxInt32}, 3, -9)
	bulkMatchesScalar(t, []uint64{0, 1 << 50, math.MaxUint64}, 2, 10)
	bulkMatchesScalar(t, []int64{math.MinInt64, 0, math.MaxInt64}, 0.5, -5)
	bulkMatchesScalar(t, []float32{-1.5, 0, 2.25}, 4, 0.5)
	bulkMatchesScalar(t, []float64{-1.5, 0, 2.25}, 4, 0.5)
}

func TestTransformManyLeavesInputUntouched(t *testing.T) {
	values := []int32{1, 2, 3}
	TransformMany(values, 10, 5)
	for i, want := range []int32{1, 2, 3} {
		if values[i] != want {
			t.Errorf("element %d: input mutated to %d", i, values[i])
		}
	}
}
