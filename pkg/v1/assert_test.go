package v1

import (
	"math"
	"strings"
	"testing"
)

// failDelta runs fn and reports how many assertion failures it produced.
func failDelta(r *Runner, fn func()) int {
	before := r.failCount
	fn()
	return r.failCount - before
}

func TestExactKindsEqualValuesNeverFailEq(t *testing.T) {
	r := NewRunner()

	if n := failDelta(r, func() {
		r.AssertBoolEq(true, true, "f", 1)
		r.AssertBoolEq(false, false, "f", 1)
		r.AssertInt8Eq(math.MaxInt8, math.MaxInt8, "f", 1)
		r.AssertInt8Eq(math.MinInt8, math.MinInt8, "f", 1)
		r.AssertUint8Eq(math.MaxUint8, math.MaxUint8, "f", 1)
		r.AssertInt16Eq(math.MinInt16, math.MinInt16, "f", 1)
		r.AssertUint16Eq(math.MaxUint16, math.MaxUint16, "f", 1)
		r.AssertInt32Eq(math.MaxInt32, math.MaxInt32, "f", 1)
		r.AssertUint32Eq(math.MaxUint32, math.MaxUint32, "f", 1)
		r.AssertInt64Eq(math.MinInt64, math.MinInt64, "f", 1)
		r.AssertUint64Eq(math.MaxUint64, math.MaxUint64, "f", 1)
	}); n != 0 {
		t.Errorf("Eq on identical values failed %d times", n)
	}
	if !r.Succeeded() {
		t.Error("no failure should have been recorded")
	}
}

func TestExactKindsEqualValuesAlwaysFailNotEq(t *testing.T) {
	r := NewRunner()

	checks := []func(){
		func() { r.AssertBoolNotEq(true, true, "f", 1) },
		func() { r.AssertInt8NotEq(math.MinInt8, math.MinInt8, "f", 1) },
		func() { r.AssertUint8NotEq(0, 0, "f", 1) },
		func() { r.AssertInt16NotEq(math.MaxInt16, math.MaxInt16, "f", 1) },
		func() { r.AssertUint16NotEq(math.MaxUint16, math.MaxUint16, "f", 1) },
		func() { r.AssertInt32NotEq(-1, -1, "f", 1) },
		func() { r.AssertUint32NotEq(math.MaxUint32, math.MaxUint32, "f", 1) },
		func() { r.AssertInt64NotEq(math.MaxInt64, math.MaxInt64, "f", 1) },
		func() { r.AssertUint64NotEq(math.MaxUint64, math.MaxUint64, "f", 1) },
	}
	for i, fn := range checks {
		if n := failDelta(r, fn); n != 1 {
			t.Errorf("check %d: NotEq on identical values should fail exactly once, failed %d times", i, n)
		}
	}
}

func TestExactKindsDifferentValues(t *testing.T) {
	r := NewRunner()

	if n := failDelta(r, func() {
		r.AssertInt8Eq(math.MinInt8, math.MaxInt8, "f", 1)
	}); n != 1 {
		t.Errorf("Eq on different values should fail, delta %d", n)
	}

	if n := failDelta(r, func() {
		r.AssertInt8NotEq(math.MinInt8, math.MaxInt8, "f", 1)
	}); n != 0 {
		t.Errorf("NotEq on different values should pass, delta %d", n)
	}
}

func TestNoShortCircuitWithinCase(t *testing.T) {
	r := NewRunner()

	r.CaseStart("all evaluated")
	n := failDelta(r, func() {
		r.AssertUint8Eq(1, 2, "f", 1)
		r.AssertUint8Eq(3, 4, "f", 2)
		r.AssertUint8Eq(5, 6, "f", 3)
	})
	r.CaseEnd()

	if n != 3 {
		t.Errorf("every assertion must be evaluated independently, got %d failures", n)
	}
}

func TestFloatZeroOperandUsesAbsoluteThreshold(t *testing.T) {
	r := NewRunner()

	if n := failDelta(r, func() { r.AssertFloat64Eq(0.0, 1.0e-38, "f", 1) }); n != 0 {
		t.Error("eq(0.0, 1e-38) should pass: below the absolute threshold")
	}
	if n := failDelta(r, func() { r.AssertFloat64Eq(0.0, 1.0e-36, "f", 1) }); n != 1 {
		t.Error("eq(0.0, 1e-36) should fail: above the absolute threshold")
	}
	if n := failDelta(r, func() { r.AssertFloat64Eq(1.0e-38, 0.0, "f", 1) }); n != 0 {
		t.Error("eq(1e-38, 0.0) should pass: zero actual uses the absolute threshold")
	}
}

func TestFloatRelativeTolerance(t *testing.T) {
	r := NewRunner()

	if n := failDelta(r, func() { r.AssertFloat64Eq(1.0, 1.0+1.0e-6, "f", 1) }); n != 0 {
		t.Error("eq(1.0, 1.0+1e-6) should pass within relative tolerance")
	}
	if n := failDelta(r, func() { r.AssertFloat64Eq(1.0, 1.1, "f", 1) }); n != 1 {
		t.Error("eq(1.0, 1.1) should fail")
	}
	// tolerance scales with magnitude
	if n := failDelta(r, func() { r.AssertFloat64Eq(1.0e9, 1.0e9+1.0, "f", 1) }); n != 0 {
		t.Error("eq(1e9, 1e9+1) should pass within relative tolerance")
	}
	// sign matters
	if n := failDelta(r, func() { r.AssertFloat64Eq(-1.0, 1.0, "f", 1) }); n != 1 {
		t.Error("eq(-1.0, 1.0) should fail")
	}
}

func TestFloatNotEqInverts(t *testing.T) {
	r := NewRunner()

	if n := failDelta(r, func() { r.AssertFloat64NotEq(1.0, 1.0+1.0e-6, "f", 1) }); n != 1 {
		t.Error("notEq should fail for values within tolerance")
	}
	if n := failDelta(r, func() { r.AssertFloat64NotEq(1.0, 1.1, "f", 1) }); n != 0 {
		t.Error("notEq should pass for values outside tolerance")
	}
}

func TestFloat32WidensToSharedComparator(t *testing.T) {
	r := NewRunner()

	if n := failDelta(r, func() { r.AssertFloat32Eq(1.0, 1.0+1.0e-6, "f", 1) }); n != 0 {
		t.Error("float32 eq within tolerance should pass")
	}
	if n := failDelta(r, func() { r.AssertFloat32Eq(1.0, 1.1, "f", 1) }); n != 1 {
		t.Error("float32 eq(1.0, 1.1) should fail")
	}
}

func TestFloat64EqualRelativeErrorDivisor(t *testing.T) {
	// the relative error must divide by the larger-magnitude operand, so
	// the check is symmetric in its arguments
	if float64Equal(1.0e-9, 2.0e-9) != float64Equal(2.0e-9, 1.0e-9) {
		t.Error("comparator should be symmetric")
	}
	if float64Equal(100.0, 100.002) {
		t.Error("relative error of 2e-5 should not be equal")
	}
	if !float64Equal(100.0, 100.0002) {
		t.Error("relative error of 2e-6 should be equal")
	}
}

func TestFailureMessageFormats(t *testing.T) {
	r := NewRunner()
	var last LogEntry
	r.RegisterLogHandler(func(e LogEntry) { last = e })

	r.AssertUint8Eq(1, 2, "file.go", 10)
	if !strings.Contains(last.Detail, " expected: 1, got: 2") {
		t.Errorf("unexpected eq message: %q", last.Detail)
	}
	if !strings.Contains(last.Detail, "File: file.go, Line 10") {
		t.Errorf("missing call site: %q", last.Detail)
	}

	r.AssertUint8NotEq(7, 7, "file.go", 11)
	if !strings.Contains(last.Detail, " should not be: 7") {
		t.Errorf("unexpected notEq message: %q", last.Detail)
	}
}

func TestMessageTruncation(t *testing.T) {
	long := strings.Repeat("x", 3*maxMsgLen)
	if got := truncate(long); len(got) != maxMsgLen {
		t.Errorf("expected truncation to %d bytes, got %d", maxMsgLen, len(got))
	}
	if got := truncate("short"); got != "short" {
		t.Errorf("short messages must pass through unchanged, got %q", got)
	}
}

func TestExpectCapturesCallSite(t *testing.T) {
	r := NewRunner()
	var last LogEntry
	r.RegisterLogHandler(func(e LogEntry) { last = e })

	r.ExpectUint32Eq(1, 2)

	if !strings.Contains(last.Detail, "assert_test.go") {
		t.Errorf("expected the failure to name this test file, got %q", last.Detail)
	}
}

func TestCallerReturnsThisFile(t *testing.T) {
	file, line := Caller()
	if file != "assert_test.go" {
		t.Errorf("expected assert_test.go, got %q", file)
	}
	if line <= 0 {
		t.Errorf("expected a positive line number, got %d", line)
	}
}
