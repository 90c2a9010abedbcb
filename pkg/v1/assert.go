package v1

import (
	"fmt"
	"math"
	"path/filepath"
	"runtime"
)

// maxMsgLen is the maximum length of an assertion failure message. Longer
// messages are truncated, never grown; the formatted output stays bounded
// regardless of the values involved.
const maxMsgLen = 100

// maxFloatRelativeError determines how close two floating point numbers need
// to be, relative to their magnitude, in order to be considered equal.
const maxFloatRelativeError = 1.0e-5 // 99.999% accuracy

// maxFloatAbsoluteError is used when floats are very close to zero, but
// possibly of different signs.
const maxFloatAbsoluteError = 1.0e-37

// truncate caps a failure message at maxMsgLen.
func truncate(msg string) string {
	if len(msg) > maxMsgLen {
		return msg[:maxMsgLen]
	}
	return msg
}

// callSite resolves the file name and line number skip frames above the
// caller of callSite.
func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}

// Caller returns the file name and line number of its call site, for passing
// to the Assert functions.
func Caller() (string, int) {
	return callSite(1)
}

// assertEq fails the current case unless expected and actual are identical.
// The supported scalar kinds are the closed list of exported Assert methods
// below; this core is shared by all of the exact-value kinds.
func assertEq[T comparable](r *Runner, expected, actual T, file string, line int) {
	if expected != actual {
		r.assertFailed(file, line,
			truncate(fmt.Sprintf(" expected: %v, got: %v", expected, actual)))
	}
}

// assertNotEq fails the current case if expected and actual are identical.
func assertNotEq[T comparable](r *Runner, expected, actual T, file string, line int) {
	if expected == actual {
		r.assertFailed(file, line,
			truncate(fmt.Sprintf(" should not be: %v", expected)))
	}
}

// float64Equal compares two floating point numbers for equality within the
// configured tolerances. Zero operands are handled explicitly to avoid any
// divide-by-zero issue, and the relative error divides by whichever operand
// has the larger magnitude.
func float64Equal(expected, actual float64) bool {
	if expected == 0.0 {
		return math.Abs(actual) < maxFloatAbsoluteError
	}
	if actual == 0.0 {
		return math.Abs(expected) < maxFloatAbsoluteError
	}
	if math.Abs(expected-actual) < maxFloatAbsoluteError {
		return true
	}

	var relativeError float64
	if math.Abs(expected) > math.Abs(actual) {
		relativeError = math.Abs((expected - actual) / expected)
	} else {
		relativeError = math.Abs((actual - expected) / actual)
	}
	return relativeError < maxFloatRelativeError
}

// AssertBoolEq fails the current case if the bool values are not equal.
func (r *Runner) AssertBoolEq(expected, actual bool, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertBoolNotEq fails the current case if the bool values are equal.
func (r *Runner) AssertBoolNotEq(expected, actual bool, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertInt8Eq fails the current case if the int8 values are not equal.
func (r *Runner) AssertInt8Eq(expected, actual int8, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertInt8NotEq fails the current case if the int8 values are equal.
func (r *Runner) AssertInt8NotEq(expected, actual int8, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertUint8Eq fails the current case if the uint8 values are not equal.
func (r *Runner) AssertUint8Eq(expected, actual uint8, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertUint8NotEq fails the current case if the uint8 values are equal.
func (r *Runner) AssertUint8NotEq(expected, actual uint8, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertInt16Eq fails the current case if the int16 values are not equal.
func (r *Runner) AssertInt16Eq(expected, actual int16, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertInt16NotEq fails the current case if the int16 values are equal.
func (r *Runner) AssertInt16NotEq(expected, actual int16, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertUint16Eq fails the current case if the uint16 values are not equal.
func (r *Runner) AssertUint16Eq(expected, actual uint16, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertUint16NotEq fails the current case if the uint16 values are equal.
func (r *Runner) AssertUint16NotEq(expected, actual uint16, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertInt32Eq fails the current case if the int32 values are not equal.
func (r *Runner) AssertInt32Eq(expected, actual int32, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertInt32NotEq fails the current case if the int32 values are equal.
func (r *Runner) AssertInt32NotEq(expected, actual int32, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertUint32Eq fails the current case if the uint32 values are not equal.
func (r *Runner) AssertUint32Eq(expected, actual uint32, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertUint32NotEq fails the current case if the uint32 values are equal.
func (r *Runner) AssertUint32NotEq(expected, actual uint32, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertInt64Eq fails the current case if the int64 values are not equal.
func (r *Runner) AssertInt64Eq(expected, actual int64, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertInt64NotEq fails the current case if the int64 values are equal.
func (r *Runner) AssertInt64NotEq(expected, actual int64, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertUint64Eq fails the current case if the uint64 values are not equal.
func (r *Runner) AssertUint64Eq(expected, actual uint64, file string, line int) {
	assertEq(r, expected, actual, file, line)
}

// AssertUint64NotEq fails the current case if the uint64 values are equal.
func (r *Runner) AssertUint64NotEq(expected, actual uint64, file string, line int) {
	assertNotEq(r, expected, actual, file, line)
}

// AssertFloat32Eq fails the current case if the float32 values are not equal
// within tolerance. Both operands are widened to float64 and compared by the
// shared comparator; the precision loss of the narrower type falls inside the
// tolerance band.
func (r *Runner) AssertFloat32Eq(expected, actual float32, file string, line int) {
	r.AssertFloat64Eq(float64(expected), float64(actual), file, line)
}

// AssertFloat32NotEq fails the current case if the float32 values are equal
// within tolerance.
func (r *Runner) AssertFloat32NotEq(expected, actual float32, file string, line int) {
	r.AssertFloat64NotEq(float64(expected), float64(actual), file, line)
}

// AssertFloat64Eq fails the current case if the float64 values are not equal
// within tolerance.
func (r *Runner) AssertFloat64Eq(expected, actual float64, file string, line int) {
	if !float64Equal(expected, actual) {
		r.assertFailed(file, line,
			truncate(fmt.Sprintf(" expected: %e, got: %e", expected, actual)))
	}
}

// AssertFloat64NotEq fails the current case if the float64 values are equal
// within tolerance.
func (r *Runner) AssertFloat64NotEq(expected, actual float64, file string, line int) {
	if float64Equal(expected, actual) {
		r.assertFailed(file, line,
			truncate(fmt.Sprintf(" should not be: %e", expected)))
	}
}
