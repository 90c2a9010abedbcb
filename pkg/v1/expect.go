package v1

// Expect variants of the Assert functions. They capture the invoking file
// name and line number automatically, so call sites do not have to thread
// the location through themselves.

// ExpectBoolEq is AssertBoolEq with the call site captured automatically.
func (r *Runner) ExpectBoolEq(expected, actual bool) {
	file, line := callSite(1)
	r.AssertBoolEq(expected, actual, file, line)
}

// ExpectBoolNotEq is AssertBoolNotEq with the call site captured automatically.
func (r *Runner) ExpectBoolNotEq(expected, actual bool) {
	file, line := callSite(1)
	r.AssertBoolNotEq(expected, actual, file, line)
}

// ExpectInt8Eq is AssertInt8Eq with the call site captured automatically.
func (r *Runner) ExpectInt8Eq(expected, actual int8) {
	file, line := callSite(1)
	r.AssertInt8Eq(expected, actual, file, line)
}

// ExpectInt8NotEq is AssertInt8NotEq with the call site captured automatically.
func (r *Runner) ExpectInt8NotEq(expected, actual int8) {
	file, line := callSite(1)
	r.AssertInt8NotEq(expected, actual, file, line)
}

// ExpectUint8Eq is AssertUint8Eq with the call site captured automatically.
func (r *Runner) ExpectUint8Eq(expected, actual uint8) {
	file, line := callSite(1)
	r.AssertUint8Eq(expected, actual, file, line)
}

// ExpectUint8NotEq is AssertUint8NotEq with the call site captured automatically.
func (r *Runner) ExpectUint8NotEq(expected, actual uint8) {
	file, line := callSite(1)
	r.AssertUint8NotEq(expected, actual, file, line)
}

// ExpectInt16Eq is AssertInt16Eq with the call site captured automatically.
func (r *Runner) ExpectInt16Eq(expected, actual int16) {
	file, line := callSite(1)
	r.AssertInt16Eq(expected, actual, file, line)
}

// ExpectInt16NotEq is AssertInt16NotEq with the call site captured automatically.
func (r *Runner) ExpectInt16NotEq(expected, actual int16) {
	file, line := callSite(1)
	r.AssertInt16NotEq(expected, actual, file, line)
}

// ExpectUint16Eq is AssertUint16Eq with the call site captured automatically.
func (r *Runner) ExpectUint16Eq(expected, actual uint16) {
	file, line := callSite(1)
	r.AssertUint16Eq(expected, actual, file, line)
}

// ExpectUint16NotEq is AssertUint16NotEq with the call site captured automatically.
func (r *Runner) ExpectUint16NotEq(expected, actual uint16) {
	file, line := callSite(1)
	r.AssertUint16NotEq(expected, actual, file, line)
}

// ExpectInt32Eq is AssertInt32Eq with the call site captured automatically.
func (r *Runner) ExpectInt32Eq(expected, actual int32) {
	file, line := callSite(1)
	r.AssertInt32Eq(expected, actual, file, line)
}

// ExpectInt32NotEq is AssertInt32NotEq with the call site captured automatically.
func (r *Runner) ExpectInt32NotEq(expected, actual int32) {
	file, line := callSite(1)
	r.AssertInt32NotEq(expected, actual, file, line)
}

// ExpectUint32Eq is AssertUint32Eq with the call site captured automatically.
func (r *Runner) ExpectUint32Eq(expected, actual uint32) {
	file, line := callSite(1)
	r.AssertUint32Eq(expected, actual, file, line)
}

// ExpectUint32NotEq is AssertUint32NotEq with the call site captured automatically.
func (r *Runner) ExpectUint32NotEq(expected, actual uint32) {
	file, line := callSite(1)
	r.AssertUint32NotEq(expected, actual, file, line)
}

// ExpectInt64Eq is AssertInt64Eq with the call site captured automatically.
func (r *Runner) ExpectInt64Eq(expected, actual int64) {
	file, line := callSite(1)
	r.AssertInt64Eq(expected, actual, file, line)
}

// ExpectInt64NotEq is AssertInt64NotEq with the call site captured automatically.
func (r *Runner) ExpectInt64NotEq(expected, actual int64) {
	file, line := callSite(1)
	r.AssertInt64NotEq(expected, actual, file, line)
}

// ExpectUint64Eq is AssertUint64Eq with the call site captured automatically.
func (r *Runner) ExpectUint64Eq(expected, actual uint64) {
	file, line := callSite(1)
	r.AssertUint64Eq(expected, actual, file, line)
}

// ExpectUint64NotEq is AssertUint64NotEq with the call site captured automatically.
func (r *Runner) ExpectUint64NotEq(expected, actual uint64) {
	file, line := callSite(1)
	r.AssertUint64NotEq(expected, actual, file, line)
}

// ExpectFloat32Eq is AssertFloat32Eq with the call site captured automatically.
func (r *Runner) ExpectFloat32Eq(expected, actual float32) {
	file, line := callSite(1)
	r.AssertFloat32Eq(expected, actual, file, line)
}

// ExpectFloat32NotEq is AssertFloat32NotEq with the call site captured automatically.
func (r *Runner) ExpectFloat32NotEq(expected, actual float32) {
	file, line := callSite(1)
	r.AssertFloat32NotEq(expected, actual, file, line)
}

// ExpectFloat64Eq is AssertFloat64Eq with the call site captured automatically.
func (r *Runner) ExpectFloat64Eq(expected, actual float64) {
	file, line := callSite(1)
	r.AssertFloat64Eq(expected, actual, file, line)
}

// ExpectFloat64NotEq is AssertFloat64NotEq with the call site captured automatically.
func (r *Runner) ExpectFloat64NotEq(expected, actual float64) {
	file, line := callSite(1)
	r.AssertFloat64NotEq(expected, actual, file, line)
}
