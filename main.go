package main

import (
	"flag"
	"log"
	"math"

	v1 "unit_tester/pkg/v1"
)

// Self-exercise program for the unit test framework. It drives the misuse
// detection paths directly, then runs every assertion kind in both passing
// and deliberately failing flavors, so the log output can be inspected end
// to end. The failing cases are intentional; the final run verdict of this
// program is expected to be false.
func main() {
	logPath := flag.String("log", "unit_test_output.txt", "run log file path")
	redisAddr := flag.String("redis", "", "optional redis address to stream log lines to")
	redisKey := flag.String("redis-key", "unit_tester:log", "redis list key for streamed log lines")
	gui := flag.Bool("gui", false, "run the desktop GUI instead of a headless run")
	flag.Parse()

	r := v1.NewRunner()
	if err := r.LogOn(*logPath); err != nil {
		log.Printf("continuing without a log file: %v", err)
	}
	defer r.LogOff()

	if *redisAddr != "" {
		sink, err := v1.OpenRedisSink(*redisAddr, "", 0, *redisKey)
		if err != nil {
			log.Printf("continuing without the redis sink: %v", err)
		} else {
			sink.Attach(r)
			defer sink.Close()
		}
	}

	// Misuse drills run directly against the runner; they exercise the guard
	// paths that a plan-wrapped suite cannot reach.
	suiteUsage(r)
	caseUsage(r)

	p := v1.NewPlan()
	p.Suite("Unit test assertion verification", func(r *v1.Runner) {
		boolAsserts(r)
		int8Asserts(r)
		uint8Asserts(r)
		int16Asserts(r)
		uint16Asserts(r)
		int32Asserts(r)
		uint32Asserts(r)
		int64Asserts(r)
		uint64Asserts(r)
		float32Asserts(r)
		float64Asserts(r)
	})

	if *gui {
		v1.RunGUI(p, r)
		return
	}

	if err := p.RunAll(r); err != nil {
		log.Printf("run finished: %v", err)
	}
	log.Printf("run succeeded: %v", r.Succeeded())
}

// suiteUsage verifies that incorrect suite nesting is detected and reported.
func suiteUsage(r *v1.Runner) {
	// start and end a test suite correctly
	r.SuiteStart("test_suite_a")
	r.SuiteEnd()

	// only 1 test suite is allowed at a time, make sure this is detected
	r.SuiteStart("test_suite_b")
	r.SuiteStart("test_suite_c")
	r.SuiteEnd()

	// try and end a test suite when one is not active
	r.SuiteStart("test_suite_d")
	r.SuiteEnd()
	r.SuiteEnd()
}

// caseUsage verifies that incorrect case nesting is detected and reported.
func caseUsage(r *v1.Runner) {
	// start and end a test case correctly
	r.CaseStart("test_case_a")
	r.CaseEnd()

	// only 1 test case is allowed at a time, make sure this is detected
	r.CaseStart("test_case_b")
	r.CaseStart("test_case_c")
	r.CaseEnd()

	// try and end a test case when one is not active
	r.CaseStart("test_case_d")
	r.CaseEnd()
	r.CaseEnd()
}

func boolAsserts(r *v1.Runner) {
	r.CaseStart("Test boolean asserts, these should pass")
	r.ExpectBoolEq(true, true)
	r.ExpectBoolNotEq(false, true)
	r.CaseEnd()

	r.CaseStart("Test boolean asserts, these should fail")
	r.ExpectBoolEq(true, false)
	r.ExpectBoolNotEq(false, false)
	r.CaseEnd()
}

func int8Asserts(r *v1.Runner) {
	r.CaseStart("Test int8 asserts, these should pass")
	r.ExpectInt8Eq(math.MaxInt8, math.MaxInt8)
	r.ExpectInt8NotEq(math.MinInt8, math.MaxInt8)
	r.ExpectInt8Eq(math.MinInt8, math.MinInt8)
	r.ExpectInt8NotEq(math.MaxInt8, math.MinInt8)
	r.CaseEnd()

	r.CaseStart("Test int8 asserts, these should fail")
	r.ExpectInt8Eq(math.MinInt8, math.MaxInt8)
	r.ExpectInt8NotEq(math.MaxInt8, math.MaxInt8)
	r.CaseEnd()
}

func uint8Asserts(r *v1.Runner) {
	r.CaseStart("Test uint8 asserts, these should pass")
	r.ExpectUint8Eq(math.MaxUint8, math.MaxUint8)
	r.ExpectUint8NotEq(0, math.MaxUint8)
	r.CaseEnd()

	r.CaseStart("Test uint8 asserts, these should fail")
	r.ExpectUint8Eq(0, math.MaxUint8)
	r.ExpectUint8NotEq(math.MaxUint8, math.MaxUint8)
	r.CaseEnd()
}

func int16Asserts(r *v1.Runner) {
	r.CaseStart("Test int16 asserts, these should pass")
	r.ExpectInt16Eq(math.MaxInt16, math.MaxInt16)
	r.ExpectInt16NotEq(math.MinInt16, math.MaxInt16)
	r.ExpectInt16Eq(math.MinInt16, math.MinInt16)
	r.ExpectInt16NotEq(math.MaxInt16, math.MinInt16)
	r.CaseEnd()

	r.CaseStart("Test int16 asserts, these should fail")
	r.ExpectInt16Eq(math.MinInt16, math.MaxInt16)
	r.ExpectInt16NotEq(math.MaxInt16, math.MaxInt16)
	r.CaseEnd()
}

func uint16Asserts(r *v1.Runner) {
	r.CaseStart("Test uint16 asserts, these should pass")
	r.ExpectUint16Eq(math.MaxUint16, math.MaxUint16)
	r.ExpectUint16NotEq(0, math.MaxUint16)
	r.CaseEnd()

	r.CaseStart("Test uint16 asserts, these should fail")
	r.ExpectUint16Eq(math.MaxUint16, 0)
	r.ExpectUint16NotEq(0, 0)
	r.CaseEnd()
}

func int32Asserts(r *v1.Runner) {
	r.CaseStart("Test int32 asserts, these should pass")
	r.ExpectInt32Eq(math.MaxInt32, math.MaxInt32)
	r.ExpectInt32NotEq(math.MinInt32, math.MaxInt32)
	r.ExpectInt32Eq(math.MinInt32, math.MinInt32)
	r.ExpectInt32NotEq(math.MaxInt32, math.MinInt32)
	r.CaseEnd()

	r.CaseStart("Test int32 asserts, these should fail")
	r.ExpectInt32Eq(math.MinInt32, math.MaxInt32)
	r.ExpectInt32NotEq(math.MaxInt32, math.MaxInt32)
	r.CaseEnd()
}

func uint32Asserts(r *v1.Runner) {
	r.CaseStart("Test uint32 asserts, these should pass")
	r.ExpectUint32Eq(math.MaxUint32, math.MaxUint32)
	r.ExpectUint32NotEq(0, math.MaxUint32)
	r.CaseEnd()

	r.CaseStart("Test uint32 asserts, these should fail")
	r.ExpectUint32Eq(0, math.MaxUint32)
	r.ExpectUint32NotEq(math.MaxUint32, math.MaxUint32)
	r.CaseEnd()
}

func int64Asserts(r *v1.Runner) {
	r.CaseStart("Test int64 asserts, these should pass")
	r.ExpectInt64Eq(math.MaxInt64, math.MaxInt64)
	r.ExpectInt64NotEq(math.MinInt64, math.MaxInt64)
	r.ExpectInt64Eq(math.MinInt64, math.MinInt64)
	r.ExpectInt64NotEq(math.MaxInt64, math.MinInt64)
	r.CaseEnd()

	r.CaseStart("Test int64 asserts, these should fail")
	r.ExpectInt64Eq(math.MinInt64, math.MaxInt64)
	r.ExpectInt64NotEq(math.MaxInt64, math.MaxInt64)
	r.CaseEnd()
}

func uint64Asserts(r *v1.Runner) {
	r.CaseStart("Test uint64 asserts, these should pass")
	r.ExpectUint64Eq(math.MaxUint64, math.MaxUint64)
	r.ExpectUint64NotEq(0, math.MaxUint64)
	r.CaseEnd()

	r.CaseStart("Test uint64 asserts, these should fail")
	r.ExpectUint64Eq(0, math.MaxUint64)
	r.ExpectUint64NotEq(math.MaxUint64, math.MaxUint64)
	r.CaseEnd()
}

func float32Asserts(r *v1.Runner) {
	r.CaseStart("Test float32 asserts, these should pass")
	r.ExpectFloat32Eq(float32(math.MaxInt32), float32(math.MaxInt32))
	r.ExpectFloat32NotEq(float32(math.MinInt32), float32(math.MaxInt32))
	r.ExpectFloat32Eq(float32(math.MinInt32), float32(math.MinInt32))
	r.ExpectFloat32NotEq(float32(math.MaxInt32), float32(math.MinInt32))
	r.CaseEnd()

	r.CaseStart("Test float32 asserts, these should fail")
	r.ExpectFloat32Eq(float32(math.MinInt32), float32(math.MaxInt32))
	r.ExpectFloat32NotEq(float32(math.MaxInt32), float32(math.MaxInt32))
	r.CaseEnd()
}

func float64Asserts(r *v1.Runner) {
	r.CaseStart("Test float64 asserts, these should pass")
	r.ExpectFloat64Eq(float64(math.MaxInt64), float64(math.MaxInt64))
	r.ExpectFloat64NotEq(float64(math.MinInt64), float64(math.MaxInt64))
	r.ExpectFloat64Eq(float64(math.MinInt64), float64(math.MinInt64))
	r.ExpectFloat64NotEq(float64(math.MaxInt64), float64(math.MinInt64))
	r.CaseEnd()

	r.CaseStart("Test float64 asserts, these should fail")
	r.ExpectFloat64Eq(float64(math.MinInt64), float64(math.MaxInt64))
	r.ExpectFloat64NotEq(float64(math.MaxInt64), float64(math.MaxInt64))
	r.CaseEnd()
}
