package v1

import (
	"fmt"
	"os"
	"sync"
)

// Runner owns the state of one unit test run: the active suite and case,
// the verdict of the current case and the overall run, and the log sink.
// A Runner is meant to be driven from a single goroutine; only handler
// registration is guarded for concurrent use. Independent runs in the same
// process should each use their own Runner.
type Runner struct {
	suiteActive  bool
	caseActive   bool
	currentPass  bool
	failedAssert bool

	// suiteNum gives each suite a unique number for the log output.
	suiteNum uint16

	// failCount counts failed assertions; RunSuiteByName uses the delta
	// to report a per-suite verdict.
	failCount int

	// lastMsg holds the most recent assertion failure message. It is
	// transient and cleared on every suite start.
	lastMsg string

	currentSuite string
	currentCase  string

	logFile        *os.File
	logHandlers    []LogHandler
	resultHandlers []CaseResultHandler
	mu             sync.Mutex
}

// CaseResult is the verdict of one completed test case.
type CaseResult struct {
	Suite  string
	Case   string
	Passed bool
}

// CaseResultHandler receives the verdict of every completed case.
type CaseResultHandler func(res CaseResult)

// NewRunner creates a fresh Runner with a clean run verdict.
func NewRunner() *Runner {
	return &Runner{currentPass: true}
}

// RegisterResultHandler adds a handler that receives each case verdict.
func (r *Runner) RegisterResultHandler(h CaseResultHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resultHandlers = append(r.resultHandlers, h)
}

// SuiteStart marks the start of a new test suite. A suite usually covers one
// module under test. Only one suite can be active at a time; starting another
// is logged as an API misuse and otherwise ignored.
func (r *Runner) SuiteStart(name string) {
	if r.suiteActive {
		r.logEntry(LogTypeError, "A test suite is already active",
			fmt.Sprintf("Cannot execute %q. Only one test suite can be executed at a time.", name))
		return
	}

	r.suiteNum++
	r.suiteActive = true
	r.currentSuite = name
	r.lastMsg = ""

	r.logf(LogTypeSuite, "Test Suite Number: %d", r.suiteNum)
	r.logf(LogTypeSuite, "Test Suite Name: %s", name)
}

// SuiteEnd marks the active test suite as complete. Ending when no suite is
// active is logged as an API misuse and otherwise ignored.
func (r *Runner) SuiteEnd() {
	if !r.suiteActive {
		r.logEntry(LogTypeError, "A test suite is not active",
			"Call SuiteStart first.")
		return
	}

	r.logEntry(LogTypeSuite, "Test Suite Complete", "")
	r.suiteActive = false
	r.currentSuite = ""
}

// CaseStart marks the start of a new test case and resets the per-case
// verdict. A case usually covers one behavior of the module under test.
// The runner does not require an active suite: a case outside any suite is
// permitted and simply logged without a suite context. Only one case can be
// active at a time.
func (r *Runner) CaseStart(name string) {
	if r.caseActive {
		r.logEntry(LogTypeError, "A test case is already active",
			fmt.Sprintf("Cannot execute %q. Only one test case can be executed at a time.", name))
		return
	}

	r.currentPass = true
	r.caseActive = true
	r.currentCase = name

	r.logf(LogTypeCase, "Test Case: %s", name)
}

// CaseEnd marks the active test case as complete and reports its verdict.
// Ending when no case is active is logged as an API misuse and otherwise
// ignored; the previous verdict is left untouched.
func (r *Runner) CaseEnd() {
	if !r.caseActive {
		r.logEntry(LogTypeError, "A test case is not active",
			"Call CaseStart first.")
		return
	}

	if r.currentPass {
		r.logEntry(LogTypeCase, "Test Case Passed", "")
	} else {
		r.logEntry(LogTypeCase, "Test Case Failed", "")
	}

	res := CaseResult{
		Suite:  r.currentSuite,
		Case:   r.currentCase,
		Passed: r.currentPass,
	}

	r.caseActive = false
	r.currentCase = ""

	r.mu.Lock()
	handlers := r.resultHandlers
	r.mu.Unlock()
	for _, h := range handlers {
		h(res)
	}
}

// Succeeded reports whether every assertion of the run has passed so far.
// It can be queried at any time, including mid-run. Once an assertion has
// failed it returns false for the remainder of the run.
func (r *Runner) Succeeded() bool {
	return !r.failedAssert
}

// assertFailed is the shared failure path of the assertion engine. It logs
// the failure with its call site, fails the current case and marks the whole
// run as failed. It never stops execution.
func (r *Runner) assertFailed(file string, line int, msg string) {
	r.lastMsg = msg
	r.logEntry(LogTypeAssert, "Assert Failed",
		fmt.Sprintf("File: %s, Line %d:%s", file, line, msg))

	r.currentPass = false
	r.failedAssert = true
	r.failCount++
}
