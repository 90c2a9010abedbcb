package v1

import (
	"fmt"
	"sync"
)

// SuiteFunc is the body of a registered test suite. It receives the runner
// and invokes cases and assertions on it.
type SuiteFunc func(r *Runner)

// SuiteDef represents a registered suite.
type SuiteDef struct {
	Name string
	Func SuiteFunc
}

// Plan holds the ordered list of suites for a run. It is a convenience layer
// over the Runner: suites can also be driven by calling SuiteStart/SuiteEnd
// directly.
type Plan struct {
	Suites []SuiteDef
	mu     sync.Mutex
}

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{
		Suites: make([]SuiteDef, 0),
	}
}

// Suite registers a new suite.
func (p *Plan) Suite(name string, fn SuiteFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Suites = append(p.Suites, SuiteDef{Name: name, Func: fn})
}

// RunSuiteByName runs a specific suite by name, wrapped in SuiteStart and
// SuiteEnd. The returned error reports an unknown suite name or a suite in
// which at least one assertion failed; execution always runs to completion
// either way.
func (p *Plan) RunSuiteByName(r *Runner, name string) error {
	p.mu.Lock()
	var fn SuiteFunc
	for _, s := range p.Suites {
		if s.Name == name {
			fn = s.Func
			break
		}
	}
	p.mu.Unlock()

	if fn == nil {
		return fmt.Errorf("suite %s not found", name)
	}

	failsBefore := r.failCount

	r.SuiteStart(name)
	fn(r)
	r.SuiteEnd()

	if r.failCount > failsBefore {
		return fmt.Errorf("suite %s: %d failed assertion(s)", name, r.failCount-failsBefore)
	}
	return nil
}

// RunAll runs every registered suite in registration order. A failing suite
// does not stop the ones after it; the returned error summarizes how many
// suites had failures.
func (p *Plan) RunAll(r *Runner) error {
	p.mu.Lock()
	names := make([]string, len(p.Suites))
	for i, s := range p.Suites {
		names[i] = s.Name
	}
	p.mu.Unlock()

	failed := 0
	for _, name := range names {
		if err := p.RunSuiteByName(r, name); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d suites had failed assertions", failed, len(names))
	}
	return nil
}
