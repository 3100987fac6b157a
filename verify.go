package algodft

import "fmt"

// Result is the outcome of checking one strategy against the reference.
type Result struct {
	Strategy Strategy
	// Error is CompareError(reference, output, N).
	Error float64
	Pass  bool
}

// Report collects the per-strategy results of Plan.Verify.
type Report struct {
	N         int
	Tolerance float64
	Reference Sequence
	Results   []Result
}

// OK reports whether every strategy passed.
func (r Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the strategies whose error exceeded the tolerance.
func (r Report) Failed() []Strategy {
	var failed []Strategy

	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res.Strategy)
		}
	}

	return failed
}

// DefaultTolerance is the accepted total error for an n-point transform.
// It grows with n to absorb accumulated rounding.
func DefaultTolerance(n int) float64 {
	return 1e-9 * float64(n)
}

// Verify transforms src with the reference and with each listed strategy and
// records CompareError for each. With no strategies given, every fast
// strategy the Plan supports is checked. tol <= 0 selects DefaultTolerance.
func (p *Plan) Verify(src Sequence, tol float64, strategies ...Strategy) (Report, error) {
	if tol <= 0 {
		tol = DefaultTolerance(p.n)
	}

	if len(strategies) == 0 {
		for _, s := range FastStrategies {
			if p.Supports(s) {
				strategies = append(strategies, s)
			}
		}
	}

	ref := NewSequence(p.n)
	if err := p.Reference(ref, src); err != nil {
		return Report{}, fmt.Errorf("reference: %w", err)
	}

	report := Report{
		N:         p.n,
		Tolerance: tol,
		Reference: ref,
		Results:   make([]Result, 0, len(strategies)),
	}

	out := NewSequence(p.n)
	for _, s := range strategies {
		if err := p.Transform(s, out, src); err != nil {
			return report, fmt.Errorf("%s: %w", s, err)
		}

		e, err := CompareError(ref, out, p.n)
		if err != nil {
			return report, fmt.Errorf("%s: %w", s, err)
		}

		report.Results = append(report.Results, Result{Strategy: s, Error: e, Pass: e <= tol})
	}

	return report, nil
}
