// Package ecp5 - plan registry.
//
// A Plan is the registration surface for one PLL instance: one input clock,
// up to NumOutputsMax output requests, and the plan-wide dynamic-phase flag.
// Registration validates against the physical ranges immediately, so a plan
// that reaches Finalize can only fail in the divider search itself.
package ecp5

// Plan accumulates the clock requests for a single PLL primitive.
// Build it once, finalize it once, discard it; it is not safe for
// concurrent mutation. The zero value is not usable; call NewPlan.
type Plan struct {
	clkinFreq    float64
	inputSet     bool
	outputs      []ClockOutputRequest
	dpaEnabled   bool
	resetDomains []string
}

// NewPlan returns an empty plan with no input registered.
func NewPlan() *Plan {
	return &Plan{outputs: make([]ClockOutputRequest, 0, NumOutputsMax)}
}

// RegisterInput records the reference input clock frequency in Hz.
// Returns ErrClkInFreqRange when freq is outside [ClkInFreqMin, ClkInFreqMax]
// and ErrInputAlreadySet on a second call; the input is set exactly once.
func (p *Plan) RegisterInput(freq float64) error {
	if p.inputSet {
		return ErrInputAlreadySet
	}
	if freq < ClkInFreqMin || freq > ClkInFreqMax {
		return ErrClkInFreqRange
	}
	p.clkinFreq = freq
	p.inputSet = true

	return nil
}

// RegisterOutput appends an output request for the named clock domain at the
// given frequency in Hz. Defaults: phase 0°, margin 1%, async reset
// synchronizer attached, eligible for dynamic phase adjustment; tune with
// WithPhase, WithMargin, WithoutReset, WithoutDPA.
//
// Returns ErrClkOutFreqRange when freq is outside
// [ClkOutFreqMin, ClkOutFreqMax] and ErrTooManyOutputs when NumOutputsMax
// outputs are already registered. On success the request gets the next
// sequential slot and, unless WithoutReset was given, the domain is recorded
// for reset-synchronizer attachment (see ResetSyncDomains).
func (p *Plan) RegisterOutput(domain string, freq float64, opts ...OutputOption) error {
	if freq < ClkOutFreqMin || freq > ClkOutFreqMax {
		return ErrClkOutFreqRange
	}
	if len(p.outputs) >= NumOutputsMax {
		return ErrTooManyOutputs
	}
	req := ClockOutputRequest{
		Slot:      len(p.outputs),
		Domain:    domain,
		Freq:      freq,
		Margin:    1e-2,
		UsesDPA:   true,
		WithReset: true,
	}
	for _, opt := range opts {
		opt(&req)
	}
	p.outputs = append(p.outputs, req)
	if req.WithReset {
		p.resetDomains = append(p.resetDomains, domain)
	}

	return nil
}

// EnableDynamicPhaseAdjust switches the plan into dynamic-phase mode: the
// finalized parameters gain DPHASE_SOURCE=ENABLED and the control ports in
// DPAControlPorts, and DPA-eligible outputs are barred from carrying the
// feedback path. Call before Finalize.
func (p *Plan) EnableDynamicPhaseAdjust() {
	p.dpaEnabled = true
}

// DPAEnabled reports whether the plan is in dynamic-phase mode.
func (p *Plan) DPAEnabled() bool {
	return p.dpaEnabled
}

// InputFreq returns the registered input frequency in Hz, or 0 when no
// input has been registered yet.
func (p *Plan) InputFreq() float64 {
	return p.clkinFreq
}

// Outputs returns a copy of the registered output requests in slot order.
func (p *Plan) Outputs() []ClockOutputRequest {
	out := make([]ClockOutputRequest, len(p.outputs))
	copy(out, p.outputs)

	return out
}

// ResetSyncDomains returns the clock-domain names that require an async
// reset synchronizer, in registration order. The instantiation backend
// attaches the synchronizer primitives; this plan only records the request.
func (p *Plan) ResetSyncDomains() []string {
	out := make([]string, len(p.resetDomains))
	copy(out, p.resetDomains)

	return out
}

// Finalize runs the divider search once and flattens the result into the
// EHXPLLL parameter bag. Returns ErrInputNotSet before RegisterInput, or
// any Solve error. Solve failures are not retried internally; relaxing
// margins and rebuilding the plan is the caller's call.
func (p *Plan) Finalize() (PrimitiveParameters, error) {
	if !p.inputSet {
		return nil, ErrInputNotSet
	}
	cfg, err := Solve(p.clkinFreq, p.outputs, SolveOptions{DPAEnabled: p.dpaEnabled})
	if err != nil {
		return nil, err
	}

	return BuildParameters(cfg, p.clkinFreq, p.dpaEnabled), nil
}
