// Package ecp5 defines the request/result types, options and sentinel
// errors shared by the plan registry, the divider solver and the finalizer.
package ecp5

import "errors"

// Sentinel errors for plan registration and solving.
var (
	// ErrClkInFreqRange indicates the input frequency is outside [ClkInFreqMin, ClkInFreqMax].
	ErrClkInFreqRange = errors.New("ecp5: input clock frequency out of range")
	// ErrClkOutFreqRange indicates a requested output frequency is outside [ClkOutFreqMin, ClkOutFreqMax].
	ErrClkOutFreqRange = errors.New("ecp5: output clock frequency out of range")
	// ErrTooManyOutputs indicates the plan already holds NumOutputsMax outputs.
	ErrTooManyOutputs = errors.New("ecp5: too many output clocks requested")
	// ErrInputAlreadySet indicates RegisterInput was called more than once on a plan.
	ErrInputAlreadySet = errors.New("ecp5: input clock already registered")
	// ErrInputNotSet indicates the plan was finalized before RegisterInput.
	ErrInputNotSet = errors.New("ecp5: no input clock registered")
	// ErrNoConfigFound indicates the exhaustive divider search found no
	// configuration satisfying every range and margin constraint.
	ErrNoConfigFound = errors.New("ecp5: no PLL configuration found")
)

// ClockOutputRequest is one requested output clock. Requests are created by
// Plan.RegisterOutput and never mutated afterwards; Solve borrows them
// read-only.
type ClockOutputRequest struct {
	// Slot is the 0-based output index, assigned in registration order.
	Slot int
	// Domain names the clock domain the output drives. Informational for
	// the instantiation backend; the solver ignores it.
	Domain string
	// Freq is the target output frequency in Hz.
	Freq float64
	// Phase is the requested phase offset in degrees, within [0, 360).
	Phase float64
	// Margin is the fractional tolerance on Freq (0.01 ⇒ ±1%).
	Margin float64
	// UsesDPA marks the output eligible for dynamic phase adjustment.
	// An eligible output cannot carry the feedback path while the plan's
	// dynamic-phase mode is enabled.
	UsesDPA bool
	// WithReset requests an async reset synchronizer on the clock domain.
	WithReset bool
}

// OutputOption tunes a single output request at registration time.
type OutputOption func(*ClockOutputRequest)

// WithPhase sets the requested phase offset in degrees (default 0).
// Values outside [0, 360) are not validated here; PhaseEncode documents
// the caller's responsibility.
func WithPhase(deg float64) OutputOption {
	return func(r *ClockOutputRequest) { r.Phase = deg }
}

// WithMargin sets the fractional frequency tolerance (default 0.01).
func WithMargin(m float64) OutputOption {
	return func(r *ClockOutputRequest) { r.Margin = m }
}

// WithoutReset skips the async reset synchronizer on the clock domain.
func WithoutReset() OutputOption {
	return func(r *ClockOutputRequest) { r.WithReset = false }
}

// WithoutDPA excludes the output from dynamic phase adjustment, which
// keeps it eligible to carry the feedback path even in dynamic-phase mode.
func WithoutDPA() OutputOption {
	return func(r *ClockOutputRequest) { r.UsesDPA = false }
}

// SolveOptions configures a Solve invocation.
//   - DPAEnabled: plan-wide dynamic phase adjustment; DPA-eligible outputs
//     are then barred from the feedback path.
//   - Verbose: print the accepted configuration via fmt.Printf.
type SolveOptions struct {
	DPAEnabled bool
	Verbose    bool
}

// ResolvedOutput is one output slot of a solved configuration.
type ResolvedOutput struct {
	// Slot mirrors the request's slot index; a phantom feedback slot gets
	// the next free index.
	Slot int
	// Div is the resolved integer divider, within [ClkODivMin, ClkODivMax].
	Div int
	// Freq is the achieved frequency vco/Div in Hz; 0 for a phantom slot.
	Freq float64
	// Phase carries the request's phase in degrees; 0 for a phantom slot.
	Phase float64
	// Phantom marks a solver-allocated feedback-only slot that no user
	// request backs.
	Phantom bool
}

// DividerConfiguration is the solver result: a fully resolved divider plan.
// It is produced atomically by one Solve call and never partially valid.
type DividerConfiguration struct {
	// ClkIDiv is the input divider.
	ClkIDiv int
	// ClkFBDiv is the feedback divider. The total feedback division is
	// ClkFBDiv times the divider of the feedback-carrying output slot.
	ClkFBDiv int
	// VCOFreq is the resolved oscillator frequency in Hz,
	// (clkin/ClkIDiv)·ClkFBDiv·(feedback output divider).
	VCOFreq float64
	// FeedbackSlot is the slot index supplying the feedback path. It refers
	// either to a registered output or to a phantom slot appended to Outputs.
	FeedbackSlot int
	// Outputs holds one entry per registered request, in slot order, plus
	// at most one trailing phantom feedback slot.
	Outputs []ResolvedOutput
}
