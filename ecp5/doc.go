// Package ecp5 plans the Lattice ECP5 PLL (EHXPLLL): it resolves a set of
// requested output clocks into integer divider settings, a feedback path and
// coarse-phase encodings that the hardware can actually realize.
//
// What:
//
//   - Plan collects one input clock and up to NumOutputsMax output requests,
//     each validated against the primitive's physical frequency ranges.
//   - Solve enumerates (input divider, feedback-output divider, feedback
//     divider) triples in ascending order and returns the first configuration
//     whose VCO and PFD frequencies are legal and whose every output hits its
//     target within the requested margin.
//   - PhaseEncode converts a phase in degrees plus a resolved divider into
//     the primitive's CPHASE cycle offset.
//   - BuildParameters flattens a configuration into the EHXPLLL attribute
//     bag (CLKI_DIV, CLKFB_DIV, FEEDBK_PATH, CLKO*_DIV/CPHASE, calibration
//     constants) for an instantiation backend.
//
// Why:
//
//   - SoC clocking: derive sys/sys2x/init clocks from one board oscillator.
//   - Reproducible builds: first-fit over a fixed search order means the
//     same requests always produce the same registers.
//   - Early failure: impossible plans fail at registration or solve time,
//     never as silent hardware misbehavior.
//
// Complexity:
//
//   - Solve: O(D³·N·D) worst case with D=128 divider values and
//     N ≤ 4 outputs; the PFD and VCO range filters cut the practical cost
//     to well under a millisecond.
//   - Everything else: O(N).
//
// Errors:
//
//   - ErrClkInFreqRange: input frequency outside the CLKI range.
//   - ErrClkOutFreqRange: requested output frequency outside the CLKO range.
//   - ErrTooManyOutputs: more than NumOutputsMax outputs requested.
//   - ErrInputAlreadySet: RegisterInput called twice on one plan.
//   - ErrInputNotSet: Finalize or Solve invoked before RegisterInput.
//   - ErrNoConfigFound: the exhaustive divider search found no valid plan.
//
// The solver is pure and side-effect free: a Plan is built once, solved
// once and discarded. Distinct plans may be solved concurrently; a single
// Plan must not be mutated while Finalize runs.
package ecp5
