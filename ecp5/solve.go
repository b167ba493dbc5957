// Package ecp5 - exhaustive first-fit divider search.
//
// This file implements the solver core: a triple-nested ascending scan over
// (input divider, feedback-output divider, feedback divider), with a tagged
// accept/reject resolution pass per candidate VCO frequency.
//
// Design principles:
//   - Deterministic: fixed ascending search order, no map iteration, no
//     randomness; identical inputs yield identical configurations.
//   - First-fit, not best-fit: the first fully valid combination wins and
//     the search stops. Downstream timing artifacts depend on the exact
//     historical values, so this is a contract, not an optimization gap.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf.
//   - Side-effect free: inputs are borrowed read-only, the result is a
//     freshly allocated DividerConfiguration.
package ecp5

import (
	"fmt"
	"math"
)

// Solve searches for the first divider configuration satisfying every range
// and margin constraint, in a fixed ascending order:
//
//  1. input divider, skipping candidates whose PFD rate clkin/d is illegal;
//  2. feedback-output divider (shared by the VCO feedback tap and whichever
//     output carries the feedback signal);
//  3. feedback divider, giving vco = (clkin/dIn)·dFB·dOFB, skipped when the
//     VCO is out of range;
//  4. per output, the smallest divider d with |vco/d − f| ≤ f·margin; any
//     output with no such divider rejects the whole combination.
//
// An output whose resolved divider equals the feedback-output divider, and
// which is not barred by dynamic phase adjustment, becomes the feedback
// source (lowest slot wins). If every output resolves but none can carry
// feedback, a phantom feedback-only slot is allocated when a slot is still
// free; otherwise the combination is rejected.
//
// Outputs must already satisfy the CLKO frequency range; Plan.RegisterOutput
// enforces that. Solve itself validates only the input frequency and the
// output count.
//
// Errors: ErrClkInFreqRange, ErrTooManyOutputs, ErrNoConfigFound.
//
// Complexity: O(D³·N·D) worst case, D=128, N=len(outputs); bounded and
// small, so no cancellation hooks are needed.
func Solve(clkinFreq float64, outputs []ClockOutputRequest, opts SolveOptions) (DividerConfiguration, error) {
	if clkinFreq < ClkInFreqMin || clkinFreq > ClkInFreqMax {
		return DividerConfiguration{}, ErrClkInFreqRange
	}
	if len(outputs) > NumOutputsMax {
		return DividerConfiguration{}, ErrTooManyOutputs
	}

	for clkiDiv := ClkIDivMin; clkiDiv <= ClkIDivMax; clkiDiv++ {
		pfd := clkinFreq / float64(clkiDiv)
		if pfd < PFDFreqMin || pfd > PFDFreqMax {
			continue
		}
		for clkoFBDiv := ClkODivMin; clkoFBDiv <= ClkODivMax; clkoFBDiv++ {
			for clkFBDiv := ClkFBDivMin; clkFBDiv <= ClkFBDivMax; clkFBDiv++ {
				vco := pfd * float64(clkFBDiv) * float64(clkoFBDiv)
				if vco < VCOFreqMin || vco > VCOFreqMax {
					continue
				}
				resolved, fbSlot, ok := resolveOutputs(vco, clkoFBDiv, outputs, opts.DPAEnabled)
				if !ok {
					continue
				}
				if fbSlot < 0 {
					// No registered output can carry feedback; allocate a
					// phantom feedback-only slot if one is still free.
					if len(outputs) >= NumOutputsMax {
						continue
					}
					fbSlot = len(outputs)
					resolved = append(resolved, ResolvedOutput{
						Slot:    fbSlot,
						Div:     phantomDiv(vco, clkiDiv, clkinFreq, clkFBDiv),
						Phantom: true,
					})
				}
				cfg := DividerConfiguration{
					ClkIDiv:      clkiDiv,
					ClkFBDiv:     clkFBDiv,
					VCOFreq:      vco,
					FeedbackSlot: fbSlot,
					Outputs:      resolved,
				}
				if opts.Verbose {
					fmt.Printf("ecp5: clki_div=%d clkfb_div=%d vco=%gMHz clkfb=slot%d\n",
						cfg.ClkIDiv, cfg.ClkFBDiv, cfg.VCOFreq/1e6, cfg.FeedbackSlot)
				}

				return cfg, nil
			}
		}
	}

	return DividerConfiguration{}, ErrNoConfigFound
}

// resolveOutputs attempts to resolve every request at the candidate VCO
// frequency. It returns the resolved slots in slot order, the feedback slot
// (-1 when no output qualified) and ok=false when some output has no divider
// within its margin, which rejects the whole candidate.
//
// Per output the scan is ascending, so the smallest valid divider wins even
// when a larger one would land closer to the target.
//
// Complexity: O(N·D).
func resolveOutputs(vco float64, clkoFBDiv int, outputs []ClockOutputRequest, dpaEnabled bool) ([]ResolvedOutput, int, bool) {
	resolved := make([]ResolvedOutput, 0, len(outputs)+1)
	fbSlot := -1
	for _, out := range outputs {
		valid := false
		for d := ClkODivMin; d <= ClkODivMax; d++ {
			freq := vco / float64(d)
			if math.Abs(freq-out.Freq) <= out.Freq*out.Margin {
				resolved = append(resolved, ResolvedOutput{
					Slot:  out.Slot,
					Div:   d,
					Freq:  freq,
					Phase: out.Phase,
				})
				valid = true
				// An output dividing by the shared feedback-output divider
				// can close the loop, unless dynamic phase adjustment
				// claims it. First qualifying slot wins.
				if fbSlot < 0 && d == clkoFBDiv && !(out.UsesDPA && dpaEnabled) {
					fbSlot = out.Slot
				}

				break
			}
		}
		if !valid {
			return nil, -1, false
		}
	}

	return resolved, fbSlot, true
}

// phantomDiv computes the divider of a solver-allocated feedback slot:
// trunc((vco·clkiDiv)/(clkin·clkFBDiv)). Truncation toward zero is the
// historical behavior and is pinned by tests; do not replace with rounding.
func phantomDiv(vco float64, clkiDiv int, clkinFreq float64, clkFBDiv int) int {
	return int((vco * float64(clkiDiv)) / (clkinFreq * float64(clkFBDiv)))
}
