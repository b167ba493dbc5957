// Package ecp5 - parameter finalization.
//
// This file flattens a solved DividerConfiguration into the named attribute
// bag of the EHXPLLL primitive. Pure transformation: no search, no failure
// modes; a failed solve never reaches BuildParameters.
package ecp5

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// slotLabels maps an output slot index to its EHXPLLL port suffix.
var slotLabels = [NumOutputsMax]string{"P", "S", "S2", "S3"}

// DPAControlPorts names the primitive's dynamic-phase control inputs the
// instantiation backend must wire when the plan enables dynamic phase
// adjustment: selector (2 bits), direction, step and load strobe.
var DPAControlPorts = []string{"PHASESEL0", "PHASESEL1", "PHASEDIR", "PHASESTEP", "PHASELOADREG"}

// PrimitiveParameters is the flat attribute bag handed to the instantiation
// backend: attribute name → scalar value (int or string). Signal bindings
// (CLKI, RST, LOCK, the CLKO* nets) are the backend's concern and are not
// represented here.
type PrimitiveParameters map[string]any

// Render formats the parameters as one "NAME = value" line per attribute,
// sorted by name. The output is deterministic and diff-friendly; golden
// tests and humans both read it.
func (pp PrimitiveParameters) Render() string {
	names := make([]string, 0, len(pp))
	for name := range pp {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s = %v\n", name, pp[name])
	}

	return b.String()
}

// BuildParameters maps a solved configuration to the EHXPLLL attribute set:
// the input frequency pin (MHz, as text), device calibration constants, the
// divider pair, the internal feedback path tag, and per resolved slot the
// enable flag, divider, fine phase (always 0) and coarse phase from
// PhaseEncode. Phantom feedback slots are emitted like any other slot.
// In dynamic-phase mode the DPHASE_SOURCE attribute is added; the matching
// control ports are listed in DPAControlPorts.
func BuildParameters(cfg DividerConfiguration, clkinFreq float64, dpaEnabled bool) PrimitiveParameters {
	params := PrimitiveParameters{
		"FREQUENCY_PIN_CLKI":     mhzString(clkinFreq),
		"ICP_CURRENT":            "6",
		"LPF_RESISTOR":           "16",
		"MFG_ENABLE_FILTEROPAMP": "1",
		"MFG_GMCREF_SEL":         "2",
		"FEEDBK_PATH":            "INT_O" + slotLabels[cfg.FeedbackSlot],
		"CLKI_DIV":               cfg.ClkIDiv,
		"CLKFB_DIV":              cfg.ClkFBDiv,
	}
	for _, out := range cfg.Outputs {
		l := slotLabels[out.Slot]
		params["CLKO"+l+"_ENABLE"] = "ENABLED"
		params["CLKO"+l+"_DIV"] = out.Div
		params["CLKO"+l+"_FPHASE"] = 0
		params["CLKO"+l+"_CPHASE"] = PhaseEncode(out.Phase, out.Div)
	}
	if dpaEnabled {
		params["DPHASE_SOURCE"] = "ENABLED"
	}

	return params
}

// mhzString renders a frequency in MHz with at least one decimal digit,
// e.g. 25e6 → "25.0", 12.5e6 → "12.5".
func mhzString(freq float64) string {
	s := strconv.FormatFloat(freq/1e6, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}
