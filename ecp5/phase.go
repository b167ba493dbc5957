package ecp5

// PhaseEncode converts a requested phase in degrees plus a resolved output
// divider into the primitive's coarse-phase (CPHASE) cycle offset:
//
//	cphase = trunc(deg·(div+1)/360 + div − 1)
//
// A zero phase therefore encodes to div−1, and a full 360° turn advances the
// offset by exactly div+1 cycles. Inputs are not validated: deg is expected
// in [0, 360) and div ≥ 1; out-of-range values are the caller's
// responsibility (Plan.RegisterOutput keeps them in range for solved plans).
//
// Complexity: O(1), no failure modes.
func PhaseEncode(deg float64, div int) int {
	return int(deg*float64(div+1)/360 + float64(div-1))
}
