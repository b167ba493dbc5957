package ecp5

// Physical operating ranges of the ECP5 EHXPLLL primitive. Fixed per device
// family; every search variable in Solve is bounded by these.
const (
	// NumOutputsMax is the number of output slots the primitive provides
	// (CLKOP, CLKOS, CLKOS2, CLKOS3). A phantom feedback slot, when
	// allocated, consumes one of them.
	NumOutputsMax = 4

	// ClkIDivMin and ClkIDivMax bound the input (CLKI) divider.
	ClkIDivMin = 1
	ClkIDivMax = 128

	// ClkFBDivMin and ClkFBDivMax bound the feedback (CLKFB) divider.
	ClkFBDivMin = 1
	ClkFBDivMax = 128

	// ClkODivMin and ClkODivMax bound every output (CLKO*) divider.
	ClkODivMin = 1
	ClkODivMax = 128
)

// Frequency ranges in Hz.
const (
	// ClkInFreqMin and ClkInFreqMax bound the reference input clock.
	ClkInFreqMin = 8e6
	ClkInFreqMax = 400e6

	// ClkOutFreqMin and ClkOutFreqMax bound every requested output clock.
	ClkOutFreqMin = 3.125e6
	ClkOutFreqMax = 400e6

	// VCOFreqMin and VCOFreqMax bound the internal oscillator.
	VCOFreqMin = 400e6
	VCOFreqMax = 800e6

	// PFDFreqMin and PFDFreqMax bound the phase-frequency detector input
	// rate, i.e. clkin/clkiDiv.
	PFDFreqMin = 10e6
	PFDFreqMax = 400e6
)
