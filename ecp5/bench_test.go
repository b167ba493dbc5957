package ecp5_test

import (
	"testing"

	"github.com/katalvlaran/clkplan/ecp5"
)

// BenchmarkSolve measures the full divider search for a typical SoC plan
// (25 MHz reference, two outputs). The PFD/VCO filters keep this far below
// the 128³ worst case.
func BenchmarkSolve(b *testing.B) {
	outs := []ecp5.ClockOutputRequest{
		{Slot: 0, Freq: 100e6, Margin: 1e-2},
		{Slot: 1, Freq: 50e6, Margin: 1e-2},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecp5.Solve(25e6, outs, ecp5.SolveOptions{}); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Exhausted measures the worst case: a target no divider
// chain can hit, forcing the search to scan the entire space before failing.
func BenchmarkSolve_Exhausted(b *testing.B) {
	outs := []ecp5.ClockOutputRequest{{Slot: 0, Freq: 3.17e6, Margin: 1e-6}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecp5.Solve(25e6, outs, ecp5.SolveOptions{}); err == nil {
			b.Fatal("Solve unexpectedly succeeded")
		}
	}
}

// BenchmarkFinalize measures the end-to-end registry → parameters path.
func BenchmarkFinalize(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := ecp5.NewPlan()
		if err := p.RegisterInput(25e6); err != nil {
			b.Fatalf("RegisterInput failed: %v", err)
		}
		if err := p.RegisterOutput("sys", 100e6); err != nil {
			b.Fatalf("RegisterOutput failed: %v", err)
		}
		if _, err := p.Finalize(); err != nil {
			b.Fatalf("Finalize failed: %v", err)
		}
	}
}
