// Package clkplan computes register-level clock configurations for FPGA
// clock-generation primitives: you declare a reference input and the output
// clocks you need, it finds the divider plan that makes them real.
//
// 🚀 What is clkplan?
//
//	A small, deterministic library that turns frequency requests into
//	hardware divider settings:
//		• Plan registry: register one input clock and up to four output requests
//		• Divider solver: exhaustive first-fit search over integer dividers,
//		  bounded by the primitive's physical operating ranges
//		• Phase encoder: degrees → coarse-phase cycle offsets
//		• Parameter finalizer: the attribute bag an instantiation backend
//		  feeds straight into the hardware primitive
//
// ✨ Why choose clkplan?
//
//   - Reproducible – identical inputs always yield the identical configuration
//   - Strict – sentinel errors at registration time, never a silent near-miss
//   - Pure Go – no cgo, no hidden deps, no I/O: solve in memory, hand off
//   - Honest – first-fit by design; the plan you got is the plan you rebuild
//
// Under the hood, everything lives in one subpackage:
//
//	ecp5/ — plan registry, divider solver, phase encoder and parameter
//	        finalizer for the Lattice ECP5 PLL (EHXPLLL)
//
// Quick sketch:
//
//	CLKI ──/d_in──▶ PFD ──▶ VCO ──┬──/d0──▶ CLKOP
//	                  ▲           ├──/d1──▶ CLKOS
//	                  └──/d_fb────┴──/dfb── feedback
//
// Script generation, constraint files and toolchain invocation are left to
// the caller: clkplan stops at the primitive's parameter boundary.
//
//	go get github.com/katalvlaran/clkplan/ecp5
package clkplan
