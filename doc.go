// Package coordmap provides immutable coordinate mappings for Go.
//
// # Overview
//
// A Mapping transforms points from one coordinate system to another.
// Every mapping supports a forward transform; mappings that are
// mathematically reversible also support an inverse transform. Mappings
// are plain values: once constructed they never change, so they can be
// shared freely between goroutines without synchronization.
//
// The concrete mapping types are:
//
//   - [LutMap]: 1-dimensional lookup-table mapping. Input coordinates are
//     converted to a fractional index into a table of uniformly spaced
//     samples and the output is interpolated (or, optionally, taken from
//     the nearest entry). Monotonic tables can be inverted.
//   - [WinMap]: per-axis linear mapping of one N-dimensional window onto
//     another (scale and shift on each axis).
//   - [UnitNormMap]: splits an N-dimensional vector relative to a centre
//     into an N-dimensional unit direction plus its length.
//   - [RateMap]: wraps another mapping and outputs the rate of change of
//     one of its outputs with respect to one of its inputs.
//
// # Quick Start
//
//	import "github.com/coordkit/coordmap"
//
//	// A gamma-correction style curve sampled at x = 0, 0.25, 0.5, 0.75, 1.
//	lut, err := coordmap.NewLutMap([]float64{0, 0.53, 0.73, 0.88, 1}, 0, 0.25, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	y := lut.Eval(0.3)           // forward transform
//	x, err := lut.EvalInverse(y) // inverse transform (table is monotonic)
//
// # Options Strings
//
// Constructors accept an options string holding comma-separated attribute
// assignments, for example "LutEpsilon=1e-12, LutInterp=near". Attribute
// names are case-insensitive. Unrecognized attributes and malformed
// assignments are construction errors. An empty string is always valid.
//
// # Errors
//
// Construction problems are reported immediately and wrap
// [ErrInvalidArgument]; a mapping either comes back fully valid or not at
// all. Requesting the inverse of a mapping whose Invertible method reports
// false wraps [ErrNoInverse]. Forward transforms never fail for finite
// input: coordinates outside a LutMap's table are extrapolated, not
// rejected.
//
// # Concurrency
//
// All methods on all mapping types are safe for concurrent use. Copy
// returns an independently owned mapping that shares no mutable state
// with the original.
package coordmap
