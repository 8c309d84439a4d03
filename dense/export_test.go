// SPDX-License-Identifier: MIT

package dense

// White-box bridge: exposes the element-wise kernels and panic messages to
// dense_test so the float64 fast path can be checked against the generic
// loops without widening the public API.

var (
	EwAdd     = ewAdd[float64]
	EwScale   = ewScale[float64]
	EwSub     = ewSub[float64]
	EwAxpy    = ewAxpy[float64]
	EwAxpyBuf = ewAxpyBuf[float64]

	AddLoop   = addLoop[float64]
	SubLoop   = subLoop[float64]
	ScaleLoop = scaleLoop[float64]
	AxpyLoop  = axpyLoop[float64]

	Overlaps = overlaps[float64]
)

const (
	PanicSingularInvalid  = panicSingularInvalid
	PanicAbsoluteInvalid  = panicAbsoluteInvalid
	PanicPrecisionInvalid = panicPrecisionInvalid
	PanicBadDim           = panicBadDim
)
