// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Provide small, private element-wise kernels (ew*) over flat buffers so
//     Vector and Matrix share one implementation of +=, -=, *=, axpy.
//   - Route float64 buffers through algo-vecmath block kernels; every other
//     scalar type takes the generic loop.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; no allocations except the sub and axpy
//     scratch blocks on the float64 path. Elimination passes its own
//     scratch to ewAxpyBuf.
//   - The float64 path computes the same IEEE operations as the generic loop
//     (scale, then add), so results agree with the generic path.

package dense

import (
	"unsafe"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/fieldkit/scalar"
)

// ewFill sets every element of dst to x.
func ewFill[K scalar.Scalar](dst []K, x K) {
	for i := range dst {
		dst[i] = x
	}
}

// ewAdd computes dst += src. len(src) must equal len(dst).
func ewAdd[K scalar.Scalar](dst, src []K) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlockInPlace(d, any(src).([]float64))
		return
	}
	addLoop(dst, src)
}

func addLoop[K scalar.Scalar](dst, src []K) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// ewSub computes dst -= src.
// The float64 path negates src into scratch and adds; a + (-b) is the same
// IEEE result as a - b.
func ewSub[K scalar.Scalar](dst, src []K) {
	if d, ok := any(dst).([]float64); ok {
		s := any(src).([]float64)
		scratch := make([]float64, len(s))
		vecmath.ScaleBlock(scratch, s, -1)
		vecmath.AddBlockInPlace(d, scratch)
		return
	}
	subLoop(dst, src)
}

func subLoop[K scalar.Scalar](dst, src []K) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

// ewScale computes dst *= alpha.
func ewScale[K scalar.Scalar](dst []K, alpha K) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, d, any(alpha).(float64))
		return
	}
	scaleLoop(dst, alpha)
}

func scaleLoop[K scalar.Scalar](dst []K, alpha K) {
	for i := range dst {
		dst[i] *= alpha
	}
}

// ewShift computes dst += x for a broadcast scalar x.
func ewShift[K scalar.Scalar](dst []K, x K) {
	for i := range dst {
		dst[i] += x
	}
}

// ewDiv computes dst /= x. The caller rejects x == 0.
func ewDiv[K scalar.Scalar](dst []K, x K) {
	for i := range dst {
		dst[i] /= x
	}
}

// ewAxpy computes dst += alpha*src.
func ewAxpy[K scalar.Scalar](dst []K, alpha K, src []K) {
	ewAxpyBuf(dst, alpha, src, nil)
}

// ewAxpyBuf is ewAxpy with caller-owned scratch for the float64 path.
// buf is used when it holds at least len(src) elements; otherwise a scratch
// block is allocated. Overlapping float64 buffers take the generic loop.
func ewAxpyBuf[K scalar.Scalar](dst []K, alpha K, src, buf []K) {
	if d, ok := any(dst).([]float64); ok && !overlaps(dst, src) {
		s := any(src).([]float64)
		var scratch []float64
		if len(buf) >= len(s) {
			scratch = any(buf[:len(s)]).([]float64)
		} else {
			scratch = make([]float64, len(s))
		}
		vecmath.ScaleBlock(scratch, s, any(alpha).(float64))
		vecmath.AddBlockInPlace(d, scratch)
		return
	}
	axpyLoop(dst, alpha, src)
}

func axpyLoop[K scalar.Scalar](dst []K, alpha K, src []K) {
	for i := range dst {
		dst[i] += alpha * src[i]
	}
}

// ewEqual reports exact element-wise equality.
func ewEqual[K scalar.Scalar](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// overlaps reports whether a and b share any element of memory.
// Products and in-place multiplies use it to decide when an operand must be
// copied before the destination is written.
func overlaps[K scalar.Scalar](a, b []K) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero K
	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(&a[0]))
	b0 := uintptr(unsafe.Pointer(&b[0]))

	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}

// cloneSlice returns an independent copy of src.
func cloneSlice[K scalar.Scalar](src []K) []K {
	out := make([]K, len(src))
	copy(out, src)

	return out
}
