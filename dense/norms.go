// SPDX-License-Identifier: MIT

// Package dense - norms.
//
// All norms return float64 magnitudes (also for complex K) so they can be
// compared against thresholds directly. Every norm is non-negative and is
// exactly zero for the zero vector / matrix.
//
// The two-norm and Frobenius norm accumulate with a running scale (as in
// LAPACK's dnrm2), so tiny or huge entries neither underflow to zero nor
// overflow to Inf before the square root. The squared variants are plain
// sums of |x|².

package dense

import (
	"math"

	"github.com/katalvlaran/fieldkit/scalar"
)

// normZero is the additive identity for norm accumulation.
const normZero = 0.0

// abs2 returns |x|² as re² + im² (x·x for real K).
func abs2[K scalar.Scalar](f scalar.Field[K], x K) float64 {
	return f.Real(x * f.Conj(x))
}

// scaledSSQ accumulates the Euclidean length of a sequence of real
// components as scale·sqrt(ssq).
type scaledSSQ struct {
	scale float64
	ssq   float64
}

func (s *scaledSSQ) add(v float64) {
	if v == 0 {
		return
	}
	v = math.Abs(v)
	if s.scale < v {
		r := s.scale / v
		s.ssq = 1 + s.ssq*r*r
		s.scale = v
		return
	}
	r := v / s.scale
	s.ssq += r * r
}

func (s *scaledSSQ) norm() float64 {
	if s.scale == 0 {
		return normZero
	}

	return s.scale * math.Sqrt(s.ssq)
}

// twoNorm is the overflow-safe Euclidean length of xs.
func twoNorm[K scalar.Scalar](xs []K) float64 {
	f := scalar.For[K]()
	var acc scaledSSQ
	for _, x := range xs {
		acc.add(f.Real(x))
		acc.add(f.Imag(x))
	}

	return acc.norm()
}

// sumAbs2 returns Σ|x|².
func sumAbs2[K scalar.Scalar](xs []K) float64 {
	f := scalar.For[K]()
	sum := normZero
	for _, x := range xs {
		sum += abs2(f, x)
	}

	return sum
}

// sumAbs returns Σ|x| (reim=false) or Σ(|re|+|im|) (reim=true).
func sumAbs[K scalar.Scalar](xs []K, reim bool) float64 {
	f := scalar.For[K]()
	sum := normZero
	for _, x := range xs {
		if reim {
			sum += f.AbsReal(x)
		} else {
			sum += f.Abs(x)
		}
	}

	return sum
}

// maxAbs returns max|x| (reim=false) or max(|re|+|im|) (reim=true).
func maxAbs[K scalar.Scalar](xs []K, reim bool) float64 {
	f := scalar.For[K]()
	best := normZero
	var v float64
	for _, x := range xs {
		if reim {
			v = f.AbsReal(x)
		} else {
			v = f.Abs(x)
		}
		if v > best {
			best = v
		}
	}

	return best
}

// ---------- Vector norms ----------

// OneNorm returns Σ|vᵢ|.
func (v *Vector[K, N]) OneNorm() float64 { return sumAbs(v.raw(), false) }

// OneNormReal returns Σ(|re vᵢ| + |im vᵢ|).
func (v *Vector[K, N]) OneNormReal() float64 { return sumAbs(v.raw(), true) }

// TwoNorm returns sqrt(Σ|vᵢ|²) without intermediate overflow or underflow.
func (v *Vector[K, N]) TwoNorm() float64 { return twoNorm(v.raw()) }

// TwoNorm2 returns Σ|vᵢ|².
func (v *Vector[K, N]) TwoNorm2() float64 { return sumAbs2(v.raw()) }

// InfinityNorm returns max|vᵢ|.
func (v *Vector[K, N]) InfinityNorm() float64 { return maxAbs(v.raw(), false) }

// InfinityNormReal returns max(|re vᵢ| + |im vᵢ|).
func (v *Vector[K, N]) InfinityNormReal() float64 { return maxAbs(v.raw(), true) }

// ---------- Matrix norms ----------

// FrobeniusNorm returns sqrt(Σ|aᵢⱼ|²) without intermediate overflow or underflow.
// Complexity: O(r*c).
func (m *Matrix[K, R, C]) FrobeniusNorm() float64 { return twoNorm(m.raw()) }

// FrobeniusNorm2 returns Σ|aᵢⱼ|².
// Complexity: O(r*c).
func (m *Matrix[K, R, C]) FrobeniusNorm2() float64 { return sumAbs2(m.raw()) }

// InfinityNorm returns the maximum absolute row sum, max_i Σ_j |aᵢⱼ|.
// Complexity: O(r*c).
func (m *Matrix[K, R, C]) InfinityNorm() float64 { return m.rowSumMax(false) }

// InfinityNormReal returns max_i Σ_j (|re aᵢⱼ| + |im aᵢⱼ|), the row-sum norm
// built on the same magnitude that elimination uses for pivot selection.
// For real K it equals InfinityNorm.
// Complexity: O(r*c).
func (m *Matrix[K, R, C]) InfinityNormReal() float64 { return m.rowSumMax(true) }

func (m *Matrix[K, R, C]) rowSumMax(reim bool) float64 {
	m.raw()
	best := normZero
	for i := range m.rows {
		if s := sumAbs(m.rows[i].data, reim); s > best {
			best = s
		}
	}

	return best
}
