package services

import "math"

// fuzzySet is a membership function sampled over a unit-step domain.
type fuzzySet struct {
	domain      []float64
	memberships []float64
}

// unitRange discretizes [0, limit) at unit steps.
func unitRange(limit float64) []float64 {
	count := int(math.Ceil(limit))
	if count < 1 {
		count = 1
	}
	points := make([]float64, count)
	for i := range points {
		points[i] = float64(i)
	}
	return points
}

// triangleAt evaluates a triangular membership function with corners
// a <= b <= c at x: 0 outside the support, 1 at the peak, linear between.
func triangleAt(x, a, b, c float64) float64 {
	if x == b {
		return 1
	}
	if x > a && x < b {
		return (x - a) / (b - a)
	}
	if x > b && x < c {
		return (c - x) / (c - b)
	}
	return 0
}

func newTriangleSet(domain []float64, a, b, c float64) fuzzySet {
	memberships := make([]float64, len(domain))
	for i, x := range domain {
		memberships[i] = triangleAt(x, a, b, c)
	}
	return fuzzySet{domain: domain, memberships: memberships}
}

// membershipAt interpolates x's membership degree between the sampled points.
// Outside the domain the edge sample applies.
func (set fuzzySet) membershipAt(x float64) float64 {
	last := len(set.domain) - 1
	if last < 0 {
		return 0
	}
	if x <= set.domain[0] {
		return set.memberships[0]
	}
	if x >= set.domain[last] {
		return set.memberships[last]
	}

	lower := int(math.Floor(x))
	fraction := x - float64(lower)
	return set.memberships[lower]*(1-fraction) + set.memberships[lower+1]*fraction
}

func (set fuzzySet) scaled(degree float64) fuzzySet {
	memberships := make([]float64, len(set.memberships))
	for i, value := range set.memberships {
		memberships[i] = value * degree
	}
	return fuzzySet{domain: set.domain, memberships: memberships}
}

// centroid defuzzifies the set into one crisp value. A set with zero total
// weight has no centroid; the domain midpoint stands in so scaling a set down
// to nothing never divides by zero.
func (set fuzzySet) centroid() float64 {
	var weighted, total float64
	for i, x := range set.domain {
		weighted += x * set.memberships[i]
		total += set.memberships[i]
	}
	if total == 0 {
		if len(set.domain) == 0 {
			return 0
		}
		return (set.domain[0] + set.domain[len(set.domain)-1]) / 2
	}
	return weighted / total
}
