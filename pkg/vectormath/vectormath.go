// Package vectormath implements the small amount of linear algebra the
// taste engine needs over pgvector-style float32 slices. Every operation
// that combines two vectors enforces equal dimensions; a mismatch is a
// data-integrity bug, never silently coerced.
package vectormath

import (
	"errors"
	"math"
)

var ErrDimensionMismatch = errors.New("vectormath: dimension mismatch")

func Dot(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum, nil
}

func Norm(a []float32) float64 {
	var sum float64
	for _, v := range a {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// CosineSimilarity returns the cosine of the angle between a and b in
// [-1, 1]. A zero vector has no direction; similarity against it is 0.
func CosineSimilarity(a, b []float32) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (na * nb), nil
}

// Normalize returns a unit-length copy of a. Zero vectors are returned
// unchanged.
func Normalize(a []float32) []float32 {
	n := Norm(a)
	out := make([]float32, len(a))
	if n == 0 {
		copy(out, a)
		return out
	}
	for i, v := range a {
		out[i] = float32(float64(v) / n)
	}
	return out
}

// Centroid averages a non-empty set of same-dimension vectors. An empty
// set yields nil without error so callers can branch on it.
func Centroid(vs [][]float32) ([]float32, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	dim := len(vs[0])
	acc := make([]float64, dim)
	for _, v := range vs {
		if len(v) != dim {
			return nil, ErrDimensionMismatch
		}
		for i, x := range v {
			acc[i] += float64(x)
		}
	}
	out := make([]float32, dim)
	for i, x := range acc {
		out[i] = float32(x / float64(len(vs)))
	}
	return out, nil
}

// Cohesion is the mean pairwise cosine similarity of a set of vectors.
// Fewer than two vectors are trivially cohesive.
func Cohesion(vs [][]float32) (float64, error) {
	if len(vs) < 2 {
		return 1, nil
	}
	var sum float64
	var pairs int
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			s, err := CosineSimilarity(vs[i], vs[j])
			if err != nil {
				return 0, err
			}
			sum += s
			pairs++
		}
	}
	return sum / float64(pairs), nil
}

// Damp subtracts factor*away from base, the pull used to bias a profile
// away from skipped venues.
func Damp(base, away []float32, factor float64) ([]float32, error) {
	if len(base) != len(away) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float32, len(base))
	for i := range base {
		out[i] = base[i] - float32(factor*float64(away[i]))
	}
	return out, nil
}
