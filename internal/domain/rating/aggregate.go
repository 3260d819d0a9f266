package rating

import "math"

// Aggregate is the denormalized rating summary cached on a restaurant.
type Aggregate struct {
	AverageRating float64
	ReviewCount   int
}

// Recompute derives the aggregate from the full current star set of one
// restaurant. The mean is rounded half away from zero to 2 decimals; an
// empty set averages to exactly 0.
func Recompute(stars []float64) Aggregate {
	if len(stars) == 0 {
		return Aggregate{}
	}
	var sum float64
	for _, s := range stars {
		sum += s
	}
	mean := sum / float64(len(stars))
	return Aggregate{
		AverageRating: roundTo2(mean),
		ReviewCount:   len(stars),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
