package services

import (
	"zomato-insights/models"
)

// FilterSpec is the composable filter over the normalized table. The zero
// value matches every record that has a rating (MinRating 0 still excludes
// unrated records); empty Location and PriceCategory mean "no constraint",
// never "match missing".
type FilterSpec struct {
	Location      string
	PriceCategory models.PriceCategory
	MinRating     float64
}

// Filter returns the records satisfying all predicates of spec. The input
// slice is never mutated; applying two specs in sequence yields the same
// set as one spec combining their constraints.
func Filter(records []*models.Restaurant, spec FilterSpec) []*models.Restaurant {
	result := make([]*models.Restaurant, 0, len(records))
	for _, r := range records {
		if spec.matches(r) {
			result = append(result, r)
		}
	}
	return result
}

func (spec FilterSpec) matches(r *models.Restaurant) bool {
	if spec.Location != "" && r.Location != spec.Location {
		return false
	}
	if spec.PriceCategory != "" && r.PriceCategory != spec.PriceCategory {
		return false
	}
	// Three-valued rating comparison: an absent rating fails the threshold
	// outright. No numeric sentinel stands in for it, so no threshold value
	// can admit an unrated record.
	if r.Rating == nil {
		return false
	}
	return *r.Rating >= spec.MinRating
}
