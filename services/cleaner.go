package services

import (
	"math"
	"strconv"
	"strings"

	"zomato-insights/models"
	"zomato-insights/utils"
)

// ratingSentinels are the markers the source uses for "no rating yet".
var ratingSentinels = map[string]struct{}{
	"NEW": {},
	"-":   {},
	"":    {},
	"nan": {},
}

// Price bands for CategorizePrice. Bands are half-open: a cost equal to a
// boundary falls into the band above it.
const (
	priceEconomicMax = 300
	priceModerateMax = 700
	priceHighMax     = 1500
)

// Cleaner transforms RawRecords into typed Restaurants. Unparseable cells
// become missing values; no record is ever dropped.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean processes raw records and returns the normalized table.
func (c *Cleaner) Clean(raw []*models.RawRecord) []*models.Restaurant {
	result := make([]*models.Restaurant, 0, len(raw))

	var missingRatings, missingCosts int
	for _, r := range raw {
		cost := ParseCost(r.Cost)
		rest := &models.Restaurant{
			Name:          strings.TrimSpace(r.Name),
			Location:      strings.TrimSpace(r.Location),
			City:          strings.TrimSpace(r.City),
			RestType:      strings.TrimSpace(r.RestType),
			Cuisines:      strings.TrimSpace(r.Cuisines),
			Rating:        ParseRating(r.Rate),
			CostForTwo:    cost,
			Votes:         ParseVotes(r.Votes),
			PriceCategory: CategorizePrice(cost),
		}
		if rest.Rating == nil {
			missingRatings++
		}
		if rest.CostForTwo == nil {
			missingCosts++
		}
		result = append(result, rest)
	}

	c.logger.Info("[cleaner] Normalized %d records (%d without rating, %d without cost)",
		len(result), missingRatings, missingCosts)
	return result
}

// ParseRating parses a raw rating cell of the form "X.Y/5". The sentinel
// markers "NEW", "-", "nan" and the empty string mean "not rated yet" and
// map to nil, as does anything that fails to parse. Values are not clamped
// to [0,5]; the source format makes out-of-range numbers unreachable.
func ParseRating(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if _, sentinel := ratingSentinels[raw]; sentinel {
		return nil
	}
	left, _, _ := strings.Cut(raw, "/")
	return finite(strconv.ParseFloat(strings.TrimSpace(left), 64))
}

// ParseCost parses a cost cell that may carry thousands-separator commas,
// e.g. "1,200". Anything that fails to parse maps to nil.
func ParseCost(raw string) *float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	return finite(strconv.ParseFloat(raw, 64))
}

// finite downgrades parse failures and non-finite results to missing.
// strconv.ParseFloat accepts spellings like "NaN" and "inf"; a NaN or
// infinite cell carries no usable value and must not count as present.
func finite(v float64, err error) *float64 {
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseVotes parses a vote count. Anything that fails to parse maps to nil.
func ParseVotes(raw string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

// CategorizePrice derives the price band from a cost-for-two value.
// A missing cost always yields PriceUnknown and nothing else does.
func CategorizePrice(cost *float64) models.PriceCategory {
	switch {
	case cost == nil:
		return models.PriceUnknown
	case *cost < priceEconomicMax:
		return models.PriceEconomic
	case *cost < priceModerateMax:
		return models.PriceModerate
	case *cost < priceHighMax:
		return models.PriceHigh
	default:
		return models.PriceLuxury
	}
}
