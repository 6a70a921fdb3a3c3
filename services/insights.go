package services

import (
	"math"
	"sort"
	"strings"

	"zomato-insights/models"
	"zomato-insights/utils"
)

// InsightService computes aggregate statistics over a (typically filtered)
// table. Every operation is a pure pass over the input slice; missing
// values are excluded per computation, never coerced to zero.
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates an InsightService with the given logger.
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Summary computes the overview metrics: record count, mean rating and
// mean cost over present values (nil when none), and total votes.
func (s *InsightService) Summary(records []*models.Restaurant) *models.SummaryStats {
	stats := &models.SummaryStats{Total: len(records)}

	var ratingSum, costSum float64
	var ratingN, costN int
	for _, r := range records {
		if r.Rating != nil {
			ratingSum += *r.Rating
			ratingN++
		}
		if r.CostForTwo != nil {
			costSum += *r.CostForTwo
			costN++
		}
		if r.Votes != nil {
			stats.TotalVotes += *r.Votes
		}
	}
	if ratingN > 0 {
		avg := round2(ratingSum / float64(ratingN))
		stats.AvgRating = &avg
	}
	if costN > 0 {
		avg := round2(costSum / float64(costN))
		stats.AvgCost = &avg
	}
	return stats
}

// FrequencyCount returns the value distribution of a categorical field,
// ordered by descending count with ties in first-seen order. Records where
// the field is missing contribute nothing. topN <= 0 means no truncation.
func (s *InsightService) FrequencyCount(records []*models.Restaurant, field models.Field, topN int) []models.ValueCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		v, ok := r.TextField(field)
		if !ok {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	return rankCounts(counts, order, topN)
}

// ExplodedFrequencyCount treats the field as a comma-separated list (the
// cuisines column), explodes each record into trimmed sub-values, then
// counts the sub-values like FrequencyCount.
func (s *InsightService) ExplodedFrequencyCount(records []*models.Restaurant, field models.Field, topN int) []models.ValueCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		v, ok := r.TextField(field)
		if !ok {
			continue
		}
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, seen := counts[part]; !seen {
				order = append(order, part)
			}
			counts[part]++
		}
	}
	return rankCounts(counts, order, topN)
}

// rankCounts orders a count map by descending count, breaking ties by the
// first-seen order captured while counting.
func rankCounts(counts map[string]int, order []string, topN int) []models.ValueCount {
	result := make([]models.ValueCount, 0, len(order))
	for _, v := range order {
		result = append(result, models.ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}

// GroupedProfile computes per-group statistics for the given keys of a
// grouping field: record count plus mean rating, votes and cost over
// present values only. Groups come back in descending count order, ties in
// the order the keys were given. Keys with no matching records are dropped.
func (s *InsightService) GroupedProfile(records []*models.Restaurant, groupField models.Field, groupKeys []string) []models.GroupProfile {
	type acc struct {
		count                        int
		ratingSum, votesSum, costSum float64
		ratingN, votesN, costN       int
	}
	accs := make(map[string]*acc, len(groupKeys))
	for _, k := range groupKeys {
		accs[k] = &acc{}
	}

	for _, r := range records {
		v, ok := r.TextField(groupField)
		if !ok {
			continue
		}
		a, wanted := accs[v]
		if !wanted {
			continue
		}
		a.count++
		if r.Rating != nil {
			a.ratingSum += *r.Rating
			a.ratingN++
		}
		if r.Votes != nil {
			a.votesSum += float64(*r.Votes)
			a.votesN++
		}
		if r.CostForTwo != nil {
			a.costSum += *r.CostForTwo
			a.costN++
		}
	}

	mean := func(sum float64, n int) *float64 {
		if n == 0 {
			return nil
		}
		m := round2(sum / float64(n))
		return &m
	}

	profiles := make([]models.GroupProfile, 0, len(groupKeys))
	for _, k := range groupKeys {
		a := accs[k]
		if a.count == 0 {
			continue
		}
		profiles = append(profiles, models.GroupProfile{
			Key:       k,
			Count:     a.count,
			AvgRating: mean(a.ratingSum, a.ratingN),
			AvgVotes:  mean(a.votesSum, a.votesN),
			AvgCost:   mean(a.costSum, a.costN),
		})
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Count > profiles[j].Count
	})
	return profiles
}

// TopNBy returns the n records with the largest value of a numeric field,
// among records where the field is present. Ties keep the original table
// order; ranks are 1-indexed.
func (s *InsightService) TopNBy(records []*models.Restaurant, field models.Field, n int) []models.RankedRestaurant {
	type candidate struct {
		rec   *models.Restaurant
		value float64
	}
	var candidates []candidate
	for _, r := range records {
		if v, ok := r.NumericField(field); ok {
			candidates = append(candidates, candidate{rec: r, value: v})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].value > candidates[j].value
	})
	if n > 0 && len(candidates) > n {
		candidates = candidates[:n]
	}

	ranked := make([]models.RankedRestaurant, 0, len(candidates))
	for i, c := range candidates {
		ranked = append(ranked, models.RankedRestaurant{
			Rank:       i + 1,
			Name:       c.rec.Name,
			Location:   c.rec.Location,
			Rating:     c.rec.Rating,
			Votes:      c.rec.Votes,
			CostForTwo: c.rec.CostForTwo,
		})
	}
	return ranked
}

// CorrelationMatrix computes pairwise-complete Pearson correlation over
// the given numeric fields: each cell uses exactly the records where both
// fields of that pair are present, independent of missingness elsewhere.
// The diagonal is exactly 1.0; cells with fewer than two complete pairs or
// zero variance are NaN.
func (s *InsightService) CorrelationMatrix(records []*models.Restaurant, fields []models.Field) *models.Correlation {
	n := len(fields)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		values[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			r := pearson(records, fields[i], fields[j])
			values[i][j] = r
			values[j][i] = r
		}
	}
	return &models.Correlation{Fields: fields, Values: values}
}

// pearson computes the Pearson coefficient over records where both fields
// are present.
func pearson(records []*models.Restaurant, fx, fy models.Field) float64 {
	var xs, ys []float64
	for _, r := range records {
		x, okX := r.NumericField(fx)
		y, okY := r.NumericField(fy)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	n := float64(len(xs))
	if len(xs) < 2 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
