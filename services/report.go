package services

import (
	"fmt"
	"math"
	"strings"

	"zomato-insights/models"
)

// InsightReport bundles the dashboard numbers for the terminal report.
type InsightReport struct {
	Summary           *models.SummaryStats
	TopLocations      []models.ValueCount
	TopCities         []models.ValueCount
	TopTypes          []models.ValueCount
	TopCuisines       []models.ValueCount
	PriceDistribution []models.ValueCount
	LocationProfiles  []models.GroupProfile
	TopRated          []models.RankedRestaurant
	MostVoted         []models.RankedRestaurant
	Correlation       *models.Correlation
}

// Generate computes the full report over the given table. topN bounds
// every ranking and distribution in the report.
func (s *InsightService) Generate(records []*models.Restaurant, topN int) *InsightReport {
	topLocations := s.FrequencyCount(records, models.FieldLocation, topN)
	keys := make([]string, 0, len(topLocations))
	for _, vc := range topLocations {
		keys = append(keys, vc.Value)
	}

	return &InsightReport{
		Summary:           s.Summary(records),
		TopLocations:      topLocations,
		TopCities:         s.FrequencyCount(records, models.FieldCity, topN),
		TopTypes:          s.FrequencyCount(records, models.FieldRestType, topN),
		TopCuisines:       s.ExplodedFrequencyCount(records, models.FieldCuisines, topN),
		PriceDistribution: s.FrequencyCount(records, models.FieldPriceCategory, 0),
		LocationProfiles:  s.GroupedProfile(records, models.FieldLocation, keys),
		TopRated:          s.TopNBy(records, models.FieldRating, topN),
		MostVoted:         s.TopNBy(records, models.FieldVotes, topN),
		Correlation: s.CorrelationMatrix(records,
			[]models.Field{models.FieldRating, models.FieldVotes, models.FieldCost}),
	}
}

// Print renders the report to stdout.
func (s *InsightService) Print(r *InsightReport) {
	sep := strings.Repeat("═", 58)
	thin := strings.Repeat("─", 58)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🍽️  ZOMATO BENGALURU INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Restaurants     : \033[1m%d\033[0m\n", r.Summary.Total)
	fmt.Printf("  Average rating  : \033[1m%s\033[0m\n", fmtMean(r.Summary.AvgRating, "%.2f/5.0"))
	fmt.Printf("  Average cost x2 : \033[1m%s\033[0m\n", fmtMean(r.Summary.AvgCost, "%.0f INR"))
	fmt.Printf("  Total votes     : \033[1m%d\033[0m\n\n", r.Summary.TotalVotes)

	printCounts("Top Locations", r.TopLocations, thin)
	printCounts("Top Cuisines", r.TopCuisines, thin)
	printCounts("Restaurant Types", r.TopTypes, thin)
	printCounts("Price Categories", r.PriceDistribution, thin)

	fmt.Printf("\033[1;33m  Location Profiles\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, p := range r.LocationProfiles {
		fmt.Printf("  %-26s %5d  rate %s  cost %s\n",
			truncate(p.Key, 24), p.Count,
			fmtMean(p.AvgRating, "%.2f"), fmtMean(p.AvgCost, "%.0f"))
	}
	fmt.Println()

	printRanked("Top Rated", r.TopRated, thin, func(rr models.RankedRestaurant) string {
		return fmtMean(rr.Rating, "%.1f ★")
	})
	printRanked("Most Voted", r.MostVoted, thin, func(rr models.RankedRestaurant) string {
		if rr.Votes == nil {
			return "N/A"
		}
		return fmt.Sprintf("%d votes", *rr.Votes)
	})

	fmt.Printf("\033[1;33m  Correlation (rating / votes / cost)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for i, f := range r.Correlation.Fields {
		cells := make([]string, len(r.Correlation.Fields))
		for j, v := range r.Correlation.Values[i] {
			if math.IsNaN(v) {
				cells[j] = "   N/A"
			} else {
				cells[j] = fmt.Sprintf("%+.3f", v)
			}
		}
		fmt.Printf("  %-8s %s\n", f, strings.Join(cells, "  "))
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func printCounts(title string, counts []models.ValueCount, thin string) {
	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	if len(counts) == 0 {
		fmt.Printf("  No data\n\n")
		return
	}
	max := counts[0].Count
	for _, vc := range counts {
		barLen := 0
		if max > 0 {
			barLen = vc.Count * 30 / max
		}
		fmt.Printf("  %-26s %s (%d)\n",
			truncate(vc.Value, 24), strings.Repeat("█", barLen), vc.Count)
	}
	fmt.Println()
}

func printRanked(title string, ranked []models.RankedRestaurant, thin string,
	metric func(models.RankedRestaurant) string) {
	fmt.Printf("\033[1;33m  %s\033[0m\n", title)
	fmt.Printf("  %s\n", thin)
	if len(ranked) == 0 {
		fmt.Printf("  No data\n\n")
		return
	}
	for _, rr := range ranked {
		fmt.Printf("  \033[1m%2d.\033[0m %-36s \033[1;32m%s\033[0m\n",
			rr.Rank, truncate(rr.Name, 34), metric(rr))
	}
	fmt.Println()
}

func fmtMean(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
