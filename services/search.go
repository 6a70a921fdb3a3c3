package services

import (
	"strings"

	"zomato-insights/models"
)

// Search returns the records whose name contains query, case-insensitive.
// Records without a name never match. A blank query matches nothing: the
// search box is the only caller and an empty box means "no search".
func Search(records []*models.Restaurant, query string) []models.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []models.SearchResult{}
	}

	results := make([]models.SearchResult, 0)
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		results = append(results, models.SearchResult{
			Name:       r.Name,
			Location:   r.Location,
			Cuisines:   r.Cuisines,
			RestType:   r.RestType,
			Rating:     r.Rating,
			Votes:      r.Votes,
			CostForTwo: r.CostForTwo,
		})
	}
	return results
}
