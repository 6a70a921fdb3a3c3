package models

// ValueCount is one entry of a frequency distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GroupProfile holds the per-group statistics of a grouped profile.
// Mean fields are nil when no record in the group carries the value.
type GroupProfile struct {
	Key       string   `json:"key"`
	Count     int      `json:"count"`
	AvgRating *float64 `json:"avg_rating"`
	AvgVotes  *float64 `json:"avg_votes"`
	AvgCost   *float64 `json:"avg_cost"`
}

// RankedRestaurant is the fixed projection returned by top-N rankings.
// Rank starts at 1.
type RankedRestaurant struct {
	Rank       int      `json:"rank"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Rating     *float64 `json:"rating"`
	Votes      *int     `json:"votes"`
	CostForTwo *float64 `json:"cost_for_two"`
}

// SearchResult is the projection returned by name search.
type SearchResult struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Cuisines   string   `json:"cuisines"`
	RestType   string   `json:"rest_type"`
	Rating     *float64 `json:"rating"`
	Votes      *int     `json:"votes"`
	CostForTwo *float64 `json:"cost_for_two"`
}

// Correlation is a symmetric pairwise-complete Pearson correlation matrix.
// Values[i][j] is the coefficient between Fields[i] and Fields[j]; cells
// with fewer than two complete pairs or zero variance are NaN.
type Correlation struct {
	Fields []Field
	Values [][]float64
}

// SummaryStats mirrors the overview metrics of the dashboard: a record
// count plus means over present values only. Means are nil when no record
// carries the value; TotalVotes is the sum over present values (0 if none).
type SummaryStats struct {
	Total      int      `json:"total"`
	AvgRating  *float64 `json:"avg_rating"`
	AvgCost    *float64 `json:"avg_cost"`
	TotalVotes int      `json:"total_votes"`
}
