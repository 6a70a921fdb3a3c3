package source

import (
	"strings"

	"zomato-insights/models"
)

// Source delivers the raw dataset rows. Implementations read the source
// exactly once per Fetch call; memoization is the loader's job.
type Source interface {
	Fetch() ([]*models.RawRecord, error)
	Name() string
}

// Column names the pipeline expects in the source. A source missing any of
// them still loads: the absent column is treated as all-empty so every
// RawRecord carries the full field set.
const (
	colName     = "name"
	colLocation = "location"
	colCity     = "listed_in(city)"
	colRestType = "rest_type"
	colCuisines = "cuisines"
	colRate     = "rate"
	colVotes    = "votes"
	colCost     = "approx_cost(for two people)"
)

// columnIndex maps each expected column to its position in the header, or
// -1 when the column is absent. Header matching is case-insensitive.
type columnIndex struct {
	name, location, city, restType, cuisines, rate, votes, cost int
}

func indexColumns(header []string) columnIndex {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	at := func(col string) int {
		if i, ok := pos[col]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		name:     at(colName),
		location: at(colLocation),
		city:     at(colCity),
		restType: at(colRestType),
		cuisines: at(colCuisines),
		rate:     at(colRate),
		votes:    at(colVotes),
		cost:     at(colCost),
	}
}

// cell returns row[i] or the empty string when the column is absent or the
// row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func (ci columnIndex) record(row []string) *models.RawRecord {
	return &models.RawRecord{
		Name:     cell(row, ci.name),
		Location: cell(row, ci.location),
		City:     cell(row, ci.city),
		RestType: cell(row, ci.restType),
		Cuisines: cell(row, ci.cuisines),
		Rate:     cell(row, ci.rate),
		Votes:    cell(row, ci.votes),
		Cost:     cell(row, ci.cost),
	}
}
