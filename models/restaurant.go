package models

// RawRecord holds one unprocessed row of the Zomato dataset exactly as it
// appears in the source. Every field is a raw string; blank means the cell
// was empty or the column was absent from the source entirely.
// RawRecords exist only while the loader runs.
type RawRecord struct {
	Name     string
	Location string
	City     string // "listed_in(city)" column
	RestType string
	Cuisines string
	Rate     string // e.g. "4.1/5", "NEW", "-"
	Votes    string
	Cost     string // "approx_cost(for two people)", e.g. "1,200"
}

// Restaurant is the cleaned, typed record the whole pipeline operates on.
// Numeric fields use pointers: nil means the source value was absent or
// unparseable, which is distinct from zero. Text fields use the empty
// string (after trimming) as the missing state.
type Restaurant struct {
	Name          string        `json:"name"`
	Location      string        `json:"location"`
	City          string        `json:"city"`
	RestType      string        `json:"rest_type"`
	Cuisines      string        `json:"cuisines"` // comma-separated list, kept raw
	Rating        *float64      `json:"rating"`
	CostForTwo    *float64      `json:"cost_for_two"`
	Votes         *int          `json:"votes"`
	PriceCategory PriceCategory `json:"price_category"`
}

// PriceCategory is the derived cost band of a restaurant.
type PriceCategory string

const (
	PriceEconomic PriceCategory = "Economic"
	PriceModerate PriceCategory = "Moderate"
	PriceHigh     PriceCategory = "High"
	PriceLuxury   PriceCategory = "Luxury"
	PriceUnknown  PriceCategory = "Unknown"
)

// Field names a restaurant column for the parameterized aggregation
// operations. Text and numeric fields are disjoint sets.
type Field string

const (
	FieldName          Field = "name"
	FieldLocation      Field = "location"
	FieldCity          Field = "city"
	FieldRestType      Field = "rest_type"
	FieldCuisines      Field = "cuisines"
	FieldPriceCategory Field = "price_category"
	FieldRating        Field = "rate"
	FieldVotes         Field = "votes"
	FieldCost          Field = "cost"
)

// TextField returns the value of a categorical field and whether it is
// present. Unknown field names and missing values report ok=false.
func (r *Restaurant) TextField(f Field) (string, bool) {
	var v string
	switch f {
	case FieldName:
		v = r.Name
	case FieldLocation:
		v = r.Location
	case FieldCity:
		v = r.City
	case FieldRestType:
		v = r.RestType
	case FieldCuisines:
		v = r.Cuisines
	case FieldPriceCategory:
		v = string(r.PriceCategory)
	default:
		return "", false
	}
	return v, v != ""
}

// NumericField returns the value of a numeric field and whether it is
// present. Unknown field names and missing values report ok=false.
func (r *Restaurant) NumericField(f Field) (float64, bool) {
	switch f {
	case FieldRating:
		if r.Rating != nil {
			return *r.Rating, true
		}
	case FieldVotes:
		if r.Votes != nil {
			return float64(*r.Votes), true
		}
	case FieldCost:
		if r.CostForTwo != nil {
			return *r.CostForTwo, true
		}
	}
	return 0, false
}
