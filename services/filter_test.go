package services

import (
	"testing"

	"zomato-insights/models"
)

func sampleTable() []*models.Restaurant {
	return []*models.Restaurant{
		{Name: "Truffles", Location: "Koramangala", Rating: fptr(4.7), PriceCategory: models.PriceHigh},
		{Name: "CTR", Location: "Malleshwaram", Rating: fptr(4.8), PriceCategory: models.PriceEconomic},
		{Name: "Unrated Cafe", Location: "Koramangala", Rating: nil, PriceCategory: models.PriceEconomic},
		{Name: "Onesta", Location: "Koramangala", Rating: fptr(4.0), PriceCategory: models.PriceModerate},
	}
}

func names(records []*models.Restaurant) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestFilterByLocation(t *testing.T) {
	got := Filter(sampleTable(), FilterSpec{Location: "Koramangala"})
	want := []string{"Truffles", "Onesta"} // Unrated Cafe fails MinRating 0
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", names(got), want)
	}
	for i, n := range want {
		if got[i].Name != n {
			t.Errorf("record %d: got %q, want %q", i, got[i].Name, n)
		}
	}
}

func TestFilterMissingRatingNeverPasses(t *testing.T) {
	// An unrated restaurant is excluded at threshold 0.0 exactly as at 3.0.
	for _, minRating := range []float64{0.0, 3.0} {
		got := Filter(sampleTable(), FilterSpec{MinRating: minRating})
		for _, r := range got {
			if r.Name == "Unrated Cafe" {
				t.Errorf("minRating=%.1f: unrated record passed the filter", minRating)
			}
		}
	}
}

func TestFilterNegativeThresholdStillExcludesMissing(t *testing.T) {
	// No threshold value may admit an unrated record; there is no sentinel
	// to undercut.
	got := Filter(sampleTable(), FilterSpec{MinRating: -1})
	for _, r := range got {
		if r.Rating == nil {
			t.Fatalf("unrated record %q passed MinRating -1", r.Name)
		}
	}
	if len(got) != 3 {
		t.Errorf("rated records must still pass: got %v", names(got))
	}
}

func TestFilterMinRating(t *testing.T) {
	got := Filter(sampleTable(), FilterSpec{MinRating: 4.5})
	if len(got) != 2 {
		t.Fatalf("got %v, want [Truffles CTR]", names(got))
	}
}

func TestFilterIsAssociative(t *testing.T) {
	table := sampleTable()

	byLocation := FilterSpec{Location: "Koramangala"}
	byPrice := FilterSpec{PriceCategory: models.PriceModerate}
	combined := FilterSpec{Location: "Koramangala", PriceCategory: models.PriceModerate}

	ab := Filter(Filter(table, byLocation), byPrice)
	ba := Filter(Filter(table, byPrice), byLocation)
	once := Filter(table, combined)

	if len(ab) != len(ba) || len(ab) != len(once) {
		t.Fatalf("filter orders disagree: %v / %v / %v", names(ab), names(ba), names(once))
	}
	for i := range ab {
		if ab[i] != ba[i] || ab[i] != once[i] {
			t.Errorf("record %d differs across filter orders", i)
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	table := sampleTable()
	before := names(table)

	Filter(table, FilterSpec{Location: "Koramangala", MinRating: 4.5})

	for i, n := range names(table) {
		if n != before[i] {
			t.Fatal("input table mutated by Filter")
		}
	}
}

func TestFilterEmptyResult(t *testing.T) {
	got := Filter(sampleTable(), FilterSpec{Location: "Nowhere"})
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", got)
	}
}
