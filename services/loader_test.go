package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"zomato-insights/models"
	"zomato-insights/source"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zomato.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderLoadsAndMemoizes(t *testing.T) {
	path := writeTempCSV(t,
		"name,location,listed_in(city),rest_type,cuisines,rate,votes,approx_cost(for two people)\n"+
			"Truffles,Koramangala,BTM,Casual Dining,\"Burger, American\",4.7/5,14726,900\n"+
			"New Spot,Indiranagar,BTM,Cafe,Chinese,NEW,,\n")

	loader := NewLoader(source.NewCSVSource(path), newTestLogger())

	first, err := loader.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("got %d records, want 2", len(first))
	}
	if first[0].Name != "Truffles" || first[0].PriceCategory != models.PriceHigh {
		t.Errorf("first record: %+v", first[0])
	}
	if first[1].Rating != nil {
		t.Errorf("NEW rating must load as missing, got %v", *first[1].Rating)
	}

	second, err := loader.Load()
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if &first[0] != &second[0] {
		t.Error("repeated Load must return the identical cached table")
	}
}

func TestLoaderDefaultsMissingColumns(t *testing.T) {
	// Source with only two of the expected columns: everything else must
	// come back as missing, and the derived category as Unknown.
	path := writeTempCSV(t, "name,votes\nCTR,4400\n")

	table, err := NewLoader(source.NewCSVSource(path), newTestLogger()).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	r := table[0]
	if r.Name != "CTR" || r.Votes == nil || *r.Votes != 4400 {
		t.Fatalf("present columns mishandled: %+v", r)
	}
	if r.Location != "" || r.Cuisines != "" || r.Rating != nil || r.CostForTwo != nil {
		t.Errorf("absent columns must be missing: %+v", r)
	}
	if r.PriceCategory != models.PriceUnknown {
		t.Errorf("price category: got %s, want Unknown", r.PriceCategory)
	}
}

func TestLoaderSourceUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	loader := NewLoader(source.NewCSVSource(missing), newTestLogger())

	table, err := loader.Load()
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("got %v, want ErrSourceUnavailable", err)
	}
	if table != nil {
		t.Error("failed load must not return a partial table")
	}
}

func TestLoaderDoesNotCacheFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late.csv")
	loader := NewLoader(source.NewCSVSource(path), newTestLogger())

	if _, err := loader.Load(); !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("got %v, want ErrSourceUnavailable", err)
	}

	content := "name\nEmpire\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := loader.Load()
	if err != nil {
		t.Fatalf("load after fixing the source failed: %v", err)
	}
	if len(table) != 1 || table[0].Name != "Empire" {
		t.Errorf("got %+v", table)
	}
}
