package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"zomato-insights/models"
	"zomato-insights/utils"
)

func fptr(v float64) *float64 { return &v }

func testServer() *Server {
	table := []*models.Restaurant{
		{Name: "Truffles", Location: "Koramangala", Rating: fptr(4.7), PriceCategory: models.PriceHigh},
		{Name: "CTR", Location: "Malleshwaram", Rating: fptr(4.8), PriceCategory: models.PriceEconomic},
		{Name: "Unrated", Location: "Koramangala", PriceCategory: models.PriceUnknown},
	}
	return New(table, utils.NewLoggerAt(utils.LevelError))
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	testServer().router().ServeHTTP(w, req)
	return w
}

func TestSummaryAppliesFilters(t *testing.T) {
	w := get(t, "/api/summary?location=Koramangala")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var got models.SummaryStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	// Unrated fails the default min_rating 0, so only Truffles remains.
	if got.Total != 1 {
		t.Errorf("total: got %d, want 1", got.Total)
	}
}

func TestNegativeMinRatingDoesNotAdmitUnrated(t *testing.T) {
	w := get(t, "/api/summary?location=Koramangala&min_rating=-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var got models.SummaryStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	// Only rated Truffles may appear; Unrated must stay excluded even for
	// a crafted negative threshold.
	if got.Total != 1 {
		t.Errorf("total: got %d, want 1", got.Total)
	}
}

func TestFrequencyRequiresField(t *testing.T) {
	if w := get(t, "/api/frequency"); w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestTopRejectsTextFields(t *testing.T) {
	if w := get(t, "/api/top?by=name"); w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	w := get(t, "/api/search?q=")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var got struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Total != 0 {
		t.Errorf("total: got %d, want 0", got.Total)
	}
}

func TestCorrelationSerializesUndefinedAsNull(t *testing.T) {
	// One Koramangala record with a rating: every off-diagonal pair has at
	// most one complete observation, so all of them must be null.
	w := get(t, "/api/correlation?location=Koramangala")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var got struct {
		Values [][]*float64 `json:"values"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Values) != 3 {
		t.Fatalf("want 3x3 matrix, got %d rows", len(got.Values))
	}
	if got.Values[0][0] == nil || *got.Values[0][0] != 1.0 {
		t.Error("diagonal must serialize as 1.0")
	}
	if got.Values[0][1] != nil {
		t.Errorf("undefined cell must be null, got %v", *got.Values[0][1])
	}
}
