package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"zomato-insights/models"
)

// CSVSource reads the dataset from a CSV file with a header row.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string { return s.path }

// Fetch reads the whole file into raw records. The header row decides the
// column layout; rows may be ragged (short rows pad with empty cells).
func (s *CSVSource) Fetch() ([]*models.RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header of %q: %w", s.path, err)
	}
	ci := indexColumns(header)

	var records []*models.RawRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row of %q: %w", s.path, err)
		}
		records = append(records, ci.record(row))
	}
	return records, nil
}
