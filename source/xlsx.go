package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"zomato-insights/models"
)

// XLSXSource reads the dataset from the first sheet of a spreadsheet.
type XLSXSource struct {
	path string
}

// NewXLSXSource creates an XLSXSource for the given file path.
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

func (s *XLSXSource) Name() string { return s.path }

// Fetch reads all rows of the first sheet; the first row is the header.
func (s *XLSXSource) Fetch() ([]*models.RawRecord, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %q: %w", s.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: %q has no sheets", s.path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ci := indexColumns(rows[0])
	records := make([]*models.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, ci.record(row))
	}
	return records, nil
}
