package source

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"zomato-insights/models"
)

// SQLiteSource reads the dataset from a table in a SQLite database, for
// setups where the CSV has been pre-loaded into SQLite. Column values are
// read as text and go through the same parsers as the CSV path.
type SQLiteSource struct {
	path  string
	table string
}

// NewSQLiteSource creates a SQLiteSource for the given database file and table.
func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{path: path, table: table}
}

func (s *SQLiteSource) Name() string { return s.path }

// Fetch selects every row of the table. The table's actual columns are
// mapped by name; expected columns the table lacks default to empty.
func (s *SQLiteSource) Fetch() ([]*models.RawRecord, error) {
	// sql.Open does not touch the file; check it up front so a missing
	// database fails the same way as a missing CSV.
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", s.path, err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM %q`, s.table))
	if err != nil {
		return nil, fmt.Errorf("sqlite: query table %q: %w", s.table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqlite: columns of %q: %w", s.table, err)
	}
	ci := indexColumns(header)

	var records []*models.RawRecord
	for rows.Next() {
		cells := make([]sql.NullString, len(header))
		dest := make([]any, len(header))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("sqlite: scan row of %q: %w", s.table, err)
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		records = append(records, ci.record(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate %q: %w", s.table, err)
	}
	return records, nil
}
