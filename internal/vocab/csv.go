package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV merges semicolon-delimited rows "term;translation[|alt...][;category]"
// into the store. A missing file is not an error, the store just keeps what it
// has. Malformed rows are skipped, never fatal.
func LoadCSV(s *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer f.Close()

	if err := ReadCSV(s, f); err != nil {
		return fmt.Errorf("failed to read csv %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses rows from r into the store. When a translation cell carries
// several variants separated by "|", the first one wins.
func ReadCSV(s *Store, r io.Reader) error {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(row) < 2 {
			continue
		}

		term := strings.TrimSpace(row[0])
		translation := strings.TrimSpace(strings.SplitN(row[1], "|", 2)[0])
		if term == "" || translation == "" {
			continue
		}

		s.AddOrUpdate(term, translation)

		if len(row) >= 3 {
			s.AddCategoryTerm(strings.TrimSpace(row[2]), term)
		}
	}
}
