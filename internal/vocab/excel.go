package vocab

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX merges rows from the first sheet of an Excel workbook: column A is
// the term, B the translation, optional C a category. The header row is
// skipped, as are rows with a blank term or translation.
func LoadXLSX(s *Store, path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open xlsx %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}

		term := strings.TrimSpace(row[0])
		translation := strings.TrimSpace(row[1])
		if term == "" || translation == "" {
			continue
		}

		s.AddOrUpdate(term, translation)

		if len(row) >= 3 {
			s.AddCategoryTerm(strings.TrimSpace(row[2]), term)
		}
	}

	return nil
}
