package vocab

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type vocabRow struct {
	Term        string `db:"term"`
	Translation string `db:"translation"`
	Category    string `db:"category"`
}

// LoadSQLite merges rows from a SQLite vocabulary database. The database is
// opened read-only for the duration of the load.
func LoadSQLite(ctx context.Context, s *Store, path string) error {
	db, err := sqlx.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	defer db.Close()

	query := `SELECT term, translation, COALESCE(category, '') AS category FROM vocabulary`

	var rows []vocabRow
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return fmt.Errorf("failed to select vocabulary: %w", err)
	}

	for _, row := range rows {
		s.AddOrUpdate(row.Term, row.Translation)
		if row.Category != "" {
			s.AddCategoryTerm(row.Category, row.Term)
		}
	}

	return nil
}
