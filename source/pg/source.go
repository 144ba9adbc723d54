package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the translation source needs.
// Declared as an interface so tests can substitute a fake without a live
// database.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// Source loads the translation catalog from a PostgreSQL table with the
// columns (language, key, message). Each distinct language value becomes a
// catalog language; rows sharing a language and key resolve to the row read
// last.
type Source struct {
	db    Querier
	table string
}

// NewSource creates a translation source reading from the given table.
// Returns nil if db is nil. An empty table name falls back to "translations".
func NewSource(db Querier, table string) *Source {
	if db == nil {
		return nil
	}
	if table == "" {
		table = "translations"
	}
	return &Source{db: db, table: table}
}

// Load fetches all translation rows and assembles the catalog. It is called
// once at translator construction; the catalog does not refresh afterwards.
func (s *Source) Load(ctx context.Context) (map[string]map[string]string, error) {
	query := fmt.Sprintf(`SELECT language, key, message FROM %s ORDER BY language, key`, s.table)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}
	defer rows.Close()

	translations := make(map[string]map[string]string)
	for rows.Next() {
		var lang, key, message string
		if err := rows.Scan(&lang, &key, &message); err != nil {
			return nil, errors.Join(ErrFailedToLoadTranslations, err)
		}
		if translations[lang] == nil {
			translations[lang] = make(map[string]string)
		}
		translations[lang][key] = message
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}

	return translations, nil
}
