package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/matzehuels/linguist/pkg/linguist"
)

// SQLiteSink writes the index into a SQLite database file.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and migrates
// its schema.
func NewSQLite(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &SQLiteSink{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// DB returns the underlying handle.
func (s *SQLiteSink) DB() *sql.DB {
	return s.db
}

func (s *SQLiteSink) migrate() error {
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS languages (
  language_id          INTEGER PRIMARY KEY,
  name                 TEXT NOT NULL UNIQUE,
  type                 TEXT NOT NULL,
  color                TEXT,
  group_name           TEXT,
  tm_scope             TEXT,
  ace_mode             TEXT,
  codemirror_mode      TEXT,
  codemirror_mime_type TEXT,
  has_aliases          INTEGER NOT NULL,
  has_extensions       INTEGER NOT NULL,
  has_interpreters     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS aliases (
  language_id INTEGER NOT NULL REFERENCES languages(language_id) ON DELETE CASCADE,
  position    INTEGER NOT NULL,
  alias       TEXT NOT NULL,
  PRIMARY KEY (language_id, position)
);

CREATE TABLE IF NOT EXISTS extensions (
  language_id INTEGER NOT NULL REFERENCES languages(language_id) ON DELETE CASCADE,
  position    INTEGER NOT NULL,
  extension   TEXT NOT NULL,
  PRIMARY KEY (language_id, position)
);

CREATE TABLE IF NOT EXISTS interpreters (
  language_id INTEGER NOT NULL REFERENCES languages(language_id) ON DELETE CASCADE,
  position    INTEGER NOT NULL,
  interpreter TEXT NOT NULL,
  PRIMARY KEY (language_id, position)
);

CREATE TABLE IF NOT EXISTS lookup_keys (
  kind        TEXT NOT NULL CHECK (kind IN ('name', 'extension', 'mode')),
  key         TEXT NOT NULL,
  language_id INTEGER NOT NULL REFERENCES languages(language_id) ON DELETE CASCADE,
  PRIMARY KEY (kind, key)
);

CREATE INDEX IF NOT EXISTS idx_extensions_extension ON extensions(extension);
CREATE INDEX IF NOT EXISTS idx_lookup_keys_language ON lookup_keys(language_id);
`

// Write replaces the database contents with idx in one transaction.
func (s *SQLiteSink) Write(ctx context.Context, idx *linguist.Index) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"lookup_keys", "aliases", "extensions", "interpreters", "languages"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	insLang, err := tx.PrepareContext(ctx, `INSERT INTO languages
		(language_id, name, type, color, group_name, tm_scope, ace_mode, codemirror_mode, codemirror_mime_type,
		 has_aliases, has_extensions, has_interpreters)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insLang.Close()

	lists := []struct {
		table, column string
		values        func(*linguist.Language) []string
	}{
		{"aliases", "alias", func(l *linguist.Language) []string { return l.Aliases }},
		{"extensions", "extension", func(l *linguist.Language) []string { return l.Extensions }},
		{"interpreters", "interpreter", func(l *linguist.Language) []string { return l.Interpreters }},
	}
	listStmts := make([]*sql.Stmt, len(lists))
	for i, l := range lists {
		stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (language_id, position, %s) VALUES (?, ?, ?)", l.table, l.column))
		if err != nil {
			return err
		}
		defer stmt.Close()
		listStmts[i] = stmt
	}

	for _, lang := range idx.All() {
		if _, err := insLang.ExecContext(ctx,
			lang.LanguageID, lang.Name, lang.Type,
			nullable(lang.Color), nullable(lang.Group), nullable(lang.TMScope), nullable(lang.AceMode),
			nullable(lang.CodemirrorMode), nullable(lang.CodemirrorMimeType),
			lang.HasAliases(), lang.HasExtensions(), lang.HasInterpreters(),
		); err != nil {
			return fmt.Errorf("insert %q: %w", lang.Name, err)
		}
		for i, l := range lists {
			for pos, v := range l.values(lang) {
				if _, err := listStmts[i].ExecContext(ctx, lang.LanguageID, pos, v); err != nil {
					return fmt.Errorf("insert %s of %q: %w", l.column, lang.Name, err)
				}
			}
		}
	}

	insKey, err := tx.PrepareContext(ctx, "INSERT INTO lookup_keys (kind, key, language_id) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insKey.Close()
	for _, k := range LookupKeys(idx) {
		if _, err := insKey.ExecContext(ctx, k.Kind, k.Key, k.LanguageID); err != nil {
			return fmt.Errorf("insert %s key %q: %w", k.Kind, k.Key, err)
		}
	}

	return tx.Commit()
}

// Lookup resolves key through the stored lookup table. kind is one of
// [KindName], [KindExtension] or [KindMode]; key must already be lowercased.
func (s *SQLiteSink) Lookup(ctx context.Context, kind, key string) (name string, found bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT l.name FROM lookup_keys k JOIN languages l ON l.language_id = k.language_id
		WHERE k.kind = ? AND k.key = ?`, kind, key).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Sink = (*SQLiteSink)(nil)
