// Package store is an optional SQLite-backed persistence adapter for
// named Value blobs. The CLI opts into it with a flag; the core
// reader/eval/value packages never import it,
// keeping them free of any persisted state.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/volsungdenichor/edn/reader"
	"github.com/volsungdenichor/edn/value"
)

// Store persists Values under a name in a SQLite database, keeping
// their readable-mode text as the storage format.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS edn_values (
		name TEXT PRIMARY KEY,
		text TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save writes v under name, overwriting any prior value with that name.
func (s *Store) Save(name string, v value.Value) error {
	text := value.Format(v, value.Readable)
	_, err := s.db.Exec(`INSERT INTO edn_values(name, text) VALUES(?, ?)
		ON CONFLICT(name) DO UPDATE SET text = excluded.text`, name, text)
	if err != nil {
		return fmt.Errorf("store: saving %q: %w", name, err)
	}
	return nil
}

// Load reads back the Value stored under name.
func (s *Store) Load(name string) (value.Value, error) {
	var text string
	err := s.db.QueryRow(`SELECT text FROM edn_values WHERE name = ?`, name).Scan(&text)
	if err == sql.ErrNoRows {
		return value.Nil, fmt.Errorf("store: no value named %q", name)
	}
	if err != nil {
		return value.Nil, fmt.Errorf("store: loading %q: %w", name, err)
	}
	v, err := reader.Parse(text)
	if err != nil {
		return value.Nil, fmt.Errorf("store: parsing stored value %q: %w", name, err)
	}
	return v, nil
}
