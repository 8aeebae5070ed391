// Package db stores the notebook, a tree of directories holding notes,
// in SQLite.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quire/app/apperr"
	"quire/app/data"
	"quire/app/debug"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS directory (
	id        TEXT PRIMARY KEY,
	parent_id TEXT NULL,
	name      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS note (
	id           TEXT PRIMARY KEY,
	directory_id TEXT NOT NULL,
	name         TEXT NOT NULL,
	content      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_directory_parent ON directory(parent_id);
CREATE INDEX IF NOT EXISTS idx_note_directory ON note(directory_id);
`

const rootDirectoryName = "Notes"

type Backend int

const (
	Instant Backend = iota
	File
)

var backends = map[Backend]string{
	Instant: "instant",
	File:    "file",
}

func (b Backend) String() string {
	return backends[b]
}

// ParseBackend maps a config or flag value to its Backend
func ParseBackend(s string) (Backend, error) {
	for b, name := range backends {
		if strings.EqualFold(name, s) {
			return b, nil
		}
	}
	return Instant, fmt.Errorf("unknown storage backend %q", s)
}

// DB wraps a sql.DB with notebook operations.
type DB struct {
	conn *sql.DB
	root data.Directory
}

// Open opens the notebook for the given backend. path is ignored for
// Instant, which keeps everything in memory for the session.
func Open(ctx context.Context, backend Backend, path string) (*DB, error) {
	dsn := ":memory:"
	if backend == File {
		if path == "" {
			return nil, apperr.Storage("open", errors.New("no database path"))
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperr.Storage("open", err)
	}

	// every connection to :memory: is its own database
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, apperr.Storage("ping", err)
	}

	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		conn.Close()
		return nil, apperr.Storage("apply schema", err)
	}

	db := &DB{conn: conn}

	root, err := db.ensureRoot(ctx)
	if err != nil {
		conn.Close()
		return nil, err
	}
	db.root = root

	debug.LogInfo("opened notebook", backend.String(), path)

	return db, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RootDirectory returns the directory every other node descends from.
func (db *DB) RootDirectory() data.Directory {
	return db.root
}

func (db *DB) ensureRoot(ctx context.Context) (data.Directory, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, name FROM directory WHERE parent_id IS NULL ORDER BY id LIMIT 1`,
	)

	root := data.Directory{}
	err := row.Scan(&root.ID, &root.Name)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return root, apperr.Storage("fetch root directory", err)
	}

	id, err := newID()
	if err != nil {
		return root, apperr.Storage("add root directory", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO directory (id, parent_id, name) VALUES (?, NULL, ?)`,
		id, rootDirectoryName,
	)
	if err != nil {
		return root, apperr.Storage("add root directory", err)
	}

	return data.Directory{ID: id, Name: rootDirectoryName}, nil
}

// newID returns a time ordered id so sorting by id is sorting by
// creation.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func validateName(name string) error {
	err := validation.Validate(
		strings.TrimSpace(name),
		validation.Required.Error(apperr.ErrEmptyName.Error()),
		validation.RuneLength(1, 255),
	)
	if err != nil {
		return &apperr.PromptError{Arg: name, Message: err.Error()}
	}
	return nil
}

// checkAffected turns an update that touched no row into ErrNotFound.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func childDirectoryIDs(ctx context.Context, q queryer, id string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id FROM directory WHERE parent_id = ? ORDER BY id`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var child string
		if err := rows.Scan(&child); err != nil {
			return nil, err
		}
		ids = append(ids, child)
	}

	return ids, rows.Err()
}
