package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"quire/app/apperr"
	"quire/app/data"
	"quire/app/debug"
)

func scanDirectory(scan func(dest ...any) error) (data.Directory, error) {
	var (
		dir    data.Directory
		parent sql.NullString
	)
	if err := scan(&dir.ID, &parent, &dir.Name); err != nil {
		return dir, err
	}
	dir.ParentID = parent.String
	return dir, nil
}

// FetchDirectory returns the directory with the given id
func (db *DB) FetchDirectory(ctx context.Context, id string) (data.Directory, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, parent_id, name FROM directory WHERE id = ?`, id,
	)

	dir, err := scanDirectory(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperr.ErrNotFound
	}

	return dir, apperr.Storage("fetch directory", err)
}

// FetchDirectories returns the direct children of parentID
// in creation order.
func (db *DB) FetchDirectories(ctx context.Context, parentID string) ([]data.Directory, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, parent_id, name FROM directory WHERE parent_id = ? ORDER BY id`,
		parentID,
	)
	if err != nil {
		return nil, apperr.Storage("fetch directories", err)
	}
	defer rows.Close()

	dirs := []data.Directory{}
	for rows.Next() {
		dir, err := scanDirectory(rows.Scan)
		if err != nil {
			return nil, apperr.Storage("fetch directories", err)
		}
		dirs = append(dirs, dir)
	}

	return dirs, apperr.Storage("fetch directories", rows.Err())
}

// AddDirectory creates a directory named name inside parentID.
func (db *DB) AddDirectory(ctx context.Context, parentID string, name string) (data.Directory, error) {
	if err := validateName(name); err != nil {
		return data.Directory{}, err
	}

	if _, err := db.FetchDirectory(ctx, parentID); err != nil {
		return data.Directory{}, err
	}

	id, err := newID()
	if err != nil {
		return data.Directory{}, apperr.Storage("add directory", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO directory (id, parent_id, name) VALUES (?, ?, ?)`,
		id, parentID, name,
	)
	if err != nil {
		return data.Directory{}, apperr.Storage("add directory", err)
	}

	return data.Directory{ID: id, ParentID: parentID, Name: name}, nil
}

// RemoveDirectory deletes the directory, its notes and all of its
// descendants in one transaction.
func (db *DB) RemoveDirectory(ctx context.Context, id string) error {
	if id == db.root.ID {
		return apperr.Storage("remove directory", apperr.ErrRootDirectory)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("remove directory", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM directory WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return apperr.Storage("remove directory", err)
	}
	if exists == 0 {
		return apperr.Storage("remove directory", apperr.ErrNotFound)
	}

	if err := removeDirectoryTx(ctx, tx, id); err != nil {
		return apperr.Storage("remove directory", err)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage("remove directory", err)
	}

	debug.LogDebug("removed directory", id)

	return nil
}

// removeDirectoryTx deletes the notes of id, then its children
// depth first, then id itself.
func removeDirectoryTx(ctx context.Context, tx *sql.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM note WHERE directory_id = ?`, id); err != nil {
		return fmt.Errorf("remove notes of %s: %w", id, err)
	}

	children, err := childDirectoryIDs(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("fetch children of %s: %w", id, err)
	}

	for _, child := range children {
		if err := removeDirectoryTx(ctx, tx, child); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM directory WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove directory %s: %w", id, err)
	}

	return nil
}

// MoveDirectory reparents id under parentID. Moving a directory into
// itself or one of its descendants fails with ErrInvalidMove.
func (db *DB) MoveDirectory(ctx context.Context, id string, parentID string) error {
	if id == db.root.ID {
		return apperr.Storage("move directory", apperr.ErrRootDirectory)
	}

	if _, err := db.FetchDirectory(ctx, parentID); err != nil {
		return err
	}

	ancestors, err := db.ancestorIDs(ctx, parentID)
	if err != nil {
		return err
	}
	if parentID == id || slices.Contains(ancestors, id) {
		return apperr.Storage("move directory", apperr.ErrInvalidMove)
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE directory SET parent_id = ? WHERE id = ?`, parentID, id,
	)
	if err != nil {
		return apperr.Storage("move directory", err)
	}

	return apperr.Storage("move directory", checkAffected(res))
}

// ancestorIDs walks up from id to the root.
func (db *DB) ancestorIDs(ctx context.Context, id string) ([]string, error) {
	var ids []string
	for id != "" {
		dir, err := db.FetchDirectory(ctx, id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, dir.ParentID)
		id = dir.ParentID
	}
	return ids, nil
}

// RenameDirectory sets the name of id
func (db *DB) RenameDirectory(ctx context.Context, id string, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE directory SET name = ? WHERE id = ?`, name, id,
	)
	if err != nil {
		return apperr.Storage("rename directory", err)
	}

	if err := checkAffected(res); err != nil {
		return apperr.Storage("rename directory", err)
	}

	if id == db.root.ID {
		db.root.Name = name
	}

	return nil
}
