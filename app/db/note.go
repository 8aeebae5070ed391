package db

import (
	"context"
	"database/sql"
	"errors"

	"quire/app/apperr"
	"quire/app/data"
)

// FetchNote returns the note with the given id including its content
func (db *DB) FetchNote(ctx context.Context, id string) (data.Note, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, directory_id, name, content FROM note WHERE id = ?`, id,
	)

	var note data.Note
	err := row.Scan(&note.ID, &note.DirectoryID, &note.Name, &note.Content)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperr.ErrNotFound
	}

	return note, apperr.Storage("fetch note", err)
}

// FetchNotes returns the notes of directoryID in creation order.
func (db *DB) FetchNotes(ctx context.Context, directoryID string) ([]data.Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, directory_id, name, content FROM note WHERE directory_id = ? ORDER BY id`,
		directoryID,
	)
	if err != nil {
		return nil, apperr.Storage("fetch notes", err)
	}
	defer rows.Close()

	notes := []data.Note{}
	for rows.Next() {
		var note data.Note
		if err := rows.Scan(&note.ID, &note.DirectoryID, &note.Name, &note.Content); err != nil {
			return nil, apperr.Storage("fetch notes", err)
		}
		notes = append(notes, note)
	}

	return notes, apperr.Storage("fetch notes", rows.Err())
}

// AddNote creates an empty note named name in directoryID
func (db *DB) AddNote(ctx context.Context, directoryID string, name string) (data.Note, error) {
	if err := validateName(name); err != nil {
		return data.Note{}, err
	}

	if _, err := db.FetchDirectory(ctx, directoryID); err != nil {
		return data.Note{}, err
	}

	id, err := newID()
	if err != nil {
		return data.Note{}, apperr.Storage("add note", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO note (id, directory_id, name, content) VALUES (?, ?, ?, '')`,
		id, directoryID, name,
	)
	if err != nil {
		return data.Note{}, apperr.Storage("add note", err)
	}

	return data.Note{ID: id, DirectoryID: directoryID, Name: name}, nil
}

func (db *DB) RemoveNote(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM note WHERE id = ?`, id)
	if err != nil {
		return apperr.Storage("remove note", err)
	}

	return apperr.Storage("remove note", checkAffected(res))
}

func (db *DB) RenameNote(ctx context.Context, id string, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE note SET name = ? WHERE id = ?`, name, id,
	)
	if err != nil {
		return apperr.Storage("rename note", err)
	}

	return apperr.Storage("rename note", checkAffected(res))
}

// UpdateNoteContent replaces the content of id
func (db *DB) UpdateNoteContent(ctx context.Context, id string, content string) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE note SET content = ? WHERE id = ?`, content, id,
	)
	if err != nil {
		return apperr.Storage("update note content", err)
	}

	return apperr.Storage("update note content", checkAffected(res))
}

// MoveNote puts id into directoryID
func (db *DB) MoveNote(ctx context.Context, id string, directoryID string) error {
	if _, err := db.FetchDirectory(ctx, directoryID); err != nil {
		return err
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE note SET directory_id = ? WHERE id = ?`, directoryID, id,
	)
	if err != nil {
		return apperr.Storage("move note", err)
	}

	return apperr.Storage("move note", checkAffected(res))
}
