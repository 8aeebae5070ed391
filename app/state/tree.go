package state

import (
	"context"

	"quire/app/data"
)

// DirectoryItem is a directory of the cached note tree.
// Children is nil while the directory is closed.
type DirectoryItem struct {
	Directory data.Directory
	Children  *DirectoryChildren
}

type DirectoryChildren struct {
	Directories []DirectoryItem
	Notes       []data.Note
}

func (d *DirectoryItem) IsOpen() bool { return d.Children != nil }

// Find returns the item of the directory with the given id if it is
// part of the loaded tree.
func (d *DirectoryItem) Find(id string) *DirectoryItem {
	if d.Directory.ID == id {
		return d
	}

	if d.Children == nil {
		return nil
	}

	for i := range d.Children.Directories {
		if found := d.Children.Directories[i].Find(id); found != nil {
			return found
		}
	}

	return nil
}

// TreeItem is a row of the visible tree
type TreeItem struct {
	Directory *data.Directory
	Note      *data.Note
	Depth     int
}

func (t TreeItem) ID() string {
	if t.Note != nil {
		return t.Note.ID
	}
	return t.Directory.ID
}

func (t TreeItem) Name() string {
	if t.Note != nil {
		return t.Note.Name
	}
	return t.Directory.Name
}

func (t TreeItem) IsNote() bool { return t.Note != nil }

// Visible flattens the open part of the tree: each directory followed
// by its subdirectories, then its notes.
func (d *DirectoryItem) Visible() []TreeItem {
	var items []TreeItem
	d.visible(0, &items)
	return items
}

func (d *DirectoryItem) visible(depth int, items *[]TreeItem) {
	*items = append(*items, TreeItem{Directory: &d.Directory, Depth: depth})

	if d.Children == nil {
		return
	}

	for i := range d.Children.Directories {
		d.Children.Directories[i].visible(depth+1, items)
	}

	for i := range d.Children.Notes {
		*items = append(*items, TreeItem{Note: &d.Children.Notes[i], Depth: depth + 1})
	}
}

// load fetches the direct children of d. Subdirectories that were open
// stay open and are reloaded as well.
func (d *DirectoryItem) load(ctx context.Context, store Store) error {
	dirs, err := store.FetchDirectories(ctx, d.Directory.ID)
	if err != nil {
		return err
	}

	notes, err := store.FetchNotes(ctx, d.Directory.ID)
	if err != nil {
		return err
	}

	children := &DirectoryChildren{Notes: notes}
	for _, dir := range dirs {
		item := DirectoryItem{Directory: dir}

		if d.Children != nil {
			if prev := d.findChild(dir.ID); prev != nil && prev.IsOpen() {
				item.Children = prev.Children
				if err := item.load(ctx, store); err != nil {
					return err
				}
			}
		}

		children.Directories = append(children.Directories, item)
	}

	d.Children = children
	return nil
}

func (d *DirectoryItem) findChild(id string) *DirectoryItem {
	for i := range d.Children.Directories {
		if d.Children.Directories[i].Directory.ID == id {
			return &d.Children.Directories[i]
		}
	}
	return nil
}

func (d *DirectoryItem) close() {
	d.Children = nil
}
