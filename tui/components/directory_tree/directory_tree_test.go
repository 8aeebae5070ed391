package directorytree_test

import (
	"strings"
	"testing"

	bl "github.com/winder/bubblelayout"

	"quire/app/data"
	"quire/app/state"
	directorytree "quire/tui/components/directory_tree"
)

// testTree returns root/{work/, todo} with work closed
func testTree() *state.DirectoryItem {
	return &state.DirectoryItem{
		Directory: data.Directory{ID: "root", Name: "notes"},
		Children: &state.DirectoryChildren{
			Directories: []state.DirectoryItem{
				{Directory: data.Directory{ID: "work", ParentID: "root", Name: "work"}},
			},
			Notes: []data.Note{
				{ID: "todo", DirectoryID: "root", Name: "todo"},
			},
		},
	}
}

func TestSetTreeSelectsByID(t *testing.T) {
	tree := directorytree.New()
	tree.SetTree(testTree(), "todo")

	if len(tree.Items()) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(tree.Items()))
	}

	item, ok := tree.Selected()
	if !ok || item.ID() != "todo" {
		t.Errorf("Expected todo to be selected, got %q", item.ID())
	}

	// unknown ids keep the selection
	tree.SetTree(testTree(), "gone")
	if tree.SelectedIndex() != 2 {
		t.Errorf("Expected index 2, got %d", tree.SelectedIndex())
	}
}

func TestStepClamps(t *testing.T) {
	tree := directorytree.New()
	tree.SetTree(testTree(), "root")

	tests := []struct {
		n    int
		want string
	}{
		{1, "work"},
		{2, "todo"},
		{10, "todo"},
		{-1, "root"},
	}

	for _, tt := range tests {
		item, ok := tree.Step(tt.n)
		if !ok || item.ID() != tt.want {
			t.Errorf("Step(%d): expected %s, got %s", tt.n, tt.want, item.ID())
		}
	}
}

func TestEmptyTree(t *testing.T) {
	tree := directorytree.New()
	tree.SetTree(nil, "")

	if _, ok := tree.Selected(); ok {
		t.Errorf("Expected no selection")
	}
	if _, ok := tree.Step(1); ok {
		t.Errorf("Expected no row")
	}
}

func TestContentShowsRows(t *testing.T) {
	tree := directorytree.New()
	tree.Size = bl.Size{Width: 30, Height: 10}
	tree.SetTree(testTree(), "root")

	content := tree.Content()
	for _, name := range []string{"notes", "work", "todo", "▾", "▸"} {
		if !strings.Contains(content, name) {
			t.Errorf("Expected %q in the rendered tree", name)
		}
	}
}
