package directorytree

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"quire/app/state"
	"quire/app/utils"
	"quire/tui/shared"
	"quire/tui/theme"
)

const (
	title = "NOTEBOOK"

	toggleOpen   = "▾"
	toggleClosed = "▸"

	// lines taken by the title and the line below it
	reservedLines = 2
)

// DirectoryTree renders the visible part of the cached note tree
type DirectoryTree struct {
	shared.Component

	root  *state.DirectoryItem
	items []state.TreeItem

	// index of the selected row in items
	selected int

	// first row shown
	offset int

	styles shared.Styles
}

func New() *DirectoryTree {
	return &DirectoryTree{
		styles: shared.DirTreeStyle(),
	}
}

func (t *DirectoryTree) Name() string { return "Notebook" }

// SetTree rebuilds the rows from root and selects the item with the
// given id. The selection stays where it is if the id isn't visible.
func (t *DirectoryTree) SetTree(root *state.DirectoryItem, selectedID string) {
	t.root = root
	t.items = nil

	if root != nil {
		t.items = root.Visible()
	}

	for i, item := range t.items {
		if item.ID() == selectedID {
			t.selected = i
			return
		}
	}

	t.selected = min(t.selected, max(len(t.items)-1, 0))
}

func (t *DirectoryTree) Items() []state.TreeItem { return t.items }

func (t *DirectoryTree) SelectedIndex() int { return t.selected }

// Selected returns the selected row
func (t *DirectoryTree) Selected() (state.TreeItem, bool) {
	if len(t.items) == 0 {
		return state.TreeItem{}, false
	}
	return t.items[t.selected], true
}

// Step returns the row n rows below the selection, or above it for
// negative n. It stops at the first and the last row.
func (t *DirectoryTree) Step(n int) (state.TreeItem, bool) {
	if len(t.items) == 0 {
		return state.TreeItem{}, false
	}

	i := max(0, min(t.selected+n, len(t.items)-1))
	return t.items[i], true
}

// isOpen reports whether the directory of item is expanded
func (t *DirectoryTree) isOpen(item state.TreeItem) bool {
	if t.root == nil || item.IsNote() {
		return false
	}

	dir := t.root.Find(item.ID())
	return dir != nil && dir.IsOpen()
}

// scroll moves the first shown row so the selection stays visible
func (t *DirectoryTree) scroll(height int) {
	if height <= 0 {
		t.offset = 0
		return
	}

	if t.selected < t.offset {
		t.offset = t.selected
	}

	if t.selected >= t.offset+height {
		t.offset = t.selected - height + 1
	}
}

func (t *DirectoryTree) renderRow(item state.TreeItem, selected bool, width int) string {
	indent := strings.Repeat("  ", item.Depth)
	indentWidth := lipgloss.Width(indent)

	toggle := ""
	if !item.IsNote() {
		toggle = toggleClosed
		if t.isOpen(item) {
			toggle = toggleOpen
		}
	}

	nameWidth := width - indentWidth - t.styles.ToggleWidth
	if nameWidth <= 0 {
		return ""
	}

	indentStyle := t.styles.Indent.Width(indentWidth)
	toggleStyle := t.styles.Toggle
	nameStyle := t.styles.Base.Width(nameWidth)

	if selected {
		indentStyle = indentStyle.Background(theme.ColourBgSelected)
		toggleStyle = t.styles.Selected.Width(t.styles.ToggleWidth)
		nameStyle = t.styles.Selected.Width(nameWidth)
	}

	name := utils.TruncateText(item.Name(), nameWidth-1)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		indentStyle.Render(indent),
		toggleStyle.Render(toggle),
		nameStyle.Render(name),
	)
}

// Content renders the tree inside its column
func (t *DirectoryTree) Content() string {
	width, height := t.InnerSize()
	rowsHeight := max(height-reservedLines, 0)

	t.scroll(rowsHeight)

	var b strings.Builder
	b.WriteString(t.styles.Title.Render(utils.TruncateText(title, width)))
	b.WriteString("\n\n")

	end := min(t.offset+rowsHeight, len(t.items))
	for i := t.offset; i < end; i++ {
		b.WriteString(t.renderRow(t.items[i], i == t.selected, width))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return theme.BaseColumnLayout(t.Size, t.Focused()).Render(b.String())
}

func (t *DirectoryTree) View() tea.View {
	var view tea.View
	view.SetContent(t.Content())
	return view
}
