package data

// Directory is a node of the notebook tree.
// ParentID is empty only for the root directory.
type Directory struct {
	ID       string
	ParentID string
	Name     string
}

func (d Directory) IsRoot() bool { return d.ParentID == "" }

// Note belongs to exactly one directory.
type Note struct {
	ID          string
	DirectoryID string
	Name        string
	Content     string
}
