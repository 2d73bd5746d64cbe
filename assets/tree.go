package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileTree is a directory subtree rooted at Path. Directories carry their
// entries in Children, sorted by name; files have none.
type FileTree struct {
	Path     string
	Dir      bool
	Children []*FileTree
}

// ReadTree enumerates the subtree rooted at path. It fails on the first
// traversal error instead of skipping unreadable entries.
func ReadTree(path string) (*FileTree, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	node := &FileTree{Path: path, Dir: info.IsDir()}
	if !node.Dir {
		return node, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	for _, entry := range entries {
		child, err := ReadTree(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// Walk visits every node depth-first, parents before children. The walk
// stops early if fn returns false.
func (t *FileTree) Walk(fn func(*FileTree) bool) bool {
	if !fn(t) {
		return false
	}
	for _, c := range t.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Leaves returns the paths of all files in the subtree, depth-first.
func (t *FileTree) Leaves() []string {
	var out []string
	t.Walk(func(n *FileTree) bool {
		if !n.Dir {
			out = append(out, n.Path)
		}
		return true
	})
	return out
}
