package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Render builds the tree-like listing of root. Entries are sorted by name,
// directories whose name belongs to the hide set are skipped entirely and a
// directory that cannot be read contributes an inline error line.
func Render(root string, rules *Ruleset) string {
	lines := []string{root}
	renderDir(root, "", rules, &lines)
	return strings.Join(lines, "\n")
}

func renderDir(dir, prefix string, rules *Ruleset, lines *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		*lines = append(*lines, fmt.Sprintf("%s[Error reading directory: %s]", prefix, err))
		return
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if isDir(dir, entry) && rules.Hidden(entry.Name()) {
			continue
		}
		filtered = append(filtered, entry)
	}

	for i, entry := range filtered {
		connector := "├── "
		extension := "│   "
		if i == len(filtered)-1 {
			connector = "└── "
			extension = "    "
		}

		*lines = append(*lines, prefix+connector+entry.Name())
		if isDir(dir, entry) {
			renderDir(filepath.Join(dir, entry.Name()), prefix+extension, rules, lines)
		}
	}
}

// isDir follows symlinks so linked directories render like real ones.
func isDir(dir string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	return linksToDir(dir, entry)
}

func linksToDir(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
