package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dump walks every file under root and emits, for each one, its relative
// path followed by its body. Hiding a directory removes it from the tree but
// its files are still listed here, with their content replaced by a
// placeholder. Files in excluded directories and private files get a
// placeholder too.
func Dump(root string, rules *Ruleset) (dump string, files, dirs int) {
	var fragments []string
	dumpDir(root, root, rules, &fragments, &files, &dirs)
	return strings.Join(fragments, "\n"), files, dirs
}

func dumpDir(root, dir string, rules *Ruleset, fragments *[]string, files, dirs *int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		if linksToDir(dir, entry) {
			// Directory symlinks are neither dumped nor followed.
			continue
		}

		path := filepath.Join(dir, entry.Name())
		relative, err := filepath.Rel(root, path)
		if err != nil {
			relative = path
		}

		*files++
		*fragments = append(*fragments, fmt.Sprintf("\n%s:\n", relative))
		*fragments = append(*fragments, body(path, relative, entry.Name(), rules))
	}

	for _, name := range subdirs {
		*dirs++
		dumpDir(root, filepath.Join(dir, name), rules, fragments, files, dirs)
	}
}

func body(path, relative, name string, rules *Ruleset) string {
	if rules.Excluded(relative) {
		return "[Content is excluded]\n"
	}
	if rules.Private(name, path) {
		return "[Content is private]\n"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[Error reading file: %s]\n", err)
	}
	return string(data) + "\n"
}
