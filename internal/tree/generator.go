package tree

import (
	"os"

	"github.com/pkg/errors"
)

// A Document is a rendered snapshot of a directory: the tree listing
// followed by the body of every file.
type Document struct {
	Root     string
	Tree     string
	Contents string
	Files    int
	Dirs     int
}

// String assembles the final form written to disk or streamed to clients.
func (d *Document) String() string {
	return "FILE TREE:\n" + d.Tree + "\n\nFILE CONTENTS:\n" + d.Contents
}

// Generate renders the snapshot document of root according to rules.
func Generate(root string, rules *Ruleset) (*Document, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	d := &Document{
		Root: root,
		Tree: Render(root, rules),
	}
	d.Contents, d.Files, d.Dirs = Dump(root, rules)
	return d, nil
}
