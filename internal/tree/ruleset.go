package tree

import (
	"os"
	"path/filepath"
	"strings"
)

// A Ruleset drives which directories are hidden from the rendered tree and
// which file bodies are replaced by a placeholder in the contents dump.
type Ruleset struct {
	private map[string]struct{}
	exclude map[string]struct{}
	hide    map[string]struct{}
}

// NewRuleset returns a new Ruleset from the given lists.
func NewRuleset(private, exclude, hide []string) *Ruleset {
	return &Ruleset{
		private: index(private),
		exclude: index(exclude),
		hide:    index(hide),
	}
}

// Hidden returns true if a directory with the given name must be omitted
// from the tree rendering.
func (r *Ruleset) Hidden(name string) bool {
	_, ok := r.hide[name]
	return ok
}

// Excluded returns true if any directory component of the file's relative
// path belongs to the exclude or hide sets. The filename itself is not
// checked.
func (r *Ruleset) Excluded(relative string) bool {
	dir := filepath.Dir(relative)
	if dir == "." {
		return false
	}

	for _, component := range strings.Split(dir, string(os.PathSeparator)) {
		if component == "" {
			continue
		}
		if _, ok := r.exclude[component]; ok {
			return true
		}
		if _, ok := r.hide[component]; ok {
			return true
		}
	}
	return false
}

// Private returns true if the file's base name or its full path belongs to
// the private set.
func (r *Ruleset) Private(name, path string) bool {
	if _, ok := r.private[name]; ok {
		return true
	}
	_, ok := r.private[path]
	return ok
}

func index(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}
