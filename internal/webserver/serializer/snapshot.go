package serializer

import (
	"strings"

	"github.com/mdouchement/treesnap/internal/model"
)

// TextSnapshots returns the text serialized form of the given models.
func TextSnapshots(snapshots []*model.Snapshot) string {
	sl := make([]string, 0, len(snapshots))

	for _, snapshot := range snapshots {
		sl = append(sl, snapshot.ID)
	}

	return strings.Join(sl, "\n")
}

// Snapshots returns the serialized form of the given models.
func Snapshots(snapshots []*model.Snapshot) []map[string]interface{} {
	sl := make([]map[string]interface{}, 0, len(snapshots))

	for _, snapshot := range snapshots {
		sl = append(sl, Snapshot(snapshot))
	}

	return sl
}

// Snapshot returns the serialized form of the given model.
func Snapshot(snapshot *model.Snapshot) map[string]interface{} {
	return map[string]interface{}{
		"id":           snapshot.ID,
		"root":         snapshot.Root,
		"size":         snapshot.Size,
		"checksum":     snapshot.Checksum,
		"files":        snapshot.Files,
		"dirs":         snapshot.Dirs,
		"created_at":   snapshot.CreatedAt,
		"last_updated": snapshot.UpdatedAt,
	}
}
