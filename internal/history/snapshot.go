package history

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// SnapshotDescriptionLimit caps how many recent descriptions per stack are
// written to the metadata file.
const SnapshotDescriptionLimit = 10

// Snapshot is the advisory history metadata persisted after every stack
// mutation. It exists for display only: commands cannot be reconstructed
// from it, so it is never read back by the manager.
type Snapshot struct {
	UndoCount        int      `json:"undo_count"`
	RedoCount        int      `json:"redo_count"`
	UndoDescriptions []string `json:"undo_descriptions"`
	RedoDescriptions []string `json:"redo_descriptions"`
}

// SnapshotWriter persists history metadata snapshots.
type SnapshotWriter interface {
	Write(s Snapshot) error
}

// DefaultSnapshotPath returns the metadata file path under the XDG data dir.
func DefaultSnapshotPath() string {
	return filepath.Join(xdg.DataHome, "reckon", "history.json")
}

// FileSnapshotWriter overwrites a JSON file with each snapshot.
type FileSnapshotWriter struct {
	path string
	log  *slog.Logger
}

// NewFileSnapshotWriter creates a writer targeting the given path.
func NewFileSnapshotWriter(path string, log *slog.Logger) *FileSnapshotWriter {
	return &FileSnapshotWriter{path: path, log: logOrDefault(log)}
}

// Write marshals the snapshot and overwrites the target file.
func (w *FileSnapshotWriter) Write(s Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return err
	}

	w.log.Debug("history metadata saved",
		"path", w.path,
		"undo_count", s.UndoCount,
		"redo_count", s.RedoCount)
	return nil
}

// ReadSnapshot loads a previously written snapshot for display. Callers get
// a zero snapshot and ok=false when the file does not exist.
func ReadSnapshot(path string) (Snapshot, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, false, err
	}
	return s, true, nil
}
