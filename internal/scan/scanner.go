package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwaldt/clinespend/internal/models"
)

const (
	// MetadataFileName is the per-task metadata document.
	MetadataFileName = "task_metadata.json"
	// MessagesFileName is the per-task message log.
	MessagesFileName = "ui_messages.json"
)

// ErrExcluded marks a folder whose task does not belong to the target
// provider.
var ErrExcluded = errors.New("task excluded by provider")

// TaskFolder is the decoded content of one qualifying task folder.
type TaskFolder struct {
	Path   string
	Tier   models.ModelTier
	Events []Event
}

// ListFolders returns the task folder paths under basePath in directory
// order. A missing or unreadable base path is the only fatal condition of
// a run and is returned as an error.
func ListFolders(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("reading tasks directory %s: %w", basePath, err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, filepath.Join(basePath, entry.Name()))
		}
	}
	return folders, nil
}

// LoadFolder reads one task folder. Any error return means the folder is
// skipped: required file missing, metadata unreadable, provider excluded,
// or the message log undecodable. Skips never abort a run.
func LoadFolder(dir string) (TaskFolder, error) {
	metadata, err := os.ReadFile(filepath.Join(dir, MetadataFileName))
	if err != nil {
		return TaskFolder{}, fmt.Errorf("reading %s: %w", MetadataFileName, err)
	}

	tier, included := Classify(metadata)
	if !included {
		return TaskFolder{}, ErrExcluded
	}

	data, err := os.ReadFile(filepath.Join(dir, MessagesFileName))
	if err != nil {
		return TaskFolder{}, fmt.Errorf("reading %s: %w", MessagesFileName, err)
	}

	events, err := ParseEvents(data)
	if err != nil {
		return TaskFolder{}, err
	}

	return TaskFolder{Path: dir, Tier: tier, Events: events}, nil
}
