package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cory-johannsen/skirmish/internal/content"
)

// Source loads zone definitions for import.
//
// Postcondition: returns at least one ZoneFile, or a non-nil error.
type Source interface {
	Load() ([]*content.ZoneFile, error)
}

// DirSource reads every *.yaml file of a directory as one zone.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Load implements Source. Files are read in name order.
func (s *DirSource) Load() ([]*content.ZoneFile, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no zone files in %s", s.dir)
	}
	sort.Strings(paths)

	zones := make([]*content.ZoneFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		zf, err := content.ParseZoneFile(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		zones = append(zones, zf)
	}
	return zones, nil
}
