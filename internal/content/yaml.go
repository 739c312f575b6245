package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrZoneNotFound is returned when a provider has no definition for a zone.
var ErrZoneNotFound = errors.New("zone content not found")

// Provider is the external content store the Cache loads from.
// All methods are read-only lookups.
type Provider interface {
	Templates(ctx context.Context, zoneID string) ([]EnemyTemplate, error)
	SpawnRules(ctx context.Context, zoneID string) ([]SpawnRule, error)
	DropTables(ctx context.Context, zoneID string) ([]DropTable, error)
}

// ZoneFile is the on-disk YAML layout of one zone.
type ZoneFile struct {
	Zone       string          `yaml:"zone"`
	Templates  []EnemyTemplate `yaml:"templates"`
	SpawnRules []SpawnRule     `yaml:"spawn_rules"`
	DropTables []DropTable     `yaml:"drop_tables"`
}

// ParseZoneFile decodes a zone definition from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single ZoneFile.
// Postcondition: Returns the decoded file or a parse error; no semantic
// validation is performed here.
func ParseZoneFile(data []byte) (*ZoneFile, error) {
	var zf ZoneFile
	if err := yaml.Unmarshal(data, &zf); err != nil {
		return nil, fmt.Errorf("parsing zone YAML: %w", err)
	}
	if zf.Zone == "" {
		return nil, fmt.Errorf("parsing zone YAML: zone must not be empty")
	}
	return &zf, nil
}

// YAMLProvider serves zone content from <dir>/<zoneID>.yaml files.
type YAMLProvider struct {
	dir string
}

// NewYAMLProvider creates a YAMLProvider rooted at dir.
//
// Precondition: dir must be non-empty.
func NewYAMLProvider(dir string) *YAMLProvider {
	return &YAMLProvider{dir: dir}
}

func (p *YAMLProvider) load(zoneID string) (*ZoneFile, error) {
	path := filepath.Join(p.dir, zoneID+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrZoneNotFound, zoneID)
		}
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	zf, err := ParseZoneFile(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	if zf.Zone != zoneID {
		return nil, fmt.Errorf("loading %q: declares zone %q, want %q", path, zf.Zone, zoneID)
	}
	return zf, nil
}

// Templates implements Provider.
func (p *YAMLProvider) Templates(_ context.Context, zoneID string) ([]EnemyTemplate, error) {
	zf, err := p.load(zoneID)
	if err != nil {
		return nil, err
	}
	return zf.Templates, nil
}

// SpawnRules implements Provider.
func (p *YAMLProvider) SpawnRules(_ context.Context, zoneID string) ([]SpawnRule, error) {
	zf, err := p.load(zoneID)
	if err != nil {
		return nil, err
	}
	return zf.SpawnRules, nil
}

// DropTables implements Provider.
func (p *YAMLProvider) DropTables(_ context.Context, zoneID string) ([]DropTable, error) {
	zf, err := p.load(zoneID)
	if err != nil {
		return nil, err
	}
	return zf.DropTables, nil
}
