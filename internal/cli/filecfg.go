package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// FileConfig is the subset of [Config] that may be set from a YAML config
// file, applied before flags so that explicit flags always win.
type FileConfig struct {
	Delimiter    string `yaml:"delimiter"`
	Indent       int    `yaml:"indent"`
	KeyFolding   bool   `yaml:"keyFolding"`
	FlattenDepth int    `yaml:"flattenDepth"`
	ExpandPaths  bool   `yaml:"expandPaths"`
	NoStrict     bool   `yaml:"noStrict"`
	Stats        bool   `yaml:"stats"`
}

// LoadFileConfig reads a YAML config file at path and returns its contents.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyFile overlays non-flag-set values from fc onto c. changed reports,
// per pflag name, whether the user explicitly set that flag on the command
// line; those entries are left untouched so flags always win over the file.
func (c *Config) ApplyFile(fc *FileConfig, changed func(name string) bool) {
	if fc == nil {
		return
	}
	if fc.Delimiter != "" && !changed(c.Flags.Delimiter) {
		c.Delimiter = fc.Delimiter
	}
	if fc.Indent != 0 && !changed(c.Flags.Indent) {
		c.Indent = fc.Indent
	}
	if !changed(c.Flags.KeyFolding) {
		c.KeyFolding = c.KeyFolding || fc.KeyFolding
	}
	if fc.FlattenDepth != 0 && !changed(c.Flags.FlattenDepth) {
		c.FlattenDepth = fc.FlattenDepth
	}
	if !changed(c.Flags.ExpandPaths) {
		c.ExpandPaths = c.ExpandPaths || fc.ExpandPaths
	}
	if !changed(c.Flags.NoStrict) {
		c.NoStrict = c.NoStrict || fc.NoStrict
	}
	if !changed(c.Flags.Stats) {
		c.Stats = c.Stats || fc.Stats
	}
}
