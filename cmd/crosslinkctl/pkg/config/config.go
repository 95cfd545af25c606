// Package config loads crosslinkctl's YAML configuration file, following
// the same load/permission-check shape as the rest of the strand-protocol
// tooling family.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds crosslinkctl's link and buffer settings.
type Config struct {
	Device          string `yaml:"device"`
	Baud            int    `yaml:"baud"`
	RingCapacity    int    `yaml:"ring_capacity"`
	ScratchCapacity int    `yaml:"scratch_capacity"`
	Overwrite       bool   `yaml:"overwrite"`
}

// DefaultPath returns the default config file path: ~/.crosslink/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".crosslink", "config.yaml")
	}
	return filepath.Join(home, ".crosslink", "config.yaml")
}

// Load reads the configuration from the given YAML file path. If the
// file does not exist, it returns a default Config with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Baud:            115200,
		RingCapacity:    512,
		ScratchCapacity: 256,
		Overwrite:       true,
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		fmt.Fprintf(os.Stderr,
			"warning: config file %s has permissions %04o — expected 0600.\n",
			path, perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
