package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MasterConfig holds the master server settings read from a YAML file.
// CLI flags override anything set here.
type MasterConfig struct {
	Port        int      `yaml:"port,omitempty"`
	DataDir     string   `yaml:"data_dir,omitempty"`
	Threads     int      `yaml:"threads,omitempty"`
	Volumes     []string `yaml:"volumes,omitempty"`
	MetricsAddr string   `yaml:"metrics_addr,omitempty"`
}

// VolumeConfig holds the volume server settings read from a YAML file.
type VolumeConfig struct {
	Port        int    `yaml:"port,omitempty"`
	DataDir     string `yaml:"data_dir,omitempty"`
	Threads     int    `yaml:"threads,omitempty"`
	Master      string `yaml:"master,omitempty"`
	Base        string `yaml:"base,omitempty"`
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// LoadMaster parses a master config file.
func LoadMaster(path string) (*MasterConfig, error) {
	var cfg MasterConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadVolume parses a volume config file.
func LoadVolume(path string) (*VolumeConfig, error) {
	var cfg VolumeConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}
