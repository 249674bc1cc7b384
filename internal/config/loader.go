package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGolf loads the minigolf configuration. Keys missing from the file keep
// their default values.
// Search order: customPath -> ~/.minigolf/configs/golf.yaml -> ./configs/golf.yaml -> embedded default
//
// A custom path must exist and parse. The other locations are optional and
// skipped when unreadable or malformed.
func LoadGolf(customPath string) (GolfConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGolfConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseGolf(data)
		if err != nil {
			return DefaultGolfConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("golf.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseGolf(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseGolf(defaultGolfYAML); err == nil {
		return cfg, nil
	}
	return DefaultGolfConfig(), nil
}

// parseGolf overlays YAML onto the hard-coded defaults.
func parseGolf(data []byte) (GolfConfig, error) {
	cfg := DefaultGolfConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGolfConfig(), err
	}
	return cfg, nil
}

// searchPaths lists the optional config locations in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".minigolf", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}
