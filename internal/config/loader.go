package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directories.
const FileName = "champions.yaml"

// Load reads the arcade configuration.
// Search order: customPath -> ~/.champions/configs/champions.yaml ->
// ./configs/champions.yaml -> embedded default -> DefaultConfig.
// Only an explicit customPath that cannot be read or parsed is an error.
// Files overlay the defaults, so a partial file only changes what it names.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// Parse decodes YAML over DefaultConfig and validates the result.
// Sequences such as math.levels are replaced wholesale; maps are merged.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".champions", "configs", filename)
}
