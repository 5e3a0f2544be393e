package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "quickbuck.yaml"

// Load loads the Quick Buck configuration.
// Search order: customPath -> ~/.arcade/configs/quickbuck.yaml -> ./configs/quickbuck.yaml -> embedded default.
// Only an explicit customPath can produce a read or parse error; the other
// locations are skipped when missing or malformed.
func Load(customPath string) (QuickBuckConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuickBuckConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return QuickBuckConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultQuickBuckYAML)
	if err != nil {
		return DefaultQuickBuckConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// to name the values it changes.
func Parse(data []byte) (QuickBuckConfig, error) {
	cfg := DefaultQuickBuckConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuickBuckConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg QuickBuckConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
