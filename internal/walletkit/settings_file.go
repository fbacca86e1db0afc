package walletkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSettingsFile overlays the YAML file at path onto DefaultSettings.
// Fields absent from the file keep their defaults.
func LoadSettingsFile(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read wallet settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal wallet settings from %s: %w", path, err)
	}

	if settings.AllWallets == "" {
		settings.AllWallets = "HIDE"
	}
	switch settings.AllWallets {
	case "SHOW", "HIDE", "ONLY_MOBILE":
	default:
		return settings, fmt.Errorf("invalid allWallets value %q in %s", settings.AllWallets, path)
	}
	return settings, nil
}
