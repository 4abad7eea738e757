package project

import (
	"os"
	"path/filepath"
)

// Environment variables overriding the default on-disk locations.
const (
	EnvAutosavePath = "TURBEX_AUTOSAVE_PATH"
)

// configDirName is the per-user directory turbex keeps its state in.
const configDirName = ".turbex"

// AutosavePath resolves where the working project is autosaved. The
// TURBEX_AUTOSAVE_PATH variable wins when set, with relative values
// resolved against root (or the working directory when root is blank);
// otherwise the autosave lives in the user's .turbex directory.
func AutosavePath(root string) string {
	if p := os.Getenv(EnvAutosavePath); p != "" {
		if filepath.IsAbs(p) || root == "" {
			return p
		}
		return filepath.Join(root, p)
	}
	return filepath.Join(userConfigDir(), "autosave.json")
}

func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}
