package app

import (
	"os"
	"path/filepath"

	"quire/app/debug"
)

const databaseFileName = "notes.db"

func IsDev() bool {
	return os.Getenv("CHANNEL") == "dev"
}

func Name() string {
	return "Quire"
}

// ModuleName is the name used for the config and data directories.
// The CHANNEL env variable is appended so dev builds don't share
// data with the installed version.
func ModuleName() string {
	moduleName := "quire"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		moduleName += "-" + channel
	}

	return moduleName
}

// NotesRootDir returns the directory the notebook database lives in
func NotesRootDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		debug.LogErr(err)
		return "", err
	}

	notesDir := filepath.Join(home, "."+ModuleName())

	if _, err := os.Stat(notesDir); err != nil {
		if err := os.MkdirAll(notesDir, 0755); err != nil {
			debug.LogErr(err)
			return "", err
		}
	}

	return notesDir, nil
}

// DatabasePath returns the default path of the file backed notebook
func DatabasePath() (string, error) {
	dir, err := NotesRootDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, databaseFileName), nil
}

// ConfigDir returns the config directory
func ConfigDir() (string, error) {
	userDir, err := os.UserConfigDir()
	if err != nil {
		debug.LogErr("Could not get config directory", err)
		return "", err
	}

	confDir := filepath.Join(userDir, ModuleName())

	if _, err := os.Stat(confDir); err != nil {
		if err := os.MkdirAll(confDir, 0755); err != nil {
			debug.LogErr(err)
			return "", err
		}
	}

	return confDir, nil
}

// ConfigFile returns the path to the config file
func ConfigFile() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		debug.LogErr("Could not get config dir", err)
		return "", err
	}

	return filepath.Join(configDir, ModuleName()+".conf"), nil
}
