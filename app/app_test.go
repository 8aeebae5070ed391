package app_test

import (
	"path/filepath"
	"strings"
	"testing"

	"quire/app"
)

func TestModuleNameChannel(t *testing.T) {
	t.Setenv("CHANNEL", "dev")

	if got := app.ModuleName(); got != "quire-dev" {
		t.Errorf("Expected module name quire-dev, got %s", got)
	}

	if !app.IsDev() {
		t.Error("Expected IsDev to be true")
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("CHANNEL", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := app.ConfigFile()
	if err != nil {
		t.Fatalf("ConfigFile failed: %v", err)
	}

	if filepath.Base(path) != "quire.conf" {
		t.Errorf("Expected quire.conf, got %s", filepath.Base(path))
	}
}

func TestFullVersion(t *testing.T) {
	defer func(v, d, c string) { app.Version, app.Dev, app.Commit = v, d, c }(
		app.Version, app.Dev, app.Commit,
	)

	app.Version, app.Dev, app.Commit = "1.2", "", "abc"
	if got := app.FullVersion(); got != "1.2 (abc)" {
		t.Errorf("Expected 1.2 (abc), got %s", got)
	}

	app.Dev = "1"
	if got := app.FullVersion(); !strings.HasSuffix(got, "-dev.abc") {
		t.Errorf("Expected dev suffix, got %s", got)
	}
}
