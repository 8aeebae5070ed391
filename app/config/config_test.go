package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"quire/app/config"
)

func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quire.conf")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	conf, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return conf
}

func TestDefaults(t *testing.T) {
	conf := loadConfig(t, "")

	if _, err := os.Stat(conf.File()); err != nil {
		t.Errorf("Expected the user config to be created: %v", err)
	}

	s, err := conf.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}

	if s.Storage != "file" {
		t.Errorf("Expected storage file, got %q", s.Storage)
	}
	if s.UndoLimit != 100 {
		t.Errorf("Expected undo limit 100, got %d", s.UndoLimit)
	}
	if s.TabWidth != 4 {
		t.Errorf("Expected tab width 4, got %d", s.TabWidth)
	}
	if !s.LineNumbers {
		t.Errorf("Expected line numbers to be on")
	}
	if s.DatabasePath != "" {
		t.Errorf("Expected no database path, got %q", s.DatabasePath)
	}
}

func TestUserValueWins(t *testing.T) {
	conf := loadConfig(t, "[General]\nStorage = instant\n\n[Editor]\nTabWidth = 2\n")

	v, err := conf.Value(config.General, config.Storage)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v.Value != "instant" {
		t.Errorf("Expected instant, got %q", v.Value)
	}

	// untouched options still come from the defaults
	v, err = conf.Value(config.Editor, config.UndoLimit)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if n, _ := v.GetInt(); n != 100 {
		t.Errorf("Expected 100, got %q", v.Value)
	}
}

func TestSetValuePersists(t *testing.T) {
	conf := loadConfig(t, "")

	if err := conf.SetValue(config.Editor, config.LineNumbers, "false"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	reloaded, err := config.Load(conf.File())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	v, err := reloaded.Value(config.Editor, config.LineNumbers)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v.GetBool() {
		t.Errorf("Expected line numbers to be off after reload")
	}
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown storage", "[General]\nStorage = cloud\n"},
		{"zero tab width", "[Editor]\nTabWidth = 0\n"},
		{"not a number", "[Editor]\nUndoLimit = lots\n"},
		{"unknown log level", "[General]\nLogLevel = verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := loadConfig(t, tt.content)
			if _, err := conf.Settings(); err == nil {
				t.Errorf("Expected an error for %q", tt.content)
			}
		})
	}
}

func TestHomeIsExpanded(t *testing.T) {
	conf := loadConfig(t, "[General]\nDatabasePath = ~/books/notes.db\n")

	s, err := conf.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "books", "notes.db"); s.DatabasePath != want {
		t.Errorf("Expected %q, got %q", want, s.DatabasePath)
	}
}

func TestUnknownOption(t *testing.T) {
	conf := loadConfig(t, "")

	if _, err := conf.Value(config.Keymap, config.TabWidth); err == nil {
		t.Errorf("Expected an error for an option outside its section")
	}
}
