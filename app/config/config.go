package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"quire/app"
	"quire/app/debug"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/ini.v1"
)

//go:embed default.conf
var defaultConf []byte

type Section int

const (
	General Section = iota
	Editor
	Keymap
)

// Map of Section enum values to their string representations
var sections = map[Section]string{
	General: "General",
	Editor:  "Editor",
	Keymap:  "Keymap",
}

// String returns the string representation of a Section
func (s Section) String() string {
	return sections[s]
}

type Option int

const (
	Storage Option = iota
	DatabasePath
	LogLevel
	UndoLimit
	TabWidth
	LineNumbers
	File
)

// Map of Option enum values to their string names as used in the ini file
var options = map[Option]string{
	Storage:      "Storage",
	DatabasePath: "DatabasePath",
	LogLevel:     "LogLevel",
	UndoLimit:    "UndoLimit",
	TabWidth:     "TabWidth",
	LineNumbers:  "LineNumbers",
	File:         "File",
}

// String returns the string representation of an Option
func (o Option) String() string {
	return options[o]
}

// Value represents an entry of the config file
type Value struct {
	Value string
}

func (v Value) GetBool() bool {
	return v.Value == "true"
}

func (v Value) GetInt() (int, error) {
	return strconv.Atoi(strings.TrimSpace(v.Value))
}

// Config holds the embedded defaults and the user config file
type Config struct {
	// path to the user config file
	filePath string

	// parsed default config
	file *ini.File

	// parsed user config file
	userFile *ini.File
}

func (c *Config) File() string { return c.filePath }

// New loads the user config file from the config directory, creating
// an empty one if it doesn't exist.
func New() (*Config, error) {
	filePath, err := app.ConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(filePath)
}

// Load reads the user config at filePath on top of the defaults
func Load(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filePath, nil, 0644); err != nil {
			debug.LogErr("Failed to create config file:", err)
			return nil, err
		}
	}

	ini.PrettyFormat = false
	ini.PrettyEqual = true

	conf, err := ini.Load(defaultConf)
	if err != nil {
		debug.LogErr("Failed to read default config:", err)
		return nil, err
	}

	userConf, err := ini.Load(filePath)
	if err != nil {
		debug.LogErr("Failed to read user config file:", err)
		return nil, err
	}

	return &Config{
		filePath: filePath,
		file:     conf,
		userFile: userConf,
	}, nil
}

// Reload refreshes the user configuration file in memory
func (c *Config) Reload() error {
	conf, err := ini.Load(c.filePath)
	if err != nil {
		debug.LogErr("Failed to read config file:", err)
		return err
	}

	c.userFile = conf
	return nil
}

// Value retrieves the value of a configuration option in a given section.
// A user value wins over the default.
func (c *Config) Value(section Section, option Option) (Value, error) {
	if sect, err := c.userFile.GetSection(section.String()); err == nil {
		if key := sect.Key(option.String()); key.String() != "" {
			return Value{key.String()}, nil
		}
	}

	sect, err := c.file.GetSection(section.String())
	if err != nil {
		return Value{}, fmt.Errorf("no section: %s", section.String())
	}

	if !sect.HasKey(option.String()) {
		return Value{}, fmt.Errorf(
			"couldn't find config option `%s` in section `%s`",
			option.String(),
			section.String(),
		)
	}

	return Value{sect.Key(option.String()).String()}, nil
}

// SetValue sets a configuration option in the user file and saves it
// immediately
func (c *Config) SetValue(section Section, option Option, value string) error {
	c.userFile.
		Section(section.String()).
		Key(option.String()).
		SetValue(value)

	return c.userFile.SaveTo(c.filePath)
}

// Settings are the typed values the program starts with
type Settings struct {
	Storage      string
	DatabasePath string
	LogLevel     string
	UndoLimit    int
	TabWidth     int
	LineNumbers  bool
	KeymapFile   string
}

// Settings reads every option into a Settings value. A leading ~ in
// paths is replaced with the home directory.
func (c *Config) Settings() (Settings, error) {
	var s Settings

	str := func(section Section, option Option) string {
		v, err := c.Value(section, option)
		if err != nil {
			debug.LogWarn(err)
		}
		return strings.TrimSpace(v.Value)
	}

	num := func(section Section, option Option) (int, error) {
		v, err := c.Value(section, option)
		if err != nil {
			return 0, err
		}
		n, err := v.GetInt()
		if err != nil {
			return 0, fmt.Errorf("%s.%s: %w", section, option, err)
		}
		return n, nil
	}

	s.Storage = strings.ToLower(str(General, Storage))
	s.DatabasePath = expandHome(str(General, DatabasePath))
	s.LogLevel = str(General, LogLevel)
	s.KeymapFile = expandHome(str(Keymap, File))

	lineNumbers, _ := c.Value(Editor, LineNumbers)
	s.LineNumbers = lineNumbers.GetBool()

	var err error
	if s.UndoLimit, err = num(Editor, UndoLimit); err != nil {
		return s, err
	}
	if s.TabWidth, err = num(Editor, TabWidth); err != nil {
		return s, err
	}

	return s, s.Validate()
}

// Validate checks the settings read from the config file.
func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Storage, validation.Required, validation.In("instant", "file")),
		validation.Field(&s.LogLevel, validation.In("info", "debug", "warn", "error", "INFO", "DEBUG", "WARN", "ERROR")),
		validation.Field(&s.UndoLimit, validation.Required, validation.Min(1)),
		validation.Field(&s.TabWidth, validation.Required, validation.Min(1), validation.Max(16)),
	)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
