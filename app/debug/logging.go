package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const appLogFile = "app.log"
const errorLogFile = "error.log"

type ErrorLvl int

const (
	Info ErrorLvl = iota
	Debug
	Warn
	Error
)

var errLvl = map[ErrorLvl]string{
	Info:  "INFO",
	Debug: "DEBUG",
	Warn:  "WARN",
	Error: "ERROR",
}

var slogLvl = map[ErrorLvl]slog.Level{
	Info:  slog.LevelInfo,
	Debug: slog.LevelDebug,
	Warn:  slog.LevelWarn,
	Error: slog.LevelError,
}

func (e ErrorLvl) String() string {
	return errLvl[e]
}

// ParseLevel maps a config value like "debug" to its ErrorLvl.
// Unknown values fall back to Info.
func ParseLevel(s string) ErrorLvl {
	for lvl, name := range errLvl {
		if strings.EqualFold(name, s) {
			return lvl
		}
	}
	return Info
}

var (
	mu        sync.Mutex
	level     = new(slog.LevelVar)
	appLog    *slog.Logger
	errLog    *slog.Logger
	logCloser []io.Closer
)

func LogInfo(args ...any) {
	logMsg(Info, args...)
}

func LogDebug(args ...any) {
	logMsg(Debug, args...)
}

func LogWarn(args ...any) {
	logMsg(Warn, args...)
}

func LogErr(args ...any) {
	logMsg(Error, args...)
}

// SetLevel sets the minimum level that gets written.
func SetLevel(lvl ErrorLvl) {
	level.Set(slogLvl[lvl])
}

// SetOutput routes every level to w. Mostly useful in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeFiles()
	appLog = newLogger(w)
	errLog = appLog
}

// Close releases the log files opened by the first log call.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFiles()
}

func logMsg(lvl ErrorLvl, args ...any) {
	mu.Lock()
	if appLog == nil {
		openFiles()
	}
	logger := appLog
	if lvl == Error {
		logger = errLog
	}
	mu.Unlock()

	logger.Log(context.Background(), slogLvl[lvl], strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// openFiles opens app.log and error.log in the config dir.
// A file that can't be opened swallows its messages.
func openFiles() {
	configDir, err := ConfigDir()

	appLog = newLogger(openFile(configDir, appLogFile, err))
	errLog = newLogger(openFile(configDir, errorLogFile, err))
}

func openFile(dir string, name string, dirErr error) io.Writer {
	if dirErr != nil {
		return io.Discard
	}

	file, err := os.OpenFile(
		filepath.Join(dir, name),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return io.Discard
	}

	logCloser = append(logCloser, file)
	return file
}

func closeFiles() {
	for _, c := range logCloser {
		c.Close()
	}
	logCloser = nil
	appLog = nil
	errLog = nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ConfigDir mirrors app.ConfigDir; app imports this package so
// it can't be used here.
func ConfigDir() (string, error) {
	userDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appName := "quire"
	if channel := os.Getenv("CHANNEL"); channel != "" {
		appName += "-" + channel
	}

	confDir := filepath.Join(userDir, appName)

	if _, err := os.Stat(confDir); err != nil {
		if err := os.MkdirAll(confDir, 0755); err != nil {
			return "", err
		}
	}

	return confDir, nil
}
