// Package clipboard mirrors yanked text to the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"quire/app/debug"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

type backend int

const (
	none backend = iota
	native
	wayland
	command
)

var backends = map[backend]string{
	none:    "none",
	native:  "native",
	wayland: "wayland",
	command: "command",
}

func (b backend) String() string {
	return backends[b]
}

var (
	mu     sync.Mutex
	active = none
)

var ErrUnavailable = errors.New("no clipboard backend available")

// Init picks a clipboard backend. Wayland uses wl-copy and wl-paste,
// X11, macOS and Windows use the native clipboard. If that fails the
// platform tools found by atotto/clipboard are tried.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	active = detect()
	debug.LogDebug("clipboard backend:", active)

	if active == none {
		return ErrUnavailable
	}
	return nil
}

func detect() backend {
	switch runtime.GOOS {
	case "windows", "darwin":
		if clipboard.Init() == nil {
			return native
		}

	case "linux", "freebsd", "openbsd", "netbsd":
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := exec.LookPath("wl-copy"); err == nil {
				return wayland
			}
		}

		if os.Getenv("DISPLAY") != "" && clipboard.Init() == nil {
			return native
		}
	}

	if !atotto.Unsupported {
		return command
	}

	return none
}

// Available reports whether Init found a backend
func Available() bool {
	mu.Lock()
	defer mu.Unlock()
	return active != none
}

func Write(text string) error {
	mu.Lock()
	b := active
	mu.Unlock()

	switch b {
	case native:
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil

	case wayland:
		cmd := exec.Command("wl-copy", "--type", "text/plain", "--foreground")
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return err
		}

		if err := cmd.Start(); err != nil {
			return err
		}

		go func() {
			defer stdin.Close()
			io.WriteString(stdin, text)
		}()

		go func() {
			cmd.Wait()
		}()

		return nil

	case command:
		return atotto.WriteAll(text)
	}

	return ErrUnavailable
}

func Read() (string, error) {
	mu.Lock()
	b := active
	mu.Unlock()

	switch b {
	case native:
		return string(clipboard.Read(clipboard.FmtText)), nil

	case wayland:
		out, err := exec.Command("wl-paste", "--no-newline").Output()
		if err != nil {
			return "", err
		}
		return string(bytes.TrimSpace(out)), nil

	case command:
		return atotto.ReadAll()
	}

	return "", ErrUnavailable
}
