package browser

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrEmptyTarget is returned when there is nothing to open.
var ErrEmptyTarget = errors.New("browser: empty target")

// Launcher starts a detached process.
type Launcher func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Opener opens URLs with the platform's default handler.
type Opener struct {
	goos   string
	launch Launcher
}

// New returns an Opener for the running platform.
func New() *Opener {
	return &Opener{goos: runtime.GOOS, launch: startDetached}
}

// NewWith returns an Opener for goos that starts processes through launch.
func NewWith(goos string, launch Launcher) *Opener {
	return &Opener{goos: goos, launch: launch}
}

// Open launches target and returns the command line it ran.
func (o *Opener) Open(target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", ErrEmptyTarget
	}

	var name string
	var args []string
	switch o.goos {
	case "darwin":
		name, args = "open", []string{target}
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		name, args = "xdg-open", []string{target}
	}

	if err := o.launch(name, args...); err != nil {
		return "", err
	}
	return strings.Join(append([]string{name}, args...), " "), nil
}
