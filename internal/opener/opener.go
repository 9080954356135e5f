// Package opener launches the OS-native viewer for a file.
//
// Launches are fire-and-forget: the viewer is started detached and its exit
// status is never inspected, so a launch that starts but then fails (say the
// file vanished between listing and opening) is indistinguishable from
// success. That matches the tool's long-standing behavior and is deliberate.
// The only surfaced failure is ErrNoViewer, when no known launch command
// exists for the detected environment.
package opener

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"pikser/internal/platform"
)

// ErrNoViewer is returned when no launch command is available for the
// detected environment.
var ErrNoViewer = errors.New("no viewer command available")

// candidate is one way to open a file, tried in order until one is on PATH.
type candidate struct {
	name string
	args []string
	// winPath marks candidates that want the Windows form of a WSL path.
	winPath bool
}

// dispatch maps each environment to its ordered launch candidates.
var dispatch = map[platform.Kind][]candidate{
	platform.KindWSL: {
		{name: "cmd.exe", args: []string{"/c", "start", ""}, winPath: true},
		{name: "explorer.exe", winPath: true},
		{name: "wslview"},
		{name: "xdg-open"},
	},
	platform.KindWindows: {
		{name: "cmd", args: []string{"/c", "start", ""}},
		{name: "explorer"},
	},
	platform.KindDarwin: {
		{name: "open"},
	},
	platform.KindPosix: {
		{name: "xdg-open"},
		{name: "gnome-open"},
	},
}

// Opener resolves and launches viewer commands. Collaborators are injectable
// so tests can fake PATH lookups and process starts.
type Opener struct {
	Detector platform.Detector

	// Overrides prepends user-configured commands per environment. Each entry
	// is an argv prefix; the target path is appended.
	Overrides map[platform.Kind][]string

	lookPath func(string) (string, error)
	start    func(argv []string) error
	output   func(argv []string) (string, error)
	run      func(argv []string) error
}

// New returns an Opener backed by the real PATH and process table.
func New(det platform.Detector) *Opener {
	return &Opener{
		Detector: det,
		lookPath: exec.LookPath,
		start:    startDetached,
		output:   runOutput,
		run:      runInherited,
	}
}

// Open resolves path and launches the first available viewer for the current
// environment. Only a fully unlaunchable environment is an error.
func (o *Opener) Open(path string) error {
	abs := resolve(path)
	kind := o.Detector.Detect()

	candidates := dispatch[kind]
	if over := o.Overrides[kind]; len(over) > 0 {
		candidates = append([]candidate{{name: over[0], args: over[1:]}}, candidates...)
	}

	for _, c := range candidates {
		if _, err := o.lookPath(c.name); err != nil {
			continue
		}
		target := abs
		if c.winPath {
			target = o.windowsPath(abs)
		}
		argv := append(append([]string{c.name}, c.args...), target)
		if err := o.start(argv); err != nil {
			// Swallowed on purpose: treated the same as a viewer that
			// launched and then failed.
			slog.Debug("viewer launch failed", "argv", argv, "error", err)
		}
		return nil
	}
	return fmt.Errorf("%w for environment %s", ErrNoViewer, kind)
}

// windowsPath converts a WSL path for consumption by Windows commands. It
// prefers the wslpath utility and falls back to the textual translation.
func (o *Opener) windowsPath(path string) string {
	if _, err := o.lookPath("wslpath"); err == nil {
		out, err := o.output([]string{"wslpath", "-w", path})
		if err == nil {
			if win := strings.TrimSpace(out); win != "" {
				return win
			}
		}
	}
	return platform.TranslateMountPath(path)
}

// resolve makes path absolute and symlink-free where possible. Resolution
// failures fall back to the best form available; the open attempt itself will
// reveal a genuinely broken path.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}

func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap in the background; the exit status is intentionally dropped.
	go func() { _ = cmd.Wait() }()
	return nil
}

func runOutput(argv []string) (string, error) {
	out, err := exec.Command(argv[0], argv[1:]...).Output()
	return string(out), err
}
