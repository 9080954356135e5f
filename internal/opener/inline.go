package opener

import (
	"os"
	"os/exec"
)

// inlineTools are terminal image renderers, tried in order. Each entry is an
// argv prefix; the image path is appended.
var inlineTools = [][]string{
	{"chafa", "--format=kitty"},
	{"chafa", "--format=sixels"},
	{"viu"},
	{"tiv"},
	{"tycat"},
	{"imgcat"},
	{"icat"},
	{"catimg"},
}

// DisplayInline renders the image inside the terminal using the first
// available helper tool. When preferred is non-empty only that tool is tried.
// Returns false if no tool is available, so the caller can fall back to the
// external viewer.
func (o *Opener) DisplayInline(path, preferred string) bool {
	candidates := inlineTools
	if preferred != "" {
		candidates = [][]string{{preferred}}
	}

	for _, tool := range candidates {
		if _, err := o.lookPath(tool[0]); err != nil {
			continue
		}
		argv := append(append([]string{}, tool...), path)
		// Render errors are not fatal; the image simply did not draw.
		_ = o.run(argv)
		return true
	}
	return false
}

// runInherited runs a command wired to the terminal, blocking until it exits.
func runInherited(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
