package picker

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// maxDisplay caps how many entries the numbered menu prints at once. Bigger
// listings stay reachable through range input.
const maxDisplay = 50

// nameWidth is the column width for file names; longer names are truncated.
const nameWidth = 32

// MenuPicker is the non-interactive fallback: a numbered menu on plain
// stdin/stdout. Accepts an entry number, a start-end range (opens the first
// of the range), r/0 for random, and q to quit. Unrecognized input re-prompts.
type MenuPicker struct {
	in  *bufio.Reader
	out io.Writer
}

// NewMenuPicker wires the menu to the given streams.
func NewMenuPicker(in io.Reader, out io.Writer) *MenuPicker {
	return &MenuPicker{in: bufio.NewReader(in), out: out}
}

func (m *MenuPicker) Pick(images []string) (Selection, error) {
	shown := images
	if len(shown) > maxDisplay {
		shown = images[:maxDisplay]
	}

	for {
		m.render(shown, len(images))

		line, err := m.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return Selection{Quit: true}, nil
			}
			return Selection{}, fmt.Errorf("read selection: %w", err)
		}

		kind, idx := parseChoice(line, len(shown), len(images))
		switch kind {
		case choiceQuit:
			return Selection{Quit: true}, nil
		case choiceRandom:
			return Selection{Random: true}, nil
		case choiceIndex:
			return Selection{Path: images[idx]}, nil
		case choiceBeyond:
			fmt.Fprintf(m.out, "Image #%d is beyond the displayed range; use a range like '%d-%d'.\n",
				idx+1, idx+1, min(idx+11, len(images)))
		default:
			fmt.Fprintln(m.out, "Invalid selection. Try again.")
		}
	}
}

func (m *MenuPicker) render(shown []string, total int) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, strings.Repeat("=", 70))
	fmt.Fprintf(m.out, "📷 pikser - %d image(s) found\n", total)
	fmt.Fprintln(m.out, strings.Repeat("=", 70))

	if total > len(shown) {
		fmt.Fprintf(m.out, "Showing first %d of %d. Use a range like '1-%d' for the rest.\n",
			len(shown), total, total)
	}

	fmt.Fprintf(m.out, "\n  0) %s\n", RandomLabel)
	fmt.Fprintln(m.out, strings.Repeat("-", 70))

	for i := 0; i < len(shown); i += 2 {
		left := fmt.Sprintf("%3d) %-*s", i+1, nameWidth, displayName(shown[i]))
		if i+1 < len(shown) {
			fmt.Fprintf(m.out, "%s %3d) %s\n", left, i+2, displayName(shown[i+1]))
		} else {
			fmt.Fprintln(m.out, strings.TrimRight(left, " "))
		}
	}

	fmt.Fprint(m.out, "\nSelect number, 'r' for random, 'q' to quit: ")
}

func displayName(path string) string {
	name := filepath.Base(path)
	if len(name) > nameWidth {
		return name[:nameWidth]
	}
	return name
}

type choiceKind int

const (
	choiceInvalid choiceKind = iota
	choiceQuit
	choiceRandom
	choiceIndex
	// choiceBeyond is a valid entry number past the displayed window.
	choiceBeyond
)

// parseChoice classifies one line of menu input. idx is zero-based and only
// meaningful for choiceIndex and choiceBeyond.
func parseChoice(input string, shown, total int) (kind choiceKind, idx int) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "q", "quit", "exit":
		return choiceQuit, 0
	case "r", "random", "0":
		return choiceRandom, 0
	}

	if start, end, ok := strings.Cut(s, "-"); ok {
		a, errA := strconv.Atoi(strings.TrimSpace(start))
		b, errB := strconv.Atoi(strings.TrimSpace(end))
		if errA == nil && errB == nil && 1 <= a && a <= b && b <= total {
			return choiceIndex, a - 1
		}
		return choiceInvalid, 0
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return choiceInvalid, 0
	}
	switch {
	case n >= 1 && n <= shown:
		return choiceIndex, n - 1
	case n > shown && n <= total:
		return choiceBeyond, n - 1
	}
	return choiceInvalid, 0
}
