package commands

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pikser/internal/images"
	"pikser/internal/picker"
)

type fakeOpener struct {
	opened  []string
	inlined []string
	inline  bool
	openErr error
}

func (f *fakeOpener) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.openErr
}

func (f *fakeOpener) DisplayInline(path, _ string) bool {
	if f.inline {
		f.inlined = append(f.inlined, path)
	}
	return f.inline
}

// scriptedPicker returns canned selections in order.
type scriptedPicker struct {
	selections []picker.Selection
	seen       [][]string
}

func (s *scriptedPicker) Pick(imgs []string) (picker.Selection, error) {
	s.seen = append(s.seen, imgs)
	if len(s.selections) == 0 {
		return picker.Selection{Quit: true}, nil
	}
	sel := s.selections[0]
	s.selections = s.selections[1:]
	return sel, nil
}

func imageDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRootCommandMissingDirectory(t *testing.T) {
	cmd := NewRootCommand()
	err := cmd.Run(context.Background(), []string{
		"pikser",
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		filepath.Join(t.TempDir(), "no-such-dir"),
	})
	if err == nil {
		t.Fatal("expected error for missing target directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBrowseOpensSelectionOnce(t *testing.T) {
	dir := imageDir(t, "cat.png")

	img := filepath.Join(dir, "cat.png")
	pick := &scriptedPicker{selections: []picker.Selection{
		{Path: img},
		{Quit: true},
	}}
	op := &fakeOpener{}
	stdin := bufio.NewReader(strings.NewReader("\n"))

	err := browse(context.Background(), dir, images.Options{}, pick, op, false, "", stdin)
	if err != nil {
		t.Fatal(err)
	}
	if len(op.opened) != 1 || op.opened[0] != img {
		t.Errorf("opened = %v, want exactly [%s]", op.opened, img)
	}
	if len(pick.seen) != 2 {
		t.Fatalf("picker called %d times, want 2", len(pick.seen))
	}
	if len(pick.seen[0]) != 1 || pick.seen[0][0] != img {
		t.Errorf("picker got listing %v", pick.seen[0])
	}
}

func TestBrowseRandomSelection(t *testing.T) {
	dir := imageDir(t, "only.png")

	pick := &scriptedPicker{selections: []picker.Selection{
		{Random: true},
		{Quit: true},
	}}
	op := &fakeOpener{}
	stdin := bufio.NewReader(strings.NewReader("\n"))

	if err := browse(context.Background(), dir, images.Options{}, pick, op, false, "", stdin); err != nil {
		t.Fatal(err)
	}
	// With one image the random pick is deterministic.
	want := filepath.Join(dir, "only.png")
	if len(op.opened) != 1 || op.opened[0] != want {
		t.Errorf("opened = %v, want [%s]", op.opened, want)
	}
}

func TestBrowseNoImages(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	pick := &scriptedPicker{}
	op := &fakeOpener{}
	stdin := bufio.NewReader(strings.NewReader(""))

	err := browse(context.Background(), dir, images.Options{}, pick, op, false, "", stdin)
	if err == nil || !strings.Contains(err.Error(), "no image files") {
		t.Errorf("expected no-images error, got %v", err)
	}
	if len(op.opened) != 0 {
		t.Errorf("no viewer should launch, got %v", op.opened)
	}
}

func TestBrowseInlineSkipsExternalOpen(t *testing.T) {
	dir := imageDir(t, "cat.png")

	pick := &scriptedPicker{selections: []picker.Selection{
		{Path: filepath.Join(dir, "cat.png")},
		{Quit: true},
	}}
	op := &fakeOpener{inline: true}
	stdin := bufio.NewReader(strings.NewReader("\n"))

	if err := browse(context.Background(), dir, images.Options{}, pick, op, true, "", stdin); err != nil {
		t.Fatal(err)
	}
	if len(op.inlined) != 1 {
		t.Errorf("expected one inline render, got %v", op.inlined)
	}
	if len(op.opened) != 0 {
		t.Errorf("external viewer should not launch after inline, got %v", op.opened)
	}
}

func TestBrowseOpenErrorPropagates(t *testing.T) {
	dir := imageDir(t, "cat.png")

	pick := &scriptedPicker{selections: []picker.Selection{
		{Path: filepath.Join(dir, "cat.png")},
	}}
	op := &fakeOpener{openErr: os.ErrNotExist}
	stdin := bufio.NewReader(strings.NewReader(""))

	if err := browse(context.Background(), dir, images.Options{}, pick, op, false, "", stdin); err == nil {
		t.Error("expected opener error to propagate")
	}
}

func TestBrowseMenuEndToEnd(t *testing.T) {
	dir := imageDir(t, "cat.png")

	// The menu and the pause gate share the scripted stdin: pick entry 1,
	// acknowledge, then quit.
	var menuOut strings.Builder
	stdin := bufio.NewReader(strings.NewReader("1\n\nq\n"))
	pick := picker.NewMenuPicker(stdin, &menuOut)
	op := &fakeOpener{}

	if err := browse(context.Background(), dir, images.Options{}, pick, op, false, "", stdin); err != nil {
		t.Fatal(err)
	}
	if len(op.opened) != 1 {
		t.Fatalf("viewer launched %d times, want 1", len(op.opened))
	}
	menu := menuOut.String()
	if !strings.Contains(menu, picker.RandomLabel) || !strings.Contains(menu, "cat.png") {
		t.Errorf("menu should list the random entry and the image:\n%s", menu)
	}
}
