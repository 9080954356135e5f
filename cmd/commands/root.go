package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"pikser/internal/config"
	"pikser/internal/images"
	"pikser/internal/opener"
	"pikser/internal/picker"
	"pikser/internal/platform"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "pikser",
		Usage:     "Browse images in a directory and open them with the native viewer",
		ArgsUsage: "[target_dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Force the numbered menu even on a TTY",
			},
			&cli.BoolFlag{
				Name:  "no-inline",
				Usage: "Skip inline terminal rendering, external viewer only",
			},
			&cli.StringFlag{
				Name:  "inline-tool",
				Usage: "Force a specific inline renderer (chafa, viu, imgcat, ...)",
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Usage:   "Only list file names matching this glob",
			},
		},
		Commands: []*cli.Command{
			NewEthicsCommand(),
		},
		Action: runBrowse,
	}
}

func runBrowse(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory %q does not exist", dir)
	}

	opts := images.Options{
		ExtraExtensions: cfg.Images.ExtraExtensions,
		Pattern:         cfg.Images.Pattern,
	}
	if p := cmd.String("pattern"); p != "" {
		opts.Pattern = p
	}

	op := opener.New(platform.Detector{})
	op.Overrides = cfg.ViewerOverrides()

	// Flags beat config: --inline-tool implies inline, --no-inline disables.
	inline := cfg.Inline.Mode != "off"
	inlineTool := cfg.Inline.Tool
	if t := cmd.String("inline-tool"); t != "" {
		inline, inlineTool = true, t
	}
	if cmd.Bool("no-inline") {
		inline = false
	}

	// bufio.NewReader returns stdin's existing buffered reader untouched when
	// handed one, so the menu and the pause gate share a single buffer.
	stdin := bufio.NewReader(os.Stdin)

	var pick picker.Picker
	if cmd.Bool("plain") || !interactiveTerminal() {
		pick = picker.NewMenuPicker(stdin, os.Stdout)
	} else {
		pick = picker.FuzzyPicker{}
	}

	return browse(ctx, dir, opts, pick, op, inline, inlineTool, stdin)
}

// fileOpener is the slice of opener.Opener the browse loop needs; tests
// substitute a fake to observe launches.
type fileOpener interface {
	Open(path string) error
	DisplayInline(path, preferred string) bool
}

// browse runs the selection loop until the user quits or a fatal error hits.
func browse(ctx context.Context, dir string, opts images.Options, pick picker.Picker, op fileOpener, inline bool, inlineTool string, stdin *bufio.Reader) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		imgs, err := opts.List(dir)
		if err != nil {
			return err
		}
		if len(imgs) == 0 {
			return fmt.Errorf("no image files found in %s", dir)
		}

		sel, err := pick.Pick(imgs)
		if err != nil {
			return err
		}
		if sel.Quit {
			fmt.Println("Exiting...")
			return nil
		}

		path := sel.Path
		if sel.Random {
			p, ok := images.RandomOne(imgs)
			if !ok {
				fmt.Println("No images available for a random pick.")
				continue
			}
			path = p
		}

		fmt.Printf("📂 Opening: %s\n", filepath.Base(path))
		opened := false
		if inline {
			opened = op.DisplayInline(path, inlineTool)
		}
		if !opened {
			if err := op.Open(path); err != nil {
				return err
			}
		}

		fmt.Print("Press Enter to continue...")
		if _, err := stdin.ReadString('\n'); err != nil {
			fmt.Println()
			return nil
		}
	}
}

func interactiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
