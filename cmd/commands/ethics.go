package commands

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
)

//go:embed crawler_ethics.md
var crawlerEthicsDoc string

// NewEthicsCommand returns the ethics subcommand. It renders the bundled
// notes on responsible web crawling; the notes ship with the tool because
// image directories worth browsing are often filled by crawlers.
func NewEthicsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ethics",
		Usage: "Show the web-crawler ethics notes",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Print the raw markdown without terminal styling",
			},
		},
		Action: runEthics,
	}
}

func runEthics(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("raw") {
		fmt.Print(crawlerEthicsDoc)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(crawlerEthicsDoc)
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	fmt.Print(out)
	return nil
}
