// Package picker presents the image list and returns one user selection.
// Two backends implement the same contract: a fuzzy-filtering TUI for
// interactive terminals and a numbered menu for plain stdio.
package picker

// RandomLabel is the synthetic entry prepended to every listing.
const RandomLabel = "🎲 RANDOM IMAGE"

// Selection is the outcome of one round of picking. Exactly one of Path,
// Random, or Quit is meaningful.
type Selection struct {
	// Path is the chosen image, when the user picked a concrete entry.
	Path string
	// Random requests a uniformly random image from the current listing.
	Random bool
	// Quit ends the browse loop.
	Quit bool
}

// Picker produces one Selection from the given image list. Implementations
// block until the user decides.
type Picker interface {
	Pick(images []string) (Selection, error)
}
