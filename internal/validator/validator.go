package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cardgamego/cardlist/internal/card"
	"github.com/cardgamego/cardlist/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a generated list file against the deck it should describe.
type Validator struct {
	ListPath string
	Deck     *deck.Deck
	// AssetsRoot, when set, is the directory the image paths are relative to.
	// Missing images are reported as warnings.
	AssetsRoot string
	Results    ValidationResults
}

func NewValidator(listPath string, d *deck.Deck) *Validator {
	return &Validator{
		ListPath: listPath,
		Deck:     d,
		Results:  ValidationResults{},
	}
}

// entry is one successfully parsed list line.
type entry struct {
	line int
	card card.Card
	path string
}

func (v *Validator) Validate() (ValidationResults, error) {
	v.Results = ValidationResults{}

	lines, err := v.readLines()
	if err != nil {
		return v.Results, err
	}

	if len(lines) == 0 {
		v.Results.Errors = append(v.Results.Errors, "list file is empty")
		return v.Results, nil
	}

	entries, malformed := v.parseLines(lines)
	v.validateCount(lines)
	complete := v.validateCoverage(entries)

	// Order only means something once every card is present exactly once
	if complete && !malformed {
		v.validateOrder(entries)
	}
	v.validateAssets(entries)

	return v.Results, nil
}

// readLines returns the file's lines without their "\n" terminators.
func (v *Validator) readLines() ([]string, error) {
	data, err := os.ReadFile(v.ListPath)
	if err != nil {
		return nil, fmt.Errorf("error reading list file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	// Check for the final line terminator
	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		v.Results.Warnings = append(v.Results.Warnings, "last line has no line terminator")
	} else {
		content = strings.TrimSuffix(content, "\n")
	}
	return strings.Split(content, "\n"), nil
}

// parseLines parses every line and reports whether any of them was malformed.
func (v *Validator) parseLines(lines []string) ([]entry, bool) {
	entries := make([]entry, 0, len(lines))
	malformed := false
	for i, line := range lines {
		e, err := v.parseLine(i+1, line)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, err.Error())
			malformed = true
			continue
		}
		entries = append(entries, e)
	}
	return entries, malformed
}

func (v *Validator) parseLine(n int, line string) (entry, error) {
	if strings.HasSuffix(line, "\r") {
		return entry{}, fmt.Errorf("line %d: carriage return before line terminator", n)
	}
	if len(line) < 3 || !strings.HasPrefix(line, "\"") || !strings.HasSuffix(line, "\",") {
		return entry{}, fmt.Errorf("line %d: expected a quoted path followed by a comma, found %q", n, line)
	}
	path := line[1 : len(line)-2]

	// Check the folder prefix and image extension
	name := path
	if v.Deck.Folder != "" {
		prefix := v.Deck.Folder + "/"
		if !strings.HasPrefix(path, prefix) {
			return entry{}, fmt.Errorf("line %d: %s is not in %s", n, path, v.Deck.Folder)
		}
		name = strings.TrimPrefix(path, prefix)
	}
	if !strings.HasSuffix(name, deck.ImageExt) {
		return entry{}, fmt.Errorf("line %d: %s is not a %s image", n, path, deck.ImageExt)
	}

	// Check the card ID symbols
	id := strings.TrimSuffix(name, deck.ImageExt)
	if len(id) != 2 {
		return entry{}, fmt.Errorf("line %d: invalid card ID '%s'", n, id)
	}
	suit, err := card.ParseSuit(id[:1])
	if err != nil {
		return entry{}, fmt.Errorf("line %d: unknown suit symbol '%s'", n, id[:1])
	}
	rank, err := card.ParseRank(id[1:])
	if err != nil {
		return entry{}, fmt.Errorf("line %d: unknown rank symbol '%s'", n, id[1:])
	}

	return entry{line: n, card: card.Card{Suit: suit, Rank: rank}, path: path}, nil
}

func (v *Validator) validateCount(lines []string) {
	if len(lines) != len(v.Deck.Cards) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("expected %d lines (%d suits × %d ranks), found %d",
				len(v.Deck.Cards), len(card.Suits), len(card.Ranks), len(lines)))
	}
}

// validateCoverage reports duplicate and missing cards and returns true when
// every card of the deck appears exactly once.
func (v *Validator) validateCoverage(entries []entry) bool {
	complete := true
	seen := make(map[card.Card]int, len(entries))
	for _, e := range entries {
		if first, ok := seen[e.card]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card %s on lines %d and %d", e.card, first, e.line))
			complete = false
			continue
		}
		seen[e.card] = e.line
	}

	// Check for cards that never appeared
	missing := []string{}
	for _, c := range v.Deck.Cards {
		if _, ok := seen[c]; !ok {
			missing = append(missing, c.ID())
		}
	}
	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing cards: %s", strings.Join(missing, ", ")))
		complete = false
	}
	return complete
}

// validateOrder reports the first card that breaks suit-major, rank-minor order.
func (v *Validator) validateOrder(entries []entry) {
	for i, e := range entries {
		if i >= len(v.Deck.Cards) {
			return
		}
		if want := v.Deck.Cards[i]; e.card != want {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("line %d: expected %s, found %s (cards must be listed suit by suit, ranks 1-9 X J Q K)",
					e.line, want, e.card))
			return
		}
	}
}

func (v *Validator) validateAssets(entries []entry) {
	if v.AssetsRoot == "" {
		return
	}
	if _, err := os.Stat(v.AssetsRoot); os.IsNotExist(err) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("assets root not found: %s", v.AssetsRoot))
		return
	}

	// Check each listed image on disk
	missing := []string{}
	for _, e := range entries {
		imagePath := filepath.Join(v.AssetsRoot, filepath.FromSlash(e.path))
		if _, err := os.Stat(imagePath); os.IsNotExist(err) {
			missing = append(missing, e.card.ID())
		}
	}
	if len(missing) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("missing card images in %s: %s", v.AssetsRoot, strings.Join(missing, ", ")))
	}
}
