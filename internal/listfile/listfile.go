// Package listfile writes the list of card front image paths that the game's
// asset loader pastes into its image table.
package listfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cardgamego/cardlist/internal/deck"
)

// DefaultOutput is the file written by a bare invocation.
const DefaultOutput = "output.txt"

// Format selects how image paths are rendered.
type Format string

const (
	// FormatList renders one array-literal entry per line: "path",
	FormatList Format = "list"
	// FormatYAML renders a YAML sequence of paths.
	FormatYAML Format = "yaml"
)

// ParseFormat returns the format named s. An empty string selects FormatList.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatList:
		return FormatList, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format '%s' (supported: list, yaml)", s)
}

// Line formats one image path as an array-literal entry, including the
// trailing newline.
func Line(path string) string {
	return "\"" + path + "\",\n"
}

// Write renders every image path of d to w in deck order.
func Write(w io.Writer, d *deck.Deck, format Format) error {
	switch format {
	case FormatList:
		for _, p := range d.Paths() {
			if _, err := io.WriteString(w, Line(p)); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d.Paths()); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format '%s'", format)
}

// Generate creates or truncates the file at path and writes the image paths
// of d into it. A partially written file is left behind on failure.
func Generate(path string, d *deck.Deck, format Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := Write(bw, d, format); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
