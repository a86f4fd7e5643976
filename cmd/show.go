package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cardgamego/cardlist/internal/ansiart"
	"github.com/cardgamego/cardlist/internal/card"
	"github.com/cardgamego/cardlist/internal/ctxlog"
	"github.com/cardgamego/cardlist/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card front image as ANSI art",
	Long: `Show renders a card front image in the terminal next to the card's details.
Card IDs are a suit symbol (c, h, d, s) followed by a rank symbol (1-9, X, J, Q, K).

The image is looked up at <assets>/<folder>/<card_id>.png, where --assets is the
directory the game runs from. It defaults to assets_root from the config file,
then the current directory. Unless --width or --height are given, the art is
sized to the terminal height.

Examples:
  cardlist show c1
  cardlist show --assets ../game hQ`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		// Settings from the config file, overridden by flags
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		assets := cfg.AssetsRoot
		if assets == "" {
			assets = "."
		}

		width, height := artSize(cmd)
		if width < 1 || height < 1 {
			return fmt.Errorf("invalid size %dx%d: width and height must be at least 1", width, height)
		}

		// Check if the image exists
		d := deck.New(cfg.Folder)
		imagePath := filepath.Join(assets, filepath.FromSlash(d.ImagePath(c)))
		if _, err := os.Stat(imagePath); os.IsNotExist(err) {
			return fmt.Errorf("card image not found: %s", imagePath)
		}

		ctxlog.FromContext(cmd.Context()).Debug("rendering card",
			"card", c.ID(), "image", imagePath, "width", width, "height", height)

		// Render the image as ANSI art
		art, err := ansiart.RenderFile(imagePath, width, height)
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", imagePath, err)
		}

		displayCard(cmd.OutOrStdout(), c, art, d.ImagePath(c))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("assets", "a", ".", "Directory the image paths are relative to")
	showCmd.Flags().String("folder", deck.DefaultFolder, "Folder holding the card front images")
	showCmd.Flags().Int("width", defaultArtWidth, "Art width in terminal cells (default fits the terminal)")
	showCmd.Flags().Int("height", defaultArtHeight, "Art height in terminal cells (default fits the terminal)")
	showCmd.Flags().StringP("config", "c", "", "Config file to read instead of the default one")
}

const (
	defaultArtWidth  = 24
	defaultArtHeight = 16
)

// artSize returns the art dimensions. Flags that were not set are derived
// from the terminal height, falling back to the flag defaults when stdout is
// not a terminal.
func artSize(cmd *cobra.Command) (int, int) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	_, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 {
		return width, height
	}

	fitWidth, fitHeight := fitToRows(rows)
	widthSet, heightSet := cmd.Flags().Changed("width"), cmd.Flags().Changed("height")
	switch {
	case !widthSet && !heightSet:
		return fitWidth, fitHeight
	case !heightSet:
		return width, fitHeight
	case !widthSet:
		return height * 3 / 2, height
	}
	return width, height
}

// fitToRows sizes the art to a terminal with the given number of rows,
// keeping the 3:2 cell ratio of the defaults and leaving room for the prompt.
func fitToRows(rows int) (int, int) {
	height := min(max(rows-4, 8), 32)
	return height * 3 / 2, height
}

// displayCard prints the art on the left and the card details on the right.
func displayCard(out io.Writer, c card.Card, art, imagePath string) {
	artLines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := ansiart.VisibleWidth(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	infoLines := []string{
		color.CyanString("Card: ") + suitColor(c.Suit).Sprint(c.Name()),
		color.CyanString("ID:   ") + color.HiWhiteString("%s", c.ID()),
		color.CyanString("Suit: ") + color.HiWhiteString("%s · %s", c.Suit.Name(), suitSymbol(c.Suit)),
		color.CyanString("Rank: ") + color.HiWhiteString("%s", c.Rank.Name()),
		color.CyanString("Path: ") + color.HiWhiteString("%s", imagePath),
	}

	spacing := 4
	infoStartCol := maxArtWidth + spacing

	// Drop the details below the art on narrow terminals.
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	sideBySide := width-infoStartCol-2 >= 20

	fmt.Fprintln(out)
	if !sideBySide {
		for _, line := range artLines {
			fmt.Fprintf(out, "  %s\n", line)
		}
		fmt.Fprintln(out)
		for _, line := range infoLines {
			fmt.Fprintf(out, "  %s\n", line)
		}
		fmt.Fprintln(out)
		return
	}

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(out, "  ")
		if i < len(artLines) {
			fmt.Fprint(out, artLines[i])
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-ansiart.VisibleWidth(artLines[i])))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}

		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}
