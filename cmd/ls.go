package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardgamego/cardlist/internal/card"
	"github.com/cardgamego/cardlist/internal/deck"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card with its name and image path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		folder, _ := cmd.Flags().GetString("folder")
		d := deck.New(folder)

		// One line per card, in list order
		out := cmd.OutOrStdout()
		for _, c := range d.Cards {
			fmt.Fprintf(out, "%s  %-18s %s\n", suitColor(c.Suit).Sprint(c.ID()), c.Name(), d.ImagePath(c))
		}
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)

	lsCmd.Flags().String("folder", deck.DefaultFolder, "Folder prefix of every image path")
}

func suitColor(s card.Suit) *color.Color {
	if s.Red() {
		return color.New(color.FgHiRed, color.Bold)
	}
	return color.New(color.FgHiWhite, color.Bold)
}

func suitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return "♣"
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	case card.Spades:
		return "♠"
	default:
		return "•"
	}
}
