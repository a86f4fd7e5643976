package deck

import (
	"strings"

	"github.com/cardgamego/cardlist/internal/card"
)

// DefaultFolder is where the game looks for card front images.
const DefaultFolder = "assets/images/cards/fronts"

// ImageExt is the extension of every card front image.
const ImageExt = ".png"

// Deck is an ordered set of card fronts stored under one folder
type Deck struct {
	Folder string
	Cards  []card.Card
}

// New returns a deck of the standard 52 cards stored under folder.
func New(folder string) *Deck {
	return &Deck{
		Folder: strings.TrimRight(folder, "/"),
		Cards:  card.Standard(),
	}
}

// Default returns the standard deck under DefaultFolder.
func Default() *Deck {
	return New(DefaultFolder)
}

// ImagePath returns the relative image path of a card, e.g.
// "assets/images/cards/fronts/c1.png".
func (d *Deck) ImagePath(c card.Card) string {
	if d.Folder == "" {
		return c.ID() + ImageExt
	}
	return d.Folder + "/" + c.ID() + ImageExt
}

// Paths returns the image path of every card in deck order.
func (d *Deck) Paths() []string {
	paths := make([]string, 0, len(d.Cards))
	for _, c := range d.Cards {
		paths = append(paths, d.ImagePath(c))
	}
	return paths
}
