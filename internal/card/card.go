package card

import (
	"fmt"
	"strings"
)

// Suit is the one-letter suit symbol used in card front filenames.
type Suit string

const (
	Clubs    Suit = "c"
	Hearts   Suit = "h"
	Diamonds Suit = "d"
	Spades   Suit = "s"
)

// Suits lists every suit in filename order.
var Suits = []Suit{Clubs, Hearts, Diamonds, Spades}

// Name returns the plural English name of the suit.
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Spades:
		return "Spades"
	}
	return string(s)
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit returns the suit for a symbol such as "c".
func ParseSuit(s string) (Suit, error) {
	for _, suit := range Suits {
		if string(suit) == s {
			return suit, nil
		}
	}
	return "", fmt.Errorf("no such suit '%s'", s)
}

// Rank is the one-character rank symbol: 1-9, then X for ten, J, Q, K.
type Rank string

const (
	Ace   Rank = "1"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "X"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists every rank in filename order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

// Name returns the English name of the rank.
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return string(r)
}

// ParseRank returns the rank for a symbol such as "X".
func ParseRank(s string) (Rank, error) {
	for _, rank := range Ranks {
		if string(rank) == s {
			return rank, nil
		}
	}
	return "", fmt.Errorf("no such rank '%s'", s)
}

// Card represents a single card front
type Card struct {
	Suit Suit
	Rank Rank
}

// ID returns the card identifier, suit followed by rank (e.g. "c1", "sK").
func (c Card) ID() string {
	return string(c.Suit) + string(c.Rank)
}

func (c Card) String() string {
	return c.ID()
}

// Name returns a readable name like "Queen of Hearts".
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank.Name(), c.Suit.Name())
}

// Parse parses a card identifier. Suit symbols are case sensitive, rank
// symbols accept lower case letters.
func Parse(id string) (Card, error) {
	if len(id) != 2 {
		return Card{}, fmt.Errorf("invalid card ID '%s': want suit and rank, e.g. c1 or sK", id)
	}
	suit, err := ParseSuit(id[:1])
	if err != nil {
		return Card{}, err
	}
	rank, err := ParseRank(strings.ToUpper(id[1:]))
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Cross returns every (suit, rank) pair, suit-major and rank-minor.
func Cross(suits []Suit, ranks []Rank) []Card {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Standard returns the 52 cards in filename order, c1 through sK.
func Standard() []Card {
	return Cross(Suits, Ranks)
}
