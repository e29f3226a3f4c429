package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four French suits
type Suit string

// Rank is the face value label of a card
type Rank string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

const (
	Ace   Rank = "Ace"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "Jack"
	Queen Rank = "Queen"
	King  Rank = "King"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

var (
	suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

// Suits returns the suits in deck construction order
func Suits() []Suit {
	return append([]Suit(nil), suits...)
}

// Ranks returns the ranks in deck construction order, Ace first
func Ranks() []Rank {
	return append([]Rank(nil), ranks...)
}

// Valid reports whether s is one of the four canonical suits
func (s Suit) Valid() bool {
	for _, v := range suits {
		if s == v {
			return true
		}
	}
	return false
}

// Valid reports whether r is one of the thirteen canonical ranks
func (r Rank) Valid() bool {
	for _, v := range ranks {
		if r == v {
			return true
		}
	}
	return false
}

// Card is an immutable playing card. The zero Card is the "no card"
// marker handed out by an exhausted deck.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard builds a card, rejecting ranks and suits outside the canonical sets
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// IsZero reports whether c is the "no card" marker
func (c Card) IsZero() bool {
	return c == Card{}
}

// Value returns the blackjack point value of the card. Aces count 11;
// Total handles demoting them to 1.
func (c Card) Value() (int, error) {
	switch c.Rank {
	case Ace:
		return 11, nil
	case Jack, Queen, King:
		return 10, nil
	}

	v, err := strconv.Atoi(string(c.Rank))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c.Rank)
	}
	return v, nil
}

func (c Card) String() string {
	return string(c.Rank) + " of " + string(c.Suit)
}

// Total returns the best blackjack total for a hand
func Total(cards []Card) (int, error) {
	total, _, err := TotalSoft(cards)
	return total, err
}

// TotalSoft returns the hand total and whether an ace is still counted as 11
func TotalSoft(cards []Card) (int, bool, error) {
	score := 0
	aces := 0

	for _, c := range cards {
		v, err := c.Value()
		if err != nil {
			return 0, false, err
		}
		if c.Rank == Ace {
			aces++
		}
		score += v
	}

	for aces > 0 && score > 21 {
		score -= 10
		aces--
	}

	return score, aces > 0, nil
}

var shortRanks = map[string]Rank{
	"a": Ace, "2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "t": Ten, "j": Jack, "q": Queen, "k": King,
}

var shortSuits = map[string]Suit{
	"h": Hearts, "d": Diamonds, "c": Clubs, "s": Spades,
}

// ParseCard parses "Ace of Spades" style names (case-insensitive) and
// short codes such as "AS", "10h" or "qd".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)

	if parts := strings.Fields(s); len(parts) == 3 && strings.EqualFold(parts[1], "of") {
		return NewCard(matchRank(parts[0]), matchSuit(parts[2]))
	}

	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	code := strings.ToLower(s)
	rank, ok := shortRanks[code[:len(code)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, s[:len(s)-1])
	}
	suit, ok := shortSuits[code[len(code)-1:]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidSuit, s[len(s)-1:])
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func matchRank(s string) Rank {
	for _, r := range ranks {
		if strings.EqualFold(s, string(r)) {
			return r
		}
	}
	return Rank(s)
}

func matchSuit(s string) Suit {
	for _, v := range suits {
		if strings.EqualFold(s, string(v)) {
			return v
		}
	}
	return Suit(s)
}
