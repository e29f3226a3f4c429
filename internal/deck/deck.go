package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/arcanaland/blackjack/internal/card"
)

// Size of a fresh deck
const Size = 52

var ErrInvalidArgument = errors.New("invalid argument")

// Deck is a stack of cards. The top of the deck is the end of the slice,
// so a fresh deck draws King of Spades first.
//
// A Deck is not safe for concurrent use; each table owns its own.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// Option configures a Deck
type Option func(*Deck)

// WithRand sets the random source used by Shuffle
func WithRand(r *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = r
	}
}

// WithSeed makes Shuffle reproducible
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New creates a fresh 52-card deck ordered suit-major (Hearts, Diamonds,
// Clubs, Spades) and rank-minor (Ace through King).
func New(opts ...Option) *Deck {
	d := &Deck{cards: make([]card.Card, 0, Size)}

	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			d.cards = append(d.cards, card.Card{Rank: rank, Suit: suit})
		}
	}

	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		seed := uint64(time.Now().UnixNano())
		d.rng = rand.New(rand.NewPCG(seed, rand.Uint64()))
	}

	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	// Fisher-Yates shuffle algorithm
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DrawCard removes and returns the top card. On an empty deck it returns
// the zero Card and false.
func (d *Deck) DrawCard() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}

	top := len(d.cards) - 1
	c := d.cards[top]
	d.cards = d.cards[:top]
	return c, true
}

// DealCards draws n cards in sequence. The result always has n entries;
// slots past the end of the deck hold the zero Card.
func (d *Deck) DealCards(n int) ([]card.Card, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of cards must be greater than zero, got %d", ErrInvalidArgument, n)
	}

	cards := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, _ := d.DrawCard()
		cards = append(cards, c)
	}

	return cards, nil
}

// Size returns the number of cards left in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether every card has been drawn
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Contains reports whether c is still in the deck
func (d *Deck) Contains(c card.Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}
