package player

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/google/uuid"
)

var (
	ErrInvalidBet     = errors.New("invalid bet")
	ErrNullCard       = errors.New("no card to receive")
	ErrInvalidBalance = errors.New("invalid balance")
)

// Player holds a balance of credits and the hand for the current round.
// Balance and hand updates are serialized per player.
type Player struct {
	id      string
	name    string
	balance int
	hand    []card.Card
	mu      sync.Mutex
}

// New creates a player with a starting balance
func New(name string, balance int) (*Player, error) {
	if balance < 0 {
		return nil, fmt.Errorf("%w: starting balance must not be negative, got %d", ErrInvalidBalance, balance)
	}

	return &Player{
		id:      uuid.New().String(),
		name:    name,
		balance: balance,
		hand:    []card.Card{},
	}, nil
}

// ID returns the player's unique identifier
func (p *Player) ID() string {
	return p.id
}

// Name returns the display name
func (p *Player) Name() string {
	return p.name
}

// Balance returns the credits available to bet
func (p *Player) Balance() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.balance
}

// CanPlaceBet reports whether amount is positive and covered by the balance
func (p *Player) CanPlaceBet(amount int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.canPlaceBet(amount)
}

func (p *Player) canPlaceBet(amount int) bool {
	return amount > 0 && amount <= p.balance
}

// PlaceBet deducts amount from the balance. It never clamps: an amount
// that CanPlaceBet rejects fails with ErrInvalidBet and leaves the
// balance untouched.
func (p *Player) PlaceBet(amount int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.canPlaceBet(amount) {
		if amount <= 0 {
			return fmt.Errorf("%w: bet amount must be positive, got %d", ErrInvalidBet, amount)
		}
		return fmt.Errorf("%w: insufficient balance to bet %d (balance %d)", ErrInvalidBet, amount, p.balance)
	}

	p.balance -= amount
	return nil
}

// ReceiveCard appends c to the hand. The zero Card handed out by an
// exhausted deck is rejected with ErrNullCard.
func (p *Player) ReceiveCard(c card.Card) error {
	if c.IsZero() {
		return ErrNullCard
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.hand = append(p.hand, c)
	return nil
}

// Hand returns a copy of the cards held, in deal order
func (p *Player) Hand() []card.Card {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]card.Card{}, p.hand...)
}

// ResetHand clears the hand at a round boundary
func (p *Player) ResetHand() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hand = []card.Card{}
}

// SetHand replaces the hand wholesale. No card is kept if any entry is
// the zero Card.
func (p *Player) SetHand(hand []card.Card) error {
	for i, c := range hand {
		if c.IsZero() {
			return fmt.Errorf("%w: position %d", ErrNullCard, i)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.hand = append([]card.Card{}, hand...)
	return nil
}

// HandValue returns the blackjack total of the current hand
func (p *Player) HandValue() (int, error) {
	return card.Total(p.Hand())
}
