package player

import (
	"testing"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initialBalance = 100

func newPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := New("alice", initialBalance)
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	p := newPlayer(t)
	assert.Equal(t, initialBalance, p.Balance())
	assert.Equal(t, "alice", p.Name())
	assert.NotEmpty(t, p.ID())
	assert.Empty(t, p.Hand())

	other := newPlayer(t)
	assert.NotEqual(t, p.ID(), other.ID())

	zero, err := New("broke", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Balance())

	_, err = New("debtor", -1)
	assert.ErrorIs(t, err, ErrInvalidBalance)
}

func TestCanPlaceBet(t *testing.T) {
	p := newPlayer(t)

	assert.False(t, p.CanPlaceBet(0))
	assert.False(t, p.CanPlaceBet(-5))
	assert.False(t, p.CanPlaceBet(101))
	assert.True(t, p.CanPlaceBet(100))
	assert.True(t, p.CanPlaceBet(1))
	assert.Equal(t, initialBalance, p.Balance())
}

func TestPlaceBetValidAmount(t *testing.T) {
	p := newPlayer(t)

	require.NoError(t, p.PlaceBet(30))
	assert.Equal(t, 70, p.Balance())
	assert.False(t, p.CanPlaceBet(71))
}

func TestPlaceBetWholeBalance(t *testing.T) {
	p := newPlayer(t)

	require.NoError(t, p.PlaceBet(initialBalance))
	assert.Equal(t, 0, p.Balance())
	assert.False(t, p.CanPlaceBet(1))
}

func TestPlaceBetNonPositive(t *testing.T) {
	for _, amount := range []int{0, -1, -10} {
		p := newPlayer(t)
		err := p.PlaceBet(amount)
		assert.ErrorIs(t, err, ErrInvalidBet)
		assert.Contains(t, err.Error(), "must be positive")
		assert.Equal(t, initialBalance, p.Balance())
	}
}

func TestPlaceBetInsufficientBalance(t *testing.T) {
	for _, amount := range []int{101, 150, 201} {
		p := newPlayer(t)
		err := p.PlaceBet(amount)
		assert.ErrorIs(t, err, ErrInvalidBet)
		assert.Contains(t, err.Error(), "insufficient balance")
		assert.Equal(t, initialBalance, p.Balance())
	}
}

func TestReceiveCardNull(t *testing.T) {
	p := newPlayer(t)

	assert.ErrorIs(t, p.ReceiveCard(card.Card{}), ErrNullCard)
	assert.Empty(t, p.Hand())
}

func TestReceiveCard(t *testing.T) {
	p := newPlayer(t)
	first := card.Card{Rank: card.Ace, Suit: card.Clubs}
	second := card.Card{Rank: card.Nine, Suit: card.Hearts}

	require.NoError(t, p.ReceiveCard(first))
	require.Len(t, p.Hand(), 1)
	assert.Equal(t, first, p.Hand()[0])

	require.NoError(t, p.ReceiveCard(second))
	hand := p.Hand()
	require.Len(t, hand, 2)
	assert.Equal(t, second, hand[len(hand)-1])
}

func TestHandIsACopy(t *testing.T) {
	p := newPlayer(t)
	require.NoError(t, p.ReceiveCard(card.Card{Rank: card.Two, Suit: card.Spades}))

	hand := p.Hand()
	hand[0] = card.Card{Rank: card.King, Suit: card.Spades}

	assert.Equal(t, card.Two, p.Hand()[0].Rank)
}

func TestResetHand(t *testing.T) {
	p := newPlayer(t)
	require.NoError(t, p.ReceiveCard(card.Card{Rank: card.Two, Suit: card.Spades}))

	p.ResetHand()
	assert.Empty(t, p.Hand())
}

func TestSetHand(t *testing.T) {
	p := newPlayer(t)
	hand := []card.Card{
		{Rank: card.Ace, Suit: card.Spades},
		{Rank: card.King, Suit: card.Hearts},
	}

	require.NoError(t, p.SetHand(hand))
	assert.Equal(t, hand, p.Hand())

	err := p.SetHand([]card.Card{{Rank: card.Two, Suit: card.Clubs}, {}})
	assert.ErrorIs(t, err, ErrNullCard)
	assert.Equal(t, hand, p.Hand())
}

func TestHandValue(t *testing.T) {
	p := newPlayer(t)
	require.NoError(t, p.SetHand([]card.Card{
		{Rank: card.Ace, Suit: card.Spades},
		{Rank: card.Ace, Suit: card.Hearts},
		{Rank: card.Nine, Suit: card.Clubs},
	}))

	v, err := p.HandValue()
	require.NoError(t, err)
	assert.Equal(t, 21, v)
}

func TestDealToPlayer(t *testing.T) {
	d := deck.New()
	d.Shuffle()
	p := newPlayer(t)

	cards, err := d.DealCards(5)
	require.NoError(t, err)
	for _, c := range cards {
		require.NoError(t, p.ReceiveCard(c))
	}

	assert.Len(t, p.Hand(), 5)
	assert.Equal(t, 47, d.Size())
	for _, c := range p.Hand() {
		assert.False(t, d.Contains(c), "%s is both in hand and deck", c)
	}
}

func TestDealFromExhaustedDeck(t *testing.T) {
	d := deck.New()
	_, err := d.DealCards(deck.Size - 1)
	require.NoError(t, err)
	p := newPlayer(t)

	cards, err := d.DealCards(2)
	require.NoError(t, err)
	require.NoError(t, p.ReceiveCard(cards[0]))
	assert.ErrorIs(t, p.ReceiveCard(cards[1]), ErrNullCard)
	assert.Len(t, p.Hand(), 1)
}
