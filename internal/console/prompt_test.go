package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arcanaland/blackjack/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prompt(t *testing.T, input string) (int, bool, string) {
	t.Helper()
	p, err := player.New("alice", 100)
	require.NoError(t, err)

	var out bytes.Buffer
	amount, ok, err := NewBetPrompter(strings.NewReader(input), &out).PromptForValidBet(p)
	require.NoError(t, err)
	return amount, ok, out.String()
}

func TestPromptValidBet(t *testing.T) {
	amount, ok, out := prompt(t, "25\n")
	assert.True(t, ok)
	assert.Equal(t, 25, amount)
	assert.Contains(t, out, "Balance: 100.")
}

func TestPromptWholeBalance(t *testing.T) {
	amount, ok, _ := prompt(t, "  100  \n")
	assert.True(t, ok)
	assert.Equal(t, 100, amount)
}

func TestPromptQuit(t *testing.T) {
	for _, in := range []string{"quit\n", "  QUIT \n", ""} {
		amount, ok, _ := prompt(t, in)
		assert.False(t, ok, "%q", in)
		assert.Equal(t, 0, amount)
	}
}

func TestPromptRetriesUntilValid(t *testing.T) {
	amount, ok, out := prompt(t, "ten\n0\n-5\n101\n40\n")
	assert.True(t, ok)
	assert.Equal(t, 40, amount)

	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "Bet must be a positive number.")
	assert.Equal(t, 2, strings.Count(out, "Bet must be a positive number."))
	assert.Contains(t, out, "You do not have enough balance.")
	assert.Equal(t, 5, strings.Count(out, "Enter bet"))
}

func TestPromptInputEndsAfterInvalid(t *testing.T) {
	amount, ok, out := prompt(t, "abc\n")
	assert.False(t, ok)
	assert.Equal(t, 0, amount)
	assert.Contains(t, out, "Invalid input")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

func TestPromptReadError(t *testing.T) {
	p, err := player.New("alice", 100)
	require.NoError(t, err)

	_, ok, err := NewBetPrompter(failingReader{}, &bytes.Buffer{}).PromptForValidBet(p)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "terminal closed")
}
