package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Bettor is the part of a player the prompt needs
type Bettor interface {
	Balance() int
	CanPlaceBet(amount int) bool
}

// BetPrompter reads bets line by line
type BetPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewBetPrompter(in io.Reader, out io.Writer) *BetPrompter {
	return &BetPrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// nextLine returns the next input line trimmed and lowercased
func (bp *BetPrompter) nextLine() (string, bool, error) {
	if !bp.scanner.Scan() {
		return "", false, bp.scanner.Err()
	}
	return strings.ToLower(strings.TrimSpace(bp.scanner.Text())), true, nil
}

// PromptForValidBet asks until the bettor enters an amount it can cover.
// The bool is false when the user types "quit" or input ends.
func (bp *BetPrompter) PromptForValidBet(b Bettor) (int, bool, error) {
	for {
		fmt.Fprintf(bp.out, "Balance: %d. Enter bet (or type 'quit' to exit): ", b.Balance())

		input, more, err := bp.nextLine()
		if err != nil {
			return 0, false, fmt.Errorf("error reading bet: %w", err)
		}
		if !more || input == "quit" {
			return 0, false, nil
		}

		amount, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(bp.out, "Invalid input. Please enter a number.")
			continue
		}

		switch {
		case amount <= 0:
			fmt.Fprintln(bp.out, "Bet must be a positive number.")
		case !b.CanPlaceBet(amount):
			fmt.Fprintln(bp.out, "You do not have enough balance.")
		default:
			return amount, true, nil
		}
	}
}
