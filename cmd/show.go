package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/blackjack/internal/card"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a card and its blackjack value",
	Long: `Show displays a card with its suit, rank and blackjack point value.
Cards can be named in full or with a short code.

Examples:
  blackjack show "Ace of Spades"
  blackjack show QH
  blackjack show 10d`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.ParseCard(args[0])
		if err != nil {
			return fmt.Errorf("error parsing card: %w", err)
		}

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		return displayCard(cmd.OutOrStdout(), c, width)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// describeCard explains how a card counts toward a hand
func describeCard(c card.Card) string {
	switch c.Rank {
	case card.Ace:
		return "Aces count 11, or 1 whenever 11 would push the hand over 21. An ace with any ten-value card is a blackjack."
	case card.Jack, card.Queen, card.King:
		return "Face cards count 10, the same as a ten."
	default:
		return "Number cards count their pip value."
	}
}

// displayCard prints the card information
func displayCard(out io.Writer, c card.Card, width int) error {
	value, err := c.Value()
	if err != nil {
		return err
	}

	lines := []string{
		colorize.CyanString("Card:  ") + formatCard(c),
		colorize.CyanString("Rank:  ") + colorize.HiWhiteString("%s", c.Rank),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s · %s", c.Suit, getSuitSymbol(c.Suit)),
		colorize.CyanString("Value: ") + colorize.HiWhiteString("%d", value),
		"",
	}
	lines = append(lines, wrapText(describeCard(c), width-4)...)

	fmt.Fprintln(out)
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out)

	return nil
}
