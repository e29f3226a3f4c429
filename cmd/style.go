package cmd

import (
	"strings"

	"github.com/arcanaland/blackjack/internal/card"
	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	redSuit   = colorize.New(colorize.FgHiRed, colorize.Bold)
	blackSuit = colorize.New(colorize.FgHiWhite, colorize.Bold)
)

// applyColorSetting turns off all styling when the config asks for it
func applyColorSetting(enabled bool) {
	if !enabled {
		colorize.NoColor = true
		pterm.DisableStyling()
	}
}

func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Hearts:
		return "♥"
	case card.Diamonds:
		return "♦"
	case card.Clubs:
		return "♣"
	case card.Spades:
		return "♠"
	default:
		return "•"
	}
}

// formatCard renders a card with its suit symbol, red for hearts and diamonds
func formatCard(c card.Card) string {
	if c.IsZero() {
		return "(no card)"
	}

	style := blackSuit
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		style = redSuit
	}
	return style.Sprintf("%s %s", getSuitSymbol(c.Suit), c)
}

// handPanel renders the hand summary shown after each deal
func handPanel(name string, hand []card.Card, total int, soft bool, balance int) string {
	var lines []string
	for _, c := range hand {
		lines = append(lines, formatCard(c))
	}

	label := "Total"
	if soft {
		label = "Soft total"
	}
	lines = append(lines, "", pterm.Sprintf("%s: %d", label, total))
	if total > 21 {
		lines = append(lines, pterm.LightRed("Bust"))
	} else if total == 21 && len(hand) == 2 {
		lines = append(lines, pterm.LightGreen("Blackjack"))
	}
	lines = append(lines, pterm.Sprintf("Balance: %d", balance))

	box := pterm.DefaultBox.WithHorizontalPadding(2).
		WithTitle(pterm.LightCyan(name)).WithTitleTopCenter()
	return box.Sprint(strings.Join(lines, "\n"))
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
