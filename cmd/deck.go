package cmd

import (
	"fmt"

	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the 52-card deck",
	Long:  `Commands for inspecting the deck outside of a game.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List a fresh, unshuffled deck in draw order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		d := deck.New()
		out := cmd.OutOrStdout()

		// Cards() is bottom first; the top of the deck is drawn first
		cards := d.Cards()
		for i := len(cards) - 1; i >= 0; i-- {
			fmt.Fprintf(out, "%2d. %s\n", len(cards)-i, formatCard(cards[i]))
		}
	},
}

// deckDealCmd represents the deck deal command
var deckDealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a deck and deal cards from it",
	Long: `Deal shuffles a fresh deck and deals the requested number of cards.
Asking for more than 52 cards shows "(no card)" for every slot past the end of the deck.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")

		var opts []deck.Option
		if seed != 0 {
			opts = append(opts, deck.WithSeed(seed))
		}
		d := deck.New(opts...)
		d.Shuffle()

		cards, err := d.DealCards(count)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, c := range cards {
			fmt.Fprintf(out, "%2d. %s\n", i+1, formatCard(c))
		}
		fmt.Fprintf(out, "%d cards left in the deck\n", d.Size())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckDealCmd)

	deckDealCmd.Flags().IntP("count", "n", 5, "Number of cards to deal")
	deckDealCmd.Flags().Uint64("seed", 0, "Seed for a reproducible shuffle (0 for random)")
}
