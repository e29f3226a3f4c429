package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/console"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/player"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Sit down at the table and play rounds",
	Long: `Play deals rounds from a shuffled deck. Each round asks for a bet, which must be
positive and no more than your balance, then deals a fresh hand and shows its total.
A new deck is shuffled in when the current one cannot cover a full hand.

Type 'quit' at the bet prompt to leave the table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		applyColorSetting(cfg.Color)

		if balance, _ := cmd.Flags().GetInt("balance"); balance > 0 {
			cfg.StartingBalance = balance
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Debug("reading bets from non-interactive input")
		}

		t, err := newTable(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return t.run()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("balance", "b", 0, "Starting balance (overrides the config file)")
}

// table drives one player through successive rounds
type table struct {
	player       *player.Player
	deck         *deck.Deck
	newDeck      func() *deck.Deck
	prompter     *console.BetPrompter
	out          io.Writer
	cardsPerHand int
}

func newTable(cfg *config.Config, in io.Reader, out io.Writer) (*table, error) {
	p, err := player.New(cfg.PlayerName, cfg.StartingBalance)
	if err != nil {
		return nil, err
	}
	if cfg.CardsPerHand < 1 || cfg.CardsPerHand > deck.Size {
		return nil, fmt.Errorf("cards_per_hand must be between 1 and %d, got %d", deck.Size, cfg.CardsPerHand)
	}

	var opts []deck.Option
	if cfg.Seed != 0 {
		// One source for the whole session so each new deck shuffles differently
		opts = append(opts, deck.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	newDeck := func() *deck.Deck {
		return deck.New(opts...)
	}
	shoe := newDeck()
	shoe.Shuffle()

	return &table{
		player:       p,
		deck:         shoe,
		newDeck:      newDeck,
		prompter:     console.NewBetPrompter(in, out),
		out:          out,
		cardsPerHand: cfg.CardsPerHand,
	}, nil
}

func (t *table) run() error {
	logger.Debug("player seated", "id", t.player.ID(), "name", t.player.Name(), "balance", t.player.Balance())

	for t.player.Balance() > 0 {
		bet, ok, err := t.prompter.PromptForValidBet(t.player)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if err := t.playRound(bet); err != nil {
			return err
		}
	}

	if t.player.Balance() == 0 {
		fmt.Fprintln(t.out, "You are out of credits.")
	}
	fmt.Fprintf(t.out, "Leaving the table with %d credits.\n", t.player.Balance())
	return nil
}

func (t *table) playRound(bet int) error {
	if err := t.player.PlaceBet(bet); err != nil {
		return err
	}
	t.player.ResetHand()

	if t.deck.Size() < t.cardsPerHand {
		logger.Debug("deck exhausted, shuffling a new one", "remaining", t.deck.Size())
		t.deck = t.newDeck()
		t.deck.Shuffle()
	}

	cards, err := t.deck.DealCards(t.cardsPerHand)
	if err != nil {
		return err
	}
	for _, c := range cards {
		if err := t.player.ReceiveCard(c); err != nil {
			return err
		}
	}
	logger.Debug("hand dealt", "bet", bet, "cards", len(cards), "deck", t.deck.Size())

	hand := t.player.Hand()
	total, soft, err := card.TotalSoft(hand)
	if err != nil {
		return err
	}

	fmt.Fprintln(t.out, handPanel(t.player.Name(), hand, total, soft, t.player.Balance()))
	return nil
}
