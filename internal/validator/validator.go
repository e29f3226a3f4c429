package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/deck"
)

// maxUsefulHand is the most cards a blackjack hand can hold without busting
// (four aces, four twos, three threes)
const maxUsefulHand = 11

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file. The returned error is reserved for a
// file that cannot be read at all; rule violations land in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("error parsing %s: %v", v.ConfigPath, err))
		return v.Results, nil
	}

	v.validateKeys(meta)
	v.validateBalance(cfg)
	v.validateHandSize(cfg)
	v.validatePlayer(cfg)
	v.validateSeed(cfg)

	return v.Results, nil
}

// validateKeys rejects keys the table does not understand
func (v *Validator) validateKeys(meta toml.MetaData) {
	for _, key := range meta.Undecoded() {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("unknown key: %s", key))
	}
}

func (v *Validator) validateBalance(cfg *config.Config) {
	if cfg.StartingBalance <= 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("starting_balance must be positive, got %d", cfg.StartingBalance))
	}
}

func (v *Validator) validateHandSize(cfg *config.Config) {
	if cfg.CardsPerHand < 1 || cfg.CardsPerHand > deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("cards_per_hand must be between 1 and %d, got %d", deck.Size, cfg.CardsPerHand))
		return
	}

	if cfg.CardsPerHand > maxUsefulHand {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("cards_per_hand is %d; any hand over %d cards is bust", cfg.CardsPerHand, maxUsefulHand))
	}
}

func (v *Validator) validatePlayer(cfg *config.Config) {
	if cfg.PlayerName == "" {
		v.Results.Warnings = append(v.Results.Warnings, "player_name is empty")
	}
}

func (v *Validator) validateSeed(cfg *config.Config) {
	if cfg.Seed != 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("seed is fixed at %d; every session will deal the same cards", cfg.Seed))
	}
}
