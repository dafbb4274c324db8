package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pontoon/domain/deck"
	"github.com/luca-patrignani/pontoon/domain/pontoon"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args, ".env")
	if err != nil {
		return err
	}
	logger := newLogger(cfg.level)

	banner, err := renderWelcome()
	if err != nil {
		return fmt.Errorf("render welcome: %w", err)
	}
	pterm.Print(banner)
	pterm.Info.Printfln("Welcome to Pontoon, %s!", cfg.Player)

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	shoe := deck.NewShared(newDeck(cfg, logger))
	spinner.Success()

	player := pontoon.NewHand()
	banker := pontoon.NewHand()

	spinner, _ = pterm.DefaultSpinner.Start("Dealing initial cards ...")
	if err := dealInitial(shoe, player, banker); err != nil {
		spinner.Fail()
		logger.Error("initial deal failed", "error", err)
		return err
	}
	spinner.Success()
	logger.Info("initial deal complete", "remaining", shoe.CardsRemaining())

	return printTable(cfg.Player, player, banker, shoe)
}
