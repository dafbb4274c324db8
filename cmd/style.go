package main

import (
	"strings"

	"github.com/luca-patrignani/pontoon/domain/pontoon"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const hiddenCard = "[Hidden Card]"

type deckStatus interface {
	CardsRemaining() int
	NeedsReshuffle() bool
	Fingerprint() string
}

func renderWelcome() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ontoon", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

func cardString(c pontoon.Card) string {
	switch c.Suit() {
	case pontoon.Hearts, pontoon.Diamonds:
		return pterm.LightRed(c.String())
	default:
		return c.String()
	}
}

func handBox(title string, lines []string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if len(lines) == 0 {
		lines = []string{"(no cards)"}
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(strings.Join(lines, "\n"))
}

func renderHand(title string, h *pontoon.Hand) string {
	var lines []string
	for _, c := range h.Cards() {
		lines = append(lines, cardString(c))
	}
	return handBox(pterm.LightCyan(title), lines)
}

// renderBankerHidden shows the banker's first card and hides the rest.
func renderBankerHidden(h *pontoon.Hand) string {
	var lines []string
	if first, ok := h.First(); ok {
		lines = append(lines, cardString(first))
	}
	if h.CardCount() > 1 {
		lines = append(lines, pterm.Gray(hiddenCard))
	}
	return handBox(pterm.LightYellow("Banker's Hand"), lines)
}

func renderStatus(d deckStatus) string {
	status := pterm.Sprintfln("Cards remaining in deck: %d", d.CardsRemaining())
	if d.NeedsReshuffle() {
		status += pterm.LightRed("A new deck is needed before the next round") + "\n"
	}
	status += pterm.Gray("Deck fingerprint: " + d.Fingerprint())
	return status
}

func printTable(playerName string, player, banker *pontoon.Hand, d deckStatus) error {
	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{
			{Data: renderHand(playerName+"'s Hand", player)},
			{Data: renderBankerHidden(banker)},
		},
		{
			{Data: renderStatus(d)},
		},
	}).Render()
}
