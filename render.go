package cards

import "github.com/fatih/color"

// ColoredSymbol returns the dark suit symbol colored for terminal output:
// red for Diamonds and Hearts, bright white for Clubs and Spades, dim for
// the None suit. Returns the empty string for a nil suit.
func (s *Suit) ColoredSymbol() string {
	if s == nil {
		return ""
	}
	symbol := string(s.DarkSymbol)
	switch s.Color {
	case ColorRed:
		return color.RedString(symbol)
	case ColorBlack:
		return color.HiWhiteString(symbol)
	}
	return color.HiBlackString(symbol)
}

// ColoredString returns the colored suit symbol followed by the rank symbol,
// e.g. a red "♥A"; the Joker renders dim.
func (c Card) ColoredString() string {
	suit := c.Suit()
	if suit.IsJoker() {
		return color.HiBlackString(c.Title())
	}
	return suit.ColoredSymbol() + c.Symbol()
}
