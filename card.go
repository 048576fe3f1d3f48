package cards

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// Named ranks. Ranks 2 through 10 are their face value; MaxRank is an
// extended over-King rank retained for compatibility.
const (
	JokerRank = 0
	Ace       = 1
	Jack      = 11
	Queen     = 12
	King      = 13
	MaxRank   = 14
)

var rankTitles = map[int]string{
	Ace:   "Ace",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

// Card is an immutable (suit, rank) pair. Cards are plain values: construct
// them with New or Parse and compare them with Equal.
type Card struct {
	suit *Suit
	rank int
}

// New builds a card. A nil suit is normalized to the None/Joker suit; the
// Joker always carries rank 0 regardless of the supplied rank. For any other
// suit the rank must lie in [1, 14] or New fails with ErrInvalidArgument.
func New(suit *Suit, rank int) (Card, error) {
	if suit == nil {
		suit = noneSuit()
	}
	if suit.IsJoker() {
		return Card{suit: suit, rank: JokerRank}, nil
	}
	if rank < Ace || rank > MaxRank {
		return Card{}, fmt.Errorf("cards: rank %d outside [%d, %d]: %w", rank, Ace, MaxRank, ErrInvalidArgument)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Joker returns the Joker card.
func Joker() Card {
	return Card{suit: noneSuit()}
}

// Suit returns the card's suit. The zero Card reads as the Joker.
func (c Card) Suit() *Suit {
	if c.suit == nil {
		return noneSuit()
	}
	return c.suit
}

// Rank returns the card's rank; 0 for the Joker.
func (c Card) Rank() int {
	return c.rank
}

// Equal reports whether both suit and rank match.
func (c Card) Equal(other Card) bool {
	return c.Suit().Code == other.Suit().Code && c.rank == other.rank
}

// Title returns "Joker", the special rank name for Ace, Jack, Queen, and
// King, or the decimal rank.
func (c Card) Title() string {
	if c.Suit().IsJoker() {
		return "Joker"
	}
	if title, ok := rankTitles[c.rank]; ok {
		return title
	}
	return strconv.Itoa(c.rank)
}

// Symbol returns the short rank form: "Joker", the first letter of a special
// rank name, or the decimal rank.
func (c Card) Symbol() string {
	if c.Suit().IsJoker() {
		return "Joker"
	}
	if title, ok := rankTitles[c.rank]; ok {
		return title[:1]
	}
	return strconv.Itoa(c.rank)
}

// FullName returns "Joker" or "<rank title> of <suit title>".
func (c Card) FullName() string {
	if c.Suit().IsJoker() {
		return c.Title()
	}
	return fmt.Sprintf("%s of %s", c.Title(), c.Suit().Title)
}

// String returns the full name.
func (c Card) String() string {
	return c.FullName()
}

// Emoji returns the playing-card glyph for the card. The code point is the
// suit's emoji prefix plus the rank, rendered through its two-unit UTF-16
// surrogate pair as the supplementary plane requires.
func (c Card) Emoji() string {
	cp := c.Suit().EmojiPrefix + rune(c.rank)
	hi := uint16((cp-0x10000)>>10 + 0xD800)
	lo := uint16((cp-0x10000)&0x3FF + 0xDC00)
	return string(utf16.Decode([]uint16{hi, lo}))
}
