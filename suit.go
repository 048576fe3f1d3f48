package cards

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Color is the display color of a suit.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorBlack
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlack:
		return "black"
	}
	return "none"
}

// UnmarshalText decodes a color name from the suit table.
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*c = ColorNone
	case "red":
		*c = ColorRed
	case "black":
		*c = ColorBlack
	default:
		return fmt.Errorf("cards: unknown suit color %q: %w", text, ErrInvalidArgument)
	}
	return nil
}

// Suit is one entry of the fixed five-suit catalog. Exactly one instance
// exists per code for the lifetime of the process; lookups return pointers
// into the catalog and callers must treat them as read-only.
type Suit struct {
	Code        int
	Title       string
	DarkSymbol  rune
	LightSymbol rune
	Color       Color
	EmojiPrefix rune
}

// IsJoker reports whether s is the None/Joker suit. A nil suit counts.
func (s *Suit) IsJoker() bool {
	return s == nil || s.Code <= 0
}

// String returns the suit title, or the empty string for a nil suit.
func (s *Suit) String() string {
	if s == nil {
		return ""
	}
	return s.Title
}

// Suits returns the five catalog entries in fixed order:
// None, Clubs, Diamonds, Hearts, Spades.
func Suits() []*Suit {
	return slices.Clone(catalog().ordered)
}

// FromCode returns the suit with the given numeric code, or nil.
func FromCode(code int) *Suit {
	return catalog().byCode[code]
}

// FromRune returns the suit matching a single-character token: a code digit,
// dark or light symbol, or acronym letter in either case. Nil when nothing
// matches.
func FromRune(r rune) *Suit {
	return catalog().byRune[r]
}

// FromText resolves a textual suit reference. Blank input maps to the
// None/Joker suit, a single character is delegated to FromRune, and anything
// longer is matched case-insensitively against the suit titles. Nil when
// nothing matches.
func FromText(text string) *Suit {
	text = strings.TrimSpace(text)
	if text == "" {
		return noneSuit()
	}
	if utf8.RuneCountInString(text) == 1 {
		return FromRune(firstRune(text))
	}
	return catalog().byTitle[strings.ToLower(text)]
}

// Compare orders suits by code, with nil sorting before any catalog entry.
func Compare(a, b *Suit) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(a.Code, b.Code)
}
