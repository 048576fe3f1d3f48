package cards

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse resolves shorthand card text. The accepted forms are "joker" in any
// case, a suit token followed by a rank token, or a rank token followed by a
// suit token; the suit token is a single code digit, suit symbol, or acronym
// letter, and the rank token is a decimal integer or one of A, J, Q, K in
// either case. Parse never returns an error: malformed text, an unknown
// suit, and an out-of-range rank all report as not-a-card.
func Parse(text string) (Card, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Card{}, false
	}
	if strings.EqualFold(text, "joker") {
		return Joker(), true
	}
	runes := []rune(text)
	if len(runes) < 2 {
		return Card{}, false
	}
	if c, ok := parseAs(runes[0], runes[1:]); ok {
		return c, true
	}
	return parseAs(runes[len(runes)-1], runes[:len(runes)-1])
}

// parseAs interprets one rune as the suit token and the rest as the rank
// token.
func parseAs(suitToken rune, rankToken []rune) (Card, bool) {
	suit := FromRune(suitToken)
	if suit == nil {
		return Card{}, false
	}
	rank, ok := parseRank(string(rankToken))
	if !ok {
		return Card{}, false
	}
	c, err := New(suit, rank)
	if err != nil {
		return Card{}, false
	}
	return c, true
}

func parseRank(token string) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	if utf8.RuneCountInString(token) != 1 {
		return 0, false
	}
	switch unicode.ToUpper(firstRune(token)) {
	case 'A':
		return Ace, true
	case 'J':
		return Jack, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return 0, false
}
