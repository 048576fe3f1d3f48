package cards

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/BurntSushi/toml"
)

//go:embed suits.toml
var suitsTOML string

type suitTable struct {
	Suits []suitRow `toml:"suits"`
}

type suitRow struct {
	Code        int    `toml:"code"`
	Title       string `toml:"title"`
	Dark        string `toml:"dark"`
	Light       string `toml:"light"`
	Letter      string `toml:"letter"`
	Color       Color  `toml:"color"`
	EmojiPrefix int64  `toml:"emoji_prefix"`
}

type suitCatalog struct {
	ordered []*Suit
	byCode  map[int]*Suit
	byRune  map[rune]*Suit
	byTitle map[string]*Suit
}

var catalog = sync.OnceValue(buildCatalog)

// buildCatalog decodes the embedded suit table and populates the lookup
// maps. The tables are never written to again after this.
func buildCatalog() *suitCatalog {
	var table suitTable
	if _, err := toml.Decode(suitsTOML, &table); err != nil {
		panic(fmt.Sprintf("cards: decoding embedded suit table: %v", err))
	}

	c := &suitCatalog{
		byCode:  make(map[int]*Suit),
		byRune:  make(map[rune]*Suit),
		byTitle: make(map[string]*Suit),
	}
	for _, row := range table.Suits {
		s := &Suit{
			Code:        row.Code,
			Title:       row.Title,
			DarkSymbol:  firstRune(row.Dark),
			LightSymbol: firstRune(row.Light),
			Color:       row.Color,
			EmojiPrefix: rune(row.EmojiPrefix),
		}
		c.ordered = append(c.ordered, s)
		c.byCode[s.Code] = s
		c.byRune['0'+rune(s.Code)] = s
		c.byRune[s.DarkSymbol] = s
		c.byRune[s.LightSymbol] = s
		letter := firstRune(row.Letter)
		c.byRune[unicode.ToUpper(letter)] = s
		c.byRune[unicode.ToLower(letter)] = s
		c.byTitle[strings.ToLower(s.Title)] = s
	}
	return c
}

// noneSuit returns the catalog's None/Joker entry.
func noneSuit() *Suit {
	return catalog().byCode[0]
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
