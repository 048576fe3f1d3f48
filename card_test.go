package cards

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	hearts := FromText("Hearts")

	tests := []struct {
		name    string
		suit    *Suit
		rank    int
		wantErr bool
	}{
		{"ace", hearts, 1, false},
		{"king", hearts, 13, false},
		{"over-king", hearts, 14, false},
		{"rank zero", hearts, 0, true},
		{"rank fifteen", hearts, 15, true},
		{"negative rank", hearts, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.suit, tt.rank)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank())
			assert.Same(t, tt.suit, c.Suit())
		})
	}
}

func TestNewJokerPinsRank(t *testing.T) {
	for _, rank := range []int{0, 7, 99, -1} {
		c, err := New(FromCode(0), rank)
		require.NoError(t, err)
		assert.Equal(t, JokerRank, c.Rank())
	}

	// A nil suit is normalized to the None suit.
	c, err := New(nil, 5)
	require.NoError(t, err)
	assert.True(t, c.Suit().IsJoker())
	assert.Equal(t, JokerRank, c.Rank())
}

func TestCardNames(t *testing.T) {
	tests := []struct {
		text     string
		title    string
		symbol   string
		fullName string
	}{
		{"AH", "Ace", "A", "Ace of Hearts"},
		{"10S", "10", "10", "10 of Spades"},
		{"KC", "King", "K", "King of Clubs"},
		{"QD", "Queen", "Q", "Queen of Diamonds"},
		{"J♠", "Jack", "J", "Jack of Spades"},
		{"joker", "Joker", "Joker", "Joker"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.title, c.Title())
			assert.Equal(t, tt.symbol, c.Symbol())
			assert.Equal(t, tt.fullName, c.FullName())
			assert.Equal(t, tt.fullName, c.String())
		})
	}

	overKing, err := New(FromText("Diamonds"), 14)
	require.NoError(t, err)
	assert.Equal(t, "14", overKing.Title())
	assert.Equal(t, "14 of Diamonds", overKing.FullName())
}

func TestEmoji(t *testing.T) {
	aceOfSpades, err := New(FromText("Spades"), Ace)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F0A1", aceOfSpades.Emoji())
	assert.Equal(t, "\U0001F0CF", Joker().Emoji())

	// Every valid card renders as exactly one supplementary-plane code
	// point, i.e. a two-unit surrogate pair.
	for _, s := range Suits() {
		for rank := Ace; rank <= MaxRank; rank++ {
			c, err := New(s, rank)
			require.NoError(t, err)
			units := utf16.Encode([]rune(c.Emoji()))
			require.Len(t, units, 2, c.FullName())
			decoded := utf16.Decode(units)
			require.Len(t, decoded, 1)
			assert.Equal(t, c.Suit().EmojiPrefix+rune(c.Rank()), decoded[0])
		}
	}
}

func TestEqual(t *testing.T) {
	aceHearts, err := New(FromText("Hearts"), Ace)
	require.NoError(t, err)

	parsed, ok := Parse("AH")
	require.True(t, ok)
	assert.True(t, aceHearts.Equal(parsed))

	twoHearts, err := New(FromText("Hearts"), 2)
	require.NoError(t, err)
	aceSpades, err := New(FromText("Spades"), Ace)
	require.NoError(t, err)
	assert.False(t, aceHearts.Equal(twoHearts))
	assert.False(t, aceHearts.Equal(aceSpades))

	// The zero Card reads as the Joker.
	var zero Card
	assert.True(t, zero.Equal(Joker()))
	assert.Equal(t, "Joker", zero.FullName())
}
