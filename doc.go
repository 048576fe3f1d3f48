// Package cards models a standard playing-card deck: a fixed catalog of
// five suits (the four conventional suits plus a None suit representing a
// Joker) and an immutable Card value with text parsing and symbolic, emoji,
// and colored terminal renderings.
//
// The suit catalog is built once from an embedded table and is safe for
// unsynchronized concurrent reads. Lookup functions return nil when no suit
// matches:
//
//	hearts := cards.FromText("Hearts")
//	ace, err := cards.New(hearts, cards.Ace)
//	if err != nil {
//	    // rank was outside [1, 14]
//	}
//	fmt.Println(ace.FullName()) // "Ace of Hearts"
//	fmt.Println(ace.Emoji())    // "🂱"
//
// Parse accepts the shorthand grammar "joker", suit-then-rank, or
// rank-then-suit, where the suit token is a code digit, suit symbol, or
// acronym letter and the rank token is a decimal integer or one of
// A, J, Q, K:
//
//	if c, ok := cards.Parse("10S"); ok {
//	    fmt.Println(c) // "10 of Spades"
//	}
//
// The random and seq subpackages provide the randomness sources and the
// generic shuffle and sampling algorithms a deck of Card values is meant to
// feed.
package cards
