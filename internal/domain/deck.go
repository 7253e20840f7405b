package domain

import (
	"math/rand"
	"sort"
)

// NewDeck returns an ordered 52-card deck.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := SuitClubs; s <= SuitDiamonds; s++ {
		for r := RankAce; r <= RankKing; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle permutes the deck in place using the provided source so deals are
// reproducible under a fixed seed.
func Shuffle(deck []Card, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// DrawTop removes and returns the top card (the last element). It fails softly
// on an empty deck.
func DrawTop(deck []Card) ([]Card, Card, bool) {
	if len(deck) == 0 {
		return deck, Card{}, false
	}
	top := deck[len(deck)-1]
	return deck[:len(deck)-1], top, true
}

// SortBySuitRank orders cards suit-major, rank-minor. This is the canonical
// scan order for meld detection.
func SortBySuitRank(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return cards[i].Suit < cards[j].Suit
		}
		return cards[i].Rank < cards[j].Rank
	})
}

// SortByRank orders cards by ascending play rank.
func SortByRank(cards []Card) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].Rank < cards[j].Rank })
}
