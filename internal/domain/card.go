package domain

import "fmt"

// Suit identifies one of the four suits. The constant order doubles as the
// settlement tie-break priority: clubs lowest, diamonds highest.
type Suit int

const (
	SuitClubs Suit = iota
	SuitSpades
	SuitHearts
	SuitDiamonds
)

var suitLetters = [...]string{"C", "S", "H", "D"}

func (s Suit) String() string {
	if s < SuitClubs || s > SuitDiamonds {
		return "?"
	}
	return suitLetters[s]
}

// Rank is the ace-low play rank, 1 (ace) through 13 (king).
type Rank int

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// Card is a single playing card. Cards compare by value, never by identity.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	switch c.Rank {
	case RankAce:
		return "A" + c.Suit.String()
	case RankJack:
		return "J" + c.Suit.String()
	case RankQueen:
		return "Q" + c.Suit.String()
	case RankKing:
		return "K" + c.Suit.String()
	}
	return fmt.Sprintf("%d%s", c.Rank, c.Suit)
}

// PointValue returns the card's unmelded weight: ace 1, pip cards face value,
// court cards 10.
func (c Card) PointValue() int {
	if c.Rank >= RankJack {
		return 10
	}
	return int(c.Rank)
}

// settlementRank orders cards for tie-breaking at round resolution. It differs
// from the play order: the queen outranks the king, which outranks the jack.
func settlementRank(r Rank) int {
	switch r {
	case RankQueen:
		return 13
	case RankKing:
		return 12
	default:
		return int(r)
	}
}

// SettlementPower gives a total order over cards for showdown tie-breaks:
// settlement rank first, then suit priority (diamond > heart > spade > club).
func (c Card) SettlementPower() int {
	return settlementRank(c.Rank)*4 + int(c.Suit)
}
