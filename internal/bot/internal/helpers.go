// Package internal holds the shared hand heuristics behind the bot
// strategies.
package internal

import "tongits/internal/domain"

// DiscardPickup returns hand indices that form a valid meld together with
// the pickup card, or nil. It checks rank mates for a set first, then the
// three-card run windows around the pickup rank.
func DiscardPickup(hand []domain.Card, pickup domain.Card) []int {
	var same []int
	for i, c := range hand {
		if c.Rank == pickup.Rank {
			same = append(same, i)
		}
	}
	if len(same) >= 2 {
		if len(same) > 3 {
			same = same[:3]
		}
		return same
	}

	pos := make(map[domain.Rank]int)
	for i, c := range hand {
		if c.Suit != pickup.Suit {
			continue
		}
		if _, ok := pos[c.Rank]; !ok {
			pos[c.Rank] = i
		}
	}
	windows := [][2]domain.Rank{
		{pickup.Rank - 2, pickup.Rank - 1},
		{pickup.Rank - 1, pickup.Rank + 1},
		{pickup.Rank + 1, pickup.Rank + 2},
	}
	for _, w := range windows {
		if w[0] < domain.RankAce || w[1] > domain.RankKing {
			continue
		}
		i, ok := pos[w[0]]
		j, ok2 := pos[w[1]]
		if ok && ok2 {
			return []int{i, j}
		}
	}
	return nil
}

// FindLayOff scans every seat's exposed melds in seat order and returns the
// first (target, meld, hand card) combination that legally extends a meld.
func FindLayOff(g *domain.Game, seat int) (targetSeat, meldIndex, cardIndex int, ok bool) {
	hand := g.Seats[seat].Hand
	for t, target := range g.Seats {
		for mi, meld := range target.Melds {
			for ci, c := range hand {
				if domain.CanLayOff(c, meld) {
					return t, mi, ci, true
				}
			}
		}
	}
	return 0, 0, 0, false
}

// BestLayOff returns the lay-off whose hand card carries the highest point
// value, preferring to shed expensive cards.
func BestLayOff(g *domain.Game, seat int) (targetSeat, meldIndex, cardIndex int, ok bool) {
	hand := g.Seats[seat].Hand
	bestValue := -1
	for t, target := range g.Seats {
		for mi, meld := range target.Melds {
			for ci, c := range hand {
				if domain.CanLayOff(c, meld) && c.PointValue() > bestValue {
					targetSeat, meldIndex, cardIndex = t, mi, ci
					bestValue = c.PointValue()
					ok = true
				}
			}
		}
	}
	return
}

// SuitNeighbors counts other same-suit cards within rank distance two of
// hand[i]; these are cards that could still grow into a run.
func SuitNeighbors(hand []domain.Card, i int) int {
	n := 0
	c := hand[i]
	for j, o := range hand {
		if j == i || o.Suit != c.Suit {
			continue
		}
		d := int(o.Rank) - int(c.Rank)
		if d >= -2 && d <= 2 && d != 0 {
			n++
		}
	}
	return n
}

// RankDuplicates counts other cards of hand[i]'s rank.
func RankDuplicates(hand []domain.Card, i int) int {
	n := 0
	for j, o := range hand {
		if j != i && o.Rank == hand[i].Rank {
			n++
		}
	}
	return n
}

// Entanglement scores how structurally bound hand[i] is: suit neighbors plus
// rank duplicates. Low entanglement means the card is safe to shed.
func Entanglement(hand []domain.Card, i int) int {
	return SuitNeighbors(hand, i) + RankDuplicates(hand, i)
}

// LeastEntangledDiscard picks the hand index with the lowest entanglement,
// ties broken by encounter order.
func LeastEntangledDiscard(hand []domain.Card) int {
	best := 0
	bestScore := Entanglement(hand, 0)
	for i := 1; i < len(hand); i++ {
		if s := Entanglement(hand, i); s < bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}

// IndicesOf maps meld cards back to their hand indices, consuming each match
// once so equal-value cards cannot alias.
func IndicesOf(hand []domain.Card, cards []domain.Card) []int {
	used := make([]bool, len(hand))
	out := make([]int, 0, len(cards))
	for _, c := range cards {
		for i, h := range hand {
			if !used[i] && h == c {
				used[i] = true
				out = append(out, i)
				break
			}
		}
	}
	return out
}
