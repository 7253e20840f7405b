package domain

// Meld is an exposed group of cards owned by the seat that exposed it. Runs
// are kept rank-sorted so lay-offs extend them at either end.
type Meld struct {
	Cards []Card
	// Secret marks a meld exposed face down for the settlement bonus.
	Secret bool
	// SapawedByOthers is set once any other seat has laid off onto this meld,
	// which disqualifies it from backing a fight call.
	SapawedByOthers bool
}

// IsSetMeld reports whether the meld is rank-matched (as opposed to a run).
func (m *Meld) IsSetMeld() bool {
	return allSameRank(m.Cards)
}

// IsSet reports whether the cards form a valid set: three or four cards of
// identical rank.
func IsSet(cards []Card) bool {
	if len(cards) < 3 || len(cards) > 4 {
		return false
	}
	return allSameRank(cards)
}

// IsRun reports whether the cards form a valid run: three or more same-suit
// cards with strictly consecutive ascending ranks, ace low. Q-K-A is not a
// run; there is no wraparound.
func IsRun(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	suit := cards[0].Suit
	for _, c := range cards {
		if c.Suit != suit {
			return false
		}
	}
	sorted := append([]Card(nil), cards...)
	SortByRank(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank != sorted[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// FindPossibleMelds partitions a hand into melds with a greedy scan: the hand
// is walked in (suit, rank) order claiming maximal same-suit consecutive
// sequences of three or more as runs, then leftover cards are grouped by rank
// and groups of three or more are claimed as sets. The scan is deliberately
// not exhaustive: a card usable in either a run or a set is consumed by the
// run, so overlapping candidates can yield a suboptimal partition.
func FindPossibleMelds(hand []Card) [][]Card {
	cards := append([]Card(nil), hand...)
	SortBySuitRank(cards)

	used := make([]bool, len(cards))
	var melds [][]Card

	start := 0
	for i := 1; i <= len(cards); i++ {
		if i < len(cards) && cards[i].Suit == cards[i-1].Suit && cards[i].Rank == cards[i-1].Rank+1 {
			continue
		}
		if i-start >= 3 {
			run := make([]Card, 0, i-start)
			for j := start; j < i; j++ {
				used[j] = true
				run = append(run, cards[j])
			}
			melds = append(melds, run)
		}
		start = i
	}

	// Group what the runs left behind by rank, preserving scan order.
	byRank := make(map[Rank][]Card)
	var rankOrder []Rank
	for i, c := range cards {
		if used[i] {
			continue
		}
		if _, ok := byRank[c.Rank]; !ok {
			rankOrder = append(rankOrder, c.Rank)
		}
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	for _, r := range rankOrder {
		if group := byRank[r]; len(group) >= 3 {
			melds = append(melds, group)
		}
	}

	return melds
}

// HandValue sums the point values of the cards not covered by the greedy meld
// partition. A hand that melds completely is worth zero.
func HandValue(hand []Card) int {
	counts := make(map[Card]int, len(hand))
	for _, meld := range FindPossibleMelds(hand) {
		for _, c := range meld {
			counts[c]++
		}
	}
	total := 0
	for _, c := range hand {
		if counts[c] > 0 {
			counts[c]--
			continue
		}
		total += c.PointValue()
	}
	return total
}

// CanLayOff reports whether the card legally extends the meld: a matching
// rank for a set of fewer than four cards, or an adjacent rank of the same
// suit at either end of a run.
func CanLayOff(c Card, m *Meld) bool {
	if m == nil || len(m.Cards) == 0 {
		return false
	}
	if m.IsSetMeld() {
		return len(m.Cards) < 4 && c.Rank == m.Cards[0].Rank
	}
	if c.Suit != m.Cards[0].Suit {
		return false
	}
	lo, hi := m.Cards[0].Rank, m.Cards[0].Rank
	for _, mc := range m.Cards[1:] {
		if mc.Rank < lo {
			lo = mc.Rank
		}
		if mc.Rank > hi {
			hi = mc.Rank
		}
	}
	return c.Rank == lo-1 || c.Rank == hi+1
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	r := cards[0].Rank
	for _, c := range cards {
		if c.Rank != r {
			return false
		}
	}
	return true
}
