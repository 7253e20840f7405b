package bot

import (
	botinternal "tongits/internal/bot/internal"
	"tongits/internal/domain"
)

// HardBot is omniscient: it reads every seat's true hand. It calls a fight
// only when it is guaranteed to win one, exposes its most valuable meld, lays
// off its most expensive eligible card, and otherwise sheds high-value cards
// that are not structurally part of a likely future meld.
type HardBot struct {
	tuning Tuning
}

func (b *HardBot) Decide(g *domain.Game, seat int) (Action, error) {
	hand := g.Seats[seat].Hand
	if len(hand) == 0 {
		return nil, errEmptyHand
	}

	if g.Turn == domain.TurnDraw {
		if top, ok := topDiscard(g); ok {
			if idx := botinternal.DiscardPickup(hand, top); idx != nil {
				return DrawDiscardAction{CardIndices: idx}, nil
			}
		}
		return DrawStockAction{}, nil
	}

	if b.shouldFight(g, seat) {
		return FightAction{}, nil
	}

	if melds := domain.FindPossibleMelds(hand); len(melds) > 0 {
		best := 0
		bestValue := meldValue(melds[0])
		for i := 1; i < len(melds); i++ {
			if v := meldValue(melds[i]); v > bestValue {
				best = i
				bestValue = v
			}
		}
		return ExposeAction{CardIndices: botinternal.IndicesOf(hand, melds[best])}, nil
	}

	if t, mi, ci, ok := botinternal.BestLayOff(g, seat); ok {
		return SapawAction{TargetSeat: t, MeldIndex: mi, CardIndex: ci}, nil
	}

	best := 0
	bestScore := b.discardScore(hand, 0)
	for i := 1; i < len(hand); i++ {
		if s := b.discardScore(hand, i); s > bestScore {
			best = i
			bestScore = s
		}
	}
	return DiscardAction{CardIndex: best}, nil
}

// shouldFight requires fight eligibility, a weight at or under the ceiling,
// and a weight strictly lower than every opponent's true weight.
func (b *HardBot) shouldFight(g *domain.Game, seat int) bool {
	if !g.CanCallFight(seat) {
		return false
	}
	own := domain.HandValue(g.Seats[seat].Hand)
	if own > b.tuning.FightWeightCeiling {
		return false
	}
	for i, s := range g.Seats {
		if i == seat {
			continue
		}
		if domain.HandValue(s.Hand) <= own {
			return false
		}
	}
	return true
}

// discardScore prefers shedding expensive cards with no meld potential.
func (b *HardBot) discardScore(hand []domain.Card, i int) int {
	return b.tuning.DiscardValueWeight*hand[i].PointValue() -
		b.tuning.StructurePenalty*botinternal.SuitNeighbors(hand, i) -
		b.tuning.StructurePenalty*botinternal.RankDuplicates(hand, i)
}

func meldValue(cards []domain.Card) int {
	total := 0
	for _, c := range cards {
		total += c.PointValue()
	}
	return total
}
