package bot

import (
	botinternal "tongits/internal/bot/internal"
	"tongits/internal/domain"
)

// MediumBot always takes a usable discard, lays off and exposes eagerly, and
// sheds the card least entangled with the rest of its hand.
type MediumBot struct{}

func (b *MediumBot) Decide(g *domain.Game, seat int) (Action, error) {
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

	if t, mi, ci, ok := botinternal.FindLayOff(g, seat); ok {
		return SapawAction{TargetSeat: t, MeldIndex: mi, CardIndex: ci}, nil
	}
	if melds := domain.FindPossibleMelds(hand); len(melds) > 0 {
		return ExposeAction{CardIndices: botinternal.IndicesOf(hand, melds[0])}, nil
	}
	return DiscardAction{CardIndex: botinternal.LeastEntangledDiscard(hand)}, nil
}
