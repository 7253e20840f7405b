package bot

import (
	"errors"
	"math/rand"

	botinternal "tongits/internal/bot/internal"
	"tongits/internal/domain"
)

var errEmptyHand = errors.New("bot seat has no cards")

// EasyBot plays near-randomly: it only sometimes notices a usable discard,
// takes the first lay-off it sees and otherwise sheds a random card.
type EasyBot struct {
	rng *rand.Rand
}

// discardPickupChance is how often the easy bot bothers taking a usable
// discard instead of drawing blind.
const discardPickupChance = 0.3

func (b *EasyBot) Decide(g *domain.Game, seat int) (Action, error) {
	hand := g.Seats[seat].Hand
	if len(hand) == 0 {
		return nil, errEmptyHand
	}

	if g.Turn == domain.TurnDraw {
		if top, ok := topDiscard(g); ok {
			if idx := botinternal.DiscardPickup(hand, top); idx != nil && b.rng.Float64() < discardPickupChance {
				return DrawDiscardAction{CardIndices: idx}, nil
			}
		}
		return DrawStockAction{}, nil
	}

	if t, mi, ci, ok := botinternal.FindLayOff(g, seat); ok {
		return SapawAction{TargetSeat: t, MeldIndex: mi, CardIndex: ci}, nil
	}
	return DiscardAction{CardIndex: b.rng.Intn(len(hand))}, nil
}

func topDiscard(g *domain.Game) (domain.Card, bool) {
	if len(g.DiscardPile) == 0 {
		return domain.Card{}, false
	}
	return g.DiscardPile[len(g.DiscardPile)-1], true
}
