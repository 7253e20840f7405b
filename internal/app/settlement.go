package app

import "tongits/internal/domain"

// Settlement payment schedule, in chips per losing seat.
const (
	basePayment       int64 = 1 // plain deck exhaustion
	challengedPayment int64 = 3 // tongits or showdown
	acePayment        int64 = 1 // per winner-held ace
	secretMeldPayment int64 = 3 // per winner-held secret meld
	burnPayment       int64 = 1 // loser burned or never opened
)

// endRound terminates the round, resolves the winner, applies the settlement
// and returns the round-ended event. tongitsSeat is the seat that emptied its
// hand, or -1 for minimum-weight resolution.
func endRound(g *domain.Game, reason domain.EndReason, tongitsSeat int) Event {
	values := make([]int, len(g.Seats))
	for i, seat := range g.Seats {
		values[i] = domain.HandValue(seat.Hand)
	}

	winner := tongitsSeat
	if winner < 0 {
		winner = showdownWinner(g, values)
	}

	// A seat that never opened is burned at termination.
	for _, seat := range g.Seats {
		if !seat.HasOpened {
			seat.Burned = true
		}
	}

	deltas, changes := settle(g, winner, reason)

	g.Phase = domain.PhaseEnded
	g.EndReason = reason
	g.WinnerSeat = winner
	sidePot := g.SidePot
	g.SidePot = 0
	g.Result = &domain.RoundResult{
		WinnerSeat: winner,
		Reason:     reason,
		HandValues: values,
		Deltas:     deltas,
		SidePot:    sidePot,
	}

	return Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			Reason:         reason,
			WinnerSeat:     winner,
			HandValues:     values,
			SidePot:        sidePot,
			BalanceChanges: changes,
		},
	}
}

// showdownWinner picks the seat with the strictly lowest unmelded weight.
// Ties go to the tied seat holding the best single card under the settlement
// ordering (Q > K > J, diamond > heart > spade > club).
func showdownWinner(g *domain.Game, values []int) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[best] {
			best = i
		}
	}

	winner := -1
	winnerPower := -1
	for i, v := range values {
		if v != values[best] {
			continue
		}
		power := bestCardPower(g.Seats[i].Hand)
		if power > winnerPower {
			winner = i
			winnerPower = power
		}
	}
	return winner
}

func bestCardPower(hand []domain.Card) int {
	best := -1
	for _, c := range hand {
		if p := c.SettlementPower(); p > best {
			best = p
		}
	}
	return best
}

// settle converts the declared winner into chip transfers. Each loser pays
// the base (raised when the round was challenged), plus the winner's ace and
// secret-meld bonuses, plus a burn penalty when the loser never opened. The
// winner additionally collects the side pot. Balances may go negative.
func settle(g *domain.Game, winner int, reason domain.EndReason) ([]int64, map[string]int64) {
	winSeat := g.Seats[winner]

	base := basePayment
	if reason == domain.EndTongits || reason == domain.EndShowdown {
		base = challengedPayment
	}

	aces := int64(winSeat.AceCount())
	secrets := int64(0)
	for _, m := range winSeat.Melds {
		if m.Secret {
			secrets++
		}
	}

	deltas := make([]int64, len(g.Seats))
	for i, seat := range g.Seats {
		if i == winner {
			continue
		}
		pay := base + aces*acePayment + secrets*secretMeldPayment
		if seat.Burned || !seat.HasOpened {
			pay += burnPayment
		}
		deltas[i] = -pay
		deltas[winner] += pay
	}
	deltas[winner] += g.SidePot

	changes := make(map[string]int64, len(g.Seats))
	for i, seat := range g.Seats {
		seat.Chips += deltas[i]
		changes[seat.UserID] = deltas[i]
	}
	return deltas, changes
}
