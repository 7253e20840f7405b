package app

import "tongits/internal/domain"

// CardView is the wire representation of a card.
type CardView struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
}

// MeldView exposes a meld to a viewer. Secret melds belonging to other seats
// carry only a card count until the round ends.
type MeldView struct {
	Cards     []CardView `json:"cards,omitempty"`
	CardCount int        `json:"card_count"`
	Secret    bool       `json:"secret"`
	Sapawed   bool       `json:"sapawed"`
}

// SeatView is one seat as a given viewer may see it.
type SeatView struct {
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Seat      int        `json:"seat"`
	Chips     int64      `json:"chips"`
	HandCount int        `json:"hand_count"`
	Hand      []CardView `json:"hand,omitempty"`
	Melds     []MeldView `json:"melds"`
	HasOpened bool       `json:"has_opened"`
	Burned    bool       `json:"burned"`
}

// RoundView is the per-viewer serialized snapshot of the round.
type RoundView struct {
	Phase      string     `json:"phase"`
	Turn       string     `json:"turn,omitempty"`
	TurnSeat   int        `json:"turn_seat"`
	DealerSeat int        `json:"dealer_seat"`
	DeckCount  int        `json:"deck_count"`
	Discards   []CardView `json:"discards"`
	SidePot    int64      `json:"side_pot"`
	Reason     string     `json:"reason,omitempty"`
	WinnerSeat int        `json:"winner_seat"`
	HandValues []int      `json:"hand_values,omitempty"`
	Seats      []SeatView `json:"seats"`
}

// Snapshot serializes the round for one viewer: the viewer's own hand in
// full, other hands as counts only. revealAll is used for the end-of-round
// broadcast and for omniscient bot decisions; an omniscient view is never
// dispatched to a human.
func Snapshot(g *domain.Game, viewerID string, revealAll bool) RoundView {
	view := RoundView{
		Phase:      string(g.Phase),
		Turn:       string(g.Turn),
		TurnSeat:   g.TurnSeat,
		DealerSeat: g.DealerSeat,
		DeckCount:  len(g.Deck),
		Discards:   toCardViews(g.DiscardPile),
		SidePot:    g.SidePot,
		Reason:     string(g.EndReason),
		WinnerSeat: g.WinnerSeat,
	}
	if g.Result != nil {
		view.HandValues = g.Result.HandValues
	}

	ended := g.Phase == domain.PhaseEnded
	for i, seat := range g.Seats {
		own := seat.UserID == viewerID
		sv := SeatView{
			UserID:    seat.UserID,
			Name:      seat.Name,
			Seat:      i,
			Chips:     seat.Chips,
			HandCount: len(seat.Hand),
			HasOpened: seat.HasOpened,
			Burned:    seat.Burned,
		}
		if own || ended || revealAll {
			sv.Hand = toCardViews(seat.Hand)
		}
		for _, m := range seat.Melds {
			mv := MeldView{
				CardCount: len(m.Cards),
				Secret:    m.Secret,
				Sapawed:   m.SapawedByOthers,
			}
			if !m.Secret || own || ended || revealAll {
				mv.Cards = toCardViews(m.Cards)
			}
			sv.Melds = append(sv.Melds, mv)
		}
		view.Seats = append(view.Seats, sv)
	}
	return view
}

func toCardViews(cards []domain.Card) []CardView {
	out := make([]CardView, len(cards))
	for i, c := range cards {
		out[i] = CardView{Suit: c.Suit.String(), Rank: int(c.Rank)}
	}
	return out
}
