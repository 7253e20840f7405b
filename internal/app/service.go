package app

import (
	"errors"
	"math/rand"
	"time"

	"tongits/internal/domain"
)

// Service contains the Tongits round use-cases operating on domain state.
// All mutators are synchronous and atomic: any precondition failure returns
// an error with zero state mutation.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrRoundInProgress = errors.New("round already in progress")
	ErrNotPlaying      = errors.New("round not in playing phase")
	ErrWrongSeatCount  = errors.New("need exactly three seated players")
	ErrUnknownSeat     = errors.New("seat index out of range")
	ErrNotYourTurn     = errors.New("not this seat's turn")
	ErrWrongPhase      = errors.New("command not legal in this turn phase")
	ErrBadIndex        = errors.New("card index out of range")
	ErrStockEmpty      = errors.New("stock is empty")
	ErrEmptyDiscard    = errors.New("discard pile is empty")
	ErrInvalidMeld     = errors.New("cards do not form a set or run")
	ErrBadMeldTarget   = errors.New("meld target out of range")
	ErrCannotLayOff    = errors.New("card does not extend the target meld")
	ErrCannotFight     = errors.New("seat is not eligible to call a fight")
)

// AnteChips is the default per-seat ante collected into the side pot.
const AnteChips int64 = 2

// StartRound resets the game for a fresh round: new shuffled stock, antes
// into the side pot, 12 cards to each non-dealer and 13 to the dealer. The
// dealer is the previous round's winner, or random for a first round, and
// begins directly in the action phase.
func (s *Service) StartRound(g *domain.Game, ante int64) ([]Event, error) {
	if g.Phase == domain.PhasePlaying {
		return nil, ErrRoundInProgress
	}
	if len(g.Seats) != domain.NumSeats {
		return nil, ErrWrongSeatCount
	}

	dealer := g.WinnerSeat
	if dealer < 0 {
		dealer = s.rng.Intn(domain.NumSeats)
	}

	g.SidePot = 0
	for _, seat := range g.Seats {
		seat.Hand = nil
		seat.Melds = nil
		seat.HasOpened = false
		seat.OpenedThisTurn = false
		seat.Burned = false
		seat.Chips -= ante
		g.SidePot += ante
	}

	deck := domain.NewDeck()
	domain.Shuffle(deck, s.rng)

	// Deal clockwise from the dealer's left, dealer's extra card last.
	for i := 0; i < 12; i++ {
		for j := 1; j <= domain.NumSeats; j++ {
			seat := g.Seats[(dealer+j)%domain.NumSeats]
			var card domain.Card
			deck, card, _ = domain.DrawTop(deck)
			seat.Hand = append(seat.Hand, card)
		}
	}
	var extra domain.Card
	deck, extra, _ = domain.DrawTop(deck)
	g.Seats[dealer].Hand = append(g.Seats[dealer].Hand, extra)

	g.Deck = deck
	g.DiscardPile = nil
	g.DealerSeat = dealer
	g.TurnSeat = dealer
	g.Phase = domain.PhasePlaying
	g.Turn = domain.TurnAction
	g.EndReason = ""
	g.WinnerSeat = -1
	g.Result = nil

	events := make([]Event, 0, domain.NumSeats+1)
	events = append(events, Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			DealerSeat:    dealer,
			FirstTurnSeat: dealer,
			SidePot:       g.SidePot,
		},
	})
	for i, seat := range g.Seats {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				UserID: seat.UserID,
				Seat:   i,
				Hand:   append([]domain.Card(nil), seat.Hand...),
			},
			Recipients: []string{seat.UserID},
		})
	}
	return events, nil
}

// DrawFromStock moves the top stock card into the active seat's hand and
// enters the action phase. A draw that exhausts the stock still succeeds;
// the round then terminates immediately with the deck-empty outcome.
func (s *Service) DrawFromStock(g *domain.Game, seat int) ([]Event, error) {
	if err := checkTurn(g, seat, domain.TurnDraw); err != nil {
		return nil, err
	}
	deck, card, ok := domain.DrawTop(g.Deck)
	if !ok {
		return nil, ErrStockEmpty
	}

	g.Deck = deck
	actor := g.Seats[seat]
	actor.Hand = append(actor.Hand, card)
	g.Turn = domain.TurnAction

	events := []Event{
		{
			Kind:       EventStockDrawn,
			Payload:    StockDrawnPayload{Seat: seat, Card: &card, DeckCount: len(g.Deck)},
			Recipients: []string{actor.UserID},
		},
		{
			Kind:    EventStockDrawn,
			Payload: StockDrawnPayload{Seat: seat, DeckCount: len(g.Deck)},
		},
	}

	if len(g.Deck) == 0 {
		events = append(events, endRound(g, domain.EndDeckEmpty, -1))
	}
	return events, nil
}

// DrawFromDiscard takes the top discard card, which must immediately form a
// set or run together with the indicated hand cards. The new meld is exposed
// open and the seat counts as opened. On any failure the pile is untouched.
func (s *Service) DrawFromDiscard(g *domain.Game, seat int, handIndices []int) ([]Event, error) {
	if err := checkTurn(g, seat, domain.TurnDraw); err != nil {
		return nil, err
	}
	if len(g.DiscardPile) == 0 {
		return nil, ErrEmptyDiscard
	}
	actor := g.Seats[seat]
	if err := checkIndices(handIndices, len(actor.Hand)); err != nil {
		return nil, err
	}

	top := g.DiscardPile[len(g.DiscardPile)-1]
	candidate := make([]domain.Card, 0, len(handIndices)+1)
	for _, i := range handIndices {
		candidate = append(candidate, actor.Hand[i])
	}
	candidate = append(candidate, top)
	domain.SortBySuitRank(candidate)
	if !domain.IsSet(candidate) && !domain.IsRun(candidate) {
		return nil, ErrInvalidMeld
	}

	g.DiscardPile = g.DiscardPile[:len(g.DiscardPile)-1]
	actor.Hand = removeByIndices(actor.Hand, handIndices)
	actor.Melds = append(actor.Melds, &domain.Meld{Cards: candidate})
	open(actor)
	g.Turn = domain.TurnAction

	events := []Event{{
		Kind:    EventDiscardTaken,
		Payload: DiscardTakenPayload{Seat: seat, Card: top, Meld: candidate},
	}}
	// A 13-card run swallowing the whole hand is possible in theory.
	if len(actor.Hand) == 0 {
		events = append(events, endRound(g, domain.EndTongits, seat))
	}
	return events, nil
}

// Discard moves the indicated hand card onto the pile. An emptied hand wins
// the round outright; otherwise the turn passes to the next seat.
func (s *Service) Discard(g *domain.Game, seat int, cardIndex int) ([]Event, error) {
	if err := checkTurn(g, seat, domain.TurnAction); err != nil {
		return nil, err
	}
	actor := g.Seats[seat]
	if cardIndex < 0 || cardIndex >= len(actor.Hand) {
		return nil, ErrBadIndex
	}

	card := actor.Hand[cardIndex]
	actor.Hand = removeByIndices(actor.Hand, []int{cardIndex})
	g.DiscardPile = append(g.DiscardPile, card)

	if len(actor.Hand) == 0 {
		return []Event{
			{Kind: EventCardDiscarded, Payload: CardDiscardedPayload{Seat: seat, Card: card, NextTurnSeat: -1}},
			endRound(g, domain.EndTongits, seat),
		}, nil
	}

	actor.OpenedThisTurn = false
	g.TurnSeat = (seat + 1) % domain.NumSeats
	g.Turn = domain.TurnDraw
	return []Event{{
		Kind:    EventCardDiscarded,
		Payload: CardDiscardedPayload{Seat: seat, Card: card, NextTurnSeat: g.TurnSeat},
	}}, nil
}

// ExposeMeld moves the indicated hand cards into a new exposed meld. The
// secret flag conceals the meld from other viewers until the round ends and
// earns the settlement bonus.
func (s *Service) ExposeMeld(g *domain.Game, seat int, cardIndices []int, secret bool) ([]Event, error) {
	if err := checkTurn(g, seat, domain.TurnAction); err != nil {
		return nil, err
	}
	actor := g.Seats[seat]
	if err := checkIndices(cardIndices, len(actor.Hand)); err != nil {
		return nil, err
	}

	cards := make([]domain.Card, 0, len(cardIndices))
	for _, i := range cardIndices {
		cards = append(cards, actor.Hand[i])
	}
	domain.SortBySuitRank(cards)
	if !domain.IsSet(cards) && !domain.IsRun(cards) {
		return nil, ErrInvalidMeld
	}

	actor.Hand = removeByIndices(actor.Hand, cardIndices)
	actor.Melds = append(actor.Melds, &domain.Meld{Cards: cards, Secret: secret})
	open(actor)

	events := []Event{{
		Kind:    EventMeldExposed,
		Payload: MeldExposedPayload{Seat: seat, Cards: cards, Secret: secret},
	}}
	if len(actor.Hand) == 0 {
		events = append(events, endRound(g, domain.EndTongits, seat))
	}
	return events, nil
}

// Sapaw lays a hand card off onto an exposed meld, own or any opponent's.
// Runs are re-sorted by rank after the insertion. Laying off onto another
// seat's meld marks that meld as claimed for fight eligibility.
func (s *Service) Sapaw(g *domain.Game, seat, targetSeat, meldIndex, cardIndex int) ([]Event, error) {
	if err := checkTurn(g, seat, domain.TurnAction); err != nil {
		return nil, err
	}
	if targetSeat < 0 || targetSeat >= len(g.Seats) {
		return nil, ErrUnknownSeat
	}
	target := g.Seats[targetSeat]
	if meldIndex < 0 || meldIndex >= len(target.Melds) {
		return nil, ErrBadMeldTarget
	}
	actor := g.Seats[seat]
	if cardIndex < 0 || cardIndex >= len(actor.Hand) {
		return nil, ErrBadIndex
	}

	meld := target.Melds[meldIndex]
	card := actor.Hand[cardIndex]
	if !domain.CanLayOff(card, meld) {
		return nil, ErrCannotLayOff
	}

	actor.Hand = removeByIndices(actor.Hand, []int{cardIndex})
	meld.Cards = append(meld.Cards, card)
	if !meld.IsSetMeld() {
		domain.SortByRank(meld.Cards)
	}
	if targetSeat != seat {
		meld.SapawedByOthers = true
	}

	events := []Event{{
		Kind:    EventMeldExtended,
		Payload: MeldExtendedPayload{Seat: seat, TargetSeat: targetSeat, MeldIndex: meldIndex, Card: card},
	}}
	if len(actor.Hand) == 0 {
		events = append(events, endRound(g, domain.EndTongits, seat))
	}
	return events, nil
}

// CallFight ends the round early with a full showdown. The caller must have
// opened on an earlier turn and still own a meld not claimed by others; the
// lowest unmelded weight wins regardless of who called.
func (s *Service) CallFight(g *domain.Game, seat int) ([]Event, error) {
	if err := checkTurn(g, seat, domain.TurnAction); err != nil {
		return nil, err
	}
	if !g.CanCallFight(seat) {
		return nil, ErrCannotFight
	}
	return []Event{
		{Kind: EventFightCalled, Payload: FightCalledPayload{Seat: seat}},
		endRound(g, domain.EndShowdown, -1),
	}, nil
}

func checkTurn(g *domain.Game, seat int, phase domain.TurnPhase) error {
	if g == nil || g.Phase != domain.PhasePlaying {
		return ErrNotPlaying
	}
	if seat < 0 || seat >= len(g.Seats) {
		return ErrUnknownSeat
	}
	if g.TurnSeat != seat {
		return ErrNotYourTurn
	}
	if g.Turn != phase {
		return ErrWrongPhase
	}
	return nil
}

func checkIndices(indices []int, handSize int) error {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= handSize || seen[i] {
			return ErrBadIndex
		}
		seen[i] = true
	}
	return nil
}

// removeByIndices returns the hand with the indexed cards removed. Indices
// must already be validated.
func removeByIndices(hand []domain.Card, indices []int) []domain.Card {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	out := make([]domain.Card, 0, len(hand)-len(indices))
	for i, c := range hand {
		if !drop[i] {
			out = append(out, c)
		}
	}
	return out
}

func open(seat *domain.Seat) {
	if !seat.HasOpened {
		seat.HasOpened = true
		seat.OpenedThisTurn = true
	}
}
