package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby indicates the match is waiting for players.
	PhaseLobby Phase = "lobby"
	// PhasePlaying indicates a round is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates the round has finished.
	PhaseEnded Phase = "ended"
)

// TurnPhase is the stage within the active seat's turn.
type TurnPhase string

const (
	// TurnDraw permits only stock or discard-pile draws.
	TurnDraw TurnPhase = "draw"
	// TurnAction permits discard, expose, lay-off and fight calls.
	TurnAction TurnPhase = "action"
)

// EndReason records how a round terminated.
type EndReason string

const (
	// EndTongits: a seat emptied its hand and wins outright.
	EndTongits EndReason = "tongits"
	// EndDeckEmpty: the stock ran out; lowest unmelded weight wins.
	EndDeckEmpty EndReason = "deck_empty"
	// EndShowdown: an opened seat called a fight; lowest unmelded weight wins.
	EndShowdown EndReason = "showdown"
)

// SeatKind distinguishes human seats from bot seats.
type SeatKind string

const (
	SeatHuman SeatKind = "human"
	SeatBot   SeatKind = "bot"
)

// NumSeats is the exact seat count required to start a round.
const NumSeats = 3

// Seat holds the per-player state for a round.
type Seat struct {
	UserID     string
	Name       string
	Kind       SeatKind
	Difficulty string // bots only: "easy", "medium", "hard"

	Hand  []Card
	Melds []*Meld
	Chips int64

	HasOpened      bool
	OpenedThisTurn bool
	Burned         bool
}

// AceCount counts aces across the seat's hand and exposed melds.
func (s *Seat) AceCount() int {
	n := 0
	for _, c := range s.Hand {
		if c.Rank == RankAce {
			n++
		}
	}
	for _, m := range s.Melds {
		for _, c := range m.Cards {
			if c.Rank == RankAce {
				n++
			}
		}
	}
	return n
}

// RoundResult captures the settled outcome of a terminated round.
type RoundResult struct {
	WinnerSeat int
	Reason     EndReason
	HandValues []int   // per-seat unmelded weight at termination
	Deltas     []int64 // per-seat chip change, side pot included
	SidePot    int64   // side pot amount awarded to the winner
}

// Game is the authoritative state for a single round. It is mutated only by
// the app service's command handlers.
type Game struct {
	Phase Phase
	Turn  TurnPhase

	Seats       []*Seat
	Deck        []Card
	DiscardPile []Card // top is the last element

	TurnSeat   int
	DealerSeat int

	SidePot    int64
	EndReason  EndReason
	WinnerSeat int // -1 until a round has been won
	Result     *RoundResult
}

// NewGame returns a lobby-phase game over the given seats.
func NewGame(seats []*Seat) *Game {
	return &Game{
		Phase:      PhaseLobby,
		Seats:      seats,
		TurnSeat:   -1,
		DealerSeat: -1,
		WinnerSeat: -1,
	}
}

// SeatIndex resolves a user id to its seat index, or -1.
func (g *Game) SeatIndex(userID string) int {
	for i, s := range g.Seats {
		if s.UserID == userID {
			return i
		}
	}
	return -1
}

// CanCallFight reports whether the seat satisfies the fight preconditions:
// it has opened, did not open on this very turn, and owns at least one meld
// not already claimed by lay-offs from other seats. Turn and phase gating is
// the service's job.
func (g *Game) CanCallFight(seat int) bool {
	if seat < 0 || seat >= len(g.Seats) {
		return false
	}
	s := g.Seats[seat]
	if !s.HasOpened || s.OpenedThisTurn {
		return false
	}
	for _, m := range s.Melds {
		if !m.SapawedByOthers {
			return true
		}
	}
	return false
}

// CardCount returns the total cards across deck, discard pile, hands and
// exposed melds. It must equal 52 after every mutator while playing.
func (g *Game) CardCount() int {
	n := len(g.Deck) + len(g.DiscardPile)
	for _, s := range g.Seats {
		n += len(s.Hand)
		for _, m := range s.Melds {
			n += len(m.Cards)
		}
	}
	return n
}
