package nakama

import (
	"testing"

	"tongits/internal/app"
	"tongits/internal/domain"
)

func TestMatchStateSeatCounts(t *testing.T) {
	state := &MatchState{Seats: [domain.NumSeats]string{"human-1", "", "bot-0002"}}

	if got := state.GetOpenSeatsCount(); got != 1 {
		t.Fatalf("open seats = %d, want 1", got)
	}
	if got := state.GetOccupiedSeatCount(); got != 2 {
		t.Fatalf("occupied seats = %d, want 2", got)
	}
	if got := state.GetHumanPlayerCount(); got != 1 {
		t.Fatalf("human players = %d, want 1", got)
	}
}

func TestHumanSeatResolution(t *testing.T) {
	seats := []string{"bot-0001", "", "human-1"}

	if isHumanSeat(seats, 0) {
		t.Fatalf("bot seat must not count as human")
	}
	if isHumanSeat(seats, 1) {
		t.Fatalf("empty seat must not count as human")
	}
	if !isHumanSeat(seats, 2) {
		t.Fatalf("seat 2 is a human")
	}
	if isHumanSeat(seats, -1) || isHumanSeat(seats, 3) {
		t.Fatalf("out of range seats must not count as human")
	}
	if got := findFirstHumanSeat(seats); got != 2 {
		t.Fatalf("first human seat = %d, want 2", got)
	}
	if got := findFirstHumanSeat([]string{"bot-0001", "", ""}); got != -1 {
		t.Fatalf("bot-only table: first human seat = %d, want -1", got)
	}
}

func TestSameOccupants(t *testing.T) {
	g := domain.NewGame([]*domain.Seat{{UserID: "a"}, {UserID: "b"}, {UserID: "c"}})

	if !sameOccupants(g, []string{"a", "b", "c"}) {
		t.Fatalf("identical rosters should match")
	}
	if sameOccupants(g, []string{"a", "x", "c"}) {
		t.Fatalf("replaced occupant should not match")
	}
	if sameOccupants(g, []string{"a", "b"}) {
		t.Fatalf("different seat counts should not match")
	}
}

func TestEveryEventKindHasAnOpCode(t *testing.T) {
	kinds := []app.EventKind{
		app.EventRoundStarted,
		app.EventHandDealt,
		app.EventStockDrawn,
		app.EventDiscardTaken,
		app.EventCardDiscarded,
		app.EventMeldExposed,
		app.EventMeldExtended,
		app.EventFightCalled,
		app.EventRoundEnded,
	}
	for _, kind := range kinds {
		if _, ok := eventOpCodes[kind]; !ok {
			t.Fatalf("event kind %s has no opcode mapping", kind)
		}
	}
}
