package app

import "tongits/internal/domain"

// EventKind identifies emitted round events for transport dispatch.
type EventKind string

const (
	EventRoundStarted  EventKind = "round_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventStockDrawn    EventKind = "stock_drawn"
	EventDiscardTaken  EventKind = "discard_taken"
	EventCardDiscarded EventKind = "card_discarded"
	EventMeldExposed   EventKind = "meld_exposed"
	EventMeldExtended  EventKind = "meld_extended"
	EventFightCalled   EventKind = "fight_called"
	EventRoundEnded    EventKind = "round_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type RoundStartedPayload struct {
	DealerSeat    int   `json:"dealer_seat"`
	FirstTurnSeat int   `json:"first_turn_seat"`
	SidePot       int64 `json:"side_pot"`
}

// HandDealtPayload is always sent privately to its owner.
type HandDealtPayload struct {
	UserID string        `json:"user_id"`
	Seat   int           `json:"seat"`
	Hand   []domain.Card `json:"hand"`
}

// StockDrawnPayload carries the drawn card only to the drawer; the broadcast
// copy has Card nil.
type StockDrawnPayload struct {
	Seat      int          `json:"seat"`
	Card      *domain.Card `json:"card,omitempty"`
	DeckCount int          `json:"deck_count"`
}

type DiscardTakenPayload struct {
	Seat int           `json:"seat"`
	Card domain.Card   `json:"card"`
	Meld []domain.Card `json:"meld"`
}

type CardDiscardedPayload struct {
	Seat         int         `json:"seat"`
	Card         domain.Card `json:"card"`
	NextTurnSeat int         `json:"next_turn_seat"`
}

type MeldExposedPayload struct {
	Seat   int           `json:"seat"`
	Cards  []domain.Card `json:"cards"`
	Secret bool          `json:"secret"`
}

type MeldExtendedPayload struct {
	Seat       int         `json:"seat"`
	TargetSeat int         `json:"target_seat"`
	MeldIndex  int         `json:"meld_index"`
	Card       domain.Card `json:"card"`
}

type FightCalledPayload struct {
	Seat int `json:"seat"`
}

type RoundEndedPayload struct {
	Reason     domain.EndReason `json:"reason"`
	WinnerSeat int              `json:"winner_seat"`
	HandValues []int            `json:"hand_values"`
	SidePot    int64            `json:"side_pot"`
	// BalanceChanges maps user id to chip delta for wallet settlement.
	BalanceChanges map[string]int64 `json:"balance_changes"`
}
