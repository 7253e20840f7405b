package nakama

// MatchNameTongits is the authoritative match handler name registered with
// Nakama.
const MatchNameTongits = "tongits_match"

// Op codes for client commands and server events. Payloads are JSON.
const (
	// Client -> Server
	OpStartRound  int64 = 1
	OpDrawStock   int64 = 2
	OpDrawDiscard int64 = 3
	OpDiscard     int64 = 4
	OpExposeMeld  int64 = 5
	OpSapaw       int64 = 6
	OpCallFight   int64 = 7

	// Server -> Client events
	OpPlayerJoined  int64 = 101
	OpPlayerLeft    int64 = 102
	OpRoundStarted  int64 = 103
	OpHandDealt     int64 = 104 // sent privately
	OpStockDrawn    int64 = 105
	OpDiscardTaken  int64 = 106
	OpCardDiscarded int64 = 107
	OpMeldExposed   int64 = 108
	OpMeldExtended  int64 = 109
	OpFightCalled   int64 = 110
	OpRoundEnded    int64 = 111
	OpRoundState    int64 = 120 // per-viewer snapshot, sent privately
	OpGameError     int64 = 121
)
