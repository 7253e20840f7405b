package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"tongits/internal/app"
	"tongits/internal/bot"
	"tongits/internal/config"
	"tongits/internal/domain"
	"tongits/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match
// handler. The domain Game survives between rounds so the previous winner
// deals the next one.
type MatchState struct {
	Seats     [domain.NumSeats]string     `json:"seats"` // user ids, "" means empty
	OwnerSeat int                         `json:"owner_seat"`
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"`
	Rng       *rand.Rand                  `json:"-"`

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`
	BotMaxDelay          int                   `json:"bot_max_delay"`
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`

	TurnDuration  int   `json:"turn_duration"` // seconds; 0 disables the clock
	TurnClockSeat int   `json:"turn_clock_seat"`
	TurnStarted   int64 `json:"turn_started"`

	Economy ports.EconomyPort `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant, -1
// if none.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	State string `json:"state"`
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:      time.Now().Unix(),
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		Rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		OwnerSeat: -1,
		Bots:      make(map[string]*bot.Agent),
		Economy:   NewEconomyAdapter(nk),
	}

	state.TurnClockSeat = -1
	if cfg := config.GetGameConfig(); cfg != nil {
		state.BotMinDelay = cfg.BotMinDelaySeconds
		state.BotMaxDelay = cfg.BotMaxDelaySeconds
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
		state.TurnDuration = cfg.TurnDurationSeconds
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["tongits_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["tongits_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["tongits_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["tongits_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if val, ok := env["tongits_turn_duration_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.TurnDuration = i
		}
	}
	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := json.Marshal(matchLabel{Open: state.GetOpenSeatsCount(), Game: "tongits", State: "lobby"})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat, or a bot to replace while no
	// round is live.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if !roundLive(matchState) {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && !roundLive(matchState) {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available", p.GetUserId())
		}
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger)
	mh.broadcastSnapshots(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		for i, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: user %s left, seat %d freed", p.GetUserId(), i)
				if payload, err := json.Marshal(map[string]any{"user_id": p.GetUserId(), "seat": i}); err == nil {
					dispatcher.BroadcastMessage(OpPlayerLeft, payload, nil, nil, true)
				}
				break
			}
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	if matchState.OwnerSeat == -1 {
		logger.Info("MatchLeave: terminating match with no humans")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(ctx, matchState, dispatcher, logger, msg)
		case OpDrawStock, OpDrawDiscard, OpDiscard, OpExposeMeld, OpSapaw, OpCallFight:
			mh.handleCommand(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.enforceTurnClock(ctx, matchState, dispatcher, logger)
	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}
	return matchState
}

// enforceTurnClock auto-plays a human seat that has sat on its turn past the
// configured duration: a blind stock draw, or the first-card discard.
func (mh *matchHandler) enforceTurnClock(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.TurnDuration <= 0 || !roundLive(state) {
		state.TurnClockSeat = -1
		return
	}
	seat := state.Game.TurnSeat
	if !isHumanSeat(state.Seats[:], seat) {
		state.TurnClockSeat = -1
		return
	}
	if state.TurnClockSeat != seat {
		state.TurnClockSeat = seat
		state.TurnStarted = state.Tick
		return
	}
	if state.Tick-state.TurnStarted < int64(state.TurnDuration) {
		return
	}

	var events []app.Event
	var err error
	if state.Game.Turn == domain.TurnDraw {
		events, err = state.App.DrawFromStock(state.Game, seat)
	} else {
		events, err = state.App.Discard(state.Game, seat, 0)
	}
	if err != nil {
		logger.Error("enforceTurnClock: auto-play for seat %d rejected: %v", seat, err)
		return
	}
	logger.Info("enforceTurnClock: seat %d timed out, played automatically", seat)
	state.TurnClockSeat = -1

	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.broadcastSnapshots(state, dispatcher, logger)
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

// roundLive reports whether a round is actively being played.
func roundLive(state *MatchState) bool {
	return state.Game != nil && state.Game.Phase == domain.PhasePlaying
}

func seatOf(state *MatchState, userID string) int {
	for i, seatUserID := range state.Seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

func (mh *matchHandler) handleStartRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := seatOf(state, msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartRound: user %s is not owner (owner_seat=%d)", msg.GetUserId(), state.OwnerSeat)
		return
	}
	if state.GetOccupiedSeatCount() != domain.NumSeats {
		logger.Warn("StartRound: need %d seated players, have %d", domain.NumSeats, state.GetOccupiedSeatCount())
		return
	}

	// Reuse the game across rounds so the previous winner deals; rebuild
	// only when the occupants changed.
	if state.Game == nil || !sameOccupants(state.Game, state.Seats[:]) {
		state.Game = domain.NewGame(mh.buildSeats(state))
	}

	events, err := state.App.StartRound(state.Game, config.GetAnte())
	if err != nil {
		logger.Error("StartRound: %v", err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.broadcastSnapshots(state, dispatcher, logger)
	logger.Info("StartRound: round started, dealer seat %d", state.Game.DealerSeat)
}

func (mh *matchHandler) buildSeats(state *MatchState) []*domain.Seat {
	seats := make([]*domain.Seat, 0, domain.NumSeats)
	for _, userID := range state.Seats {
		seat := &domain.Seat{UserID: userID, Kind: domain.SeatHuman, Name: userID}
		if p, ok := state.Presences[userID]; ok {
			seat.Name = p.GetUsername()
		}
		if bot.IsBot(userID) {
			seat.Kind = domain.SeatBot
			seat.Difficulty = bot.DifficultyMedium
			if agent, ok := state.Bots[userID]; ok {
				seat.Name = agent.Name
				seat.Difficulty = agent.Difficulty
			} else if name := bot.GetBotDisplayName(userID); name != "" {
				seat.Name = name
			}
		}
		seats = append(seats, seat)
	}
	return seats
}

func sameOccupants(g *domain.Game, seats []string) bool {
	if len(g.Seats) != len(seats) {
		return false
	}
	for i, s := range g.Seats {
		if s.UserID != seats[i] {
			return false
		}
	}
	return true
}

type drawDiscardRequest struct {
	CardIndices []int `json:"card_indices"`
}

type discardRequest struct {
	CardIndex int `json:"card_index"`
}

type exposeMeldRequest struct {
	CardIndices []int `json:"card_indices"`
	Secret      bool  `json:"secret"`
}

type sapawRequest struct {
	TargetSeat int `json:"target_seat"`
	MeldIndex  int `json:"meld_index"`
	CardIndex  int `json:"card_index"`
}

func (mh *matchHandler) handleCommand(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := seatOf(state, senderID)
	if state.Game == nil {
		logger.Warn("handleCommand: round not started (op=%d, user=%s)", msg.GetOpCode(), senderID)
		return
	}

	var events []app.Event
	var err error
	switch msg.GetOpCode() {
	case OpDrawStock:
		events, err = state.App.DrawFromStock(state.Game, senderSeat)
	case OpDrawDiscard:
		var req drawDiscardRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.DrawFromDiscard(state.Game, senderSeat, req.CardIndices)
		}
	case OpDiscard:
		var req discardRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.Discard(state.Game, senderSeat, req.CardIndex)
		}
	case OpExposeMeld:
		var req exposeMeldRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.ExposeMeld(state.Game, senderSeat, req.CardIndices, req.Secret)
		}
	case OpSapaw:
		var req sapawRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.Sapaw(state.Game, senderSeat, req.TargetSeat, req.MeldIndex, req.CardIndex)
		}
	case OpCallFight:
		events, err = state.App.CallFight(state.Game, senderSeat)
	}

	if err != nil {
		logger.Warn("handleCommand: user %s (seat %d) op %d rejected: %v", senderID, senderSeat, msg.GetOpCode(), err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.broadcastSnapshots(state, dispatcher, logger)
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a single human has waited alone.
	if !roundLive(state) {
		if state.GetHumanPlayerCount() == 1 && state.GetOpenSeatsCount() > 0 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					agent, err := bot.NewAgentFromIdentity(identity, state.Rng)
					if err != nil {
						logger.Error("processBots: failed to create bot agent for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: added bot %s (%s) to seat %d", agent.Name, agent.ID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastRoster(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Let the active bot seat act after its scheduled delay.
	currentTurn := state.Game.TurnSeat
	currentUserID := state.Seats[currentTurn]
	if !bot.IsBot(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.Rng.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(currentUserID, state.Rng)
		if err != nil {
			logger.Error("processBots: failed to create fallback agent: %v", err)
			return
		}
		state.Bots[currentUserID] = agent
	}

	action, err := agent.Play(state.Game, currentTurn)
	if err != nil {
		logger.Error("processBots: bot %s failed to decide: %v", currentUserID, err)
		return
	}

	events, err := mh.applyBotAction(state, currentTurn, action)
	if err != nil {
		logger.Warn("processBots: bot %s action rejected: %v", currentUserID, err)
		// Keep the round moving with the safest legal command.
		if state.Game.Turn == domain.TurnDraw {
			events, err = state.App.DrawFromStock(state.Game, currentTurn)
		} else {
			events, err = state.App.Discard(state.Game, currentTurn, 0)
		}
		if err != nil {
			logger.Error("processBots: bot %s fallback rejected: %v", currentUserID, err)
			return
		}
	}

	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	mh.broadcastSnapshots(state, dispatcher, logger)
}

func (mh *matchHandler) applyBotAction(state *MatchState, seat int, action bot.Action) ([]app.Event, error) {
	switch a := action.(type) {
	case bot.DrawStockAction:
		return state.App.DrawFromStock(state.Game, seat)
	case bot.DrawDiscardAction:
		return state.App.DrawFromDiscard(state.Game, seat, a.CardIndices)
	case bot.DiscardAction:
		return state.App.Discard(state.Game, seat, a.CardIndex)
	case bot.ExposeAction:
		return state.App.ExposeMeld(state.Game, seat, a.CardIndices, false)
	case bot.SapawAction:
		return state.App.Sapaw(state.Game, seat, a.TargetSeat, a.MeldIndex, a.CardIndex)
	case bot.FightAction:
		return state.App.CallFight(state.Game, seat)
	default:
		return state.App.DrawFromStock(state.Game, seat)
	}
}

// dispatchEvents converts app events to opcode broadcasts, honoring targeted
// recipients and applying wallet settlement on round end.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, ok := eventOpCodes[ev.Kind]
		if !ok {
			logger.Warn("dispatchEvents: unknown event kind: %v", ev.Kind)
			continue
		}

		if ev.Kind == app.EventRoundEnded {
			mh.settleWallets(ctx, state, logger, ev)
			mh.updateLabel(state, dispatcher, logger)
		}

		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("dispatchEvents: failed to marshal event %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, uid := range ev.Recipients {
				if p, ok := state.Presences[uid]; ok {
					recipients = append(recipients, p)
				}
			}
			// Targeted events whose recipients are all offline (bots) must
			// not leak to everyone else.
			if len(recipients) == 0 {
				continue
			}
		}
		dispatcher.BroadcastMessage(opCode, payload, recipients, nil, true)
	}
}

var eventOpCodes = map[app.EventKind]int64{
	app.EventRoundStarted:  OpRoundStarted,
	app.EventHandDealt:     OpHandDealt,
	app.EventStockDrawn:    OpStockDrawn,
	app.EventDiscardTaken:  OpDiscardTaken,
	app.EventCardDiscarded: OpCardDiscarded,
	app.EventMeldExposed:   OpMeldExposed,
	app.EventMeldExtended:  OpMeldExtended,
	app.EventFightCalled:   OpFightCalled,
	app.EventRoundEnded:    OpRoundEnded,
}

func (mh *matchHandler) settleWallets(ctx context.Context, state *MatchState, logger runtime.Logger, ev app.Event) {
	payload, ok := ev.Payload.(app.RoundEndedPayload)
	if !ok || state.Economy == nil {
		return
	}
	updates := make([]ports.WalletUpdate, 0, len(payload.BalanceChanges))
	for userID, amount := range payload.BalanceChanges {
		if bot.IsBot(userID) {
			continue
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: userID,
			Amount: amount,
			Metadata: map[string]interface{}{
				"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
				"reason":   "round_settlement",
			},
		})
	}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settleWallets: failed to update balances: %v", err)
	}
}

// broadcastSnapshots sends each connected player their own view of the
// round. Bots read the game state directly and need no message.
func (mh *matchHandler) broadcastSnapshots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		return
	}
	for userID, presence := range state.Presences {
		view := app.Snapshot(state.Game, userID, false)
		payload, err := json.Marshal(view)
		if err != nil {
			logger.Error("broadcastSnapshots: failed to marshal view for %s: %v", userID, err)
			continue
		}
		dispatcher.BroadcastMessage(OpRoundState, payload, []runtime.Presence{presence}, nil, true)
	}
}

type rosterEntry struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	DisplayName string `json:"display_name"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
}

func (mh *matchHandler) broadcastRoster(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var roster []rosterEntry
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		name := userID
		if p, ok := state.Presences[userID]; ok {
			name = p.GetUsername()
		} else if agent, ok := state.Bots[userID]; ok {
			name = agent.Name
		} else if n := bot.GetBotDisplayName(userID); n != "" {
			name = n
		}
		roster = append(roster, rosterEntry{
			UserID:      userID,
			Seat:        i,
			DisplayName: name,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       bot.IsBot(userID),
		})
	}
	payload, err := json.Marshal(map[string]any{"players": roster, "owner_seat": state.OwnerSeat})
	if err != nil {
		logger.Error("broadcastRoster: failed to marshal roster: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpPlayerJoined, payload, nil, nil, true)
}

func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	payload, err := json.Marshal(map[string]any{"code": code, "message": message})
	if err != nil {
		logger.Error("sendError: failed to marshal: %v", err)
		return
	}
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	dispatcher.BroadcastMessage(OpGameError, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelState := "lobby"
	if roundLive(state) {
		labelState = "playing"
	}
	labelBytes, err := json.Marshal(matchLabel{Open: state.GetOpenSeatsCount(), Game: "tongits", State: labelState})
	if err != nil {
		logger.Error("updateLabel: failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}
