package bot

import (
	"math/rand"
	"testing"

	"tongits/internal/domain"
)

func drawPhaseGame() *domain.Game {
	g := domain.NewGame([]*domain.Seat{{UserID: "b0"}, {UserID: "p1"}, {UserID: "p2"}})
	g.Phase = domain.PhasePlaying
	g.Turn = domain.TurnDraw
	g.TurnSeat = 0
	g.Seats[0].Hand = []domain.Card{
		{Suit: domain.SuitHearts, Rank: 7},
		{Suit: domain.SuitDiamonds, Rank: 7},
		{Suit: domain.SuitClubs, Rank: 13},
	}
	g.DiscardPile = []domain.Card{{Suit: domain.SuitSpades, Rank: 7}}
	return g
}

func TestEasyBotDrawsStockWithoutUsableDiscard(t *testing.T) {
	g := drawPhaseGame()
	g.DiscardPile = []domain.Card{{Suit: domain.SuitSpades, Rank: 2}}
	brain := &EasyBot{rng: rand.New(rand.NewSource(1))}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if _, ok := action.(DrawStockAction); !ok {
		t.Fatalf("action = %T, want stock draw", action)
	}
}

func TestEasyBotSometimesTakesDiscard(t *testing.T) {
	brain := &EasyBot{rng: rand.New(rand.NewSource(9))}
	taken := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		action, err := brain.Decide(drawPhaseGame(), 0)
		if err != nil {
			t.Fatalf("decide error: %v", err)
		}
		if _, ok := action.(DrawDiscardAction); ok {
			taken++
		}
	}
	// The pickup chance is 0.3; anything far outside that is a bug.
	if taken < trials/5 || taken > trials/2 {
		t.Fatalf("took the discard %d/%d times, want about 30%%", taken, trials)
	}
}

func TestEasyBotActionPhase(t *testing.T) {
	g := drawPhaseGame()
	g.Turn = domain.TurnAction
	brain := &EasyBot{rng: rand.New(rand.NewSource(2))}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	discard, ok := action.(DiscardAction)
	if !ok {
		t.Fatalf("action = %T, want discard", action)
	}
	if discard.CardIndex < 0 || discard.CardIndex >= len(g.Seats[0].Hand) {
		t.Fatalf("discard index %d out of range", discard.CardIndex)
	}

	// With a lay-off available it is always taken over a random discard.
	g.Seats[1].Melds = []*domain.Meld{{Cards: []domain.Card{
		{Suit: domain.SuitClubs, Rank: 11}, {Suit: domain.SuitClubs, Rank: 12}, {Suit: domain.SuitClubs, Rank: 13},
	}}}
	g.Seats[0].Hand = []domain.Card{{Suit: domain.SuitClubs, Rank: 10}, {Suit: domain.SuitHearts, Rank: 4}}
	action, err = brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	sapaw, ok := action.(SapawAction)
	if !ok {
		t.Fatalf("action = %T, want sapaw", action)
	}
	if sapaw.TargetSeat != 1 || sapaw.CardIndex != 0 {
		t.Fatalf("sapaw = %+v, want the 10C onto seat 1", sapaw)
	}
}

func TestMediumBotAlwaysTakesUsableDiscard(t *testing.T) {
	brain := &MediumBot{}
	action, err := brain.Decide(drawPhaseGame(), 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	draw, ok := action.(DrawDiscardAction)
	if !ok {
		t.Fatalf("action = %T, want discard draw", action)
	}
	if len(draw.CardIndices) != 2 {
		t.Fatalf("indices = %v, want the two sevens", draw.CardIndices)
	}
}

func TestMediumBotExposesFirstMeld(t *testing.T) {
	g := drawPhaseGame()
	g.Turn = domain.TurnAction
	g.Seats[0].Hand = []domain.Card{
		{Suit: domain.SuitClubs, Rank: 2}, {Suit: domain.SuitClubs, Rank: 3},
		{Suit: domain.SuitClubs, Rank: 4}, {Suit: domain.SuitHearts, Rank: 13},
	}
	brain := &MediumBot{}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	expose, ok := action.(ExposeAction)
	if !ok {
		t.Fatalf("action = %T, want expose", action)
	}
	if len(expose.CardIndices) != 3 {
		t.Fatalf("indices = %v, want the club run", expose.CardIndices)
	}
}

func TestMediumBotShedsLeastEntangledCard(t *testing.T) {
	g := drawPhaseGame()
	g.Turn = domain.TurnAction
	g.Seats[0].Hand = []domain.Card{
		{Suit: domain.SuitSpades, Rank: 5},
		{Suit: domain.SuitSpades, Rank: 6},
		{Suit: domain.SuitHearts, Rank: 13},
	}
	brain := &MediumBot{}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	discard, ok := action.(DiscardAction)
	if !ok {
		t.Fatalf("action = %T, want discard", action)
	}
	if discard.CardIndex != 2 {
		t.Fatalf("discard index = %d, want the lone KH", discard.CardIndex)
	}
}

func TestHardBotFightsOnlyGuaranteedWins(t *testing.T) {
	g := drawPhaseGame()
	g.Turn = domain.TurnAction
	brain := &HardBot{tuning: DefaultTuning}

	actor := g.Seats[0]
	actor.HasOpened = true
	actor.Melds = []*domain.Meld{{Cards: []domain.Card{
		{Suit: domain.SuitClubs, Rank: 9}, {Suit: domain.SuitHearts, Rank: 9}, {Suit: domain.SuitSpades, Rank: 9},
	}}}
	actor.Hand = []domain.Card{{Suit: domain.SuitClubs, Rank: 5}}
	g.Seats[1].Hand = []domain.Card{{Suit: domain.SuitHearts, Rank: 13}, {Suit: domain.SuitSpades, Rank: 13}}
	g.Seats[2].Hand = []domain.Card{{Suit: domain.SuitDiamonds, Rank: 8}}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if _, ok := action.(FightAction); !ok {
		t.Fatalf("action = %T, want fight with the strictly lowest weight", action)
	}

	// An opponent matching our weight makes the fight unsafe.
	g.Seats[2].Hand = []domain.Card{{Suit: domain.SuitDiamonds, Rank: 5}}
	action, err = brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	if _, ok := action.(FightAction); ok {
		t.Fatalf("must not fight into a tied opponent")
	}
}

func TestHardBotExposesMostValuableMeld(t *testing.T) {
	g := drawPhaseGame()
	g.Turn = domain.TurnAction
	g.Seats[0].Hand = []domain.Card{
		{Suit: domain.SuitClubs, Rank: 2}, {Suit: domain.SuitClubs, Rank: 3}, {Suit: domain.SuitClubs, Rank: 4},
		{Suit: domain.SuitHearts, Rank: 13}, {Suit: domain.SuitSpades, Rank: 13}, {Suit: domain.SuitDiamonds, Rank: 13},
	}
	brain := &HardBot{tuning: DefaultTuning}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	expose, ok := action.(ExposeAction)
	if !ok {
		t.Fatalf("action = %T, want expose", action)
	}
	hand := g.Seats[0].Hand
	for _, i := range expose.CardIndices {
		if hand[i].Rank != 13 {
			t.Fatalf("exposed %v, want the 30-point king set", expose.CardIndices)
		}
	}
}

func TestHardBotDiscardScoring(t *testing.T) {
	g := drawPhaseGame()
	g.Turn = domain.TurnAction
	// The KC is expensive and structurally loose; the spades are run
	// material worth keeping.
	g.Seats[0].Hand = []domain.Card{
		{Suit: domain.SuitClubs, Rank: 13},
		{Suit: domain.SuitSpades, Rank: 5},
		{Suit: domain.SuitSpades, Rank: 6},
	}
	brain := &HardBot{tuning: DefaultTuning}

	action, err := brain.Decide(g, 0)
	if err != nil {
		t.Fatalf("decide error: %v", err)
	}
	discard, ok := action.(DiscardAction)
	if !ok {
		t.Fatalf("action = %T, want discard", action)
	}
	if discard.CardIndex != 0 {
		t.Fatalf("discard index = %d, want the KC", discard.CardIndex)
	}
}

func TestNewBrainByDifficulty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if b, err := NewBrain(DifficultyEasy, rng); err != nil {
		t.Fatalf("easy: %v", err)
	} else if _, ok := b.(*EasyBot); !ok {
		t.Fatalf("easy brain = %T", b)
	}
	if b, err := NewBrain(DifficultyMedium, rng); err != nil {
		t.Fatalf("medium: %v", err)
	} else if _, ok := b.(*MediumBot); !ok {
		t.Fatalf("medium brain = %T", b)
	}
	if b, err := NewBrain(DifficultyHard, rng); err != nil {
		t.Fatalf("hard: %v", err)
	} else if _, ok := b.(*HardBot); !ok {
		t.Fatalf("hard brain = %T", b)
	}
	if _, err := NewBrain("impossible", rng); err == nil {
		t.Fatalf("unknown difficulty must fail")
	}
}

func TestNewAgentDefaultsToMedium(t *testing.T) {
	agent, err := NewAgent("bot-unknown-99", rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new agent error: %v", err)
	}
	if agent.Difficulty != DifficultyMedium {
		t.Fatalf("difficulty = %q, want medium fallback", agent.Difficulty)
	}
	if _, ok := agent.Strategy.(*MediumBot); !ok {
		t.Fatalf("strategy = %T, want medium", agent.Strategy)
	}
}

func TestNewAgentFromIdentityKeepsDifficulty(t *testing.T) {
	agent, err := NewAgentFromIdentity(BotIdentity{UserID: "bot-7", DisplayName: "Nene", Difficulty: DifficultyHard}, nil)
	if err != nil {
		t.Fatalf("new agent error: %v", err)
	}
	if agent.Difficulty != DifficultyHard || agent.Name != "Nene" {
		t.Fatalf("agent = %+v, want hard Nene", agent)
	}
}
