package bot

import (
	"fmt"
	"math/rand"

	"tongits/internal/domain"
)

// Agent is an autonomous bot seat: an identity plus a strategy.
type Agent struct {
	ID         string
	Name       string
	Difficulty string
	Strategy   Brain
}

// NewAgent builds an agent for the given bot user id, resolving its
// difficulty from the identity pool (medium when unknown).
func NewAgent(userID string, rng *rand.Rand) (*Agent, error) {
	difficulty := DifficultyMedium
	name := userID
	if identity, ok := GetBotConfig(userID); ok {
		if identity.Difficulty != "" {
			difficulty = identity.Difficulty
		}
		if identity.DisplayName != "" {
			name = identity.DisplayName
		}
	}

	brain, err := NewBrain(difficulty, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: name, Difficulty: difficulty, Strategy: brain}, nil
}

// NewAgentFromIdentity builds an agent directly from a pool identity,
// bypassing the registry lookup. Used when seating synthesized bots.
func NewAgentFromIdentity(identity BotIdentity, rng *rand.Rand) (*Agent, error) {
	difficulty := identity.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	brain, err := NewBrain(difficulty, rng)
	if err != nil {
		return nil, err
	}
	name := identity.DisplayName
	if name == "" {
		name = identity.UserID
	}
	return &Agent{ID: identity.UserID, Name: name, Difficulty: difficulty, Strategy: brain}, nil
}

// Play asks the agent for its next action at the given seat.
func (a *Agent) Play(g *domain.Game, seat int) (Action, error) {
	if seat < 0 || seat >= len(g.Seats) {
		return nil, fmt.Errorf("agent %s: seat %d out of range", a.ID, seat)
	}
	return a.Strategy.Decide(g, seat)
}
