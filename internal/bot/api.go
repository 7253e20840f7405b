package bot

import "tongits/internal/domain"

// Bot difficulty tiers, matching the identity pool's difficulty field.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Action is the decision produced by a Brain: one concrete command per kind,
// mirroring the engine's mutators.
type Action interface {
	isAction()
}

// DrawStockAction draws the top stock card.
type DrawStockAction struct{}

// DrawDiscardAction takes the discard top together with the indicated hand
// cards as an immediate meld.
type DrawDiscardAction struct {
	CardIndices []int
}

// DiscardAction sheds one hand card and ends the turn.
type DiscardAction struct {
	CardIndex int
}

// ExposeAction lays down a new meld from hand.
type ExposeAction struct {
	CardIndices []int
}

// SapawAction extends an exposed meld (own or an opponent's) with one card.
type SapawAction struct {
	TargetSeat int
	MeldIndex  int
	CardIndex  int
}

// FightAction calls an early showdown.
type FightAction struct{}

func (DrawStockAction) isAction()   {}
func (DrawDiscardAction) isAction() {}
func (DiscardAction) isAction()     {}
func (ExposeAction) isAction()      {}
func (SapawAction) isAction()       {}
func (FightAction) isAction()       {}

// Brain is the interface all bot strategies implement. Decide is pure: it
// inspects the round state and returns the seat's next action without
// mutating anything.
type Brain interface {
	Decide(g *domain.Game, seat int) (Action, error)
}
