package bot

// Tuning collects the hard bot's heuristic weights.
type Tuning struct {
	// FightWeightCeiling is the highest unmelded weight at which the bot
	// will still call a showdown.
	FightWeightCeiling int
	// DiscardValueWeight scales a card's point value in the discard score.
	DiscardValueWeight int
	// StructurePenalty scales suit-neighbor and rank-duplicate counts, each
	// of which marks the card as part of a likely future meld.
	StructurePenalty int
}

// DefaultTuning favors keeping any card with meld potential over shedding
// high point values.
var DefaultTuning = Tuning{
	FightWeightCeiling: 15,
	DiscardValueWeight: 3,
	StructurePenalty:   15,
}
