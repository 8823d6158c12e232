package core

// InputEvent is one applied action and the tick it was applied on.
type InputEvent struct {
	Tick   uint64 `json:"tick"`
	Action Action `json:"action"`
}

// Recording captures everything needed to re-simulate a game: the seed, the
// settings that shape the simulation and the input log.
type Recording struct {
	GameID     string       `json:"game_id"`
	Seed       int64        `json:"seed"`
	TickRate   int          `json:"tick_rate"`
	Rows       int          `json:"rows"`
	Columns    int          `json:"columns"`
	GravityMS  int          `json:"gravity_ms"`
	Randomizer string       `json:"randomizer"`
	Ticks      uint64       `json:"ticks"`
	Pieces     int          `json:"pieces"`
	Lines      int          `json:"lines"`
	GameOver   bool         `json:"game_over"`
	Inputs     []InputEvent `json:"inputs"`
}

// InputsAt returns the actions logged for a tick, in log order.
// The log must be sorted by tick; from is the index to start scanning at.
// Returns the actions and the index of the first event after this tick.
func (r Recording) InputsAt(tick uint64, from int) ([]Action, int) {
	var actions []Action
	i := from
	for i < len(r.Inputs) && r.Inputs[i].Tick < tick {
		i++
	}
	for i < len(r.Inputs) && r.Inputs[i].Tick == tick {
		actions = append(actions, r.Inputs[i].Action)
		i++
	}
	return actions, i
}
