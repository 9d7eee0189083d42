package engine

// StateType represents the session state derived from the grid.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot is a read-only view of a game for rendering, logging and tests.
type Snapshot struct {
	Grid    Grid
	Score   uint32
	MaxTile uint32
	Empty   int
	State   StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.IsOver() {
		state = StateGameOver
	}

	return Snapshot{
		Grid:    g.grid,
		Score:   g.score,
		MaxTile: TileValue(g.grid.MaxExponent()),
		Empty:   g.grid.CountEmpty(),
		State:   state,
	}
}
