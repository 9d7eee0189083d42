package engine

import (
	"fmt"
	"math/rand"
)

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawn describes a tile placed by AddRandom.
type Spawn struct {
	X, Y     int
	Exponent uint8
}

// Game owns one session's grid and score.
type Game struct {
	grid  Grid
	score uint32
	rng   Rand
}

// New creates a game with two random tiles using rng.
func New(rng Rand) *Game {
	g := &Game{rng: rng}
	g.Init()
	return g
}

// NewSeeded creates a game backed by a math/rand source seeded with seed.
func NewSeeded(seed int64) *Game {
	return New(rand.New(rand.NewSource(seed)))
}

// FromGrid creates a game from an existing grid and score, for fixtures
// and replays. The grid is validated and no tiles are spawned.
func FromGrid(grid Grid, score uint32, rng Rand) (*Game, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidGrid)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return &Game{grid: grid, score: score, rng: rng}, nil
}

// Init clears the grid, spawns two tiles and resets the score.
func (g *Game) Init() {
	g.grid = Grid{}
	g.AddRandom()
	g.AddRandom()
	g.score = 0
}

// Move slides the grid in dir and adds merge points to the score.
// It reports whether any cell changed. An invalid direction leaves the
// game untouched and returns ErrInvalidDirection.
func (g *Game) Move(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	changed, gained := g.grid.Move(dir)
	g.score += gained
	return changed, nil
}

// AddRandom places a tile on a uniformly chosen empty cell: exponent 1
// nine times out of ten, exponent 2 otherwise. It returns false and does
// nothing when the grid is full.
func (g *Game) AddRandom() (Spawn, bool) {
	var free [Size * Size][2]int
	n := 0
	for x := range Size {
		for y := range Size {
			if g.grid[x][y] == 0 {
				free[n] = [2]int{x, y}
				n++
			}
		}
	}

	if n == 0 {
		return Spawn{}, false
	}

	cell := free[g.rng.Intn(n)]
	exp := uint8(g.rng.Intn(10)/9 + 1)
	g.grid[cell[0]][cell[1]] = exp

	return Spawn{X: cell[0], Y: cell[1], Exponent: exp}, true
}

// IsOver reports whether no move is possible.
func (g *Game) IsOver() bool {
	return g.grid.Ended()
}

// Score returns the accumulated score.
func (g *Game) Score() uint32 {
	return g.score
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() Grid {
	return g.grid
}
