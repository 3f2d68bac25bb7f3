package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/term2048/internal/core"
)

// DefaultFourChance is the probability of spawning a 4 instead of a 2.
const DefaultFourChance = 0.10

// ErrNoEmptyCell is the panic value raised when a tile is spawned on a full grid.
var ErrNoEmptyCell = errors.New("game: spawn on a grid with no empty cell")

// Spawner places new tiles on a grid.
type Spawner struct {
	rng        *rand.Rand
	fourChance float64
}

// NewSpawner creates a spawner with its own seeded RNG.
// fourChance is clamped to [0, 1].
func NewSpawner(seed int64, fourChance float64) *Spawner {
	if fourChance < 0 {
		fourChance = 0
	}
	if fourChance > 1 {
		fourChance = 1
	}
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		fourChance: fourChance,
	}
}

// SpawnerFor builds a spawner from runtime settings. A zero seed is replaced
// by one derived from the clock.
func SpawnerFor(cfg core.RuntimeConfig) *Spawner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSpawner(seed, cfg.FourChance)
}

// Spawn puts a 2 (or, with probability fourChance, a 4) into a uniformly chosen
// empty cell and returns its position. Cells are drawn at random until an empty
// one comes up, so callers must guarantee a free cell; Spawn panics with
// ErrNoEmptyCell otherwise.
func (s *Spawner) Spawn(g *Grid) (row, col int) {
	if g.EmptyCells() == 0 {
		panic(ErrNoEmptyCell)
	}

	for {
		row = s.rng.Intn(Size)
		col = s.rng.Intn(Size)
		if g[row][col] == 0 {
			break
		}
	}

	g[row][col] = s.tileValue()
	return row, col
}

// tileValue picks the exponent of a new tile.
func (s *Spawner) tileValue() uint8 {
	if s.rng.Float64() < s.fourChance {
		return 2
	}
	return 1
}
