package core

// RuntimeConfig contains the per-session settings handed to front ends.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	Seed       int64   // RNG seed; 0 means derive one from the clock
	FourChance float64 // Probability that a spawned tile is a 4
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0,
		FourChance: 0.10,
	}
}
