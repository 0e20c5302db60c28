package game

// Version of the game.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.2.0"

const (
	// GridSize is the number of rows (and columns) of a card.
	GridSize = 5

	// CellCount is the number of cells of a card.
	CellCount = GridSize * GridSize

	// BatchSize is the number of cards printed per generation.
	BatchSize = 50

	// MaxAttempts bounds the regeneration of a non-winner grid that came out winning.
	MaxAttempts = 100

	// DefaultWinners is the winner count offered before the user picks one.
	DefaultWinners = 5
)

// ClampWinners clamps a requested winner count to the range offered to users (1..BatchSize).
func ClampWinners(n int) int {
	if n < 1 {
		return 1
	}
	if n > BatchSize {
		return BatchSize
	}
	return n
}
