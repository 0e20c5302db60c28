package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Generator lays out cards for one variant.
//
// A Generator is not safe for concurrent use: it owns its RNG.
type Generator struct {
	variant     *Variant
	rng         RNG
	maxAttempts int
}

// NewGenerator validates the variant and returns a generator drawing from rng.
// A nil rng means NewRNG().
func NewGenerator(v *Variant, rng RNG) (*Generator, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil variant", ErrInvalidVariant)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if v.bySymbol == nil {
		v.index()
	}
	if rng == nil {
		rng = NewRNG()
	}
	return &Generator{variant: v, rng: rng, maxAttempts: MaxAttempts}, nil
}

// Variant returns the variant the generator lays out.
func (g *Generator) Variant() *Variant { return g.variant }

// GenerateGrid lays out one grid for the card cardID.
//
// Winner grids are built to satisfy the variant's predicate. Non-winner grids are
// redrawn while they accidentally satisfy it, and after MaxAttempts draws a
// *GenerationExhaustedError is returned.
func (g *Generator) GenerateGrid(cardID int, isWinner bool) (Grid, error) {
	if isWinner {
		return g.winnerGrid(), nil
	}
	var grid Grid
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		grid = g.regularGrid()
		if !g.variant.IsWinning(grid) {
			return grid, nil
		}
		klog.V(1).Infof("GenerateGrid: card #%d came out winning on attempt %d, redrawing", cardID, attempt)
	}
	return Grid{}, &GenerationExhaustedError{CardID: cardID, Attempts: g.maxAttempts}
}

// GenerateCard returns a whole card with the given id and winner status.
func (g *Generator) GenerateCard(cardID int, isWinner bool) (Card, error) {
	grid, err := g.GenerateGrid(cardID, isWinner)
	if err != nil {
		return Card{}, err
	}
	return Card{ID: cardID, Grid: grid, IsWinner: isWinner}, nil
}

// GenerateBatch generates the BatchSize cards of a batch, exactly winners of them winning.
//
// Either the whole batch is returned, or no cards and the first error.
func (g *Generator) GenerateBatch(winners int) (Batch, error) {
	if winners < 0 || winners > BatchSize {
		return Batch{}, fmt.Errorf("%w, got %d", ErrInvalidWinnerCount, winners)
	}

	cards := make([]Card, 0, BatchSize)
	for id := 1; id <= BatchSize; id++ {
		card, err := g.GenerateCard(id, false)
		if err != nil {
			return Batch{}, err
		}
		cards = append(cards, card)
	}

	ids := make([]int, BatchSize)
	for i := range ids {
		ids[i] = i + 1
	}
	for _, id := range Shuffle(g.rng, ids)[:winners] {
		card, err := g.GenerateCard(id, true)
		if err != nil {
			return Batch{}, err
		}
		idx := slices.IndexFunc(cards, func(c Card) bool { return c.ID == id })
		cards[idx] = card
	}
	slices.SortFunc(cards, func(a, b Card) int { return a.ID - b.ID })

	batch := Batch{
		ID:      uuid.NewString(),
		Variant: g.variant.Name,
		Winners: winners,
		Cards:   cards,
	}
	klog.V(1).Infof("GenerateBatch: batch %s (%s) with winners %v", batch.ID, batch.Variant, batch.WinnerIDs())
	return batch, nil
}

// regularGrid fills the grid row-major with the head of a shuffled catalog.
func (g *Generator) regularGrid() Grid {
	names := make([]string, len(g.variant.Catalog))
	for i, s := range g.variant.Catalog {
		names[i] = s.Name
	}
	return fillRowMajor(Shuffle(g.rng, names))
}

func (g *Generator) winnerGrid() Grid {
	winning := Shuffle(g.rng, g.variant.Winning)
	if g.variant.Policy == PolicyFullCard {
		return fillRowMajor(winning)
	}

	var grid Grid
	others := Shuffle(g.rng, g.variant.nonWinner)
	next := 0
	for r := range GridSize {
		for c := range GridSize {
			if g.variant.InPattern(r, c) || len(others) == 0 {
				continue
			}
			// Cycle through the non-winning symbols if there are fewer than free cells.
			grid[r][c] = others[next%len(others)]
			next++
		}
	}
	for i, cell := range g.variant.Pattern {
		if i < len(winning) {
			grid[cell.Row][cell.Col] = winning[i]
		}
	}
	return grid
}

// fillRowMajor copies names into the grid; cells past the end of names stay empty.
func fillRowMajor(names []string) Grid {
	var grid Grid
	for i := 0; i < CellCount && i < len(names); i++ {
		grid[i/GridSize][i%GridSize] = names[i]
	}
	return grid
}
