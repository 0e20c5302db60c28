package game

import (
	"fmt"
	"slices"
	"strings"
)

// PolicyKind names a winning-condition policy.
type PolicyKind string

const (
	// PolicyPattern: a card wins when every pattern cell holds a winning symbol.
	PolicyPattern PolicyKind = "pattern"
	// PolicyFullCard: a card wins when every filled cell holds a winning symbol.
	PolicyFullCard PolicyKind = "fullcard"
)

// Variant is the static configuration of one game: catalog, winning set and policy.
type Variant struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Policy  PolicyKind `json:"policy"`
	Catalog []Symbol   `json:"catalog"`
	Winning []string   `json:"winning"`
	Pattern []Cell     `json:"pattern,omitempty"` // Only for PolicyPattern

	winning   map[string]bool
	pattern   map[Cell]bool
	bySymbol  map[string]*Symbol
	nonWinner []string
}

// HeartPattern is the built-in pattern: marked cells draw a heart.
var HeartPattern = []Cell{
	{0, 0}, {0, 1}, {0, 3}, {0, 4},
	{1, 0}, {1, 2}, {1, 4},
	{2, 0}, {2, 4},
	{3, 1}, {3, 3},
	{4, 2},
}

// HeartEmotions are the 12 emotions that draw the heart on winner cards.
var HeartEmotions = []string{
	"Happy", "Loving", "Laughing", "Excited", "Amazed",
	"Proud", "Innocent", "Friendly", "Celebrating", "Admiring",
	"Enjoying", "Relaxed",
}

// FullCardEmotions are the 25 emotions a full-card winner is made of:
// every emotion except the five gloomiest.
var FullCardEmotions = []string{
	"Happy", "Very Happy", "Excited", "Amazed", "Loving",
	"Proud", "Innocent", "Friendly", "Celebrating", "Laughing",
	"Admiring", "Enjoying", "Hungry", "Sleepy", "Feeling Hot",
	"Feeling Cold", "Nervous", "Shocked", "Curious", "Surprised",
	"Worried", "Embarrassed", "Thinking", "Relaxed", "Giggling",
}

var builtinVariants = []Variant{
	{
		Name:    "heart",
		Title:   "❤️ Heart Pattern",
		Policy:  PolicyPattern,
		Catalog: Emotions,
		Winning: HeartEmotions,
		Pattern: HeartPattern,
	},
	{
		Name:    "fullcard",
		Title:   "🌈 Full Card",
		Policy:  PolicyFullCard,
		Catalog: Emotions,
		Winning: FullCardEmotions,
	},
}

// DefaultVariant is the name of the variant used when none is selected.
const DefaultVariant = "heart"

// indexedBuiltins holds the built-in variants, indexed once at startup.
var indexedBuiltins []*Variant

func init() {
	indexedBuiltins = make([]*Variant, 0, len(builtinVariants))
	for _, v := range builtinVariants {
		v.index()
		indexedBuiltins = append(indexedBuiltins, &v)
	}
}

// Variants returns the built-in variants, indexed and ready to use.
// The variants are shared and must not be modified.
func Variants() []*Variant {
	return slices.Clone(indexedBuiltins)
}

// LookupVariant returns the built-in variant with the given name.
func LookupVariant(name string) (*Variant, error) {
	if name == "" {
		name = DefaultVariant
	}
	for _, v := range indexedBuiltins {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// NewVariant validates and indexes a custom variant.
func NewVariant(v Variant) (*Variant, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	v.index()
	return &v, nil
}

func (v *Variant) index() {
	v.winning = make(map[string]bool, len(v.Winning))
	for _, name := range v.Winning {
		v.winning[name] = true
	}
	v.pattern = make(map[Cell]bool, len(v.Pattern))
	for _, c := range v.Pattern {
		v.pattern[c] = true
	}
	v.bySymbol = make(map[string]*Symbol, len(v.Catalog))
	v.nonWinner = v.nonWinner[:0]
	for i := range v.Catalog {
		s := &v.Catalog[i]
		v.bySymbol[s.Name] = s
		if !v.winning[s.Name] {
			v.nonWinner = append(v.nonWinner, s.Name)
		}
	}
}

// Problems lists every configuration invariant the variant breaks.
func (v *Variant) Problems() []string {
	var problems []string
	if v.Name == "" {
		problems = append(problems, "name is required")
	}
	if len(v.Catalog) < CellCount {
		problems = append(problems, fmt.Sprintf("catalog has %d symbols, at least %d are needed to fill a card", len(v.Catalog), CellCount))
	}
	names := make(map[string]bool, len(v.Catalog))
	for i, s := range v.Catalog {
		switch {
		case s.Name == "":
			problems = append(problems, fmt.Sprintf("catalog symbol #%d has no name", i+1))
		case names[s.Name]:
			problems = append(problems, fmt.Sprintf("duplicate symbol name %q", s.Name))
		}
		if s.Glyph == "" {
			problems = append(problems, fmt.Sprintf("symbol %q has no glyph", s.Name))
		}
		names[s.Name] = true
	}
	winning := make(map[string]bool, len(v.Winning))
	for _, name := range v.Winning {
		if !names[name] {
			problems = append(problems, fmt.Sprintf("winning symbol %q is not in the catalog", name))
		}
		if winning[name] {
			problems = append(problems, fmt.Sprintf("winning symbol %q listed twice", name))
		}
		winning[name] = true
	}

	switch v.Policy {
	case PolicyPattern:
		if len(v.Pattern) == 0 {
			problems = append(problems, "pattern policy needs at least one pattern cell")
		}
		seen := make(map[Cell]bool, len(v.Pattern))
		for _, c := range v.Pattern {
			if c.Row < 0 || c.Row >= GridSize || c.Col < 0 || c.Col >= GridSize {
				problems = append(problems, fmt.Sprintf("pattern cell (%d, %d) is outside the grid", c.Row, c.Col))
			}
			if seen[c] {
				problems = append(problems, fmt.Sprintf("pattern cell (%d, %d) listed twice", c.Row, c.Col))
			}
			seen[c] = true
		}
		if len(v.Winning) < len(seen) {
			problems = append(problems, fmt.Sprintf("winning set has %d symbols but the pattern has %d cells", len(v.Winning), len(seen)))
		}
		if len(seen) < CellCount && len(v.Catalog)-len(winning) < 1 {
			problems = append(problems, "pattern policy needs at least one non-winning symbol to fill the cells outside the pattern")
		}
	case PolicyFullCard:
		if len(v.Pattern) > 0 {
			problems = append(problems, "fullcard policy takes no pattern")
		}
		if len(v.Winning) != CellCount {
			problems = append(problems, fmt.Sprintf("fullcard policy needs exactly %d winning symbols, got %d", CellCount, len(v.Winning)))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown policy %q (want %q or %q)", v.Policy, PolicyPattern, PolicyFullCard))
	}
	return problems
}

// Validate returns an error wrapping ErrInvalidVariant listing every problem found.
func (v *Variant) Validate() error {
	problems := v.Problems()
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %s", ErrInvalidVariant, v.Name, strings.Join(problems, "; "))
}

// IsWinningSymbol reports whether name belongs to the winning set.
func (v *Variant) IsWinningSymbol(name string) bool {
	return v.winning[name]
}

// InPattern reports whether the cell is one of the pattern cells.
func (v *Variant) InPattern(row, col int) bool {
	return v.pattern[Cell{row, col}]
}

// Symbol looks up a catalog entry by name.
func (v *Variant) Symbol(name string) (Symbol, bool) {
	s, ok := v.bySymbol[name]
	if !ok {
		return Symbol{}, false
	}
	return *s, true
}

// WinningSymbols returns the catalog entries of the winning set, in winning set order.
func (v *Variant) WinningSymbols() []Symbol {
	out := make([]Symbol, 0, len(v.Winning))
	for _, name := range v.Winning {
		if s, ok := v.bySymbol[name]; ok {
			out = append(out, *s)
		}
	}
	return out
}

// IsWinning is the winning-condition predicate of the variant's policy.
func (v *Variant) IsWinning(g Grid) bool {
	switch v.Policy {
	case PolicyPattern:
		if len(v.Pattern) == 0 {
			return false
		}
		for _, c := range v.Pattern {
			if !v.winning[g[c.Row][c.Col]] {
				return false
			}
		}
		return true

	case PolicyFullCard:
		filled := 0
		for _, row := range g {
			for _, name := range row {
				if name == "" {
					continue
				}
				if !v.winning[name] {
					return false
				}
				filled++
			}
		}
		return filled > 0
	}
	return false
}

// HighlightCell reports whether a heart marker should be drawn over the cell:
// a pattern cell holding a winning symbol. Always false for non-pattern policies.
func (v *Variant) HighlightCell(row, col int, name string) bool {
	return v.Policy == PolicyPattern && v.InPattern(row, col) && v.winning[name]
}

// HasPattern reports whether the variant's policy uses a spatial pattern.
func (v *Variant) HasPattern() bool {
	return v.Policy == PolicyPattern
}

// SortedPattern returns the pattern cells in row-major order.
func (v *Variant) SortedPattern() []Cell {
	cells := slices.Clone(v.Pattern)
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return cells
}
