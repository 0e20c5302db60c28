package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Mikkode/bingo/internal/game"
)

// VariantFile is the TOML layout of a custom variant:
//
//	name = "classroom"
//	title = "Classroom heart"
//	policy = "pattern"
//	winning = ["Happy", "Loving"]
//	pattern = [[0, 0], [0, 4]]
//	use_emotions = true   # start from the built-in 30 emotions
//
//	[[symbols]]
//	name = "Silly"
//	glyph = "🤪"
//	color = "#fde047"
type VariantFile struct {
	Name        string        `toml:"name"`
	Title       string        `toml:"title"`
	Policy      string        `toml:"policy"`
	Winning     []string      `toml:"winning"`
	Pattern     [][]int       `toml:"pattern"`
	UseEmotions bool          `toml:"use_emotions"`
	Symbols     []game.Symbol `toml:"symbols"`
}

// DecodeVariantFile decodes a variant file without validating it.
func DecodeVariantFile(path string) (VariantFile, []string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return VariantFile{}, nil, fmt.Errorf("variant file not found: %s", path)
	}
	var vf VariantFile
	md, err := toml.DecodeFile(path, &vf)
	if err != nil {
		return VariantFile{}, nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return vf, undecoded, nil
}

// Variant converts the file into a game variant. Malformed pattern entries are
// reported together with the variant's own problems.
func (vf VariantFile) Variant() (game.Variant, []string) {
	var problems []string
	v := game.Variant{
		Name:    vf.Name,
		Title:   vf.Title,
		Policy:  game.PolicyKind(vf.Policy),
		Winning: vf.Winning,
	}
	if v.Title == "" {
		v.Title = vf.Name
	}
	if vf.UseEmotions {
		v.Catalog = append(v.Catalog, game.Emotions...)
	}
	v.Catalog = append(v.Catalog, vf.Symbols...)
	for i, p := range vf.Pattern {
		if len(p) != 2 {
			problems = append(problems, fmt.Sprintf("pattern entry #%d must be [row, col], got %v", i+1, p))
			continue
		}
		v.Pattern = append(v.Pattern, game.Cell{Row: p[0], Col: p[1]})
	}
	return v, append(problems, v.Problems()...)
}

// LoadVariantFile decodes and validates a variant file.
func LoadVariantFile(path string) (*game.Variant, error) {
	vf, _, err := DecodeVariantFile(path)
	if err != nil {
		return nil, err
	}
	v, problems := vf.Variant()
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w %q in %s: %v", game.ErrInvalidVariant, v.Name, path, problems)
	}
	return game.NewVariant(v)
}
