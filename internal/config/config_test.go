package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mikkode/bingo/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BINGO_ADDR", "")
	t.Setenv("BINGO_VARIANT_FILE", "")
	t.Setenv("BINGO_DEFAULT_WINNERS", "")

	c, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if c.Addr != "localhost:8080" || c.VariantFile != "" || c.DefaultWinners != game.DefaultWinners {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("BINGO_ADDR", "")
	t.Setenv("BINGO_DEFAULT_WINNERS", "")
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("BINGO_ADDR=127.0.0.1:9999\nBINGO_DEFAULT_WINNERS=12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides a variable that is set, even if empty.
	os.Unsetenv("BINGO_ADDR")
	os.Unsetenv("BINGO_DEFAULT_WINNERS")

	c, err := LoadFrom(envFile)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if c.Addr != "127.0.0.1:9999" || c.DefaultWinners != 12 {
		t.Errorf("env file not applied: %+v", c)
	}
}

func TestLoadInvalidWinners(t *testing.T) {
	for _, v := range []string{"abc", "-1", "51"} {
		t.Setenv("BINGO_DEFAULT_WINNERS", v)
		if _, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env")); err == nil {
			t.Errorf("BINGO_DEFAULT_WINNERS=%q: expected an error", v)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadVariantFile(t *testing.T) {
	path := writeFile(t, "corners.toml", `
name = "corners"
title = "Four corners"
policy = "pattern"
use_emotions = true
winning = ["Happy", "Loving", "Proud", "Silly"]
pattern = [[0, 0], [0, 4], [4, 0], [4, 4]]

[[symbols]]
name = "Silly"
glyph = "🤪"
color = "#fde047"
`)
	v, err := LoadVariantFile(path)
	if err != nil {
		t.Fatalf("LoadVariantFile: %v", err)
	}
	if v.Name != "corners" || len(v.Catalog) != len(game.Emotions)+1 || len(v.Pattern) != 4 {
		t.Fatalf("unexpected variant: name=%q catalog=%d pattern=%d", v.Name, len(v.Catalog), len(v.Pattern))
	}
	if !v.InPattern(4, 4) || !v.IsWinningSymbol("Silly") {
		t.Errorf("variant not indexed")
	}

	g, err := game.NewGenerator(v, game.NewSeededRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.GenerateBatch(10); err != nil {
		t.Errorf("GenerateBatch with a file variant: %v", err)
	}
}

func TestLoadVariantFileInvalid(t *testing.T) {
	path := writeFile(t, "bad.toml", `
name = "bad"
policy = "pattern"
winning = ["Happy"]
pattern = [[0, 0], [1], [0, 1]]
`)
	_, err := LoadVariantFile(path)
	if !errors.Is(err, game.ErrInvalidVariant) {
		t.Fatalf("expected ErrInvalidVariant, got %v", err)
	}
	for _, want := range []string{"pattern entry #2", "at least 25", "winning symbol \"Happy\" is not in the catalog"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadVariantFileMissing(t *testing.T) {
	if _, err := LoadVariantFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestCLIConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := LoadCLIConfig()
	if err != nil {
		t.Fatalf("LoadCLIConfig without file: %v", err)
	}
	if c != DefaultCLIConfig() {
		t.Errorf("expected defaults, got %+v", c)
	}

	want := CLIConfig{DefaultVariant: "fullcard", DefaultWinners: 3}
	if err := SaveCLIConfig(want); err != nil {
		t.Fatalf("SaveCLIConfig: %v", err)
	}
	got, err := LoadCLIConfig()
	if err != nil {
		t.Fatalf("LoadCLIConfig: %v", err)
	}
	if got != want {
		t.Errorf("LoadCLIConfig() = %+v, want %+v", got, want)
	}
}
