package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mikkode/bingo/internal/game"
)

func newTestState(t *testing.T, variants ...*game.Variant) *ServerState {
	t.Helper()
	s, err := NewServerState(Options{DefaultWinners: game.DefaultWinners, Variants: variants})
	if err != nil {
		t.Fatalf("NewServerState: %v", err)
	}
	return s
}

func get(t *testing.T, s *ServerState, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := NewRouter(s, nil)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGenerateBatchAPI(t *testing.T) {
	s := newTestState(t)
	rec := get(t, s, "/api/batch?winners=7&variant=heart&seed=42")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp BatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Batch.Cards) != game.BatchSize || len(resp.WinnerIDs) != 7 || resp.Batch.Winners != 7 {
		t.Errorf("Unexpected batch: %d cards, winners %v", len(resp.Batch.Cards), resp.WinnerIDs)
	}
	if resp.RequestID == "" || resp.RequestID != rec.Header().Get(headerRequestID) {
		t.Errorf("Request id %q does not match header %q", resp.RequestID, rec.Header().Get(headerRequestID))
	}

	// Same seed, same cards.
	var again BatchResponse
	if err := json.Unmarshal(get(t, s, "/api/batch?winners=7&variant=heart&seed=42").Body.Bytes(), &again); err != nil {
		t.Fatal(err)
	}
	for i := range resp.Batch.Cards {
		if resp.Batch.Cards[i] != again.Batch.Cards[i] {
			t.Fatalf("Card %d differs between two requests with the same seed", i+1)
		}
	}
}

func TestGenerateBatchAPIDefaults(t *testing.T) {
	s := newTestState(t)
	rec := get(t, s, "/api/batch")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp BatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Batch.Variant != game.DefaultVariant || resp.Batch.Winners != game.DefaultWinners {
		t.Errorf("Expected the default variant and winner count, got %q with %d", resp.Batch.Variant, resp.Batch.Winners)
	}
}

func TestGenerateBatchAPIErrors(t *testing.T) {
	// Every card of this variant is a winner, so no non-winner can be drawn.
	catalog := game.Emotions[:game.CellCount]
	var names []string
	for _, sym := range catalog {
		names = append(names, sym.Name)
	}
	allWin, err := game.NewVariant(game.Variant{
		Name:    "allwin",
		Policy:  game.PolicyFullCard,
		Catalog: catalog,
		Winning: names,
	})
	if err != nil {
		t.Fatal(err)
	}
	s := newTestState(t, allWin)

	tests := []struct {
		name   string
		target string
		status int
		substr string
	}{
		{"non numeric winners", "/api/batch?winners=abc", http.StatusBadRequest, "winners"},
		{"too many winners", "/api/batch?winners=51", http.StatusBadRequest, "between 0 and 50"},
		{"negative winners", "/api/batch?winners=-1", http.StatusBadRequest, "between 0 and 50"},
		{"bad seed", "/api/batch?seed=x", http.StatusBadRequest, "seed"},
		{"unknown variant", "/api/batch?variant=nope", http.StatusNotFound, "unknown variant"},
		{"exhausted", "/api/batch?variant=allwin&winners=0", http.StatusUnprocessableEntity, "after 100 attempts"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, s, tc.target)
			if rec.Code != tc.status {
				t.Errorf("Expected status %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode error: %v", err)
			}
			if !strings.Contains(resp.Error, tc.substr) {
				t.Errorf("Expected error to contain %q, got %q", tc.substr, resp.Error)
			}
		})
	}
}

func TestListVariantsAPI(t *testing.T) {
	rec := get(t, newTestState(t), "/api/variants")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var resp []VariantResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 2 {
		t.Fatalf("Expected the 2 built-in variants, got %d", len(resp))
	}
	heart := resp[0]
	if heart.Name != "heart" || len(heart.Winning) != len(game.HeartEmotions) || len(heart.Pattern) != len(game.HeartPattern) {
		t.Errorf("Unexpected heart variant: %+v", heart)
	}
	if resp[1].Name != "fullcard" || len(resp[1].Pattern) != 0 || len(resp[1].Winning) != game.CellCount {
		t.Errorf("Unexpected fullcard variant: %+v", resp[1])
	}
}

func TestNewServerStateDuplicateVariant(t *testing.T) {
	heart, err := game.LookupVariant("heart")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewServerState(Options{Variants: []*game.Variant{heart}}); err == nil {
		t.Errorf("Expected an error when a variant shadows a built-in one")
	}
}
