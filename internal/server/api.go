package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/game"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SymbolResponse describes one emotion of a variant.
type SymbolResponse struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// VariantResponse is one entry of /api/variants.
type VariantResponse struct {
	Name    string           `json:"name"`
	Title   string           `json:"title"`
	Policy  string           `json:"policy"`
	Winning []SymbolResponse `json:"winning"`
	Pattern []game.Cell      `json:"pattern,omitempty"`
	Catalog []SymbolResponse `json:"catalog"`
}

// BatchResponse is the body of /api/batch.
type BatchResponse struct {
	Batch     game.Batch `json:"batch"`
	WinnerIDs []int      `json:"winner_ids"`
	Seed      string     `json:"seed,omitempty"`
	RequestID string     `json:"request_id"`
}

func (s *ServerState) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *ServerState) ListVariants(c echo.Context) error {
	resp := make([]VariantResponse, 0, len(s.variants))
	for _, v := range s.variants {
		resp = append(resp, toVariantResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// GenerateBatch serves /api/batch?winners=W&variant=V&seed=S. Without a seed, every
// request draws a different batch.
func (s *ServerState) GenerateBatch(c echo.Context) error {
	winners := s.defaultWinners
	if raw := c.QueryParam("winners"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "winners must be an integer between 0 and 50"})
		}
		winners = parsed
	}

	variant, err := s.Variant(c.QueryParam("variant"))
	if err != nil {
		return mapError(c, err)
	}

	rng := game.NewRNG()
	seed := c.QueryParam("seed")
	if seed != "" {
		parsed, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seed must be an unsigned integer"})
		}
		rng = game.NewSeededRNG(parsed)
	}

	g, err := game.NewGenerator(variant, rng)
	if err != nil {
		return mapError(c, err)
	}
	batch, err := g.GenerateBatch(winners)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusOK, BatchResponse{
		Batch:     batch,
		WinnerIDs: batch.WinnerIDs(),
		Seed:      seed,
		RequestID: requestID,
	})
}

func toVariantResponse(v *game.Variant) VariantResponse {
	symbols := func(in []game.Symbol) []SymbolResponse {
		out := make([]SymbolResponse, len(in))
		for i, sym := range in {
			out[i] = SymbolResponse{Name: sym.Name, Glyph: sym.Glyph, Color: sym.Color}
		}
		return out
	}
	return VariantResponse{
		Name:    v.Name,
		Title:   v.Title,
		Policy:  string(v.Policy),
		Winning: symbols(v.WinningSymbols()),
		Pattern: v.SortedPattern(),
		Catalog: symbols(v.Catalog),
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	var exhausted *game.GenerationExhaustedError
	switch {
	case errors.As(err, &exhausted):
		klog.Warningf("request %s: %v", requestID, err)
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, game.ErrUnknownVariant):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, game.ErrInvalidWinnerCount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		klog.Errorf("request %s: internal error: %v", requestID, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
