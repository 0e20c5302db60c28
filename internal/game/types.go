package game

import (
	"fmt"
	"strings"
)

// Cell is a (row, column) coordinate of a grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid holds the symbol names of a card, row-major. An empty string is an empty cell.
type Grid [GridSize][GridSize]string

// Card is one printed bingo card.
type Card struct {
	ID       int  `json:"id"` // 1-based
	Grid     Grid `json:"grid"`
	IsWinner bool `json:"is_winner"`
}

// Batch is the full set of cards produced by one generation.
type Batch struct {
	ID      string `json:"id"`
	Variant string `json:"variant"`
	Winners int    `json:"winners"`
	Cards   []Card `json:"cards"` // Sorted by ID
}

// WinnerIDs returns the ids of the winner cards, in ascending order.
func (b *Batch) WinnerIDs() []int {
	ids := make([]int, 0, b.Winners)
	for _, c := range b.Cards {
		if c.IsWinner {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Card returns the card with the given id, or nil.
func (b *Batch) Card(id int) *Card {
	for i := range b.Cards {
		if b.Cards[i].ID == id {
			return &b.Cards[i]
		}
	}
	return nil
}

// Empty reports whether the batch holds no cards.
func (b *Batch) Empty() bool {
	return b == nil || len(b.Cards) == 0
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		fmt.Fprintf(&sb, "%q\n", row)
	}
	return sb.String()
}
