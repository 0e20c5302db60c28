package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWinnerCount = errors.New("winner count must be between 0 and 50")
	ErrUnknownVariant     = errors.New("unknown variant")
	ErrInvalidVariant     = errors.New("invalid variant")
)

// GenerationExhaustedError is returned when a non-winner card kept coming out
// winning for MaxAttempts attempts.
type GenerationExhaustedError struct {
	CardID   int
	Attempts int
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("failed to generate non-winning card #%d after %d attempts: the random generation keeps creating winning combinations",
		e.CardID, e.Attempts)
}
