package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGuess matches any *InvalidGuessError via errors.Is.
	ErrInvalidGuess = errors.New("game: invalid guess")

	// ErrGameOver is returned by Guess once the session is won or lost.
	ErrGameOver = errors.New("game: game is over")
)

// InvalidGuessError reports a guess token that is not exactly one letter.
type InvalidGuessError struct {
	Value string
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("invalid guess character: %q", e.Value)
}

// Is lets errors.Is(err, ErrInvalidGuess) match.
func (e *InvalidGuessError) Is(target error) bool {
	return target == ErrInvalidGuess
}
