// Package game implements the hangman guess engine.
//
// The main type is Session, which owns the hidden target, the guessed
// characters and the reveal state of a single game.
//
// # Basic Usage
//
//	s, err := game.NewSession("Silenus")
//	if err != nil {
//	    return err
//	}
//	indices, err := s.Guess("s") // [0 6]
//	fmt.Println(s.Revealed())    // S*****s
//	fmt.Println(s.Status())      // Found 2/7 | Lost Attempts 0/5
//
// # Case Sensitivity
//
// Sessions are case-insensitive unless created WithCaseSensitive(true). In
// that mode a single guess reveals both case variants, and a guess counts as
// already tried if either its typed form or its opposite-case form was
// guessed before.
//
// # Game Over
//
// Winning and losing are predicates over Status rather than stored states.
// Guess refuses further input with ErrGameOver once either holds.
//
// A Session is not safe for concurrent use; callers serialize Guess.
package game
