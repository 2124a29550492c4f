package game

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Session holds the state of a single hangman game. The target and settings
// are fixed at creation; the guess collections only ever grow.
type Session struct {
	target        []rune
	caseSensitive bool
	maxMisses     int
	placeholder   rune
	logger        *log.Logger

	missed      []rune
	asserted    []rune
	revealed    map[int]struct{}
	revealState []rune
}

// NewSession creates a session for target. It fails only on invalid options.
func NewSession(target string, opts ...Option) (*Session, error) {
	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxMisses < 1 {
		return nil, fmt.Errorf("max misses must be at least 1, got %d", cfg.maxMisses)
	}
	if unicode.IsLetter(cfg.placeholder) {
		return nil, fmt.Errorf("placeholder %q must not be a letter", cfg.placeholder)
	}
	if strings.ContainsRune(target, cfg.placeholder) {
		return nil, fmt.Errorf("placeholder %q must not appear in the target", cfg.placeholder)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runes := []rune(target)
	s := &Session{
		target:        runes,
		caseSensitive: cfg.caseSensitive,
		maxMisses:     cfg.maxMisses,
		placeholder:   cfg.placeholder,
		logger:        logger.WithPrefix("game"),
		revealed:      make(map[int]struct{}, len(runes)),
		revealState:   make([]rune, len(runes)),
	}
	for i := range s.revealState {
		s.revealState[i] = s.placeholder
	}

	if cfg.revealNonLetters {
		for i, r := range runes {
			if !unicode.IsLetter(r) {
				s.reveal(i)
			}
		}
	}

	s.logger.Debug("Session created", "length", len(runes), "case_sensitive", s.caseSensitive, "max_misses", s.maxMisses)
	return s, nil
}

// Guess applies a single-letter guess and returns the indices it revealed,
// in ascending order. A miss returns an empty result and records the letter.
// Guessing a letter that was already classified changes nothing.
func (s *Session) Guess(token string) ([]int, error) {
	r, err := parseGuess(token)
	if err != nil {
		return nil, err
	}
	if s.Status().IsOver() {
		return nil, ErrGameOver
	}

	if s.wasHit(r) || s.wasMissed(r) {
		s.logger.Debug("Repeated guess", "char", string(r))
		return nil, nil
	}

	if s.count(r) == 0 {
		s.missed = append(s.missed, r)
		s.logger.Debug("Miss", "char", string(r), "missed", len(s.missed), "max_misses", s.maxMisses)
		return nil, nil
	}

	s.asserted = append(s.asserted, r)
	var indices []int
	for i := s.indexFrom(r, 0); i >= 0; i = s.indexFrom(r, i+1) {
		if s.reveal(i) {
			indices = append(indices, i)
		}
	}

	s.logger.Debug("Hit", "char", string(r), "indices", indices)
	return indices, nil
}

// Count returns how many positions of the target match token.
func (s *Session) Count(token string) (int, error) {
	r, err := parseGuess(token)
	if err != nil {
		return 0, err
	}
	return s.count(r), nil
}

// IndexFrom returns the first position at or after start whose character
// matches token, or -1. When case-insensitive the earliest position of either
// case variant wins.
func (s *Session) IndexFrom(token string, start int) (int, error) {
	r, err := parseGuess(token)
	if err != nil {
		return -1, err
	}
	return s.indexFrom(r, start), nil
}

// WasHit reports whether token was already guessed and matched.
func (s *Session) WasHit(token string) (bool, error) {
	r, err := parseGuess(token)
	if err != nil {
		return false, err
	}
	return s.wasHit(r), nil
}

// WasMissed reports whether token was already guessed and missed.
func (s *Session) WasMissed(token string) (bool, error) {
	r, err := parseGuess(token)
	if err != nil {
		return false, err
	}
	return s.wasMissed(r), nil
}

// HasBeenGuessed reports whether token was already tried, hit or miss.
func (s *Session) HasBeenGuessed(token string) (bool, error) {
	r, err := parseGuess(token)
	if err != nil {
		return false, err
	}
	return s.wasHit(r) || s.wasMissed(r), nil
}

// Revealed renders the target with hidden positions replaced by the
// session placeholder.
func (s *Session) Revealed() string {
	return string(s.revealState)
}

// RevealedWith renders the target using placeholder for hidden positions.
func (s *Session) RevealedWith(placeholder rune) string {
	out := make([]rune, len(s.target))
	for i, r := range s.target {
		if _, ok := s.revealed[i]; ok {
			out[i] = r
		} else {
			out[i] = placeholder
		}
	}
	return string(out)
}

// Status returns a snapshot of the session progress.
func (s *Session) Status() Status {
	return Status{
		Found:     len(s.revealed),
		Total:     len(s.target),
		Missed:    len(s.missed),
		MaxMisses: s.maxMisses,
	}
}

// Target returns the string being guessed.
func (s *Session) Target() string {
	return string(s.target)
}

// CaseSensitive reports whether guesses must match case exactly.
func (s *Session) CaseSensitive() bool {
	return s.caseSensitive
}

// MaxMisses returns the number of misses that loses the game.
func (s *Session) MaxMisses() int {
	return s.maxMisses
}

// Missed returns the missed letters in guess order.
func (s *Session) Missed() []rune {
	return slices.Clone(s.missed)
}

// Hits returns the letters that matched, as typed, in guess order.
func (s *Session) Hits() []rune {
	return slices.Clone(s.asserted)
}

func (s *Session) String() string {
	return fmt.Sprintf("Case sensitive: %t, Max Attempts: %d, Length: %d",
		s.caseSensitive, s.maxMisses, len(s.target))
}

func (s *Session) count(r rune) int {
	n := 0
	for _, t := range s.target {
		if s.matches(t, r) {
			n++
		}
	}
	return n
}

func (s *Session) indexFrom(r rune, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(s.target); i++ {
		if s.matches(s.target[i], r) {
			return i
		}
	}
	return -1
}

func (s *Session) wasHit(r rune) bool {
	return s.collected(s.asserted, r)
}

func (s *Session) wasMissed(r rune) bool {
	return s.collected(s.missed, r)
}

func (s *Session) collected(list []rune, r rune) bool {
	for _, c := range list {
		if s.matches(c, r) {
			return true
		}
	}
	return false
}

// reveal uncovers position i and reports whether it was hidden before.
func (s *Session) reveal(i int) bool {
	if _, ok := s.revealed[i]; ok {
		return false
	}
	s.revealed[i] = struct{}{}
	s.revealState[i] = s.target[i]
	return true
}

// matches reports whether r, a target or previously guessed rune, counts as
// guess g: its exact form, or its upper or lower case when case-insensitive.
func (s *Session) matches(r, g rune) bool {
	if r == g {
		return true
	}
	if s.caseSensitive {
		return false
	}
	return r == unicode.ToUpper(g) || r == unicode.ToLower(g)
}

func parseGuess(token string) (rune, error) {
	if utf8.RuneCountInString(token) != 1 {
		return 0, &InvalidGuessError{Value: token}
	}
	r, _ := utf8.DecodeRuneInString(token)
	if !unicode.IsLetter(r) {
		return 0, &InvalidGuessError{Value: token}
	}
	return r, nil
}
