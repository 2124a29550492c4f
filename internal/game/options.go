package game

import (
	"github.com/charmbracelet/log"
)

const (
	// DefaultMaxMisses is the number of misses allowed when no option overrides it.
	DefaultMaxMisses = 5

	// DefaultPlaceholder marks hidden positions in the revealed text.
	DefaultPlaceholder = '*'
)

// Option configures a Session during creation.
type Option func(*sessionConfig)

type sessionConfig struct {
	caseSensitive    bool
	maxMisses        int
	placeholder      rune
	revealNonLetters bool
	logger           *log.Logger
}

func defaultSessionConfig() *sessionConfig {
	return &sessionConfig{
		maxMisses:   DefaultMaxMisses,
		placeholder: DefaultPlaceholder,
	}
}

// WithCaseSensitive makes guesses match only their exact case.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(c *sessionConfig) {
		c.caseSensitive = caseSensitive
	}
}

// WithMaxMisses sets the number of misses that loses the game.
// Must be at least 1.
func WithMaxMisses(n int) Option {
	return func(c *sessionConfig) {
		c.maxMisses = n
	}
}

// WithPlaceholder sets the marker used for hidden positions. It must not be a letter.
func WithPlaceholder(r rune) Option {
	return func(c *sessionConfig) {
		c.placeholder = r
	}
}

// WithRevealedNonLetters uncovers spaces, digits and punctuation up front.
// Only letters can be guessed, so phrases are unwinnable without it.
func WithRevealedNonLetters() Option {
	return func(c *sessionConfig) {
		c.revealNonLetters = true
	}
}

// WithLogger sets the logger used for debug output. Defaults to discarding.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}
