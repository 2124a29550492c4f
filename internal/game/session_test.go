package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSilenus(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession("Silenus", opts...)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		s := newSilenus(t)

		assert.False(t, s.CaseSensitive())
		assert.Equal(t, DefaultMaxMisses, s.MaxMisses())
		assert.Equal(t, "*******", s.Revealed())
		assert.Empty(t, s.Missed())
		assert.Empty(t, s.Hits())
		assert.Equal(t, Status{Found: 0, Total: 7, Missed: 0, MaxMisses: 5}, s.Status())
		assert.Equal(t, "Case sensitive: false, Max Attempts: 5, Length: 7", s.String())
	})

	t.Run("rejects non-positive max misses", func(t *testing.T) {
		_, err := NewSession("Silenus", WithMaxMisses(0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max misses")
	})

	t.Run("rejects letter placeholder", func(t *testing.T) {
		_, err := NewSession("Silenus", WithPlaceholder('x'))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "placeholder")
	})

	t.Run("rejects placeholder inside the target", func(t *testing.T) {
		for _, opts := range [][]Option{nil, {WithRevealedNonLetters()}} {
			_, err := NewSession("a*b", opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must not appear in the target")
		}

		s, err := NewSession("a*b", WithPlaceholder('_'), WithRevealedNonLetters())
		require.NoError(t, err)
		assert.Equal(t, "_*_", s.Revealed())
		assert.Equal(t, 1, s.Status().Found)
	})

	t.Run("custom placeholder", func(t *testing.T) {
		s := newSilenus(t, WithPlaceholder('_'))
		assert.Equal(t, "_______", s.Revealed())
	})

	t.Run("reveal non letters", func(t *testing.T) {
		s, err := NewSession("to be, or", WithRevealedNonLetters())
		require.NoError(t, err)

		assert.Equal(t, "** **, **", s.Revealed())
		assert.Equal(t, 3, s.Status().Found)
	})

	t.Run("empty target is already won", func(t *testing.T) {
		s, err := NewSession("")
		require.NoError(t, err)

		assert.True(t, s.Status().IsWon())
		_, err = s.Guess("a")
		assert.ErrorIs(t, err, ErrGameOver)
	})
}

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("case insensitive", func(t *testing.T) {
		s := newSilenus(t)

		for token, want := range map[string]int{"s": 2, "S": 2, "i": 1, "I": 1, "z": 0} {
			n, err := s.Count(token)
			require.NoError(t, err)
			assert.Equal(t, want, n, "count %q", token)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		s := newSilenus(t, WithCaseSensitive(true))

		for token, want := range map[string]int{"s": 1, "S": 1, "i": 1, "I": 0} {
			n, err := s.Count(token)
			require.NoError(t, err)
			assert.Equal(t, want, n, "count %q", token)
		}
	})

	t.Run("insensitive count is the sum of both cases", func(t *testing.T) {
		const target = "Silenus Sails Across the Aegean"
		insensitive, err := NewSession(target)
		require.NoError(t, err)
		sensitive, err := NewSession(target, WithCaseSensitive(true))
		require.NoError(t, err)

		for _, r := range "abcdefghijklmnopqrstuvwxyz" {
			lower := string(r)
			upper := strings.ToUpper(lower)

			got, err := insensitive.Count(lower)
			require.NoError(t, err)
			lo, err := sensitive.Count(lower)
			require.NoError(t, err)
			up, err := sensitive.Count(upper)
			require.NoError(t, err)

			assert.Equal(t, lo+up, got, "letter %q", lower)
		}
	})
}

func TestIndexFrom(t *testing.T) {
	t.Parallel()

	s := newSilenus(t)

	tests := []struct {
		token string
		start int
		want  int
	}{
		{"s", 0, 0},
		{"S", 1, 6},
		{"i", 0, 1},
		{"i", 1, 1},
		{"i", 2, -1},
		{"s", 7, -1},
		{"s", -3, 0},
	}
	for _, tt := range tests {
		got, err := s.IndexFrom(tt.token, tt.start)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "IndexFrom(%q, %d)", tt.token, tt.start)
	}

	t.Run("earliest case variant wins", func(t *testing.T) {
		s, err := NewSession("zzAbaB")
		require.NoError(t, err)

		i, err := s.IndexFrom("a", 0)
		require.NoError(t, err)
		assert.Equal(t, 2, i)

		i, err = s.IndexFrom("B", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, i)

		i, err = s.IndexFrom("b", 4)
		require.NoError(t, err)
		assert.Equal(t, 5, i)
	})

	t.Run("case sensitive finds exact case only", func(t *testing.T) {
		s := newSilenus(t, WithCaseSensitive(true))

		i, err := s.IndexFrom("s", 0)
		require.NoError(t, err)
		assert.Equal(t, 6, i)

		i, err = s.IndexFrom("I", 0)
		require.NoError(t, err)
		assert.Equal(t, -1, i)
	})
}

func TestGuess(t *testing.T) {
	t.Parallel()

	t.Run("hit reveals both cases", func(t *testing.T) {
		s := newSilenus(t)

		indices, err := s.Guess("s")
		require.NoError(t, err)

		assert.Equal(t, []int{0, 6}, indices)
		assert.Equal(t, "S*****s", s.Revealed())
		assert.Equal(t, Status{Found: 2, Total: 7, Missed: 0, MaxMisses: 5}, s.Status())
		assert.Equal(t, []rune{'s'}, s.Hits())
		assert.Empty(t, s.Missed())
	})

	t.Run("miss records the letter", func(t *testing.T) {
		s := newSilenus(t)
		_, err := s.Guess("s")
		require.NoError(t, err)

		indices, err := s.Guess("x")
		require.NoError(t, err)

		assert.Empty(t, indices)
		assert.Equal(t, []rune{'x'}, s.Missed())
		assert.Equal(t, 1, s.Status().Missed)
		assert.Equal(t, 2, s.Status().Found)
		assert.Equal(t, "S*****s", s.Revealed())
	})

	t.Run("classification is exclusive and sticky", func(t *testing.T) {
		s := newSilenus(t)

		_, err := s.Guess("s")
		require.NoError(t, err)
		_, err = s.Guess("x")
		require.NoError(t, err)

		for _, token := range []string{"s", "S"} {
			hit, err := s.WasHit(token)
			require.NoError(t, err)
			missed, err := s.WasMissed(token)
			require.NoError(t, err)
			guessed, err := s.HasBeenGuessed(token)
			require.NoError(t, err)

			assert.True(t, hit, token)
			assert.False(t, missed, token)
			assert.True(t, guessed, token)
		}

		for _, token := range []string{"x", "X"} {
			hit, err := s.WasHit(token)
			require.NoError(t, err)
			missed, err := s.WasMissed(token)
			require.NoError(t, err)

			assert.False(t, hit, token)
			assert.True(t, missed, token)
		}

		guessed, err := s.HasBeenGuessed("e")
		require.NoError(t, err)
		assert.False(t, guessed)
	})

	t.Run("repeated guesses change nothing", func(t *testing.T) {
		s := newSilenus(t)

		_, err := s.Guess("s")
		require.NoError(t, err)
		_, err = s.Guess("q")
		require.NoError(t, err)
		before := s.Status()

		for _, token := range []string{"s", "S", "q", "Q"} {
			indices, err := s.Guess(token)
			require.NoError(t, err)
			assert.Empty(t, indices, token)
		}

		assert.Equal(t, before, s.Status())
		assert.Equal(t, []rune{'s'}, s.Hits())
		assert.Equal(t, []rune{'q'}, s.Missed())
	})

	t.Run("case sensitive reveals exact case", func(t *testing.T) {
		s := newSilenus(t, WithCaseSensitive(true))

		indices, err := s.Guess("s")
		require.NoError(t, err)
		assert.Equal(t, []int{6}, indices)

		hit, err := s.WasHit("S")
		require.NoError(t, err)
		assert.False(t, hit)

		indices, err = s.Guess("S")
		require.NoError(t, err)
		assert.Equal(t, []int{0}, indices)

		indices, err = s.Guess("I")
		require.NoError(t, err)
		assert.Empty(t, indices)
		assert.Equal(t, []rune{'I'}, s.Missed())
	})

	t.Run("guessing every letter wins", func(t *testing.T) {
		s := newSilenus(t)

		for _, token := range []string{"s", "i", "l", "e", "n", "u"} {
			_, err := s.Guess(token)
			require.NoError(t, err)
		}

		st := s.Status()
		assert.Equal(t, st.Total, st.Found)
		assert.True(t, st.IsWon())
		assert.Equal(t, "Silenus", s.Revealed())

		_, err := s.Guess("z")
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Empty(t, s.Missed())
	})

	t.Run("guessing past the miss limit is refused", func(t *testing.T) {
		s := newSilenus(t, WithMaxMisses(2))

		_, err := s.Guess("x")
		require.NoError(t, err)
		_, err = s.Guess("z")
		require.NoError(t, err)
		require.True(t, s.Status().IsLost())

		indices, err := s.Guess("s")
		assert.ErrorIs(t, err, ErrGameOver)
		assert.Empty(t, indices)
		assert.Equal(t, "*******", s.Revealed())
		assert.Equal(t, 2, s.Status().Missed)
	})

	t.Run("non ascii letters fold", func(t *testing.T) {
		s, err := NewSession("Ñandú")
		require.NoError(t, err)

		indices, err := s.Guess("ñ")
		require.NoError(t, err)
		assert.Equal(t, []int{0}, indices)

		indices, err = s.Guess("Ú")
		require.NoError(t, err)
		assert.Equal(t, []int{4}, indices)
		assert.Equal(t, "Ñ***ú", s.Revealed())
	})
}

func TestCaseVariantsOnly(t *testing.T) {
	t.Parallel()

	t.Run("kelvin sign is not k", func(t *testing.T) {
		s, err := NewSession("\u212Aelvin")
		require.NoError(t, err)

		n, err := s.Count("k")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		indices, err := s.Guess("k")
		require.NoError(t, err)
		assert.Empty(t, indices)
		assert.Equal(t, []rune{'k'}, s.Missed())
	})

	t.Run("long s matches its upper case only", func(t *testing.T) {
		s := newSilenus(t)

		n, err := s.Count("ſ")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		indices, err := s.Guess("ſ")
		require.NoError(t, err)
		assert.Equal(t, []int{0}, indices)
		assert.Equal(t, "S******", s.Revealed())

		hit, err := s.WasHit("s")
		require.NoError(t, err)
		assert.False(t, hit)

		indices, err = s.Guess("s")
		require.NoError(t, err)
		assert.Equal(t, []int{6}, indices)
		assert.Equal(t, "S*****s", s.Revealed())
	})
}

func TestInvalidGuess(t *testing.T) {
	t.Parallel()

	s := newSilenus(t)
	_, err := s.Guess("s")
	require.NoError(t, err)
	before := s.Status()

	for _, token := range []string{"", "ab", "3", "$", " ", "sS"} {
		_, err := s.Guess(token)
		require.Error(t, err, token)
		assert.ErrorIs(t, err, ErrInvalidGuess, token)

		var invalid *InvalidGuessError
		require.True(t, errors.As(err, &invalid), token)
		assert.Equal(t, token, invalid.Value)

		_, err = s.Count(token)
		assert.ErrorIs(t, err, ErrInvalidGuess)
		_, err = s.IndexFrom(token, 0)
		assert.ErrorIs(t, err, ErrInvalidGuess)
		_, err = s.WasHit(token)
		assert.ErrorIs(t, err, ErrInvalidGuess)
		_, err = s.WasMissed(token)
		assert.ErrorIs(t, err, ErrInvalidGuess)
		_, err = s.HasBeenGuessed(token)
		assert.ErrorIs(t, err, ErrInvalidGuess)
	}

	assert.Equal(t, before, s.Status())
	assert.Equal(t, "S*****s", s.Revealed())
	assert.Empty(t, s.Missed())
}

func TestInvalidGuessBeforeGameOver(t *testing.T) {
	s := newSilenus(t, WithMaxMisses(1))
	_, err := s.Guess("x")
	require.NoError(t, err)

	_, err = s.Guess("42")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.NotErrorIs(t, err, ErrGameOver)
}

func TestRevealedWith(t *testing.T) {
	s := newSilenus(t)
	_, err := s.Guess("e")
	require.NoError(t, err)

	assert.Equal(t, "___e___", s.RevealedWith('_'))
	assert.Equal(t, "***e***", s.Revealed())
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newSilenus(t)
	_, err := s.Guess("x")
	require.NoError(t, err)

	missed := s.Missed()
	missed[0] = 'y'

	assert.Equal(t, []rune{'x'}, s.Missed())
}
