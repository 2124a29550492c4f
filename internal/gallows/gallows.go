// Package gallows loads the ASCII-art stages drawn as a hangman game
// progresses and picks the stage for a given number of misses.
package gallows

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator splits stages in an art resource.
const Separator = ","

// ErrNoStages is returned when a resource contains no drawable stage.
var ErrNoStages = errors.New("gallows: no stages")

//go:embed default.txt
var defaultArt string

// Art is an ordered sequence of drawings, from the empty gallows to the
// complete figure.
type Art struct {
	stages []string
}

// Default returns the built-in art.
func Default() Art {
	art, err := Parse(defaultArt)
	if err != nil {
		panic("embedded gallows art is invalid: " + err.Error())
	}
	return art
}

// Parse splits src on Separator. Blank segments are dropped and the
// surrounding newlines of each stage are trimmed.
func Parse(src string) (Art, error) {
	var stages []string
	for _, seg := range strings.Split(src, Separator) {
		seg = strings.Trim(seg, "\r\n")
		if strings.TrimSpace(seg) == "" {
			continue
		}
		stages = append(stages, seg)
	}
	if len(stages) == 0 {
		return Art{}, ErrNoStages
	}
	return Art{stages: stages}, nil
}

// Load reads and parses an art resource.
func Load(r io.Reader) (Art, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Art{}, fmt.Errorf("failed to read art: %w", err)
	}
	return Parse(string(data))
}

// LoadFile reads an art resource from disk.
func LoadFile(path string) (Art, error) {
	f, err := os.Open(path)
	if err != nil {
		return Art{}, fmt.Errorf("failed to open art file: %w", err)
	}
	defer f.Close()

	art, err := Load(f)
	if err != nil {
		return Art{}, fmt.Errorf("%s: %w", path, err)
	}
	return art, nil
}

// Len returns the number of stages.
func (a Art) Len() int {
	return len(a.stages)
}

// Index maps a miss count onto a stage index. Zero misses draws the first
// stage, reaching maxMisses draws the last, and the stages in between are
// spread linearly.
func (a Art) Index(missed, maxMisses int) int {
	last := len(a.stages) - 1
	switch {
	case last < 0:
		return -1
	case missed <= 0:
		return 0
	case maxMisses <= 0, missed >= maxMisses:
		return last
	}
	return missed * last / maxMisses
}

// Stage returns the drawing for missed out of maxMisses.
func (a Art) Stage(missed, maxMisses int) string {
	i := a.Index(missed, maxMisses)
	if i < 0 {
		return ""
	}
	return a.stages[i]
}
