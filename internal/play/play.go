package play

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSceneNotFound is returned when a scene identifier does not resolve.
var ErrSceneNotFound = errors.New("scene not found")

// Play is the root of a parsed play.
type Play struct {
	Title string // Play title
	Acts  []*Act // Acts in document order
}

// Act is an ordered run of scenes.
type Act struct {
	Number int      // 1-based act number from the source; need not be contiguous
	Scenes []*Scene // Scenes in document order
}

// Scene is an ordered sequence of lines. Speeches and stage directions are
// interleaved in document order.
type Scene struct {
	Act    int    // Owning act number
	Number int    // Scene number within the act
	Title  string // Scene heading
	Lines  []Line // Lines in document order, strictly increasing Number
}

// Line is either a *Speech or a *StageDirection. The set of variants is
// closed; switch on the concrete type.
type Line interface {
	Text() string
	Number() int
	line()
}

// Speech is a line of dialogue.
type Speech struct {
	Speaker string
	Content string
	LineNo  int
}

func (s *Speech) Text() string { return s.Content }
func (s *Speech) Number() int  { return s.LineNo }
func (*Speech) line()          {}

// StageDirection is a line of narrative direction.
type StageDirection struct {
	Content string
	LineNo  int
}

func (d *StageDirection) Text() string { return d.Content }
func (d *StageDirection) Number() int  { return d.LineNo }
func (*StageDirection) line()          {}

// ID returns the stable identifier "<act>.<scene>".
func (s *Scene) ID() string {
	return fmt.Sprintf("%d.%d", s.Act, s.Number)
}

// Scenes returns every scene in the play in document order.
func (p *Play) Scenes() []*Scene {
	var out []*Scene
	for _, a := range p.Acts {
		out = append(out, a.Scenes...)
	}
	return out
}

// Scene looks up a scene by its identifier.
func (p *Play) Scene(id string) (*Scene, error) {
	act, scene, err := ParseSceneID(id)
	if err != nil {
		return nil, err
	}
	for _, a := range p.Acts {
		if a.Number != act {
			continue
		}
		for _, s := range a.Scenes {
			if s.Number == scene {
				return s, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSceneNotFound, id)
}

// ParseSceneID splits "<act>.<scene>" into its numbers.
func ParseSceneID(id string) (act, scene int, err error) {
	a, s, ok := strings.Cut(strings.TrimSpace(id), ".")
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed id %q", ErrSceneNotFound, id)
	}
	act, err = strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed act in %q", ErrSceneNotFound, id)
	}
	scene, err = strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed scene in %q", ErrSceneNotFound, id)
	}
	return act, scene, nil
}

// Speakers returns the distinct speakers of a scene in order of first
// appearance.
func (s *Scene) Speakers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range s.Lines {
		switch v := l.(type) {
		case *Speech:
			if !seen[v.Speaker] {
				seen[v.Speaker] = true
				out = append(out, v.Speaker)
			}
		case *StageDirection:
		}
	}
	return out
}

// Validate checks the invariants a loader is expected to guarantee.
func (p *Play) Validate() error {
	for _, a := range p.Acts {
		if a.Number <= 0 {
			return fmt.Errorf("act %d: act number must be positive", a.Number)
		}
		for _, s := range a.Scenes {
			if s.Act != a.Number {
				return fmt.Errorf("scene %s: act back-reference does not match act %d", s.ID(), a.Number)
			}
			prev := 0
			for i, l := range s.Lines {
				if l == nil {
					return fmt.Errorf("scene %s: line %d is empty", s.ID(), i)
				}
				if l.Number() <= prev {
					return fmt.Errorf("scene %s: line number %d does not follow %d", s.ID(), l.Number(), prev)
				}
				prev = l.Number()
				if sp, ok := l.(*Speech); ok && strings.TrimSpace(sp.Speaker) == "" {
					return fmt.Errorf("scene %s: speech at line %d has no speaker", s.ID(), l.Number())
				}
			}
		}
	}
	return nil
}
