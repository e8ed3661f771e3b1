package autopilot

import (
	"strings"

	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/pkg/errors"
)

// skipMove in a script leaves the direction as it is for one tick.
const skipMove = "."

// Script replays a fixed list of moves, one per tick, and hands over to the
// pilot once the list runs out.
type Script struct {
	moves []rules.Direction
	pilot *Pilot
}

// ParseMoves reads a comma separated list of directions. Names and WASD
// letters are accepted, "." keeps the current direction for a tick.
func ParseMoves(s string) ([]rules.Direction, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var moves []rules.Direction
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == skipMove {
			moves = append(moves, "")
			continue
		}
		d, ok := rules.ParseDirection(field)
		if !ok {
			return nil, errors.Errorf("move %d: unknown direction %q", i+1, field)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// NewScript returns a pilot that plays moves first.
func NewScript(moves []rules.Direction, pilot *Pilot) *Script {
	return &Script{moves: moves, pilot: pilot}
}

// Next returns the next scripted move, or asks the pilot when the script is
// done.
func (s *Script) Next(game *rules.Game, zones []rules.Zone) (rules.Direction, bool) {
	if game.Status != rules.StatusPlaying {
		return "", false
	}
	if len(s.moves) == 0 {
		return s.pilot.Next(game, zones)
	}
	d := s.moves[0]
	s.moves = s.moves[1:]
	return d, d != ""
}
