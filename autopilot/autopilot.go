// Package autopilot is a greedy input source for headless games. It walks
// toward food of the color the disposal sequence needs next and carries it
// to the closest zone, avoiding walls, its own body and pockets too small to
// fit in. Food of any other color is treated as an obstacle.
package autopilot

import (
	"github.com/battlesnakeio/colorsnake/rules"
)

const (
	penaltyWrongFood = 1000
	penaltyWrongZone = 5000
	penaltyPocket    = 10000
)

var directions = []rules.Direction{
	rules.DirectionUp,
	rules.DirectionRight,
	rules.DirectionDown,
	rules.DirectionLeft,
}

// Pilot picks moves for the snake. It is stateless.
type Pilot struct{}

// New returns a pilot.
func New() *Pilot {
	return &Pilot{}
}

// Next returns the direction for the next tick. It reports false when the
// game is not playing.
func (p *Pilot) Next(game *rules.Game, zones []rules.Zone) (rules.Direction, bool) {
	if game.Status != rules.StatusPlaying {
		return "", false
	}

	target, hasTarget := p.target(game, zones)
	head := game.Head()

	best := rules.Direction("")
	bestScore := 0
	for _, d := range directions {
		v, _ := d.Vector()
		if reverses(v, game.Heading) {
			continue
		}
		next := head.Add(v)
		if !free(game.Snake, next) {
			continue
		}

		score := 0
		if hasTarget {
			score += distance(next, target)
		}
		score += p.penalty(game, zones, next)
		if best == "" || score < bestScore {
			best = d
			bestScore = score
		}
	}

	if best == "" {
		// boxed in, keep going and let the game end
		d, ok := rules.DirectionOf(game.Heading)
		return d, ok
	}
	return best, true
}

func (p *Pilot) target(game *rules.Game, zones []rules.Zone) (rules.Point, bool) {
	head := game.Head()
	if carryingNext(game) {
		return nearestZoneCell(head, zones)
	}

	// without the wanted color on the board there is nothing worth eating,
	// the snake wanders until it shows up
	wanted, ok := wantedColor(game)
	if !ok {
		return rules.Point{}, false
	}
	return nearestFood(head, game.Food, wanted)
}

func (p *Pilot) penalty(game *rules.Game, zones []rules.Zone, next rules.Point) int {
	penalty := 0

	// a wrong color is never disposed, once it reaches the front of the
	// inventory the game cannot progress
	wanted, ok := wantedColor(game)
	for _, f := range game.Food {
		if f.Point.Equal(next) && (!ok || f.Color != wanted) {
			penalty += penaltyWrongFood
		}
	}

	if len(game.Inventory) > 0 && !carryingNext(game) {
		for _, z := range zones {
			if z.Active && z.Contains(next) {
				penalty += penaltyWrongZone
			}
		}
	}

	body := append([]rules.Point{next}, game.Snake[:len(game.Snake)-1]...)
	if space(next, body, len(game.Snake)+1) <= len(game.Snake) {
		penalty += penaltyPocket
	}
	return penalty
}

// carryingNext reports whether the front of the inventory is the color the
// disposal sequence expects.
func carryingNext(game *rules.Game) bool {
	return len(game.Inventory) > 0 && len(game.DisposalSequence) > 0 &&
		game.Inventory[0] == game.DisposalSequence[0]
}

// wantedColor is the next color worth collecting, the one that would follow
// the inventory in the disposal sequence.
func wantedColor(game *rules.Game) (rules.Color, bool) {
	if len(game.Inventory) >= len(game.DisposalSequence) {
		return "", false
	}
	for i, c := range game.Inventory {
		if game.DisposalSequence[i] != c {
			return "", false
		}
	}
	return game.DisposalSequence[len(game.Inventory)], true
}

func nearestFood(from rules.Point, food []rules.Food, color rules.Color) (rules.Point, bool) {
	found := false
	var best rules.Point
	for _, f := range food {
		if f.Color != color {
			continue
		}
		if !found || distance(from, f.Point) < distance(from, best) {
			best = f.Point
			found = true
		}
	}
	return best, found
}

func nearestZoneCell(from rules.Point, zones []rules.Zone) (rules.Point, bool) {
	found := false
	var best rules.Point
	for _, z := range zones {
		if !z.Active {
			continue
		}
		cell := rules.Point{
			X: clamp(from.X, alignUp(z.X), alignDown(z.X+z.Width-1)),
			Y: clamp(from.Y, alignUp(z.Y), alignDown(z.Y+z.Height-1)),
		}
		if !found || distance(from, cell) < distance(from, best) {
			best = cell
			found = true
		}
	}
	return best, found
}

func free(snake []rules.Point, p rules.Point) bool {
	if p.X < 0 || p.X >= rules.BoardWidth || p.Y < 0 || p.Y >= rules.BoardHeight {
		return false
	}
	for _, s := range snake {
		if s.Equal(p) {
			return false
		}
	}
	return true
}

// space counts the cells reachable from start, stopping at limit.
func space(start rules.Point, body []rules.Point, limit int) int {
	seen := map[rules.Point]bool{start: true}
	queue := []rules.Point{start}
	for len(queue) > 0 && len(seen) < limit {
		p := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			v, _ := d.Vector()
			n := p.Add(v)
			if seen[n] || !free(body, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func reverses(v, heading rules.Point) bool {
	return v.X == -heading.X && v.Y == -heading.Y
}

func distance(a, b rules.Point) int {
	return int(abs(a.X-b.X)+abs(a.Y-b.Y)) / int(rules.GridSize)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func alignUp(v int32) int32 {
	return (v + rules.GridSize - 1) / rules.GridSize * rules.GridSize
}

func alignDown(v int32) int32 {
	return v / rules.GridSize * rules.GridSize
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
