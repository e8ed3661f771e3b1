package rules

import "github.com/pkg/errors"

// ErrInvalidZones is returned when disposal zones overlap or leave the board.
var ErrInvalidZones = errors.New("rules: invalid disposal zones")

const (
	zoneWidth  int32 = 100
	zoneHeight int32 = 60
)

// Zone is a fixed rectangle where inventory items are checked against the
// disposal sequence.
type Zone struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
	Active bool
}

// Contains reports whether p lies inside the zone, right and bottom edges
// excluded.
func (z Zone) Contains(p Point) bool {
	return p.X >= z.X && p.X < z.X+z.Width &&
		p.Y >= z.Y && p.Y < z.Y+z.Height
}

func (z Zone) overlaps(o Zone) bool {
	return z.X < o.X+o.Width && o.X < z.X+z.Width &&
		z.Y < o.Y+o.Height && o.Y < z.Y+z.Height
}

// InitializeDisposalZones returns the four corner zones, all active.
func InitializeDisposalZones() []Zone {
	return []Zone{
		{X: 50, Y: 50, Width: zoneWidth, Height: zoneHeight, Active: true},
		{X: 650, Y: 50, Width: zoneWidth, Height: zoneHeight, Active: true},
		{X: 50, Y: 490, Width: zoneWidth, Height: zoneHeight, Active: true},
		{X: 650, Y: 490, Width: zoneWidth, Height: zoneHeight, Active: true},
	}
}

// ValidateZones checks that zones lie on the board and do not overlap, so at
// most one zone can contain the head on any tick.
func ValidateZones(zones []Zone) error {
	for i, z := range zones {
		if z.Width <= 0 || z.Height <= 0 {
			return errors.Wrapf(ErrInvalidZones, "zone %d is empty", i)
		}
		if z.X < 0 || z.Y < 0 || z.X+z.Width > BoardWidth || z.Y+z.Height > BoardHeight {
			return errors.Wrapf(ErrInvalidZones, "zone %d leaves the board", i)
		}
		for j := i + 1; j < len(zones); j++ {
			if z.overlaps(zones[j]) {
				return errors.Wrapf(ErrInvalidZones, "zone %d overlaps zone %d", i, j)
			}
		}
	}
	return nil
}

func zoneAt(zones []Zone, p Point) (int, bool) {
	for i, z := range zones {
		if z.Active && z.Contains(p) {
			return i, true
		}
	}
	return -1, false
}
