package rules

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// MaxPlacementAttempts bounds the retries of a single food placement.
const MaxPlacementAttempts = 1000

// ErrNoFreeCell is returned when food could not be placed on a free cell.
var ErrNoFreeCell = errors.New("rules: no unoccupied cell left for food")

const (
	maxSequenceLength = 6
	minSequenceLength = 3
)

// Generator produces random food, disposal sequences and IDs. It is not safe
// for concurrent use, the controller owns the only instance of a session.
type Generator struct {
	rand  *rand.Rand
	newID func() string
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		newID: func() string {
			return uuid.NewV4().String()
		},
	}
}

// NewTimeSeededGenerator returns a generator seeded from the clock.
func NewTimeSeededGenerator() *Generator {
	return NewGenerator(time.Now().UnixNano())
}

// WithIDs replaces the source of food identifiers.
func (gen *Generator) WithIDs(newID func() string) *Generator {
	gen.newID = newID
	return gen
}

func (gen *Generator) color() Color {
	return defaultPalette[gen.rand.Intn(len(defaultPalette))]
}

// SequenceLength is the disposal sequence length for a level.
func SequenceLength(level int) int {
	n := minSequenceLength + level/3
	if n > maxSequenceLength {
		return maxSequenceLength
	}
	return n
}

// DisposalSequence returns the colors that must be disposed, in order, to
// clear the given level.
func (gen *Generator) DisposalSequence(level int) []Color {
	sequence := make([]Color, SequenceLength(level))
	for i := range sequence {
		sequence[i] = gen.color()
	}
	return sequence
}

// Food returns a new food item on a grid cell of the inset region that is
// not already taken by existing food.
func (gen *Generator) Food(existing []Food) (Food, error) {
	cols := (BoardWidth - 2*FoodMargin) / GridSize
	rows := (BoardHeight - 2*FoodMargin) / GridSize

	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		p := Point{
			X: gen.rand.Int31n(cols)*GridSize + FoodMargin,
			Y: gen.rand.Int31n(rows)*GridSize + FoodMargin,
		}
		if foodAt(existing, p) {
			continue
		}
		id, err := gen.uniqueID(existing)
		if err != nil {
			return Food{}, err
		}
		return Food{Point: p, Color: gen.color(), ID: id}, nil
	}
	return Food{}, errors.Wrapf(ErrNoFreeCell, "gave up after %d attempts with %d food on the board",
		MaxPlacementAttempts, len(existing))
}

func (gen *Generator) uniqueID(existing []Food) (string, error) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		id := gen.newID()
		taken := false
		for _, f := range existing {
			if f.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id, nil
		}
	}
	return "", errors.New("rules: unable to generate a unique food id")
}

func foodAt(food []Food, p Point) bool {
	for _, f := range food {
		if f.Point.Equal(p) {
			return true
		}
	}
	return false
}
