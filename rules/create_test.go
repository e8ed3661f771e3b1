package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSequenceLength(t *testing.T) {
	tests := []struct {
		Level    int
		Expected int
	}{
		{Level: 1, Expected: 3},
		{Level: 2, Expected: 3},
		{Level: 3, Expected: 4},
		{Level: 6, Expected: 5},
		{Level: 9, Expected: 6},
		{Level: 100, Expected: 6},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, SequenceLength(test.Level), "level: %d", test.Level)
	}
}

func TestGeneratorDisposalSequence(t *testing.T) {
	gen := testGenerator()
	for level := 1; level < 30; level++ {
		seq := gen.DisposalSequence(level)
		require.Len(t, seq, SequenceLength(level))
		for _, c := range seq {
			require.True(t, IsPaletteColor(c), "color: %s", c)
		}
	}
}

func TestGeneratorSeeded(t *testing.T) {
	a := NewGenerator(7)
	b := NewGenerator(7)
	require.Equal(t, a.DisposalSequence(5), b.DisposalSequence(5))
}

func TestGeneratorFood(t *testing.T) {
	gen := testGenerator()
	food := []Food{}
	for i := 0; i < 200; i++ {
		f, err := gen.Food(food)
		require.NoError(t, err)
		require.Zero(t, f.X%GridSize)
		require.Zero(t, f.Y%GridSize)
		require.True(t, f.X >= FoodMargin && f.X < BoardWidth-FoodMargin, "x: %d", f.X)
		require.True(t, f.Y >= FoodMargin && f.Y < BoardHeight-FoodMargin, "y: %d", f.Y)
		require.False(t, foodAt(food, f.Point))
		require.True(t, IsPaletteColor(f.Color))
		for _, o := range food {
			require.NotEqual(t, o.ID, f.ID)
		}
		food = append(food, f)
	}
}

func TestGeneratorFoodBoardFull(t *testing.T) {
	food := []Food{}
	for x := FoodMargin; x < BoardWidth-FoodMargin; x += GridSize {
		for y := FoodMargin; y < BoardHeight-FoodMargin; y += GridSize {
			food = append(food, Food{Point: Point{X: x, Y: y}, Color: ColorRed})
		}
	}
	require.Len(t, food, 600)

	_, err := testGenerator().Food(food)
	require.Error(t, err)
	require.Equal(t, ErrNoFreeCell, errors.Cause(err))
}

func TestGeneratorFoodDuplicateIDs(t *testing.T) {
	gen := NewGenerator(1).WithIDs(func() string { return "same" })
	_, err := gen.Food([]Food{{Point: Point{X: 0, Y: 0}, ID: "same"}})
	require.Error(t, err)
}

func TestNewGeneratorUsesUUIDs(t *testing.T) {
	gen := NewTimeSeededGenerator()
	f, err := gen.Food(nil)
	require.NoError(t, err)
	require.Len(t, f.ID, 36)
}

func TestInitializeDisposalZones(t *testing.T) {
	zones := InitializeDisposalZones()
	require.Len(t, zones, 4)
	for _, z := range zones {
		require.True(t, z.Active)
	}
	require.NoError(t, ValidateZones(zones))
	require.True(t, zones[0].Contains(Point{X: 50, Y: 50}))
	require.True(t, zones[0].Contains(Point{X: 140, Y: 100}))
	require.False(t, zones[0].Contains(Point{X: 150, Y: 100}))
	require.False(t, zones[0].Contains(Point{X: 140, Y: 110}))
	require.True(t, zones[3].Contains(Point{X: 740, Y: 540}))
}

func TestValidateZones(t *testing.T) {
	overlapping := []Zone{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 80, Y: 80, Width: 100, Height: 100},
	}
	err := ValidateZones(overlapping)
	require.Error(t, err)
	require.Equal(t, ErrInvalidZones, errors.Cause(err))

	offBoard := []Zone{{X: 760, Y: 0, Width: 100, Height: 60}}
	require.Equal(t, ErrInvalidZones, errors.Cause(ValidateZones(offBoard)))

	empty := []Zone{{X: 0, Y: 0}}
	require.Equal(t, ErrInvalidZones, errors.Cause(ValidateZones(empty)))

	touching := []Zone{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 100, Y: 0, Width: 100, Height: 100},
	}
	require.NoError(t, ValidateZones(touching))
}
