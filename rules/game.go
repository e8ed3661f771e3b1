package rules

import "time"

// Board geometry and scoring. These are the only tuning values of the game,
// difficulty only changes through the level curve.
const (
	// GridSize is the side of one board cell, every position is a multiple of it
	GridSize int32 = 20
	// BoardWidth and BoardHeight bound the playable area
	BoardWidth  int32 = 800
	BoardHeight int32 = 600
	// FoodMargin is the inset from the board edges food is never placed in
	FoodMargin int32 = 100

	StartLives   = 3
	InitialSpeed = 150
	MinSpeed     = 50
	SpeedStep    = 10

	FoodScore     = 10
	DisposalScore = 25

	MaxFood = 8
)

var (
	startHead      = Point{X: 400, Y: 300}
	startDirection = Point{X: GridSize, Y: 0}
)

// Food is a collectible colored item on the board.
type Food struct {
	Point
	Color Color
	ID    string
}

// Game is the whole state of one session. It is owned by a single writer,
// readers should work on a Clone.
type Game struct {
	// Snake is ordered head first
	Snake []Point
	// Direction is the delta applied on the next tick
	Direction Point
	// Heading is the delta the snake moved on the last tick
	Heading Point

	Food             []Food
	Score            int
	Lives            int
	Status           Status
	Inventory        []Color
	DisposalSequence []Color
	// Speed is the tick interval in milliseconds
	Speed int
	Level int
	Tick  int64

	GameOver *GameOver
}

// NewGame returns a game sitting in the menu.
func NewGame() *Game {
	return &Game{
		Snake:     []Point{startHead},
		Direction: startDirection,
		Heading:   startDirection,
		Lives:     StartLives,
		Status:    StatusMenu,
		Speed:     InitialSpeed,
		Level:     1,
	}
}

// Head returns the first point in the snake
func (g *Game) Head() Point {
	return g.Snake[0]
}

// TickInterval is the time the scheduler waits between two ticks.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(g.Speed) * time.Millisecond
}

// RequiredFood is the number of food items kept on the board at the
// current level.
func (g *Game) RequiredFood() int {
	return requiredFood(g.Level)
}

func requiredFood(level int) int {
	n := 3 + level/2
	if n > MaxFood {
		return MaxFood
	}
	return n
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.Snake = append([]Point(nil), g.Snake...)
	c.Food = append([]Food(nil), g.Food...)
	c.Inventory = append([]Color(nil), g.Inventory...)
	c.DisposalSequence = append([]Color(nil), g.DisposalSequence...)
	if g.GameOver != nil {
		over := *g.GameOver
		c.GameOver = &over
	}
	return &c
}

func inBounds(p Point) bool {
	return p.X >= 0 && p.X < BoardWidth && p.Y >= 0 && p.Y < BoardHeight
}
