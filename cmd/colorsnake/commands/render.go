package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorCyan
	zoneRune     = '░'
)

const (
	left = 2
	top  = 3
	// cellWidth keeps board cells roughly square in a terminal
	cellWidth = 2
	cols      = int(rules.BoardWidth / rules.GridSize)
	rows      = int(rules.BoardHeight / rules.GridSize)
)

var colorAttrs = map[rules.Color]termbox.Attribute{
	rules.ColorRed:    termbox.ColorRed,
	rules.ColorBlue:   termbox.ColorBlue,
	rules.ColorGreen:  termbox.ColorGreen,
	rules.ColorYellow: termbox.ColorYellow,
	rules.ColorOrange: termbox.ColorRed | termbox.AttrBold,
	rules.ColorPurple: termbox.ColorMagenta,
}

func render(game *rules.Game, zones []rules.Zone) error {
	if game == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	renderHUD(game)
	renderBoard()
	renderZones(game, zones)
	renderFood(game.Food)
	renderSnake(game.Snake)
	renderOverlay(overlayText(game))

	return termbox.Flush()
}

func renderHUD(game *rules.Game) {
	tbprint(left, 0, defaultColor, defaultColor, hudText(game))

	x := tbprint(left, 1, defaultColor, defaultColor, "Inventory: ")
	for _, c := range game.Inventory {
		x = tbprint(x, 1, colorAttr(c), bgColor, colorLabel(c)+" ")
	}

	x = tbprint(left+cols*cellWidth/2, 1, defaultColor, defaultColor, "Disposal Order: ")
	for _, c := range game.DisposalSequence {
		x = tbprint(x, 1, colorAttr(c), bgColor, colorLabel(c)+" ")
	}

	x = left
	for _, entry := range legend() {
		x = tbprint(x, 2, colorAttr(entry.color), bgColor, entry.text+"  ")
	}
}

type legendEntry struct {
	color rules.Color
	text  string
}

// legend explains the food letters on the board.
func legend() []legendEntry {
	var entries []legendEntry
	for _, c := range rules.Palette() {
		entries = append(entries, legendEntry{color: c, text: fmt.Sprintf("%c %s", foodRune(c), c)})
	}
	return entries
}

func hudText(game *rules.Game) string {
	return fmt.Sprintf("Score: %d   Lives: %d   Level: %d", game.Score, game.Lives, game.Level)
}

func renderBoard() {
	width := cols * cellWidth
	bottom := top + rows + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

// renderZones shades every zone and labels zone i with the i-th color of the
// disposal sequence.
func renderZones(game *rules.Game, zones []rules.Zone) {
	for i, z := range zones {
		if !z.Active {
			continue
		}
		// only whole cells inside the zone can hold the head
		first := rules.Point{X: alignUp(z.X), Y: alignUp(z.Y)}
		last := rules.Point{X: z.X + z.Width - 1, Y: z.Y + z.Height - 1}
		x, y := cellOf(first)
		x1, y1 := cellOf(last)
		w, h := x1-x+cellWidth, y1-y+1
		fill(x, y, w, h, termbox.Cell{Ch: zoneRune, Fg: defaultColor, Bg: bgColor})

		label := fmt.Sprintf("#%d", i+1)
		fg := defaultColor
		if i < len(game.DisposalSequence) {
			c := game.DisposalSequence[i]
			label = fmt.Sprintf("#%d %s", i+1, colorLabel(c))
			fg = colorAttr(c)
		}
		tbprint(x, y, fg, bgColor, label)
	}
}

func renderFood(food []rules.Food) {
	for _, f := range food {
		x, y := cellOf(f.Point)
		termbox.SetCell(x, y, foodRune(f.Color), colorAttr(f.Color), bgColor)
	}
}

func renderSnake(snake []rules.Point) {
	for i, b := range snake {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		x, y := cellOf(b)
		fill(x, y, cellWidth, 1, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
	}
}

func renderOverlay(lines []string) {
	if len(lines) == 0 {
		return
	}
	midX := left + cols*cellWidth/2
	y := top + rows/2 - len(lines)/2
	for i, line := range lines {
		tbprint(midX-runewidth.StringWidth(line)/2, y+i, termbox.ColorWhite|termbox.AttrBold, bgColor, line)
	}
}

// overlayText is the screen shown over the board for every status but
// playing.
func overlayText(game *rules.Game) []string {
	switch game.Status {
	case rules.StatusMenu:
		return []string{
			"COLORFUL SNAKE",
			"",
			"Collect colored food and dispose in order!",
			"Use WASD or Arrow Keys to move",
			"Press SPACE to start",
		}
	case rules.StatusPaused:
		return []string{
			"PAUSED",
			"Press SPACE to continue",
		}
	case rules.StatusGameOver:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", game.Score),
			fmt.Sprintf("Level Reached: %d", game.Level),
		}
		if game.GameOver != nil {
			lines = append(lines, fmt.Sprintf("(%s)", game.GameOver.Cause))
		}
		return append(lines, "Press SPACE to return to menu")
	}
	return nil
}

func cellOf(p rules.Point) (int, int) {
	return left + int(p.X/rules.GridSize)*cellWidth, top + 1 + int(p.Y/rules.GridSize)
}

func alignUp(v int32) int32 {
	return (v + rules.GridSize - 1) / rules.GridSize * rules.GridSize
}

func colorAttr(c rules.Color) termbox.Attribute {
	if a, ok := colorAttrs[c]; ok {
		return a
	}
	return defaultColor
}

func colorLabel(c rules.Color) string {
	return strings.ToUpper(string(c))
}

func foodRune(c rules.Color) rune {
	if c == "" {
		return '●'
	}
	return unicode.ToUpper([]rune(string(c))[0])
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

// tbprint writes msg at x, y and returns the column after it.
func tbprint(x, y int, fg, bg termbox.Attribute, msg string) int {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
	return x
}
