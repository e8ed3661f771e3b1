package rules

import (
	"github.com/pkg/errors"
)

// ValidateGame checks the invariants that hold for every reachable state.
// Board related checks only apply while the game is playing.
func ValidateGame(game *Game, zones []Zone) error {
	if len(game.Snake) == 0 {
		return errors.New("rules: snake has no segments")
	}
	if game.Score < 0 {
		return errors.Errorf("rules: negative score %d", game.Score)
	}
	if game.Lives < 0 || game.Lives > StartLives {
		return errors.Errorf("rules: lives %d out of range", game.Lives)
	}
	if game.Status == StatusGameOver && game.GameOver == nil {
		return errors.New("rules: game over without a cause")
	}
	if game.Status != StatusPlaying {
		return nil
	}

	for i, p := range game.Snake {
		if !inBounds(p) {
			return errors.Errorf("rules: segment %d at %s is off the board", i, p)
		}
		if containsPoint(game.Snake[i+1:], p) {
			return errors.Errorf("rules: segment %d at %s is occupied twice", i, p)
		}
	}
	if n := len(game.DisposalSequence); n < 1 || n > maxSequenceLength {
		return errors.Errorf("rules: disposal sequence length %d out of range", n)
	}
	for _, c := range append(append([]Color(nil), game.Inventory...), game.DisposalSequence...) {
		if !IsPaletteColor(c) {
			return errors.Errorf("rules: unknown color %q", c)
		}
	}
	// a level up raises the requirement after this tick's replenish
	if game.Tick > 0 && (len(game.Food) > game.RequiredFood() || len(game.Food) < requiredFood(game.Level-1)) {
		return errors.Errorf("rules: %d food on the board, want %d", len(game.Food), game.RequiredFood())
	}
	ids := map[string]bool{}
	for i, f := range game.Food {
		if ids[f.ID] {
			return errors.Errorf("rules: duplicate food id %s", f.ID)
		}
		ids[f.ID] = true
		if foodAt(game.Food[i+1:], f.Point) {
			return errors.Errorf("rules: food overlaps at %s", f.Point)
		}
	}
	if game.Speed < MinSpeed || game.Speed > InitialSpeed {
		return errors.Errorf("rules: speed %d out of range", game.Speed)
	}
	return ValidateZones(zones)
}
