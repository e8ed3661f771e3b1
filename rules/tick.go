package rules

import (
	log "github.com/sirupsen/logrus"
)

// Advance runs the game one tick and returns the next state. The passed in
// game is never modified. Games that are not playing are returned as is.
func Advance(gen *Generator, game *Game, zones []Zone) (*Game, error) {
	if game.Status != StatusPlaying {
		return game, nil
	}

	head := game.Head().Add(game.Direction)

	// 1. check for death
	//    a - wall collision
	//    b - self collision, the tail cell counts since it has not moved yet
	if cause, dead := checkForDeath(game, head); dead {
		return endGame(game, cause), nil
	}

	next := game.Clone()
	next.Tick++
	next.Heading = game.Direction
	next.Snake = append([]Point{head}, next.Snake...)

	// 2. food
	//    a - eat everything under the head
	//    b - shrink the snake if it did not eat
	//    c - replace eaten food up to the level minimum
	if !checkForEating(next) {
		next.Snake = next.Snake[:len(next.Snake)-1]
	}
	if err := replenishFood(gen, next); err != nil {
		return nil, err
	}

	// 3. disposal in the zone under the head
	checkForDisposal(gen, next, zones)

	return next, nil
}

func checkForEating(game *Game) bool {
	head := game.Head()
	ate := false
	remaining := game.Food[:0]
	for _, f := range game.Food {
		if !f.Point.Equal(head) {
			remaining = append(remaining, f)
			continue
		}
		ate = true
		game.Inventory = append(game.Inventory, f.Color)
		game.Score += FoodScore
		log.WithFields(log.Fields{
			"Tick":  game.Tick,
			"Food":  f.Point,
			"Color": f.Color,
		}).Debug("snake ate")
	}
	game.Food = remaining
	return ate
}

func replenishFood(gen *Generator, game *Game) error {
	for len(game.Food) < game.RequiredFood() {
		f, err := gen.Food(game.Food)
		if err != nil {
			return err
		}
		game.Food = append(game.Food, f)
	}
	return nil
}

func checkForDisposal(gen *Generator, game *Game, zones []Zone) {
	if len(game.Inventory) == 0 || len(game.DisposalSequence) == 0 {
		return
	}
	zone, ok := zoneAt(zones, game.Head())
	if !ok {
		return
	}

	disposed := game.Inventory[0]
	expected := game.DisposalSequence[0]
	fields := log.Fields{
		"Tick":     game.Tick,
		"Zone":     zone,
		"Disposed": disposed,
		"Expected": expected,
	}

	if disposed != expected {
		game.Lives--
		log.WithFields(fields).WithField("Lives", game.Lives).Debug("wrong disposal")
		if game.Lives <= 0 {
			game.Lives = 0
			game.Status = StatusGameOver
			game.GameOver = &GameOver{Tick: game.Tick, Cause: GameOverCauseLivesExhausted}
			log.WithFields(log.Fields{
				"Tick":  game.Tick,
				"Cause": GameOverCauseLivesExhausted,
				"Score": game.Score,
				"Level": game.Level,
			}).Info("game over")
		}
		return
	}

	game.Inventory = game.Inventory[1:]
	game.DisposalSequence = game.DisposalSequence[1:]
	game.Score += DisposalScore
	log.WithFields(fields).Debug("correct disposal")

	if len(game.DisposalSequence) > 0 {
		return
	}
	game.DisposalSequence = gen.DisposalSequence(game.Level + 1)
	game.Level++
	game.Speed -= SpeedStep
	if game.Speed < MinSpeed {
		game.Speed = MinSpeed
	}
	log.WithFields(log.Fields{
		"Tick":  game.Tick,
		"Level": game.Level,
		"Speed": game.Speed,
	}).Info("level up")
}
