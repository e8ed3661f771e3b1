package commands

import (
	"context"

	"github.com/battlesnakeio/colorsnake/autopilot"
	"github.com/battlesnakeio/colorsnake/config"
	"github.com/battlesnakeio/colorsnake/controller"
	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/battlesnakeio/colorsnake/worker"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	maxTicks int64
	validate bool
	moves    string
)

func init() {
	simCmd.Flags().Int64Var(&maxTicks, "max-ticks", 10000, "stop the game after this many ticks, 0 runs until the game is over")
	simCmd.Flags().BoolVar(&validate, "validate", false, "check the game invariants after every tick")
	simCmd.Flags().StringVar(&moves, "moves", "", "comma separated opening moves (up, down, left, right or wasd, . to skip a tick) played before the autopilot")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "plays a headless game with the autopilot and dumps the final state",
	Run: func(*cobra.Command, []string) {
		script, err := autopilot.ParseMoves(moves)
		if err != nil {
			log.WithError(err).Fatal("invalid moves")
		}
		game, err := simulate(context.Background(), newGenerator(), script, worker.RunOptions{
			MaxTicks: maxTicks,
			Validate: validate,
		})
		if err != nil {
			log.WithError(err).Fatal("simulation failed")
		}
		spew.Dump(game)
	},
}

func simulate(ctx context.Context, gen *rules.Generator, script []rules.Direction, opts worker.RunOptions) (*rules.Game, error) {
	ctrl, err := controller.New(gen, rules.InitializeDisposalZones(), config.EventQueueSize)
	if err != nil {
		return nil, err
	}
	return worker.Runner(ctx, ctrl, autopilot.NewScript(script, autopilot.New()), opts)
}
