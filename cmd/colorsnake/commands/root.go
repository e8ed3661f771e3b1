package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/battlesnakeio/colorsnake/config"
	"github.com/battlesnakeio/colorsnake/rules"
	"github.com/battlesnakeio/colorsnake/version"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "colorsnake",
	Short:   "colorsnake is a snake game about collecting and disposing colored food",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := loadConfig(c); err != nil {
			return err
		}
		prometheus()
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	configFile string
	logLevel   = "info"
	seed       int64
	promEnable bool
	promListen = ":9090"

	cfg = config.Default()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for food and disposal sequences, 0 seeds from the clock")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file when one is given, flags set on the
// command line win over the file.
func loadConfig(c *cobra.Command) error {
	if configFile != "" {
		f, err := config.LoadFile(configFile)
		if err != nil {
			return err
		}
		cfg = f
	}

	if changed(c, "log-level") {
		cfg.LogLevel = logLevel
	}
	if changed(c, "seed") {
		cfg.Seed = seed
	}
	if changed(c, "prometheus") {
		cfg.Prometheus.Enable = promEnable
	}
	if changed(c, "prometheus-listen") {
		cfg.Prometheus.Listen = promListen
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	log.SetLevel(level)
	return nil
}

func changed(c *cobra.Command, name string) bool {
	f := c.Flag(name)
	return f != nil && f.Changed
}

func newGenerator() *rules.Generator {
	if cfg.Seed != 0 {
		log.WithField("seed", cfg.Seed).Info("using fixed seed")
		return rules.NewGenerator(cfg.Seed)
	}
	return rules.NewTimeSeededGenerator()
}

func prometheus() {
	if !cfg.Prometheus.Enable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", cfg.Prometheus.Listen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.Prometheus.Listen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
