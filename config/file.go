package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// File is the optional YAML configuration of the colorsnake command.
type File struct {
	LogLevel   string           `yaml:"log_level"`
	LogFile    string           `yaml:"log_file"`
	Seed       int64            `yaml:"seed"`
	RenderFPS  int              `yaml:"render_fps"`
	Prometheus PrometheusConfig `yaml:"prometheus"`
}

// PrometheusConfig controls the metrics exporter.
type PrometheusConfig struct {
	Enable bool   `yaml:"enable"`
	Listen string `yaml:"listen"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}

	f.applyDefaults()
	return &f, nil
}

// RenderLimit is the frame rate limit, the file wins over RENDER_FPS.
func (f *File) RenderLimit() rate.Limit {
	if f.RenderFPS > 0 {
		return rate.Limit(f.RenderFPS)
	}
	return RenderRate
}

func (f *File) applyDefaults() {
	if f.LogLevel == "" {
		f.LogLevel = "info"
	}
	if f.Prometheus.Listen == "" {
		f.Prometheus.Listen = ":9090"
	}
}
