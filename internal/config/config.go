// Package config reads the environment shared by the gatb-devtools commands.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvLogLevel sets the minimum level of the diagnostic logs.
	EnvLogLevel = "GATB_TOOLS_LOG_LEVEL"
	// EnvPipelineGraph names a Graphviz DOT file describing the timed pipeline of a run.
	EnvPipelineGraph = "GATB_TOOLS_PIPELINE_GRAPH"
)

// DefaultLogLevel keeps the logs quiet unless something unexpected happens.
const DefaultLogLevel = zapcore.WarnLevel

// Config holds the settings read from the environment.
type Config struct {
	LogLevel      zapcore.Level
	PipelineGraph string
}

// FromEnv builds a Config using lookup, usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{LogLevel: DefaultLogLevel}

	if raw, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(raw) != "" {
		level, err := zapcore.ParseLevel(strings.TrimSpace(raw))
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid %s", EnvLogLevel)
		}
		cfg.LogLevel = level
	}

	if raw, ok := lookup(EnvPipelineGraph); ok {
		cfg.PipelineGraph = strings.TrimSpace(raw)
	}

	return cfg, nil
}
