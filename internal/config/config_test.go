package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/askiada/gatb-devtools/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]

		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		env      map[string]string
		expected config.Config
	}{
		"empty": {
			env:      map[string]string{},
			expected: config.Config{LogLevel: zapcore.WarnLevel},
		},
		"blank level": {
			env:      map[string]string{config.EnvLogLevel: "  "},
			expected: config.Config{LogLevel: zapcore.WarnLevel},
		},
		"debug and graph": {
			env: map[string]string{
				config.EnvLogLevel:      "debug",
				config.EnvPipelineGraph: " run.dot ",
			},
			expected: config.Config{LogLevel: zapcore.DebugLevel, PipelineGraph: "run.dot"},
		},
		"upper case level": {
			env:      map[string]string{config.EnvLogLevel: "ERROR"},
			expected: config.Config{LogLevel: zapcore.ErrorLevel},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.FromEnv(lookupFrom(tc.env))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestFromEnvInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := config.FromEnv(lookupFrom(map[string]string{config.EnvLogLevel: "loud"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvLogLevel)
}

func TestPipelineOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, config.Config{}.PipelineOptions())
	assert.Len(t, config.Config{PipelineGraph: "run.dot"}.PipelineOptions(), 2)
}
