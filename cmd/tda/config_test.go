package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("TDA_OUTPUT_DIR", "/tmp/diagrams")
	t.Setenv("TDA_LOG_LEVEL", "debug")
	t.Setenv("TDA_WORKERS", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/diagrams", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
}

func TestValidateConfig(t *testing.T) {
	valid := Config{OutputDir: ".", LogLevel: "info"}
	assert.NoError(t, ValidateConfig(&valid))

	cases := map[string]struct {
		cfg  Config
		want error
	}{
		"empty output dir": {
			cfg:  Config{LogLevel: "info"},
			want: ErrInvalidOutputDir,
		},
		"bad log level": {
			cfg:  Config{OutputDir: ".", LogLevel: "verbose"},
			want: ErrInvalidLogLevel,
		},
		"negative workers": {
			cfg:  Config{OutputDir: ".", LogLevel: "info", Workers: -1},
			want: ErrInvalidWorkers,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateConfig(&tc.cfg), tc.want)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	_, err = parseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestIndexName(t *testing.T) {
	assert.Equal(t, "7", indexName(7, 9))
	assert.Equal(t, "007", indexName(7, 600))
	assert.Equal(t, "042", indexName(42, 100))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "celegans", stem("/data/networks/celegans.gml"))
	assert.Equal(t, "graph", stem("graph"))
}
