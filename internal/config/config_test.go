package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("output", "o", "", "")
	fs.Bool("pretty", false, "")
	fs.String("format", DefaultFormat, "")
	fs.String("input-format", "auto", "")
	fs.String("sheet", "", "")
	fs.String("delimiter", DefaultDelimiter, "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.String("log-format", DefaultLogFormat, "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analyze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "auto", cfg.InputFormat)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Pretty)
	assert.Empty(t, cfg.Output)
}

func TestLoad_Precedence(t *testing.T) {
	cfgFile := writeConfig(t, `
input: from-file.csv
pretty: true
format: table
delimiter: ";"
log_level: info
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(cfgFile, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "from-file.csv", cfg.Input)
		assert.True(t, cfg.Pretty)
		assert.Equal(t, "table", cfg.Format)
		assert.Equal(t, ';', cfg.DelimiterRune())
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvInput, "from-env.csv")
		cfg, err := Load(cfgFile, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "from-env.csv", cfg.Input)
	})

	t.Run("flags override file", func(t *testing.T) {
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--format", "json", "--log-level", "error"}))

		cfg, err := Load(cfgFile, fs, "")
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.True(t, cfg.Pretty, "unset flags must not clobber file values")
	})

	t.Run("argument overrides everything", func(t *testing.T) {
		t.Setenv(EnvInput, "from-env.csv")
		cfg, err := Load(cfgFile, newFlags(), "from-arg.csv")
		require.NoError(t, err)
		assert.Equal(t, "from-arg.csv", cfg.Input)
	})
}

func TestLoad_IgnoresOtherEnv(t *testing.T) {
	t.Setenv("ANALYZE_FORMAT", "table")
	t.Setenv("ANALYZE_PRETTY", "true")

	cfg, err := Load("", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Pretty)
}

func TestLoad_Verbose(t *testing.T) {
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"-v"}))

	cfg, err := Load("", fs, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Input:       "data.csv",
			Format:      "json",
			InputFormat: "auto",
			Delimiter:   ",",
			LogLevel:    "warn",
			LogFormat:   "text",
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantErr   bool
		errSubstr string
	}{
		{"valid", func(c *Config) {}, false, ""},
		{"empty input", func(c *Config) { c.Input = "" }, true, "input is required"},
		{"bad format", func(c *Config) { c.Format = "yaml" }, true, "format must be one of"},
		{"bad input format", func(c *Config) { c.InputFormat = "ods" }, true, "input_format must be one of"},
		{"long delimiter", func(c *Config) { c.Delimiter = ",," }, true, "delimiter must be exactly 1"},
		{"tab delimiter", func(c *Config) { c.Delimiter = "\t" }, false, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true, "log_level must be one of"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true, "log_format must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
