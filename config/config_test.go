//go:build testing

package config

import (
	"datefinder/clock"
	"datefinder/finder"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestingConfig(t *testing.T) {
	require.Equal(t, EnvTesting, Cfg.Env)
	require.True(t, Cfg.Env.IsDevOrTest())
	require.Equal(t, DefaultMinYear, Cfg.MinYear)
	require.Equal(t, DefaultMaxYear, Cfg.MaxYear)
	require.NoError(t, Cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datefinder.yaml")
	content := "locale: fr\nmin_year: 1800\nmax_year: 2100\nformat: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DATEFINDER_MAX_YEAR", "2200")
	t.Setenv("DATEFINDER_ADDR", ":8080")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "fr", cfg.Locale)
	require.Equal(t, 1800, cfg.MinYear)
	require.Equal(t, 2200, cfg.MaxYear)
	require.Equal(t, FormatJSON, cfg.Format)
	require.Equal(t, ":8080", cfg.Addr)
}

func TestLoadRejectsBadValues(t *testing.T) {
	type Test struct {
		Description string
		Content     string
		Env         map[string]string
	}
	tests := []Test{
		{
			Description: "inverted years",
			Content:     "min_year: 2050\nmax_year: 1900\n",
		},
		{
			Description: "unknown format",
			Content:     "format: xml\n",
		},
		{
			Description: "non-numeric env year",
			Content:     "",
			Env:         map[string]string{"DATEFINDER_MIN_YEAR": "nineteen"},
		},
	}

	for _, test := range tests {
		t.Run(test.Description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(test.Content), 0o600))
			for key, value := range test.Env {
				t.Setenv(key, value)
			}

			_, err := Load(path)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFinderOptions(t *testing.T) {
	cfg := Cfg
	cfg.Locale = "de"
	cfg.MinYear = 2000

	now := clock.Fixed(TestingNow)
	opts := cfg.FinderOptions(now, finder.NopLogger{})
	require.Equal(t, "de", opts.Locale)
	require.Equal(t, 2000, opts.MinYear)
	require.Equal(t, DefaultMaxYear, opts.MaxYear)
	require.Equal(t, now, opts.Clock)

	engine, err := finder.New(opts)
	require.NoError(t, err)
	results := engine.ExtractDates("am 5. März")
	require.Len(t, results, 1)
	require.Equal(t, TestingYear, results[0].Date.Year)
}
