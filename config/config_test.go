package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/pixpack/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "pixpack.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParse__Defaults(t *testing.T) {
	conf, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}

func TestParse__MissingFileIsNotAnError(t *testing.T) {
	conf, err := config.Parse(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}

func TestParse__File(t *testing.T) {
	path := writeConfigFile(t, `
output_dir = "/tmp/pixpack-out"
max_dimension = 512
workers = 4
export_decoded = true
report_csv = "report.csv"
`)

	conf, err := config.Parse(path)
	require.NoError(t, err)
	assert.Equal(
		t,
		config.Configuration{
			OutputDir:     "/tmp/pixpack-out",
			MaxDimension:  512,
			Workers:       4,
			ExportDecoded: true,
			ReportCSV:     "report.csv",
		},
		conf,
	)
}

func TestParse__EnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "output_dir = \"from-file\"\nworkers = 2\n")
	t.Setenv("PIXPACK_OUTPUT_DIR", "from-env")
	t.Setenv("PIXPACK_VERBOSE", "true")

	conf, err := config.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", conf.OutputDir)
	assert.Equal(t, 2, conf.Workers)
	assert.True(t, conf.Verbose)
}

func TestParse__ConfigFileFromEnvironment(t *testing.T) {
	path := writeConfigFile(t, "max_dimension = 64\n")
	t.Setenv("PIXPACK_CONFIG", path)

	conf, err := config.Parse("")
	require.NoError(t, err)
	assert.EqualValues(t, 64, conf.MaxDimension)
}

func TestParse__Invalid(t *testing.T) {
	cases := map[string]func(t *testing.T) string{
		"bad toml": func(t *testing.T) string {
			return writeConfigFile(t, "output_dir = \n")
		},
		"zero workers": func(t *testing.T) string {
			return writeConfigFile(t, "workers = 0\n")
		},
		"bad env integer": func(t *testing.T) string {
			t.Setenv("PIXPACK_WORKERS", "many")
			return ""
		},
		"bad env bool": func(t *testing.T) string {
			t.Setenv("PIXPACK_EXPORT_DECODED", "maybe")
			return ""
		},
	}

	for name, setup := range cases {
		t.Run(
			name,
			func(t *testing.T) {
				_, err := config.Parse(setup(t))
				assert.Error(t, err)
			},
		)
	}
}
