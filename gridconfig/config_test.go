package gridconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/gridconfig"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
case_name: test
countries: [A, B, XX]
radial_eps: 0.001
denom_eps: 0.00001
do_merge_couplers: true
do_calculate_generator_if: true
`)
	cfg, err := gridconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.CaseName)
	assert.Equal(t, 1.0, cfg.Sbase)
	assert.Equal(t, []string{"A", "B"}, cfg.ActiveCountries())
}

func TestLoad_MissingField(t *testing.T) {
	path := writeConfig(t, `
countries: [A]
radial_eps: 0.001
denom_eps: 0.00001
`)
	_, err := gridconfig.Load(path)
	assert.ErrorIs(t, err, gridconfig.ErrMissingField)
}

func TestCountryMapperFor_Unknown(t *testing.T) {
	cfg := &gridconfig.Config{CaseName: "does-not-exist"}
	_, err := cfg.CountryMapperFor()
	assert.ErrorIs(t, err, gridconfig.ErrUnknownCaseName)
}
