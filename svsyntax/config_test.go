package svsyntax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywordOverridesAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("add:\n  vendorword: \"2005\"\nremove:\n  - config\n"), 0o644))

	overrides, err := LoadKeywordOverrides(path)
	require.NoError(t, err)

	ks, err := overrides.Apply(NewKeywordSet(V2017))
	require.NoError(t, err)
	assert.True(t, ks.IsKeyword("vendorword"))
	assert.False(t, ks.IsKeyword("config"))
	assert.True(t, ks.IsKeyword("module"), "untouched words keep their built-in reservation")

	// The base set is not mutated by Apply.
	base := NewKeywordSet(V2017)
	assert.False(t, base.IsKeyword("vendorword"))
	assert.True(t, base.IsKeyword("config"))
}

func TestLoadKeywordOverridesMissingFile(t *testing.T) {
	_, err := LoadKeywordOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyRejectsUnknownVersion(t *testing.T) {
	o := KeywordOverrides{Add: map[string]string{"w": "1999"}}
	_, err := o.Apply(NewKeywordSet(V2017))
	require.Error(t, err)
}

func TestParseVersionName(t *testing.T) {
	v, err := ParseVersionName("2005")
	require.NoError(t, err)
	assert.Equal(t, V2005, v)

	_, err = ParseVersionName("1987")
	require.Error(t, err)
}
