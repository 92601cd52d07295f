package icons

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readOptions(t *testing.T, content string) (CompileOptions, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, CompileOptionsFile)
	writeFile(t, path, content)
	return ReadCompileOptions(path, CompileSources{CategoriesDir: filepath.Join(dir, "categories")})
}

func TestReadCompileOptions_MissingFileGivesDefaults(t *testing.T) {
	assert := assert.New(t)
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	opts, err := ReadCompileOptions(filepath.Join(t.TempDir(), CompileOptionsFile), CompileSources{})
	require.NoError(t, err)
	assert.NotNil(opts.IncludeIcons)
	assert.Empty(opts.IncludeIcons)
	assert.Nil(opts.StrokeWidth)
	assert.Equal("fontforge", opts.FontForge)
	assert.True(opts.Includes("anything"))
}

func TestReadCompileOptions_ShouldExcludeOffIcons(t *testing.T) {
	opts, err := readOptions(t, `{"includeIcons": ["wifi", "wifi-off", "bell", "bell-off", "offline"], "excludeOffIcons": true}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "bell", "offline"}, opts.IncludeIcons)

	opts, err = readOptions(t, `{"includeIcons": ["wifi", "wifi-off"], "excludeOffIcons": false}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "wifi-off"}, opts.IncludeIcons)
}

func TestReadCompileOptions_Categories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "categories", "arrows", "arrow-up.svg"), homeSVG)
	writeFile(t, filepath.Join(dir, "categories", "arrows", "arrow-down.svg"), homeSVG)
	writeFile(t, filepath.Join(dir, "categories", "media", "play.svg"), homeSVG)
	path := filepath.Join(dir, CompileOptionsFile)
	writeFile(t, path, `{
		"includeIcons": ["home", "arrow-down"],
		"includeCategories": ["arrows", "unknown"],
		"excludeIcons": ["arrow-up"],
		"strokeWidth": 1.5,
		"fontForge": "/usr/bin/fontforge"
	}`)

	opts, err := ReadCompileOptions(path, CompileSources{CategoriesDir: filepath.Join(dir, "categories")})
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "arrow-down"}, opts.IncludeIcons)
	require.NotNil(t, opts.StrokeWidth)
	assert.Equal(t, "1.5", *opts.StrokeWidth)
	assert.Equal(t, "/usr/bin/fontforge", opts.FontForge)
}

func TestReadCompileOptions_StrokeWidthAsString(t *testing.T) {
	opts, err := readOptions(t, `{"strokeWidth": "1.75"}`)
	require.NoError(t, err)
	require.NotNil(t, opts.StrokeWidth)
	assert.Equal(t, "1.75", *opts.StrokeWidth)
	assert.Empty(t, opts.IncludeIcons)
}

func TestReadCompileOptions_WrongShape(t *testing.T) {
	for content, msg := range map[string]string{
		`{"includeIcons": "home"}`:      "property includeIcons is not an array",
		`{"includeIcons": ["home", 1]}`: "property includeIcons is not an array of strings",
		`{"excludeOffIcons": "yes"}`:    "property excludeOffIcons is not a boolean",
		`{"strokeWidth": true}`:         "property strokeWidth is not a string or number",
		`{"fontForge": 3}`:              "property fontForge is not a string",
		`["home"]`:                      "the options must be a JSON object",
	} {
		_, err := readOptions(t, content)
		assert.True(t, errors.Is(err, ErrConfiguration), content)
		assert.EqualError(t, err, "Error reading compile-options.json: "+msg, content)
	}
}

func TestReadCompileOptions_MalformedJSON(t *testing.T) {
	opts, err := readOptions(t, `{"includeIcons": ["home",`)
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.ErrorContains(t, err, "Error reading compile-options.json")
	assert.Empty(t, opts.IncludeIcons)
}

func TestCompileOptions_FilterIcons(t *testing.T) {
	opts := CompileOptions{IncludeIcons: []string{"user", "home"}}
	kept := opts.FilterIcons([]Icon{{Name: "home"}, {Name: "star"}, {Name: "user"}})
	assert.Equal(t, []string{"home", "user"}, Names(kept))
	assert.False(t, opts.Includes("star"))
}
