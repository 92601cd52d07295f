package icons

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">
  <path stroke="none" d="M0 0h24v24H0z" fill="none"/>
  <path d="M5 12l-2 0l9 -9l9 9l-2 0" />
</svg>
`

const userSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" stroke-width="2">
  <path d="M8 7a4 4 0 1 0 8 0a4 4 0 0 0 -8 0" />
</svg>`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestToPascalCase(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("IconHomeScreen", ToPascalCase("icon home screen"))
	assert.Equal("IconA", ToPascalCase("icon a"))
	assert.Equal("IconArrowBigDown", ToPascalCase("icon arrow-big_DOWN"))
	assert.Equal("Icon2fa", ToPascalCase("icon 2fa"))
	assert.Equal("Icon3dCubeSphere", ToPascalCase("icon 3d-cube-sphere"))
	assert.Equal("Icon24Hours", PascalName("24-hours"))
	assert.Equal("Icon", ToPascalCase("  icon  "))
	assert.Equal("", ToPascalCase(""))
	assert.Equal("IconBrandGithub", PascalName("brand-github"))
}

func TestIconName(t *testing.T) {
	assert.Equal(t, "arrow-up", IconName("icons/outline/arrow-up.svg"))
	assert.Equal(t, "home", IconName("home.svg"))
}

func TestLoadIcons_ShouldReturnEveryIcon(t *testing.T) {
	assert := assert.New(t)
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home.svg"), homeSVG)
	writeFile(t, filepath.Join(dir, "user.svg"), userSVG)
	writeFile(t, filepath.Join(dir, "README.md"), "# icons")
	writeFile(t, filepath.Join(dir, "nested", "star.svg"), userSVG)

	icons, err := LoadIcons(dir, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, icons, 2)
	assert.Equal([]string{"home", "user"}, Names(icons))

	home := icons[0]
	assert.Equal("IconHome", home.PascalName)
	assert.Equal(filepath.Join(dir, "home.svg"), home.Path)
	assert.Contains(home.Contents, BackgroundMarker)
	assert.NotRegexp(`\n$`, home.Contents)

	require.NotNil(t, home.Document)
	assert.Equal("svg", home.Document.Name)
	// the background marker is not part of the document
	require.Len(t, home.Document.Elements(), 1)
	d, _ := home.Document.Elements()[0].Attr("d")
	assert.Equal("M5 12l-2 0l9 -9l9 9l-2 0", d)

	assert.NotNil(icons[1].Document)
}

func TestLoadIcons_ShouldRespectLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home.svg"), homeSVG)
	writeFile(t, filepath.Join(dir, "user.svg"), userSVG)

	icons, err := LoadIcons(dir, LoadOptions{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, Names(icons))
}

func TestLoadIcons_MissingDirectory(t *testing.T) {
	_, err := LoadIcons(filepath.Join(t.TempDir(), "missing"), LoadOptions{})
	assert.True(t, errors.Is(err, ErrFilesystem))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadIcons_MalformedIconAbortsBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.svg"), homeSVG)
	writeFile(t, filepath.Join(dir, "b.svg"), `<svg><path d="M0 0"></svg>`)

	icons, err := LoadIcons(dir, LoadOptions{})
	assert.Nil(t, icons)
	assert.True(t, errors.Is(err, ErrParse))
	assert.ErrorContains(t, err, "b.svg")
}
