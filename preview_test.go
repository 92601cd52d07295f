package icons

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SH20RAJ/icons/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dotSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" stroke-width="2"><circle cx="12" cy="12" r="1"/></svg>`

func TestLayout_ShouldWrapRows(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultPreviewOptions()
	opts.Columns = 2
	g := Layout(3, opts)

	assert.Equal(2, g.Columns)
	assert.Equal(2, g.Rows)
	assert.Equal(float64(82), g.Width)
	assert.Equal(float64(82), g.Height)
	require.Len(t, g.Entries, 3)
	assert.Equal(SpriteEntry{X: 7, Y: 7, Width: 24, Height: 24}, g.Entries[0])
	assert.Equal(SpriteEntry{X: 51, Y: 7, Width: 24, Height: 24}, g.Entries[1])
	assert.Equal(SpriteEntry{X: 7, Y: 51, Width: 24, Height: 24}, g.Entries[2])
}

func TestLayout_Defaults(t *testing.T) {
	assert := assert.New(t)

	g := Layout(20, DefaultPreviewOptions())
	assert.Equal(19, g.Columns)
	assert.Equal(2, g.Rows)
	assert.Equal(float64(830), g.Width)
	assert.Equal(float64(82), g.Height)
	assert.Equal(float64(799), g.Entries[18].X)
	assert.Equal(float64(7), g.Entries[18].Y)
	assert.Equal(float64(7), g.Entries[19].X)
	assert.Equal(float64(51), g.Entries[19].Y)

	empty := Layout(0, PreviewOptions{})
	assert.Equal(0, empty.Rows)
	assert.Equal(float64(0), empty.Height)
	assert.Empty(empty.Entries)
}

func TestSymbolID(t *testing.T) {
	assert.Equal(t, "outline-home", SymbolID(filepath.Join("icons", "outline", "home.svg")))
	assert.Equal(t, "filled-home", SymbolID(filepath.Join("filled", "home.svg")))
	assert.Equal(t, "home", SymbolID("home.svg"))
}

func TestToSymbol(t *testing.T) {
	sym, err := ToSymbol("outline-home", "<!-- home -->\n"+homeSVG, 1.5)
	require.NoError(t, err)
	assert.Equal(t, `<symbol id="outline-home" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round">`+
		`<path d="M5 12l-2 0l9 -9l9 9l-2 0"/></symbol>`, sym)

	// no root stroke-width: the icon keeps its own strokes
	sym, err = ToSymbol("filled-dot", `<svg viewBox="0 0 24 24"><circle cx="12" cy="12" r="1" stroke-width="3"/></svg>`, 1.5)
	require.NoError(t, err)
	assert.Equal(t, `<symbol id="filled-dot" viewBox="0 0 24 24"><circle cx="12" cy="12" r="1" stroke-width="3"/></symbol>`, sym)

	_, err = ToSymbol("x", `<g/>`, 2)
	assert.Error(t, err)
	_, err = ToSymbol("x", `<svg>`, 2)
	assert.Error(t, err)
}

func TestRenderPreview(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	dot := filepath.Join(t.TempDir(), "outline", "dot.svg")
	writeFile(t, dot, dotSVG)
	opts := DefaultPreviewOptions()
	opts.Columns = 2

	var b strings.Builder
	g, err := RenderPreview(&b, []string{dot}, opts)
	require.NoError(t, err)
	assert.Equal(t, "outline-dot", g.Entries[0].SymbolID)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 82 38" width="82" height="38" style="color: #354052">`+
		`<rect x="0" y="0" width="82" height="38" fill="#fff"></rect>
	<symbol id="outline-dot" viewBox="0 0 24 24" stroke-width="2"><circle cx="12" cy="12" r="1"/></symbol>

	<use xlink:href="#outline-dot" x="7" y="7" width="24" height="24" />

</svg>`, b.String())
}

type fakeRasterizer struct {
	calls []string
	err   error
}

func (f *fakeRasterizer) Screenshot(svgPath string, retina bool) ([]string, error) {
	f.calls = append(f.calls, svgPath)
	if f.err != nil {
		return nil, f.err
	}
	base := strings.TrimSuffix(svgPath, ".svg")
	if retina {
		return []string{base + ".png", base + "@2x.png"}, nil
	}
	return []string{base + ".png"}, nil
}

func previewFixture(t *testing.T) ([]string, string) {
	t.Helper()
	dir := t.TempDir()
	files := []string{
		filepath.Join(dir, "outline", "home.svg"),
		filepath.Join(dir, "outline", "user.svg"),
		filepath.Join(dir, "filled", "home.svg"),
	}
	writeFile(t, files[0], homeSVG)
	writeFile(t, files[1], userSVG)
	writeFile(t, files[2], dotSVG)
	return files, filepath.Join(dir, "icons.svg")
}

func TestBuildPreview_ShouldRasterize(t *testing.T) {
	assert := assert.New(t)
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	files, dst := previewFixture(t)
	r := &fakeRasterizer{}
	written, err := BuildPreview(files, dst, DefaultPreviewOptions(), r)
	require.NoError(t, err)
	base := strings.TrimSuffix(dst, ".svg")
	assert.Equal([]string{dst, base + ".png", base + "@2x.png"}, written)
	assert.Equal([]string{dst}, r.calls)

	out, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(string(out), `<symbol id="outline-home"`)
	assert.Contains(string(out), `<symbol id="filled-home"`)
	assert.Contains(string(out), `<use xlink:href="#filled-home" x="95" y="7" width="24" height="24" />`)
}

func TestBuildPreview_WithoutPNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	files, dst := previewFixture(t)
	opts := DefaultPreviewOptions()
	opts.PNG = false
	r := &fakeRasterizer{}
	written, err := BuildPreview(files, dst, opts, r)
	require.NoError(t, err)
	assert.Equal(t, []string{dst}, written)
	assert.Empty(t, r.calls)
}

func TestBuildPreview_RasterizerFailureKeepsSVG(t *testing.T) {
	assert := assert.New(t)
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	files, dst := previewFixture(t)
	toolErr := &raster.ToolError{Cmd: "rsvg-convert", Err: errors.New("exit status 1")}
	written, err := BuildPreview(files, dst, DefaultPreviewOptions(), &fakeRasterizer{err: toolErr})
	assert.True(errors.Is(err, ErrExternalTool))
	var terr *ExternalToolError
	assert.ErrorAs(err, &terr)
	assert.Equal([]string{dst}, written)
	_, err = os.Stat(dst)
	assert.NoError(err)

	_, err = BuildPreview(files, dst, DefaultPreviewOptions(), &fakeRasterizer{err: errors.New("boom")})
	assert.True(errors.Is(err, ErrExternalTool))
}

func TestBuildPreview_SourceErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.build")
	defer teardown()

	dir := t.TempDir()
	dst := filepath.Join(dir, "icons.svg")
	_, err := BuildPreview([]string{filepath.Join(dir, "missing.svg")}, dst, DefaultPreviewOptions(), &fakeRasterizer{})
	assert.True(t, errors.Is(err, ErrFilesystem))

	bad := filepath.Join(dir, "bad.svg")
	writeFile(t, bad, "<svg>")
	_, err = BuildPreview([]string{bad}, dst, DefaultPreviewOptions(), &fakeRasterizer{})
	assert.True(t, errors.Is(err, ErrParse))
	_, err = os.Stat(dst)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
