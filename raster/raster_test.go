package raster

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/SH20RAJ/icons/svgpath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill_Square(t *testing.T) {
	assert := assert.New(t)

	p, err := svgpath.Parse("M2 2 H6 V6 H2 Z")
	require.NoError(t, err)
	m := Fill(p, 8, 8, Transform{Scale: 1})

	assert.Equal(uint8(0xff), m.AlphaAt(3, 3).A)
	assert.Equal(uint8(0), m.AlphaAt(0, 0).A)
	assert.Equal(uint8(0), m.AlphaAt(7, 7).A)
	assert.Equal(16, Coverage(m, 0))
}

func TestFill_ClosesOpenSubpaths(t *testing.T) {
	open, err := svgpath.Parse("M2 2 H6 V6 H2")
	require.NoError(t, err)
	closed, err := svgpath.Parse("M2 2 H6 V6 H2 Z")
	require.NoError(t, err)

	diff := Xor(Fill(open, 8, 8, Transform{Scale: 1}), Fill(closed, 8, 8, Transform{Scale: 1}))
	assert.Equal(t, 0, Coverage(diff, 0))
}

func TestEquivalent_OptimizedPaths(t *testing.T) {
	for _, d := range []string{
		"M 3.14159 2.71828 C 10.1111 10.2222 20.3333 5.4444 18.5555 16.6666 Z",
		"M5.0004 5.0004 H 19.0005 V 19.9995 H 5 Z M 8 8 A 4.12345 4.12345 0 1 0 16 16 Z",
		"M2 2 Q 12 22.2222 22 2 T 12.3456 0.9999 Z",
		"M4 4 L 20.0001 4.0004 L 12.0006 19.9997 Z",
	} {
		opt, err := svgpath.Optimize(d)
		require.NoError(t, err)

		ok, err := Equivalent(d, opt, 8)
		require.NoError(t, err)
		assert.True(t, ok, "%q and %q should fill the same area", d, opt)
	}
}

func TestEquivalent_DetectsDifferentShapes(t *testing.T) {
	ok, err := Equivalent("M2 2 H12 V12 H2 Z", "M2 2 H12 V11 H2 Z", 8)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Equivalent("M2 2 H12", "L1 1", 8)
	assert.Error(t, err)
}

func TestEquivalent_EmptyPaths(t *testing.T) {
	ok, err := Equivalent("", "", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Equivalent("", "M0 0 H1 V1 Z", 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

// fakeConverter writes a shell script standing in for rsvg-convert.
func fakeConverter(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	bin := filepath.Join(t.TempDir(), "fake-rsvg-convert")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return bin
}

func TestConverter_Screenshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.raster")
	defer teardown()

	bin := fakeConverter(t, `printf 'scale=%s input=%s' "$2" "$5"`)
	dir := t.TempDir()
	src := filepath.Join(dir, "icons.svg")
	require.NoError(t, os.WriteFile(src, []byte("<svg/>"), 0644))

	written, err := NewConverter(bin).Screenshot(src, true)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "icons.png"),
		filepath.Join(dir, "icons@2x.png"),
	}, written)

	out, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "scale=2 input="+src, string(out))

	out, err = os.ReadFile(written[1])
	require.NoError(t, err)
	assert.Equal(t, "scale=4 input="+src, string(out))
}

func TestConverter_ScreenshotWithoutRetina(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.raster")
	defer teardown()

	bin := fakeConverter(t, `printf png`)
	src := filepath.Join(t.TempDir(), "icons.svg")

	written, err := NewConverter(bin).Screenshot(src, false)
	require.NoError(t, err)
	assert.Len(t, written, 1)
}

func TestConverter_FailureIsExternalToolError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.raster")
	defer teardown()

	bin := fakeConverter(t, "echo boom >&2\nexit 3")
	src := filepath.Join(t.TempDir(), "icons.svg")
	require.NoError(t, os.WriteFile(src, []byte("<svg/>"), 0644))

	written, err := NewConverter(bin).Screenshot(src, true)
	require.Error(t, err)
	assert.Empty(t, written)
	assert.True(t, errors.Is(err, ErrExternalTool))

	var terr *ToolError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Stderr, "boom")
	assert.Contains(t, err.Error(), "-x 2 -y 2")

	// the source svg stays untouched
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestConverter_MissingBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "icons.raster")
	defer teardown()

	dir := t.TempDir()
	c := NewConverter(filepath.Join(dir, "no-such-converter"))
	err := c.Convert(filepath.Join(dir, "a.svg"), filepath.Join(dir, "a.png"), 2)
	assert.True(t, errors.Is(err, ErrExternalTool))
	assert.Equal(t, DefaultBin, NewConverter("").Bin)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 12, 7))))
	require.NoError(t, f.Close())

	size, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(12, 7), size)

	bogus := filepath.Join(dir, "bogus.png")
	require.NoError(t, os.WriteFile(bogus, []byte("not a png"), 0644))
	_, err = Inspect(bogus)
	assert.Error(t, err)
}
