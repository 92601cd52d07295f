package icons

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SH20RAJ/icons/raster"
	"github.com/SH20RAJ/icons/svgdoc"
	"github.com/SH20RAJ/icons/svgpath"
	"github.com/SH20RAJ/icons/utils"
)

const (
	// iconSize is the side of an icon cell.
	iconSize = 24
	// iconPadding is the gap between two cells.
	iconPadding = 20
)

// PreviewOptions configures a preview sheet.
type PreviewOptions struct {
	Columns      int
	PaddingOuter int
	Color        string
	Background   string
	// PNG rasterizes the sheet at 2x next to the SVG.
	PNG bool
	// Stroke replaces the root stroke-width of each icon. Icons without one
	// keep their own strokes.
	Stroke float64
	// Retina adds a 4x rasterization, "<name>@2x.png".
	Retina bool
}

// DefaultPreviewOptions returns the settings of the published preview sheets.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Columns:      19,
		PaddingOuter: 7,
		Color:        "#354052",
		Background:   "#fff",
		PNG:          true,
		Stroke:       2,
		Retina:       true,
	}
}

// withDefaults fills the unset fields which have no meaningful zero value.
func (o PreviewOptions) withDefaults() PreviewOptions {
	def := DefaultPreviewOptions()
	if o.Columns <= 0 {
		o.Columns = def.Columns
	}
	if o.PaddingOuter < 0 {
		o.PaddingOuter = 0
	}
	if o.Color == "" {
		o.Color = def.Color
	}
	if o.Background == "" {
		o.Background = def.Background
	}
	if o.Stroke <= 0 {
		o.Stroke = def.Stroke
	}
	return o
}

// SpriteEntry places one symbol on the sheet.
type SpriteEntry struct {
	SymbolID      string
	X, Y          float64
	Width, Height float64
}

// Grid is the layout of a preview sheet.
type Grid struct {
	Columns, Rows int
	Width, Height float64
	Entries       []SpriteEntry
}

// Layout places count icons left to right, top to bottom, wrapping after
// opts.Columns cells. The canvas is bounded tightly: outer padding on each
// side and no trailing gap after the last row or column.
func Layout(count int, opts PreviewOptions) Grid {
	opts = opts.withDefaults()
	cell := iconSize + iconPadding
	cols, outer := opts.Columns, opts.PaddingOuter
	rows := utils.CeilDiv(count, cols)

	g := Grid{
		Columns: cols,
		Rows:    rows,
		Width:   float64(cols*cell + 2*outer - iconPadding),
		Height:  float64(utils.Max(rows*cell+2*outer-iconPadding, 0)),
		Entries: make([]SpriteEntry, count),
	}
	for i := range g.Entries {
		g.Entries[i] = SpriteEntry{
			X:      float64(outer + (i%cols)*cell),
			Y:      float64(outer + (i/cols)*cell),
			Width:  iconSize,
			Height: iconSize,
		}
	}
	return g
}

// SymbolID joins the parent directory name and the basename of path without
// extension: "icons/outline/home.svg" gives "outline-home".
func SymbolID(path string) string {
	name := IconName(path)
	parent := filepath.Base(filepath.Dir(path))
	if parent == "." || parent == string(filepath.Separator) {
		return name
	}
	return parent + "-" + name
}

// ToSymbol rewrites a standalone SVG document into a compact symbol
// definition. Size and namespace attributes of the root are dropped, the
// background marker and comments are removed. A stroke-width on the root is
// replaced by stroke; icons without one keep their own strokes.
func ToSymbol(id, contents string, stroke float64) (string, error) {
	root, err := svgdoc.Parse(strings.Replace(contents, BackgroundMarker, "", 1))
	if err != nil {
		return "", err
	}
	if root.Name != "svg" {
		return "", fmt.Errorf("root element is <%s>, not <svg>", root.Name)
	}

	viewBox, ok := root.Attr("viewBox")
	if !ok {
		viewBox = fmt.Sprintf("0 0 %d %d", iconSize, iconSize)
	}
	sym := svgdoc.NewElement("symbol",
		svgdoc.Attr{Name: "id", Value: id},
		svgdoc.Attr{Name: "viewBox", Value: viewBox},
	)
	for _, a := range root.Attrs {
		switch {
		case a.Name == "width", a.Name == "height", a.Name == "viewBox":
			continue
		case a.Name == "xmlns", svgdoc.Prefix(a.Name) == "xmlns":
			continue
		case a.Name == "stroke-width":
			a.Value = svgpath.FormatNumber(stroke)
		}
		sym.Attrs = append(sym.Attrs, a)
	}
	sym.Children = root.Children
	return sym.Compact(), nil
}

// RenderPreview writes the preview sheet of files to w and returns its
// layout. Files are placed in the given order.
func RenderPreview(w io.Writer, files []string, opts PreviewOptions) (Grid, error) {
	opts = opts.withDefaults()
	grid := Layout(len(files), opts)

	symbols := make([]string, len(files))
	for i, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return grid, fsError("read icon", f, err)
		}
		id := SymbolID(f)
		sym, err := ToSymbol(id, string(raw), opts.Stroke)
		if err != nil {
			return grid, parseError("convert to symbol", f, err)
		}
		tracer().Debugf("added symbol %s", id)
		symbols[i] = sym
		grid.Entries[i].SymbolID = id
	}

	num := svgpath.FormatNumber
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %s %s" width="%s" height="%s" style="color: %s">`,
		num(grid.Width), num(grid.Height), num(grid.Width), num(grid.Height), opts.Color)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="%s"></rect>`+"\n",
		num(grid.Width), num(grid.Height), opts.Background)
	for _, sym := range symbols {
		b.WriteString("\t" + sym + "\n")
	}
	b.WriteString("\n")
	for _, e := range grid.Entries {
		fmt.Fprintf(&b, "\t<use xlink:href=\"#%s\" x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" />\n",
			e.SymbolID, num(e.X), num(e.Y), num(e.Width), num(e.Height))
	}
	b.WriteString("\n</svg>")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return grid, fmt.Errorf("unable to write the preview: %w", err)
	}
	return grid, nil
}

// Rasterizer renders an SVG file to PNG files next to it.
type Rasterizer interface {
	Screenshot(svgPath string, retina bool) ([]string, error)
}

// BuildPreview writes the preview sheet of files to dst and, when opts.PNG is
// set, rasterizes it with r, or with the default converter when r is nil.
// It returns the written files. A failed rasterization leaves the SVG in place.
func BuildPreview(files []string, dst string, opts PreviewOptions, r Rasterizer) ([]string, error) {
	var buf bytes.Buffer
	if _, err := RenderPreview(&buf, files, opts); err != nil {
		return nil, err
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return nil, fsError("write preview", dst, err)
	}
	tracer().Infof("preview saved to %s", dst)

	written := []string{dst}
	if !opts.PNG {
		return written, nil
	}
	if r == nil {
		r = raster.NewConverter("")
	}
	pngs, err := r.Screenshot(dst, opts.Retina)
	written = append(written, pngs...)
	if err != nil {
		if !errors.Is(err, ErrExternalTool) {
			err = &Error{Kind: ErrExternalTool, Op: "rasterize", Path: dst, Err: err}
		}
		return written, err
	}
	return written, nil
}
