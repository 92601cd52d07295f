package icons

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/SH20RAJ/icons/svgdoc"
)

// BackgroundMarker is the full canvas rectangle drawing editors leave in the
// icon sources. It is removed before parsing.
const BackgroundMarker = `<path stroke="none" d="M0 0h24v24H0z" fill="none"/>`

// Icon is a single loaded icon source.
type Icon struct {
	Name       string
	PascalName string
	// Contents is the trimmed source, marker included.
	Contents string
	Document *svgdoc.Node
	Path     string
}

// LoadOptions tunes LoadIcons.
type LoadOptions struct {
	// Limit caps the number of files loaded. Zero or less loads every file.
	Limit int
}

// ListSVGFiles returns the paths of the .svg files directly inside dir, in
// directory listing order, truncated to limit entries when limit > 0.
func ListSVGFiles(dir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fsError("list icons in", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".svg" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if limit > 0 && len(files) > limit {
		tracer().Debugf("limiting %s to %d of %d icons", dir, limit, len(files))
		files = files[:limit]
	}
	return files, nil
}

// LoadIcons loads every icon of dir. A malformed source aborts the whole
// batch.
func LoadIcons(dir string, opts LoadOptions) ([]Icon, error) {
	files, err := ListSVGFiles(dir, opts.Limit)
	if err != nil {
		return nil, err
	}
	icons := make([]Icon, 0, len(files))
	for _, f := range files {
		icon, err := LoadIcon(f)
		if err != nil {
			return nil, err
		}
		icons = append(icons, icon)
	}
	tracer().Infof("loaded %d icons from %s", len(icons), dir)
	return icons, nil
}

// LoadIcon reads and parses a single icon source.
func LoadIcon(path string) (Icon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Icon{}, fsError("read icon", path, err)
	}
	contents := strings.TrimSpace(string(raw))
	doc, err := svgdoc.Parse(strings.Replace(contents, BackgroundMarker, "", 1))
	if err != nil {
		return Icon{}, parseError("parse icon", path, err)
	}
	tracer().Debugf("loaded %s", path)

	name := IconName(path)
	return Icon{
		Name:       name,
		PascalName: PascalName(name),
		Contents:   contents,
		Document:   doc,
		Path:       path,
	}, nil
}

// Names returns the names of icons, in order.
func Names(icons []Icon) []string {
	names := make([]string, len(icons))
	for i, icon := range icons {
		names[i] = icon.Name
	}
	return names
}
