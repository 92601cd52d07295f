package icons

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/SH20RAJ/icons/utils"
)

// CompileOptionsFile is the usual name of the compile options file.
const CompileOptionsFile = "compile-options.json"

// CompileOptions selects the icons and settings of a font build.
type CompileOptions struct {
	// IncludeIcons lists the icons to build. Empty means all of them.
	IncludeIcons []string
	// StrokeWidth overrides the stroke width of outline icons when set.
	StrokeWidth *string
	// FontForge is the fontforge binary.
	FontForge string
}

// DefaultCompileOptions returns the options used when no file is present.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{
		IncludeIcons: []string{},
		FontForge:    "fontforge",
	}
}

// Includes reports whether the named icon is part of the build.
func (o CompileOptions) Includes(name string) bool {
	return len(o.IncludeIcons) == 0 || utils.Contains(o.IncludeIcons, name)
}

// FilterIcons returns the icons that are part of the build, in order.
func (o CompileOptions) FilterIcons(icons []Icon) []Icon {
	var kept []Icon
	for _, icon := range icons {
		if o.Includes(icon.Name) {
			kept = append(kept, icon)
		}
	}
	return kept
}

// CompileSources locates the files the compile options refer to.
type CompileSources struct {
	// CategoriesDir holds one directory of icons per category.
	CategoriesDir string
}

// compileSchema is the shape of the compile options file.
type compileSchema struct {
	IncludeIcons      *[]string    `json:"includeIcons"`
	IncludeCategories *[]string    `json:"includeCategories"`
	ExcludeIcons      *[]string    `json:"excludeIcons"`
	ExcludeOffIcons   *bool        `json:"excludeOffIcons"`
	StrokeWidth       *strokeWidth `json:"strokeWidth"`
	FontForge         *string      `json:"fontForge"`
}

// strokeWidth accepts a JSON string or number and keeps its text.
type strokeWidth string

func (s *strokeWidth) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = strokeWidth(v)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return &propertyError{name: "strokeWidth", want: "a string or number"}
	}
	*s = strokeWidth(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

type propertyError struct {
	name, want string
}

func (e *propertyError) Error() string {
	return fmt.Sprintf("property %s is not %s", e.name, e.want)
}

// ReadCompileOptions reads the compile options stored at path and merges them
// over the defaults. A missing file yields the defaults. A file of the wrong
// shape fails with a single configuration error naming the property.
func ReadCompileOptions(path string, src CompileSources) (CompileOptions, error) {
	opts := DefaultCompileOptions()
	op := "Error reading " + filepath.Base(path)

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		tracer().Debugf("no %s, using the default compile options", path)
		return opts, nil
	}
	if err != nil {
		return opts, fsError("read compile options", path, err)
	}

	var schema compileSchema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return DefaultCompileOptions(), configError(op, schemaError(err))
	}

	if schema.IncludeIcons != nil {
		opts.IncludeIcons = append([]string{}, *schema.IncludeIcons...)
	}
	if schema.IncludeCategories != nil {
		for _, category := range *schema.IncludeCategories {
			files, err := filepath.Glob(filepath.Join(src.CategoriesDir, category, "*"))
			if err != nil {
				return DefaultCompileOptions(), configError(op, fmt.Errorf("category %q: %w", category, err))
			}
			for _, f := range files {
				opts.IncludeIcons = append(opts.IncludeIcons, IconName(f))
			}
		}
	}
	if schema.ExcludeIcons != nil {
		opts.IncludeIcons = filterNames(opts.IncludeIcons, func(name string) bool {
			return !utils.Contains(*schema.ExcludeIcons, name)
		})
	}
	if schema.ExcludeOffIcons != nil && *schema.ExcludeOffIcons {
		opts.IncludeIcons = filterNames(opts.IncludeIcons, func(name string) bool {
			return !strings.HasSuffix(name, "-off")
		})
	}
	if schema.StrokeWidth != nil {
		sw := string(*schema.StrokeWidth)
		opts.StrokeWidth = &sw
	}
	if schema.FontForge != nil {
		opts.FontForge = *schema.FontForge
	}
	opts.IncludeIcons = dedupe(opts.IncludeIcons)
	return opts, nil
}

// schemaError rewrites a decoding error into a message naming the property.
func schemaError(err error) error {
	var (
		perr   *propertyError
		terr   *json.UnmarshalTypeError
		synerr *json.SyntaxError
	)
	switch {
	case errors.As(err, &perr):
		return perr
	case errors.As(err, &terr):
		if terr.Field == "" {
			return errors.New("the options must be a JSON object")
		}
		name := strings.SplitN(terr.Field, ".", 2)[0]
		switch {
		case terr.Type.Kind() == reflect.Slice:
			return &propertyError{name: name, want: "an array"}
		case terr.Type.Kind() == reflect.Bool:
			return &propertyError{name: name, want: "a boolean"}
		case name == "includeIcons" || name == "includeCategories" || name == "excludeIcons":
			return &propertyError{name: name, want: "an array of strings"}
		default:
			return &propertyError{name: name, want: "a string"}
		}
	case errors.As(err, &synerr):
		return fmt.Errorf("malformed JSON at offset %d: %w", synerr.Offset, err)
	}
	return err
}

func filterNames(names []string, keep func(string) bool) []string {
	kept := []string{}
	for _, n := range names {
		if keep(n) {
			kept = append(kept, n)
		}
	}
	return kept
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
