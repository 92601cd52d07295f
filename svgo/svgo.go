package svgo

import (
	"fmt"
	"strings"

	"github.com/SH20RAJ/icons/svgdoc"
)

// pluginFunc rewrites the document rooted at root in place.
type pluginFunc func(root *svgdoc.Node, c *Config) error

// Plugin is a named optimization pass.
type Plugin struct {
	Name string
	fn   pluginFunc
}

// preset lists the default passes in the order they run.
var preset = []Plugin{
	{"removeComments", removeComments},
	{"removeMetadata", removeElements("metadata")},
	{"removeEditorsNSData", removeEditorsNSData},
	{"cleanupAttrs", cleanupAttrs},
	{"removeTitle", removeElements("title")},
	{"removeDesc", removeElements("desc")},
	{"removeEmptyAttrs", removeEmptyAttrs},
	{"convertColors", convertColors},
	{"cleanupNumericValues", cleanupNumericValues},
	{"removeEmptyText", removeEmptyText},
	{"collapseGroups", collapseGroups},
	{"convertPathData", convertPathData},
	{"mergePaths", mergePaths},
	{"removeEmptyContainers", removeEmptyContainers},
	{"sortAttrs", sortAttrs},
}

// Plugins returns the names of the default passes, in running order.
func Plugins() []string {
	names := make([]string, len(preset))
	for i, p := range preset {
		names[i] = p.Name
	}
	return names
}

// Config holds the settings of one optimizer run.
type Config struct {
	overrides map[string]bool
	indent    string
	pretty    bool
	verify    bool
	tolerance uint8
}

// Option customizes a Config.
type Option func(*Config)

// WithOverride turns the named plugin on or off.
func WithOverride(name string, enabled bool) Option {
	return func(c *Config) {
		c.overrides[name] = enabled
	}
}

// WithPretty switches to indented output, one element per line.
func WithPretty(pretty bool) Option {
	return func(c *Config) {
		c.pretty = pretty
	}
}

// WithIndent sets the indentation used by pretty output.
func WithIndent(indent string) Option {
	return func(c *Config) {
		c.indent = indent
	}
}

// WithPathVerification makes convertPathData render every rewritten path
// and keep the original data when the coverage masks differ by more than
// tolerance alpha levels.
func WithPathVerification(tolerance uint8) Option {
	return func(c *Config) {
		c.verify = true
		c.tolerance = tolerance
	}
}

func newConfig(opts ...Option) (*Config, error) {
	c := &Config{
		overrides: make(map[string]bool),
		indent:    "  ",
	}
	for _, opt := range opts {
		opt(c)
	}
	known := make(map[string]bool, len(preset))
	for _, p := range preset {
		known[p.Name] = true
	}
	for name := range c.overrides {
		if !known[name] {
			return nil, fmt.Errorf("svgo: unknown plugin %q", name)
		}
	}
	return c, nil
}

func (c *Config) enabled(name string) bool {
	on, ok := c.overrides[name]
	return !ok || on
}

// Icon returns the options of the preset applied to icon sources: paths are
// never merged and the output is pretty printed with two spaces.
func Icon() []Option {
	return []Option{
		WithOverride("mergePaths", false),
		WithPretty(true),
		WithIndent("  "),
	}
}

// Optimize parses svg, runs the enabled plugins and serializes the result.
// The input string is never modified.
func Optimize(svg string, opts ...Option) (string, error) {
	c, err := newConfig(opts...)
	if err != nil {
		return "", err
	}
	root, err := svgdoc.Parse(svg)
	if err != nil {
		return "", fmt.Errorf("svgo: %w", err)
	}
	for _, p := range preset {
		if !c.enabled(p.Name) {
			continue
		}
		if err := p.fn(root, c); err != nil {
			return "", fmt.Errorf("svgo: %s: %w", p.Name, err)
		}
	}
	if c.pretty {
		return strings.TrimSuffix(root.Indent(c.indent), "\n"), nil
	}
	return root.String(), nil
}

// OptimizeIcon optimizes svg with the Icon preset, plus any extra options.
func OptimizeIcon(svg string, opts ...Option) (string, error) {
	return Optimize(svg, append(Icon(), opts...)...)
}
