package svgo

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/SH20RAJ/icons/raster"
	"github.com/SH20RAJ/icons/svgdoc"
	"github.com/SH20RAJ/icons/svgpath"
)

// rewrite replaces, bottom up, every child of n by the nodes fn returns for it.
func rewrite(n *svgdoc.Node, fn func(parent, child *svgdoc.Node) []*svgdoc.Node) {
	var out []*svgdoc.Node
	for _, c := range n.Children {
		rewrite(c, fn)
		out = append(out, fn(n, c)...)
	}
	n.Children = out
}

// elements calls fn for n and every element below it.
func elements(n *svgdoc.Node, fn func(*svgdoc.Node)) {
	n.Walk(func(x *svgdoc.Node) bool {
		if x.Type == svgdoc.ElementNode {
			fn(x)
		}
		return true
	})
}

// removeComments drops comments, except the ones starting with "!".
func removeComments(root *svgdoc.Node, _ *Config) error {
	root.Filter(func(n *svgdoc.Node) bool {
		return n.Type == svgdoc.CommentNode && !strings.HasPrefix(n.Value, "!")
	})
	return nil
}

func removeElements(names ...string) pluginFunc {
	return func(root *svgdoc.Node, _ *Config) error {
		root.Filter(func(n *svgdoc.Node) bool {
			return n.Type == svgdoc.ElementNode && slices.Contains(names, n.Name)
		})
		return nil
	}
}

var editorNamespaces = map[string]bool{
	"http://creativecommons.org/ns#":                         true,
	"http://inkscape.sourceforge.net/DTD/sodipodi-0.dtd":     true,
	"http://ns.adobe.com/AdobeIllustrator/10.0/":             true,
	"http://ns.adobe.com/AdobeSVGViewerExtensions/3.0/":      true,
	"http://ns.adobe.com/Extensibility/1.0/":                 true,
	"http://ns.adobe.com/Flows/1.0/":                         true,
	"http://ns.adobe.com/GenericCustomNamespace/1.0/":        true,
	"http://ns.adobe.com/Graphs/1.0/":                        true,
	"http://ns.adobe.com/ImageReplacement/1.0/":              true,
	"http://ns.adobe.com/SaveForWeb/1.0/":                    true,
	"http://ns.adobe.com/Variables/1.0/":                     true,
	"http://ns.adobe.com/XPath/1.0/":                         true,
	"http://purl.org/dc/elements/1.1/":                       true,
	"http://schemas.microsoft.com/visio/2003/SVGExtensions/": true,
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd":     true,
	"http://taptrix.com/vectorillustrator/svg_extensions":    true,
	"http://www.bohemiancoding.com/sketch/ns":                true,
	"http://www.figma.com/figma/ns":                          true,
	"http://www.inkscape.org/namespaces/inkscape":            true,
	"http://www.serif.com/":                                  true,
	"http://www.vector.evaxdesign.sk":                        true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":            true,
}

// removeEditorsNSData drops the namespace declarations of drawing editors
// together with every element and attribute using them.
func removeEditorsNSData(root *svgdoc.Node, _ *Config) error {
	prefixes := make(map[string]bool)
	elements(root, func(n *svgdoc.Node) {
		n.RemoveAttr(func(a svgdoc.Attr) bool {
			if svgdoc.Prefix(a.Name) == "xmlns" && editorNamespaces[a.Value] {
				prefixes[strings.TrimPrefix(a.Name, "xmlns:")] = true
				return true
			}
			return false
		})
	})
	if len(prefixes) == 0 {
		return nil
	}
	root.Filter(func(n *svgdoc.Node) bool {
		return n.Type == svgdoc.ElementNode && prefixes[svgdoc.Prefix(n.Name)]
	})
	elements(root, func(n *svgdoc.Node) {
		n.RemoveAttr(func(a svgdoc.Attr) bool { return prefixes[svgdoc.Prefix(a.Name)] })
	})
	return nil
}

var spaces = regexp.MustCompile(`\s+`)

// cleanupAttrs collapses runs of whitespace in attribute values.
func cleanupAttrs(root *svgdoc.Node, _ *Config) error {
	elements(root, func(n *svgdoc.Node) {
		for i := range n.Attrs {
			n.Attrs[i].Value = strings.TrimSpace(spaces.ReplaceAllString(n.Attrs[i].Value, " "))
		}
	})
	return nil
}

var conditionalAttrs = []string{"requiredFeatures", "requiredExtensions", "systemLanguage"}

func removeEmptyAttrs(root *svgdoc.Node, _ *Config) error {
	elements(root, func(n *svgdoc.Node) {
		n.RemoveAttr(func(a svgdoc.Attr) bool {
			return a.Value == "" && !slices.Contains(conditionalAttrs, a.Name)
		})
	})
	return nil
}

var (
	colorAttrs = []string{"color", "fill", "flood-color", "lighting-color", "stop-color", "stroke"}
	hexColor   = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColor   = regexp.MustCompile(`^rgb\(\s*([^,\s)]+)\s*[,\s]\s*([^,\s)]+)\s*[,\s]\s*([^,\s)]+)\s*\)$`)
)

// convertColors rewrites rgb() notation to hex, lower-cases hex colors and
// shortens them to three digits where possible.
func convertColors(root *svgdoc.Node, _ *Config) error {
	elements(root, func(n *svgdoc.Node) {
		for i, a := range n.Attrs {
			if slices.Contains(colorAttrs, a.Name) {
				n.Attrs[i].Value = shortColor(a.Value)
			}
		}
	})
	return nil
}

func shortColor(v string) string {
	if m := rgbColor.FindStringSubmatch(v); m != nil {
		var hex strings.Builder
		hex.WriteByte('#')
		for _, c := range m[1:] {
			b, ok := colorChannel(c)
			if !ok {
				return v
			}
			fmt.Fprintf(&hex, "%02x", b)
		}
		v = hex.String()
	}
	if !hexColor.MatchString(v) {
		return v
	}
	v = strings.ToLower(v)
	if len(v) == 7 && v[1] == v[2] && v[3] == v[4] && v[5] == v[6] {
		v = string([]byte{'#', v[1], v[3], v[5]})
	}
	return v
}

func colorChannel(s string) (int, bool) {
	pct := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	if pct {
		f = f * 255 / 100
	}
	return int(min(max(svgpath.RoundNumber(f, 0), 0), 255)), true
}

var numericValue = regexp.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)(px)?$`)

// cleanupNumericValues rounds numeric attribute values to the path
// precision and strips the default "px" unit.
func cleanupNumericValues(root *svgdoc.Node, _ *Config) error {
	elements(root, func(n *svgdoc.Node) {
		for i, a := range n.Attrs {
			switch a.Name {
			case "version", "id":
				continue
			case "viewBox":
				n.Attrs[i].Value = cleanupList(a.Value)
				continue
			}
			if m := numericValue.FindStringSubmatch(a.Value); m != nil {
				n.Attrs[i].Value = cleanupNumber(m[1])
			}
		}
	})
	return nil
}

func cleanupNumber(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return svgpath.FormatNumber(svgpath.RoundNumber(f, svgpath.DefaultPrecision))
}

func cleanupList(v string) string {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	for i, f := range fields {
		if !numericValue.MatchString(f) {
			return v
		}
		fields[i] = cleanupNumber(numericValue.FindStringSubmatch(f)[1])
	}
	return strings.Join(fields, " ")
}

func removeEmptyText(root *svgdoc.Node, _ *Config) error {
	root.Filter(func(n *svgdoc.Node) bool {
		if n.Type != svgdoc.ElementNode {
			return false
		}
		switch n.Name {
		case "text", "tspan":
			return len(n.Children) == 0
		case "tref":
			_, ok := n.Attr("xlink:href")
			return !ok
		}
		return false
	})
	return nil
}

// collapseGroups inlines groups without attributes, and groups wrapping a
// single element whose attributes can move onto that element.
func collapseGroups(root *svgdoc.Node, _ *Config) error {
	rewrite(root, func(_, g *svgdoc.Node) []*svgdoc.Node {
		if g.Type != svgdoc.ElementNode || g.Name != "g" {
			return []*svgdoc.Node{g}
		}
		if len(g.Attrs) == 0 {
			return g.Children
		}
		if len(g.Children) != 1 || g.Children[0].Type != svgdoc.ElementNode {
			return []*svgdoc.Node{g}
		}
		child := g.Children[0]
		for _, a := range g.Attrs {
			switch a.Name {
			case "id", "filter", "mask", "clip-path":
				return []*svgdoc.Node{g}
			case "transform":
				continue
			}
			if _, ok := child.Attr(a.Name); ok {
				return []*svgdoc.Node{g}
			}
		}
		for _, a := range g.Attrs {
			if a.Name == "transform" {
				if t, ok := child.Attr("transform"); ok {
					child.SetAttr("transform", a.Value+" "+t)
					continue
				}
			}
			child.SetAttr(a.Name, a.Value)
		}
		return []*svgdoc.Node{child}
	})
	return nil
}

// convertPathData rewrites the d attribute of every path into its optimized
// relative form. Path data that cannot be parsed is left alone.
func convertPathData(root *svgdoc.Node, c *Config) error {
	elements(root, func(n *svgdoc.Node) {
		if n.Name != "path" {
			return
		}
		d, ok := n.Attr("d")
		if !ok {
			return
		}
		opt, err := svgpath.Optimize(d)
		if err != nil {
			tracer().Errorf("keeping path data: %v", err)
			return
		}
		if c.verify {
			same, err := raster.Equivalent(d, opt, c.tolerance)
			if err != nil || !same {
				tracer().Infof("optimized path %q does not cover the source area, keeping it", d)
				return
			}
		}
		n.SetAttr("d", opt)
	})
	return nil
}

var unmergeable = []string{"id", "clip-path", "mask", "marker-start", "marker-mid", "marker-end"}

func mergeable(n *svgdoc.Node) bool {
	if n.Type != svgdoc.ElementNode || n.Name != "path" || len(n.Children) > 0 {
		return false
	}
	if _, ok := n.Attr("d"); !ok {
		return false
	}
	for _, name := range unmergeable {
		if _, ok := n.Attr(name); ok {
			return false
		}
	}
	return true
}

func sameAttrs(a, b *svgdoc.Node) bool {
	count := 0
	for _, x := range a.Attrs {
		if x.Name == "d" {
			continue
		}
		v, ok := b.Attr(x.Name)
		if !ok || v != x.Value {
			return false
		}
		count++
	}
	return count == len(b.Attrs)-1
}

// mergePaths joins adjacent sibling paths carrying the same attributes into
// one path element.
func mergePaths(root *svgdoc.Node, _ *Config) error {
	root.Walk(func(n *svgdoc.Node) bool {
		var (
			out  []*svgdoc.Node
			prev *svgdoc.Node
		)
		for _, c := range n.Children {
			if prev != nil && mergeable(c) && sameAttrs(prev, c) {
				if d, ok := joinPathData(prev, c); ok {
					prev.SetAttr("d", d)
					continue
				}
			}
			out = append(out, c)
			prev = nil
			if mergeable(c) {
				prev = c
			}
		}
		n.Children = out
		return true
	})
	return nil
}

func joinPathData(a, b *svgdoc.Node) (string, bool) {
	da, _ := a.Attr("d")
	db, _ := b.Attr("d")
	pa, err := svgpath.Parse(da)
	if err != nil {
		return "", false
	}
	pb, err := svgpath.Parse(db)
	if err != nil || len(pb) == 0 {
		return "", false
	}
	// a leading moveto is absolute even when written relative
	pb[0].Cmd = 'M'
	return pa.String() + pb.String(), true
}

var containers = []string{"a", "defs", "foreignObject", "g", "marker", "mask", "missing-glyph", "pattern", "switch", "symbol"}

func removeEmptyContainers(root *svgdoc.Node, _ *Config) error {
	rewrite(root, func(_, n *svgdoc.Node) []*svgdoc.Node {
		if n.Type != svgdoc.ElementNode || len(n.Children) > 0 || !slices.Contains(containers, n.Name) {
			return []*svgdoc.Node{n}
		}
		switch {
		case n.Name == "pattern" && len(n.Attrs) > 0:
			return []*svgdoc.Node{n}
		case n.Name == "mask":
			if _, ok := n.Attr("id"); ok {
				return []*svgdoc.Node{n}
			}
		case n.Name == "g":
			if _, ok := n.Attr("filter"); ok {
				return []*svgdoc.Node{n}
			}
		}
		return nil
	})
	return nil
}

var attrOrder = []string{"id", "width", "height", "x", "x1", "x2", "y", "y1", "y2", "cx", "cy", "r", "fill", "stroke", "marker", "d", "points"}

func attrRank(name string) int {
	if name == "xmlns" || svgdoc.Prefix(name) == "xmlns" {
		return -1
	}
	for i, o := range attrOrder {
		if name == o || strings.HasPrefix(name, o+"-") {
			return i
		}
	}
	return len(attrOrder)
}

// sortAttrs orders attributes: namespace declarations, then a fixed list of
// geometry and paint attributes, then the rest alphabetically.
func sortAttrs(root *svgdoc.Node, _ *Config) error {
	elements(root, func(n *svgdoc.Node) {
		slices.SortStableFunc(n.Attrs, func(a, b svgdoc.Attr) int {
			if c := cmp.Compare(attrRank(a.Name), attrRank(b.Name)); c != 0 {
				return c
			}
			return cmp.Compare(a.Name, b.Name)
		})
	})
	return nil
}
