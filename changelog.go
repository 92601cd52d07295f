package icons

import (
	"fmt"
	"io"
	"strings"
)

// Rename records an icon renamed between two releases.
type Rename struct {
	From, To string
}

// Changelog lists the icon changes of a release.
type Changelog struct {
	New      []string
	Modified []string
	Renamed  []Rename
}

// ChangelogMode selects the layout of PrintChangelog.
type ChangelogMode int

const (
	// Compact prints each list on a single line.
	Compact ChangelogMode = iota
	// Itemized prints markdown headings with one bullet per icon.
	Itemized
)

// PrintChangelog writes c to w. Empty lists are left out. Renamed icons are
// always printed one bullet per pair.
func PrintChangelog(w io.Writer, c Changelog, mode ChangelogMode) error {
	var b strings.Builder
	if len(c.New) > 0 {
		if mode == Itemized {
			fmt.Fprintf(&b, "### %d new %s:\n\n", len(c.New), plural("icon", len(c.New)))
			writeBullets(&b, c.New)
		} else {
			fmt.Fprintf(&b, "%d new icons: %s\n", len(c.New), codeList(c.New))
		}
		b.WriteString("\n")
	}
	if len(c.Modified) > 0 {
		if mode == Itemized {
			fmt.Fprintf(&b, "### %d fixed %s:\n\n", len(c.Modified), plural("icon", len(c.Modified)))
			writeBullets(&b, c.Modified)
		} else {
			fmt.Fprintf(&b, "Fixed icons: %s\n", codeList(c.Modified))
		}
		b.WriteString("\n")
	}
	if len(c.Renamed) > 0 {
		b.WriteString("Renamed icons: \n")
		for _, r := range c.Renamed {
			fmt.Fprintf(&b, "- `%s` renamed to `%s`\n", r.From, r.To)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func codeList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}

func writeBullets(b *strings.Builder, names []string) {
	for _, n := range names {
		fmt.Fprintf(b, "- `%s`\n", n)
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
