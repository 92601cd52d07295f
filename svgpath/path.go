package svgpath

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals kept by Optimize.
const DefaultPrecision = 3

// Segment is a single drawing command with its numeric arguments.
// Lowercase commands are relative to the current point.
type Segment struct {
	Cmd  byte
	Args []float64
}

// Relative reports whether the segment uses relative coordinates.
func (s Segment) Relative() bool { return s.Cmd >= 'a' && s.Cmd <= 'z' }

func (s Segment) clone() Segment {
	return Segment{Cmd: s.Cmd, Args: append([]float64(nil), s.Args...)}
}

// Path is a parsed sequence of segments.
type Path []Segment

func (p Path) clone() Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[i] = s.clone()
	}
	return out
}

// cursor tracks the absolute current point and the start of the current sub-path.
type cursor struct {
	x, y   float64
	sx, sy float64
}

// advance moves the cursor past segment s, which must be expressed in the
// coordinate mode given by its own command case.
func (c *cursor) advance(s Segment) {
	rel := s.Relative()
	switch upper(s.Cmd) {
	case 'Z':
		c.x, c.y = c.sx, c.sy
		return
	case 'H':
		if rel {
			c.x += s.Args[0]
		} else {
			c.x = s.Args[0]
		}
		return
	case 'V':
		if rel {
			c.y += s.Args[0]
		} else {
			c.y = s.Args[0]
		}
		return
	}
	n := len(s.Args)
	if rel {
		c.x += s.Args[n-2]
		c.y += s.Args[n-1]
	} else {
		c.x, c.y = s.Args[n-2], s.Args[n-1]
	}
	if upper(s.Cmd) == 'M' {
		c.sx, c.sy = c.x, c.y
	}
}

// shift adds (dx, dy) to every coordinate of the segment. Arc radii,
// rotation and flags are left untouched.
func shift(s *Segment, dx, dy float64) {
	switch upper(s.Cmd) {
	case 'Z':
	case 'H':
		s.Args[0] += dx
	case 'V':
		s.Args[0] += dy
	case 'A':
		s.Args[5] += dx
		s.Args[6] += dy
	default:
		for i := range s.Args {
			if i%2 == 0 {
				s.Args[i] += dx
			} else {
				s.Args[i] += dy
			}
		}
	}
}

// Rel returns a copy of the path with every segment converted to relative
// form. A leading absolute moveto is kept as is: relative to the origin it
// has the same coordinates either way.
func (p Path) Rel() Path {
	out := p.clone()
	var c cursor
	for i := range out {
		s := &out[i]
		orig := s.clone()
		if !s.Relative() && !(i == 0 && s.Cmd == 'M') {
			shift(s, -c.x, -c.y)
			s.Cmd = lower(s.Cmd)
		}
		c.advance(orig)
	}
	return out
}

// Abs returns a copy of the path with every segment converted to absolute form.
func (p Path) Abs() Path {
	out := p.clone()
	var c cursor
	for i := range out {
		s := &out[i]
		orig := s.clone()
		if s.Relative() {
			shift(s, c.x, c.y)
			s.Cmd = upper(s.Cmd)
		}
		c.advance(orig)
	}
	return out
}

// Round returns a copy of the path rounded to the given number of decimals.
//
// The rounding error of each segment end point is carried into the next
// relative segment, and restored to the sub-path start error on closepath,
// so the rendered points never drift further than the rounding granularity.
func (p Path) Round(decimals int) Path {
	out := p.clone()
	var (
		dx, dy   float64
		cdx, cdy float64
	)
	for i := range out {
		s := &out[i]
		rel := s.Relative()
		switch upper(s.Cmd) {
		case 'H':
			if rel {
				s.Args[0] += dx
			}
			r := roundTo(s.Args[0], decimals)
			dx = s.Args[0] - r
			s.Args[0] = r
		case 'V':
			if rel {
				s.Args[0] += dy
			}
			r := roundTo(s.Args[0], decimals)
			dy = s.Args[0] - r
			s.Args[0] = r
		case 'Z':
			dx, dy = cdx, cdy
		case 'M':
			if rel {
				s.Args[0] += dx
				s.Args[1] += dy
			}
			dx = s.Args[0] - roundTo(s.Args[0], decimals)
			dy = s.Args[1] - roundTo(s.Args[1], decimals)
			cdx, cdy = dx, dy
			s.Args[0] = roundTo(s.Args[0], decimals)
			s.Args[1] = roundTo(s.Args[1], decimals)
		case 'A':
			if rel {
				s.Args[5] += dx
				s.Args[6] += dy
			}
			dx = s.Args[5] - roundTo(s.Args[5], decimals)
			dy = s.Args[6] - roundTo(s.Args[6], decimals)
			s.Args[0] = roundTo(s.Args[0], decimals)
			s.Args[1] = roundTo(s.Args[1], decimals)
			s.Args[2] = roundTo(s.Args[2], decimals+2)
			s.Args[5] = roundTo(s.Args[5], decimals)
			s.Args[6] = roundTo(s.Args[6], decimals)
		default:
			n := len(s.Args)
			if rel {
				s.Args[n-2] += dx
				s.Args[n-1] += dy
			}
			dx = s.Args[n-2] - roundTo(s.Args[n-2], decimals)
			dy = s.Args[n-1] - roundTo(s.Args[n-1], decimals)
			for j := range s.Args {
				s.Args[j] = roundTo(s.Args[j], decimals)
			}
		}
	}
	return out
}

// String serializes the path: each segment's tokens joined by single spaces,
// segments concatenated without separator.
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteByte(s.Cmd)
		for _, a := range s.Args {
			b.WriteByte(' ')
			b.WriteString(FormatNumber(a))
		}
	}
	return b.String()
}

// Optimize converts path data into its canonical relative form with
// coordinates rounded to DefaultPrecision decimals. Applying Optimize to its
// own output returns the same string.
func Optimize(d string) (string, error) {
	p, err := Parse(d)
	if err != nil {
		return "", err
	}
	return p.Rel().Round(DefaultPrecision).String(), nil
}

// roundTo rounds half away from zero at the given decimal.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	r := math.Round(v*pow) / pow
	if r == 0 {
		// normalizes negative zero
		return 0
	}
	return r
}

// FormatNumber returns the shortest decimal representation of v.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RoundNumber rounds v half away from zero at the given decimal, the way
// Round treats path coordinates.
func RoundNumber(v float64, decimals int) float64 {
	return roundTo(v, decimals)
}
