package svgpath

import (
	"fmt"
	"strconv"
)

// argCount holds the number of numeric arguments taken by each command.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// SyntaxError reports a malformed path data string.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d", e.Msg, e.Offset)
}

// scanner walks the path data byte by byte. Numbers are read on demand,
// because arc flags may be written without any separator ("a1 1 0 00.5.5").
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) skipSeparators() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: sc.pos, Msg: fmt.Sprintf(format, args...)}
}

// number reads a floating point number: sign, integer part, fraction, exponent.
func (sc *scanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
		sc.pos++
	}
	digits := 0
	for sc.pos < len(sc.s) && isDigit(sc.s[sc.pos]) {
		sc.pos++
		digits++
	}
	if sc.pos < len(sc.s) && sc.s[sc.pos] == '.' {
		sc.pos++
		for sc.pos < len(sc.s) && isDigit(sc.s[sc.pos]) {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		sc.pos = start
		return 0, sc.errorf("expected number")
	}
	if sc.pos < len(sc.s) && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		// Only consume the exponent when digits follow, "1e" is not a number.
		p := sc.pos + 1
		if p < len(sc.s) && (sc.s[p] == '+' || sc.s[p] == '-') {
			p++
		}
		if p < len(sc.s) && isDigit(sc.s[p]) {
			for p < len(sc.s) && isDigit(sc.s[p]) {
				p++
			}
			sc.pos = p
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, &SyntaxError{Offset: start, Msg: err.Error()}
	}
	return v, nil
}

// flag reads a single arc flag character.
func (sc *scanner) flag() (float64, error) {
	sc.skipSeparators()
	if sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case '0':
			sc.pos++
			return 0, nil
		case '1':
			sc.pos++
			return 1, nil
		}
	}
	return 0, sc.errorf("expected arc flag")
}

// startsNumber reports whether the next token is the beginning of a number.
func (sc *scanner) startsNumber() bool {
	if sc.eof() {
		return false
	}
	c := sc.s[sc.pos]
	return isDigit(c) || c == '.' || c == '-' || c == '+'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCommand(c byte) bool {
	_, ok := argCount[upper(c)]
	return ok
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// Parse splits path data into segments. Every segment carries its own
// command: implicitly repeated commands are expanded, and coordinate pairs
// following a moveto become lineto segments of the same case.
func Parse(d string) (Path, error) {
	var (
		path Path
		cmd  byte
	)
	sc := &scanner{s: d}

	for {
		sc.skipSeparators()
		if sc.eof() {
			break
		}
		c := sc.s[sc.pos]
		switch {
		case isCommand(c):
			cmd = c
			sc.pos++
		case cmd == 0:
			return nil, sc.errorf("path data must start with a command, got %q", c)
		case upper(cmd) == 'Z':
			return nil, sc.errorf("unexpected %q after closepath", c)
		case !sc.startsNumber():
			return nil, sc.errorf("unexpected character %q", c)
		}

		n := argCount[upper(cmd)]
		seg := Segment{Cmd: cmd}
		if n > 0 {
			seg.Args = make([]float64, n)
			for i := 0; i < n; i++ {
				var err error
				if upper(cmd) == 'A' && (i == 3 || i == 4) {
					seg.Args[i], err = sc.flag()
				} else {
					seg.Args[i], err = sc.number()
				}
				if err != nil {
					return nil, err
				}
			}
		}
		path = append(path, seg)

		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
		if len(path) == 1 && upper(path[0].Cmd) != 'M' {
			return nil, &SyntaxError{Offset: 0, Msg: "path data must start with a moveto"}
		}
	}
	return path, nil
}
