package svgpath

import "math"

// Normalize returns an absolute path made only of M, L, C, Q and Z segments.
// Shorthand curves are expanded with their reflected control points,
// horizontal and vertical lines become lines, and elliptical arcs are
// approximated by cubic Béziers. The result is meant for rendering.
func (p Path) Normalize() Path {
	var (
		out          Path
		c            cursor
		ctrlX, ctrlY float64
		prevCmd      byte
	)
	for _, s := range p.Abs() {
		a := s.Args
		switch s.Cmd {
		case 'M':
			out = append(out, Segment{Cmd: 'M', Args: []float64{a[0], a[1]}})
		case 'L':
			out = append(out, Segment{Cmd: 'L', Args: []float64{a[0], a[1]}})
		case 'H':
			out = append(out, Segment{Cmd: 'L', Args: []float64{a[0], c.y}})
		case 'V':
			out = append(out, Segment{Cmd: 'L', Args: []float64{c.x, a[0]}})
		case 'C':
			out = append(out, Segment{Cmd: 'C', Args: append([]float64(nil), a...)})
			ctrlX, ctrlY = a[2], a[3]
		case 'S':
			x1, y1 := c.x, c.y
			if prevCmd == 'C' || prevCmd == 'S' {
				x1, y1 = 2*c.x-ctrlX, 2*c.y-ctrlY
			}
			out = append(out, Segment{Cmd: 'C', Args: []float64{x1, y1, a[0], a[1], a[2], a[3]}})
			ctrlX, ctrlY = a[0], a[1]
		case 'Q':
			out = append(out, Segment{Cmd: 'Q', Args: append([]float64(nil), a...)})
			ctrlX, ctrlY = a[0], a[1]
		case 'T':
			x1, y1 := c.x, c.y
			if prevCmd == 'Q' || prevCmd == 'T' {
				x1, y1 = 2*c.x-ctrlX, 2*c.y-ctrlY
			}
			out = append(out, Segment{Cmd: 'Q', Args: []float64{x1, y1, a[0], a[1]}})
			ctrlX, ctrlY = x1, y1
		case 'A':
			out = append(out, arcToCubics(c.x, c.y, a[0], a[1], a[2], a[3] != 0, a[4] != 0, a[5], a[6])...)
		case 'Z':
			out = append(out, Segment{Cmd: 'Z'})
		}
		prevCmd = s.Cmd
		c.advance(s)
	}
	return out
}

// arcToCubics converts an SVG elliptical arc from (x1, y1) to (x2, y2) into
// cubic Bézier segments, each spanning at most a quarter turn.
func arcToCubics(x1, y1, rx, ry, xRot float64, largeArc, sweep bool, x2, y2 float64) []Segment {
	if x1 == x2 && y1 == y2 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Segment{{Cmd: 'L', Args: []float64{x2, y2}}}
	}

	phi := xRot * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Step 1: compute (x1', y1').
	dx, dy := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Correct out-of-range radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: compute (cx', cy').
	rxSq, rySq := rx*rx, ry*ry
	denom := rxSq*y1p*y1p + rySq*x1p*x1p
	if denom == 0 {
		return []Segment{{Cmd: 'L', Args: []float64{x2, y2}}}
	}
	num := rxSq*rySq - denom
	if num < 0 {
		num = 0
	}
	sq := math.Sqrt(num / denom)
	if largeArc == sweep {
		sq = -sq
	}
	cxp := sq * rx * y1p / ry
	cyp := -sq * ry * x1p / rx

	// Step 3: compute (cx, cy).
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	// Step 4: compute the start angle and the sweep.
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	point := func(t float64) (float64, float64) {
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		return cosPhi*ex - sinPhi*ey + cx, sinPhi*ex + cosPhi*ey + cy
	}
	deriv := func(t float64) (float64, float64) {
		ex, ey := -rx*math.Sin(t), ry*math.Cos(t)
		return cosPhi*ex - sinPhi*ey, sinPhi*ex + cosPhi*ey
	}

	segs := make([]Segment, 0, n)
	t0 := theta
	px, py := x1, y1
	for i := 0; i < n; i++ {
		t1 := t0 + step
		qx, qy := point(t1)
		if i == n-1 {
			qx, qy = x2, y2
		}
		d0x, d0y := deriv(t0)
		d1x, d1y := deriv(t1)
		segs = append(segs, Segment{Cmd: 'C', Args: []float64{
			px + k*d0x, py + k*d0y,
			qx - k*d1x, qy - k*d1y,
			qx, qy,
		}})
		px, py = qx, qy
		t0 = t1
	}
	return segs
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	lenU := math.Hypot(ux, uy)
	lenV := math.Hypot(vx, vy)
	if lenU == 0 || lenV == 0 {
		return 0
	}
	cos := (ux*vx + uy*vy) / (lenU * lenV)
	cos = math.Max(-1, math.Min(1, cos))
	angle := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}
