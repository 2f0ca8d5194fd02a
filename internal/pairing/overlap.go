package pairing

import "math"

// point2 is a projected polygon vertex in the mean base plane.
type point2 struct{ x, y float64 }

// The clipper works on a fixed integer grid: floating coordinates are scaled
// into [-mid, mid] and snapped, with per-polygon low-bit perturbation so no
// two edges are exactly collinear. Degenerate input (too few vertices, a
// zero-extent bounding box, or a non-finite scale) yields area 0.0, the
// permissive direction for the overlap check, kept for compatibility.
const (
	gamut = 500000000.0
	mid   = gamut / 2.0
)

type ipoint struct{ x, y int64 }

type irange struct{ mn, mx int64 }

type ivertex struct {
	ip     ipoint
	rx, ry irange
	in     int64
}

type clipper struct{ s int64 }

func (c *clipper) contrib(fx, fy, tx, ty, w int64) {
	c.s += w * (tx - fx) * (ty + fy) / 2
}

// iArea is twice the signed area of triangle (a, p, q) on the integer grid.
func iArea(a, p, q ipoint) int64 {
	return p.x*q.y - p.y*q.x + a.x*(p.y-q.y) + a.y*(q.x-p.x)
}

func rangesOverlap(p, q irange) bool {
	return p.mn < q.mx && q.mn < p.mx
}

// fitPoly scales a polygon onto the integer grid. fudge differs per polygon
// so shared edges of the two inputs never coincide exactly.
func fitPoly(pts []point2, fudge int64, minx, miny, sclx, scly float64) []ivertex {
	n := len(pts)
	vs := make([]ivertex, n+1)
	for i := 0; i < n; i++ {
		vs[i].ip.x = (int64((pts[i].x-minx)*sclx-mid) &^ 7) | fudge | int64(i&1)
		vs[i].ip.y = (int64((pts[i].y-miny)*scly-mid) &^ 7) | fudge
	}
	vs[0].ip.y += int64(n & 1)
	vs[n] = vs[0]
	for i := 0; i < n; i++ {
		if vs[i].ip.x < vs[i+1].ip.x {
			vs[i].rx = irange{vs[i].ip.x, vs[i+1].ip.x}
		} else {
			vs[i].rx = irange{vs[i+1].ip.x, vs[i].ip.x}
		}
		if vs[i].ip.y < vs[i+1].ip.y {
			vs[i].ry = irange{vs[i].ip.y, vs[i+1].ip.y}
		} else {
			vs[i].ry = irange{vs[i+1].ip.y, vs[i].ip.y}
		}
		vs[i].in = 0
	}
	return vs
}

// cross records a transversal edge crossing. Each edge crossing the other
// polygon's directed boundary right-to-left raises its winding count by one,
// left-to-right lowers it; the portion from the crossing point to the edge
// end is contributed with that delta, and the delta is banked on the edge's
// start vertex for inness to pick up.
func (c *clipper) cross(a, b, d, e *ivertex, a1, a2, a3, a4 int64) {
	r1 := float64(a1) / float64(a1-a2)
	r2 := float64(a3) / float64(a3-a4)

	wa := int64(1)
	if a1 > 0 {
		wa = -1
	}
	wd := int64(1)
	if a3 > 0 {
		wd = -1
	}

	c.contrib(
		a.ip.x+int64(r1*float64(b.ip.x-a.ip.x)),
		a.ip.y+int64(r1*float64(b.ip.y-a.ip.y)),
		b.ip.x, b.ip.y, wa)
	c.contrib(
		d.ip.x+int64(r2*float64(e.ip.x-d.ip.x)),
		d.ip.y+int64(r2*float64(e.ip.y-d.ip.y)),
		e.ip.x, e.ip.y, wd)
	a.in += wa
	d.in += wd
}

// inness contributes each edge of p weighted by the winding count of q
// around the edge's start vertex. The count for p's first vertex comes from
// a vertical ray cast over q's edges; after that it is carried forward with
// the per-vertex deltas recorded by cross.
func (c *clipper) inness(p []ivertex, np int, q []ivertex, nq int) {
	var wind int64
	v := p[0].ip
	for j := nq - 1; j >= 0; j-- {
		if q[j].rx.mn < v.x && v.x < q[j].rx.mx {
			left := iArea(v, q[j].ip, q[j+1].ip) > 0
			if left == (q[j].ip.x < q[j+1].ip.x) {
				if left {
					wind++
				} else {
					wind--
				}
			}
		}
	}
	for j := 0; j < np; j++ {
		if wind != 0 {
			c.contrib(p[j].ip.x, p[j].ip.y, p[j+1].ip.x, p[j+1].ip.y, wind)
		}
		wind += p[j].in
	}
}

// polyOverlapArea computes the intersection area of two polygons by summing
// signed edge contributions over crossing and contained regions on the
// integer grid, then rescaling. The result is orientation-independent.
func polyOverlapArea(a, b []point2) float64 {
	na, nb := len(a), len(b)
	if na < 3 || nb < 3 {
		return 0
	}

	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	for _, p := range a {
		minx, maxx = math.Min(minx, p.x), math.Max(maxx, p.x)
		miny, maxy = math.Min(miny, p.y), math.Max(maxy, p.y)
	}
	for _, p := range b {
		minx, maxx = math.Min(minx, p.x), math.Max(maxx, p.x)
		miny, maxy = math.Min(miny, p.y), math.Max(maxy, p.y)
	}

	rx, ry := maxx-minx, maxy-miny
	if rx <= 0 || ry <= 0 || math.IsInf(rx, 1) || math.IsInf(ry, 1) {
		return 0
	}
	sclx := gamut / rx
	scly := gamut / ry
	ascale := sclx * scly
	if !(ascale > 0) || math.IsInf(ascale, 0) {
		return 0
	}

	ipa := fitPoly(a, 0, minx, miny, sclx, scly)
	ipb := fitPoly(b, 2, minx, miny, sclx, scly)

	var c clipper
	for j := 0; j < na; j++ {
		for k := 0; k < nb; k++ {
			if !rangesOverlap(ipa[j].rx, ipb[k].rx) || !rangesOverlap(ipa[j].ry, ipb[k].ry) {
				continue
			}
			a1 := iArea(ipa[j].ip, ipb[k].ip, ipb[k+1].ip)
			a2 := iArea(ipa[j+1].ip, ipb[k].ip, ipb[k+1].ip)
			if (a1 > 0) == (a2 > 0) {
				continue
			}
			a3 := iArea(ipb[k].ip, ipa[j].ip, ipa[j+1].ip)
			a4 := iArea(ipb[k+1].ip, ipa[j].ip, ipa[j+1].ip)
			if (a3 > 0) != (a4 > 0) {
				c.cross(&ipa[j], &ipa[j+1], &ipb[k], &ipb[k+1], a1, a2, a3, a4)
			}
		}
	}
	c.inness(ipa, na, ipb, nb)
	c.inness(ipb, nb, ipa, na)

	return math.Abs(float64(c.s) / ascale)
}
