// Package planar implements ports.GeometryProvider in process with
// Cartesian math on orb geometries. It is meant for development and tests;
// polygon intersection needs one of the operands to be convex and ignores
// holes.
package planar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"geoshop/internal/core/domain/model/kernel"

	"github.com/paulmach/orb"
	orbplanar "github.com/paulmach/orb/planar"
)

var (
	ErrSRIDMismatch       = errors.New("geometries are in different SRIDs")
	ErrUnsupportedOverlay = errors.New("intersection of two concave polygons is not supported")
)

const epsilon = 1e-9

type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Area(ctx context.Context, g kernel.Geometry) (float64, error) {
	if err := ready(ctx, g); err != nil {
		return 0, err
	}
	if !g.IsPolygonal() {
		return 0, nil
	}
	return math.Abs(orbplanar.Area(g.Orb())), nil
}

func (p *Provider) Intersects(ctx context.Context, a, b kernel.Geometry) (bool, error) {
	if err := ready(ctx, a, b); err != nil {
		return false, err
	}
	if !a.Bound().Intersects(b.Bound()) {
		return false, nil
	}

	switch {
	case a.IsPoint() && b.IsPoint():
		return a.Orb().(orb.Point).Equal(b.Orb().(orb.Point)), nil
	case a.IsPoint():
		return contains(rings(b.Orb()), a.Orb().(orb.Point)), nil
	case b.IsPoint():
		return contains(rings(a.Orb()), b.Orb().(orb.Point)), nil
	}

	ra, rb := rings(a.Orb()), rings(b.Orb())
	for _, ring := range ra {
		for _, pt := range ring {
			if contains(rb, pt) {
				return true, nil
			}
		}
	}
	for _, ring := range rb {
		for _, pt := range ring {
			if contains(ra, pt) {
				return true, nil
			}
		}
	}
	for _, r1 := range ra {
		for _, r2 := range rb {
			if ringsCross(r1, r2) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Intersection clips one polygonal operand by the other, which must be
// convex.
func (p *Provider) Intersection(ctx context.Context, a, b kernel.Geometry) (kernel.Geometry, bool, error) {
	if err := ready(ctx, a, b); err != nil {
		return kernel.Geometry{}, false, err
	}
	if !a.IsPolygonal() || !b.IsPolygonal() {
		return kernel.Geometry{}, false, fmt.Errorf("intersection needs two polygonal geometries, got %s and %s",
			a.Orb().GeoJSONType(), b.Orb().GeoJSONType())
	}
	if !a.Bound().Intersects(b.Bound()) {
		return kernel.Geometry{}, false, nil
	}

	subject, clips := rings(a.Orb()), rings(b.Orb())
	if !allConvex(clips) {
		subject, clips = clips, subject
		if !allConvex(clips) {
			return kernel.Geometry{}, false, ErrUnsupportedOverlay
		}
	}

	var result orb.MultiPolygon
	for _, s := range subject {
		for _, c := range clips {
			clipped := clipRing(s, c)
			if clipped == nil || math.Abs(orbplanar.Area(clipped)) < epsilon {
				continue
			}
			result = append(result, orb.Polygon{clipped})
		}
	}

	var geom orb.Geometry
	switch len(result) {
	case 0:
		return kernel.Geometry{}, false, nil
	case 1:
		geom = result[0]
	default:
		geom = result
	}
	g, err := kernel.NewGeometry(geom, a.SRID())
	if err != nil {
		return kernel.Geometry{}, false, err
	}
	return g, true, nil
}

// Within is exact for points. Polygonal geometries are within when all
// their vertices are.
func (p *Provider) Within(ctx context.Context, g, polygon kernel.Geometry) (bool, error) {
	if err := ready(ctx, g, polygon); err != nil {
		return false, err
	}
	if !polygon.IsPolygonal() {
		return false, nil
	}
	outer := rings(polygon.Orb())

	var points []orb.Point
	if g.IsPoint() {
		points = []orb.Point{g.Orb().(orb.Point)}
	} else {
		for _, ring := range rings(g.Orb()) {
			points = append(points, ring...)
		}
	}
	for _, pt := range points {
		if !strictlyContains(outer, pt) {
			return false, nil
		}
	}
	return len(points) > 0, nil
}

func (p *Provider) CountWithin(ctx context.Context, geoms []kernel.Geometry, polygon kernel.Geometry) (int, error) {
	count := 0
	for _, g := range geoms {
		ok, err := p.Within(ctx, g, polygon)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

func ready(ctx context.Context, geoms ...kernel.Geometry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, g := range geoms {
		if err := g.Validate(); err != nil {
			return err
		}
		if g.SRID() != geoms[0].SRID() {
			return fmt.Errorf("%w: %d and %d", ErrSRIDMismatch, geoms[0].SRID(), g.SRID())
		}
	}
	return nil
}

// rings returns the outer rings of a polygonal geometry.
func rings(g orb.Geometry) []orb.Ring {
	switch v := g.(type) {
	case orb.Polygon:
		return []orb.Ring{v[0]}
	case orb.MultiPolygon:
		out := make([]orb.Ring, 0, len(v))
		for _, p := range v {
			out = append(out, p[0])
		}
		return out
	default:
		return nil
	}
}

func contains(rs []orb.Ring, pt orb.Point) bool {
	for _, r := range rs {
		if orbplanar.RingContains(r, pt) || onBoundary(r, pt) {
			return true
		}
	}
	return false
}

func strictlyContains(rs []orb.Ring, pt orb.Point) bool {
	for _, r := range rs {
		if onBoundary(r, pt) {
			return false
		}
		if orbplanar.RingContains(r, pt) {
			return true
		}
	}
	return false
}

func onBoundary(r orb.Ring, pt orb.Point) bool {
	for i := 0; i+1 < len(r); i++ {
		a, b := r[i], r[i+1]
		if math.Abs(cross(a, b, pt)) > epsilon {
			continue
		}
		if pt[0] >= math.Min(a[0], b[0])-epsilon && pt[0] <= math.Max(a[0], b[0])+epsilon &&
			pt[1] >= math.Min(a[1], b[1])-epsilon && pt[1] <= math.Max(a[1], b[1])+epsilon {
			return true
		}
	}
	return false
}

func ringsCross(r1, r2 orb.Ring) bool {
	for i := 0; i+1 < len(r1); i++ {
		for j := 0; j+1 < len(r2); j++ {
			if segmentsCross(r1[i], r1[i+1], r2[j], r2[j+1]) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a, b, c, d orb.Point) bool {
	d1, d2 := cross(c, d, a), cross(c, d, b)
	d3, d4 := cross(a, b, c), cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross is the z component of (b-a)×(p-a); positive when p is left of a→b.
func cross(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func allConvex(rs []orb.Ring) bool {
	for _, r := range rs {
		if !convex(r) {
			return false
		}
	}
	return true
}

func convex(r orb.Ring) bool {
	pts := open(r)
	n := len(pts)
	if n < 3 {
		return false
	}
	sign := 0
	for i := range n {
		c := cross(pts[i], pts[(i+1)%n], pts[(i+2)%n])
		switch {
		case c > epsilon:
			if sign < 0 {
				return false
			}
			sign = 1
		case c < -epsilon:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0
}

// clipRing is Sutherland-Hodgman: subject clipped by the convex ring clip.
func clipRing(subject, clip orb.Ring) orb.Ring {
	orientation := 1.0
	if clip.Orientation() == orb.CW {
		orientation = -1.0
	}
	inside := func(a, b, p orb.Point) bool {
		return cross(a, b, p)*orientation >= -epsilon
	}

	output := open(subject)
	edges := open(clip)
	for i := range edges {
		if len(output) == 0 {
			return nil
		}
		a, b := edges[i], edges[(i+1)%len(edges)]
		input := output
		output = make([]orb.Point, 0, len(input)+1)
		prev := input[len(input)-1]
		for _, cur := range input {
			curIn, prevIn := inside(a, b, cur), inside(a, b, prev)
			switch {
			case curIn && !prevIn:
				output = append(output, lineIntersection(prev, cur, a, b), cur)
			case curIn:
				output = append(output, cur)
			case prevIn:
				output = append(output, lineIntersection(prev, cur, a, b))
			}
			prev = cur
		}
	}

	if len(output) < 3 {
		return nil
	}
	return append(orb.Ring(output), output[0])
}

func lineIntersection(p1, p2, a, b orb.Point) orb.Point {
	d1 := orb.Point{p2[0] - p1[0], p2[1] - p1[1]}
	d2 := orb.Point{b[0] - a[0], b[1] - a[1]}
	den := d1[0]*d2[1] - d1[1]*d2[0]
	if math.Abs(den) < epsilon {
		return p2
	}
	t := ((a[0]-p1[0])*d2[1] - (a[1]-p1[1])*d2[0]) / den
	return orb.Point{p1[0] + t*d1[0], p1[1] + t*d1[1]}
}

// open drops the closing position of a ring.
func open(r orb.Ring) []orb.Point {
	if len(r) > 1 && r[0].Equal(r[len(r)-1]) {
		return append([]orb.Point(nil), r[:len(r)-1]...)
	}
	return append([]orb.Point(nil), r...)
}
