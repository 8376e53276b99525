package graphics

import (
	"cmp"
	"slices"

	"termcraft/internal/meshing"
	"termcraft/internal/profiling"
)

// SignedArea2 is twice the signed area of the projected triangle (a, b, c).
// Front faces come out negative.
func SignedArea2(a, b, c ScreenVertex) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// DepthKey is the mean view depth of a triangle's corners.
func DepthKey(a, b, c ScreenVertex) float64 {
	return (a.Depth + b.Depth + c.Depth) / 3
}

type depthEntry struct {
	tri   int
	depth float64
}

// DrawList orders the front-facing triangles of a mesh farthest first.
type DrawList struct {
	Order   []int
	entries []depthEntry
}

// Build fills Order with the indices of front-facing triangles, sorted by
// descending depth key. Triangles with equal keys keep their mesh order.
func (d *DrawList) Build(tris []meshing.Triangle, sv []ScreenVertex) []int {
	defer profiling.Track("graphics.DrawList")()

	d.entries = d.entries[:0]
	for i, t := range tris {
		a, b, c := sv[t.V[0]], sv[t.V[1]], sv[t.V[2]]
		if SignedArea2(a, b, c) >= 0 {
			continue
		}
		d.entries = append(d.entries, depthEntry{tri: i, depth: DepthKey(a, b, c)})
	}

	slices.SortStableFunc(d.entries, func(x, y depthEntry) int {
		return cmp.Compare(y.depth, x.depth)
	})

	d.Order = d.Order[:0]
	for _, e := range d.entries {
		d.Order = append(d.Order, e.tri)
	}
	return d.Order
}
