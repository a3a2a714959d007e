// Package mesh loads triangle meshes and measures signed distances to them.
package mesh

import (
	"math"

	"go.uber.org/zap"

	"github.com/xernobyl/ionmath/mat"
	"github.com/xernobyl/ionmath/vec"
)

// Triangle holds three indices into Mesh.Vertices.
type Triangle [3]uint32

type Mesh struct {
	Vertices  []vec.Vec3d
	Triangles []Triangle
	Min       vec.Vec3d // Bounding box bottom corner
	Max       vec.Vec3d // Bounding box top corner

	log *zap.Logger
}

type Option func(*Mesh)

// WithLogger sets the logger used for mesh warnings. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(m *Mesh) {
		m.log = log
	}
}

func (m *Mesh) logger() *zap.Logger {
	if m.log == nil {
		return zap.NewNop()
	}
	return m.log
}

// Transform applies t to every vertex as a point and recomputes the bounds.
func (m *Mesh) Transform(t mat.Mat4d) {
	for i, v := range m.Vertices {
		m.Vertices[i] = t.TransformPoint(v)
	}
	m.Min, m.Max = vec.Bounds[float64](m.Vertices)
}

/*
SignedDistance returns the distance from p to the triangle a, b, c. The result
is positive on the side that (b-a) x (c-a) points to and negative on the other.
Points in the triangle's plane get a positive distance. A degenerate triangle
with zero area has no side, so the result is the positive distance to its
edges, or to the single point when all three vertices coincide.
*/
func SignedDistance(p, a, b, c vec.Vec3d) float64 {
	ba, pa := b.Sub(a), p.Sub(a)
	cb, pb := c.Sub(b), p.Sub(b)
	ac, pc := a.Sub(c), p.Sub(c)
	nor := ba.Cross(ac)

	var d2 float64
	if vec.Sign(ba.Cross(nor).Dot(pa))+
		vec.Sign(cb.Cross(nor).Dot(pb))+
		vec.Sign(ac.Cross(nor).Dot(pc)) < 2 {
		// Outside the triangle's prism, closest point is on an edge.
		d2 = vec.Min3(
			edgeDistance2(ba, pa),
			edgeDistance2(cb, pb),
			edgeDistance2(ac, pc),
		)
	} else {
		h := nor.Dot(pa)
		d2 = h * h / nor.LengthSquared()
	}

	d := math.Sqrt(d2)
	if nor.Dot(pa) > 0 {
		return -d
	}
	return d
}

func edgeDistance2(edge, p vec.Vec3d) float64 {
	l2 := edge.LengthSquared()
	if l2 == 0 {
		return p.LengthSquared()
	}
	t := vec.Saturate(edge.Dot(p) / l2)
	return edge.Scale(t).Sub(p).LengthSquared()
}

// ClosestDistance returns the signed distance from p to the nearest triangle,
// or +Inf for a mesh without triangles.
func (m *Mesh) ClosestDistance(p vec.Vec3d) float64 {
	minDistance := math.Inf(1)

	for _, triangle := range m.Triangles {
		d := SignedDistance(p, m.Vertices[triangle[0]], m.Vertices[triangle[1]], m.Vertices[triangle[2]])
		if d == 0 {
			return 0
		}

		if math.Abs(d) < math.Abs(minDistance) {
			minDistance = d
		}
	}

	return minDistance
}
