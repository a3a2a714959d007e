package mesh

import (
	"context"
	"runtime"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WindingReport lists winding problems found by CheckWinding.
type WindingReport struct {
	// Inverted holds pairs of adjacent triangles whose shared edge runs the
	// same way in both, lower index first.
	Inverted [][2]int
	// Disconnected holds triangles sharing no edge with any other.
	Disconnected []int
}

// Consistent reports whether no problems were found.
func (r WindingReport) Consistent() bool {
	return len(r.Inverted) == 0 && len(r.Disconnected) == 0
}

func isAdjacent(a, b Triangle) (bool, [2]uint32) {
	shared := [2]uint32{}
	count := 0

	for _, va := range a {
		for _, vb := range b {
			if va == vb {
				if count < 2 {
					shared[count] = va
				}
				count++
			}
		}
	}

	return count == 2, shared
}

func sameWindingOrder(triangleA, triangleB Triangle, shared [2]uint32) bool {
	for i, a := range triangleA {
		if a != shared[0] {
			continue
		}

		// triangleB should walk the shared edge in the opposite direction
		forward := triangleA[(i+1)%3] == shared[1]
		for j, b := range triangleB {
			if b != shared[0] {
				continue
			}
			if forward {
				return triangleB[(j+2)%3] == shared[1]
			}
			return triangleB[(j+1)%3] == shared[1]
		}
	}

	return false
}

// CheckWinding looks for adjacent triangles with opposing winding and for
// triangles that share no edge. The mesh is split between one worker per CPU
// and only read. Problems are logged at warn level as well as returned.
func (m *Mesh) CheckWinding(ctx context.Context) (WindingReport, error) {
	byEdge := make(map[edgeKey][]int)
	for i, triangle := range m.Triangles {
		for _, e := range triangle.edges() {
			byEdge[e] = append(byEdge[e], i)
		}
	}

	n := min(runtime.NumCPU(), max(len(m.Triangles), 1))
	chunk := (len(m.Triangles) + n - 1) / n
	reports := make([]WindingReport, n)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < n; w++ {
		w := w
		start := min(w*chunk, len(m.Triangles))
		end := min(start+chunk, len(m.Triangles))

		g.Go(func() error {
			report := &reports[w]

			for a := start; a < end; a++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				triangleA := m.Triangles[a]
				var neighbours []int

				for _, e := range triangleA.edges() {
					for _, b := range byEdge[e] {
						if b == a || slices.Contains(neighbours, b) {
							continue
						}

						adjacent, shared := isAdjacent(triangleA, m.Triangles[b])
						if !adjacent {
							continue
						}
						neighbours = append(neighbours, b)

						if a < b && !sameWindingOrder(triangleA, m.Triangles[b], shared) {
							report.Inverted = append(report.Inverted, [2]int{a, b})
						}
					}
				}

				if len(neighbours) == 0 {
					report.Disconnected = append(report.Disconnected, a)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return WindingReport{}, err
	}

	var report WindingReport
	for _, r := range reports {
		report.Inverted = append(report.Inverted, r.Inverted...)
		report.Disconnected = append(report.Disconnected, r.Disconnected...)
	}

	log := m.logger()
	for _, pair := range report.Inverted {
		log.Warn("triangle is inverted, check your 3D model",
			zap.Int("triangle", pair[1]),
			zap.Int("neighbour", pair[0]))
	}
	if len(report.Disconnected) > 0 {
		log.Warn("disconnected triangles, check your 3D model",
			zap.Ints("triangles", report.Disconnected))
	}

	return report, nil
}
